package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// RegisterWalkInInput is a kiosk/guard registration for a member already
// at the branch. BQMSNumber is optional: when the guard hands out the
// physical number immediately, the reservation starts at ARRIVED.
type RegisterWalkInInput struct {
	Date       string `validate:"required,datetime=2006-01-02"`
	LastName   string `validate:"required"`
	FirstName  string `validate:"required"`
	MI         string `validate:"omitempty,max=2"`
	Mobile     string `validate:"required,min=10"`
	CategoryID string `validate:"required"`
	ServiceID  string `validate:"required"`
	Priority   string `validate:"omitempty,oneof=regular priority"`
	BQMSNumber string
}

// RegisterWalkIn admits a walk-in at the kiosk. Same capacity and
// duplicate invariants as online creation; the offline broadcast flag
// does not apply because the member is physically present.
func RegisterWalkIn(ctx context.Context, store repo.QueueStore, logger *zap.Logger, input RegisterWalkInInput) (*queue.Reservation, error) {
	logger.Info("Registering walk-in",
		zap.String("date", input.Date),
		zap.String("category_id", input.CategoryID),
		zap.Bool("has_bqms", input.BQMSNumber != ""))

	if reasons := inputReasons(input); len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, &ValidationError{Reasons: []string{"Date must be YYYY-MM-DD."}}
	}

	cats, err := store.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	cat := queue.FindCategory(cats, input.CategoryID)
	if cat == nil {
		return nil, &ValidationError{Reasons: []string{"Unknown service category."}}
	}
	svc := cat.FindService(input.ServiceID)
	if svc == nil {
		return nil, &ValidationError{Reasons: []string{"Unknown service for this category."}}
	}

	priority := input.Priority
	if priority == "" {
		priority = queue.LaneRegular
	}
	bqms := strings.ToUpper(strings.TrimSpace(input.BQMSNumber))

	var created *queue.Reservation
	err = store.UpdateQueue(input.Date, func(doc *queue.Document) error {
		var reasons []string
		counts := queue.SlotCounts(cats, doc.Reservations)
		if counts[cat.ID].Remaining <= 0 {
			reasons = append(reasons, fmt.Sprintf("Slots full for %s.", cat.Label))
		}
		if queue.IsDuplicate(doc.Reservations, input.LastName, input.FirstName, input.Mobile) {
			reasons = append(reasons, "This member already has an active reservation today.")
		}
		if len(reasons) > 0 {
			return &ValidationError{Reasons: reasons}
		}

		now := time.Now()
		slot := queue.NextSlotNumber(doc.Reservations)
		entry := queue.Reservation{
			ID:         queue.NewID(now),
			Slot:       slot,
			ResNum:     queue.DisplayCode(queue.SourceKiosk, day, slot),
			LastName:   strings.ToUpper(strings.TrimSpace(input.LastName)),
			FirstName:  strings.ToUpper(strings.TrimSpace(input.FirstName)),
			MI:         strings.ToUpper(strings.TrimSpace(input.MI)),
			Mobile:     strings.TrimSpace(input.Mobile),
			Service:    svc.Label,
			ServiceID:  svc.ID,
			Category:   cat.Label,
			CategoryID: cat.ID,
			CatIcon:    cat.Icon,
			Priority:   priority,
			Status:     queue.StatusReserved,
			Source:     queue.SourceKiosk,
			IssuedAt:   now,
		}
		if bqms != "" {
			// Number issued on the spot: RESERVED→ARRIVED collapses
			// into creation.
			entry.Status = queue.StatusArrived
			entry.BQMSNumber = bqms
			at := now
			entry.ArrivedAt = &at
		}
		doc.Reservations = append(doc.Reservations, entry)
		created = &doc.Reservations[len(doc.Reservations)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Walk-in registered",
		zap.String("id", created.ID),
		zap.String("res_num", created.ResNum),
		zap.String("status", created.Status))
	return created, nil
}
