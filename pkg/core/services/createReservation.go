package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

var validate = validator.New()

// CreateReservationInput is an online self-service reservation request.
type CreateReservationInput struct {
	Date       string `validate:"required,datetime=2006-01-02"`
	LastName   string `validate:"required"`
	FirstName  string `validate:"required"`
	MI         string `validate:"omitempty,max=2"`
	Mobile     string `validate:"required,min=10"`
	CategoryID string `validate:"required"`
	ServiceID  string `validate:"required"`
	Priority   string `validate:"omitempty,oneof=regular priority"`
	Consent    bool
}

// reasonFor renders one validator field error as the member would read it.
func reasonFor(fe validator.FieldError) string {
	switch fe.Field() {
	case "LastName":
		return "Last Name is required."
	case "FirstName":
		return "First Name is required."
	case "Mobile":
		return "Valid mobile number required (min 10 digits)."
	case "MI":
		return "Middle initial must be at most 2 characters."
	case "Date":
		return "Date must be YYYY-MM-DD."
	case "CategoryID":
		return "Select a service category."
	case "ServiceID":
		return "Select a service."
	case "Priority":
		return "Lane must be regular or priority."
	default:
		return fmt.Sprintf("%s is invalid.", fe.Field())
	}
}

func inputReasons(input any) []string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}
	ferrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	reasons := make([]string, 0, len(ferrs))
	for _, fe := range ferrs {
		reasons = append(reasons, reasonFor(fe))
	}
	return reasons
}

// CreateReservation admits an online reservation for the given day. The
// capacity, duplicate, and sequence checks all run inside one serialized
// read-mutate-write cycle against the day's document. serviceDays, when
// non-nil, is the branch's service-day calendar; reservation on a
// non-service day is rejected.
func CreateReservation(ctx context.Context, store repo.QueueStore, logger *zap.Logger, serviceDays *rrule.RRule, input CreateReservationInput) (*queue.Reservation, error) {
	logger.Info("Creating online reservation",
		zap.String("date", input.Date),
		zap.String("category_id", input.CategoryID),
		zap.String("service_id", input.ServiceID))

	reasons := inputReasons(input)
	if !input.Consent {
		reasons = append(reasons, "Check the data privacy consent.")
	}
	if len(reasons) > 0 {
		return nil, &ValidationError{Reasons: reasons}
	}

	day, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		return nil, &ValidationError{Reasons: []string{"Date must be YYYY-MM-DD."}}
	}
	if serviceDays != nil && !isServiceDay(serviceDays, day) {
		return nil, &ValidationError{
			Reasons: []string{fmt.Sprintf("The branch is closed on %s.", day.Format("Monday, Jan 2"))},
		}
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

	var created *queue.Reservation
	err = store.UpdateQueue(input.Date, func(doc *queue.Document) error {
		if doc.Status == queue.QueueOffline {
			return &ValidationError{Reasons: []string{"Online reservation is currently closed."}}
		}

		var reasons []string
		counts := queue.SlotCounts(cats, doc.Reservations)
		if counts[cat.ID].Remaining <= 0 {
			reasons = append(reasons, fmt.Sprintf("Slots full for %s.", cat.Label))
		}
		if queue.IsDuplicate(doc.Reservations, input.LastName, input.FirstName, input.Mobile) {
			reasons = append(reasons, "You already have an active reservation today.")
		}
		if len(reasons) > 0 {
			return &ValidationError{Reasons: reasons}
		}

		now := time.Now()
		slot := queue.NextSlotNumber(doc.Reservations)
		entry := queue.Reservation{
			ID:         queue.NewID(now),
			Slot:       slot,
			ResNum:     queue.DisplayCode(queue.SourceOnline, day, slot),
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
			Source:     queue.SourceOnline,
			IssuedAt:   now,
		}
		doc.Reservations = append(doc.Reservations, entry)
		created = &doc.Reservations[len(doc.Reservations)-1]
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Reservation created",
		zap.String("id", created.ID),
		zap.String("res_num", created.ResNum),
		zap.Int("slot", created.Slot))
	return created, nil
}

// isServiceDay reports whether the calendar has an occurrence on the
// given date.
func isServiceDay(rule *rrule.RRule, day time.Time) bool {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24*time.Hour - time.Second)
	return len(rule.Between(start, end, true)) > 0
}
