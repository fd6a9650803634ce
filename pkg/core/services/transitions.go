package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// applyTransition resolves the reservation by id inside one serialized
// update cycle and applies fn to it. An illegal transition leaves the
// document untouched: the error aborts the cycle before any write.
func applyTransition(store repo.QueueStore, logger *zap.Logger, date, id, action string, fn func(r *queue.Reservation) error) (*queue.Reservation, error) {
	var updated *queue.Reservation
	err := store.UpdateQueue(date, func(doc *queue.Document) error {
		r := doc.Find(id)
		if r == nil {
			return fmt.Errorf("%w: id %s on %s", ErrNotFound, id, date)
		}
		if err := fn(r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		if errors.Is(err, queue.ErrIllegalTransition) {
			logger.Warn("Illegal transition ignored",
				zap.String("id", id),
				zap.String("action", action),
				zap.Error(err))
		}
		return nil, err
	}
	logger.Info("Reservation transitioned",
		zap.String("id", updated.ID),
		zap.String("res_num", updated.ResNum),
		zap.String("action", action),
		zap.String("status", updated.Status))
	return updated, nil
}

// AssignNumber records the physical BQMS number handed to the member,
// moving the reservation to ARRIVED.
func AssignNumber(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, id, bqms string) (*queue.Reservation, error) {
	bqms = strings.ToUpper(strings.TrimSpace(bqms))
	if bqms == "" {
		return nil, &ValidationError{Reasons: []string{"BQMS number is required."}}
	}
	return applyTransition(store, logger, date, id, "assign_number", func(r *queue.Reservation) error {
		return r.AssignNumber(bqms, time.Now())
	})
}

// StartServing moves an arrived member to SERVING when called to the
// counter.
func StartServing(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, id string) (*queue.Reservation, error) {
	return applyTransition(store, logger, date, id, "start_serving", func(r *queue.Reservation) error {
		return r.MarkServing()
	})
}

// Complete finishes the member's transaction.
func Complete(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, id string) (*queue.Reservation, error) {
	return applyTransition(store, logger, date, id, "complete", func(r *queue.Reservation) error {
		return r.MarkCompleted(time.Now())
	})
}

// MarkNoShow records that the member never appeared, releasing their
// capacity slot.
func MarkNoShow(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, id string) (*queue.Reservation, error) {
	return applyTransition(store, logger, date, id, "no_show", func(r *queue.Reservation) error {
		return r.MarkNoShow()
	})
}
