package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// SetNowServing updates the per-category now-serving announcement read
// by trackers.
func SetNowServing(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, categoryID, number string) error {
	cats, err := store.Categories()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if queue.FindCategory(cats, categoryID) == nil {
		return &ValidationError{Reasons: []string{"Unknown service category."}}
	}

	number = strings.ToUpper(strings.TrimSpace(number))
	err = store.UpdateQueue(date, func(doc *queue.Document) error {
		doc.Board[categoryID] = queue.BoardEntry{NowServing: number}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Now-serving board updated",
		zap.String("date", date),
		zap.String("category_id", categoryID),
		zap.String("now_serving", number))
	return nil
}

// SetQueueStatus sets the day's broadcast flag. Offline blocks new
// online reservations; intermittent is advisory only.
func SetQueueStatus(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date, status string) error {
	switch status {
	case queue.QueueOnline, queue.QueueIntermittent, queue.QueueOffline:
	default:
		return &ValidationError{
			Reasons: []string{"Status must be online, intermittent, or offline."},
		}
	}

	err := store.UpdateQueue(date, func(doc *queue.Document) error {
		doc.Status = status
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Queue status updated",
		zap.String("date", date),
		zap.String("status", status))
	return nil
}
