package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// StatsResult summarizes one day's queue for the staff dashboard.
type StatsResult struct {
	Date       string
	Total      int
	Active     int
	Completed  int
	NoShows    int
	Assigned   int
	Status     string
	Categories map[string]queue.SlotCount
}

// DailyStats computes per-day and per-category counts from a single
// snapshot of the day's document.
func DailyStats(ctx context.Context, store repo.QueueStore, logger *zap.Logger, date string) (*StatsResult, error) {
	doc, err := store.QueueFor(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}
	cats, err := store.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	result := &StatsResult{
		Date:       date,
		Total:      len(doc.Reservations),
		Status:     doc.Status,
		Categories: queue.SlotCounts(cats, doc.Reservations),
	}
	for i := range doc.Reservations {
		r := &doc.Reservations[i]
		switch r.Status {
		case queue.StatusCompleted:
			result.Completed++
		case queue.StatusNoShow:
			result.NoShows++
		default:
			result.Active++
		}
		if r.HasNumber() {
			result.Assigned++
		}
	}

	logger.Debug("Daily stats computed",
		zap.String("date", date),
		zap.Int("total", result.Total),
		zap.Int("active", result.Active))
	return result, nil
}
