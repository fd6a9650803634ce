package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// ListQueueInput filters the staff console's queue view.
type ListQueueInput struct {
	Date   string
	Status string // exact status filter, empty for all
	Search string // substring on name, BQMS number, or display code
}

// ListQueue returns the day's reservations for the staff console:
// records still waiting for a BQMS number sort first, then creation
// order within each group.
func ListQueue(ctx context.Context, store repo.QueueStore, logger *zap.Logger, input ListQueueInput) ([]queue.Reservation, error) {
	doc, err := store.QueueFor(input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	filtered := make([]queue.Reservation, 0, len(doc.Reservations))
	search := strings.ToLower(strings.TrimSpace(input.Search))
	for _, r := range doc.Reservations {
		if input.Status != "" && r.Status != input.Status {
			continue
		}
		if search != "" && !matchesSearch(&r, search) {
			continue
		}
		filtered = append(filtered, r)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return needsNumber(&filtered[i]) && !needsNumber(&filtered[j])
	})

	logger.Debug("Queue listed",
		zap.String("date", input.Date),
		zap.Int("matched", len(filtered)))
	return filtered, nil
}

func needsNumber(r *queue.Reservation) bool {
	return !r.HasNumber() && r.Active()
}

func matchesSearch(r *queue.Reservation, search string) bool {
	return strings.Contains(strings.ToLower(r.LastName), search) ||
		strings.Contains(strings.ToLower(r.FirstName), search) ||
		strings.Contains(strings.ToLower(r.BQMSNumber), search) ||
		strings.Contains(strings.ToLower(r.ResNum), search)
}
