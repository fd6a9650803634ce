package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// TrackInput identifies a reservation by mobile number or display code.
// Exactly one of the two should be set; Code wins if both are.
type TrackInput struct {
	Date   string
	Mobile string
	Code   string
}

// TrackResult is the member-facing tracking view: the record, the
// category's now-serving number, and the wait estimate when both
// numbers parse.
type TrackResult struct {
	Reservation *queue.Reservation
	NowServing  string
	WaitMinutes int
	Ahead       int
	EstimateOK  bool
}

// Track finds a reservation and computes its live queue position.
// Active records take priority over completed/no-show ones, so a repeat
// visitor resolves to their current reservation while still being able
// to pull up an old one once nothing active matches.
func Track(ctx context.Context, store repo.QueueStore, logger *zap.Logger, input TrackInput) (*TrackResult, error) {
	if input.Mobile == "" && input.Code == "" {
		return nil, &ValidationError{Reasons: []string{"Enter your mobile number or reservation number."}}
	}

	doc, err := store.QueueFor(input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to load queue: %w", err)
	}

	var found *queue.Reservation
	if input.Code != "" {
		found = queue.FindByDisplayCode(doc.Reservations, input.Code)
	} else {
		found = queue.FindByMobile(doc.Reservations, input.Mobile)
	}
	if found == nil {
		return nil, ErrNotFound
	}

	result := &TrackResult{Reservation: found}
	if entry, ok := doc.Board[found.CategoryID]; ok {
		result.NowServing = entry.NowServing
	}

	if found.HasNumber() && result.NowServing != "" {
		avg := 0
		cats, err := store.Categories()
		if err != nil {
			logger.Warn("failed to load catalog for wait estimate", zap.Error(err))
		} else if cat := queue.FindCategory(cats, found.CategoryID); cat != nil {
			avg = cat.AvgTime
		}
		result.WaitMinutes, result.Ahead, result.EstimateOK =
			queue.EstimateWait(result.NowServing, found.BQMSNumber, avg)
	}

	logger.Info("Reservation tracked",
		zap.String("res_num", found.ResNum),
		zap.String("status", found.Status),
		zap.Bool("estimate_ok", result.EstimateOK))
	return result, nil
}
