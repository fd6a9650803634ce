package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

// seedDay creates three records in order: a walk-in already arrived, an
// online reservation still waiting for a number, and a no-show.
func seedDay(t *testing.T, r *repo.Repository) (waiting, arrived, gone *queue.Reservation) {
	t.Helper()
	ctx := context.Background()
	logger := zap.NewNop()

	input := walkInInput()
	input.BQMSNumber = "P-001"
	arrived, err := RegisterWalkIn(ctx, r, logger, input)
	require.NoError(t, err)

	waiting = seedReservation(t, r)

	input = walkInInput()
	input.LastName = "reyes"
	input.FirstName = "ana"
	input.Mobile = "09190000000"
	gone, err = RegisterWalkIn(ctx, r, logger, input)
	require.NoError(t, err)
	gone, err = MarkNoShow(ctx, r, logger, testDate, gone.ID)
	require.NoError(t, err)

	return waiting, arrived, gone
}

func TestListQueue_NeedsNumberSortsFirst(t *testing.T) {
	r := newTestRepo(t)
	waiting, arrived, gone := seedDay(t, r)

	list, err := ListQueue(context.Background(), r, zap.NewNop(), ListQueueInput{Date: testDate})
	require.NoError(t, err)
	require.Len(t, list, 3)

	// The record still waiting for its BQMS number leads the view even
	// though it was created second; the rest keep creation order.
	assert.Equal(t, waiting.ID, list[0].ID)
	assert.Equal(t, arrived.ID, list[1].ID)
	assert.Equal(t, gone.ID, list[2].ID)
}

func TestListQueue_StatusFilter(t *testing.T) {
	r := newTestRepo(t)
	_, arrived, _ := seedDay(t, r)

	list, err := ListQueue(context.Background(), r, zap.NewNop(), ListQueueInput{
		Date:   testDate,
		Status: queue.StatusArrived,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, arrived.ID, list[0].ID)
}

func TestListQueue_SearchMatchesNameNumberAndCode(t *testing.T) {
	r := newTestRepo(t)
	waiting, arrived, _ := seedDay(t, r)
	ctx := context.Background()
	logger := zap.NewNop()

	byName, err := ListQueue(ctx, r, logger, ListQueueInput{Date: testDate, Search: "dela"})
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, waiting.ID, byName[0].ID)

	byBQMS, err := ListQueue(ctx, r, logger, ListQueueInput{Date: testDate, Search: "p-001"})
	require.NoError(t, err)
	require.Len(t, byBQMS, 1)
	assert.Equal(t, arrived.ID, byBQMS[0].ID)

	byCode, err := ListQueue(ctx, r, logger, ListQueueInput{Date: testDate, Search: waiting.ResNum})
	require.NoError(t, err)
	require.Len(t, byCode, 1)
	assert.Equal(t, waiting.ID, byCode[0].ID)
}

func TestListQueue_EmptyDay(t *testing.T) {
	r := newTestRepo(t)

	list, err := ListQueue(context.Background(), r, zap.NewNop(), ListQueueInput{Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, list)
}
