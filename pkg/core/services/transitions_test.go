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

func seedReservation(t *testing.T, r *repo.Repository) *queue.Reservation {
	t.Helper()
	created, err := CreateReservation(context.Background(), r, zap.NewNop(), nil, validInput())
	require.NoError(t, err)
	return created
}

func TestTransitions_FullVisit(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()
	created := seedReservation(t, r)

	arrived, err := AssignNumber(ctx, r, logger, testDate, created.ID, "l-005")
	require.NoError(t, err)
	assert.Equal(t, queue.StatusArrived, arrived.Status)
	assert.Equal(t, "L-005", arrived.BQMSNumber)
	require.NotNil(t, arrived.ArrivedAt)

	serving, err := StartServing(ctx, r, logger, testDate, created.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusServing, serving.Status)

	done, err := Complete(ctx, r, logger, testDate, created.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusCompleted, done.Status)
	require.NotNil(t, done.CompletedAt)

	// Every step persisted.
	doc, err := r.QueueFor(testDate)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusCompleted, doc.Reservations[0].Status)
}

func TestTransitions_IllegalStepLeavesDocumentUntouched(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()
	created := seedReservation(t, r)

	_, err := Complete(ctx, r, logger, testDate, created.ID)
	require.ErrorIs(t, err, queue.ErrIllegalTransition)

	doc, err := r.QueueFor(testDate)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusReserved, doc.Reservations[0].Status)
	assert.Nil(t, doc.Reservations[0].CompletedAt)
}

func TestTransitions_UnknownID(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()
	seedReservation(t, r)

	_, err := StartServing(ctx, r, logger, testDate, "1760000000000-abcdef")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignNumber_RequiresNumber(t *testing.T) {
	r := newTestRepo(t)
	created := seedReservation(t, r)

	_, err := AssignNumber(context.Background(), r, zap.NewNop(), testDate, created.ID, "  ")

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Reasons, "BQMS number is required.")
}

func TestMarkNoShow_FromReservedAndArrived(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	first := seedReservation(t, r)
	gone, err := MarkNoShow(ctx, r, logger, testDate, first.ID)
	require.NoError(t, err)
	assert.Equal(t, queue.StatusNoShow, gone.Status)

	// An arrived member can still be no-showed if they wander off, but
	// one being served cannot.
	input := walkInInput()
	input.BQMSNumber = "P-001"
	second, err := RegisterWalkIn(ctx, r, logger, input)
	require.NoError(t, err)
	_, err = StartServing(ctx, r, logger, testDate, second.ID)
	require.NoError(t, err)
	_, err = MarkNoShow(ctx, r, logger, testDate, second.ID)
	assert.ErrorIs(t, err, queue.ErrIllegalTransition)
}
