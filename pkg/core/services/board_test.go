package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
)

func TestSetNowServing_PersistsPerCategory(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	require.NoError(t, SetNowServing(ctx, r, logger, testDate, "loans", "l-007"))
	require.NoError(t, SetNowServing(ctx, r, logger, testDate, "payments", "P-012"))

	doc, err := r.QueueFor(testDate)
	require.NoError(t, err)
	assert.Equal(t, "L-007", doc.Board["loans"].NowServing)
	assert.Equal(t, "P-012", doc.Board["payments"].NowServing)
}

func TestSetNowServing_UnknownCategory(t *testing.T) {
	r := newTestRepo(t)

	err := SetNowServing(context.Background(), r, zap.NewNop(), testDate, "nonexistent", "X-001")

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Reasons, "Unknown service category.")
}

func TestSetQueueStatus_ValidValues(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	for _, status := range []string{queue.QueueOffline, queue.QueueIntermittent, queue.QueueOnline} {
		require.NoError(t, SetQueueStatus(ctx, r, logger, testDate, status))
		doc, err := r.QueueFor(testDate)
		require.NoError(t, err)
		assert.Equal(t, status, doc.Status)
	}
}

func TestSetQueueStatus_RejectsUnknownValue(t *testing.T) {
	r := newTestRepo(t)

	err := SetQueueStatus(context.Background(), r, zap.NewNop(), testDate, "closed")

	_, ok := AsValidation(err)
	assert.True(t, ok)
}
