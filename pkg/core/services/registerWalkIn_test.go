package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
)

func walkInInput() RegisterWalkInInput {
	return RegisterWalkInInput{
		Date:       testDate,
		LastName:   "santos",
		FirstName:  "maria",
		Mobile:     "09181234567",
		CategoryID: "payments",
		ServiceID:  "pay_contribution",
	}
}

func TestRegisterWalkIn_WithoutNumberStartsReserved(t *testing.T) {
	r := newTestRepo(t)

	created, err := RegisterWalkIn(context.Background(), r, zap.NewNop(), walkInInput())
	require.NoError(t, err)

	assert.Equal(t, "K-0213-001", created.ResNum)
	assert.Equal(t, queue.SourceKiosk, created.Source)
	assert.Equal(t, queue.StatusReserved, created.Status)
	assert.Empty(t, created.BQMSNumber)
	assert.Nil(t, created.ArrivedAt)
}

func TestRegisterWalkIn_WithNumberStartsArrived(t *testing.T) {
	r := newTestRepo(t)

	input := walkInInput()
	input.BQMSNumber = "p-003"
	created, err := RegisterWalkIn(context.Background(), r, zap.NewNop(), input)
	require.NoError(t, err)

	assert.Equal(t, queue.StatusArrived, created.Status)
	assert.Equal(t, "P-003", created.BQMSNumber)
	require.NotNil(t, created.ArrivedAt)
}

func TestRegisterWalkIn_IgnoresOfflineFlag(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	// The member is physically present, so the broadcast flag that
	// gates online self-service does not apply at the kiosk.
	require.NoError(t, SetQueueStatus(ctx, r, logger, testDate, queue.QueueOffline))

	_, err := RegisterWalkIn(ctx, r, logger, walkInInput())
	assert.NoError(t, err)
}

func TestRegisterWalkIn_SharesSequenceWithOnline(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	online, err := CreateReservation(ctx, r, logger, nil, validInput())
	require.NoError(t, err)
	require.Equal(t, 1, online.Slot)

	walkin, err := RegisterWalkIn(ctx, r, logger, walkInInput())
	require.NoError(t, err)
	assert.Equal(t, 2, walkin.Slot)
	assert.Equal(t, "K-0213-002", walkin.ResNum)
}

func TestRegisterWalkIn_DuplicateAgainstOnlineReservation(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()
	logger := zap.NewNop()

	_, err := CreateReservation(ctx, r, logger, nil, validInput())
	require.NoError(t, err)

	input := walkInInput()
	input.LastName = "dela cruz"
	input.FirstName = "juan"
	input.Mobile = "09990000000"
	_, err = RegisterWalkIn(ctx, r, logger, input)

	ve, ok := AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Reasons, "This member already has an active reservation today.")
}
