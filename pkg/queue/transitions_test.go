package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTransition_Table(t *testing.T) {
	cases := []struct {
		action string
		from   string
		want   bool
	}{
		{"assign_number", StatusReserved, true},
		{"assign_number", StatusArrived, false},
		{"start_serving", StatusArrived, true},
		{"start_serving", StatusReserved, false},
		{"complete", StatusServing, true},
		{"complete", StatusArrived, false},
		{"complete", StatusReserved, false},
		{"no_show", StatusReserved, true},
		{"no_show", StatusArrived, true},
		{"no_show", StatusServing, false},
		{"no_show", StatusCompleted, false},
		{"no_show", StatusNoShow, false},
		{"unknown_action", StatusReserved, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ValidTransition(c.action, c.from),
			"%s from %s", c.action, c.from)
	}
}

func TestReservation_FullLifecycle(t *testing.T) {
	r := &Reservation{ID: "x", Status: StatusReserved}
	arrived := time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC)
	done := arrived.Add(12 * time.Minute)

	require.NoError(t, r.AssignNumber("L-005", arrived))
	assert.Equal(t, StatusArrived, r.Status)
	assert.Equal(t, "L-005", r.BQMSNumber)
	require.NotNil(t, r.ArrivedAt)
	assert.Equal(t, arrived, *r.ArrivedAt)

	require.NoError(t, r.MarkServing())
	assert.Equal(t, StatusServing, r.Status)

	require.NoError(t, r.MarkCompleted(done))
	assert.Equal(t, StatusCompleted, r.Status)
	require.NotNil(t, r.CompletedAt)
	assert.Equal(t, done, *r.CompletedAt)
	assert.False(t, r.Active())
}

func TestReservation_CannotSkipToCompleted(t *testing.T) {
	r := &Reservation{ID: "x", Status: StatusReserved}

	err := r.MarkCompleted(time.Now())

	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, StatusReserved, r.Status, "failed transition must not mutate the record")
	assert.Nil(t, r.CompletedAt)
}

func TestReservation_TerminalStatesRejectEverything(t *testing.T) {
	for _, terminal := range []string{StatusCompleted, StatusNoShow} {
		r := &Reservation{ID: "x", Status: terminal}

		assert.ErrorIs(t, r.AssignNumber("L-001", time.Now()), ErrIllegalTransition)
		assert.ErrorIs(t, r.MarkServing(), ErrIllegalTransition)
		assert.ErrorIs(t, r.MarkCompleted(time.Now()), ErrIllegalTransition)
		assert.ErrorIs(t, r.MarkNoShow(), ErrIllegalTransition)
		assert.Equal(t, terminal, r.Status)
	}
}

func TestReservation_NoShowFromReservedOrArrived(t *testing.T) {
	r := &Reservation{ID: "a", Status: StatusReserved}
	require.NoError(t, r.MarkNoShow())
	assert.Equal(t, StatusNoShow, r.Status)

	r2 := &Reservation{ID: "b", Status: StatusArrived}
	require.NoError(t, r2.MarkNoShow())
	assert.Equal(t, StatusNoShow, r2.Status)

	// A member at the counter is present, so SERVING has no no-show exit.
	r3 := &Reservation{ID: "c", Status: StatusServing}
	assert.ErrorIs(t, r3.MarkNoShow(), ErrIllegalTransition)
}

func TestReservation_AssignNumberOnlyOnce(t *testing.T) {
	r := &Reservation{ID: "x", Status: StatusReserved}
	require.NoError(t, r.AssignNumber("L-005", time.Now()))

	err := r.AssignNumber("L-006", time.Now())

	require.ErrorIs(t, err, ErrIllegalTransition)
	assert.Equal(t, "L-005", r.BQMSNumber)
}
