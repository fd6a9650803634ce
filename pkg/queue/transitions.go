package queue

import (
	"errors"
	"fmt"
	"time"
)

// ErrIllegalTransition is returned when a lifecycle action is applied to
// a reservation whose current status does not allow it.
var ErrIllegalTransition = errors.New("illegal status transition")

// transitionMap lists, per lifecycle action, the statuses the action may
// be applied from. There is no action out of COMPLETED or NO_SHOW.
var transitionMap = map[string][]string{
	"assign_number": {StatusReserved},
	"start_serving": {StatusArrived},
	"complete":      {StatusServing},
	"no_show":       {StatusReserved, StatusArrived},
}

// ValidTransition reports whether the action may be applied from the
// given status.
func ValidTransition(action, fromStatus string) bool {
	allowed, ok := transitionMap[action]
	if !ok {
		return false
	}
	for _, status := range allowed {
		if status == fromStatus {
			return true
		}
	}
	return false
}

func (r *Reservation) check(action string) error {
	if !ValidTransition(action, r.Status) {
		return fmt.Errorf("%w: %s from %s", ErrIllegalTransition, action, r.Status)
	}
	return nil
}

// AssignNumber records the physical BQMS number handed to the member at
// the branch and moves the reservation from RESERVED to ARRIVED.
func (r *Reservation) AssignNumber(bqms string, at time.Time) error {
	if err := r.check("assign_number"); err != nil {
		return err
	}
	r.BQMSNumber = bqms
	r.Status = StatusArrived
	r.ArrivedAt = &at
	return nil
}

// MarkServing moves an ARRIVED reservation to SERVING when staff call
// the member to the counter.
func (r *Reservation) MarkServing() error {
	if err := r.check("start_serving"); err != nil {
		return err
	}
	r.Status = StatusServing
	return nil
}

// MarkCompleted finishes the transaction. Terminal.
func (r *Reservation) MarkCompleted(at time.Time) error {
	if err := r.check("complete"); err != nil {
		return err
	}
	r.Status = StatusCompleted
	r.CompletedAt = &at
	return nil
}

// MarkNoShow records that the member never appeared. Terminal, and only
// reachable before serving starts: a member being served is present.
func (r *Reservation) MarkNoShow() error {
	if err := r.check("no_show"); err != nil {
		return err
	}
	r.Status = StatusNoShow
	return nil
}
