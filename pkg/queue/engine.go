package queue

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SlotCount is one category's admission state for the day.
type SlotCount struct {
	Used      int `json:"used"`
	Cap       int `json:"cap"`
	Remaining int `json:"remaining"`
}

// SlotCounts computes per-category usage against the catalog's capacity.
// NO_SHOW reservations release their slot; COMPLETED ones still count,
// since capacity throttles admitted demand rather than final disposition.
func SlotCounts(cats []Category, res []Reservation) map[string]SlotCount {
	counts := make(map[string]SlotCount, len(cats))
	for _, c := range cats {
		used := 0
		for i := range res {
			if res[i].CategoryID == c.ID && res[i].Status != StatusNoShow {
				used++
			}
		}
		remaining := c.Cap - used
		if remaining < 0 {
			remaining = 0
		}
		counts[c.ID] = SlotCount{Used: used, Cap: c.Cap, Remaining: remaining}
	}
	return counts
}

// NextSlotNumber returns the next global sequence number for the day.
// It counts every reservation regardless of status, so a display code's
// numeric suffix is never reused even after no-shows or completions.
func NextSlotNumber(res []Reservation) int {
	return len(res) + 1
}

// nameKey normalizes a (last, first) pair for duplicate comparison.
func nameKey(last, first string) string {
	return strings.ToUpper(strings.TrimSpace(last)) + "|" + strings.ToUpper(strings.TrimSpace(first))
}

// IsDuplicate reports whether an active reservation already exists for
// the same normalized (last, first) name or the same mobile number.
// Either match alone flags the duplicate: the policy prefers a false
// duplicate over a double booking.
func IsDuplicate(res []Reservation, last, first, mobile string) bool {
	key := nameKey(last, first)
	mobile = strings.TrimSpace(mobile)
	for i := range res {
		r := &res[i]
		if !r.Active() {
			continue
		}
		if nameKey(r.LastName, r.FirstName) == key {
			return true
		}
		if mobile != "" && r.Mobile != "" && r.Mobile == mobile {
			return true
		}
	}
	return false
}

// DisplayCode builds the human-facing reservation code, e.g. R-0214-001
// for an online reservation or K-0214-007 for a kiosk walk-in.
func DisplayCode(source string, date time.Time, slot int) string {
	prefix := "R"
	if source == SourceKiosk {
		prefix = "K"
	}
	return fmt.Sprintf("%s-%s-%03d", prefix, date.Format("0102"), slot)
}

// NewID returns a new reservation id: millisecond timestamp plus a short
// random suffix. Unique for the system's lifetime at this scale.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:6]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
