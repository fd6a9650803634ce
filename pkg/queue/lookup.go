package queue

import (
	"strconv"
	"strings"
)

// FindByMobile returns the first reservation with the given mobile
// number, preferring active records: a repeat visitor with an old
// completed record and a new active one resolves to the active one.
func FindByMobile(res []Reservation, mobile string) *Reservation {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil
	}
	for i := range res {
		if res[i].Mobile == mobile && res[i].Active() {
			return &res[i]
		}
	}
	for i := range res {
		if res[i].Mobile == mobile {
			return &res[i]
		}
	}
	return nil
}

// FindByDisplayCode returns the first reservation with the given display
// code, active records first. Matching is case-insensitive on the code.
func FindByDisplayCode(res []Reservation, code string) *Reservation {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	for i := range res {
		if res[i].ResNum == code && res[i].Active() {
			return &res[i]
		}
	}
	for i := range res {
		if res[i].ResNum == code {
			return &res[i]
		}
	}
	return nil
}

// numericPart extracts the digits of a BQMS number string, so "L-005"
// compares as 5. ok is false when the string carries no digits.
func numericPart(s string) (int, bool) {
	var b strings.Builder
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// EstimateWait estimates the minutes until the given BQMS number is
// called, from the now-serving number and the category's average service
// time. Numbers ahead of the caller floor at zero ("Next!"); if either
// number has no numeric portion the estimate is unavailable and zero.
func EstimateWait(nowServing, assigned string, avgMinutes int) (minutes int, ahead int, ok bool) {
	serving, okServing := numericPart(nowServing)
	mine, okMine := numericPart(assigned)
	if !okServing || !okMine {
		return 0, 0, false
	}
	ahead = mine - serving
	if ahead < 0 {
		ahead = 0
	}
	return ahead * avgMinutes, ahead, true
}
