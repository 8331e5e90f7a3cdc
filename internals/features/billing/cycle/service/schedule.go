package service

import (
	"time"
)

// Window is one billing interval. Both bounds are inclusive dates; the window
// ends the day before the next anchored start, so consecutive windows are
// contiguous with no gap and no overlap.
type Window struct {
	Start time.Time
	End   time.Time
}

// DefaultHorizonMonths is how far past "now" Schedule pre-generates.
const DefaultHorizonMonths = 2

// anchoredStart returns the cycle start k months after the booking month,
// on the booking day-of-month clamped to the target month's length.
// Booking on the 31st lands on Feb 29 in a leap year and back on the 31st
// in March.
func anchoredStart(bookingDate time.Time, k int) time.Time {
	y, m, anchorDay := bookingDate.Date()
	first := time.Date(y, m+time.Month(k), 1, 0, 0, 0, 0, time.UTC)
	day := anchorDay
	if last := daysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

func daysInMonth(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WindowAt returns the k-th billing window for a booking date.
func WindowAt(bookingDate time.Time, k int) Window {
	return Window{
		Start: anchoredStart(bookingDate, k),
		End:   anchoredStart(bookingDate, k+1).AddDate(0, 0, -1),
	}
}

// Schedule computes every billing window from the booking date whose end
// still falls within now + horizonMonths. The first window past the horizon
// is not generated; it appears on the next invocation once "now" has moved.
func Schedule(bookingDate, now time.Time, horizonMonths int) []Window {
	bookingDate = dateOnly(bookingDate)
	horizonEnd := dateOnly(now).AddDate(0, horizonMonths, 0)

	var windows []Window
	for k := 0; ; k++ {
		w := WindowAt(bookingDate, k)
		if w.End.After(horizonEnd) {
			break
		}
		windows = append(windows, w)
	}
	return windows
}

// CurrentWindow returns the window containing asOf, if the schedule has
// reached that far.
func CurrentWindow(bookingDate, asOf time.Time) (Window, bool) {
	asOf = dateOnly(asOf)
	if asOf.Before(dateOnly(bookingDate)) {
		return Window{}, false
	}
	for k := 0; ; k++ {
		w := WindowAt(bookingDate, k)
		if !asOf.Before(w.Start) && !asOf.After(w.End) {
			return w, true
		}
		if w.Start.After(asOf) {
			return Window{}, false
		}
	}
}

// DaysLeft counts whole days from asOf until the window end, clamped at zero
// once the end has passed.
func DaysLeft(end, asOf time.Time) int {
	d := dateOnly(end).Sub(dateOnly(asOf))
	days := int(d.Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// IsOverdue reports an unpaid window whose end has passed.
func IsOverdue(paid bool, end, asOf time.Time) bool {
	return !paid && dateOnly(end).Before(dateOnly(asOf))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
