package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSchedule_LeapYearClamping(t *testing.T) {
	booking := date(2024, time.January, 31)
	now := date(2024, time.March, 10)

	windows := Schedule(booking, now, 2)
	require.Len(t, windows, 3)

	assert.Equal(t, date(2024, time.January, 31), windows[0].Start)
	assert.Equal(t, date(2024, time.February, 28), windows[0].End)

	// Feb has no 31st; the start clamps to the leap-year 29th
	assert.Equal(t, date(2024, time.February, 29), windows[1].Start)
	assert.Equal(t, date(2024, time.March, 30), windows[1].End)

	// March recovers the 31st anchor
	assert.Equal(t, date(2024, time.March, 31), windows[2].Start)
	assert.Equal(t, date(2024, time.April, 29), windows[2].End)
}

func TestSchedule_NonLeapFebruaryClamp(t *testing.T) {
	booking := date(2023, time.January, 31)
	windows := Schedule(booking, date(2023, time.March, 1), 2)
	require.GreaterOrEqual(t, len(windows), 2)

	assert.Equal(t, date(2023, time.February, 28), windows[1].Start)
	assert.Equal(t, date(2023, time.March, 30), windows[1].End)
}

func TestSchedule_WindowsAreContiguous(t *testing.T) {
	bookings := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.March, 1),
		date(2023, time.December, 30),
		date(2024, time.February, 29),
	}
	for _, booking := range bookings {
		windows := Schedule(booking, booking.AddDate(1, 0, 0), 2)
		require.NotEmpty(t, windows)
		assert.Equal(t, booking, windows[0].Start)
		for i := 1; i < len(windows); i++ {
			gap := windows[i].Start.Sub(windows[i-1].End)
			assert.Equal(t, 24*time.Hour, gap,
				"window %d must start the day after window %d ends for booking %s",
				i, i-1, booking.Format("2006-01-02"))
		}
	}
}

func TestSchedule_HorizonExcludesUnfinishedWindow(t *testing.T) {
	booking := date(2024, time.January, 31)
	now := date(2024, time.March, 10)

	// horizon end is 2024-05-10; the Apr 30 window ends May 30 and is not
	// generated yet
	windows := Schedule(booking, now, 2)
	last := windows[len(windows)-1]
	assert.Equal(t, date(2024, time.March, 31), last.Start)

	// a month later it appears
	windows = Schedule(booking, date(2024, time.April, 10), 2)
	last = windows[len(windows)-1]
	assert.Equal(t, date(2024, time.April, 30), last.Start)
}

func TestWindowAt_EndIsDayBeforeNextStart(t *testing.T) {
	booking := date(2024, time.May, 15)
	w0 := WindowAt(booking, 0)
	w1 := WindowAt(booking, 1)
	assert.Equal(t, w1.Start.AddDate(0, 0, -1), w0.End)
	assert.Equal(t, date(2024, time.June, 15), w1.Start)
}

func TestCurrentWindow(t *testing.T) {
	booking := date(2024, time.January, 31)

	w, ok := CurrentWindow(booking, date(2024, time.March, 10))
	require.True(t, ok)
	assert.Equal(t, date(2024, time.February, 29), w.Start)
	assert.Equal(t, date(2024, time.March, 30), w.End)

	// boundary days belong to the window
	w, ok = CurrentWindow(booking, date(2024, time.February, 29))
	require.True(t, ok)
	assert.Equal(t, date(2024, time.February, 29), w.Start)

	w, ok = CurrentWindow(booking, date(2024, time.March, 30))
	require.True(t, ok)
	assert.Equal(t, date(2024, time.February, 29), w.Start)

	_, ok = CurrentWindow(booking, date(2024, time.January, 1))
	assert.False(t, ok)
}

func TestDaysLeft_ClampsAtZero(t *testing.T) {
	end := date(2024, time.March, 30)
	assert.Equal(t, 20, DaysLeft(end, date(2024, time.March, 10)))
	assert.Equal(t, 0, DaysLeft(end, date(2024, time.March, 30)))
	assert.Equal(t, 0, DaysLeft(end, date(2024, time.April, 5)))
}

func TestIsOverdue(t *testing.T) {
	end := date(2024, time.March, 30)
	assert.False(t, IsOverdue(false, end, date(2024, time.March, 30)))
	assert.True(t, IsOverdue(false, end, date(2024, time.March, 31)))
	assert.False(t, IsOverdue(true, end, date(2024, time.April, 15)))
}
