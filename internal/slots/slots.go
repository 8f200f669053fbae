package slots

import (
	"fmt"
	"time"
)

const (
	// Step is the distance between consecutive slot start times
	Step = 30
	// LeadTime is the minimum notice for a same-day booking
	LeadTime = 30
	// Alignment is the grid same-day start times are rounded up to
	Alignment = 15
)

// ParseClock converts "HH:MM" into minutes since midnight
func ParseClock(value string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(value, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", value, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", value)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes since midnight as zero-padded "HH:MM"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// GenerateTimeSlots returns the start times a service of the given duration
// can be booked at on date, within [openingTime, closingTime].
//
// When date falls on the same calendar day as now the first slot is at least
// LeadTime minutes away, rounded up to the next Alignment boundary. Slots are
// Step minutes apart and each must end no later than closing time. Invalid
// hours or a non-positive duration yield no slots.
func GenerateTimeSlots(date time.Time, durationMinutes int, openingTime, closingTime string, now time.Time) []string {
	if durationMinutes <= 0 {
		return nil
	}
	open, err := ParseClock(openingTime)
	if err != nil {
		return nil
	}
	closing, err := ParseClock(closingTime)
	if err != nil {
		return nil
	}

	cursor := open
	if SameDay(date, now) {
		cursor = max(cursor, now.Hour()*60+now.Minute()+LeadTime)
		cursor = roundUp(cursor, Alignment)
	}

	var slots []string
	for ; cursor+durationMinutes <= closing; cursor += Step {
		slots = append(slots, FormatClock(cursor))
	}
	return slots
}

// SameDay reports whether a and b fall on the same calendar day in a's location
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to local midnight
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AvailableDates returns the next days calendar dates starting with today
func AvailableDates(now time.Time, days int) []time.Time {
	today := StartOfDay(now)
	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, today.AddDate(0, 0, i))
	}
	return dates
}

// InWindow reports whether date is one of AvailableDates(now, days)
func InWindow(date, now time.Time, days int) bool {
	today := StartOfDay(now)
	day := StartOfDay(date.In(now.Location()))
	return !day.Before(today) && day.Before(today.AddDate(0, 0, days))
}

func roundUp(value, multiple int) int {
	if r := value % multiple; r != 0 {
		return value + multiple - r
	}
	return value
}
