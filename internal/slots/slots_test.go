package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(day time.Time, h, m int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location())
}

func TestGenerateTimeSlots_FutureDay(t *testing.T) {
	now := time.Date(2026, 1, 5, 14, 10, 0, 0, time.UTC)
	date := time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(date, 45, "09:00", "19:00", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "09:30", slots[1])
	// 18:30 + 45 overruns closing, and the grid never lands on 18:15
	assert.Equal(t, "18:00", slots[len(slots)-1])
	assert.Len(t, slots, 19)
}

func TestGenerateTimeSlots_Today(t *testing.T) {
	now := time.Date(2026, 1, 5, 14, 10, 0, 0, time.UTC)

	slots := GenerateTimeSlots(at(now, 0, 0), 45, "09:00", "19:00", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "14:45", slots[0])
	assert.Equal(t, "15:15", slots[1])
	assert.Equal(t, "18:15", slots[len(slots)-1])
}

func TestGenerateTimeSlots_TodayBeforeOpening(t *testing.T) {
	now := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(now, 30, "09:00", "19:00", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "09:00", slots[0])
}

func TestGenerateTimeSlots_TodayAlreadyAligned(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	slots := GenerateTimeSlots(now, 30, "09:00", "19:00", now)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:30", slots[0])
}

func TestGenerateTimeSlots_TodayAfterClosing(t *testing.T) {
	now := time.Date(2026, 1, 5, 18, 50, 0, 0, time.UTC)

	assert.Empty(t, GenerateTimeSlots(now, 15, "09:00", "19:00", now))
}

func TestGenerateTimeSlots_DurationExceedsWindow(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 3)

	assert.Empty(t, GenerateTimeSlots(future, 601, "09:00", "19:00", now))
	assert.Empty(t, GenerateTimeSlots(now, 601, "09:00", "19:00", now))
}

func TestGenerateTimeSlots_InvalidInput(t *testing.T) {
	now := time.Date(2026, 1, 5, 8, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 1)

	assert.Empty(t, GenerateTimeSlots(future, 0, "09:00", "19:00", now))
	assert.Empty(t, GenerateTimeSlots(future, 30, "nine", "19:00", now))
	assert.Empty(t, GenerateTimeSlots(future, 30, "09:00", "25:00", now))
	assert.Empty(t, GenerateTimeSlots(future, 30, "19:00", "09:00", now))
}

func TestGenerateTimeSlots_Properties(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 2)

	windows := []struct{ open, close string }{
		{"09:00", "19:00"},
		{"08:15", "12:40"},
		{"10:00", "10:30"},
		{"00:00", "23:59"},
	}
	durations := []int{5, 15, 30, 45, 60, 90, 150, 240}

	for _, w := range windows {
		open, _ := ParseClock(w.open)
		closing, _ := ParseClock(w.close)
		for _, d := range durations {
			slots := GenerateTimeSlots(future, d, w.open, w.close, now)
			if d > closing-open {
				assert.Empty(t, slots, "%s-%s/%d", w.open, w.close, d)
				continue
			}
			require.NotEmpty(t, slots, "%s-%s/%d", w.open, w.close, d)
			assert.Equal(t, w.open, slots[0])

			prev := -1
			for _, s := range slots {
				m, err := ParseClock(s)
				require.NoError(t, err)
				if prev >= 0 {
					assert.Equal(t, Step, m-prev)
				}
				prev = m
			}
			assert.LessOrEqual(t, prev+d, closing)
			assert.Greater(t, prev+d+Step, closing)
		}
	}
}

func TestGenerateTimeSlots_TodayRespectsLeadTime(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	for minute := 9 * 60; minute < 19*60; minute += 7 {
		now := day.Add(time.Duration(minute) * time.Minute)
		earliest := roundUp(minute+LeadTime, Alignment)

		for _, s := range GenerateTimeSlots(day, 30, "09:00", "19:00", now) {
			m, err := ParseClock(s)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, m, earliest, "now=%s slot=%s", FormatClock(minute), s)
		}
	}
}

func TestGenerateTimeSlots_Deterministic(t *testing.T) {
	now := time.Date(2026, 1, 5, 11, 22, 0, 0, time.UTC)
	a := GenerateTimeSlots(now, 60, "09:00", "19:00", now)
	b := GenerateTimeSlots(now, 60, "09:00", "19:00", now)
	assert.Equal(t, a, b)
}

func TestParseAndFormatClock(t *testing.T) {
	m, err := ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 545, m)
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(0))

	_, err = ParseClock("12:60")
	assert.Error(t, err)
	_, err = ParseClock("")
	assert.Error(t, err)
}

func TestAvailableDates(t *testing.T) {
	now := time.Date(2026, 1, 30, 16, 45, 0, 0, time.UTC)

	dates := AvailableDates(now, 14)

	require.Len(t, dates, 14)
	assert.Equal(t, time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC), dates[13])
	for _, d := range dates {
		assert.True(t, InWindow(d, now, 14))
	}
	assert.False(t, InWindow(now.AddDate(0, 0, -1), now, 14))
	assert.False(t, InWindow(now.AddDate(0, 0, 14), now, 14))
}
