package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-06-02 is a Monday.
var monday = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

func TestResolveDay_SameWeek(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		offset int
		day    string
	}{
		{"monday today", monday, 0, "monday"},
		{"monday tomorrow", monday, 1, "tuesday"},
		{"wednesday today", monday.AddDate(0, 0, 2), 0, "wednesday"},
		{"saturday tomorrow", monday.AddDate(0, 0, 5), 1, "sunday"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveDay(tc.now, tc.offset)
			assert.Equal(t, tc.day, got.Day)
			assert.False(t, got.NextWeek)
		})
	}
}

func TestResolveDay_SundayTomorrowRollsIntoNextWeek(t *testing.T) {
	sunday := monday.AddDate(0, 0, 6)
	got := ResolveDay(sunday, 1)
	assert.Equal(t, "monday", got.Day)
	assert.True(t, got.NextWeek, "the roster week ends on Sunday; tomorrow lives in next week's view")
}

func TestResolveDay_NextWeekOnlyPastSunday(t *testing.T) {
	// With a one-day offset, exactly one weekday crosses the boundary.
	for i := 0; i < 7; i++ {
		now := monday.AddDate(0, 0, i)
		got := ResolveDay(now, 1)
		assert.Equal(t, now.Weekday() == time.Sunday, got.NextWeek, "starting from %s", now.Weekday())
	}
}

func TestDayTarget_DisplayName(t *testing.T) {
	assert.Equal(t, "Dinsdag", DayTarget{Day: "tuesday"}.DisplayName())
	assert.Equal(t, "someday", DayTarget{Day: "someday"}.DisplayName())
}
