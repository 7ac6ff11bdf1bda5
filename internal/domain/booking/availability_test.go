package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakreach/agency-api/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandAvailability(t *testing.T) {
	// 2026-03-09 is a Monday.
	monday := date(2026, 3, 9)

	templates := []models.AvailableTimeSlot{
		{Weekday: 1, StartTime: "10:00", EndTime: "10:30", MaxBookings: 2, Active: true},
		{Weekday: 1, StartTime: "14:00", EndTime: "14:30", MaxBookings: 1, Active: true},
		{Weekday: 2, StartTime: "09:00", EndTime: "09:30", MaxBookings: 3, Active: true},
		{Weekday: 2, StartTime: "16:00", EndTime: "16:30", MaxBookings: 1, Active: false},
	}

	t.Run("expands templates per weekday", func(t *testing.T) {
		days := ExpandAvailability(monday, monday.AddDate(0, 0, 1), templates, nil, nil)
		require.Len(t, days, 2)

		require.Len(t, days[0].Slots, 2)
		assert.Equal(t, "2026-03-09", days[0].Date)
		assert.Equal(t, "10:00", days[0].Slots[0].Start)
		assert.Equal(t, 2, days[0].Slots[0].Remaining)
		assert.Equal(t, "14:00", days[0].Slots[1].Start)

		// Tuesday: inactive 16:00 template is never offered.
		require.Len(t, days[1].Slots, 1)
		assert.Equal(t, "09:00", days[1].Slots[0].Start)
	})

	t.Run("blackout suppresses all slots", func(t *testing.T) {
		blackouts := map[string]string{"2026-03-09": "team offsite"}

		days := ExpandAvailability(monday, monday, templates, blackouts, nil)
		require.Len(t, days, 1)
		assert.True(t, days[0].Blackout)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("remaining is max minus booked", func(t *testing.T) {
		booked := map[SlotKey]int{
			{Date: "2026-03-09", Start: "10:00"}: 1,
		}

		days := ExpandAvailability(monday, monday, templates, nil, booked)
		require.Len(t, days, 1)
		assert.Equal(t, 1, days[0].Slots[0].Remaining)
		assert.Equal(t, 1, days[0].Slots[1].Remaining)
	})

	t.Run("remaining clamps at zero", func(t *testing.T) {
		booked := map[SlotKey]int{
			{Date: "2026-03-09", Start: "14:00"}: 5,
		}

		days := ExpandAvailability(monday, monday, templates, nil, booked)
		require.Len(t, days, 1)
		assert.Equal(t, 0, days[0].Slots[1].Remaining)
	})

	t.Run("fully booked slots stay listed", func(t *testing.T) {
		booked := map[SlotKey]int{
			{Date: "2026-03-09", Start: "10:00"}: 2,
			{Date: "2026-03-09", Start: "14:00"}: 1,
		}

		days := ExpandAvailability(monday, monday, templates, nil, booked)
		require.Len(t, days[0].Slots, 2)
		for _, s := range days[0].Slots {
			assert.Equal(t, 0, s.Remaining)
		}
	})

	t.Run("day without templates has empty slot list", func(t *testing.T) {
		sunday := date(2026, 3, 8)
		days := ExpandAvailability(sunday, sunday, templates, nil, nil)
		require.Len(t, days, 1)
		assert.NotNil(t, days[0].Slots)
		assert.Empty(t, days[0].Slots)
	})

	t.Run("slots sorted by start time", func(t *testing.T) {
		shuffled := []models.AvailableTimeSlot{
			{Weekday: 1, StartTime: "14:00", EndTime: "14:30", MaxBookings: 1, Active: true},
			{Weekday: 1, StartTime: "09:00", EndTime: "09:30", MaxBookings: 1, Active: true},
		}

		days := ExpandAvailability(monday, monday, shuffled, nil, nil)
		require.Len(t, days[0].Slots, 2)
		assert.Equal(t, "09:00", days[0].Slots[0].Start)
		assert.Equal(t, "14:00", days[0].Slots[1].Start)
	})
}
