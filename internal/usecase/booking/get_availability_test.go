package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
)

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()
	monday := time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		templates: []models.AvailableTimeSlot{
			{Weekday: 1, StartTime: "10:00", EndTime: "10:30", MaxBookings: 2, Active: true},
		},
		blackouts: []models.BlackoutDate{
			{Date: monday.AddDate(0, 0, 1), Reason: "maintenance"},
		},
		bookings: []models.Booking{
			{ID: 1, Date: monday, StartTime: "10:00", Status: string(domain.StatusConfirmed)},
			{ID: 2, Date: monday, StartTime: "10:00", Status: string(domain.StatusCancelled)},
		},
	}

	uc := NewGetAvailability(repo, 62)

	t.Run("computes remaining and blackout days", func(t *testing.T) {
		days, err := uc.Execute(ctx, domain.AvailabilityInput{
			From: monday,
			To:   monday.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
		require.Len(t, days, 2)

		require.Len(t, days[0].Slots, 1)
		assert.Equal(t, 1, days[0].Slots[0].Remaining) // cancelled booking ignored

		assert.True(t, days[1].Blackout)
		assert.Empty(t, days[1].Slots)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.AvailabilityInput{
			From: monday,
			To:   monday.AddDate(0, 0, -1),
		})
		assert.True(t, httperr.IsBusiness(err, "invalid_range"))
	})

	t.Run("rejects oversized range", func(t *testing.T) {
		_, err := uc.Execute(ctx, domain.AvailabilityInput{
			From: monday,
			To:   monday.AddDate(0, 0, 90),
		})
		assert.True(t, httperr.IsBusiness(err, "range_too_large"))
	})

	t.Run("single day range is allowed", func(t *testing.T) {
		days, err := uc.Execute(ctx, domain.AvailabilityInput{From: monday, To: monday})
		require.NoError(t, err)
		assert.Len(t, days, 1)
	})
}
