package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/audit"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
)

func newStatusRepo(status domain.Status) *fakeRepo {
	return &fakeRepo{
		bookings: []models.Booking{{
			ID:        1,
			Date:      time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
			StartTime: "10:00",
			Status:    string(status),
		}},
	}
}

func noopDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zap.NewNop())
}

func TestConfirmBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms pending booking", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusPending)
		uc := NewConfirmBooking(repo, noopDispatcher(), "UTC")

		b, err := uc.Execute(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusConfirmed), b.Status)
		assert.Equal(t, string(domain.StatusConfirmed), repo.bookings[0].Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		uc := NewConfirmBooking(&fakeRepo{}, noopDispatcher(), "UTC")

		_, err := uc.Execute(ctx, 7, 42)
		assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	})

	t.Run("cannot confirm twice", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusConfirmed)
		uc := NewConfirmBooking(repo, noopDispatcher(), "UTC")

		_, err := uc.Execute(ctx, 7, 1)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("cancels confirmed booking", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusConfirmed)
		uc := NewCancelBooking(repo, noopDispatcher(), "UTC")

		b, err := uc.Execute(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), b.Status)
		assert.NotNil(t, b.CancelledAt)
	})

	t.Run("cannot cancel completed booking", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusCompleted)
		uc := NewCancelBooking(repo, noopDispatcher(), "UTC")

		_, err := uc.Execute(ctx, 7, 1)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}

func TestCompleteAndNoShow(t *testing.T) {
	ctx := context.Background()

	t.Run("completes confirmed booking", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusConfirmed)
		uc := NewCompleteBooking(repo, noopDispatcher(), "UTC")

		b, err := uc.Execute(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), b.Status)
	})

	t.Run("marks confirmed booking as no show", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusConfirmed)
		uc := NewMarkNoShow(repo, noopDispatcher())

		b, err := uc.Execute(ctx, 7, 1)
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusNoShow), b.Status)
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		repo := newStatusRepo(domain.StatusPending)
		uc := NewCompleteBooking(repo, noopDispatcher(), "UTC")

		_, err := uc.Execute(ctx, 7, 1)
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	})
}
