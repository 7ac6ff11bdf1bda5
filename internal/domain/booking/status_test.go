package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peakreach/agency-api/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		check   func(Status) error
		from    Status
		allowed bool
	}{
		{"confirm pending", CanConfirm, StatusPending, true},
		{"confirm confirmed", CanConfirm, StatusConfirmed, false},
		{"confirm cancelled", CanConfirm, StatusCancelled, false},
		{"confirm completed", CanConfirm, StatusCompleted, false},
		{"confirm no_show", CanConfirm, StatusNoShow, false},

		{"cancel pending", CanCancel, StatusPending, true},
		{"cancel confirmed", CanCancel, StatusConfirmed, true},
		{"cancel cancelled", CanCancel, StatusCancelled, false},
		{"cancel completed", CanCancel, StatusCompleted, false},
		{"cancel no_show", CanCancel, StatusNoShow, false},

		{"complete confirmed", CanComplete, StatusConfirmed, true},
		{"complete pending", CanComplete, StatusPending, false},
		{"complete completed", CanComplete, StatusCompleted, false},

		{"no_show confirmed", CanMarkNoShow, StatusConfirmed, true},
		{"no_show pending", CanMarkNoShow, StatusPending, false},
		{"no_show cancelled", CanMarkNoShow, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check(tt.from)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.True(t, IsValidStatus(s), string(s))
	}

	assert.False(t, IsValidStatus(Status("scheduled")))
	assert.False(t, IsValidStatus(Status("")))
}

func TestDomainActions(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	t.Run("confirm sets status and timestamp", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}
		require.NoError(t, Confirm(b, now))
		assert.Equal(t, string(StatusConfirmed), b.Status)
		require.NotNil(t, b.ConfirmedAt)
		assert.Equal(t, now, *b.ConfirmedAt)
	})

	t.Run("cancel from confirmed", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		require.NoError(t, Cancel(b, now))
		assert.Equal(t, string(StatusCancelled), b.Status)
		require.NotNil(t, b.CancelledAt)
	})

	t.Run("complete requires confirmed", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusPending)}
		assert.Error(t, Complete(b, now))
		assert.Equal(t, string(StatusPending), b.Status)
	})

	t.Run("no_show from confirmed", func(t *testing.T) {
		b := &models.Booking{Status: string(StatusConfirmed)}
		require.NoError(t, MarkNoShow(b))
		assert.Equal(t, string(StatusNoShow), b.Status)
	})

	t.Run("terminal states stay terminal", func(t *testing.T) {
		for _, s := range []Status{StatusCompleted, StatusCancelled, StatusNoShow} {
			b := &models.Booking{Status: string(s)}
			assert.Error(t, Confirm(b, now), string(s))
			assert.Error(t, Cancel(b, now), string(s))
			assert.Error(t, Complete(b, now), string(s))
			assert.Error(t, MarkNoShow(b), string(s))
		}
	})
}
