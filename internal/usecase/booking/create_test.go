package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/calendar"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
)

type fakeCalendar struct {
	eventID string
	err     error
	calls   int
}

func (f *fakeCalendar) CreateEvent(ctx context.Context, ev calendar.Event) (string, error) {
	f.calls++
	return f.eventID, f.err
}

func newCreateUC(repo domain.Repository, cal EventCreator) *CreateBooking {
	disp := audit.NewDispatcher(audit.New(nil), zap.NewNop())
	return NewCreateBooking(repo, cal, disp, zap.NewNop(), "UTC", 120)
}

// 2030-01-07 is a Monday.
func mondayInput() CreateBookingInput {
	return CreateBookingInput{
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		Phone:     "+1 212 555 0142",
		Company:   "Reyes Roofing",
		Date:      "2030-01-07",
		StartTime: "10:00",
	}
}

func mondayTemplate(max int) models.AvailableTimeSlot {
	return models.AvailableTimeSlot{
		ID: 1, Weekday: 1, StartTime: "10:00", EndTime: "10:30",
		MaxBookings: max, Active: true,
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending booking with slot end time", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		uc := newCreateUC(repo, nil)

		b, err := uc.Execute(ctx, mondayInput())
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusPending), b.Status)
		assert.Equal(t, "10:00", b.StartTime)
		assert.Equal(t, "10:30", b.EndTime)
		assert.NotEmpty(t, b.Reference)
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("rejects invalid phone", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		uc := newCreateUC(repo, nil)

		in := mondayInput()
		in.Phone = "call me"

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "invalid_phone"))
	})

	t.Run("rejects booking too soon", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		uc := newCreateUC(repo, nil)

		in := mondayInput()
		in.Date = time.Now().UTC().Format(domain.DateLayout)
		in.StartTime = "00:00"

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "too_soon"))
	})

	t.Run("rejects blacked out date", func(t *testing.T) {
		repo := &fakeRepo{
			templates: []models.AvailableTimeSlot{mondayTemplate(2)},
			blackouts: []models.BlackoutDate{
				{Date: time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC), Reason: "holiday"},
			},
		}
		uc := newCreateUC(repo, nil)

		_, err := uc.Execute(ctx, mondayInput())
		assert.True(t, httperr.IsBusiness(err, "date_blacked_out"))
		assert.Empty(t, repo.bookings)
	})

	t.Run("rejects unknown slot", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		uc := newCreateUC(repo, nil)

		in := mondayInput()
		in.StartTime = "11:00"

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "slot_not_found"))
	})

	t.Run("rejects full slot", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(1)}}
		uc := newCreateUC(repo, nil)

		_, err := uc.Execute(ctx, mondayInput())
		require.NoError(t, err)

		_, err = uc.Execute(ctx, mondayInput())
		assert.True(t, httperr.IsBusiness(err, "slot_full"))
		assert.Len(t, repo.bookings, 1)
	})

	t.Run("cancelled bookings free capacity", func(t *testing.T) {
		repo := &fakeRepo{
			templates: []models.AvailableTimeSlot{mondayTemplate(1)},
			bookings: []models.Booking{{
				ID:        99,
				Date:      time.Date(2030, 1, 7, 0, 0, 0, 0, time.UTC),
				StartTime: "10:00",
				Status:    string(domain.StatusCancelled),
			}},
		}
		uc := newCreateUC(repo, nil)

		_, err := uc.Execute(ctx, mondayInput())
		assert.NoError(t, err)
	})

	t.Run("calendar success stores event id", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		cal := &fakeCalendar{eventID: "evt_123"}
		uc := newCreateUC(repo, cal)

		b, err := uc.Execute(ctx, mondayInput())
		require.NoError(t, err)

		assert.Equal(t, 1, cal.calls)
		assert.Equal(t, "evt_123", b.CalendarEventID)
		assert.Equal(t, "evt_123", repo.bookings[0].CalendarEventID)
	})

	t.Run("calendar failure does not roll back booking", func(t *testing.T) {
		repo := &fakeRepo{templates: []models.AvailableTimeSlot{mondayTemplate(2)}}
		cal := &fakeCalendar{err: errors.New("calendar down")}
		uc := newCreateUC(repo, cal)

		b, err := uc.Execute(ctx, mondayInput())
		require.NoError(t, err)

		assert.Empty(t, b.CalendarEventID)
		assert.Len(t, repo.bookings, 1)
	})
}
