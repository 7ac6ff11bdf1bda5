package booking

import (
	"context"
	"errors"
	"time"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/models"
)

var errNotFound = errors.New("not found")

// fakeRepo is an in-memory Repository for use-case tests.
type fakeRepo struct {
	templates []models.AvailableTimeSlot
	blackouts []models.BlackoutDate
	bookings  []models.Booking

	createErr error
	updateErr error
}

func (f *fakeRepo) ListActiveTemplates(ctx context.Context) ([]models.AvailableTimeSlot, error) {
	var out []models.AvailableTimeSlot
	for _, t := range f.templates {
		if t.Active {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetActiveTemplate(ctx context.Context, weekday int, startTime string) (*models.AvailableTimeSlot, error) {
	for i, t := range f.templates {
		if t.Active && t.Weekday == weekday && t.StartTime == startTime {
			return &f.templates[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) ListBlackoutDates(ctx context.Context, from, to time.Time) ([]models.BlackoutDate, error) {
	var out []models.BlackoutDate
	for _, b := range f.blackouts {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) IsBlackedOut(ctx context.Context, date time.Time) (bool, error) {
	for _, b := range f.blackouts {
		if b.Date.Format(domain.DateLayout) == date.Format(domain.DateLayout) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) CountActiveBookings(ctx context.Context, date time.Time, startTime string) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.Date.Format(domain.DateLayout) == date.Format(domain.DateLayout) &&
			b.StartTime == startTime &&
			b.Status != string(domain.StatusCancelled) {
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) ListActiveBookingsInRange(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.Date.Before(from) && !b.Date.After(to) && b.Status != string(domain.StatusCancelled) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = uint(len(f.bookings) + 1)
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) GetBookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	for i, b := range f.bookings {
		if b.ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	for i := range f.bookings {
		if f.bookings[i].ID == b.ID {
			f.bookings[i] = *b
			return nil
		}
	}
	return errNotFound
}

func (f *fakeRepo) ListBookingsForPeriod(ctx context.Context, from, to time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if !b.Date.Before(from) && !b.Date.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
