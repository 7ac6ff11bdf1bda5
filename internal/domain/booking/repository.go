package booking

import (
	"context"
	"time"

	"github.com/peakreach/agency-api/internal/models"
)

type Repository interface {
	// -------- Slot templates --------
	ListActiveTemplates(
		ctx context.Context,
	) ([]models.AvailableTimeSlot, error)

	GetActiveTemplate(
		ctx context.Context,
		weekday int,
		startTime string,
	) (*models.AvailableTimeSlot, error)

	// -------- Blackout dates --------
	ListBlackoutDates(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.BlackoutDate, error)

	IsBlackedOut(
		ctx context.Context,
		date time.Time,
	) (bool, error)

	// -------- Bookings (capacity) --------
	CountActiveBookings(
		ctx context.Context,
		date time.Time,
		startTime string,
	) (int, error)

	ListActiveBookingsInRange(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)

	// -------- Bookings (lifecycle) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBookingByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	ListBookingsForPeriod(
		ctx context.Context,
		from time.Time,
		to time.Time,
	) ([]models.Booking, error)
}
