package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Slot templates
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveTemplates(
	ctx context.Context,
) ([]models.AvailableTimeSlot, error) {

	var templates []models.AvailableTimeSlot
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("weekday ASC, start_time ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

func (r *BookingGormRepository) GetActiveTemplate(
	ctx context.Context,
	weekday int,
	startTime string,
) (*models.AvailableTimeSlot, error) {

	var t models.AvailableTimeSlot
	if err := r.db.WithContext(ctx).
		Where("weekday = ? AND start_time = ? AND active = true", weekday, startTime).
		First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// --------------------------------------------------
// Blackout dates
// --------------------------------------------------

func (r *BookingGormRepository) ListBlackoutDates(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.BlackoutDate, error) {

	var dates []models.BlackoutDate
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("date ASC").
		Find(&dates).Error; err != nil {
		return nil, err
	}
	return dates, nil
}

func (r *BookingGormRepository) IsBlackedOut(
	ctx context.Context,
	date time.Time,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BlackoutDate{}).
		Where("date = ?", date.Format(domain.DateLayout)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Bookings (capacity)
// --------------------------------------------------

func (r *BookingGormRepository) CountActiveBookings(
	ctx context.Context,
	date time.Time,
	startTime string,
) (int, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"date = ? AND start_time = ? AND status <> ?",
			date.Format(domain.DateLayout),
			startTime,
			string(domain.StatusCancelled),
		).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *BookingGormRepository) ListActiveBookingsInRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("date", "start_time", "end_time", "status").
		Where(
			"date >= ? AND date <= ? AND status <> ?",
			from.Format(domain.DateLayout),
			to.Format(domain.DateLayout),
			string(domain.StatusCancelled),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Bookings (lifecycle)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"date >= ? AND date <= ?",
			from.Format(domain.DateLayout),
			to.Format(domain.DateLayout),
		).
		Order("date ASC, start_time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
