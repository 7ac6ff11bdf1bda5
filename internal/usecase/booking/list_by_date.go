package booking

import (
	"context"
	"time"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/dto"
	"github.com/peakreach/agency-api/internal/models"
)

type ListBookingsByDate struct {
	repo domain.Repository
}

func NewListBookingsByDate(repo domain.Repository) *ListBookingsByDate {
	return &ListBookingsByDate{repo: repo}
}

func (uc *ListBookingsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, date, date)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}

func toListDTOs(bookings []models.Booking) []dto.BookingListDTO {
	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:        b.ID,
			Reference: b.Reference,
			Date:      b.Date,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
			Name:      b.Name,
			Company:   b.Company,
			Email:     b.Email,
			Phone:     b.Phone,
		})
	}
	return out
}
