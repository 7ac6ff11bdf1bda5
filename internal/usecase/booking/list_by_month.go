package booking

import (
	"context"
	"time"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/dto"
	"github.com/peakreach/agency-api/internal/timezone"
)

type ListBookingsByMonth struct {
	repo     domain.Repository
	agencyTZ string
}

func NewListBookingsByMonth(repo domain.Repository, agencyTZ string) *ListBookingsByMonth {
	return &ListBookingsByMonth{
		repo:     repo,
		agencyTZ: agencyTZ,
	}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	loc := timezone.Location(uc.agencyTZ)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, -1) // last day of the month, range is inclusive

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
