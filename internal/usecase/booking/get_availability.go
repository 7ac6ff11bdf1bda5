package booking

import (
	"context"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
)

type GetAvailability struct {
	repo         domain.Repository
	maxRangeDays int
}

func NewGetAvailability(repo domain.Repository, maxRangeDays int) *GetAvailability {
	return &GetAvailability{
		repo:         repo,
		maxRangeDays: maxRangeDays,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.DayAvailability, error) {

	if in.To.Before(in.From) {
		return nil, httperr.ErrBusiness("invalid_range")
	}

	days := int(in.To.Sub(in.From).Hours()/24) + 1
	if days > uc.maxRangeDays {
		return nil, httperr.ErrBusiness("range_too_large")
	}

	templates, err := uc.repo.ListActiveTemplates(ctx)
	if err != nil {
		return nil, err
	}

	blackoutRows, err := uc.repo.ListBlackoutDates(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	blackouts := make(map[string]string, len(blackoutRows))
	for _, b := range blackoutRows {
		blackouts[b.Date.Format(domain.DateLayout)] = b.Reason
	}

	bookings, err := uc.repo.ListActiveBookingsInRange(ctx, in.From, in.To)
	if err != nil {
		return nil, err
	}

	booked := make(map[domain.SlotKey]int, len(bookings))
	for _, b := range bookings {
		key := domain.SlotKey{
			Date:  b.Date.Format(domain.DateLayout),
			Start: b.StartTime,
		}
		booked[key]++
	}

	return domain.ExpandAvailability(in.From, in.To, templates, blackouts, booked), nil
}
