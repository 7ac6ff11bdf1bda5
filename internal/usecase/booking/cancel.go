package booking

import (
	"context"

	"github.com/peakreach/agency-api/internal/audit"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/timezone"
)

type CancelBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	agencyTZ string
}

func NewCancelBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	agencyTZ string,
) *CancelBooking {
	return &CancelBooking{
		repo:     repo,
		audit:    auditDisp,
		agencyTZ: agencyTZ,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.agencyTZ)
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
