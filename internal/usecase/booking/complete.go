package booking

import (
	"context"

	"github.com/peakreach/agency-api/internal/audit"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/timezone"
)

type CompleteBooking struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	agencyTZ string
}

func NewCompleteBooking(
	repo domain.Repository,
	auditDisp *audit.Dispatcher,
	agencyTZ string,
) *CompleteBooking {
	return &CompleteBooking{
		repo:     repo,
		audit:    auditDisp,
		agencyTZ: agencyTZ,
	}
}

func (uc *CompleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingByID(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := timezone.NowIn(uc.agencyTZ)
	if err := domain.Complete(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_completed",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
