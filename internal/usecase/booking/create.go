package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/calendar"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/timezone"
	"github.com/peakreach/agency-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Name  string
	Email string
	Phone string

	Company    string
	Website    string
	Industry   string
	AdBudget   string
	GoalsNotes string

	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	Notes     string
}

// EventCreator is the slice of the calendar client the use case needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, ev calendar.Event) (string, error)
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo     domain.Repository
	cal      EventCreator // nil when calendar integration is disabled
	audit    *audit.Dispatcher
	logger   *zap.Logger
	agencyTZ string

	minAdvanceMinutes int
}

func NewCreateBooking(
	repo domain.Repository,
	cal EventCreator,
	auditDisp *audit.Dispatcher,
	logger *zap.Logger,
	agencyTZ string,
	minAdvanceMinutes int,
) *CreateBooking {
	return &CreateBooking{
		repo:              repo,
		cal:               cal,
		audit:             auditDisp,
		logger:            logger,
		agencyTZ:          agencyTZ,
		minAdvanceMinutes: minAdvanceMinutes,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	if !validators.IsPhoneValid(in.Phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	loc := timezone.Location(uc.agencyTZ)

	date, err := time.ParseInLocation(domain.DateLayout, in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.StartTime,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	minAdvance := uc.minAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(uc.agencyTZ)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	blackedOut, err := uc.repo.IsBlackedOut(ctx, date)
	if err != nil {
		return nil, err
	}
	if blackedOut {
		return nil, httperr.ErrBusiness("date_blacked_out")
	}

	template, err := uc.repo.GetActiveTemplate(ctx, int(date.Weekday()), in.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness("slot_not_found")
	}

	// Re-check capacity right before inserting. This is best effort: two
	// simultaneous submissions can still both pass for the last seat.
	count, err := uc.repo.CountActiveBookings(ctx, date, in.StartTime)
	if err != nil {
		return nil, err
	}
	if count >= template.MaxBookings {
		return nil, httperr.ErrBusiness("slot_full")
	}

	b := &models.Booking{
		Reference:  uuid.NewString(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Company:    in.Company,
		Website:    in.Website,
		Industry:   in.Industry,
		AdBudget:   in.AdBudget,
		GoalsNotes: in.GoalsNotes,
		Date:       date,
		StartTime:  template.StartTime,
		EndTime:    template.EndTime,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	// Calendar event is a side effect, never a rollback reason.
	if uc.cal != nil {
		eventID, err := uc.cal.CreateEvent(ctx, calendar.BuildEvent(b, uc.agencyTZ))
		if err != nil {
			uc.logger.Warn("calendar event creation failed",
				zap.Uint("booking_id", b.ID),
				zap.Error(err),
			)
		} else {
			b.CalendarEventID = eventID
			if err := uc.repo.UpdateBooking(ctx, b); err != nil {
				uc.logger.Warn("failed to store calendar event id",
					zap.Uint("booking_id", b.ID),
					zap.Error(err),
				)
			}
		}
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]any{
			"date":  in.Date,
			"start": in.StartTime,
		},
	})

	return b, nil
}
