package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	ucBooking "github.com/peakreach/agency-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC  *ucBooking.GetAvailability
	createBookingUC *ucBooking.CreateBooking

	agencyTZ string
}

func NewPublicHandler(
	availabilityUC *ucBooking.GetAvailability,
	createBookingUC *ucBooking.CreateBooking,
	agencyTZ string,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC:  availabilityUC,
		createBookingUC: createBookingUC,
		agencyTZ:        agencyTZ,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required"`

	Company    string `json:"company"`
	Website    string `json:"website"`
	Industry   string `json:"industry"`
	AdBudget   string `json:"ad_budget"`
	GoalsNotes string `json:"goals_notes"`

	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:MM
	Notes     string `json:"notes"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	fromStr := c.Query("from")
	toStr := c.DefaultQuery("to", fromStr)

	if fromStr == "" {
		httperr.BadRequest(c, "missing_params", "A from date is required.")
		return
	}

	from, err := parseAgencyDate(h.agencyTZ, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid from date.")
		return
	}

	to, err := parseAgencyDate(h.agencyTZ, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid to date.")
		return
	}

	days, err := h.availabilityUC.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{From: from, To: to},
	)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_range"):
			httperr.BadRequest(c, "invalid_range", "The to date is before the from date.")
		case httperr.IsBusiness(err, "range_too_large"):
			httperr.BadRequest(c, "range_too_large", "Requested range is too large.")
		default:
			httperr.Internal(c, "availability_failed", "Failed to compute availability.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": days})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createBookingUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Company:    req.Company,
			Website:    req.Website,
			Industry:   req.Industry,
			AdBudget:   req.AdBudget,
			GoalsNotes: req.GoalsNotes,
			Date:       req.Date,
			StartTime:  req.StartTime,
			Notes:      req.Notes,
		},
	)
	if err != nil {
		mapCreateBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference":  b.Reference,
		"date":       b.Date.Format(domain.DateLayout),
		"start_time": b.StartTime,
		"end_time":   b.EndTime,
		"status":     b.Status,
	})
}

func mapCreateBookingError(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_phone":
		httperr.BadRequest(c, "invalid_phone", "Phone number looks invalid.")
	case "invalid_date", "invalid_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	case "too_soon":
		httperr.BadRequest(c, "too_soon", "Calls must be booked further in advance.")
	case "date_blacked_out":
		httperr.Conflict(c, "date_blacked_out", "That date is not available.")
	case "slot_not_found":
		httperr.BadRequest(c, "slot_not_found", "No slot exists at that time.")
	case "slot_full":
		httperr.Conflict(c, "slot_full", "That slot is fully booked.")
	default:
		httperr.Internal(c, "failed_to_create_booking", "Failed to create booking.")
	}
}
