package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/middleware"
	ucBooking "github.com/peakreach/agency-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	confirmUC  *ucBooking.ConfirmBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	noShowUC   *ucBooking.MarkNoShow

	listByDateUC  *ucBooking.ListBookingsByDate
	listByMonthUC *ucBooking.ListBookingsByMonth

	agencyTZ string
}

func NewBookingHandler(
	confirmUC *ucBooking.ConfirmBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	noShowUC *ucBooking.MarkNoShow,
	listByDateUC *ucBooking.ListBookingsByDate,
	listByMonthUC *ucBooking.ListBookingsByMonth,
	agencyTZ string,
) *BookingHandler {
	return &BookingHandler{
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		noShowUC:      noShowUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		agencyTZ:      agencyTZ,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	date, err := parseAgencyDate(h.agencyTZ, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(200, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Year and month are required.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
		return
	}

	c.JSON(200, gin.H{
		"year":     year,
		"month":    month,
		"bookings": bookings,
	})
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.changeStatus(c, func(userID, bookingID uint) (any, error) {
		return h.confirmUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.changeStatus(c, func(userID, bookingID uint) (any, error) {
		return h.cancelUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.changeStatus(c, func(userID, bookingID uint) (any, error) {
		return h.completeUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) NoShow(c *gin.Context) {
	h.changeStatus(c, func(userID, bookingID uint) (any, error) {
		return h.noShowUC.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) changeStatus(
	c *gin.Context,
	execute func(userID, bookingID uint) (any, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	b, err := execute(userID, uint(id))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "Booking not found.")
		case httperr.IsBusiness(err, "invalid_state"):
			httperr.BadRequest(c, "invalid_state", "Booking cannot change to that status.")
		default:
			httperr.Internal(c, "failed_to_update_booking", "Failed to update booking.")
		}
		return
	}

	c.JSON(200, b)
}
