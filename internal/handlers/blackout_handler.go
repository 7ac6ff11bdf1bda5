package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/middleware"
	"github.com/peakreach/agency-api/internal/models"
)

type BlackoutHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	agencyTZ string
}

func NewBlackoutHandler(db *gorm.DB, auditDisp *audit.Dispatcher, agencyTZ string) *BlackoutHandler {
	return &BlackoutHandler{db: db, audit: auditDisp, agencyTZ: agencyTZ}
}

type CreateBlackoutRequest struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (h *BlackoutHandler) List(c *gin.Context) {
	var dates []models.BlackoutDate
	if err := h.db.Order("date ASC").Find(&dates).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blackouts", "Failed to list blackout dates.")
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *BlackoutHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBlackoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid blackout data.")
		return
	}

	date, err := parseAgencyDate(h.agencyTZ, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	var count int64
	h.db.Model(&models.BlackoutDate{}).Where("date = ?", req.Date).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "blackout_already_exists", "That date is already blacked out.")
		return
	}

	blackout := models.BlackoutDate{
		Date:   date,
		Reason: req.Reason,
	}

	if err := h.db.Create(&blackout).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blackout", "Failed to create blackout date.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "blackout_created",
		Entity:   "blackout_date",
		EntityID: &blackout.ID,
		Metadata: map[string]any{"date": req.Date},
	})

	c.JSON(http.StatusCreated, blackout)
}

func (h *BlackoutHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var blackout models.BlackoutDate
	if err := h.db.First(&blackout, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "blackout_not_found", "Blackout date not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_blackout", "Failed to load blackout date.")
		return
	}

	if err := h.db.Delete(&blackout).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blackout", "Failed to delete blackout date.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "blackout_deleted",
		Entity:   "blackout_date",
		EntityID: &blackout.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
