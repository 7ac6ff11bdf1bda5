package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
)

type SlotHandler struct {
	db *gorm.DB
}

func NewSlotHandler(db *gorm.DB) *SlotHandler {
	return &SlotHandler{db: db}
}

type SlotTemplateConfig struct {
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	StartTime   string `json:"start_time" binding:"required"`
	EndTime     string `json:"end_time" binding:"required"`
	MaxBookings int    `json:"max_bookings" binding:"required,min=1"`
	Active      bool   `json:"active"`
}

type SlotTemplatesUpdateRequest struct {
	Slots []SlotTemplateConfig `json:"slots" binding:"required"`
}

func (h *SlotHandler) List(c *gin.Context) {
	var slots []models.AvailableTimeSlot
	if err := h.db.
		Order("weekday ASC, start_time ASC").
		Find(&slots).Error; err != nil {

		httperr.Internal(c, "failed_to_list_slots", "Failed to list slot templates.")
		return
	}

	c.JSON(http.StatusOK, slots)
}

// Update replaces the full weekly schedule in one shot. Existing bookings
// are untouched; they keep whatever date+time they were made for.
func (h *SlotHandler) Update(c *gin.Context) {
	var req SlotTemplatesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid slot template data.")
		return
	}

	seen := map[string]bool{}
	for _, s := range req.Slots {
		key := fmt.Sprintf("%d-%s", s.Weekday, s.StartTime)
		if seen[key] {
			httperr.BadRequest(c, "duplicate_slot",
				"Two templates share the same weekday and start time.")
			return
		}
		seen[key] = true
	}

	if err := h.db.Where("1 = 1").Delete(&models.AvailableTimeSlot{}).Error; err != nil {
		httperr.Internal(c, "failed_to_clear_existing_slots", "Failed to replace slot templates.")
		return
	}

	var toCreate []models.AvailableTimeSlot
	for _, s := range req.Slots {
		toCreate = append(toCreate, models.AvailableTimeSlot{
			Weekday:     s.Weekday,
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			MaxBookings: s.MaxBookings,
			Active:      s.Active,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			httperr.Internal(c, "failed_to_save_slots", "Failed to save slot templates.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "count": len(toCreate)})
}
