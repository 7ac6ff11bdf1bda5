package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/httpresp"
	"github.com/peakreach/agency-api/internal/middleware"
	"github.com/peakreach/agency-api/internal/models"
)

type LeadHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewLeadHandler(db *gorm.DB, auditDisp *audit.Dispatcher) *LeadHandler {
	return &LeadHandler{db: db, audit: auditDisp}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Website string `json:"website"`
	Source  string `json:"source" binding:"required"`
	Message string `json:"message"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

var validLeadStatuses = map[string]bool{
	models.LeadNew:       true,
	models.LeadContacted: true,
	models.LeadQualified: true,
	models.LeadDiscarded: true,
}

// ======================================================
// CREATE (PUBLIC WIDGETS)
// ======================================================

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid lead data.")
		return
	}

	lead := models.Lead{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   req.Phone,
		Company: req.Company,
		Website: req.Website,
		Source:  strings.ToLower(req.Source),
		Message: req.Message,
		Status:  models.LeadNew,
	}

	if err := h.db.Create(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_create_lead", "Failed to save your details.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "lead_created",
		Entity:   "lead",
		EntityID: &lead.ID,
		Metadata: map[string]any{"source": lead.Source},
	})

	c.JSON(http.StatusCreated, gin.H{"id": lead.ID, "status": lead.Status})
}

// ======================================================
// LIST (ADMIN)
// ======================================================

func (h *LeadHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	source := strings.ToLower(strings.TrimSpace(c.Query("source")))
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Lead{})

	if status != "" {
		q = q.Where("status = ?", status)
	}

	if source != "" {
		q = q.Where("source = ?", source)
	}

	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(company) LIKE ?",
			like, like, like,
		)
	}

	var leads []models.Lead
	if err := q.Order("created_at DESC").Find(&leads).Error; err != nil {
		httperr.Internal(c, "failed_to_list_leads", "Failed to list leads.")
		return
	}

	httpresp.List(c, leads)
}

// ======================================================
// UPDATE STATUS (ADMIN)
// ======================================================

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var lead models.Lead
	if err := h.db.First(&lead, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "lead_not_found", "Lead not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_lead", "Failed to load lead.")
		return
	}

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if !validLeadStatuses[req.Status] {
		httperr.BadRequest(c, "invalid_status", "Unknown lead status.")
		return
	}

	lead.Status = req.Status
	if err := h.db.Save(&lead).Error; err != nil {
		httperr.Internal(c, "failed_to_update_lead", "Failed to update lead.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "lead_status_changed",
		Entity:   "lead",
		EntityID: &lead.ID,
		Metadata: map[string]any{"status": lead.Status},
	})

	c.JSON(http.StatusOK, lead)
}
