package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/httpresp"
	"github.com/peakreach/agency-api/internal/middleware"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/storage"
	"github.com/peakreach/agency-api/internal/timezone"
)

type CaseStudyHandler struct {
	db       *gorm.DB
	images   *storage.ImageResolver // nil when object storage is unconfigured
	audit    *audit.Dispatcher
	agencyTZ string
}

func NewCaseStudyHandler(
	db *gorm.DB,
	images *storage.ImageResolver,
	auditDisp *audit.Dispatcher,
	agencyTZ string,
) *CaseStudyHandler {
	return &CaseStudyHandler{
		db:       db,
		images:   images,
		audit:    auditDisp,
		agencyTZ: agencyTZ,
	}
}

// --------- Requests ---------

type CreateCaseStudyRequest struct {
	Title      string   `json:"title" binding:"required"`
	Slug       string   `json:"slug" binding:"required"`
	ClientName string   `json:"client_name"`
	Industry   string   `json:"industry"`
	Challenge  string   `json:"challenge"`
	Solution   string   `json:"solution"`
	Results    string   `json:"results"`
	Metrics    string   `json:"metrics"`
	ImageKeys  []string `json:"image_keys"`
}

type UpdateCaseStudyRequest struct {
	Title      *string   `json:"title,omitempty"`
	ClientName *string   `json:"client_name,omitempty"`
	Industry   *string   `json:"industry,omitempty"`
	Challenge  *string   `json:"challenge,omitempty"`
	Solution   *string   `json:"solution,omitempty"`
	Results    *string   `json:"results,omitempty"`
	Metrics    *string   `json:"metrics,omitempty"`
	ImageKeys  *[]string `json:"image_keys,omitempty"`
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *CaseStudyHandler) List(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))

	q := h.db.Model(&models.CaseStudy{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var studies []models.CaseStudy
	if err := q.Order("created_at DESC").Find(&studies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_case_studies", "Failed to list case studies.")
		return
	}

	httpresp.List(c, studies)
}

func (h *CaseStudyHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid case study data.")
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	var count int64
	h.db.Model(&models.CaseStudy{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "slug_already_exists", "A case study with that slug exists.")
		return
	}

	keys, _ := json.Marshal(req.ImageKeys)

	cs := models.CaseStudy{
		Title:      req.Title,
		Slug:       slug,
		ClientName: req.ClientName,
		Industry:   req.Industry,
		Challenge:  req.Challenge,
		Solution:   req.Solution,
		Results:    req.Results,
		Metrics:    req.Metrics,
		ImageKeys:  string(keys),
		Status:     models.CaseStudyDraft,
	}

	if err := h.db.Create(&cs).Error; err != nil {
		httperr.Internal(c, "failed_to_create_case_study", "Failed to create case study.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "case_study_created",
		Entity:   "case_study",
		EntityID: &cs.ID,
	})

	c.JSON(http.StatusCreated, cs)
}

func (h *CaseStudyHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var cs models.CaseStudy
	if err := h.db.First(&cs, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "case_study_not_found", "Case study not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_case_study", "Failed to load case study.")
		return
	}

	var req UpdateCaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid case study data.")
		return
	}

	if req.Title != nil {
		cs.Title = *req.Title
	}
	if req.ClientName != nil {
		cs.ClientName = *req.ClientName
	}
	if req.Industry != nil {
		cs.Industry = *req.Industry
	}
	if req.Challenge != nil {
		cs.Challenge = *req.Challenge
	}
	if req.Solution != nil {
		cs.Solution = *req.Solution
	}
	if req.Results != nil {
		cs.Results = *req.Results
	}
	if req.Metrics != nil {
		cs.Metrics = *req.Metrics
	}
	if req.ImageKeys != nil {
		keys, _ := json.Marshal(*req.ImageKeys)
		cs.ImageKeys = string(keys)
	}

	if err := h.db.Save(&cs).Error; err != nil {
		httperr.Internal(c, "failed_to_update_case_study", "Failed to update case study.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "case_study_updated",
		Entity:   "case_study",
		EntityID: &cs.ID,
	})

	c.JSON(http.StatusOK, cs)
}

// ======================================================
// PUBLISH LIFECYCLE
// ======================================================

func (h *CaseStudyHandler) Publish(c *gin.Context) {
	h.setStatus(c, models.CaseStudyPublished, "case_study_published")
}

func (h *CaseStudyHandler) Unpublish(c *gin.Context) {
	h.setStatus(c, models.CaseStudyDraft, "case_study_unpublished")
}

func (h *CaseStudyHandler) setStatus(c *gin.Context, status, action string) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	id := c.Param("id")

	var cs models.CaseStudy
	if err := h.db.First(&cs, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "case_study_not_found", "Case study not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_case_study", "Failed to load case study.")
		return
	}

	cs.Status = status
	if status == models.CaseStudyPublished {
		now := timezone.NowIn(h.agencyTZ)
		cs.PublishedAt = &now
	} else {
		cs.PublishedAt = nil
	}

	if err := h.db.Save(&cs).Error; err != nil {
		httperr.Internal(c, "failed_to_update_case_study", "Failed to update case study.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   action,
		Entity:   "case_study",
		EntityID: &cs.ID,
	})

	c.JSON(http.StatusOK, cs)
}

// ======================================================
// PUBLIC
// ======================================================

type publicCaseStudy struct {
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	ClientName string   `json:"client_name"`
	Industry   string   `json:"industry"`
	Challenge  string   `json:"challenge"`
	Solution   string   `json:"solution"`
	Results    string   `json:"results"`
	Metrics    string   `json:"metrics"`
	ImageURLs  []string `json:"image_urls"`
}

func (h *CaseStudyHandler) ListPublished(c *gin.Context) {
	industry := strings.ToLower(strings.TrimSpace(c.Query("industry")))

	q := h.db.Where("status = ?", models.CaseStudyPublished)
	if industry != "" {
		q = q.Where("LOWER(industry) = ?", industry)
	}

	var studies []models.CaseStudy
	if err := q.Order("published_at DESC").Find(&studies).Error; err != nil {
		httperr.Internal(c, "failed_to_list_case_studies", "Failed to list case studies.")
		return
	}

	out := make([]publicCaseStudy, 0, len(studies))
	for i := range studies {
		out = append(out, h.toPublic(c, &studies[i]))
	}

	c.JSON(http.StatusOK, gin.H{"case_studies": out})
}

func (h *CaseStudyHandler) GetBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var cs models.CaseStudy
	if err := h.db.
		Where("slug = ? AND status = ?", slug, models.CaseStudyPublished).
		First(&cs).Error; err != nil {

		httperr.NotFound(c, "case_study_not_found", "Case study not found.")
		return
	}

	c.JSON(http.StatusOK, h.toPublic(c, &cs))
}

func (h *CaseStudyHandler) toPublic(c *gin.Context, cs *models.CaseStudy) publicCaseStudy {
	out := publicCaseStudy{
		Title:      cs.Title,
		Slug:       cs.Slug,
		ClientName: cs.ClientName,
		Industry:   cs.Industry,
		Challenge:  cs.Challenge,
		Solution:   cs.Solution,
		Results:    cs.Results,
		Metrics:    cs.Metrics,
		ImageURLs:  []string{},
	}

	if h.images == nil || cs.ImageKeys == "" {
		return out
	}

	var keys []string
	if err := json.Unmarshal([]byte(cs.ImageKeys), &keys); err != nil {
		return out
	}

	out.ImageURLs = h.images.ResolveURLs(c.Request.Context(), keys)
	return out
}
