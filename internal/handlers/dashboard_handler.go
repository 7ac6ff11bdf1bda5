package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/httperr"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/timezone"
)

type DashboardHandler struct {
	db       *gorm.DB
	agencyTZ string
}

func NewDashboardHandler(db *gorm.DB, agencyTZ string) *DashboardHandler {
	return &DashboardHandler{db: db, agencyTZ: agencyTZ}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	now := timezone.NowIn(h.agencyTZ)
	today := now.Format(domain.DateLayout)
	weekOut := now.AddDate(0, 0, 7).Format(domain.DateLayout)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	statusCounts := map[string]int64{}
	rows, err := h.db.
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Rows()
	if err != nil {
		httperr.Internal(c, "stats_failed", "Failed to compute stats.")
		return
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			continue
		}
		statusCounts[status] = count
	}

	var upcoming int64
	h.db.Model(&models.Booking{}).
		Where(
			"status = ? AND date >= ? AND date <= ?",
			string(domain.StatusConfirmed), today, weekOut,
		).
		Count(&upcoming)

	var newLeads int64
	h.db.Model(&models.Lead{}).
		Where("created_at >= ?", monthStart).
		Count(&newLeads)

	var published int64
	h.db.Model(&models.CaseStudy{}).
		Where("status = ?", models.CaseStudyPublished).
		Count(&published)

	c.JSON(http.StatusOK, gin.H{
		"bookings_by_status":     statusCounts,
		"upcoming_confirmed_7d":  upcoming,
		"new_leads_this_month":   newLeads,
		"published_case_studies": published,
	})
}
