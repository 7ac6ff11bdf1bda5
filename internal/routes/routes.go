package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/audit"
	"github.com/peakreach/agency-api/internal/calendar"
	"github.com/peakreach/agency-api/internal/config"
	"github.com/peakreach/agency-api/internal/handlers"
	infraRepo "github.com/peakreach/agency-api/internal/infra/repository"
	"github.com/peakreach/agency-api/internal/middleware"
	"github.com/peakreach/agency-api/internal/ratelimit"
	"github.com/peakreach/agency-api/internal/storage"
	ucBooking "github.com/peakreach/agency-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, logger *zap.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	limiter := ratelimit.NewLimiter(cfg, logger)

	var calClient ucBooking.EventCreator
	if cfg.CalendarEnabled() {
		calClient = calendar.NewClient(cfg, logger)
	}

	var images *storage.ImageResolver
	if cfg.StorageEnabled() {
		images = storage.NewImageResolver(cfg, logger)
	}

	// ======================================================
	// USE CASES (BOOKINGS)
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, cfg.MaxRangeDays)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		calClient,
		auditDispatcher,
		logger,
		cfg.AgencyTimezone,
		cfg.MinAdvanceMinutes,
	)

	confirmUC := ucBooking.NewConfirmBooking(bookingRepo, auditDispatcher, cfg.AgencyTimezone)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, cfg.AgencyTimezone)
	completeUC := ucBooking.NewCompleteBooking(bookingRepo, auditDispatcher, cfg.AgencyTimezone)
	noShowUC := ucBooking.NewMarkNoShow(bookingRepo, auditDispatcher)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo, cfg.AgencyTimezone)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(availabilityUC, createBookingUC, cfg.AgencyTimezone)

	bookingHandler := handlers.NewBookingHandler(
		confirmUC,
		cancelUC,
		completeUC,
		noShowUC,
		listByDateUC,
		listByMonthUC,
		cfg.AgencyTimezone,
	)

	slotHandler := handlers.NewSlotHandler(db)
	blackoutHandler := handlers.NewBlackoutHandler(db, auditDispatcher, cfg.AgencyTimezone)
	caseStudyHandler := handlers.NewCaseStudyHandler(db, images, auditDispatcher, cfg.AgencyTimezone)
	leadHandler := handlers.NewLeadHandler(db, auditDispatcher)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg.AgencyTimezone)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC SITE
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST(
				"/bookings",
				middleware.RateLimit(limiter, "bookings", 5, time.Minute),
				publicHandler.CreateBooking,
			)
			publicAPI.POST(
				"/leads",
				middleware.RateLimit(limiter, "leads", 10, time.Minute),
				leadHandler.Create,
			)

			publicAPI.GET("/case-studies", caseStudyHandler.ListPublished)
			publicAPI.GET("/case-studies/:slug", caseStudyHandler.GetBySlug)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN DASHBOARD
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/dashboard/stats", dashboardHandler.Stats)

			// Weekly slot templates
			secured.GET("/slots", slotHandler.List)
			secured.PUT("/slots", slotHandler.Update)

			// Blackout dates
			secured.GET("/blackout-dates", blackoutHandler.List)
			secured.POST("/blackout-dates", blackoutHandler.Create)
			secured.DELETE("/blackout-dates/:id", blackoutHandler.Delete)

			// Bookings
			secured.GET("/bookings", bookingHandler.ListByDate)
			secured.GET("/bookings/month", bookingHandler.ListByMonth)
			secured.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			secured.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			secured.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			secured.PATCH("/bookings/:id/no-show", bookingHandler.NoShow)

			// Case studies
			secured.GET("/case-studies", caseStudyHandler.List)
			secured.POST("/case-studies", caseStudyHandler.Create)
			secured.PATCH("/case-studies/:id", caseStudyHandler.Update)
			secured.PATCH("/case-studies/:id/publish", caseStudyHandler.Publish)
			secured.PATCH("/case-studies/:id/unpublish", caseStudyHandler.Unpublish)

			// Leads
			secured.GET("/leads", leadHandler.List)
			secured.PATCH("/leads/:id/status", leadHandler.UpdateStatus)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
