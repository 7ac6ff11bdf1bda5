package reminder

import (
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/peakreach/agency-api/internal/config"
	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/models"
	"github.com/peakreach/agency-api/internal/timezone"
)

// Service sends an SMS the day before each confirmed strategy call and
// records every attempt in reminder_logs.
type Service struct {
	db     *gorm.DB
	cfg    *config.Config
	client *twilio.RestClient
	logger *zap.Logger
}

func NewService(db *gorm.DB, cfg *config.Config, logger *zap.Logger) *Service {
	return &Service{
		db:  db,
		cfg: cfg,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		}),
		logger: logger,
	}
}

// StartScheduler runs the daily pass at 09:00 agency time.
func (s *Service) StartScheduler() *cron.Cron {
	c := cron.New(cron.WithLocation(timezone.Location(s.cfg.AgencyTimezone)))

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyReminders); err != nil {
		s.logger.Error("failed to schedule reminders", zap.Error(err))
		return c
	}

	c.Start()
	s.logger.Info("reminder scheduler started")
	return c
}

func (s *Service) SendDailyReminders() {
	now := timezone.NowIn(s.cfg.AgencyTimezone)
	tomorrow := now.AddDate(0, 0, 1).Format(domain.DateLayout)

	var bookings []models.Booking
	if err := s.db.
		Where("date = ? AND status = ?", tomorrow, string(domain.StatusConfirmed)).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {

		s.logger.Error("failed to fetch tomorrow's bookings", zap.Error(err))
		return
	}

	for i := range bookings {
		s.sendReminder(&bookings[i])
	}

	s.logger.Info("daily reminder pass done",
		zap.String("date", tomorrow),
		zap.Int("bookings", len(bookings)),
	)
}

func (s *Service) sendReminder(b *models.Booking) {
	// Skip bookings we already reminded.
	var sent int64
	s.db.Model(&models.ReminderLog{}).
		Where("booking_id = ? AND status = ?", b.ID, "sent").
		Count(&sent)
	if sent > 0 {
		return
	}

	body := fmt.Sprintf(
		"Hi %s, a reminder about your strategy call tomorrow at %s. Reference: %s. Reply to this number if you need to reschedule.",
		b.Name, b.StartTime, b.Reference,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(b.Phone)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(body)

	entry := models.ReminderLog{
		BookingID: b.ID,
		Phone:     b.Phone,
		Status:    "sent",
	}

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		entry.Status = "failed"
		entry.Error = err.Error()
		s.logger.Warn("reminder SMS failed",
			zap.Uint("booking_id", b.ID),
			zap.Error(err),
		)
	}

	if err := s.db.Create(&entry).Error; err != nil {
		s.logger.Error("failed to record reminder", zap.Error(err))
	}
}
