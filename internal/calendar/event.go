package calendar

import (
	"fmt"
	"strings"

	"github.com/peakreach/agency-api/internal/models"
)

type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

type EventAttendee struct {
	Email string `json:"email"`
}

type Event struct {
	ID          string          `json:"id,omitempty"`
	Summary     string          `json:"summary"`
	Description string          `json:"description,omitempty"`
	Start       EventTime       `json:"start"`
	End         EventTime       `json:"end"`
	Attendees   []EventAttendee `json:"attendees,omitempty"`
	Status      string          `json:"status,omitempty"`
}

// BuildEvent templates a calendar event from a booking. The RFC3339 local
// datetimes are assembled from the booking's date and HH:MM slot times.
func BuildEvent(b *models.Booking, tz string) Event {
	date := b.Date.Format("2006-01-02")

	summary := fmt.Sprintf("Strategy Call — %s", b.Name)
	if b.Company != "" {
		summary = fmt.Sprintf("Strategy Call — %s (%s)", b.Name, b.Company)
	}

	var sb strings.Builder
	sb.WriteString("Strategy call booked through the website.\n\n")
	sb.WriteString(fmt.Sprintf("Reference: %s\n", b.Reference))
	sb.WriteString(fmt.Sprintf("Name: %s\n", b.Name))
	sb.WriteString(fmt.Sprintf("Email: %s\n", b.Email))
	sb.WriteString(fmt.Sprintf("Phone: %s\n", b.Phone))
	if b.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", b.Company))
	}
	if b.Website != "" {
		sb.WriteString(fmt.Sprintf("Website: %s\n", b.Website))
	}
	if b.Industry != "" {
		sb.WriteString(fmt.Sprintf("Industry: %s\n", b.Industry))
	}
	if b.AdBudget != "" {
		sb.WriteString(fmt.Sprintf("Monthly ad budget: %s\n", b.AdBudget))
	}
	if b.GoalsNotes != "" {
		sb.WriteString(fmt.Sprintf("\nGoals:\n%s\n", b.GoalsNotes))
	}

	ev := Event{
		Summary:     summary,
		Description: sb.String(),
		Start: EventTime{
			DateTime: fmt.Sprintf("%sT%s:00", date, b.StartTime),
			TimeZone: tz,
		},
		End: EventTime{
			DateTime: fmt.Sprintf("%sT%s:00", date, b.EndTime),
			TimeZone: tz,
		},
	}

	if b.Email != "" {
		ev.Attendees = []EventAttendee{{Email: b.Email}}
	}

	return ev
}
