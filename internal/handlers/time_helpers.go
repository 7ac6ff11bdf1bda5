package handlers

import (
	"time"

	domain "github.com/peakreach/agency-api/internal/domain/booking"
	"github.com/peakreach/agency-api/internal/timezone"
)

// Dates in query params and request bodies are interpreted in the
// agency's configured timezone.

func parseAgencyDate(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		domain.DateLayout,
		dateStr,
		timezone.Location(tz),
	)
}
