package booking

import (
	"sort"
	"time"

	"github.com/peakreach/agency-api/internal/models"
)

const DateLayout = "2006-01-02"

type AvailabilityInput struct {
	From time.Time
	To   time.Time // inclusive
}

// SlotKey identifies one concrete slot instance: a calendar date plus the
// template's start time.
type SlotKey struct {
	Date  string // YYYY-MM-DD
	Start string // HH:MM
}

type SlotAvailability struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	MaxBookings int    `json:"max_bookings"`
	Remaining   int    `json:"remaining"`
}

type DayAvailability struct {
	Date     string             `json:"date"`
	Blackout bool               `json:"blackout"`
	Slots    []SlotAvailability `json:"slots"`
}

// ExpandAvailability materializes weekly templates over [from, to]:
// blacked-out dates offer no slots, and each slot's remaining capacity is
// its template max minus the booked count for that exact date+start,
// clamped at zero.
func ExpandAvailability(
	from time.Time,
	to time.Time,
	templates []models.AvailableTimeSlot,
	blackouts map[string]string, // date -> reason
	booked map[SlotKey]int,
) []DayAvailability {

	byWeekday := make(map[int][]models.AvailableTimeSlot)
	for _, t := range templates {
		if !t.Active {
			continue
		}
		byWeekday[t.Weekday] = append(byWeekday[t.Weekday], t)
	}
	for wd := range byWeekday {
		sort.Slice(byWeekday[wd], func(i, j int) bool {
			return byWeekday[wd][i].StartTime < byWeekday[wd][j].StartTime
		})
	}

	var days []DayAvailability

	for cur := from; !cur.After(to); cur = cur.AddDate(0, 0, 1) {
		dateStr := cur.Format(DateLayout)

		if _, blocked := blackouts[dateStr]; blocked {
			days = append(days, DayAvailability{
				Date:     dateStr,
				Blackout: true,
				Slots:    []SlotAvailability{},
			})
			continue
		}

		day := DayAvailability{
			Date:  dateStr,
			Slots: []SlotAvailability{},
		}

		for _, t := range byWeekday[int(cur.Weekday())] {
			remaining := t.MaxBookings - booked[SlotKey{Date: dateStr, Start: t.StartTime}]
			if remaining < 0 {
				remaining = 0
			}

			day.Slots = append(day.Slots, SlotAvailability{
				Start:       t.StartTime,
				End:         t.EndTime,
				MaxBookings: t.MaxBookings,
				Remaining:   remaining,
			})
		}

		days = append(days, day)
	}

	return days
}
