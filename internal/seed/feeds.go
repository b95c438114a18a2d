package seed

import (
	"time"

	"github.com/aosipenko-sketch/fleet-dashboard/internal/models"
)

// MailFeed returns the static mock inbox shown in the mail widget.
func MailFeed() []models.MailMessage {
	now := time.Now()
	return []models.MailMessage{
		{
			ID:        "gm1",
			From:      "alerts@fleet.io",
			Subject:   "Maintenance Alert: Unit 12 - Brakes",
			Snippet:   "Brake pad replacement is due in 5 days for Unit 12 (AB12CD). Please schedule service.",
			Timestamp: now.Add(-5 * time.Minute),
		},
		{
			ID:        "gm2",
			From:      "dispatch@fleet.com",
			Subject:   "New Route Assignment - JD04",
			Snippet:   "John Doe, please see your updated route for tomorrow, March 15th. The new manifest is attached.",
			Timestamp: now.Add(-25 * time.Minute),
		},
		{
			ID:        "gm3",
			From:      "geotab@alerts.com",
			Subject:   "Harsh Braking Event: Unit 08",
			Snippet:   "A harsh braking event was detected for Unit 08 near downtown. Please review the trip details.",
			Timestamp: now.Add(-58 * time.Minute),
		},
		{
			ID:        "gm4",
			From:      "HR Department",
			Subject:   "Q2 Driver Training Schedule",
			Snippet:   "The schedule for Q2 mandatory driver safety training is now available. Please sign up for a slot.",
			Timestamp: now.Add(-3 * time.Hour),
		},
	}
}

// CalendarFeed returns the static mock events shown in the calendar widget.
func CalendarFeed() []models.CalendarEvent {
	today := time.Now()
	at := func(d time.Time, hour, min int) time.Time {
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
	}
	tomorrow := today.AddDate(0, 0, 1)
	dayAfter := today.AddDate(0, 0, 2)
	return []models.CalendarEvent{
		{ID: "cal1", Title: "Unit 12 - Brake Inspection", Start: at(today, 14, 0), End: at(today, 15, 0)},
		{ID: "cal2", Title: "Team Safety Meeting", Start: at(tomorrow, 9, 0), End: at(tomorrow, 10, 0)},
		{ID: "cal3", Title: "Unit 22 - Tire Rotation", Start: at(tomorrow, 11, 30), End: at(tomorrow, 12, 0)},
		{ID: "cal4", Title: "Management Sync-up", Start: at(dayAfter, 10, 0), End: at(dayAfter, 10, 30)},
	}
}
