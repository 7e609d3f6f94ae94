package models

import "time"

// CalendarEvent drives reminders outside this service; no derived state.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // HH:MM
	CreatedBy   string    `json:"created_by"`
}
