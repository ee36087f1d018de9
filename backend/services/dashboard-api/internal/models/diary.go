package models

import "time"

// DiaryEntry is a free-text note attached to a calendar date. Entries share
// the date axis with activities but are written only through the dashboard,
// never by the importer.
type DiaryEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
