package models

import (
	"time"
)

// DateLayout is the calendar date format used across the API.
const DateLayout = "2006-01-02"

// MoodEntry represents one mood record per user per calendar day
type MoodEntry struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	UserID          int64     `gorm:"not null;index:idx_user_date,unique"`
	Date            time.Time `gorm:"type:date;not null;index:idx_user_date,unique"`
	Mood            *string   `gorm:"size:255"`
	MoodDescription *string
	Achievement     *string
	Goals           GoalList `gorm:"type:json"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name for MoodEntry
func (MoodEntry) TableName() string {
	return "mood_entries"
}

// EntryPayload is the wire shape of an entry, camelCase for the mini-app frontend
type EntryPayload struct {
	Date            string   `json:"date"`
	Mood            *string  `json:"mood"`
	MoodDescription *string  `json:"moodDescription"`
	Achievement     *string  `json:"achievement"`
	Goals           GoalList `json:"goals"`
}

// ToPayload converts the stored row to its API representation.
// Goals always serialize as exactly three slots, never null.
func (e *MoodEntry) ToPayload() EntryPayload {
	return EntryPayload{
		Date:            e.Date.Format(DateLayout),
		Mood:            e.Mood,
		MoodDescription: e.MoodDescription,
		Achievement:     e.Achievement,
		Goals:           e.Goals.Normalized(),
	}
}
