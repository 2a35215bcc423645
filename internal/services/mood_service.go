package services

import (
	"time"

	"github.com/telemood/moodtrack/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EntryInput carries the writable fields of a save request
type EntryInput struct {
	Date            time.Time
	Mood            *string
	MoodDescription *string
	Achievement     *string
	Goals           models.GoalList
}

// FindEntry returns the unique entry for (userID, date), or nil when none
// exists. Absence is a valid empty state, not an error.
func FindEntry(db *gorm.DB, userID int64, date time.Time) (*models.MoodEntry, error) {
	var entry models.MoodEntry
	err := db.Where("user_id = ? AND date = ?", userID, date).First(&entry).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// SaveEntry inserts or updates the entry for (userID, input.Date). The
// transaction locks the existing row, so a single save is atomic per call.
// Concurrent saves for the same key resolve last-writer-wins.
func SaveEntry(db *gorm.DB, userID int64, input EntryInput) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var entry models.MoodEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND date = ?", userID, input.Date).
			First(&entry).Error

		if err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			entry = models.MoodEntry{
				UserID:          userID,
				Date:            input.Date,
				Mood:            input.Mood,
				MoodDescription: input.MoodDescription,
				Achievement:     input.Achievement,
				Goals:           input.Goals.Normalized(),
			}
			return tx.Create(&entry).Error
		}

		// Overwrite the supplied fields on the existing row, key stays intact
		updates := map[string]interface{}{
			"mood":             input.Mood,
			"mood_description": input.MoodDescription,
			"achievement":      input.Achievement,
			"goals":            input.Goals.Normalized(),
		}
		return tx.Model(&entry).Updates(updates).Error
	})
}

// ListMoodDates returns every date the user has an entry for, mapped to that
// entry's mood value. Entries saved without a mood map to an empty string.
func ListMoodDates(db *gorm.DB, userID int64) (map[string]string, error) {
	var entries []models.MoodEntry
	err := db.Select("date", "mood").
		Where("user_id = ?", userID).
		Order("date").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	moodDates := make(map[string]string, len(entries))
	for _, entry := range entries {
		mood := ""
		if entry.Mood != nil {
			mood = *entry.Mood
		}
		moodDates[entry.Date.Format(models.DateLayout)] = mood
	}

	return moodDates, nil
}
