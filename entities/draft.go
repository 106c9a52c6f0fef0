package entities

import "time"

// Draft is a named snapshot of the working list, grouped by year.
// Append-only per year except explicit deletion.
type Draft struct {
	DraftID     uint   `gorm:"primaryKey" json:"draft_id"`
	UserID      string `json:"user_id" gorm:"index"`
	Year        int    `json:"year" gorm:"index"`
	Label       string `json:"label"`
	SeasonStart string `json:"season_start"` // YYYY-MM-DD
	EntriesJSON string `json:"-"`
	CreatedAt   time.Time
}
