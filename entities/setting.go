package entities

import "time"

// Setting holds the live season start per user.
type Setting struct {
	UserID      string `gorm:"primaryKey" json:"user_id"`
	SeasonStart string `json:"season_start"` // YYYY-MM-DD, "" = unset
	UpdatedAt   time.Time
}
