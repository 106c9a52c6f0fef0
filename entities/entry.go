package entities

import "time"

// Entry is one pasture slot in the rotation. Pos is the rotation order:
// the sequence of Pos values IS the grazing order.
type Entry struct {
	EntryID   uint   `gorm:"primaryKey" json:"entry_id"`
	UserID    string `json:"user_id" gorm:"index"`
	Pos       int    `json:"pos" gorm:"index"`
	Name      string `json:"name"`
	Notes     string `json:"notes"`

	AreaAcres float64 `json:"area_acres"`
	HerdSize  int     `json:"herd_size"`
	GrazeDays int     `json:"graze_days"`

	// carried over by import, never computed here
	PrevPlannedSD *float64 `json:"prev_planned_sd"`
	PrevActualSD  *float64 `json:"prev_actual_sd"`
	EstimateA     *float64 `json:"estimate_a"`
	EstimateB     *float64 `json:"estimate_b"`

	// derived; recomputed on load and after every relevant edit
	ProposedSD float64 `json:"proposed_sd"`
	StartDate  string  `json:"start_date"` // YYYY-MM-DD, "" when season start is unset
	EndDate    string  `json:"end_date"`

	// not persisted: set during derivation when the window touches the
	// mid-July..mid-September forage slump
	SlumpRisk bool `gorm:"-" json:"slump_risk"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
