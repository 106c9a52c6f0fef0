package service

import (
	"io"

	"graze/entities"
)

// EntryPatch carries partial edits; nil fields are left untouched.
type EntryPatch struct {
	Name          *string  `json:"name"`
	Notes         *string  `json:"notes"`
	AreaAcres     *float64 `json:"area_acres"`
	HerdSize      *int     `json:"herd_size"`
	GrazeDays     *int     `json:"graze_days"`
	PrevPlannedSD *float64 `json:"prev_planned_sd"`
	PrevActualSD  *float64 `json:"prev_actual_sd"`
	EstimateA     *float64 `json:"estimate_a"`
	EstimateB     *float64 `json:"estimate_b"`
}

type EntryService interface {
	List(uid string) ([]entities.Entry, error)
	Create(uid string, e entities.Entry) (*entities.Entry, error)
	Patch(uid string, id uint, p EntryPatch) (*entities.Entry, error)
	Delete(uid string, id uint) error
	Duplicate(uid string, id uint) (*entities.Entry, error)
	Reorder(uid string, id uint, to int) error

	SeasonStart(uid string) (string, error)
	SetSeasonStart(uid, start string) error

	ImportCSV(uid string, r io.Reader) error
	ExportXLSX(uid string, w io.Writer) error
}
