package entities

import "time"

// Feature is one named pasture boundary. Name is the normalized
// (lowercased, trimmed) join key to entries; GeomJSON holds the raw
// GeoJSON geometry (Polygon or MultiPolygon).
type Feature struct {
	FeatureID   uint   `gorm:"primaryKey" json:"feature_id"`
	UserID      string `json:"user_id" gorm:"index"`
	Name        string `json:"name" gorm:"index"`
	DisplayName string `json:"display_name"`
	GeomJSON    string `json:"-"`
	CreatedAt   time.Time
}
