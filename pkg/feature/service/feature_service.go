package service

import (
	"graze/entities"
	"graze/pkg/scene"
)

type FeatureService interface {
	// ImportGeoJSON replaces the user's boundary set from a feature
	// collection. Returns kept and dropped (nameless) counts.
	ImportGeoJSON(uid string, body []byte) (kept, dropped int, err error)
	List(uid string) ([]entities.Feature, error)
	Boundaries(uid string) ([]scene.Boundary, error)
}
