package serviceImp

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/paulmach/orb/geojson"

	"graze/entities"
	repo "graze/pkg/feature/repository"
	"graze/pkg/feature/service"
	"graze/pkg/scene"
)

type featureSvc struct{ r repo.FeatureRepository }

func New(r repo.FeatureRepository) service.FeatureService { return &featureSvc{r} }

// namePropCandidates is the ordered list of property keys that can name a
// boundary, compared case-insensitively. First match wins.
var namePropCandidates = []string{"pasture", "name", "unit", "past", "paddock"}

func (s *featureSvc) ImportGeoJSON(uid string, body []byte) (int, int, error) {
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		return 0, 0, fmt.Errorf("parse feature collection: %w", err)
	}

	var keep []entities.Feature
	dropped := 0
	for _, f := range fc.Features {
		if f == nil || f.Geometry == nil {
			dropped++
			continue
		}
		display, ok := resolveName(f.Properties)
		if !ok {
			dropped++
			continue
		}
		geomJSON, err := json.Marshal(geojson.NewGeometry(f.Geometry))
		if err != nil {
			dropped++
			continue
		}
		keep = append(keep, entities.Feature{
			UserID:      uid,
			Name:        entities.NormalizeName(display),
			DisplayName: display,
			GeomJSON:    string(geomJSON),
		})
	}
	if err := s.r.ReplaceAll(uid, keep); err != nil {
		return 0, 0, err
	}
	return len(keep), dropped, nil
}

func (s *featureSvc) List(uid string) ([]entities.Feature, error) { return s.r.List(uid) }

// Boundaries decodes the stored geometries into drawable form. Rows whose
// geometry no longer parses are skipped rather than failing the render.
func (s *featureSvc) Boundaries(uid string) ([]scene.Boundary, error) {
	rows, err := s.r.List(uid)
	if err != nil {
		return nil, err
	}
	out := make([]scene.Boundary, 0, len(rows))
	for _, row := range rows {
		g, err := geojson.UnmarshalGeometry([]byte(row.GeomJSON))
		if err != nil {
			continue
		}
		out = append(out, scene.Boundary{
			Name:    row.Name,
			Display: row.DisplayName,
			Geom:    g.Geometry(),
		})
	}
	return out, nil
}

func resolveName(props geojson.Properties) (string, bool) {
	for _, cand := range namePropCandidates {
		// collect and sort so duplicate spellings (Name vs NAME) resolve
		// the same way every import
		var keys []string
		for k := range props {
			if entities.NormalizeName(k) == cand {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			switch val := props[k].(type) {
			case string:
				if entities.NormalizeName(val) != "" {
					return val, true
				}
			case float64:
				return fmt.Sprintf("%g", val), true
			}
		}
	}
	return "", false
}
