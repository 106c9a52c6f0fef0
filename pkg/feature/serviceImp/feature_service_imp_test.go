package serviceImp

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graze/entities"
)

type memRepo struct {
	rows []entities.Feature
}

func (m *memRepo) List(uid string) ([]entities.Feature, error) {
	out := make([]entities.Feature, len(m.rows))
	copy(out, m.rows)
	return out, nil
}

func (m *memRepo) ReplaceAll(uid string, feats []entities.Feature) error {
	m.rows = feats
	return nil
}

const uid = "U_TEST"

func featureJSON(props string) string {
	return fmt.Sprintf(`{"type":"Feature","properties":%s,
		"geometry":{"type":"Polygon","coordinates":[[[-103.5,44.3],[-103.4,44.3],[-103.4,44.4],[-103.5,44.4],[-103.5,44.3]]]}}`, props)
}

func collection(features ...string) []byte {
	out := `{"type":"FeatureCollection","features":[`
	for i, f := range features {
		if i > 0 {
			out += ","
		}
		out += f
	}
	return []byte(out + "]}")
}

func TestImportGeoJSONResolvesNameAliases(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	kept, dropped, err := svc.ImportGeoJSON(uid, collection(
		featureJSON(`{"PASTURE":"North"}`),
		featureJSON(`{"Unit":"Creek","acres":12}`),
		featureJSON(`{"past":7}`), // numeric name property
	))
	require.NoError(t, err)
	assert.Equal(t, 3, kept)
	assert.Equal(t, 0, dropped)

	require.Len(t, repo.rows, 3)
	assert.Equal(t, "north", repo.rows[0].Name)
	assert.Equal(t, "North", repo.rows[0].DisplayName)
	assert.Equal(t, "creek", repo.rows[1].Name)
	assert.Equal(t, "7", repo.rows[2].Name)
}

func TestImportGeoJSONPrefersEarlierCandidate(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	// "pasture" outranks "name" regardless of key order in the object
	_, _, err := svc.ImportGeoJSON(uid, collection(
		featureJSON(`{"name":"Wrong","pasture":"Right"}`),
	))
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "Right", repo.rows[0].DisplayName)
}

func TestImportGeoJSONDuplicateSpellingsAreStable(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	for i := 0; i < 20; i++ {
		_, _, err := svc.ImportGeoJSON(uid, collection(
			featureJSON(`{"NAME":"Upper","name":"Lower"}`),
		))
		require.NoError(t, err)
		require.Len(t, repo.rows, 1)
		assert.Equal(t, "Upper", repo.rows[0].DisplayName) // "NAME" sorts first
	}
}

func TestImportGeoJSONDropsNamelessFeatures(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)

	kept, dropped, err := svc.ImportGeoJSON(uid, collection(
		featureJSON(`{"pasture":"North"}`),
		featureJSON(`{"acres":40}`),    // no name property at all
		featureJSON(`{"pasture":"  "}`), // blank name
	))
	require.NoError(t, err)
	assert.Equal(t, 1, kept)
	assert.Equal(t, 2, dropped)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "north", repo.rows[0].Name)
}

func TestImportGeoJSONReplacesPreviousSet(t *testing.T) {
	repo := &memRepo{rows: []entities.Feature{{UserID: uid, Name: "stale"}}}
	svc := New(repo)

	_, _, err := svc.ImportGeoJSON(uid, collection(featureJSON(`{"pasture":"North"}`)))
	require.NoError(t, err)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "north", repo.rows[0].Name)
}

func TestImportGeoJSONRejectsGarbage(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)
	_, _, err := svc.ImportGeoJSON(uid, []byte("not geojson"))
	assert.Error(t, err)
}

func TestBoundariesSkipsCorruptGeometry(t *testing.T) {
	repo := &memRepo{}
	svc := New(repo)
	_, _, err := svc.ImportGeoJSON(uid, collection(
		featureJSON(`{"pasture":"North"}`),
		featureJSON(`{"pasture":"Creek"}`),
	))
	require.NoError(t, err)
	repo.rows[1].GeomJSON = "{broken"

	bounds, err := svc.Boundaries(uid)
	require.NoError(t, err)
	require.Len(t, bounds, 1)
	assert.Equal(t, "north", bounds[0].Name)
	assert.Equal(t, "North", bounds[0].Display)
	assert.NotNil(t, bounds[0].Geom)
}
