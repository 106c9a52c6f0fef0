package scene

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"graze/entities"
)

func sq(minLng, minLat, size float64) orb.Polygon {
	return orb.Polygon{orb.Ring{
		{minLng, minLat}, {minLng + size, minLat}, {minLng + size, minLat + size},
		{minLng, minLat + size}, {minLng, minLat},
	}}
}

func testBounds() []Boundary {
	return []Boundary{
		{Name: "north", Display: "North", Geom: sq(-103.5, 44.3, 0.1)},
		{Name: "creek", Display: "Creek", Geom: sq(-103.3, 44.1, 0.1)},
		{Name: "lane", Display: "Lane", Geom: sq(-103.7, 44.0, 0.1)},
		{Name: "spare", Display: "Spare", Geom: sq(-103.9, 44.4, 0.1)},
	}
}

func testEntries() []entities.Entry {
	return []entities.Entry{
		{Name: "North", GrazeDays: 10},
		{Name: "Creek", GrazeDays: 5},
		{Name: "Lane", GrazeDays: 7},
	}
}

func routeLabels(s Scene) []Label {
	var out []Label
	for _, l := range s.Labels {
		if l.OnRoute {
			out = append(out, l)
		}
	}
	return out
}

func TestBuildAnchorsAndSegments(t *testing.T) {
	s := Build(testEntries(), testBounds())

	anchors := routeLabels(s)
	require.Len(t, anchors, 3)
	require.Len(t, s.Segments, 2)
	for i, seg := range s.Segments {
		assert.Equal(t, i+1, seg.Seq)
	}
	// only matched features drawn; "spare" was never scheduled
	assert.Len(t, s.Outlines, 3)
}

func TestBuildSingleStopHasNoSegments(t *testing.T) {
	s := Build([]entities.Entry{{Name: "North", GrazeDays: 4}}, testBounds())
	assert.Len(t, routeLabels(s), 1)
	assert.Empty(t, s.Segments)
}

func TestBuildZeroDurationExcludedFromRoute(t *testing.T) {
	entries := testEntries()
	entries[1].GrazeDays = 0 // creek becomes a paper stop
	s := Build(entries, testBounds())

	anchors := routeLabels(s)
	require.Len(t, anchors, 2)
	assert.Len(t, s.Segments, 1)
	// creek is still selected and still identifiable, just unnumbered
	found := false
	for _, l := range s.Labels {
		if l.Text == "Creek" && !l.OnRoute {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBuildMissingGeometryStopIsSkipped(t *testing.T) {
	entries := append(testEntries(), entities.Entry{Name: "nowhere", GrazeDays: 3})
	s := Build(entries, testBounds())
	// the unmapped stop contributes no anchor and breaks no neighbors
	assert.Len(t, routeLabels(s), 3)
	assert.Len(t, s.Segments, 2)
}

func TestBuildFallsBackToAllFeatures(t *testing.T) {
	s := Build([]entities.Entry{{Name: "unmatched", GrazeDays: 9}}, testBounds())
	assert.Len(t, s.Outlines, 4)
	assert.Empty(t, s.Segments)
	assert.Len(t, s.Labels, 4) // every pasture still identifiable
}

func TestBuildNoBoundaries(t *testing.T) {
	s := Build(testEntries(), nil)
	assert.Empty(t, s.Outlines)
	assert.Empty(t, s.Segments)
	assert.Empty(t, s.Labels)
	assert.Equal(t, CanvasW, s.Width)
}

func TestBuildDeterministic(t *testing.T) {
	a := Build(testEntries(), testBounds())
	b := Build(testEntries(), testBounds())
	assert.Equal(t, a, b)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	Build(testEntries(), testBounds()).WriteSVG(&buf)
	out := buf.String()

	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Contains(t, out, "North")
	assert.Contains(t, out, ">1<") // segment badge number
	assert.Equal(t, 3, strings.Count(out, " Z\" style=\"fill:#e4efd8"))
}

func TestRenderPNGDimensions(t *testing.T) {
	var buf bytes.Buffer
	err := Build(testEntries(), testBounds()).RenderPNG(&buf, 2)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, int(CanvasW)*2, cfg.Width)
	assert.Equal(t, int(CanvasH)*2, cfg.Height)
}
