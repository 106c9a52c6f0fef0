package scene

import (
	"math"

	"github.com/paulmach/orb"

	"graze/entities"
	"graze/pkg/geometry"
)

// Fixed output canvas. Exports magnify this, they never re-layout.
const (
	CanvasW = 960.0
	CanvasH = 640.0
)

// arrowGap pushes a segment's tail off its source anchor so the arrow does
// not start on top of that anchor's text.
const arrowGap = 14.0

// Boundary is one named pasture geometry, ready for drawing. Name is the
// normalized join key.
type Boundary struct {
	Name    string
	Display string
	Geom    orb.Geometry
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Outline is one feature's closed rings in drawing coordinates. A
// multipolygon contributes every member ring.
type Outline struct {
	Name  string    `json:"name"`
	Rings [][]Point `json:"rings"`
}

// Segment is one directed leg of the route, arrowhead at To, numbered badge
// at the midpoint. Seq is 1-based.
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
	Seq  int   `json:"seq"`
}

// Label places a pasture name at its representative point. OnRoute labels
// get the contrasting outline treatment; plain labels mark unscheduled
// pastures.
type Label struct {
	Text    string `json:"text"`
	At      Point  `json:"at"`
	OnRoute bool   `json:"on_route"`
}

// Scene is the full render-ready description. Derived fresh on every call;
// identical inputs produce identical scenes.
type Scene struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Outlines []Outline `json:"outlines"`
	Segments []Segment `json:"segments"`
	Labels   []Label   `json:"labels"`
}

// Build maps the ordered entry list onto the loaded boundaries. Entries with
// a matching boundary select the drawn set; with no matches at all every
// boundary is drawn. The route is the ordered subsequence of entries with
// positive duration that resolve to a boundary; stops without geometry are
// simply absent.
func Build(entries []entities.Entry, bounds []Boundary) Scene {
	s := Scene{Width: CanvasW, Height: CanvasH}

	byName := make(map[string]int, len(bounds))
	for i, b := range bounds {
		if _, dup := byName[b.Name]; !dup {
			byName[b.Name] = i
		}
	}

	// feature selection: matched-only, falling back to everything
	selected := make([]int, 0, len(bounds))
	inSel := make(map[int]bool, len(bounds))
	for _, e := range entries {
		if i, ok := byName[entities.NormalizeName(e.Name)]; ok && !inSel[i] {
			inSel[i] = true
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		for i := range bounds {
			selected = append(selected, i)
			inSel[i] = true
		}
	}

	geoms := make([]orb.Geometry, 0, len(selected))
	for _, i := range selected {
		geoms = append(geoms, bounds[i].Geom)
	}
	proj, ok := geometry.Fit(geoms, CanvasW, CanvasH)
	if !ok {
		return s
	}

	for _, i := range selected {
		s.Outlines = append(s.Outlines, traceOutline(bounds[i], proj))
	}

	// route anchors: duration > 0, in sequence order, geometry required
	type anchor struct {
		at      Point
		display string
		name    string
	}
	var route []anchor
	onRoute := map[string]bool{}
	for _, e := range entries {
		if e.GrazeDays <= 0 {
			continue
		}
		key := entities.NormalizeName(e.Name)
		i, ok := byName[key]
		if !ok {
			continue
		}
		c, ok := geometry.Centroid(bounds[i].Geom)
		if !ok {
			continue
		}
		x, y := proj.Project(c[0], c[1])
		route = append(route, anchor{at: Point{x, y}, display: e.Name, name: key})
		onRoute[key] = true
	}

	for i := 1; i < len(route); i++ {
		from := offsetToward(route[i-1].at, route[i].at, arrowGap)
		s.Segments = append(s.Segments, Segment{From: from, To: route[i].at, Seq: i})
	}
	for _, a := range route {
		s.Labels = append(s.Labels, Label{Text: a.display, At: a.at, OnRoute: true})
	}

	// unscheduled pastures still get an identifying label
	for _, i := range selected {
		if onRoute[bounds[i].Name] {
			continue
		}
		c, ok := geometry.Centroid(bounds[i].Geom)
		if !ok {
			continue
		}
		x, y := proj.Project(c[0], c[1])
		name := bounds[i].Display
		if name == "" {
			name = bounds[i].Name
		}
		s.Labels = append(s.Labels, Label{Text: name, At: Point{x, y}})
	}
	return s
}

func traceOutline(b Boundary, proj *geometry.Projector) Outline {
	o := Outline{Name: b.Name}
	addRing := func(r orb.Ring) {
		ring := make([]Point, 0, len(r))
		for _, pt := range r {
			x, y := proj.Project(pt[0], pt[1])
			ring = append(ring, Point{x, y})
		}
		o.Rings = append(o.Rings, ring)
	}
	switch g := b.Geom.(type) {
	case orb.Polygon:
		for _, r := range g {
			addRing(r)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				addRing(r)
			}
		}
	}
	return o
}

func offsetToward(from, to Point, d float64) Point {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l <= d {
		return from
	}
	return Point{from.X + dx/l*d, from.Y + dy/l*d}
}
