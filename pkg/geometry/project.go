package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Single conformal transform for the whole drawing. Only relative distances
// matter, so R is an arbitrary fixed radius, not a geodetic one.
const earthR = 6378137.0

// padFrac pads the projected bounding box on every side before fitting.
const padFrac = 0.06

func mercX(lng float64) float64 { return earthR * lng * math.Pi / 180 }

func mercY(lat float64) float64 {
	phi := lat * math.Pi / 180
	return earthR * math.Log(math.Tan(math.Pi/4+phi/2))
}

// Projector is the one affine reused for all drawing: Mercator, then an
// isotropic scale centered into a fixed canvas, with Y flipped so north is up.
type Projector struct {
	scale      float64
	minX, maxY float64
	offX, offY float64
}

// Fit builds a Projector that places every coordinate of every geometry
// inside a width x height canvas. Returns false when the geometries carry no
// coordinates at all.
func Fit(geoms []orb.Geometry, width, height float64) (*Projector, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	seen := false

	walk := func(p orb.Point) {
		x, y := mercX(p[0]), mercY(p[1])
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		seen = true
	}
	for _, g := range geoms {
		if g == nil {
			continue
		}
		eachPoint(g, walk)
	}
	if !seen {
		return nil, false
	}

	w := maxX - minX
	h := maxY - minY
	minX -= w * padFrac
	maxX += w * padFrac
	minY -= h * padFrac
	maxY += h * padFrac
	w = maxX - minX
	h = maxY - minY

	// isotropic: same factor on both axes so shapes keep their aspect
	scale := math.Min(safeDiv(width, w), safeDiv(height, h))
	offX := (width - w*scale) / 2
	offY := (height - h*scale) / 2

	return &Projector{scale: scale, minX: minX, maxY: maxY, offX: offX, offY: offY}, true
}

// Project maps geographic lng/lat to drawing coordinates. Increasing
// latitude moves up (smaller y).
func (p *Projector) Project(lng, lat float64) (x, y float64) {
	x = (mercX(lng)-p.minX)*p.scale + p.offX
	y = (p.maxY-mercY(lat))*p.scale + p.offY
	return x, y
}

// Centroid returns an area-weighted representative interior point, not the
// bounding-box center.
func Centroid(g orb.Geometry) (orb.Point, bool) {
	if g == nil {
		return orb.Point{}, false
	}
	c, area := planar.CentroidArea(g)
	if area == 0 && math.IsNaN(c[0]) {
		return orb.Point{}, false
	}
	return c, true
}

func eachPoint(g orb.Geometry, fn func(orb.Point)) {
	switch v := g.(type) {
	case orb.Point:
		fn(v)
	case orb.Ring:
		for _, p := range v {
			fn(p)
		}
	case orb.Polygon:
		for _, r := range v {
			eachPoint(r, fn)
		}
	case orb.MultiPolygon:
		for _, poly := range v {
			eachPoint(poly, fn)
		}
	case orb.LineString:
		for _, p := range v {
			fn(p)
		}
	case orb.MultiLineString:
		for _, ls := range v {
			eachPoint(ls, fn)
		}
	case orb.MultiPoint:
		for _, p := range v {
			fn(p)
		}
	case orb.Collection:
		for _, m := range v {
			eachPoint(m, fn)
		}
	}
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		// degenerate extent (single point); any finite factor centers it
		return 1
	}
	return a / b
}
