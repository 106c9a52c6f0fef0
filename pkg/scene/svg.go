package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

const (
	fillStyle    = "fill:#e4efd8;stroke:#5b7444;stroke-width:1.5"
	routeStyle   = "stroke:#b3452c;stroke-width:2"
	arrowStyle   = "fill:#b3452c"
	badgeStyle   = "fill:#ffffff;stroke:#b3452c;stroke-width:1.5"
	badgeText    = "font-family:sans-serif;font-size:11px;fill:#b3452c;text-anchor:middle;dominant-baseline:central"
	haloText     = "font-family:sans-serif;font-size:13px;fill:none;stroke:#ffffff;stroke-width:3;text-anchor:middle;dominant-baseline:central"
	labelText    = "font-family:sans-serif;font-size:13px;fill:#222222;text-anchor:middle;dominant-baseline:central"
	plainText    = "font-family:sans-serif;font-size:12px;fill:#666666;text-anchor:middle;dominant-baseline:central"
	badgeRadius  = 9
	arrowLen     = 10.0
	arrowHalfW   = 4.0
)

// WriteSVG serializes the scene as a static vector image.
func (s Scene) WriteSVG(w io.Writer) {
	c := svg.New(w)
	c.Start(int(s.Width), int(s.Height))
	c.Rect(0, 0, int(s.Width), int(s.Height), "fill:#fbfaf6")

	for _, o := range s.Outlines {
		if d := ringsPath(o.Rings); d != "" {
			c.Path(d, fillStyle)
		}
	}

	for _, seg := range s.Segments {
		c.Path(fmt.Sprintf("M%.1f,%.1f L%.1f,%.1f", seg.From.X, seg.From.Y, seg.To.X, seg.To.Y), routeStyle+";fill:none")
		c.Path(arrowheadPath(seg.From, seg.To), arrowStyle)

		mx := (seg.From.X + seg.To.X) / 2
		my := (seg.From.Y + seg.To.Y) / 2
		c.Circle(round(mx), round(my), badgeRadius, badgeStyle)
		c.Text(round(mx), round(my), fmt.Sprintf("%d", seg.Seq), badgeText)
	}

	for _, l := range s.Labels {
		if l.OnRoute {
			c.Text(round(l.At.X), round(l.At.Y), l.Text, haloText)
			c.Text(round(l.At.X), round(l.At.Y), l.Text, labelText)
		} else {
			c.Text(round(l.At.X), round(l.At.Y), l.Text, plainText)
		}
	}
	c.End()
}

func ringsPath(rings [][]Point) string {
	var b strings.Builder
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		fmt.Fprintf(&b, "M%.1f,%.1f", r[0].X, r[0].Y)
		for _, p := range r[1:] {
			fmt.Fprintf(&b, " L%.1f,%.1f", p.X, p.Y)
		}
		b.WriteString(" Z ")
	}
	return strings.TrimSpace(b.String())
}

// arrowheadPath builds the destination triangle pointing along the segment.
func arrowheadPath(from, to Point) string {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		l = 1
	}
	ux, uy := dx/l, dy/l
	bx, by := to.X-ux*arrowLen, to.Y-uy*arrowLen
	// perpendicular
	px, py := -uy, ux
	return fmt.Sprintf("M%.1f,%.1f L%.1f,%.1f L%.1f,%.1f Z",
		to.X, to.Y,
		bx+px*arrowHalfW, by+py*arrowHalfW,
		bx-px*arrowHalfW, by-py*arrowHalfW)
}

func round(v float64) int { return int(math.Round(v)) }
