package scene

import (
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	fontSrc  *ggtext.FontSource
)

func labelFont() *ggtext.FontSource {
	fontOnce.Do(func() {
		src, err := ggtext.NewFontSource(goregular.TTF)
		if err == nil {
			fontSrc = src
		}
	})
	return fontSrc
}

// RenderPNG rasterizes the scene at an integer magnification factor.
// Coordinates are scaled by hand because text draws outside the context
// transform.
func (s Scene) RenderPNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	k := float64(scale)
	dc := gg.NewContext(int(s.Width)*scale, int(s.Height)*scale)
	dc.SetRGB(0.984, 0.980, 0.965)
	dc.DrawRectangle(0, 0, s.Width*k, s.Height*k)
	if err := dc.Fill(); err != nil {
		return err
	}

	for _, o := range s.Outlines {
		traceRings(dc, o.Rings, k)
		dc.SetRGB(0.894, 0.937, 0.847)
		if err := dc.FillPreserve(); err != nil {
			return err
		}
		dc.SetRGB(0.357, 0.455, 0.267)
		dc.SetLineWidth(1.5 * k)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	dc.SetLineWidth(2 * k)
	for _, seg := range s.Segments {
		dc.SetRGB(0.702, 0.271, 0.173)
		dc.DrawLine(seg.From.X*k, seg.From.Y*k, seg.To.X*k, seg.To.Y*k)
		if err := dc.Stroke(); err != nil {
			return err
		}
		if err := fillArrowhead(dc, seg.From, seg.To, k); err != nil {
			return err
		}

		mx := (seg.From.X + seg.To.X) / 2 * k
		my := (seg.From.Y + seg.To.Y) / 2 * k
		dc.SetRGB(1, 1, 1)
		dc.DrawCircle(mx, my, float64(badgeRadius)*k)
		if err := dc.Fill(); err != nil {
			return err
		}
		dc.SetRGB(0.702, 0.271, 0.173)
		dc.DrawCircle(mx, my, float64(badgeRadius)*k)
		if err := dc.Stroke(); err != nil {
			return err
		}
		drawHaloString(dc, fmt.Sprintf("%d", seg.Seq), mx, my, 11*k, false)
	}

	for _, l := range s.Labels {
		drawHaloString(dc, l.Text, l.At.X*k, l.At.Y*k, 13*k, l.OnRoute)
	}

	return dc.EncodePNG(w)
}

func traceRings(dc *gg.Context, rings [][]Point, k float64) {
	dc.ClearPath()
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		dc.NewSubPath()
		dc.MoveTo(r[0].X*k, r[0].Y*k)
		for _, p := range r[1:] {
			dc.LineTo(p.X*k, p.Y*k)
		}
		dc.ClosePath()
	}
}

func fillArrowhead(dc *gg.Context, from, to Point, k float64) error {
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		l = 1
	}
	ux, uy := dx/l, dy/l
	px, py := -uy, ux
	bx, by := to.X-ux*arrowLen, to.Y-uy*arrowLen

	dc.ClearPath()
	dc.MoveTo(to.X*k, to.Y*k)
	dc.LineTo((bx+px*arrowHalfW)*k, (by+py*arrowHalfW)*k)
	dc.LineTo((bx-px*arrowHalfW)*k, (by-py*arrowHalfW)*k)
	dc.ClosePath()
	dc.SetRGB(0.702, 0.271, 0.173)
	return dc.Fill()
}

// drawHaloString centers text at (x,y) with a white halo so it stays legible
// over polygon fill. Silently skips when the embedded face failed to load.
func drawHaloString(dc *gg.Context, text string, x, y, points float64, halo bool) {
	src := labelFont()
	if src == nil {
		return
	}
	dc.SetFont(src.Face(points))
	if halo {
		dc.SetRGB(1, 1, 1)
		for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			dc.DrawStringAnchored(text, x+d[0]*2, y+d[1]*2, 0.5, 0.5)
		}
		dc.SetRGB(0.133, 0.133, 0.133)
	} else {
		dc.SetRGB(0.4, 0.4, 0.4)
	}
	dc.DrawStringAnchored(text, x, y, 0.5, 0.5)
}
