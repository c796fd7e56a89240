// Package icon draws the mail app icon: a white envelope on a red circular
// badge with a drop shadow and an orange overlay on the lower half.
package icon

import (
	"image/color"
	"math"

	"github.com/Mavwarf/mailicon/internal/raster"
)

// Surface is the drawing capability the renderer needs. *raster.Canvas
// implements it.
type Surface interface {
	FillEllipse(b raster.Rect, c color.Color)
	StrokeEllipse(b raster.Rect, width float64, c color.Color)
	FillRect(b raster.Rect, c color.Color)
	StrokeRect(b raster.Rect, width float64, c color.Color)
	FillPolygon(pts []raster.Point, c color.Color)
	StrokePolygon(pts []raster.Point, width float64, c color.Color)
	Line(pts []raster.Point, width float64, c color.Color)
}

// Render allocates a canvas of cfg.Size and draws the icon on it.
func Render(cfg Config) *raster.Canvas {
	c := raster.NewCanvas(cfg.Size)
	Draw(c, cfg)
	return c
}

// Draw paints the icon onto s, which is expected to be a transparent
// cfg.Size square. The drawing order is fixed.
func Draw(s Surface, cfg Config) {
	l := cfg.Layout()

	s.FillEllipse(l.Shadow, cfg.ShadowColor)
	s.FillEllipse(l.Circle, cfg.Red)

	switch cfg.Gradient {
	case GradientFill:
		drawGradientFill(s, cfg, l.Circle)
	default:
		drawGradientRings(s, cfg, l.Circle)
	}

	s.FillRect(l.Envelope, cfg.White)
	s.StrokeRect(l.Envelope, cfg.OutlineWidth, cfg.Red)

	flap := l.Flap()
	s.FillPolygon(flap, cfg.White)
	s.StrokePolygon(flap, 1, cfg.Red)
	s.Line(append(flap, flap[0]), cfg.OutlineWidth, cfg.Red)
	s.Line([]raster.Point{flap[0], l.Apex}, cfg.OutlineWidth, cfg.Red)
	s.Line([]raster.Point{flap[2], l.Apex}, cfg.OutlineWidth, cfg.Red)

	for _, d := range l.Details {
		s.Line(d[:], cfg.DetailWidth, cfg.Red)
	}
}

// gradientAlpha is the overlay alpha for scanline i: 0 at the vertical
// midpoint rising linearly to max at the bottom edge. For odd sizes the
// first scanline sits just above the midpoint and clamps to 0.
func gradientAlpha(i, size int, max float64) uint8 {
	half := float64(size) / 2
	a := math.Round((float64(i) - half) / half * max)
	return uint8(math.Min(math.Max(a, 0), max))
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

func drawGradientRings(s Surface, cfg Config, circle raster.Rect) {
	for i := cfg.Size / 2; i < cfg.Size; i++ {
		s.StrokeEllipse(circle, 1, withAlpha(cfg.Orange, gradientAlpha(i, cfg.Size, cfg.GradientAlpha)))
	}
}

// drawGradientFill covers the lower half of the circle with one-pixel strips
// whose sides follow the circle edge.
func drawGradientFill(s Surface, cfg Config, circle raster.Rect) {
	c := circle.Center()
	rx, ry := circle.Width()/2, circle.Height()/2
	halfWidth := func(y float64) float64 {
		d := (y - c.Y) / ry
		if d >= 1 || d <= -1 {
			return 0
		}
		return rx * math.Sqrt(1-d*d)
	}

	for i := cfg.Size / 2; i < cfg.Size; i++ {
		y0, y1 := math.Max(float64(i), c.Y), math.Min(float64(i+1), circle.Bottom)
		if y1 <= y0 {
			continue
		}
		w0, w1 := halfWidth(y0), halfWidth(y1)
		s.FillPolygon([]raster.Point{
			{X: c.X - w0, Y: y0},
			{X: c.X + w0, Y: y0},
			{X: c.X + w1, Y: y1},
			{X: c.X - w1, Y: y1},
		}, withAlpha(cfg.Orange, gradientAlpha(i, cfg.Size, cfg.GradientAlpha)))
	}
}
