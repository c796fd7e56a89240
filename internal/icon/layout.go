package icon

import "github.com/Mavwarf/mailicon/internal/raster"

// Layout is the resolved geometry of one icon.
type Layout struct {
	Circle   raster.Rect
	Shadow   raster.Rect
	Envelope raster.Rect
	Apex     raster.Point
	Details  [][2]raster.Point
}

// Layout resolves the configured fractions into canvas coordinates.
func (c Config) Layout() Layout {
	s := float64(c.Size)
	pad := s * c.Padding
	circle := raster.Rect{Left: pad, Top: pad, Right: s - pad, Bottom: s - pad}

	w, h := s*c.EnvelopeWidth, s*c.EnvelopeHeight
	left, top := (s-w)/2, (s-h)/2
	env := raster.Rect{Left: left, Top: top, Right: left + w, Bottom: top + h}

	l := Layout{
		Circle:   circle,
		Shadow:   circle.Offset(c.ShadowOffset, c.ShadowOffset),
		Envelope: env,
		Apex:     raster.Point{X: s / 2, Y: top + h*c.FlapDepth},
	}

	inset := w * c.DetailInset
	for i := 0; i < c.DetailLines; i++ {
		y := top + h*c.DetailStart + float64(i)*h*c.DetailSpacing
		l.Details = append(l.Details, [2]raster.Point{
			{X: env.Left + inset, Y: y},
			{X: env.Right - inset, Y: y},
		})
	}
	return l
}

// Flap returns the flap triangle: top-left corner, apex, top-right corner.
func (l Layout) Flap() []raster.Point {
	return []raster.Point{
		{X: l.Envelope.Left, Y: l.Envelope.Top},
		l.Apex,
		{X: l.Envelope.Right, Y: l.Envelope.Top},
	}
}

// EnvelopeInCircle reports whether every envelope corner lies strictly inside
// the circle's bounding box and inside the circle itself.
func (l Layout) EnvelopeInCircle() bool {
	if !l.Circle.ContainsRect(l.Envelope) {
		return false
	}
	c := l.Circle.Center()
	r := l.Circle.Width() / 2
	for _, p := range l.Envelope.Corners() {
		dx, dy := p.X-c.X, p.Y-c.Y
		if dx*dx+dy*dy >= r*r {
			return false
		}
	}
	return true
}
