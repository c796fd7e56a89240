package raster

import (
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four segments approximate a
// quarter ellipse each.
const kappa = 0.5522847498307936

func f32(v float64) float32 { return float32(v) }

// ellipsePath adds a closed ellipse inscribed in b. Clockwise in screen
// coordinates unless reverse is set; an opposite-winding inner path cuts a
// hole.
func ellipsePath(z *vector.Rasterizer, b Rect, reverse bool) {
	c := b.Center()
	rx, ry := b.Width()/2, b.Height()/2
	kx, ky := rx*kappa, ry*kappa

	if !reverse {
		z.MoveTo(f32(c.X+rx), f32(c.Y))
		z.CubeTo(f32(c.X+rx), f32(c.Y+ky), f32(c.X+kx), f32(c.Y+ry), f32(c.X), f32(c.Y+ry))
		z.CubeTo(f32(c.X-kx), f32(c.Y+ry), f32(c.X-rx), f32(c.Y+ky), f32(c.X-rx), f32(c.Y))
		z.CubeTo(f32(c.X-rx), f32(c.Y-ky), f32(c.X-kx), f32(c.Y-ry), f32(c.X), f32(c.Y-ry))
		z.CubeTo(f32(c.X+kx), f32(c.Y-ry), f32(c.X+rx), f32(c.Y-ky), f32(c.X+rx), f32(c.Y))
	} else {
		z.MoveTo(f32(c.X+rx), f32(c.Y))
		z.CubeTo(f32(c.X+rx), f32(c.Y-ky), f32(c.X+kx), f32(c.Y-ry), f32(c.X), f32(c.Y-ry))
		z.CubeTo(f32(c.X-kx), f32(c.Y-ry), f32(c.X-rx), f32(c.Y-ky), f32(c.X-rx), f32(c.Y))
		z.CubeTo(f32(c.X-rx), f32(c.Y+ky), f32(c.X-kx), f32(c.Y+ry), f32(c.X), f32(c.Y+ry))
		z.CubeTo(f32(c.X+kx), f32(c.Y+ry), f32(c.X+rx), f32(c.Y+ky), f32(c.X+rx), f32(c.Y))
	}
	z.ClosePath()
}

// rectPath adds a closed rectangle, clockwise unless reverse is set.
func rectPath(z *vector.Rasterizer, b Rect, reverse bool) {
	pts := b.Corners()
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	polygonPath(z, pts[:])
}

func polygonPath(z *vector.Rasterizer, pts []Point) {
	z.MoveTo(f32(pts[0].X), f32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(f32(p.X), f32(p.Y))
	}
	z.ClosePath()
}

// segmentPath adds a width-wide band centred on the segment a-b. Every band
// winds the same way relative to its own direction, so overlapping bands at
// joints add coverage instead of cancelling.
func segmentPath(z *vector.Rasterizer, a, b Point, width float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	n := math.Hypot(dx, dy)
	if n == 0 {
		return
	}
	h := width / 2
	nx, ny := -dy/n*h, dx/n*h
	polygonPath(z, []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	})
}
