// Package raster provides an anti-aliased RGBA drawing surface with the
// handful of primitives the icon renderer needs.
package raster

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

type shapeKind uint8

const (
	kindEllipse shapeKind = iota + 1
	kindRect
)

// shapeKey identifies a cacheable shape. width is 0 for fills.
type shapeKey struct {
	kind  shapeKind
	b     Rect
	width float64
}

// Canvas is a square, initially transparent RGBA raster. Every primitive is
// rasterized into a coverage mask and composited onto the image with
// Porter-Duff Over.
type Canvas struct {
	img     *image.RGBA
	z       vector.Rasterizer
	scratch *image.Alpha
	masks   map[shapeKey]*image.Alpha
}

// NewCanvas returns a fully transparent size×size canvas.
func NewCanvas(size int) *Canvas {
	r := image.Rect(0, 0, size, size)
	return &Canvas{
		img:     image.NewRGBA(r),
		scratch: image.NewAlpha(r),
		masks:   make(map[shapeKey]*image.Alpha),
	}
}

// Image returns the underlying raster. It is shared, not copied.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Size returns the side length in pixels.
func (c *Canvas) Size() int { return c.img.Bounds().Dx() }

// FillEllipse fills the ellipse inscribed in b.
func (c *Canvas) FillEllipse(b Rect, col color.Color) {
	if b.Empty() {
		return
	}
	c.paintCached(shapeKey{kind: kindEllipse, b: b}, b, col, func(z *vector.Rasterizer) {
		ellipsePath(z, b, false)
	})
}

// StrokeEllipse draws the outline of the ellipse inscribed in b. The stroke
// lies inside b.
func (c *Canvas) StrokeEllipse(b Rect, width float64, col color.Color) {
	if b.Empty() || width <= 0 {
		return
	}
	inner := b.Inset(width)
	if inner.Empty() {
		c.FillEllipse(b, col)
		return
	}
	c.paintCached(shapeKey{kind: kindEllipse, b: b, width: width}, b, col, func(z *vector.Rasterizer) {
		ellipsePath(z, b, false)
		ellipsePath(z, inner, true)
	})
}

// FillRect fills b.
func (c *Canvas) FillRect(b Rect, col color.Color) {
	if b.Empty() {
		return
	}
	c.paintCached(shapeKey{kind: kindRect, b: b}, b, col, func(z *vector.Rasterizer) {
		rectPath(z, b, false)
	})
}

// StrokeRect draws the outline of b with the stroke inside b.
func (c *Canvas) StrokeRect(b Rect, width float64, col color.Color) {
	if b.Empty() || width <= 0 {
		return
	}
	inner := b.Inset(width)
	if inner.Empty() {
		c.FillRect(b, col)
		return
	}
	c.paintCached(shapeKey{kind: kindRect, b: b, width: width}, b, col, func(z *vector.Rasterizer) {
		rectPath(z, b, false)
		rectPath(z, inner, true)
	})
}

// FillPolygon fills the closed polygon through pts.
func (c *Canvas) FillPolygon(pts []Point, col color.Color) {
	if len(pts) < 3 {
		return
	}
	c.paint(bounds(pts, 0), col, func(z *vector.Rasterizer) {
		polygonPath(z, pts)
	})
}

// StrokePolygon outlines the closed polygon through pts, centred on its edges.
func (c *Canvas) StrokePolygon(pts []Point, width float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	closed := append(append([]Point(nil), pts...), pts[0])
	c.Line(closed, width, col)
}

// Line strokes the polyline through pts. Each segment is a width-wide band
// centred on it.
func (c *Canvas) Line(pts []Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	c.paint(bounds(pts, width), col, func(z *vector.Rasterizer) {
		for i := 1; i < len(pts); i++ {
			segmentPath(z, pts[i-1], pts[i], width)
		}
	})
}

func transparent(col color.Color) bool {
	_, _, _, a := col.RGBA()
	return a == 0
}

// paintCached rasterizes build once per key and reuses the mask afterwards.
func (c *Canvas) paintCached(key shapeKey, area Rect, col color.Color, build func(*vector.Rasterizer)) {
	if transparent(col) {
		return
	}
	m, ok := c.masks[key]
	if !ok {
		m = image.NewAlpha(c.img.Bounds())
		c.rasterize(m, build)
		c.masks[key] = m
	}
	c.composite(m, area, col)
}

func (c *Canvas) paint(area Rect, col color.Color, build func(*vector.Rasterizer)) {
	if transparent(col) {
		return
	}
	c.rasterize(c.scratch, build)
	c.composite(c.scratch, area, col)
}

func (c *Canvas) rasterize(m *image.Alpha, build func(*vector.Rasterizer)) {
	b := m.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	build(&c.z)
	c.z.DrawOp = xdraw.Src
	c.z.Draw(m, b, image.Opaque, image.Point{})
}

// composite blends col through mask m, restricted to the pixels under area.
func (c *Canvas) composite(m *image.Alpha, area Rect, col color.Color) {
	r := area.pixels().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	xdraw.DrawMask(c.img, r, image.NewUniform(col), image.Point{}, m, r.Min, xdraw.Over)
}
