package icon

import (
	"fmt"
	"image/color"

	"github.com/Mavwarf/mailicon/internal/paths"
)

// GradientStyle selects how the orange overlay on the lower half of the
// badge is drawn.
type GradientStyle int

const (
	// GradientRings strokes the circle outline once per lower-half scanline
	// with a rising alpha. The strokes pile up on the rim rather than filling
	// the half, which is what the shipped icon looks like.
	GradientRings GradientStyle = iota
	// GradientFill blends a vertical orange ramp over the lower half.
	GradientFill
)

func (g GradientStyle) String() string {
	switch g {
	case GradientRings:
		return "rings"
	case GradientFill:
		return "fill"
	}
	return fmt.Sprintf("GradientStyle(%d)", int(g))
}

// Brand colours.
var (
	Red    = color.NRGBA{227, 24, 55, 255}
	Orange = color.NRGBA{255, 107, 53, 255}
	White  = color.NRGBA{255, 255, 255, 255}
	Shadow = color.NRGBA{0, 0, 0, 50}
)

// Config describes the icon and where it goes. Fractions are relative to
// Size (or to the envelope box for the flap and detail lines), so the design
// scales with Size.
type Config struct {
	Size         int
	Padding      float64 // circle inset on each side
	ShadowOffset float64 // pixels, applied to both axes
	ShadowColor  color.NRGBA

	Red, Orange, White color.NRGBA

	EnvelopeWidth  float64
	EnvelopeHeight float64
	FlapDepth      float64 // apex drop, fraction of envelope height
	OutlineWidth   float64

	DetailLines   int
	DetailStart   float64 // first line, fraction of envelope height
	DetailSpacing float64 // fraction of envelope height
	DetailInset   float64 // per side, fraction of envelope width
	DetailWidth   float64

	Gradient      GradientStyle
	GradientAlpha float64 // alpha reached at the bottom scanline

	Primary   string
	Secondary []string
	Style     string
}

// DefaultConfig returns the mail icon with its outputs placed in the Wails
// project at root.
func DefaultConfig(root string) Config {
	return Config{
		Size:         1024,
		Padding:      0.1,
		ShadowOffset: 20,
		ShadowColor:  Shadow,

		Red:    Red,
		Orange: Orange,
		White:  White,

		EnvelopeWidth:  0.5,
		EnvelopeHeight: 0.35,
		FlapDepth:      0.4,
		OutlineWidth:   4,

		DetailLines:   3,
		DetailStart:   0.55,
		DetailSpacing: 0.12,
		DetailInset:   0.15,
		DetailWidth:   3,

		Gradient:      GradientRings,
		GradientAlpha: 128,

		Primary:   paths.AppIcon(root),
		Secondary: paths.AppIconCopies(root),
		Style:     "DTDC Red mail envelope on circular background",
	}
}

// Outputs returns the primary path followed by the secondary paths.
func (c Config) Outputs() []string {
	return append([]string{c.Primary}, c.Secondary...)
}

// Validate checks that the geometry is drawable and a primary output is set.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive, got %d", c.Size)
	}
	if c.Padding < 0 || c.Padding >= 0.5 {
		return fmt.Errorf("padding must be in [0, 0.5), got %g", c.Padding)
	}
	fractions := []struct {
		name string
		v    float64
	}{
		{"envelope width", c.EnvelopeWidth},
		{"envelope height", c.EnvelopeHeight},
		{"flap depth", c.FlapDepth},
	}
	for _, f := range fractions {
		if f.v <= 0 || f.v > 1 {
			return fmt.Errorf("%s must be in (0, 1], got %g", f.name, f.v)
		}
	}
	if c.DetailLines < 0 {
		return fmt.Errorf("detail line count must not be negative, got %d", c.DetailLines)
	}
	if c.DetailInset < 0 || c.DetailInset >= 0.5 {
		return fmt.Errorf("detail inset must be in [0, 0.5), got %g", c.DetailInset)
	}
	if c.GradientAlpha < 0 || c.GradientAlpha > 255 {
		return fmt.Errorf("gradient alpha must be in [0, 255], got %g", c.GradientAlpha)
	}
	if c.Primary == "" {
		return fmt.Errorf("no primary output path")
	}
	return nil
}
