package icon

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/Mavwarf/mailicon/internal/raster"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func nearRect(a, b raster.Rect) bool {
	return near(a.Left, b.Left) && near(a.Top, b.Top) && near(a.Right, b.Right) && near(a.Bottom, b.Bottom)
}

func TestDefaultLayout(t *testing.T) {
	l := DefaultConfig(t.TempDir()).Layout()

	tests := []struct {
		name      string
		got, want raster.Rect
	}{
		{"circle", l.Circle, raster.Rect{Left: 102.4, Top: 102.4, Right: 921.6, Bottom: 921.6}},
		{"shadow", l.Shadow, raster.Rect{Left: 122.4, Top: 122.4, Right: 941.6, Bottom: 941.6}},
		{"envelope", l.Envelope, raster.Rect{Left: 256, Top: 332.8, Right: 768, Bottom: 691.2}},
	}
	for _, tt := range tests {
		if !nearRect(tt.got, tt.want) {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}

	if !near(l.Apex.X, 512) || !near(l.Apex.Y, 476.16) {
		t.Errorf("apex = %+v, want (512, 476.16)", l.Apex)
	}
}

func TestDetailLines(t *testing.T) {
	l := DefaultConfig(t.TempDir()).Layout()

	if len(l.Details) != 3 {
		t.Fatalf("got %d detail lines, want 3", len(l.Details))
	}
	wantY := []float64{529.92, 572.928, 615.936}
	for i, d := range l.Details {
		if !near(d[0].Y, wantY[i]) || !near(d[1].Y, wantY[i]) {
			t.Errorf("line %d at y=%v..%v, want %v", i, d[0].Y, d[1].Y, wantY[i])
		}
		if !near(d[0].X, 332.8) || !near(d[1].X, 691.2) {
			t.Errorf("line %d spans x=%v..%v, want 332.8..691.2", i, d[0].X, d[1].X)
		}
		if !l.Envelope.Contains(d[0]) || !l.Envelope.Contains(d[1]) {
			t.Errorf("line %d leaves the envelope", i)
		}
	}
}

func TestEnvelopeInCircle(t *testing.T) {
	l := DefaultConfig(t.TempDir()).Layout()
	if !l.EnvelopeInCircle() {
		t.Fatal("default envelope should sit inside the circle")
	}
	for _, p := range l.Envelope.Corners() {
		if !l.Circle.Contains(p) {
			t.Errorf("envelope corner %+v outside padded square %+v", p, l.Circle)
		}
	}
}

func TestEnvelopeInCircleRejectsOversize(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.EnvelopeWidth = 0.85
	if cfg.Layout().EnvelopeInCircle() {
		t.Error("an envelope wider than the circle should not fit")
	}

	// Fits the bbox but the corners poke out of the round badge.
	cfg.EnvelopeWidth, cfg.EnvelopeHeight = 0.75, 0.75
	l := cfg.Layout()
	if !l.Circle.ContainsRect(l.Envelope) {
		t.Fatal("test setup: envelope should fit the bounding box")
	}
	if l.EnvelopeInCircle() {
		t.Error("corners outside the circle should be rejected")
	}
}

func TestLayoutScalesWithSize(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.Size = 256
	l := cfg.Layout()

	if !nearRect(l.Circle, raster.Rect{Left: 25.6, Top: 25.6, Right: 230.4, Bottom: 230.4}) {
		t.Errorf("circle = %+v", l.Circle)
	}
	if !near(l.Envelope.Width(), 128) || !near(l.Envelope.Height(), 89.6) {
		t.Errorf("envelope = %vx%v, want 128x89.6", l.Envelope.Width(), l.Envelope.Height())
	}
	if !l.EnvelopeInCircle() {
		t.Error("containment must hold at any size")
	}
}

func TestFlapOrder(t *testing.T) {
	l := DefaultConfig(t.TempDir()).Layout()
	f := l.Flap()
	if len(f) != 3 {
		t.Fatalf("flap has %d points, want 3", len(f))
	}
	if f[0] != (raster.Point{X: l.Envelope.Left, Y: l.Envelope.Top}) ||
		f[1] != l.Apex ||
		f[2] != (raster.Point{X: l.Envelope.Right, Y: l.Envelope.Top}) {
		t.Errorf("flap = %+v", f)
	}
}

func TestDefaultOutputs(t *testing.T) {
	root := filepath.Join("work", "mail-desktop")
	cfg := DefaultConfig(root)

	want := []string{
		filepath.Join(root, "build", "appicon.png"),
		filepath.Join(root, "appicon.png"),
		filepath.Join(root, "build", "darwin", "appicon.png"),
	}
	got := cfg.Outputs()
	if len(got) != len(want) {
		t.Fatalf("Outputs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Outputs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"default", func(c *Config) {}, false},
		{"zero size", func(c *Config) { c.Size = 0 }, true},
		{"padding half", func(c *Config) { c.Padding = 0.5 }, true},
		{"negative padding", func(c *Config) { c.Padding = -0.1 }, true},
		{"envelope zero width", func(c *Config) { c.EnvelopeWidth = 0 }, true},
		{"envelope too tall", func(c *Config) { c.EnvelopeHeight = 1.5 }, true},
		{"flap depth zero", func(c *Config) { c.FlapDepth = 0 }, true},
		{"negative detail lines", func(c *Config) { c.DetailLines = -1 }, true},
		{"no detail lines", func(c *Config) { c.DetailLines = 0 }, false},
		{"inset half", func(c *Config) { c.DetailInset = 0.5 }, true},
		{"gradient alpha overflow", func(c *Config) { c.GradientAlpha = 300 }, true},
		{"no primary", func(c *Config) { c.Primary = "" }, true},
		{"no secondaries", func(c *Config) { c.Secondary = nil }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig(t.TempDir())
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGradientStyleString(t *testing.T) {
	if GradientRings.String() != "rings" || GradientFill.String() != "fill" {
		t.Errorf("got %q, %q", GradientRings, GradientFill)
	}
	if got := GradientStyle(7).String(); got != "GradientStyle(7)" {
		t.Errorf("unknown style = %q", got)
	}
}
