// Package export encodes the icon as PNG and writes it to every target path.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/mailicon/internal/console"
	"github.com/Mavwarf/mailicon/internal/paths"
)

// Result is the outcome of one path write.
type Result struct {
	Path string
	Err  error
}

// Report summarises a Save call.
type Report struct {
	Primary string
	Bytes   int
	Results []Result
}

// Failed returns the results whose write failed.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Saver writes encoded icons and reports each write on Out.
type Saver struct {
	Out *console.Printer
	Log zerolog.Logger
}

// Save encodes img once and writes the bytes to primary, then to each
// secondary path in order. A primary failure is returned as an error and
// nothing else is written. Secondary failures are reported and skipped.
func (s Saver) Save(img image.Image, primary string, secondary []string) (Report, error) {
	start := time.Now()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Report{}, fmt.Errorf("encoding png: %w", err)
	}
	data := buf.Bytes()
	s.Log.Debug().Int("bytes", len(data)).Dur("elapsed", time.Since(start)).Msg("encoded png")

	if err := paths.AtomicWrite(primary, data); err != nil {
		return Report{}, fmt.Errorf("writing %s: %w", primary, err)
	}
	s.Out.OK("Icon saved to: %s", primary)

	rep := Report{
		Primary: primary,
		Bytes:   len(data),
		Results: []Result{{Path: primary}},
	}
	for _, p := range secondary {
		err := paths.AtomicWrite(p, data)
		rep.Results = append(rep.Results, Result{Path: p, Err: err})
		if err != nil {
			s.Log.Debug().Err(err).Str("path", p).Msg("secondary write failed")
			s.Out.Warn("Could not save to %s: %v", p, err)
			continue
		}
		s.Out.OK("Icon saved to: %s", p)
	}
	return rep, nil
}
