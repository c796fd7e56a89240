// Package console prints the human-readable status lines of mkicon.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	glyphOK   = "✓"
	glyphWarn = "⚠"
)

// ColorEnabled reports whether ANSI colour should be used on f: it must be a
// terminal and NO_COLOR must be unset.
func ColorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Printer writes status lines. Colour only affects the leading glyph.
type Printer struct {
	w     io.Writer
	color bool
}

func NewPrinter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

func (p *Printer) ansi(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + "\033[0m"
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.ansi("\033[32m", glyphOK), fmt.Sprintf(format, args...))
}

// Warn prints a non-fatal failure line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.ansi("\033[33m", glyphWarn), fmt.Sprintf(format, args...))
}

// Heading prints a bold line preceded by a blank line.
func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintf(p.w, "\n%s\n", p.ansi("\033[1m", glyphOK+" "+fmt.Sprintf(format, args...)))
}

// Detail prints an indented plain line.
func (p *Printer) Detail(format string, args ...any) {
	fmt.Fprintf(p.w, "  %s\n", fmt.Sprintf(format, args...))
}
