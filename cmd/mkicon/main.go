// mkicon generates the 1024×1024 mail app icon PNG for the desktop build.
// Run it from the Wails project root: go run ./cmd/mkicon
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/mailicon/internal/console"
	"github.com/Mavwarf/mailicon/internal/export"
	"github.com/Mavwarf/mailicon/internal/icon"
	"github.com/Mavwarf/mailicon/internal/paths"
	"github.com/Mavwarf/mailicon/internal/raster"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type options struct {
	help    bool
	version bool
	verbose bool
	smooth  bool
}

func parseArgs(args []string) (options, error) {
	var o options
	for _, a := range args {
		switch a {
		case "help", "-h", "--help":
			o.help = true
		case "version", "-V", "--version":
			o.version = true
		case "--verbose":
			o.verbose = true
		case "--smooth-gradient":
			o.smooth = true
		default:
			return o, fmt.Errorf("unknown argument %q", a)
		}
	}
	return o, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'mkicon help' for usage.\n")
		os.Exit(1)
	}
	if opts.help {
		printUsage()
		return
	}
	if opts.version {
		printVersion()
		return
	}

	root, err := paths.ProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg := icon.DefaultConfig(root)
	if opts.smooth {
		cfg.Gradient = icon.GradientFill
	}

	out := console.NewPrinter(os.Stdout, console.ColorEnabled(os.Stdout))
	if _, err := run(cfg, out, newLogger(os.Stderr, opts.verbose)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
}

// run renders the icon described by cfg and writes it to every output path.
// Only a failure on the primary path is returned as an error.
func run(cfg icon.Config, out *console.Printer, log zerolog.Logger) (export.Report, error) {
	if err := cfg.Validate(); err != nil {
		return export.Report{}, fmt.Errorf("invalid icon config: %w", err)
	}
	out.OK("Rasterizer available: %s %s", raster.Module, raster.Version())

	start := time.Now()
	canvas := icon.Render(cfg)
	log.Debug().
		Int("size", cfg.Size).
		Stringer("gradient", cfg.Gradient).
		Dur("elapsed", time.Since(start)).
		Msg("rendered icon")

	saver := export.Saver{Out: out, Log: log}
	rep, err := saver.Save(canvas.Image(), cfg.Primary, cfg.Secondary)
	if err != nil {
		return rep, err
	}

	out.Heading("Mail icon created successfully!")
	out.Detail("Size: %dx%d pixels", cfg.Size, cfg.Size)
	out.Detail("Format: PNG with transparency")
	out.Detail("Style: %s", cfg.Style)
	return rep, nil
}

func printVersion() {
	fmt.Printf("mkicon %s (%s) %s/%s\n", version, buildDate, runtime.GOOS, runtime.GOARCH)
}

func printUsage() {
	fmt.Printf("mkicon %s - Generate the desktop app icon\n", version)
	fmt.Println(`
Usage:
  mkicon [options]

Run from the project root. Writes a 1024x1024 PNG to:
  build/appicon.png          (primary, failure aborts)
  appicon.png                (copy, failure is reported and skipped)
  build/darwin/appicon.png   (copy, failure is reported and skipped)

Options:
  --smooth-gradient      Blend the lower-half overlay instead of stroking rings
  --verbose              Log render and encode timings to stderr
  version, -V            Show version and build date
  help, -h, --help       Show this help message`)
}
