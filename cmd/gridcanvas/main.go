// Command gridcanvas renders the 20x20 cell lattice and exports, serves or
// previews it.
//
// Usage:
//
//	gridcanvas [global flags] <command> [command flags]
//
// Commands:
//
//	render    write the lattice as PNG
//	segments  write the stroked segments as CSV
//	serve     serve the host page, PNG and CSV over HTTP
//	preview   draw the lattice in the terminal
//	config    print the effective configuration as YAML
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gridcanvas"
	"github.com/gogpu/gridcanvas/internal/config"
	"github.com/gogpu/gridcanvas/internal/export"
	"github.com/gogpu/gridcanvas/internal/server"
	"github.com/gogpu/gridcanvas/internal/termview"
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gridcanvas", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "path to config.yaml (empty = defaults)")
		verbose    = fs.Bool("v", false, "log every grid line at debug level")
		logLevel   = fs.String("log-level", "", "debug, info, warn or error (overrides config)")
		logFormat  = fs.String("log-format", "", "text or json (overrides config)")
	)
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "gridcanvas: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "gridcanvas: %v\n", err)
		return 1
	}

	logger := cfg.NewLogger(stderr)
	slog.SetDefault(logger)
	gridcanvas.SetLogger(logger)

	if fs.NArg() == 0 {
		usage(fs)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "render":
		err = cmdRender(cfg, rest, stderr)
	case "segments":
		err = cmdSegments(cfg, rest, stdout, stderr)
	case "serve":
		err = cmdServe(ctx, cfg, rest, stderr)
	case "preview":
		err = cmdPreview(ctx, cfg, rest, stderr)
	case "config":
		err = cmdConfig(cfg, stdout)
	default:
		fmt.Fprintf(stderr, "gridcanvas: unknown command %q\n", cmd)
		usage(fs)
		return 2
	}
	switch {
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		return 2
	case err != nil:
		logger.Error("command failed", "command", cmd, "err", err)
		return 1
	}
	return 0
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "usage: gridcanvas [flags] render|segments|serve|preview|config [command flags]")
	fs.PrintDefaults()
}

// buildGrid creates the host document with the configured surface and
// renders the lattice onto it.
func buildGrid(cfg *config.Config) (*gridcanvas.Grid, error) {
	opts, err := cfg.GridOptions()
	if err != nil {
		return nil, err
	}
	doc := gridcanvas.NewDocument()
	if _, err := doc.CreateSurface(cfg.Grid.SurfaceID); err != nil {
		return nil, err
	}
	return gridcanvas.NewGrid(doc, opts...)
}

func subFlags(name string, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "%s: unexpected arguments %v\n", fs.Name(), fs.Args())
		return errUsage
	}
	return nil
}

func cmdRender(cfg *config.Config, args []string, stderr io.Writer) error {
	fs := subFlags("render", stderr)
	output := fs.String("o", cfg.Output.PNG, "output PNG file")
	framed := fs.Bool("framed", cfg.Output.Framed, "draw the CSS border around the image")
	scale := fs.Float64("scale", cfg.Output.Scale, "scale factor")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", *scale)
	}

	g, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	defer g.Surface().Close()

	bg, err := cfg.Background()
	if err != nil {
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	opts := export.PNGOptions{Framed: *framed, Background: bg, Scale: *scale}
	if err := export.WritePNG(f, g.Surface(), opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("png written", "path", *output, "framed", *framed, "scale", *scale)
	return nil
}

func cmdSegments(cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := subFlags("segments", stderr)
	output := fs.String("o", "-", "output CSV file (- = stdout)")
	if err := parse(fs, args); err != nil {
		return err
	}

	g, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	defer g.Surface().Close()

	if *output == "-" {
		return export.WriteSegmentsCSV(stdout, g.Surface())
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := export.WriteSegmentsCSV(f, g.Surface()); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("segments written", "path", *output, "segments", len(g.Surface().Segments()))
	return nil
}

func cmdServe(ctx context.Context, cfg *config.Config, args []string, stderr io.Writer) error {
	fs := subFlags("serve", stderr)
	addr := fs.String("addr", cfg.Server.Addr, "listen address")
	static := fs.String("static", cfg.Server.StaticDir, "static directory served under /static/ (empty = none)")
	if err := parse(fs, args); err != nil {
		return err
	}
	cfg.Server.Addr = *addr
	cfg.Server.StaticDir = *static

	g, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	defer g.Surface().Close()

	bg, err := cfg.Background()
	if err != nil {
		return err
	}
	return server.New(cfg.Server, g, bg).ListenAndServe(ctx)
}

func cmdPreview(ctx context.Context, cfg *config.Config, args []string, stderr io.Writer) error {
	fs := subFlags("preview", stderr)
	if err := parse(fs, args); err != nil {
		return err
	}

	g, err := buildGrid(cfg)
	if err != nil {
		return err
	}
	defer g.Surface().Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	return termview.New(screen, g).Run(ctx)
}

func cmdConfig(cfg *config.Config, stdout io.Writer) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
