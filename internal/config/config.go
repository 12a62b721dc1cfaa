// Package config loads gridcanvas settings from YAML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/gridcanvas"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all gridcanvas settings.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Style  StyleConfig  `yaml:"style"`
	Server ServerConfig `yaml:"server"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig holds lattice geometry.
type GridConfig struct {
	SurfaceID string `yaml:"surface_id"`
	Cells     int    `yaml:"cells"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

// StyleConfig holds line, cell and border styling. Colours are CSS strings.
type StyleConfig struct {
	Stroke     string  `yaml:"stroke"`
	LineWidth  float64 `yaml:"line_width"`
	LineCap    string  `yaml:"line_cap"`  // butt, round, square
	LineJoin   string  `yaml:"line_join"` // miter, round, bevel
	Fill       string  `yaml:"fill"`
	Border     string  `yaml:"border"`     // CSS shorthand, empty = none
	Background string  `yaml:"background"` // page colour behind exported PNGs
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr              string        `yaml:"addr"`
	StaticDir         string        `yaml:"static_dir"` // empty = no static files
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// OutputConfig holds file export settings.
type OutputConfig struct {
	PNG    string  `yaml:"png"`
	Framed bool    `yaml:"framed"` // composite the CSS border around the image
	Scale  float64 `yaml:"scale"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // text, json
	Verbose bool   `yaml:"verbose"`
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}
	return cfg
}

// Load reads the embedded defaults and overlays the file at path, if any.
// Only fields present in the file are overwritten. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field that would otherwise fail later at render or
// serve time. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.SurfaceID == "" {
		errs = append(errs, errors.New("grid.surface_id must not be empty"))
	}
	if c.Grid.Cells <= 0 {
		errs = append(errs, fmt.Errorf("grid.cells must be positive, got %d", c.Grid.Cells))
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Style.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("style.line_width must be positive, got %v", c.Style.LineWidth))
	}
	if _, err := c.StrokeStyle(); err != nil {
		errs = append(errs, err)
	}
	if _, err := gridcanvas.ParseColor(c.Style.Fill); err != nil {
		errs = append(errs, fmt.Errorf("style.fill: %w", err))
	}
	if _, err := gridcanvas.ParseColor(c.Style.Background); err != nil {
		errs = append(errs, fmt.Errorf("style.background: %w", err))
	}
	if c.Style.Border != "" {
		if _, err := gridcanvas.ParseBorder(c.Style.Border); err != nil {
			errs = append(errs, fmt.Errorf("style.border: %w", err))
		}
	}
	if c.Output.Scale <= 0 {
		errs = append(errs, fmt.Errorf("output.scale must be positive, got %v", c.Output.Scale))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// StrokeStyle converts the style section into a lattice stroke style.
func (c *Config) StrokeStyle() (gridcanvas.StrokeStyle, error) {
	col, err := gridcanvas.ParseColor(c.Style.Stroke)
	if err != nil {
		return gridcanvas.StrokeStyle{}, fmt.Errorf("style.stroke: %w", err)
	}
	lineCap, err := gridcanvas.ParseLineCap(c.Style.LineCap)
	if err != nil {
		return gridcanvas.StrokeStyle{}, fmt.Errorf("style.line_cap: %w", err)
	}
	join, err := gridcanvas.ParseLineJoin(c.Style.LineJoin)
	if err != nil {
		return gridcanvas.StrokeStyle{}, fmt.Errorf("style.line_join: %w", err)
	}
	return gridcanvas.StrokeStyle{
		Color: col,
		Width: c.Style.LineWidth,
		Cap:   lineCap,
		Join:  join,
	}, nil
}

// Background returns the parsed page background colour.
func (c *Config) Background() (gg.RGBA, error) {
	return gridcanvas.ParseColor(c.Style.Background)
}

// GridOptions converts the grid and style sections into grid options.
func (c *Config) GridOptions() ([]gridcanvas.Option, error) {
	stroke, err := c.StrokeStyle()
	if err != nil {
		return nil, err
	}
	fill, err := gridcanvas.ParseColor(c.Style.Fill)
	if err != nil {
		return nil, fmt.Errorf("style.fill: %w", err)
	}
	return []gridcanvas.Option{
		gridcanvas.WithSurfaceID(c.Grid.SurfaceID),
		gridcanvas.WithCells(c.Grid.Cells),
		gridcanvas.WithSize(c.Grid.Width, c.Grid.Height),
		gridcanvas.WithStrokeStyle(stroke),
		gridcanvas.WithFillColor(fill),
		gridcanvas.WithBorder(c.Style.Border),
		gridcanvas.WithVerbose(c.Log.Verbose),
	}, nil
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}

// NewLogger builds a slog logger writing to w in the configured format.
// Verbose forces debug level so per-line diagnostics are emitted.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	if c.Log.Verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Encode returns the configuration as YAML.
func (c *Config) Encode() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
