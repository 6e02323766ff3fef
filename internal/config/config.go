// Package config loads pixelsort settings from defaults, an optional config file, PIXELSORT_*
// environment variables and command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/BeatGlow/pixelsort/format"
	"github.com/BeatGlow/pixelsort/framebuffer"
	"github.com/BeatGlow/pixelsort/scalar"
	"github.com/BeatGlow/pixelsort/sheet"
	"github.com/BeatGlow/pixelsort/sorter"
)

// Name is the config file base name and environment prefix.
const Name = "pixelsort"

// Config is the complete pixelsort configuration.
type Config struct {
	Sort   SortConfig   `mapstructure:"sort" yaml:"sort"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Sweep  SweepConfig  `mapstructure:"sweep" yaml:"sweep"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
}

// SortConfig holds the sorter settings in their textual form.
type SortConfig struct {
	Threshold string `mapstructure:"threshold" yaml:"threshold"`
	Kind      string `mapstructure:"kind" yaml:"kind"`
	Direction string `mapstructure:"direction" yaml:"direction"`
	Method    string `mapstructure:"method" yaml:"method"`
	Grouping  string `mapstructure:"grouping" yaml:"grouping"`
	Passes    int    `mapstructure:"passes" yaml:"passes"`
	Workers   int    `mapstructure:"workers" yaml:"workers"`
}

// OutputConfig holds the output settings.
type OutputConfig struct {
	Path    string `mapstructure:"path" yaml:"path"`
	Format  string `mapstructure:"format" yaml:"format"`
	Quality int    `mapstructure:"quality" yaml:"quality"`
	Preview string `mapstructure:"preview" yaml:"preview"`
	Rotate  string `mapstructure:"rotate" yaml:"rotate"`
}

// SweepConfig holds the contact sheet settings.
type SweepConfig struct {
	Start   float64 `mapstructure:"start" yaml:"start"`
	Stop    float64 `mapstructure:"stop" yaml:"stop"`
	Step    float64 `mapstructure:"step" yaml:"step"`
	Span    float64 `mapstructure:"span" yaml:"span"`
	Columns int     `mapstructure:"columns" yaml:"columns"`
	Tile    int     `mapstructure:"tile" yaml:"tile"`
}

// LogConfig holds the logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Sort: SortConfig{
			Threshold: sorter.DefaultOptions.Gate.String(),
			Kind:      sorter.DefaultOptions.Order.String(),
			Direction: sorter.DefaultOptions.Axis.String(),
			Method:    sorter.DefaultOptions.Method.String(),
			Grouping:  sorter.DefaultOptions.Grouping.String(),
			Passes:    1,
		},
		Output: OutputConfig{
			Path:    "output.png",
			Quality: format.DefaultEncodeOptions.Quality,
		},
		Sweep: SweepConfig{
			Start:   sheet.DefaultSweep.Start,
			Stop:    sheet.DefaultSweep.Stop,
			Step:    sheet.DefaultSweep.Step,
			Span:    sheet.DefaultSweep.Span,
			Columns: sheet.DefaultSweep.Columns,
			Tile:    sheet.DefaultSweep.TileSize,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "human",
		},
	}
}

// New returns a viper instance with the defaults and environment lookup set up. Flags may be
// bound to it before calling [Load].
func New() *viper.Viper {
	v := viper.New()

	d := DefaultConfig()
	v.SetDefault("sort.threshold", d.Sort.Threshold)
	v.SetDefault("sort.kind", d.Sort.Kind)
	v.SetDefault("sort.direction", d.Sort.Direction)
	v.SetDefault("sort.method", d.Sort.Method)
	v.SetDefault("sort.grouping", d.Sort.Grouping)
	v.SetDefault("sort.passes", d.Sort.Passes)
	v.SetDefault("sort.workers", d.Sort.Workers)
	v.SetDefault("output.path", d.Output.Path)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.quality", d.Output.Quality)
	v.SetDefault("output.preview", d.Output.Preview)
	v.SetDefault("output.rotate", d.Output.Rotate)
	v.SetDefault("sweep.start", d.Sweep.Start)
	v.SetDefault("sweep.stop", d.Sweep.Stop)
	v.SetDefault("sweep.step", d.Sweep.Step)
	v.SetDefault("sweep.span", d.Sweep.Span)
	v.SetDefault("sweep.columns", d.Sweep.Columns)
	v.SetDefault("sweep.tile", d.Sweep.Tile)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file into v and returns the merged configuration. An explicit file must
// exist; without one, pixelsort.{yaml,toml,json} is looked up in the working directory and in the
// user config directory, and a missing file is not an error.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, Name))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate checks every setting that has a typed form.
func (c *Config) Validate() error {
	if _, err := c.SortOptions(); err != nil {
		return err
	}
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.SweepOptions(); err != nil {
		return err
	}
	if _, err := c.PreviewRotation(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "human", "json":
	default:
		return &ConfigError{Field: "log.format", Message: fmt.Sprintf("unknown log format %q", c.Log.Format)}
	}
	return nil
}

// SortOptions converts the sort settings. A zero worker count means one worker per CPU.
func (c *Config) SortOptions() (sorter.Options, error) {
	var (
		o   = sorter.DefaultOptions
		err error
	)
	if o.Gate, err = sorter.ParseGate(c.Sort.Threshold); err != nil {
		return o, fieldError("sort.threshold", err)
	}
	if o.Order, err = sorter.ParseOrder(c.Sort.Kind); err != nil {
		return o, fieldError("sort.kind", err)
	}
	if o.Axis, err = sorter.ParseAxis(c.Sort.Direction); err != nil {
		return o, fieldError("sort.direction", err)
	}
	if o.Method, err = scalar.ParseMethod(c.Sort.Method); err != nil {
		return o, fieldError("sort.method", err)
	}
	if o.Grouping, err = sorter.ParseGrouping(c.Sort.Grouping); err != nil {
		return o, fieldError("sort.grouping", err)
	}
	if c.Sort.Passes < 1 {
		return o, &ConfigError{Field: "sort.passes", Message: fmt.Sprintf("%d passes, need at least 1", c.Sort.Passes)}
	}
	switch {
	case c.Sort.Workers < 0:
		return o, &ConfigError{Field: "sort.workers", Message: fmt.Sprintf("%d workers, must not be negative", c.Sort.Workers)}
	case c.Sort.Workers == 0:
		o.Workers = runtime.GOMAXPROCS(0)
	default:
		o.Workers = c.Sort.Workers
	}
	return o, nil
}

// OutputFormat returns the configured output format, or the one implied by the output path.
func (c *Config) OutputFormat() (format.Format, error) {
	var (
		f   format.Format
		err error
	)
	if c.Output.Format != "" {
		f, err = format.Parse(c.Output.Format)
	} else {
		f, err = format.FromPath(c.Output.Path)
	}
	if err != nil {
		return format.Unknown, fieldError("output.format", err)
	}
	if !f.CanEncode() {
		return format.Unknown, &ConfigError{Field: "output.format", Message: fmt.Sprintf("%s images can not be written", f)}
	}
	return f, nil
}

// EncodeOptions returns the encoder settings.
func (c *Config) EncodeOptions() format.EncodeOptions {
	o := format.DefaultEncodeOptions
	if c.Output.Quality > 0 {
		o.Quality = c.Output.Quality
	}
	return o
}

// PreviewRotation returns the rotation of the framebuffer preview.
func (c *Config) PreviewRotation() (framebuffer.Rotation, error) {
	r, err := framebuffer.ParseRotation(c.Output.Rotate)
	if err != nil {
		return r, fieldError("output.rotate", err)
	}
	return r, nil
}

// SweepOptions converts the contact sheet settings.
func (c *Config) SweepOptions() (sheet.Sweep, error) {
	s := sheet.Sweep{
		Start:    c.Sweep.Start,
		Stop:     c.Sweep.Stop,
		Step:     c.Sweep.Step,
		Span:     c.Sweep.Span,
		Columns:  c.Sweep.Columns,
		TileSize: c.Sweep.Tile,
	}
	if err := s.Validate(); err != nil {
		return s, fieldError("sweep", err)
	}
	return s, nil
}

// ConfigError is a setting that could not be used.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func fieldError(field string, err error) error {
	return &ConfigError{Field: field, Message: err.Error()}
}
