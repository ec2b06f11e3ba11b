// Package config loads the optional stepper.yaml file that configures a
// stepper's numbers, appearance and logging.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/snapstep/pkg/graphics"
	"github.com/go-drift/snapstep/pkg/logging"
	"github.com/go-drift/snapstep/pkg/stepper"
)

// FileName is the name LoadOptional looks for.
const FileName = "stepper.yaml"

// SchemaVersion is the schema this package writes and the major version it
// accepts.
const SchemaVersion = "v1.0.0"

// Config represents the optional stepper.yaml configuration.
type Config struct {
	Schema  string        `yaml:"schema,omitempty"`
	Stepper StepperConfig `yaml:"stepper"`
	Style   StyleConfig   `yaml:"style"`
	Log     LogConfig     `yaml:"log"`
}

// StepperConfig contains the numeric settings. Unset fields keep their
// defaults.
type StepperConfig struct {
	Minimum    *float64 `yaml:"minimum,omitempty"`
	Maximum    *float64 `yaml:"maximum,omitempty"`
	Step       *float64 `yaml:"step,omitempty"`
	Value      *float64 `yaml:"value,omitempty"`
	Wraps      *bool    `yaml:"wraps,omitempty"`
	Continuous *bool    `yaml:"continuous,omitempty"`
	Autorepeat *bool    `yaml:"autorepeat,omitempty"`
}

// StyleConfig contains appearance settings. Colors are hex (#rgb, #rrggbb,
// #aarrggbb) or CSS color names.
type StyleConfig struct {
	Background       string   `yaml:"background,omitempty"`
	ThumbBackground  string   `yaml:"thumb_background,omitempty"`
	SymbolColor      string   `yaml:"symbol_color,omitempty"`
	ThumbTextColor   string   `yaml:"thumb_text_color,omitempty"`
	BorderColor      string   `yaml:"border_color,omitempty"`
	ThumbBorderColor string   `yaml:"thumb_border_color,omitempty"`
	BorderWidth      *float64 `yaml:"border_width,omitempty"`
	ThumbBorderWidth *float64 `yaml:"thumb_border_width,omitempty"`
	Shape            string   `yaml:"shape,omitempty"`
	ThumbShape       string   `yaml:"thumb_shape,omitempty"`
	HintShape        string   `yaml:"hint_shape,omitempty"`
	Direction        string   `yaml:"direction,omitempty"`
	ThumbWidthRatio  *float64 `yaml:"thumb_width_ratio,omitempty"`
	// ThumbText overrides the thumb label. Unset shows the value.
	ThumbText *string `yaml:"thumb_text,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Resolved contains configuration merged with defaults, ready to build a
// stepper from.
type Resolved struct {
	Config          stepper.Config
	Value           float64
	Style           stepper.Style
	Direction       stepper.Direction
	ThumbWidthRatio float64
	ThumbText       *string
	LogLevel        logging.Level
}

// Options returns stepper options for the resolved configuration.
func (r *Resolved) Options() stepper.Options {
	style := r.Style
	return stepper.Options{
		Config:          r.Config,
		Value:           r.Value,
		Style:           &style,
		Direction:       r.Direction,
		ThumbWidthRatio: r.ThumbWidthRatio,
	}
}

// LoadOptional reads stepper.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return Parse(data)
}

// Parse parses a stepper.yaml document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := checkSchema(cfg.Schema); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Marshal renders cfg as YAML, stamping the current schema version.
func Marshal(cfg *Config) ([]byte, error) {
	out := *cfg
	out.Schema = SchemaVersion
	return yaml.Marshal(&out)
}

func checkSchema(schema string) error {
	schema = strings.TrimSpace(schema)
	if schema == "" {
		return nil
	}
	if !strings.HasPrefix(schema, "v") {
		schema = "v" + schema
	}
	if !semver.IsValid(schema) {
		return fmt.Errorf("invalid schema version %q", schema)
	}
	if got, want := semver.Major(schema), semver.Major(SchemaVersion); got != want {
		return fmt.Errorf("unsupported schema version %s (want %s.x)", schema, want)
	}
	return nil
}

// Resolve loads stepper.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return cfg.Resolve()
}

// Resolve merges cfg with the defaults. Numeric values are not validated
// here; the stepper normalizes them when applied.
func (cfg *Config) Resolve() (*Resolved, error) {
	r := &Resolved{
		Config: stepper.DefaultConfig(),
		Style:  stepper.DefaultStyle(),
	}

	s := cfg.Stepper
	setFloat(&r.Config.MinimumValue, s.Minimum)
	setFloat(&r.Config.MaximumValue, s.Maximum)
	setFloat(&r.Config.StepValue, s.Step)
	setFloat(&r.Value, s.Value)
	setBool(&r.Config.Wraps, s.Wraps)
	setBool(&r.Config.Continuous, s.Continuous)
	setBool(&r.Config.Autorepeat, s.Autorepeat)

	if err := cfg.Style.apply(r); err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	r.LogLevel = level
	return r, nil
}

func (sc StyleConfig) apply(r *Resolved) error {
	colors := []struct {
		name string
		in   string
		out  *graphics.Color
	}{
		{"background", sc.Background, &r.Style.Background},
		{"thumb_background", sc.ThumbBackground, &r.Style.ThumbBackground},
		{"symbol_color", sc.SymbolColor, &r.Style.SymbolColor},
		{"thumb_text_color", sc.ThumbTextColor, &r.Style.ThumbTextColor},
		{"border_color", sc.BorderColor, &r.Style.BorderColor},
		{"thumb_border_color", sc.ThumbBorderColor, &r.Style.ThumbBorderColor},
	}
	for _, c := range colors {
		if strings.TrimSpace(c.in) == "" {
			continue
		}
		v, err := graphics.ParseColor(c.in)
		if err != nil {
			return fmt.Errorf("style.%s: %w", c.name, err)
		}
		*c.out = v
	}

	if err := setWidth("border_width", &r.Style.BorderWidth, sc.BorderWidth); err != nil {
		return err
	}
	if err := setWidth("thumb_border_width", &r.Style.ThumbBorderWidth, sc.ThumbBorderWidth); err != nil {
		return err
	}

	shapes := []struct {
		name string
		in   string
		out  *stepper.ShapeStyle
	}{
		{"shape", sc.Shape, &r.Style.Shape},
		{"thumb_shape", sc.ThumbShape, &r.Style.ThumbShape},
		{"hint_shape", sc.HintShape, &r.Style.HintShape},
	}
	for _, s := range shapes {
		if strings.TrimSpace(s.in) == "" {
			continue
		}
		v, err := stepper.ParseShape(s.in)
		if err != nil {
			return fmt.Errorf("style.%s: %w", s.name, err)
		}
		*s.out = v
	}

	switch strings.ToLower(strings.TrimSpace(sc.Direction)) {
	case "", "horizontal":
		r.Direction = stepper.Horizontal
	case "vertical":
		r.Direction = stepper.Vertical
	default:
		return fmt.Errorf("style.direction: invalid direction %q (must be horizontal or vertical)", sc.Direction)
	}

	if ratio := sc.ThumbWidthRatio; ratio != nil {
		if *ratio <= 0 || *ratio > 1 || math.IsNaN(*ratio) {
			return fmt.Errorf("style.thumb_width_ratio: %v is outside (0, 1]", *ratio)
		}
		r.ThumbWidthRatio = *ratio
	}
	if sc.ThumbText != nil {
		text := *sc.ThumbText
		r.ThumbText = &text
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setWidth(name string, dst *float64, v *float64) error {
	if v == nil {
		return nil
	}
	if *v < 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return fmt.Errorf("style.%s: invalid width %v", name, *v)
	}
	*dst = *v
	return nil
}
