// Package config loads editor and generator settings.
//
// Sources, lowest to highest priority:
//   - built-in defaults
//   - an optional YAML file
//   - NODEGRAPH_* environment variables
//   - command-line flags, applied by the caller before Validate
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"nodegraph/canvas"
	"nodegraph/editor"
	"nodegraph/generator"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix prefixes every environment override.
const EnvPrefix = "NODEGRAPH_"

// Environment selects logging defaults.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Config is the complete application configuration.
type Config struct {
	Environment Environment     `yaml:"environment" validate:"oneof=development production"`
	Log         LogConfig       `yaml:"log"`
	Style       StyleConfig     `yaml:"style"`
	Terminal    TerminalConfig  `yaml:"terminal"`
	Generator   GeneratorConfig `yaml:"generator"`
	Metrics     MetricsConfig   `yaml:"metrics"`
}

// LogConfig controls the zap logger. An empty File discards log output.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	File  string `yaml:"file"`
}

// StyleConfig holds node and edge drawing parameters in surface units.
type StyleConfig struct {
	NodeSize  float64 `yaml:"node_size" validate:"gt=0"`
	HitRadius float64 `yaml:"hit_radius" validate:"gt=0"`
	EdgeTrim  float64 `yaml:"edge_trim" validate:"gte=0"`
	NodeColor string  `yaml:"node_color" validate:"colorname"`
	EdgeColor string  `yaml:"edge_color" validate:"colorname"`
}

// TerminalConfig maps surface units onto terminal cells.
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width" validate:"gt=0"`
	CellHeight float64 `yaml:"cell_height" validate:"gt=0"`
}

// GeneratorConfig parameterises random graphs. Seed 0 means "seed from
// the clock".
type GeneratorConfig struct {
	Nodes          int     `yaml:"nodes" validate:"gte=2"`
	MinConnections int     `yaml:"min_connections" validate:"gte=1"`
	MaxConnections int     `yaml:"max_connections" validate:"gtefield=MinConnections,ltfield=Nodes"`
	Width          float64 `yaml:"width" validate:"gt=0"`
	Height         float64 `yaml:"height" validate:"gt=0"`
	Seed           int64   `yaml:"seed"`
}

// MetricsConfig enables the prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr" validate:"omitempty,hostname_port"`
}

// Default returns the built-in configuration.
func Default() Config {
	style := editor.DefaultStyle()
	scale := canvas.DefaultScale()
	conn := generator.DefaultRange()

	return Config{
		Environment: Development,
		Log: LogConfig{
			Level: "info",
		},
		Style: StyleConfig{
			NodeSize:  style.NodeSize,
			HitRadius: style.HitRadius,
			EdgeTrim:  style.EdgeTrim,
			NodeColor: style.NodeColor,
			EdgeColor: style.EdgeColor,
		},
		Terminal: TerminalConfig{
			CellWidth:  scale.CellWidth,
			CellHeight: scale.CellHeight,
		},
		Generator: GeneratorConfig{
			Nodes:          10,
			MinConnections: conn.Min,
			MaxConnections: conn.Max,
			Width:          1300,
			Height:         500,
		},
	}
}

// Load reads defaults, then path (if non-empty), then environment
// overrides. The result is not validated; call Validate after applying
// flags.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"LOG_LEVEL":    &c.Log.Level,
		"LOG_FILE":     &c.Log.File,
		"NODE_COLOR":   &c.Style.NodeColor,
		"EDGE_COLOR":   &c.Style.EdgeColor,
		"METRICS_ADDR": &c.Metrics.Addr,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv(EnvPrefix + "ENV"); ok {
		c.Environment = Environment(strings.ToLower(v))
	}

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Generator.Seed = seed
	}
	return nil
}

var validate = sync.OnceValues(newValidator)

func newValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("colorname", validateColorName); err != nil {
		return nil, fmt.Errorf("register colorname: %w", err)
	}
	return v, nil
}

func validateColorName(fl validator.FieldLevel) bool {
	return canvas.ValidColor(fl.Field().String())
}

// Validate checks every field. The returned error wraps ErrInvalidConfig
// and names each failing field.
func (c Config) Validate() error {
	v, err := validate()
	if err != nil {
		return err
	}
	err = v.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// EditorStyle converts the style section for editor.WithStyle.
func (c Config) EditorStyle() editor.Style {
	return editor.Style{
		NodeSize:  c.Style.NodeSize,
		HitRadius: c.Style.HitRadius,
		EdgeTrim:  c.Style.EdgeTrim,
		NodeColor: c.Style.NodeColor,
		EdgeColor: c.Style.EdgeColor,
	}
}

// Scale converts the terminal section to a canvas scale.
func (c Config) Scale() canvas.Scale {
	return canvas.Scale{CellWidth: c.Terminal.CellWidth, CellHeight: c.Terminal.CellHeight}
}

// GeneratorParams converts the generator section.
func (c Config) GeneratorParams() generator.Params {
	return generator.Params{
		Nodes:  c.Generator.Nodes,
		Width:  c.Generator.Width,
		Height: c.Generator.Height,
		Connections: generator.Range{
			Min: c.Generator.MinConnections,
			Max: c.Generator.MaxConnections,
		},
		NodeColor: c.Style.NodeColor,
		EdgeColor: c.Style.EdgeColor,
	}
}
