package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Backend names accepted by Derivatives.Backend.
const (
	BackendFiniteDifference = "finite-difference"
	BackendAutoDiff         = "autodiff"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LENSING"

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full set of tunables.
type Config struct {
	Grid        GridConfig        `mapstructure:"grid" yaml:"grid"`
	Derivatives DerivativesConfig `mapstructure:"derivatives" yaml:"derivatives"`
	Newton      NewtonConfig      `mapstructure:"newton" yaml:"newton"`
	Log         LogConfig         `mapstructure:"log" yaml:"log"`
}

// GridConfig bounds evaluation grids.
type GridConfig struct {
	MaxEvaluationGridSize int     `mapstructure:"max_evaluation_grid_size" yaml:"max_evaluation_grid_size"`
	EvaluationPixelScale  float64 `mapstructure:"evaluation_pixel_scale" yaml:"evaluation_pixel_scale"`
}

// DerivativesConfig selects how derivatives of the deflection field are taken.
type DerivativesConfig struct {
	HessianBuffer float64 `mapstructure:"hessian_buffer" yaml:"hessian_buffer"`
	Backend       string  `mapstructure:"backend" yaml:"backend"`
}

// NewtonConfig parameterises the Newton critical-curve tracer.
type NewtonConfig struct {
	InitR       float64 `mapstructure:"init_r" yaml:"init_r"`
	RadialInitR float64 `mapstructure:"radial_init_r" yaml:"radial_init_r"`
	NPoints     int     `mapstructure:"n_points" yaml:"n_points"`
	NSteps      int     `mapstructure:"n_steps" yaml:"n_steps"`
	Threshold   float64 `mapstructure:"threshold" yaml:"threshold"`
}

// LogConfig configures the logger built by package logging.
type LogConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Development bool   `mapstructure:"development" yaml:"development"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			MaxEvaluationGridSize: 1000,
			EvaluationPixelScale:  0.05,
		},
		Derivatives: DerivativesConfig{
			HessianBuffer: 0.01,
			Backend:       BackendFiniteDifference,
		},
		Newton: NewtonConfig{
			InitR:       0.1,
			RadialInitR: 0.01,
			NPoints:     300,
			NSteps:      20,
			Threshold:   1e-5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"max-evaluation-grid-size": "grid.max_evaluation_grid_size",
	"evaluation-pixel-scale":   "grid.evaluation_pixel_scale",
	"hessian-buffer":           "derivatives.hessian_buffer",
	"backend":                  "derivatives.backend",
	"log-level":                "log.level",
	"log-development":          "log.development",
}

// RegisterFlags adds the overridable settings to fs with Default values.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.Int("max-evaluation-grid-size", d.Grid.MaxEvaluationGridSize, "largest evaluation grid side, in pixels")
	fs.Float64("evaluation-pixel-scale", d.Grid.EvaluationPixelScale, "pixel scale of evaluation grids (arcsec)")
	fs.Float64("hessian-buffer", d.Derivatives.HessianBuffer, "finite-difference step of the Hessian (arcsec)")
	fs.String("backend", d.Derivatives.Backend, "derivative backend: finite-difference or autodiff")
	fs.String("log-level", d.Log.Level, "log level: error, info, debug or trace")
	fs.Bool("log-development", d.Log.Development, "human-readable development logging")
}

// Load builds a Config from defaults, the file at path (skipped when empty),
// the environment and any flags in fs that were set. fs may be nil.
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("grid.max_evaluation_grid_size", d.Grid.MaxEvaluationGridSize)
	v.SetDefault("grid.evaluation_pixel_scale", d.Grid.EvaluationPixelScale)
	v.SetDefault("derivatives.hessian_buffer", d.Derivatives.HessianBuffer)
	v.SetDefault("derivatives.backend", d.Derivatives.Backend)
	v.SetDefault("newton.init_r", d.Newton.InitR)
	v.SetDefault("newton.radial_init_r", d.Newton.RadialInitR)
	v.SetDefault("newton.n_points", d.Newton.NPoints)
	v.SetDefault("newton.n_steps", d.Newton.NSteps)
	v.SetDefault("newton.threshold", d.Newton.Threshold)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.development", d.Log.Development)
}

// Validate reports the first out-of-range setting, wrapped in ErrInvalid.
func (c Config) Validate() error {
	switch {
	case c.Grid.MaxEvaluationGridSize < 2:
		return invalid("grid.max_evaluation_grid_size", "must be at least 2")
	case !(c.Grid.EvaluationPixelScale > 0):
		return invalid("grid.evaluation_pixel_scale", "must be > 0")
	case !(c.Derivatives.HessianBuffer > 0):
		return invalid("derivatives.hessian_buffer", "must be > 0")
	case c.Derivatives.Backend != BackendFiniteDifference && c.Derivatives.Backend != BackendAutoDiff:
		return invalid("derivatives.backend", fmt.Sprintf("unknown backend %q", c.Derivatives.Backend))
	case !(c.Newton.InitR > 0) || !(c.Newton.RadialInitR > 0):
		return invalid("newton.init_r", "initial radii must be > 0")
	case c.Newton.NPoints < 1:
		return invalid("newton.n_points", "must be at least 1")
	case c.Newton.NSteps < 0:
		return invalid("newton.n_steps", "must not be negative")
	case !(c.Newton.Threshold > 0):
		return invalid("newton.threshold", "must be > 0")
	}

	return nil
}

func invalid(key, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalid, key, msg)
}
