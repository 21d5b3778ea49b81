package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lensing/config"
	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/lensing"
	"github.com/katalvlaran/lensing/logging"
	"github.com/katalvlaran/lensing/mass"
	"github.com/katalvlaran/lensing/metrics"
)

// app carries the state resolved once per invocation.
type app struct {
	configPath string

	cfg config.Config
	log logr.Logger
	reg *prometheus.Registry
	rec *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{log: logr.Discard()}
	cmd := &cobra.Command{
		Use:   "lensops",
		Short: "Lensing operators for analytic mass models",
		Long: `lensops evaluates critical curves, caustics and Einstein quantities of a
mass model described in YAML.

Settings are read from defaults, the --config file, LENSING_* environment
variables and flags, in increasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.logMetrics()
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "configuration file (yaml, toml or json)")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newEinsteinCmd(a),
		newCurvesCmd(a),
		newConvertCmd(),
		newConfigCmd(a),
	)

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	rec, err := metrics.NewRecorder(reg)
	if err != nil {
		return err
	}
	a.cfg, a.log, a.reg, a.rec = cfg, log, reg, rec

	return nil
}

// logMetrics reports non-zero counters at debug verbosity.
func (a *app) logMetrics() {
	if a.reg == nil {
		return
	}
	families, err := a.reg.Gather()
	if err != nil {
		a.log.Error(err, "gather metrics")
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil && c.GetValue() > 0 {
				kv := []any{"name", mf.GetName(), "value", c.GetValue()}
				for _, lp := range m.GetLabel() {
					kv = append(kv, lp.GetName(), lp.GetValue())
				}
				a.log.V(logging.DEBUG).Info("metric", kv...)
			}
		}
	}
}

// operator loads the model at path and binds it to an Operator built from
// the resolved configuration.
func (a *app) operator(path string) (*lensing.Operator, error) {
	if path == "" {
		return nil, errors.New("--model is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	gal, err := mass.LoadModel(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	opts, err := lensing.OptionsFromConfig(a.cfg)
	if err != nil {
		return nil, err
	}
	opts = append(opts, lensing.WithLogger(a.log), lensing.WithMetrics(a.rec))

	return lensing.NewOperator(gal, opts...)
}

// gridFlags describes the uniform grid that bounds marching-squares searches.
type gridFlags struct {
	rows, cols int
	pixelScale float64
	maskRadius float64
}

func (gf *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&gf.rows, "rows", 100, "grid rows")
	cmd.Flags().IntVar(&gf.cols, "cols", 100, "grid columns")
	cmd.Flags().Float64Var(&gf.pixelScale, "pixel-scale", 0.05, "grid pixel scale (arcsec)")
	cmd.Flags().Float64Var(&gf.maskRadius, "mask-radius", 0, "circular mask radius (arcsec); 0 leaves the grid unmasked")
}

func (gf *gridFlags) build() (*grid.Grid2D, error) {
	if gf.maskRadius > 0 {
		m, err := grid.Circular(gf.rows, gf.cols, grid.Square(gf.pixelScale), gf.maskRadius, grid.Origin{})
		if err != nil {
			return nil, err
		}
		return grid.FromMask(m), nil
	}

	return grid.Uniform(gf.rows, gf.cols, grid.Square(gf.pixelScale), grid.Origin{})
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}
