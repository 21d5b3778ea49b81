package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/lensing"
)

// Curve-finding methods.
const (
	methodMarching = "marching"
	methodNewton   = "newton"
)

type curvesReport struct {
	Kind           string         `yaml:"kind"`
	Method         string         `yaml:"method"`
	CriticalCurves [][][2]float64 `yaml:"critical_curves"`
	Caustics       [][][2]float64 `yaml:"caustics"`
	Areas          []float64      `yaml:"areas"`
}

func parseKind(s string) (lensing.CurveKind, error) {
	switch s {
	case lensing.Tangential.String():
		return lensing.Tangential, nil
	case lensing.Radial.String():
		return lensing.Radial, nil
	}

	return 0, fmt.Errorf("unknown curve kind %q", s)
}

func newCurvesCmd(a *app) *cobra.Command {
	var (
		model, kindName, method string
		centre                  []float64
		gf                      gridFlags
	)
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Trace critical curves and their caustics",
		Long: `Trace the tangential or radial critical curves of a model and map them to
the source plane.

The marching method contours the eigenvalue on an evaluation grid. The newton
method refines a ring of seed points and needs --backend autodiff.

Examples:
  lensops curves --model lens.yaml --kind tangential
  lensops curves --model lens.yaml --kind radial --method newton --backend autodiff`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kind, err := parseKind(kindName)
			if err != nil {
				return err
			}
			op, err := a.operator(model)
			if err != nil {
				return err
			}

			var curves []*grid.Irregular
			switch method {
			case methodMarching:
				g, err := gf.build()
				if err != nil {
					return err
				}
				ps := a.cfg.Grid.EvaluationPixelScale
				if kind == lensing.Radial {
					curves, err = op.RadialCriticalCurveList(g, ps)
				} else {
					curves, err = op.TangentialCriticalCurveList(g, ps)
				}
				if err != nil {
					return err
				}
			case methodNewton:
				opts, err := newtonOptions(a, kind, centre)
				if err != nil {
					return err
				}
				var pts *grid.Irregular
				if kind == lensing.Radial {
					pts, err = op.RadialCriticalCurveNewton(opts)
				} else {
					pts, err = op.TangentialCriticalCurveNewton(opts)
				}
				if err != nil {
					return err
				}
				curves = []*grid.Irregular{pts}
			default:
				return fmt.Errorf("unknown method %q", method)
			}

			caustics, err := op.CausticsFrom(curves)
			if err != nil {
				return err
			}

			return writeYAML(cmd.OutOrStdout(), curvesReport{
				Kind:           kind.String(),
				Method:         method,
				CriticalCurves: pointLists(curves),
				Caustics:       pointLists(caustics),
				Areas:          lensing.AreaWithinCurveList(curves),
			})
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "YAML mass model")
	cmd.Flags().StringVar(&kindName, "kind", lensing.Tangential.String(), "curve kind: tangential or radial")
	cmd.Flags().StringVar(&method, "method", methodMarching, "method: marching or newton")
	cmd.Flags().Float64SliceVar(&centre, "centre", []float64{0, 0}, "newton seed ring centre as y,x (arcsec)")
	gf.register(cmd)

	return cmd
}

// newtonOptions seeds the tracer from the configuration.
func newtonOptions(a *app, kind lensing.CurveKind, centre []float64) (lensing.NewtonOptions, error) {
	if len(centre) != 2 {
		return lensing.NewtonOptions{}, fmt.Errorf("--centre needs 2 values, got %d", len(centre))
	}
	opts := lensing.DefaultNewtonOptions(kind)
	opts.InitR = a.cfg.Newton.InitR
	if kind == lensing.Radial {
		opts.InitR = a.cfg.Newton.RadialInitR
	}
	opts.InitCentre = [2]float64{centre[0], centre[1]}
	opts.NPoints = a.cfg.Newton.NPoints
	opts.NSteps = a.cfg.Newton.NSteps
	opts.Threshold = a.cfg.Newton.Threshold

	return opts, nil
}

func pointLists(curves []*grid.Irregular) [][][2]float64 {
	out := make([][][2]float64, len(curves))
	for i, c := range curves {
		out[i] = c.Points()
	}

	return out
}
