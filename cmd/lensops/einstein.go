package main

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

type einsteinReport struct {
	EinsteinRadius        float64   `yaml:"einstein_radius"`
	EinsteinRadii         []float64 `yaml:"einstein_radii"`
	EinsteinMassAngular   float64   `yaml:"einstein_mass_angular"`
	EinsteinMassesAngular []float64 `yaml:"einstein_masses_angular"`
}

func newEinsteinCmd(a *app) *cobra.Command {
	var (
		model string
		gf    gridFlags
	)
	cmd := &cobra.Command{
		Use:   "einstein",
		Short: "Estimate the Einstein radius and angular Einstein mass",
		Long: `Estimate Einstein quantities from the tangential critical curves found on
the grid. The radius is the sum over curves; the mass is taken from the first.

Examples:
  lensops einstein --model lens.yaml
  lensops einstein --model lens.yaml --rows 200 --cols 200 --evaluation-pixel-scale 0.02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			op, err := a.operator(model)
			if err != nil {
				return err
			}
			g, err := gf.build()
			if err != nil {
				return err
			}
			ps := a.cfg.Grid.EvaluationPixelScale
			radii, err := op.EinsteinRadiusList(g, ps)
			if err != nil {
				return err
			}
			masses, err := op.EinsteinMassAngularList(g, ps)
			if err != nil {
				return err
			}
			a.log.Info("einstein estimate", "curves", len(radii), "radius", floats.Sum(radii))

			return writeYAML(cmd.OutOrStdout(), einsteinReport{
				EinsteinRadius:        floats.Sum(radii),
				EinsteinRadii:         radii,
				EinsteinMassAngular:   masses[0],
				EinsteinMassesAngular: masses,
			})
		},
	}
	cmd.Flags().StringVar(&model, "model", "", "YAML mass model")
	gf.register(cmd)

	return cmd
}
