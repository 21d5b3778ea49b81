package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lensing/convert"
)

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert between ellipticity and shear parameterisations",
	}
	cmd.AddCommand(
		newEllCompsCmd(),
		newAxisRatioCmd(),
		newShearCmd(),
		newShearMagnitudeCmd(),
	)

	return cmd
}

func newEllCompsCmd() *cobra.Command {
	var q, angle float64
	cmd := &cobra.Command{
		Use:   "ell-comps",
		Short: "Elliptical components from axis ratio and angle (degrees)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !(q > 0) {
				return fmt.Errorf("--axis-ratio must be > 0, got %g", q)
			}
			ey, ex := convert.EllCompsFrom(q, angle)
			return writeYAML(cmd.OutOrStdout(), map[string][2]float64{"ell_comps": {ey, ex}})
		},
	}
	cmd.Flags().Float64Var(&q, "axis-ratio", 1, "axis ratio b/a")
	cmd.Flags().Float64Var(&angle, "angle", 0, "position angle, degrees counter-clockwise from +x")

	return cmd
}

func newAxisRatioCmd() *cobra.Command {
	var comps []float64
	cmd := &cobra.Command{
		Use:   "axis-ratio",
		Short: "Axis ratio and angle (degrees) from elliptical components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(comps) != 2 {
				return fmt.Errorf("--ell-comps needs 2 values, got %d", len(comps))
			}
			q, angle := convert.AxisRatioAndAngleFrom(comps[0], comps[1])
			return writeYAML(cmd.OutOrStdout(), map[string]float64{"axis_ratio": q, "angle": angle})
		},
	}
	cmd.Flags().Float64SliceVar(&comps, "ell-comps", []float64{0, 0}, "elliptical components as ell_y,ell_x")

	return cmd
}

func newShearCmd() *cobra.Command {
	var magnitude, angle float64
	cmd := &cobra.Command{
		Use:   "shear",
		Short: "Shear components from magnitude and angle (degrees)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g1, g2 := convert.ShearGamma12From(magnitude, angle)
			return writeYAML(cmd.OutOrStdout(), map[string]float64{"gamma_1": g1, "gamma_2": g2})
		},
	}
	cmd.Flags().Float64Var(&magnitude, "magnitude", 0, "shear magnitude")
	cmd.Flags().Float64Var(&angle, "angle", 0, "shear angle, degrees")

	return cmd
}

func newShearMagnitudeCmd() *cobra.Command {
	var gamma []float64
	cmd := &cobra.Command{
		Use:   "shear-magnitude",
		Short: "Shear magnitude and angle (degrees) from gamma_1,gamma_2",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(gamma) != 2 {
				return fmt.Errorf("--gamma needs 2 values, got %d", len(gamma))
			}
			m, angle := convert.ShearMagnitudeAndAngleFrom(gamma[0], gamma[1])
			return writeYAML(cmd.OutOrStdout(), map[string]float64{"magnitude": m, "angle": angle})
		},
	}
	cmd.Flags().Float64SliceVar(&gamma, "gamma", []float64{0, 0}, "shear components as gamma_1,gamma_2")

	return cmd
}
