package mass_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/mass"
)

// ExampleLoadModel reads a sphere plus external shear and evaluates it at a
// single point on the x axis.
func ExampleLoadModel() {
	const model = `
profiles:
  - type: isothermal_sph
    einstein_radius: 1.0
  - type: external_shear
    gamma_1: 0.1
`
	gal, err := mass.LoadModel(strings.NewReader(model))
	if err != nil {
		panic(err)
	}
	pts := grid.NewIrregular([][2]float64{{0, 2}})

	def, err := gal.Deflections(pts)
	if err != nil {
		panic(err)
	}
	kappa, err := gal.Convergence(pts)
	if err != nil {
		panic(err)
	}
	fmt.Printf("deflection: (%.3f, %.3f)\n", def.Y[0], def.X[0])
	fmt.Printf("convergence: %.3f\n", kappa.Values[0])
	// Output:
	// deflection: (0.000, 1.200)
	// convergence: 0.250
}
