package grid_test

import (
	"fmt"

	"github.com/katalvlaran/lensing/grid"
)

// ExampleMask2D_ZoomShapeNative shows how a circular mask reports the extent
// of its unmasked region, which drives evaluation-grid resolution.
func ExampleMask2D_ZoomShapeNative() {
	m, _ := grid.Circular(100, 100, grid.Square(0.1), 2.0, grid.Origin{})

	rows, cols, _ := m.ZoomShapeNative()
	y, x, _ := m.ZoomOffsetScaled()
	fmt.Printf("zoom shape: %dx%d\n", rows, cols)
	fmt.Printf("zoom offset: (%.2f, %.2f)\n", y, x)

	// Output:
	// zoom shape: 40x40
	// zoom offset: (0.00, 0.00)
}
