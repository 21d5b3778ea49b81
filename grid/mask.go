package grid

import (
	"fmt"
	"math"
)

// Mask2D is a rectangular pixel geometry plus a per-pixel exclusion flag.
// A masked pixel (true) is excluded from an analysis; unmasked pixels (false)
// are included. Mask2D is immutable once built.
type Mask2D struct {
	Rows, Cols  int
	PixelScales PixelScales
	Origin      Origin
	masked      []bool // row-major, len == Rows*Cols
}

// NewMask2D constructs a Mask2D from a non-empty, rectangular 2D slice.
// It deep-copies the input.
// Returns ErrEmptyMask, ErrNonRectangular or ErrBadPixelScale.
// Complexity: O(rows×cols).
func NewMask2D(masked [][]bool, pixelScales PixelScales, origin Origin) (*Mask2D, error) {
	if len(masked) == 0 || len(masked[0]) == 0 {
		return nil, ErrEmptyMask
	}
	rows, cols := len(masked), len(masked[0])
	for _, row := range masked {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if err := validatePixelScales(pixelScales); err != nil {
		return nil, err
	}
	flat := make([]bool, rows*cols)
	for r := 0; r < rows; r++ {
		copy(flat[r*cols:(r+1)*cols], masked[r])
	}

	return &Mask2D{Rows: rows, Cols: cols, PixelScales: pixelScales, Origin: origin, masked: flat}, nil
}

// Unmasked returns a rows×cols mask where every pixel is included.
func Unmasked(rows, cols int, pixelScales PixelScales, origin Origin) (*Mask2D, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrEmptyMask
	}
	if err := validatePixelScales(pixelScales); err != nil {
		return nil, err
	}

	return &Mask2D{Rows: rows, Cols: cols, PixelScales: pixelScales, Origin: origin, masked: make([]bool, rows*cols)}, nil
}

// Circular returns a rows×cols mask whose unmasked pixels lie within radius
// (arc-seconds) of centre.
func Circular(rows, cols int, pixelScales PixelScales, radius float64, centre Origin) (*Mask2D, error) {
	m, err := Unmasked(rows, cols, pixelScales, Origin{})
	if err != nil {
		return nil, err
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			y, x := m.ScaledFromPixel(float64(r), float64(c))
			m.masked[m.index(r, c)] = math.Hypot(y-centre[0], x-centre[1]) > radius
		}
	}

	return m, nil
}

func validatePixelScales(ps PixelScales) error {
	for _, v := range ps {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: got (%g, %g)", ErrBadPixelScale, ps[0], ps[1])
		}
	}

	return nil
}

// InBounds reports whether (row, col) lies inside the mask.
func (m *Mask2D) InBounds(row, col int) bool {
	return row >= 0 && row < m.Rows && col >= 0 && col < m.Cols
}

// IsMasked reports whether pixel (row, col) is excluded. Out-of-bounds pixels
// count as masked.
func (m *Mask2D) IsMasked(row, col int) bool {
	if !m.InBounds(row, col) {
		return true
	}

	return m.masked[m.index(row, col)]
}

// PixelsInMask returns the number of unmasked pixels.
func (m *Mask2D) PixelsInMask() int {
	n := 0
	for _, v := range m.masked {
		if !v {
			n++
		}
	}

	return n
}

// PixelScale returns the y pixel scale. Pixels are assumed square wherever a
// single scale is needed.
func (m *Mask2D) PixelScale() float64 {
	return m.PixelScales[0]
}

// index maps (row, col) to a row-major index: row*Cols + col.
func (m *Mask2D) index(row, col int) int {
	return row*m.Cols + col
}

// Coordinate converts a row-major index back to (row, col).
func (m *Mask2D) Coordinate(idx int) (row, col int) {
	return idx / m.Cols, idx % m.Cols
}

// centralPixel returns the fractional pixel coordinates of the mask centre.
func (m *Mask2D) centralPixel() (float64, float64) {
	return float64(m.Rows-1) / 2, float64(m.Cols-1) / 2
}

// ScaledFromPixel converts fractional pixel coordinates (row, col) into scaled
// (y, x) coordinates, with integer values landing on pixel centres.
func (m *Mask2D) ScaledFromPixel(row, col float64) (y, x float64) {
	cy, cx := m.centralPixel()
	y = -(row-cy)*m.PixelScales[0] + m.Origin[0]
	x = (col-cx)*m.PixelScales[1] + m.Origin[1]

	return y, x
}

// ZoomRegion returns the bounding box [y0, y1) × [x0, x1) of unmasked pixels.
// Returns ErrFullyMasked if no pixel is unmasked.
func (m *Mask2D) ZoomRegion() (y0, y1, x0, x1 int, err error) {
	y0, x0 = m.Rows, m.Cols
	y1, x1 = -1, -1
	for idx, v := range m.masked {
		if v {
			continue
		}
		r, c := m.Coordinate(idx)
		y0, y1 = min(y0, r), max(y1, r)
		x0, x1 = min(x0, c), max(x1, c)
	}
	if y1 < 0 {
		return 0, 0, 0, 0, ErrFullyMasked
	}

	return y0, y1 + 1, x0, x1 + 1, nil
}

// ZoomShapeNative returns the (rows, cols) of the zoom region.
func (m *Mask2D) ZoomShapeNative() (rows, cols int, err error) {
	y0, y1, x0, x1, err := m.ZoomRegion()
	if err != nil {
		return 0, 0, err
	}

	return y1 - y0, x1 - x0, nil
}

// ZoomOffsetScaled returns the scaled (y, x) coordinate of the zoom region's
// centre, including the mask origin.
func (m *Mask2D) ZoomOffsetScaled() (y, x float64, err error) {
	y0, y1, x0, x1, err := m.ZoomRegion()
	if err != nil {
		return 0, 0, err
	}
	y, x = m.ScaledFromPixel(float64(y0+y1-1)/2, float64(x0+x1-1)/2)

	return y, x, nil
}
