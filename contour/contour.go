package contour

import "math"

// Point is a fractional (row, col) position in array index space.
type Point [2]float64

// edge identifies a cell edge shared by up to two cells. Horizontal edges
// (between (r,c) and (r,c+1)) use r*cols+c; vertical edges (between (r,c)
// and (r+1,c)) are offset by rows*cols.
type edge int

type tracer struct {
	values     [][]float64
	level      float64
	rows, cols int
	points     map[edge]Point
	links      map[edge][]edge
	order      []edge // first-seen order, for deterministic output
}

// Find returns the iso-lines of values at level. values must be rectangular;
// arrays with fewer than two rows or columns have no contours.
func Find(values [][]float64, level float64) [][]Point {
	rows := len(values)
	if rows < 2 || len(values[0]) < 2 {
		return nil
	}
	t := &tracer{
		values: values,
		level:  level,
		rows:   rows,
		cols:   len(values[0]),
		points: make(map[edge]Point),
		links:  make(map[edge][]edge),
	}
	for r := 0; r < rows-1; r++ {
		for c := 0; c < t.cols-1; c++ {
			t.cell(r, c)
		}
	}

	return t.assemble()
}

func (t *tracer) above(v float64) bool {
	return v > t.level
}

// horizontal returns the crossing on the edge from (r,c) to (r,c+1).
func (t *tracer) horizontal(r, c int) edge {
	e := edge(r*t.cols + c)
	if _, ok := t.points[e]; !ok {
		a, b := t.values[r][c], t.values[r][c+1]
		t.points[e] = Point{float64(r), float64(c) + (t.level-a)/(b-a)}
	}

	return e
}

// vertical returns the crossing on the edge from (r,c) to (r+1,c).
func (t *tracer) vertical(r, c int) edge {
	e := edge(t.rows*t.cols + r*t.cols + c)
	if _, ok := t.points[e]; !ok {
		a, b := t.values[r][c], t.values[r+1][c]
		t.points[e] = Point{float64(r) + (t.level-a)/(b-a), float64(c)}
	}

	return e
}

func (t *tracer) link(a, b edge) {
	for _, e := range [2]edge{a, b} {
		if _, seen := t.links[e]; !seen {
			t.order = append(t.order, e)
		}
	}
	t.links[a] = append(t.links[a], b)
	t.links[b] = append(t.links[b], a)
}

// cell emits the segments of the square with top-left corner (r, c).
func (t *tracer) cell(r, c int) {
	tl, tr := t.values[r][c], t.values[r][c+1]
	bl, br := t.values[r+1][c], t.values[r+1][c+1]
	for _, v := range [4]float64{tl, tr, bl, br} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return
		}
	}

	var mask int
	if t.above(tl) {
		mask |= 1
	}
	if t.above(tr) {
		mask |= 2
	}
	if t.above(br) {
		mask |= 4
	}
	if t.above(bl) {
		mask |= 8
	}

	top := func() edge { return t.horizontal(r, c) }
	bottom := func() edge { return t.horizontal(r+1, c) }
	left := func() edge { return t.vertical(r, c) }
	right := func() edge { return t.vertical(r, c+1) }

	switch mask {
	case 0, 15:
	case 1, 14:
		t.link(top(), left())
	case 2, 13:
		t.link(top(), right())
	case 3, 12:
		t.link(left(), right())
	case 4, 11:
		t.link(right(), bottom())
	case 6, 9:
		t.link(top(), bottom())
	case 7, 8:
		t.link(left(), bottom())
	case 5, 10:
		centre := t.above((tl + tr + bl + br) / 4)
		if centre == t.above(tl) {
			// tl's region joins the centre: cut off tr and bl.
			t.link(top(), right())
			t.link(left(), bottom())
		} else {
			t.link(top(), left())
			t.link(right(), bottom())
		}
	}
}

// assemble walks the edge graph: open chains from their degree-one ends
// first, then the remaining closed loops.
func (t *tracer) assemble() [][]Point {
	visited := make(map[edge]bool, len(t.links))
	var out [][]Point

	walk := func(start edge) []Point {
		line := []Point{t.points[start]}
		visited[start] = true
		prev, cur := edge(-1), start
		for {
			next := edge(-1)
			for _, n := range t.links[cur] {
				if n != prev && !visited[n] {
					next = n
					break
				}
			}
			if next < 0 {
				return line
			}
			visited[next] = true
			line = append(line, t.points[next])
			prev, cur = cur, next
		}
	}

	for _, e := range t.order {
		if !visited[e] && len(t.links[e]) == 1 {
			out = append(out, walk(e))
		}
	}
	for _, e := range t.order {
		if !visited[e] {
			line := walk(e)
			out = append(out, append(line, line[0]))
		}
	}

	return out
}
