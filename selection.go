package cellgrid

import "fmt"

// selection is the result of applying a resolved index to the cell matrix:
// the selected cells in row-major order, and whether the index pinned down
// exactly one cell by construction.
type selection struct {
	cells  []*Cell
	scalar bool
}

// selectIndex resolves an index expression through the label mapper and
// applies it to the cell matrix. Bounds violations deferred by resolution
// surface here as ErrOutOfRange.
func (g *Grid) selectIndex(index Index) (selection, error) {
	resolved, err := g.mapper.MapIndex(index)
	if err != nil {
		return selection{}, err
	}
	switch resolved.kind {
	case indexPair:
		return g.selectPair(resolved.row, resolved.col)
	case indexMask:
		return g.selectMask(resolved.mask)
	case indexPairs:
		return g.selectPairs(resolved.pairs)
	}
	return selection{}, fmt.Errorf("cellgrid: unresolvable index: %w", ErrValue)
}

// selectPair expands the row and column keys against the grid shape and
// takes the cross product, row-major. The selection is scalar only when
// both keys are single positions.
func (g *Grid) selectPair(row, col resolvedKey) (selection, error) {
	rows, err := expandKey(row, g.Rows(), "row")
	if err != nil {
		return selection{}, err
	}
	cols, err := expandKey(col, g.Cols(), "col")
	if err != nil {
		return selection{}, err
	}
	cells := make([]*Cell, 0, len(rows)*len(cols))
	for _, r := range rows {
		for _, c := range cols {
			cells = append(cells, g.cells[r][c])
		}
	}
	return selection{
		cells:  cells,
		scalar: row.kind == keyScalar && col.kind == keyScalar,
	}, nil
}

// selectMask picks the true cells of a grid-shaped boolean mask in
// row-major order.
func (g *Grid) selectMask(mask [][]bool) (selection, error) {
	if len(mask) != g.Rows() {
		return selection{}, fmt.Errorf("cellgrid: mask has %d rows, grid has %d: %w", len(mask), g.Rows(), ErrValue)
	}
	var cells []*Cell
	for i, maskRow := range mask {
		if len(maskRow) != g.Cols() {
			return selection{}, fmt.Errorf("cellgrid: mask row %d has %d entries, grid has %d columns: %w",
				i, len(maskRow), g.Cols(), ErrValue)
		}
		for j, selected := range maskRow {
			if selected {
				cells = append(cells, g.cells[i][j])
			}
		}
	}
	return selection{cells: cells}, nil
}

// selectPairs picks one cell per (row, col) position pair.
func (g *Grid) selectPairs(pairs [][2]int) (selection, error) {
	cells := make([]*Cell, 0, len(pairs))
	for _, pair := range pairs {
		r, err := normalizePos(pair[0], g.Rows(), "row")
		if err != nil {
			return selection{}, err
		}
		c, err := normalizePos(pair[1], g.Cols(), "col")
		if err != nil {
			return selection{}, err
		}
		cells = append(cells, g.cells[r][c])
	}
	return selection{cells: cells}, nil
}

// expandKey enumerates the positions a resolved key selects in a dimension
// of size n.
func expandKey(key resolvedKey, n int, dim string) ([]int, error) {
	switch key.kind {
	case keyScalar:
		pos, err := normalizePos(key.pos, n, dim)
		if err != nil {
			return nil, err
		}
		return []int{pos}, nil

	case keyList:
		out := make([]int, len(key.list))
		for i, p := range key.list {
			pos, err := normalizePos(p, n, dim)
			if err != nil {
				return nil, err
			}
			out[i] = pos
		}
		return out, nil

	case keySpan:
		return spanPositions(key.start, key.stop, key.step, n)

	case keyMask:
		if len(key.mask) != n {
			return nil, fmt.Errorf("cellgrid: %s mask has %d entries, dimension has %d: %w",
				dim, len(key.mask), n, ErrValue)
		}
		var out []int
		for i, selected := range key.mask {
			if selected {
				out = append(out, i)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("cellgrid: unresolvable %s key: %w", dim, ErrValue)
}

// normalizePos converts a possibly negative position into 0..n-1.
func normalizePos(pos, n int, dim string) (int, error) {
	p := pos
	if p < 0 {
		p += n
	}
	if p < 0 || p >= n {
		return 0, fmt.Errorf("cellgrid: %s %d out of range for size %d: %w", dim, pos, n, ErrOutOfRange)
	}
	return p, nil
}

// spanPositions enumerates a half-open range with the usual slice
// semantics: open bounds default per step sign, negative bounds count from
// the end, and out-of-range bounds clamp instead of erroring.
func spanPositions(start, stop *int, step, n int) ([]int, error) {
	if step == 0 {
		return nil, fmt.Errorf("cellgrid: span step must not be zero: %w", ErrValue)
	}

	lo, hi := 0, n
	if step < 0 {
		lo, hi = -1, n-1
	}

	begin := 0
	if step < 0 {
		begin = n - 1
	}
	if start != nil {
		begin = clampBound(*start, n, lo, hi)
	}

	end := n
	if step < 0 {
		end = -1
	}
	if stop != nil {
		end = clampBound(*stop, n, lo, hi)
	}

	var out []int
	if step > 0 {
		for i := begin; i < end; i += step {
			out = append(out, i)
		}
	} else {
		for i := begin; i > end; i += step {
			out = append(out, i)
		}
	}
	return out, nil
}

func clampBound(bound, n, lo, hi int) int {
	if bound < 0 {
		bound += n
		if bound < lo {
			bound = lo
		}
		return bound
	}
	if bound > hi {
		return hi
	}
	return bound
}
