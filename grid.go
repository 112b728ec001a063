// Package cellgrid provides a labeled, fixed-shape 2D grid of cell records
// whose cells are addressed by integer position, string label, slice, list,
// boolean mask, or any mixture of those. Typed views expose the current
// payload, the previous payload, and per-cell tag bags with scalar and bulk
// read/write semantics and a boolean-mask query helper.
package cellgrid

import (
	"fmt"
	"strconv"
)

// Grid is a fixed-shape rectangular lattice of cells addressable by
// position, label, list, slice, boolean mask, pair array, or mixtures of
// those. Shape, sizes, and labels are immutable after construction; cell
// content changes only through the payload and tag views.
type Grid struct {
	cells    [][]*Cell
	rowSizes []float64
	colSizes []float64
	spacing  [2]float64
	margin   Vec
	mapper   *LabelMapper
	observer InsertObserver

	payloads *PayloadView
	history  *HistoryView
	tags     *TagsView
}

// New constructs a grid with one row per entry of rowSizes and one column
// per entry of colSizes. The per-cell bounds come from the configured
// bounds factory (axis-aligned rectangles laid out from the top-left corner
// by default, spaced by the configured gaps).
func New(rowSizes, colSizes []float64, opts ...Option) (*Grid, error) {
	if len(rowSizes) == 0 || len(colSizes) == 0 {
		return nil, fmt.Errorf("cellgrid: grid must have at least one row and one column: %w", ErrValue)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	rowLabels, err := prepareLabels(o.rowLabels, len(rowSizes), "row")
	if err != nil {
		return nil, err
	}
	colLabels, err := prepareLabels(o.colLabels, len(colSizes), "col")
	if err != nil {
		return nil, err
	}

	g := &Grid{
		cells:    prepareCells(rowSizes, colSizes, o.spacing, o.bounds),
		rowSizes: append([]float64(nil), rowSizes...),
		colSizes: append([]float64(nil), colSizes...),
		spacing:  o.spacing,
		margin:   o.margin,
		mapper:   NewLabelMapper(rowLabels, colLabels),
		observer: o.observer,
	}
	g.payloads = newPayloadView(g)
	g.history = newHistoryView(g)
	g.tags = newTagsView(g)
	return g, nil
}

// prepareLabels maps a label sequence to zero-based positions. An empty
// sequence produces the numeric defaults "1".."N".
func prepareLabels(labels []string, n int, dim string) (map[string]int, error) {
	if len(labels) == 0 {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("cellgrid: the number of %s labels should match the number of %ss (%d != %d): %w",
			dim, dim, len(labels), n, ErrValue)
	}
	mapping := make(map[string]int, n)
	for i, label := range labels {
		if _, ok := mapping[label]; ok {
			return nil, fmt.Errorf("cellgrid: duplicate %s label %q: %w", dim, label, ErrValue)
		}
		mapping[label] = i
	}
	return mapping, nil
}

// prepareCells builds the cell matrix with bounds laid out from the
// top-left corner, advancing right along columns and down along rows.
func prepareCells(rowSizes, colSizes []float64, spacing [2]float64, bounds BoundsFactory) [][]*Cell {
	cells := make([][]*Cell, len(rowSizes))
	y := 0.0
	for i, height := range rowSizes {
		cells[i] = make([]*Cell, len(colSizes))
		x := 0.0
		for j, width := range colSizes {
			center := Vec{x + width/2, -(y + height/2), 0}
			cells[i][j] = newCell(i, j, bounds(i, j, width, height, center))
			x += width + spacing[0]
		}
		y += height + spacing[1]
	}
	return cells
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return len(g.rowSizes) }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return len(g.colSizes) }

// RowSizes returns a copy of the per-row extents.
func (g *Grid) RowSizes() []float64 { return append([]float64(nil), g.rowSizes...) }

// ColSizes returns a copy of the per-column extents.
func (g *Grid) ColSizes() []float64 { return append([]float64(nil), g.colSizes...) }

// Spacing returns the (horizontal, vertical) gap between cells.
func (g *Grid) Spacing() (h, v float64) { return g.spacing[0], g.spacing[1] }

// Margin returns the insertion margin vector.
func (g *Grid) Margin() Vec { return g.margin }

// Labels returns the grid's label mapper.
func (g *Grid) Labels() *LabelMapper { return g.mapper }

// RowLabels returns a copy of the row label mapping.
func (g *Grid) RowLabels() map[string]int { return g.mapper.RowLabels() }

// ColLabels returns a copy of the column label mapping.
func (g *Grid) ColLabels() map[string]int { return g.mapper.ColLabels() }

// CellAt returns the cell at the given integer position. Negative positions
// count from the end.
func (g *Grid) CellAt(row, col int) (*Cell, error) {
	r, err := normalizePos(row, g.Rows(), "row")
	if err != nil {
		return nil, err
	}
	c, err := normalizePos(col, g.Cols(), "col")
	if err != nil {
		return nil, err
	}
	return g.cells[r][c], nil
}

// Payloads returns the read-write view over current cell payloads.
func (g *Grid) Payloads() *PayloadView { return g.payloads }

// History returns the read-only view over previous cell payloads.
func (g *Grid) History() *HistoryView { return g.history }

// Tags returns the view over per-cell tag bags.
func (g *Grid) Tags() *TagsView { return g.tags }

// HasUniformRows reports whether all row extents are identical.
func (g *Grid) HasUniformRows() bool { return uniform(g.rowSizes) }

// HasUniformCols reports whether all column extents are identical.
func (g *Grid) HasUniformCols() bool { return uniform(g.colSizes) }

func uniform(sizes []float64) bool {
	first := sizes[0]
	for _, s := range sizes[1:] {
		if s != first {
			return false
		}
	}
	return true
}

// Scroll shifts the whole grid rigidly by -direction * step * (extent +
// spacing) per axis, where extent is the first row or column size of that
// axis. Cell contents do not reflow or wrap. Scrolling along an axis whose
// sizes are not uniform fails, because a single cell extent is ill-defined
// there.
func (g *Grid) Scroll(direction Vec, step float64) error {
	if direction[2] != 0 {
		return fmt.Errorf("cellgrid: scroll direction must lie in the XY plane: %w", ErrValue)
	}
	var offset Vec
	if direction[0] != 0 {
		if !g.HasUniformCols() {
			return fmt.Errorf("cellgrid: cannot scroll horizontally: %w", ErrNonUniformAxis)
		}
		offset[0] = -direction[0] * step * (g.colSizes[0] + g.spacing[0])
	}
	if direction[1] != 0 {
		if !g.HasUniformRows() {
			return fmt.Errorf("cellgrid: cannot scroll vertically: %w", ErrNonUniformAxis)
		}
		offset[1] = -direction[1] * step * (g.rowSizes[0] + g.spacing[1])
	}
	for _, row := range g.cells {
		for _, cell := range row {
			cell.Bounds.Translate(offset)
			cell.Current.Shift(offset)
			cell.Previous.Shift(offset)
		}
	}
	return nil
}
