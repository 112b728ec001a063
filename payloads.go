package cellgrid

import "fmt"

// InsertOption configures a payload write.
type InsertOption func(*insertParams)

type insertParams struct {
	alignment Vec
}

// Aligned positions inserted payloads against the edge or corner of the
// cell selected by the alignment vector instead of centering them. This is
// the write-path analog of the alignment component an index may carry.
func Aligned(alignment Vec) InsertOption {
	return func(p *insertParams) { p.alignment = alignment }
}

// PayloadView is the read-write view over the current payload of each cell.
// Writes delegate to cell insertion: the existing payload cascades to the
// cell's history, and the new payload is positioned inside the cell bounds
// using the grid margin.
type PayloadView struct {
	view[Payload]
}

func newPayloadView(g *Grid) *PayloadView {
	return &PayloadView{view[Payload]{
		grid: g,
		name: "cellgrid: payloads",
		read: func(c *Cell) Payload { return c.Current },
	}}
}

// Set inserts a payload into the single cell the index addresses. A bulk
// selection is an error; use SetEach to assign several cells at once.
func (v *PayloadView) Set(index Index, p Payload, opts ...InsertOption) error {
	if p == nil {
		return fmt.Errorf("cellgrid: only a payload can be assigned to a cell, got nil: %w", ErrValue)
	}
	params := applyInsertOptions(opts)
	sel, err := v.grid.selectIndex(index)
	if err != nil {
		return err
	}
	if !sel.scalar {
		return fmt.Errorf("cellgrid: only a single payload can be assigned to a single cell; "+
			"%d cells selected, use SetEach: %w", len(sel.cells), ErrValue)
	}
	v.insert(sel.cells[0], p, params.alignment)
	return nil
}

// SetEach inserts one payload per selected cell in row-major order. The
// payload count must equal the selection size; the check runs before any
// cell is mutated, so a failed bulk write leaves every cell untouched.
func (v *PayloadView) SetEach(index Index, payloads []Payload, opts ...InsertOption) error {
	params := applyInsertOptions(opts)
	sel, err := v.grid.selectIndex(index)
	if err != nil {
		return err
	}
	if len(payloads) != len(sel.cells) {
		return fmt.Errorf("cellgrid: length mismatch between the selected cells (%d) and the provided payloads (%d): %w",
			len(sel.cells), len(payloads), ErrValue)
	}
	for _, p := range payloads {
		if p == nil {
			return fmt.Errorf("cellgrid: bulk assignment requires payloads, got nil: %w", ErrValue)
		}
	}
	for i, cell := range sel.cells {
		v.insert(cell, payloads[i], params.alignment)
	}
	return nil
}

func (v *PayloadView) insert(cell *Cell, p Payload, alignment Vec) {
	cell.Insert(p, alignment, v.grid.margin)
	if v.grid.observer != nil {
		v.grid.observer(cell.Row, cell.Col, p)
	}
}

func applyInsertOptions(opts []InsertOption) insertParams {
	var params insertParams
	for _, opt := range opts {
		opt(&params)
	}
	return params
}

// HistoryView is the read-only view over the previous payload of each cell,
// the one displaced by the most recent insertion. There is no legitimate
// way to set history directly, so writes fail at the entry point.
type HistoryView struct {
	view[Payload]
}

func newHistoryView(g *Grid) *HistoryView {
	return &HistoryView{view[Payload]{
		grid: g,
		name: "cellgrid: history",
		read: func(c *Cell) Payload { return c.Previous },
	}}
}

// Set always fails: history is read-only.
func (v *HistoryView) Set(Index, Payload, ...InsertOption) error {
	return fmt.Errorf("cellgrid: history: %w", ErrReadOnly)
}

// SetEach always fails: history is read-only.
func (v *HistoryView) SetEach(Index, []Payload, ...InsertOption) error {
	return fmt.Errorf("cellgrid: history: %w", ErrReadOnly)
}
