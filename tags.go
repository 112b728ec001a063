package cellgrid

import (
	"fmt"
	"strings"
)

// TagsView is the view over per-cell tag bags. Reads return selection views
// rather than raw bags, so a tag can be requested or mutation verbs chained
// directly after an indexing operation. Writes replace whole bags.
type TagsView struct {
	core view[Tags]
}

func newTagsView(g *Grid) *TagsView {
	return &TagsView{core: view[Tags]{
		grid: g,
		name: "cellgrid: tags",
		read: func(c *Cell) Tags { return c.Tags },
	}}
}

// Get returns the scalar selection view over the single cell the index
// addresses.
func (v *TagsView) Get(index Index) (*TagSelection, error) {
	sel, err := v.core.grid.selectIndex(index)
	if err != nil {
		return nil, err
	}
	if !sel.scalar {
		return nil, fmt.Errorf("%s: %w", v.core.name, ErrScalarIndex)
	}
	return &TagSelection{cell: sel.cells[0]}, nil
}

// Select returns the bulk selection view over every cell the index
// addresses, in row-major order.
func (v *TagsView) Select(index Index) (*TagBulkSelection, error) {
	sel, err := v.core.grid.selectIndex(index)
	if err != nil {
		return nil, err
	}
	return &TagBulkSelection{cells: sel.cells}, nil
}

// Set replaces the tag bag of every selected cell with the given entries.
// Each cell receives its own copy of the source, so selected cells never
// alias one bag. Keys are validated before any cell is touched.
func (v *TagsView) Set(index Index, entries map[string]any) error {
	bag, err := NewTags(entries)
	if err != nil {
		return err
	}
	sel, err := v.core.grid.selectIndex(index)
	if err != nil {
		return err
	}
	for _, cell := range sel.cells {
		cell.Tags = bag.Copy()
	}
	return nil
}

// SetEach replaces the tag bag of each selected cell with the corresponding
// entry set, in row-major order. The entry count must equal the selection
// size and every key of every set is validated before any cell is touched.
func (v *TagsView) SetEach(index Index, entries []map[string]any) error {
	bags := make([]Tags, len(entries))
	for i, e := range entries {
		bag, err := NewTags(e)
		if err != nil {
			return err
		}
		bags[i] = bag
	}
	sel, err := v.core.grid.selectIndex(index)
	if err != nil {
		return err
	}
	if len(bags) != len(sel.cells) {
		return fmt.Errorf("cellgrid: length mismatch between the selected cells (%d) and the provided tag sets (%d): %w",
			len(sel.cells), len(bags), ErrValue)
	}
	for i, cell := range sel.cells {
		cell.Tags = bags[i]
	}
	return nil
}

// Mask builds a grid-shaped boolean mask from conditions on the tag bags.
func (v *TagsView) Mask(opts ...MaskOption) (Mask2D, error) {
	return v.core.Mask(opts...)
}

// String renders the tag bags as a row-major matrix.
func (v *TagsView) String() string { return v.core.String() }

// TagSelection is the scalar view over one cell's tag bag. Mutation verbs
// are chainable; the first failure is sticky and turns the rest of the
// chain into no-ops. Check it with Err.
type TagSelection struct {
	cell *Cell
	err  error
}

// Value returns the tag stored under key, or Missing when absent. Absence
// is never an error on read.
func (s *TagSelection) Value(key string) any { return s.cell.Tags.Value(key) }

// SetValue stores value under key in the cell's bag.
func (s *TagSelection) SetValue(key string, value any) error {
	return s.cell.Tags.Set(key, value)
}

// Delete removes key from the cell's bag, failing when the key is not set.
func (s *TagSelection) Delete(key string) error {
	return s.cell.Tags.Delete(key)
}

// Update merges the given entries into the bag. Chainable.
func (s *TagSelection) Update(entries map[string]any) *TagSelection {
	if s.err != nil {
		return s
	}
	for key, value := range entries {
		if err := s.cell.Tags.Set(key, value); err != nil {
			s.err = err
			return s
		}
	}
	return s
}

// Remove deletes the given keys from the bag if present; absent keys are
// ignored. Chainable.
func (s *TagSelection) Remove(keys ...string) *TagSelection {
	if s.err != nil {
		return s
	}
	for _, key := range keys {
		delete(s.cell.Tags, key)
	}
	return s
}

// Clear empties the bag. Chainable.
func (s *TagSelection) Clear() *TagSelection {
	if s.err != nil {
		return s
	}
	for key := range s.cell.Tags {
		delete(s.cell.Tags, key)
	}
	return s
}

// Err returns the first error of the mutation chain, if any.
func (s *TagSelection) Err() error { return s.err }

// String renders the underlying bag.
func (s *TagSelection) String() string { return s.cell.Tags.String() }

// TagBulkSelection is the view over the tag bags of several cells, in
// row-major order. Mutation verbs apply to every bag and are chainable with
// the same sticky-error contract as TagSelection.
type TagBulkSelection struct {
	cells []*Cell
	err   error
}

// Len returns the number of selected cells.
func (s *TagBulkSelection) Len() int { return len(s.cells) }

// Values returns the tag stored under key for every selected cell, with
// Missing in place of absent entries.
func (s *TagBulkSelection) Values(key string) []any {
	out := make([]any, len(s.cells))
	for i, cell := range s.cells {
		out[i] = cell.Tags.Value(key)
	}
	return out
}

// SetValue stores the same value under key in every selected bag.
func (s *TagBulkSelection) SetValue(key string, value any) error {
	if err := validateTagKey(key); err != nil {
		return err
	}
	for _, cell := range s.cells {
		cell.Tags[key] = value
	}
	return nil
}

// Delete removes key from every selected bag. Absent keys are ignored,
// consistent with Remove.
func (s *TagBulkSelection) Delete(key string) {
	for _, cell := range s.cells {
		delete(cell.Tags, key)
	}
}

// Update merges the given entries into every selected bag. Keys are
// validated before any bag is touched. Chainable.
func (s *TagBulkSelection) Update(entries map[string]any) *TagBulkSelection {
	if s.err != nil {
		return s
	}
	for key := range entries {
		if err := validateTagKey(key); err != nil {
			s.err = err
			return s
		}
	}
	for _, cell := range s.cells {
		for key, value := range entries {
			cell.Tags[key] = value
		}
	}
	return s
}

// Remove deletes the given keys from every selected bag if present.
// Chainable.
func (s *TagBulkSelection) Remove(keys ...string) *TagBulkSelection {
	if s.err != nil {
		return s
	}
	for _, cell := range s.cells {
		for _, key := range keys {
			delete(cell.Tags, key)
		}
	}
	return s
}

// Clear empties every selected bag. Chainable.
func (s *TagBulkSelection) Clear() *TagBulkSelection {
	if s.err != nil {
		return s
	}
	for _, cell := range s.cells {
		for key := range cell.Tags {
			delete(cell.Tags, key)
		}
	}
	return s
}

// Err returns the first error of the mutation chain, if any.
func (s *TagBulkSelection) Err() error { return s.err }

// String renders the selected bags in order.
func (s *TagBulkSelection) String() string {
	parts := make([]string, len(s.cells))
	for i, cell := range s.cells {
		parts[i] = cell.Tags.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
