package cellgrid

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Payload is the content object stored in a cell. The grid stores, moves,
// and replaces payloads but never interprets them; it only requires the two
// positioning operations used during insertion and scrolling.
type Payload interface {
	// AlignTo positions the payload relative to bounds. A zero alignment
	// centers it; otherwise the edge or corner selected by the alignment
	// vector is matched.
	AlignTo(b Bounds, alignment Vec)
	// Shift moves the payload by offset.
	Shift(offset Vec)
}

// emptyPayload is the placeholder occupying Current and Previous before any
// real payload is inserted. Positioning is a no-op.
type emptyPayload struct{}

func (emptyPayload) AlignTo(Bounds, Vec) {}
func (emptyPayload) Shift(Vec)           {}
func (emptyPayload) String() string      { return "Empty" }

var empty Payload = emptyPayload{}

// Empty returns the shared placeholder payload.
func Empty() Payload { return empty }

// IsEmpty reports whether p is the placeholder payload.
func IsEmpty(p Payload) bool { return p == empty }

// Bounds is the opaque geometric descriptor of a cell, owned exclusively by
// that cell. The layout collaborator supplies concrete bounds at
// construction time; the grid only stores them and issues translations.
type Bounds interface {
	Center() Vec
	Translate(offset Vec)
}

// Rect is the default Bounds implementation: an axis-aligned rectangle
// identified by its center point.
type Rect struct {
	center        Vec
	Width, Height float64
}

// NewRect creates a Rect centered at center.
func NewRect(center Vec, width, height float64) *Rect {
	return &Rect{center: center, Width: width, Height: height}
}

// Center returns the rectangle's center point.
func (r *Rect) Center() Vec { return r.center }

// Translate moves the rectangle by offset.
func (r *Rect) Translate(offset Vec) { r.center = r.center.Add(offset) }

// Missing is the sentinel returned when a tag key is not present. It is
// distinct from every valid tag value, including nil, and is compared by
// identity via IsMissing.
var Missing any = &missingValue{}

type missingValue struct{}

func (*missingValue) String() string { return "<MISSING>" }

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool { return v == Missing }

// Tags is the free-form per-cell metadata bag. The grid attaches it to each
// cell but never interprets its contents.
type Tags map[string]any

// NewTags creates a Tags bag from entries, validating every key.
func NewTags(entries map[string]any) (Tags, error) {
	t := make(Tags, len(entries))
	for key, value := range entries {
		if err := t.Set(key, value); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Value returns the value stored under key, or Missing when absent.
func (t Tags) Value(key string) any {
	if v, ok := t[key]; ok {
		return v
	}
	return Missing
}

// Set stores value under key. The key must be a valid identifier not
// starting with an underscore.
func (t Tags) Set(key string, value any) error {
	if err := validateTagKey(key); err != nil {
		return err
	}
	t[key] = value
	return nil
}

// Delete removes key from the bag, failing when the key is not set.
func (t Tags) Delete(key string) error {
	if _, ok := t[key]; !ok {
		return fmt.Errorf("%q: %w", key, ErrTagNotSet)
	}
	delete(t, key)
	return nil
}

// Copy returns a new bag with the same entries.
func (t Tags) Copy() Tags {
	out := make(Tags, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// String formats the bag as "Tags(key=value, ...)" with keys sorted.
func (t Tags) String() string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("Tags(")
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", k, t[k])
	}
	b.WriteByte(')')
	return b.String()
}

// validateTagKey is the single place where tag key validity is enforced: a
// key must be a valid identifier and may not start with an underscore, so
// user tags can never collide with reserved names.
func validateTagKey(key string) error {
	if key == "" {
		return fmt.Errorf("cellgrid: tag key must not be empty: %w", ErrValue)
	}
	if strings.HasPrefix(key, "_") {
		return fmt.Errorf("cellgrid: tag key %q must not start with an underscore: %w", key, ErrValue)
	}
	for i, r := range key {
		if unicode.IsLetter(r) || r == '_' || (i > 0 && unicode.IsDigit(r)) {
			continue
		}
		return fmt.Errorf("cellgrid: tag key %q is not a valid identifier: %w", key, ErrValue)
	}
	return nil
}

// Cell is a single addressable unit of the grid. It owns its bounds, the
// current and previous payloads (never nil, the placeholder occupies both
// until a real payload is inserted), and a tag bag. Cells are created once
// at grid construction and live as long as the grid.
type Cell struct {
	Row, Col int
	Bounds   Bounds
	Current  Payload
	Previous Payload
	Tags     Tags
}

func newCell(row, col int, bounds Bounds) *Cell {
	return &Cell{
		Row:      row,
		Col:      col,
		Bounds:   bounds,
		Current:  empty,
		Previous: empty,
		Tags:     make(Tags),
	}
}

// Insert places a new payload in the cell. The existing payload cascades to
// Previous, then the new payload is aligned to the cell bounds and pushed
// away from the aligned edge by the margin, component-wise. No payload
// validation happens at this layer; the call overwrites unconditionally.
func (c *Cell) Insert(p Payload, alignment, margin Vec) {
	c.Previous = c.Current
	c.Current = p
	p.AlignTo(c.Bounds, alignment)
	p.Shift(alignment.Scale(-1).Mul(margin))
}
