package cellgrid

import "fmt"

// LabelMapper translates string labels into the integer positions the cell
// matrix expects, for rows and columns independently. Lookups never leak
// across dimensions: a row label is never matched against the column
// mapping. Resolution is purely structural: no bounds checking happens
// here, out-of-range positions surface later when the resolved index is
// applied to the matrix.
type LabelMapper struct {
	rowLabels map[string]int
	colLabels map[string]int
}

// NewLabelMapper creates a mapper from label→position mappings. Each mapping
// must be a bijection onto 0..N-1 for its dimension.
func NewLabelMapper(rowLabels, colLabels map[string]int) *LabelMapper {
	return &LabelMapper{rowLabels: rowLabels, colLabels: colLabels}
}

// RowLabels returns a copy of the row label mapping.
func (m *LabelMapper) RowLabels() map[string]int { return copyLabels(m.rowLabels) }

// ColLabels returns a copy of the column label mapping.
func (m *LabelMapper) ColLabels() map[string]int { return copyLabels(m.colLabels) }

func copyLabels(labels map[string]int) map[string]int {
	out := make(map[string]int, len(labels))
	for k, v := range labels {
		out[k] = v
	}
	return out
}

// Kinds of resolved per-dimension keys.
type keyKind int

const (
	keyScalar keyKind = iota
	keyList
	keySpan
	keyMask
)

// resolvedKey is a per-dimension key with all labels replaced by positions.
// Positions may still be negative or out of range; expansion against the
// dimension size happens at apply time.
type resolvedKey struct {
	kind keyKind
	pos  int    // keyScalar
	list []int  // keyList
	mask []bool // keyMask

	// keySpan bounds; nil means open.
	start, stop *int
	step        int
}

// Kinds of resolved full indexes.
type indexKind int

const (
	indexPair indexKind = iota
	indexMask
	indexPairs
)

// Resolved is an index expression with every label replaced by its integer
// position. Apply it to a grid through the grid's views.
type Resolved struct {
	kind  indexKind
	row   resolvedKey
	col   resolvedKey
	mask  [][]bool
	pairs [][2]int
}

// MapIndex resolves any supported index expression. A bare Key is treated as
// a row key selecting all columns. Pair components resolve independently
// against their own dimension. Label pair arrays resolve column 0 against
// row labels and column 1 against column labels. Boolean and integer forms
// pass through unchanged.
func (m *LabelMapper) MapIndex(index Index) (Resolved, error) {
	switch idx := index.(type) {
	case Pair:
		row, err := m.mapKey(idx.Row, m.rowLabels, "row")
		if err != nil {
			return Resolved{}, err
		}
		col, err := m.mapKey(idx.Col, m.colLabels, "col")
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{kind: indexPair, row: row, col: col}, nil

	case Mask2D:
		return Resolved{kind: indexMask, mask: idx}, nil

	case PosPairs:
		return Resolved{kind: indexPairs, pairs: idx}, nil

	case NamePairs:
		rowNames := make(NameList, len(idx))
		colNames := make(NameList, len(idx))
		for i, pair := range idx {
			rowNames[i] = pair[0]
			colNames[i] = pair[1]
		}
		rows, err := m.mapKey(rowNames, m.rowLabels, "row")
		if err != nil {
			return Resolved{}, err
		}
		cols, err := m.mapKey(colNames, m.colLabels, "col")
		if err != nil {
			return Resolved{}, err
		}
		pairs := make([][2]int, len(idx))
		for i := range idx {
			pairs[i] = [2]int{rows.list[i], cols.list[i]}
		}
		return Resolved{kind: indexPairs, pairs: pairs}, nil

	case Key:
		// A bare key ultimately selects (rows, all columns).
		row, err := m.mapKey(idx, m.rowLabels, "row")
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{kind: indexPair, row: row, col: resolvedKey{kind: keySpan, step: 1}}, nil

	default:
		return Resolved{}, fmt.Errorf("cellgrid: unsupported index type %T: %w", index, ErrValue)
	}
}

// mapKey resolves a single-dimension key against the given label mapping.
// dim names the dimension ("row" or "col") for error reporting.
func (m *LabelMapper) mapKey(key Key, labels map[string]int, dim string) (resolvedKey, error) {
	switch k := key.(type) {
	case Pos:
		return resolvedKey{kind: keyScalar, pos: int(k)}, nil

	case Name:
		pos, ok := labels[string(k)]
		if !ok {
			return resolvedKey{}, &LabelError{Dim: dim, Labels: []string{string(k)}}
		}
		return resolvedKey{kind: keyScalar, pos: pos}, nil

	case KeyList:
		list := make([]int, len(k))
		for i, elem := range k {
			rk, err := m.mapKey(elem, labels, dim)
			if err != nil {
				return resolvedKey{}, err
			}
			if rk.kind != keyScalar {
				return resolvedKey{}, fmt.Errorf("cellgrid: list keys must be positions or labels, got %T: %w", elem, ErrValue)
			}
			list[i] = rk.pos
		}
		return resolvedKey{kind: keyList, list: list}, nil

	case Span:
		rk := resolvedKey{kind: keySpan, step: k.Step}
		if rk.step == 0 {
			rk.step = 1
		}
		if k.Start != nil {
			start, err := m.mapKey(k.Start, labels, dim)
			if err != nil {
				return resolvedKey{}, err
			}
			if start.kind != keyScalar {
				return resolvedKey{}, fmt.Errorf("cellgrid: span bounds must be positions or labels, got %T: %w", k.Start, ErrValue)
			}
			rk.start = &start.pos
		}
		if k.Stop != nil {
			stop, err := m.mapKey(k.Stop, labels, dim)
			if err != nil {
				return resolvedKey{}, err
			}
			if stop.kind != keyScalar {
				return resolvedKey{}, fmt.Errorf("cellgrid: span bounds must be positions or labels, got %T: %w", k.Stop, ErrValue)
			}
			rk.stop = &stop.pos
		}
		return rk, nil

	case MaskKey:
		return resolvedKey{kind: keyMask, mask: k}, nil

	case PosList:
		return resolvedKey{kind: keyList, list: append([]int(nil), k...)}, nil

	case NameList:
		list := make([]int, len(k))
		var missing []string
		for i, label := range k {
			pos, ok := labels[label]
			if !ok {
				missing = append(missing, label)
				continue
			}
			list[i] = pos
		}
		if len(missing) > 0 {
			return resolvedKey{}, &LabelError{Dim: dim, Labels: missing}
		}
		return resolvedKey{kind: keyList, list: list}, nil

	default:
		return resolvedKey{}, fmt.Errorf("cellgrid: unsupported key type %T: %w", key, ErrValue)
	}
}
