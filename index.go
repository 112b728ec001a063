package cellgrid

// Index expressions form a closed set of types rather than free-form values.
// A Key addresses a single dimension (rows or columns); an Index addresses
// the full grid. Every Key is also an Index: used alone it selects the given
// rows across all columns.

// Index is a two-dimensional index expression. It resolves to one cell
// (scalar selection) or several cells (bulk selection).
type Index interface {
	isIndex()
}

// Key is a single-dimension index expression.
type Key interface {
	Index
	isKey()
}

// Pos addresses a row or column by integer position. Negative positions
// count from the end, as in slice-style indexing.
type Pos int

// Name addresses a row or column by its string label.
type Name string

// KeyList selects several rows or columns by a heterogeneous list of
// positions and labels. Build one with List.
type KeyList []Key

// List builds a KeyList from positions and labels, e.g.
// List(Pos(0), Name("total")).
func List(keys ...Key) KeyList { return KeyList(keys) }

// Span selects a half-open range of rows or columns. Start and Stop may be
// positions, labels, or nil for an open bound. Step defaults to 1 when zero;
// a negative Step walks the range backwards.
type Span struct {
	Start, Stop Key
	Step        int
}

// Between builds a Span over [start, stop) with the default step.
func Between(start, stop Key) Span { return Span{Start: start, Stop: stop} }

// All selects every row or column of a dimension.
func All() Span { return Span{} }

// MaskKey selects rows or columns by a boolean mask. Its length must equal
// the dimension size.
type MaskKey []bool

// PosList selects rows or columns by a list of integer positions.
type PosList []int

// NameList selects rows or columns by a list of string labels.
type NameList []string

// Pair addresses rows and columns independently. Build one with At.
type Pair struct {
	Row, Col Key
}

// At builds an Index from a row key and a column key. When both keys are
// single positions or labels the result is a scalar selection.
func At(row, col Key) Pair { return Pair{Row: row, Col: col} }

// Mask2D selects cells by a grid-shaped boolean mask, in row-major order.
// Mask queries on views produce values of this type.
type Mask2D [][]bool

// PosPairs selects one cell per (row, col) position pair.
type PosPairs [][2]int

// NamePairs selects one cell per (row label, col label) pair.
type NamePairs [][2]string

func (Pos) isKey()      {}
func (Name) isKey()     {}
func (KeyList) isKey()  {}
func (Span) isKey()     {}
func (MaskKey) isKey()  {}
func (PosList) isKey()  {}
func (NameList) isKey() {}

func (Pos) isIndex()       {}
func (Name) isIndex()      {}
func (KeyList) isIndex()   {}
func (Span) isIndex()      {}
func (MaskKey) isIndex()   {}
func (PosList) isIndex()   {}
func (NameList) isIndex()  {}
func (Pair) isIndex()      {}
func (Mask2D) isIndex()    {}
func (PosPairs) isIndex()  {}
func (NamePairs) isIndex() {}
