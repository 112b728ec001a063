package cellgrid

// BoundsFactory produces the bounds descriptor for the cell at (row, col).
// The center argument is the position the default layout would give the
// cell; a layout collaborator may use or ignore it.
type BoundsFactory func(row, col int, width, height float64, center Vec) Bounds

// InsertObserver is notified after a payload is inserted through the
// payload view. It lets an owner (for instance a display list) track cell
// content without cells holding a back-reference to it.
type InsertObserver func(row, col int, p Payload)

// Options holds configuration for a Grid.
type Options struct {
	spacing   [2]float64
	margin    Vec
	rowLabels []string
	colLabels []string
	bounds    BoundsFactory
	observer  InsertObserver
}

func defaultOptions() *Options {
	return &Options{
		margin: Vec{0.1, 0.1, 0},
		bounds: func(_, _ int, width, height float64, center Vec) Bounds {
			return NewRect(center, width, height)
		},
	}
}

// Option configures a Grid.
type Option func(*Options)

// WithSpacing sets the same gap between cells on both axes.
func WithSpacing(s float64) Option {
	return func(o *Options) { o.spacing = [2]float64{s, s} }
}

// WithSpacingXY sets the horizontal and vertical gaps between cells.
func WithSpacingXY(h, v float64) Option {
	return func(o *Options) { o.spacing = [2]float64{h, v} }
}

// WithMargin sets the insertion margin on both axes (default: 0.1).
func WithMargin(m float64) Option {
	return func(o *Options) { o.margin = Vec{m, m, 0} }
}

// WithMarginXY sets the horizontal and vertical insertion margins. The grid
// is planar, so the Z component of the margin vector is always zero.
func WithMarginXY(h, v float64) Option {
	return func(o *Options) { o.margin = Vec{h, v, 0} }
}

// WithRowLabels sets the row labels. The count must equal the number of
// rows. Omitted labels default to "1".."N".
func WithRowLabels(labels ...string) Option {
	return func(o *Options) { o.rowLabels = labels }
}

// WithColLabels sets the column labels. Same contract as WithRowLabels.
func WithColLabels(labels ...string) Option {
	return func(o *Options) { o.colLabels = labels }
}

// WithBounds sets the factory that supplies per-cell bounds descriptors,
// replacing the default axis-aligned rectangles.
func WithBounds(factory BoundsFactory) Option {
	return func(o *Options) { o.bounds = factory }
}

// WithInsertObserver registers a callback fired after every payload
// insertion through the payload view.
func WithInsertObserver(observer InsertObserver) Option {
	return func(o *Options) { o.observer = observer }
}
