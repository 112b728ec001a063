package cellgrid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations. Callers match them with errors.Is.
var (
	// ErrValue indicates a value of the wrong type or shape: malformed
	// spacing/margin input, a label-count mismatch at construction, a bulk
	// write whose length does not match the selection, or an invalid tag key.
	ErrValue = errors.New("cellgrid: invalid value")

	// ErrOutOfRange indicates a resolved position outside the grid shape.
	ErrOutOfRange = errors.New("cellgrid: position out of range")

	// ErrScalarIndex indicates an index that selects more than one cell was
	// given to an operation that requires exactly one.
	ErrScalarIndex = errors.New("cellgrid: index does not resolve to a single cell")

	// ErrReadOnly indicates a write through a read-only view.
	ErrReadOnly = errors.New("cellgrid: view is read-only")

	// ErrNonUniformAxis indicates a scroll along an axis whose sizes differ;
	// shifting by a single cell extent is ill-defined there.
	ErrNonUniformAxis = errors.New("cellgrid: axis sizes are not uniform")

	// ErrNoCondition indicates a mask query with neither a predicate, an
	// expression, nor a keyword filter.
	ErrNoCondition = errors.New("cellgrid: mask requires a predicate, an expression, or at least one filter")

	// ErrTagNotSet indicates deletion of a tag key that is not present.
	ErrTagNotSet = errors.New("cellgrid: tag not set")
)

// LabelError reports string labels that are not defined in the label mapping
// of the relevant dimension. All labels missing from a single lookup are
// collected and reported together, in input order.
type LabelError struct {
	Dim    string   // "row" or "col"
	Labels []string // missing labels, in the order they appeared
}

func (e *LabelError) Error() string {
	if len(e.Labels) == 1 {
		return fmt.Sprintf("cellgrid: %s label %q not defined", e.Dim, e.Labels[0])
	}
	return fmt.Sprintf("cellgrid: %s labels not defined: %s", e.Dim, strings.Join(e.Labels, ", "))
}
