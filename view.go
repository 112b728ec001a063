package cellgrid

import (
	"fmt"
	"reflect"
	"strings"
)

// view is the generic read core shared by all attribute views. It runs the
// common pipeline (resolve the index through the label mapper, apply the
// selector to the cell matrix, read the attribute) and provides the
// boolean-mask query helper. Concrete views compose it and add their write
// semantics.
type view[T any] struct {
	grid *Grid
	name string
	read func(*Cell) T
}

// Get returns the attribute value of the single cell the index addresses.
// An index that selects more than one cell is an error; use Values for bulk
// reads.
func (v *view[T]) Get(index Index) (T, error) {
	var zero T
	sel, err := v.grid.selectIndex(index)
	if err != nil {
		return zero, err
	}
	if !sel.scalar {
		return zero, fmt.Errorf("%s: %w", v.name, ErrScalarIndex)
	}
	return v.read(sel.cells[0]), nil
}

// Values returns the attribute values of every selected cell as a flat
// slice in row-major order. Bulk reads always use this representation,
// whatever the index form.
func (v *view[T]) Values(index Index) ([]T, error) {
	sel, err := v.grid.selectIndex(index)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(sel.cells))
	for i, cell := range sel.cells {
		out[i] = v.read(cell)
	}
	return out, nil
}

// Mask builds a grid-shaped boolean mask by evaluating the given conditions
// against every cell's attribute value. All conditions are ANDed; at least
// one must be supplied. The result can be used directly as a bulk index on
// any view.
func (v *view[T]) Mask(opts ...MaskOption) (Mask2D, error) {
	q := &maskQuery{}
	for _, opt := range opts {
		opt(q)
	}
	if q.pred == nil && q.expr == "" && len(q.filters) == 0 {
		return nil, ErrNoCondition
	}

	var program *maskProgram
	if q.expr != "" {
		var err error
		program, err = compileCondition(q.expr)
		if err != nil {
			return nil, err
		}
	}

	mask := make(Mask2D, v.grid.Rows())
	for i := range mask {
		mask[i] = make([]bool, v.grid.Cols())
		for j := range mask[i] {
			obj := any(v.read(v.grid.cells[i][j]))
			selected := true
			if q.pred != nil {
				selected = q.pred(obj)
			}
			if selected && program != nil {
				ok, err := program.isTrue(obj)
				if err != nil {
					return nil, err
				}
				selected = ok
			}
			for _, f := range q.filters {
				if !selected {
					break
				}
				selected = reflect.DeepEqual(attrValue(obj, f.key), f.value)
			}
			mask[i][j] = selected
		}
	}
	return mask, nil
}

// String renders the view as a row-major matrix of element descriptions.
func (v *view[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range v.grid.cells {
		if i > 0 {
			b.WriteString("\n ")
		}
		b.WriteByte('[')
		for j, cell := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%v", describeValue(v.read(cell)))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

func describeValue(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	t := reflect.TypeOf(v)
	if t != nil && (t.Kind() == reflect.Ptr || t.Kind() == reflect.Struct) {
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		return t.Name()
	}
	return fmt.Sprintf("%v", v)
}

// MaskOption adds a condition to a mask query.
type MaskOption func(*maskQuery)

type filter struct {
	key   string
	value any
}

type maskQuery struct {
	pred    func(any) bool
	expr    string
	filters []filter
}

// Where adds a predicate receiving the stored object; cells whose object
// fails it are excluded.
func Where(pred func(any) bool) MaskOption {
	return func(q *maskQuery) { q.pred = pred }
}

// WhereExpr adds a boolean expression evaluated against the stored object's
// attributes (tag entries for tag bags, exported fields for structs, keys
// for maps; the object itself is bound to "value").
func WhereExpr(expression string) MaskOption {
	return func(q *maskQuery) { q.expr = expression }
}

// Eq adds a key=value filter: the attribute looked up by key on the stored
// object must equal value. An absent attribute resolves to Missing and so
// never matches a user value.
func Eq(key string, value any) MaskOption {
	return func(q *maskQuery) { q.filters = append(q.filters, filter{key: key, value: value}) }
}

// attrValue looks up a named attribute on the stored object: a tag bag
// entry, a map key, or an exported struct field (through pointers). Absent
// attributes resolve to the Missing sentinel.
func attrValue(obj any, key string) any {
	switch o := obj.(type) {
	case Tags:
		return o.Value(key)
	case map[string]any:
		if v, ok := o[key]; ok {
			return v
		}
		return Missing
	}

	rv := reflect.ValueOf(obj)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return Missing
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return Missing
	}
	f := rv.FieldByName(key)
	if !f.IsValid() && key != "" {
		// Tolerate lower-case filter keys for exported fields.
		f = rv.FieldByName(strings.ToUpper(key[:1]) + key[1:])
	}
	if !f.IsValid() || !f.CanInterface() {
		return Missing
	}
	return f.Interface()
}
