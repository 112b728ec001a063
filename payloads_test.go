package cellgrid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloads_ScalarSetAndGet(t *testing.T) {
	g := simpleGrid(t)
	circle := &testPayload{Name: "Circle"}

	require.NoError(t, g.Payloads().Set(At(Pos(0), Pos(0)), circle))

	got, err := g.Payloads().Get(At(Pos(0), Pos(0)))
	require.NoError(t, err)
	assert.Same(t, circle, got.(*testPayload))
}

func TestPayloads_GetRequiresScalarSelection(t *testing.T) {
	g := simpleGrid(t)

	_, err := g.Payloads().Get(Pos(0))
	assert.True(t, errors.Is(err, ErrScalarIndex))

	_, err = g.Payloads().Get(At(All(), Pos(0)))
	assert.True(t, errors.Is(err, ErrScalarIndex))
}

func TestPayloads_SetRejectsBulkSelection(t *testing.T) {
	g := simpleGrid(t)

	err := g.Payloads().Set(At(All(), Pos(0)), &testPayload{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValue))
	assert.Contains(t, err.Error(), "use SetEach")
}

func TestPayloads_SetRejectsNil(t *testing.T) {
	g := simpleGrid(t)
	err := g.Payloads().Set(At(Pos(0), Pos(0)), nil)
	assert.True(t, errors.Is(err, ErrValue))
}

func TestPayloads_BulkSetAndValues(t *testing.T) {
	g := simpleGrid(t)
	row := payloads("a", "b", "c")

	require.NoError(t, g.Payloads().SetEach(Pos(0), row))

	got, err := g.Payloads().Values(Pos(0))
	require.NoError(t, err)
	assert.Equal(t, row, got)

	// Full-grid bulk read is row-major.
	all, err := g.Payloads().Values(All())
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, row, all[:3])
	for _, p := range all[3:] {
		assert.True(t, IsEmpty(p))
	}
}

func TestPayloads_BulkLengthMismatchIsAtomic(t *testing.T) {
	g := simpleGrid(t)

	err := g.Payloads().SetEach(Pos(0), payloads("only one"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValue))
	assert.Contains(t, err.Error(), "length mismatch between the selected cells (3) and the provided payloads (1)")

	// No cell in the target region changed.
	all, err := g.Payloads().Values(All())
	require.NoError(t, err)
	for _, p := range all {
		assert.True(t, IsEmpty(p))
	}
}

func TestPayloads_BulkNilPayloadIsAtomic(t *testing.T) {
	g := simpleGrid(t)

	err := g.Payloads().SetEach(Pos(0), []Payload{&testPayload{}, nil, &testPayload{}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValue))

	all, err := g.Payloads().Values(All())
	require.NoError(t, err)
	for _, p := range all {
		assert.True(t, IsEmpty(p))
	}
}

func TestPayloads_AlignmentOption(t *testing.T) {
	g := simpleGrid(t)
	p := &testPayload{Name: "aligned"}

	require.NoError(t, g.Payloads().Set(At(Pos(1), Pos(1)), p, Aligned(Up)))
	assert.Equal(t, Up, p.alignment)
	// Margin is (0.1, 0.3): the payload moves away from the top edge.
	assert.Equal(t, Vec{0, -0.3, 0}, p.lastShift())

	// Default alignment is centered.
	q := &testPayload{Name: "centered"}
	require.NoError(t, g.Payloads().Set(At(Pos(1), Pos(0)), q))
	assert.True(t, q.alignment.IsZero())
}

func TestPayloads_BulkAlignmentAppliesToEveryCell(t *testing.T) {
	g := simpleGrid(t)
	row := []Payload{&testPayload{}, &testPayload{}, &testPayload{}}

	require.NoError(t, g.Payloads().SetEach(Pos(1), row, Aligned(Left)))
	for _, p := range row {
		assert.Equal(t, Left, p.(*testPayload).alignment)
	}
}

func TestPayloads_IndexingMixesLabelsAndMasks(t *testing.T) {
	g := simpleGrid(t)
	require.NoError(t, g.Payloads().SetEach(All(), payloads("a", "b", "c", "d", "e", "f")))

	// Label pair.
	got, err := g.Payloads().Get(At(Name("2"), Name("3")))
	require.NoError(t, err)
	assert.Equal(t, "f", got.(*testPayload).Name)

	// Row label with column mask.
	vals, err := g.Payloads().Values(At(Name("1"), MaskKey{true, false, true}))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "a", vals[0].(*testPayload).Name)
	assert.Equal(t, "c", vals[1].(*testPayload).Name)

	// Label span: half-open, so "1":"2" covers only column 0.
	vals, err = g.Payloads().Values(At(All(), Between(Name("1"), Name("2"))))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "a", vals[0].(*testPayload).Name)
	assert.Equal(t, "d", vals[1].(*testPayload).Name)

	// Position pairs select one cell each.
	vals, err = g.Payloads().Values(PosPairs{{0, 2}, {1, 0}})
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.Equal(t, "c", vals[0].(*testPayload).Name)
	assert.Equal(t, "d", vals[1].(*testPayload).Name)

	// Label pairs resolve per dimension.
	vals, err = g.Payloads().Values(NamePairs{{"2", "2"}})
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "e", vals[0].(*testPayload).Name)
}

func TestHistory_PreservedAcrossUpdates(t *testing.T) {
	g := simpleGrid(t)
	idx := At(Pos(0), Pos(0))

	c := &testPayload{Name: "c"}
	s := &testPayload{Name: "s"}

	require.NoError(t, g.Payloads().Set(idx, c))
	old, err := g.History().Get(idx)
	require.NoError(t, err)
	assert.True(t, IsEmpty(old))

	require.NoError(t, g.Payloads().Set(idx, s))
	old, err = g.History().Get(idx)
	require.NoError(t, err)
	assert.Same(t, c, old.(*testPayload))

	cur, err := g.Payloads().Get(idx)
	require.NoError(t, err)
	assert.Same(t, s, cur.(*testPayload))
}

func TestHistory_BulkValuesAfterMultipleUpdates(t *testing.T) {
	g := simpleGrid(t)

	first := payloads("a1", "a2", "a3")
	second := payloads("b1", "b2", "b3")

	require.NoError(t, g.Payloads().SetEach(Pos(0), first))
	require.NoError(t, g.Payloads().SetEach(Pos(0), second))

	olds, err := g.History().Values(Pos(0))
	require.NoError(t, err)
	assert.Equal(t, first, olds)

	curs, err := g.Payloads().Values(Pos(0))
	require.NoError(t, err)
	assert.Equal(t, second, curs)
}

func TestHistory_IsReadOnly(t *testing.T) {
	g := simpleGrid(t)

	err := g.History().Set(At(Pos(0), Pos(0)), &testPayload{})
	assert.True(t, errors.Is(err, ErrReadOnly))

	err = g.History().SetEach(Pos(0), payloads("a", "b", "c"))
	assert.True(t, errors.Is(err, ErrReadOnly))
}

func TestPayloads_InsertObserver(t *testing.T) {
	type event struct {
		row, col int
		name     string
	}
	var events []event

	g, err := New([]float64{1, 1}, []float64{1, 1},
		WithInsertObserver(func(row, col int, p Payload) {
			events = append(events, event{row, col, p.(*testPayload).Name})
		}))
	require.NoError(t, err)

	require.NoError(t, g.Payloads().Set(At(Pos(1), Pos(0)), &testPayload{Name: "x"}))
	require.NoError(t, g.Payloads().SetEach(Pos(0), payloads("a", "b")))

	assert.Equal(t, []event{{1, 0, "x"}, {0, 0, "a"}, {0, 1, "b"}}, events)
}

func TestPayloads_String(t *testing.T) {
	g := simpleGrid(t)
	require.NoError(t, g.Payloads().Set(At(Pos(0), Pos(0)), &testPayload{Name: "Circle"}))

	assert.Equal(t,
		"[[Circle Empty Empty]\n [Empty Empty Empty]]",
		g.Payloads().String())
}
