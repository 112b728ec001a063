package cellgrid

import "testing"

// testPayload records the positioning calls the grid makes, so tests can
// assert on alignment and shift behavior without a real geometry layer.
type testPayload struct {
	Name    string
	Color   string
	Opacity float64

	alignedTo Bounds
	alignment Vec
	shifts    []Vec
}

func (p *testPayload) AlignTo(b Bounds, alignment Vec) {
	p.alignedTo = b
	p.alignment = alignment
}

func (p *testPayload) Shift(offset Vec) {
	p.shifts = append(p.shifts, offset)
}

func (p *testPayload) String() string { return p.Name }

func (p *testPayload) lastShift() Vec {
	if len(p.shifts) == 0 {
		return Origin
	}
	return p.shifts[len(p.shifts)-1]
}

// simpleGrid builds the 2x3 grid used throughout the tests: row sizes
// [1, 1], column sizes [1.5, 1.5, 1.5], spacing (0.1, 0.3), margin
// (0.1, 0.3), default labels.
func simpleGrid(t *testing.T) *Grid {
	t.Helper()
	g, err := New(
		[]float64{1.0, 1.0},
		[]float64{1.5, 1.5, 1.5},
		WithSpacingXY(0.1, 0.3),
		WithMarginXY(0.1, 0.3),
	)
	if err != nil {
		t.Fatalf("construct grid: %v", err)
	}
	return g
}

// simpleMapper mirrors the 3x3 label fixture: rows A/B/C, columns X/Y/Z.
func simpleMapper() *LabelMapper {
	return NewLabelMapper(
		map[string]int{"A": 0, "B": 1, "C": 2},
		map[string]int{"X": 0, "Y": 1, "Z": 2},
	)
}

func payloads(names ...string) []Payload {
	out := make([]Payload, len(names))
	for i, name := range names {
		out[i] = &testPayload{Name: name}
	}
	return out
}
