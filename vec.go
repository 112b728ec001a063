package cellgrid

import "fmt"

// Vec is a 3-component vector used for alignments, margins, and offsets.
// The grid lives in the XY plane, so the Z component of every vector the
// grid produces is zero.
type Vec [3]float64

// Direction constants for alignments and scrolling.
var (
	Origin = Vec{0, 0, 0} // centered
	Up     = Vec{0, 1, 0}
	Down   = Vec{0, -1, 0}
	Left   = Vec{-1, 0, 0}
	Right  = Vec{1, 0, 0}
)

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Scale returns v multiplied by the scalar f.
func (v Vec) Scale(f float64) Vec {
	return Vec{v[0] * f, v[1] * f, v[2] * f}
}

// Mul returns the component-wise (Hadamard) product of v and o.
func (v Vec) Mul(o Vec) Vec {
	return Vec{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

// IsZero reports whether all components of v are exactly zero.
func (v Vec) IsZero() bool {
	return v == Origin
}

// String formats the vector as "(x, y, z)".
func (v Vec) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v[0], v[1], v[2])
}
