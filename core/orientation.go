package core

// Orientation summarizes a simplex's time labels as the pair (I, F): the
// count of its vertices on the initial time slice versus the final one.
// For a d-simplex, I+F = d+1.
type Orientation struct {
	I int
	F int
}

// NewOrientation builds an Orientation from explicit initial/final counts.
func NewOrientation(i, f int) Orientation {
	return Orientation{I: i, F: f}
}

// Add combines two orientations componentwise: (i1,f1) ⊕ (i2,f2) =
// (i1+i2, f1+f2).
func (o Orientation) Add(other Orientation) Orientation {
	return Orientation{I: o.I + other.I, F: o.F + other.F}
}

// Dim returns the simplex dimension this orientation describes (d = I+F-1).
func (o Orientation) Dim() int {
	return o.I + o.F - 1
}

// Timelike reports whether a face with this orientation spans more than one
// time slice (both I>0 and F>0).
func (o Orientation) Timelike() bool {
	return o.I > 0 && o.F > 0
}

// Equal reports componentwise equality.
func (o Orientation) Equal(other Orientation) bool {
	return o.I == other.I && o.F == other.F
}
