package spacetime

import "errors"

var (
	// ErrInvalidOrientation is returned by CreateSimplex when asked for an
	// orientation that cannot describe a simplex (negative counts, or
	// fewer than one vertex total).
	ErrInvalidOrientation = errors.New("spacetime: invalid orientation")

	// ErrNoGluableFacePair is returned by ChooseSimplexFacesToGlue when no
	// facet of the given simplex can be identified with any facet already
	// in the complex.
	ErrNoGluableFacePair = errors.New("spacetime: no gluable face pair found")

	// ErrInconsistentPairing is returned by AttachAtVertices when the
	// supplied pairing is not a bijection between the two faces' vertex
	// sets.
	ErrInconsistentPairing = errors.New("spacetime: pairing is not a bijection between the two faces' vertices")
)
