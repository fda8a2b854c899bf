package simplex

import "errors"

var (
	// ErrDimensionMismatch is returned when two faces expected to share a
	// dimension do not.
	ErrDimensionMismatch = errors.New("simplex: dimension mismatch")

	// ErrNoOrientationPreservingMatch is returned when no vertex pairing
	// between two faces respects the orientation-compatible (initial-block
	// to initial-block, final-block to final-block) identification that
	// causal gluing requires.
	ErrNoOrientationPreservingMatch = errors.New("simplex: no orientation-preserving vertex match")

	// ErrAttachWouldDuplicateEdge is returned when substituting a vertex
	// would collapse two distinct edges of the same face onto one
	// fingerprint, or collapse an edge onto a self-loop.
	ErrAttachWouldDuplicateEdge = errors.New("simplex: attach would duplicate an edge")

	// ErrFaceNotFound is returned by a Resolver when an id does not
	// resolve to a live Face.
	ErrFaceNotFound = errors.New("simplex: face not found")

	// ErrInvalidFace is returned by Validate when a structural invariant
	// of a Face is broken.
	ErrInvalidFace = errors.New("simplex: invalid face")
)
