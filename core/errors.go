package core

import "errors"

// Sentinel errors for core primitives. Callers branch on these with
// errors.Is; none are ever reconstructed from a formatted string.
var (
	// ErrIDInUse indicates a caller supplied an explicit id that is already
	// present in the owning list.
	ErrIDInUse = errors.New("core: id already in use")

	// ErrSelfLoop indicates an edge was asked to connect a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrFingerprintCollision indicates a second, distinct Edge object was
	// inserted into an EdgeList under a fingerprint already held by another
	// Edge object.
	ErrFingerprintCollision = errors.New("core: fingerprint collision")

	// ErrVertexNotFound indicates a lookup referenced a vertex id absent
	// from the VertexList.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates a lookup referenced an edge id absent from
	// the EdgeList.
	ErrEdgeNotFound = errors.New("core: edge not found")
)
