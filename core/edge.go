package core

// Fingerprint is the canonical, order-insensitive key for an edge: the
// unordered pair of its endpoints with the smaller id first. Two edges with
// equal fingerprints describe "the same undirected edge" for EdgeList's
// collision check.
type Fingerprint struct {
	Lo uint64
	Hi uint64
}

// Edge is a directed connection between two distinct vertices, plus an
// optional cached squared length. SquaredLength's sign is a convention:
// negative means timelike, positive means spacelike, zero means null/unset.
type Edge struct {
	ID     uint64
	Source uint64
	Target uint64

	// SquaredLength caches a signed squared length. HasLength distinguishes
	// "explicitly zero (null interval)" from "never set".
	SquaredLength float64
	HasLength     bool
}

// NewEdge builds an Edge between source and target. Callers (typically
// Spacetime.CreateEdge or a direct EdgeList user) are responsible for
// rejecting source == target per their own self-loop policy; Edge itself
// does not enforce it so that tests can construct degenerate edges to
// exercise validation paths.
func NewEdge(id, source, target uint64) *Edge {
	return &Edge{ID: id, Source: source, Target: target}
}

// NewEdgeWithLength builds an Edge carrying an initial cached squared
// length.
func NewEdgeWithLength(id, source, target uint64, squaredLength float64) *Edge {
	e := NewEdge(id, source, target)
	e.SquaredLength = squaredLength
	e.HasLength = true

	return e
}

// Fingerprint returns the order-insensitive key for this edge.
func (e *Edge) Fingerprint() Fingerprint {
	return fingerprintOf(e.Source, e.Target)
}

func fingerprintOf(a, b uint64) Fingerprint {
	if a <= b {
		return Fingerprint{Lo: a, Hi: b}
	}

	return Fingerprint{Lo: b, Hi: a}
}

// Redirect mutates the edge's endpoints in place. The caller's EdgeList
// index is now stale for this edge (the fingerprint may have changed) and
// must re-insert it under the new fingerprint.
func (e *Edge) Redirect(newSource, newTarget uint64) {
	e.Source = newSource
	e.Target = newTarget
}

// Other returns the endpoint of e that is not id, plus whether id was
// actually an endpoint of e.
func (e *Edge) Other(id uint64) (uint64, bool) {
	switch id {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	default:
		return 0, false
	}
}
