package core

// Vertex is a node of the complex: a discrete time label, a coordinate
// vector (empty until an embedding pass fills it in), and the sets of
// edge ids incident to it as source (OutEdges) or target (InEdges).
//
// Invariant: every id in InEdges names an edge whose Target is this
// vertex's ID; symmetrically for OutEdges. Only the owning VertexList's
// Spacetime keeps that invariant true across mutations — Vertex itself
// just stores the sets.
type Vertex struct {
	ID     uint64
	Time   int
	Coords []float64

	inEdges  map[uint64]struct{}
	outEdges map[uint64]struct{}
}

// NewVertex allocates a Vertex with the given id and time label and empty
// edge sets. Coords starts nil; SetCoordinates fills it in later.
func NewVertex(id uint64, time int) *Vertex {
	return &Vertex{
		ID:       id,
		Time:     time,
		inEdges:  make(map[uint64]struct{}),
		outEdges: make(map[uint64]struct{}),
	}
}

// AddInEdge records edgeID as incoming. Idempotent.
func (v *Vertex) AddInEdge(edgeID uint64) { v.inEdges[edgeID] = struct{}{} }

// AddOutEdge records edgeID as outgoing. Idempotent.
func (v *Vertex) AddOutEdge(edgeID uint64) { v.outEdges[edgeID] = struct{}{} }

// RemoveInEdge forgets edgeID as incoming. No-op if absent.
func (v *Vertex) RemoveInEdge(edgeID uint64) { delete(v.inEdges, edgeID) }

// RemoveOutEdge forgets edgeID as outgoing. No-op if absent.
//
// This only updates the vertex's own adjacency view; it does not remove the
// Edge object from any owning EdgeList (that is EdgeList.Remove's job).
func (v *Vertex) RemoveOutEdge(edgeID uint64) { delete(v.outEdges, edgeID) }

// InEdges returns the set of incoming edge ids. Callers must not mutate it.
func (v *Vertex) InEdges() map[uint64]struct{} { return v.inEdges }

// OutEdges returns the set of outgoing edge ids. Callers must not mutate it.
func (v *Vertex) OutEdges() map[uint64]struct{} { return v.outEdges }

// Degree returns |InEdges| + |OutEdges|.
func (v *Vertex) Degree() int { return len(v.inEdges) + len(v.outEdges) }

// Edges returns the union of InEdges and OutEdges.
func (v *Vertex) Edges() map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(v.inEdges)+len(v.outEdges))
	for id := range v.inEdges {
		out[id] = struct{}{}
	}
	for id := range v.outEdges {
		out[id] = struct{}{}
	}

	return out
}

// SetCoordinates overwrites the vertex's coordinate vector.
func (v *Vertex) SetCoordinates(c []float64) { v.Coords = c }

// GetCoordinates returns the vertex's coordinate vector, or nil if unset.
func (v *Vertex) GetCoordinates() []float64 { return v.Coords }

// Equal compares vertices by id.
func (v *Vertex) Equal(other *Vertex) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.ID == other.ID
}
