package spacetime

import (
	"sync"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/metric"
	"github.com/meshweave/cdt/simplex"
)

// Spacetime is the growing causal dynamical triangulation: a catalog of
// vertices and edges, an arena of simplex faces of every dimension, a
// connected-component tracker, and an active metric. It is the only type
// in this module that mutates more than one simplex.Face at a time, since
// only it can see the whole face arena a causal gluing needs to walk.
type Spacetime struct {
	// mu guards vertices, edges and the id allocators: the "catalog"
	// layer, touched by every operation.
	mu sync.RWMutex
	// muFaces guards the face arena and its indices, a separate lock so
	// that a long Validate walk over faces doesn't block vertex/edge
	// catalog reads, mirroring the teacher's split muVert/muEdgeAdj
	// locking. The fixed acquisition order is mu before muFaces.
	muFaces sync.RWMutex

	vertexIDs core.IDAllocator
	edgeIDs   core.IDAllocator
	faceIDs   core.IDAllocator

	vertices *core.VertexList
	edges    *core.EdgeList

	faces         map[uint64]*simplex.Face
	topSimplexIDs []uint64
	orientation   map[core.Orientation][]uint64

	facesByVertex map[uint64]map[uint64]struct{}
	facesByEdge   map[uint64]map[uint64]struct{}

	dsu *disjointSet

	metric *metric.Metric
	manual bool
}

// New builds an empty Spacetime under the given metric. A nil metric is
// replaced with a coordinate-free 4-dimensional Lorentzian metric, matching
// the convention that a freshly constructed spacetime carries a signature
// even before any vertex has coordinates.
func New(m *metric.Metric) *Spacetime {
	if m == nil {
		m = metric.New(metric.NewSignature(4, metric.Lorentzian), metric.WithCoordinateFree(true))
	}
	return &Spacetime{
		vertices:      core.NewVertexList(),
		edges:         core.NewEdgeList(),
		faces:         make(map[uint64]*simplex.Face),
		orientation:   make(map[core.Orientation][]uint64),
		facesByVertex: make(map[uint64]map[uint64]struct{}),
		facesByEdge:   make(map[uint64]map[uint64]struct{}),
		dsu:           newDisjointSet(),
		metric:        m,
	}
}

// SetManual toggles whether freshly created top simplices are indexed by
// orientation for gluing candidate search. While manual is true, a driver
// must call IndexSimplex itself once it is happy with a simplex before it
// becomes visible to ChooseSimplexFacesToGlue.
func (st *Spacetime) SetManual(manual bool) {
	st.muFaces.Lock()
	defer st.muFaces.Unlock()
	st.manual = manual
}

// Face resolves a face id against the arena. It implements simplex.Resolver.
func (st *Spacetime) Face(id uint64) (*simplex.Face, bool) {
	st.muFaces.RLock()
	defer st.muFaces.RUnlock()
	f, ok := st.faces[id]
	return f, ok
}

// VertexList exposes the read-only vertex catalog, e.g. for an embedding
// to walk every vertex's current coordinates.
func (st *Spacetime) VertexList() *core.VertexList {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.vertices
}

// EdgeList exposes the read-only edge catalog.
func (st *Spacetime) EdgeList() *core.EdgeList {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.edges
}

// Metric returns the active metric.
func (st *Spacetime) Metric() *metric.Metric {
	return st.metric
}

// SetCoordinates writes an embedding's coordinates back onto a vertex.
func (st *Spacetime) SetCoordinates(vertexID uint64, coords []float64) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	v, err := st.vertices.Get(vertexID)
	if err != nil {
		return err
	}
	v.SetCoordinates(coords)
	return nil
}

// IndexSimplex adds a staged top simplex (one created while SetManual(true)
// was in effect) to the orientation index, making it visible to
// ChooseSimplexFacesToGlue. It is a no-op if the simplex is already indexed.
func (st *Spacetime) IndexSimplex(top *simplex.Face) {
	st.muFaces.Lock()
	defer st.muFaces.Unlock()
	st.indexSimplexLocked(top)
}

func (st *Spacetime) indexSimplexLocked(top *simplex.Face) {
	for _, id := range st.orientation[top.Orientation] {
		if id == top.ID {
			return
		}
	}
	st.orientation[top.Orientation] = append(st.orientation[top.Orientation], top.ID)
}

func (st *Spacetime) registerFaceLocked(f *simplex.Face) {
	st.faces[f.ID] = f
	for _, v := range f.Vertices {
		set, ok := st.facesByVertex[v]
		if !ok {
			set = make(map[uint64]struct{})
			st.facesByVertex[v] = set
		}
		set[f.ID] = struct{}{}
	}
	for _, e := range f.EdgeIDs {
		set, ok := st.facesByEdge[e]
		if !ok {
			set = make(map[uint64]struct{})
			st.facesByEdge[e] = set
		}
		set[f.ID] = struct{}{}
	}
}

func (st *Spacetime) retireFaceLocked(id uint64) {
	f, ok := st.faces[id]
	if !ok {
		return
	}
	for _, v := range f.Vertices {
		delete(st.facesByVertex[v], id)
	}
	for _, e := range f.EdgeIDs {
		delete(st.facesByEdge[e], id)
	}
	delete(st.faces, id)
}
