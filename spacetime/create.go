package spacetime

import (
	"fmt"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/simplex"
)

// VertexOption configures CreateVertex.
type VertexOption func(*vertexConfig)

type vertexConfig struct {
	id        *uint64
	time      int
	coords    []float64
	hasCoords bool
}

// WithVertexID pins the new vertex to a specific id instead of allocating
// the next one. Returns ErrIDInUse from CreateVertex if already taken.
func WithVertexID(id uint64) VertexOption {
	return func(c *vertexConfig) { c.id = &id }
}

// WithTime sets the vertex's discrete time slice (default 0).
func WithTime(t int) VertexOption {
	return func(c *vertexConfig) { c.time = t }
}

// WithCoordinates sets the vertex's initial embedding coordinates.
func WithCoordinates(coords []float64) VertexOption {
	return func(c *vertexConfig) {
		c.coords = append([]float64(nil), coords...)
		c.hasCoords = true
	}
}

// CreateVertex allocates a fresh vertex, inserts it into the catalog, and
// seeds it as its own singleton connected component.
func (st *Spacetime) CreateVertex(opts ...VertexOption) (*core.Vertex, error) {
	cfg := vertexConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	id := cfg.id
	var vid uint64
	if id != nil {
		if st.vertices.Has(*id) {
			return nil, fmt.Errorf("spacetime: vertex %d: %w", *id, core.ErrIDInUse)
		}
		vid = *id
		st.vertexIDs.Reserve(vid)
	} else {
		vid = st.vertexIDs.Next()
	}

	v := core.NewVertex(vid, cfg.time)
	if cfg.hasCoords {
		v.SetCoordinates(cfg.coords)
	}
	if err := st.vertices.Add(v); err != nil {
		return nil, err
	}
	st.dsu.add(vid)
	return v, nil
}

// EdgeOption configures CreateEdge.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	id            *uint64
	squaredLength *float64
}

// WithEdgeID pins the new edge to a specific id.
func WithEdgeID(id uint64) EdgeOption {
	return func(c *edgeConfig) { c.id = &id }
}

// WithSquaredLength caches a squared length on the edge at creation time.
func WithSquaredLength(v float64) EdgeOption {
	return func(c *edgeConfig) { c.squaredLength = &v }
}

// CreateEdge allocates a directed edge between two existing vertices,
// links it into both vertices' adjacency sets, and unions their
// components. It returns core.ErrSelfLoop if source == target, and
// core.ErrFingerprintCollision if an edge already connects this unordered
// pair.
func (st *Spacetime) CreateEdge(source, target uint64, opts ...EdgeOption) (*core.Edge, error) {
	if source == target {
		return nil, core.ErrSelfLoop
	}

	cfg := edgeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	sv, err := st.vertices.Get(source)
	if err != nil {
		return nil, err
	}
	tv, err := st.vertices.Get(target)
	if err != nil {
		return nil, err
	}

	var eid uint64
	if cfg.id != nil {
		if st.edges.Has(*cfg.id) {
			return nil, fmt.Errorf("spacetime: edge %d: %w", *cfg.id, core.ErrIDInUse)
		}
		eid = *cfg.id
		st.edgeIDs.Reserve(eid)
	} else {
		eid = st.edgeIDs.Next()
	}

	var e *core.Edge
	if cfg.squaredLength != nil {
		e = core.NewEdgeWithLength(eid, source, target, *cfg.squaredLength)
	} else {
		e = core.NewEdge(eid, source, target)
	}

	if err := st.edges.Add(e); err != nil {
		return nil, err
	}

	sv.AddOutEdge(eid)
	tv.AddInEdge(eid)
	st.dsu.union(source, target)

	return e, nil
}

// CreateSimplex builds a top-dimensional simplex of the given orientation:
// i fresh vertices on one time slice, f fresh vertices on the next, every
// ordered earlier-to-later pair joined by an edge, and a Face tying the
// whole tuple together along with one facet per omitted vertex.
func (st *Spacetime) CreateSimplex(o core.Orientation) (*simplex.Face, error) {
	if o.I < 0 || o.F < 0 || o.I+o.F < 1 {
		return nil, ErrInvalidOrientation
	}

	vertices := make([]uint64, 0, o.I+o.F)
	for k := 0; k < o.I; k++ {
		v, err := st.CreateVertex(WithTime(0))
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v.ID)
	}
	for k := 0; k < o.F; k++ {
		v, err := st.CreateVertex(WithTime(1))
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v.ID)
	}

	for a := 0; a < len(vertices); a++ {
		for b := a + 1; b < len(vertices); b++ {
			if _, err := st.CreateEdge(vertices[a], vertices[b]); err != nil {
				return nil, err
			}
		}
	}

	st.mu.RLock()
	vl, el := st.vertices, st.edges
	st.mu.RUnlock()

	st.muFaces.Lock()
	defer st.muFaces.Unlock()

	topID := st.faceIDs.Next()
	top, err := simplex.NewFace(topID, vertices, vl, el)
	if err != nil {
		return nil, err
	}

	omissions := simplex.Omissions(vertices)
	for _, tuple := range omissions {
		facetID := st.faceIDs.Next()
		facet, err := simplex.NewFace(facetID, tuple, vl, el)
		if err != nil {
			return nil, err
		}
		facet.CofaceIDs = append(facet.CofaceIDs, top.ID)
		top.FacetIDs = append(top.FacetIDs, facet.ID)
		st.registerFaceLocked(facet)
	}

	st.registerFaceLocked(top)
	st.topSimplexIDs = append(st.topSimplexIDs, top.ID)
	if !st.manual {
		st.indexSimplexLocked(top)
	}

	return top, nil
}
