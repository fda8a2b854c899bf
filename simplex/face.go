package simplex

import (
	"fmt"

	"github.com/meshweave/cdt/core"
)

// Resolver resolves a face id to its live Face record. Spacetime's face
// arena is the only real implementation; tests may use a plain map.
type Resolver interface {
	Face(id uint64) (*Face, bool)
}

// Face is a simplex of any dimension: either a top-dimensional simplex
// created directly by CreateSimplex, or one of its facets (and their
// facets, down to individual vertices). Faces never hold a strong pointer
// to another Face — Facets and Cofaces are ids, resolved through a
// Resolver at traversal time, so that a vertex merge during causal gluing
// never has to chase down and fix up live pointers spread across the
// complex.
type Face struct {
	ID uint64

	// Vertices is the ordered vertex tuple, kept in the order NewFace was
	// given it. CreateSimplex lists the initial-time block first, then the
	// final-time block; omitting a vertex to build a facet preserves that
	// ordering, so for faces built that way position alone tells you which
	// time block a vertex belongs to.
	Vertices []uint64

	// VertexIndex maps a vertex id back to its position in Vertices.
	VertexIndex map[uint64]int

	// EdgeIDs holds the id of the edge between Vertices[a] and Vertices[b]
	// for every a < b for which that edge exists in the owning EdgeList.
	// A facet only ever sees a subset of its parent's pairs, so absent
	// pairs are simply omitted rather than treated as an error.
	EdgeIDs []uint64

	Orientation core.Orientation

	// FacetIDs are this face's dimension-minus-one sub-faces, one per
	// omitted vertex position, in omission order.
	FacetIDs []uint64

	// CofaceIDs are the faces that have this face as a facet. It is an
	// insertion-ordered multiset: causal gluing can legitimately push the
	// same face's id on twice as chained simplices get glued along a
	// shared boundary, so no dedup and no len<=2 assumption.
	CofaceIDs []uint64
}

// Dim returns the face's dimension: one less than its vertex count.
func (f *Face) Dim() int {
	return len(f.Vertices) - 1
}

// NewFace builds a Face from an ordered vertex tuple, deriving its
// orientation from the vertices' time labels and its induced edge set by
// looking up every ascending pair in el. vl and el are read-only for this
// call.
func NewFace(id uint64, vertices []uint64, vl *core.VertexList, el *core.EdgeList) (*Face, error) {
	n := len(vertices)
	index := make(map[uint64]int, n)
	for pos, v := range vertices {
		if _, dup := index[v]; dup {
			return nil, fmt.Errorf("simplex: vertex %d repeated in face %d: %w", v, id, ErrInvalidFace)
		}
		index[v] = pos
	}

	orientation, err := computeOrientation(vertices, vl)
	if err != nil {
		return nil, err
	}

	edgeIDs := inducedEdges(vertices, el)

	return &Face{
		ID:          id,
		Vertices:    append([]uint64(nil), vertices...),
		VertexIndex: index,
		EdgeIDs:     edgeIDs,
		Orientation: orientation,
	}, nil
}

// computeOrientation counts vertices at the minimal and maximal time
// label present in the tuple. A simplex freshly built by CreateSimplex
// only ever spans two adjacent slices, so this reduces exactly to the
// (initial-count, final-count) pair. A single-slice tuple (all vertices
// share one time) reports entirely as the initial block when that time is
// 0 or less and entirely as the final block otherwise, so a facet lying on
// CreateSimplex's final slice (time 1) is (0,d), not (d,0).
func computeOrientation(vertices []uint64, vl *core.VertexList) (core.Orientation, error) {
	if len(vertices) == 0 {
		return core.Orientation{}, fmt.Errorf("simplex: empty vertex tuple: %w", ErrInvalidFace)
	}

	tmin, tmax := 0, 0
	for idx, id := range vertices {
		v, err := vl.Get(id)
		if err != nil {
			return core.Orientation{}, fmt.Errorf("simplex: resolving vertex %d: %w", id, err)
		}
		if idx == 0 {
			tmin, tmax = v.Time, v.Time
			continue
		}
		if v.Time < tmin {
			tmin = v.Time
		}
		if v.Time > tmax {
			tmax = v.Time
		}
	}

	i, f := 0, 0
	for _, id := range vertices {
		v, _ := vl.Get(id)
		switch {
		case tmin == tmax && tmin > 0:
			f++
		case tmin == tmax:
			i++
		case v.Time == tmin:
			i++
		case v.Time == tmax:
			f++
		}
	}
	return core.NewOrientation(i, f), nil
}

// inducedEdges looks up, for every ascending pair of positions in
// vertices, the edge connecting them. Missing pairs are skipped.
func inducedEdges(vertices []uint64, el *core.EdgeList) []uint64 {
	var ids []uint64
	for a := 0; a < len(vertices); a++ {
		for b := a + 1; b < len(vertices); b++ {
			fp := core.NewEdge(0, vertices[a], vertices[b]).Fingerprint()
			if e, ok := el.GetByFingerprint(fp); ok {
				ids = append(ids, e.ID)
			}
		}
	}
	return ids
}

// Omissions returns, for each position in vertices, the tuple obtained by
// dropping that position while preserving the relative order of the rest.
// The result is in omission-index order: Omissions(v)[k] drops v[k].
func Omissions(vertices []uint64) [][]uint64 {
	out := make([][]uint64, len(vertices))
	for k := range vertices {
		tuple := make([]uint64, 0, len(vertices)-1)
		for j, v := range vertices {
			if j != k {
				tuple = append(tuple, v)
			}
		}
		out[k] = tuple
	}
	return out
}

// Facets resolves FacetIDs to live Faces via r, skipping any that no
// longer resolve (already-retired identified faces in a merged complex).
func (f *Face) Facets(r Resolver) []*Face {
	out := make([]*Face, 0, len(f.FacetIDs))
	for _, id := range f.FacetIDs {
		if facet, ok := r.Face(id); ok {
			out = append(out, facet)
		}
	}
	return out
}

// Cofaces resolves CofaceIDs to live Faces via r.
func (f *Face) Cofaces(r Resolver) []*Face {
	out := make([]*Face, 0, len(f.CofaceIDs))
	for _, id := range f.CofaceIDs {
		if coface, ok := r.Face(id); ok {
			out = append(out, coface)
		}
	}
	return out
}
