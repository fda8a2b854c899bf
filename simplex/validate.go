package simplex

import (
	"fmt"

	"github.com/meshweave/cdt/core"
)

// Validate checks every structural invariant a Face must hold: its
// vertices and edges resolve against the owning lists, its lookup index
// agrees with its vertex tuple, its orientation accounts for every
// vertex, and its facet/coface back-pointers agree with each other. It
// reports the first violation found.
func (f *Face) Validate(vl *core.VertexList, el *core.EdgeList, r Resolver) error {
	if len(f.Vertices) != len(f.VertexIndex) {
		return fmt.Errorf("face %d: VertexIndex has %d entries for %d vertices: %w",
			f.ID, len(f.VertexIndex), len(f.Vertices), ErrInvalidFace)
	}
	for pos, v := range f.Vertices {
		if idx, ok := f.VertexIndex[v]; !ok || idx != pos {
			return fmt.Errorf("face %d: VertexIndex[%d] = %d, want %d: %w", f.ID, v, idx, pos, ErrInvalidFace)
		}
		if !vl.Has(v) {
			return fmt.Errorf("face %d: vertex %d not in VertexList: %w", f.ID, v, ErrInvalidFace)
		}
	}

	if f.Orientation.I+f.Orientation.F != len(f.Vertices) {
		return fmt.Errorf("face %d: orientation %+v does not account for %d vertices: %w",
			f.ID, f.Orientation, len(f.Vertices), ErrInvalidFace)
	}

	for _, eid := range f.EdgeIDs {
		e, err := el.Get(eid)
		if err != nil {
			return fmt.Errorf("face %d: edge %d: %w", f.ID, eid, ErrInvalidFace)
		}
		if _, ok := f.VertexIndex[e.Source]; !ok {
			return fmt.Errorf("face %d: edge %d source %d not among its vertices: %w", f.ID, eid, e.Source, ErrInvalidFace)
		}
		if _, ok := f.VertexIndex[e.Target]; !ok {
			return fmt.Errorf("face %d: edge %d target %d not among its vertices: %w", f.ID, eid, e.Target, ErrInvalidFace)
		}
	}

	for _, facetID := range f.FacetIDs {
		facet, ok := r.Face(facetID)
		if !ok {
			return fmt.Errorf("face %d: facet %d: %w", f.ID, facetID, ErrFaceNotFound)
		}
		if facet.Dim() != f.Dim()-1 {
			return fmt.Errorf("face %d: facet %d has dim %d, want %d: %w",
				f.ID, facetID, facet.Dim(), f.Dim()-1, ErrInvalidFace)
		}
		if !containsID(facet.CofaceIDs, f.ID) {
			return fmt.Errorf("face %d: facet %d does not list it as a coface: %w", f.ID, facetID, ErrInvalidFace)
		}
	}

	for _, cofaceID := range f.CofaceIDs {
		coface, ok := r.Face(cofaceID)
		if !ok {
			return fmt.Errorf("face %d: coface %d: %w", f.ID, cofaceID, ErrFaceNotFound)
		}
		if !containsID(coface.FacetIDs, f.ID) {
			return fmt.Errorf("face %d: coface %d does not list it as a facet: %w", f.ID, cofaceID, ErrInvalidFace)
		}
	}

	return nil
}

func containsID(ids []uint64, target uint64) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}
