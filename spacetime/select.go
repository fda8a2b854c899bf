package spacetime

import "github.com/meshweave/cdt/simplex"

// GetGluableFaces returns every pair of facets, one from a and one from
// b, that share a dimension and an exactly matching orientation and have
// disjoint vertex sets — candidates for causal gluing. Requiring exact
// orientation equality (rather than just "both timelike") already rules
// out pairing a purely-initial facet with a purely-final one: (d,0) and
// (0,d) are different orientations even though neither is timelike.
func (st *Spacetime) GetGluableFaces(a, b *simplex.Face) [][2]*simplex.Face {
	st.muFaces.RLock()
	defer st.muFaces.RUnlock()

	var out [][2]*simplex.Face
	for _, fa := range a.Facets(st) {
		for _, fb := range b.Facets(st) {
			if !facesGluable(fa, fb) {
				continue
			}
			out = append(out, [2]*simplex.Face{fa, fb})
		}
	}
	return out
}

func facesGluable(fa, fb *simplex.Face) bool {
	if fa.ID == fb.ID {
		return false
	}
	if fa.Dim() != fb.Dim() || !fa.Orientation.Equal(fb.Orientation) {
		return false
	}
	for _, v := range fa.Vertices {
		if _, shared := fb.VertexIndex[v]; shared {
			return false
		}
	}
	return true
}

// ChooseSimplexFacesToGlue scans unglued's facets in order and, for each,
// searches every other indexed top simplex (lowest id first) and its
// facets (lowest omission index first) for one that is gluable. It
// returns the first match found, which fixes the tie-break deterministically.
func (st *Spacetime) ChooseSimplexFacesToGlue(unglued *simplex.Face) (*simplex.Face, *simplex.Face, error) {
	st.muFaces.RLock()
	defer st.muFaces.RUnlock()

	for _, facetID := range unglued.FacetIDs {
		facet, ok := st.faces[facetID]
		if !ok {
			continue
		}
		for _, topID := range st.topSimplexIDs {
			if topID == unglued.ID {
				continue
			}
			top, ok := st.faces[topID]
			if !ok || !st.isIndexedLocked(top) {
				continue
			}
			for _, otherFacetID := range top.FacetIDs {
				other, ok := st.faces[otherFacetID]
				if !ok {
					continue
				}
				if facesGluable(facet, other) {
					return facet, other, nil
				}
			}
		}
	}
	return nil, nil, ErrNoGluableFacePair
}

func (st *Spacetime) isIndexedLocked(top *simplex.Face) bool {
	for _, id := range st.orientation[top.Orientation] {
		if id == top.ID {
			return true
		}
	}
	return false
}
