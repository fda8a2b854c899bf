package spacetime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/simplex"
	"github.com/meshweave/cdt/spacetime"
)

func facetWithOrientation(t *testing.T, st *spacetime.Spacetime, top *simplex.Face, o core.Orientation) *simplex.Face {
	t.Helper()
	for _, id := range top.FacetIDs {
		f, ok := st.Face(id)
		require.True(t, ok)
		if f.Orientation.Equal(o) {
			return f
		}
	}
	t.Fatalf("no facet of %+v with orientation %+v", top.Vertices, o)
	return nil
}

func TestCausallyAttachFaces_TwoTriangles(t *testing.T) {
	st := spacetime.New(nil)

	left, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)
	right, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)

	require.Equal(t, 6, st.VertexList().Size())
	require.Equal(t, 6, st.EdgeList().Size())
	require.Len(t, st.GetConnectedComponents(), 2)

	leftFacet := facetWithOrientation(t, st, left, core.NewOrientation(1, 1))
	rightFacet := facetWithOrientation(t, st, right, core.NewOrientation(1, 1))

	updated, ok, err := st.CausallyAttachFaces(leftFacet, rightFacet)
	require.NoError(t, err)
	require.True(t, ok)
	require.NotNil(t, updated)

	require.Equal(t, 4, st.VertexList().Size())
	require.Equal(t, 5, st.EdgeList().Size())
	require.Len(t, st.GetConnectedComponents(), 1)
}

func TestCausallyAttachFaces_FourSimplices(t *testing.T) {
	st := spacetime.New(nil)

	left, err := st.CreateSimplex(core.NewOrientation(1, 4))
	require.NoError(t, err)
	right, err := st.CreateSimplex(core.NewOrientation(2, 3))
	require.NoError(t, err)

	require.Equal(t, 10, st.VertexList().Size())
	require.Equal(t, 20, st.EdgeList().Size())
	require.Len(t, st.GetConnectedComponents(), 2)

	leftFacet := facetWithOrientation(t, st, left, core.NewOrientation(1, 3))
	rightFacet := facetWithOrientation(t, st, right, core.NewOrientation(1, 3))

	updated, ok, err := st.CausallyAttachFaces(leftFacet, rightFacet)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 6, st.VertexList().Size())
	require.Equal(t, 14, st.EdgeList().Size())
	require.Len(t, st.GetConnectedComponents(), 1)
	require.GreaterOrEqual(t, len(updated.CofaceIDs), 2)
}

func TestChooseSimplexFacesToGlue_NoCandidate(t *testing.T) {
	st := spacetime.New(nil)
	top, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)

	_, _, err = st.ChooseSimplexFacesToGlue(top)
	require.ErrorIs(t, err, spacetime.ErrNoGluableFacePair)
}

func TestChooseSimplexFacesToGlue_FindsMatch(t *testing.T) {
	st := spacetime.New(nil)
	existing, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)
	fresh, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)

	facet, other, err := st.ChooseSimplexFacesToGlue(fresh)
	require.NoError(t, err)
	require.Contains(t, fresh.FacetIDs, facet.ID)
	require.Contains(t, existing.FacetIDs, other.ID)
}

func TestCausallyAttachFaces_RejectsDimensionMismatch(t *testing.T) {
	st := spacetime.New(nil)
	tri, err := st.CreateSimplex(core.NewOrientation(1, 2))
	require.NoError(t, err)
	tet, err := st.CreateSimplex(core.NewOrientation(1, 4))
	require.NoError(t, err)

	triFacet := facetWithOrientation(t, st, tri, core.NewOrientation(1, 1))
	tetFacet := facetWithOrientation(t, st, tet, core.NewOrientation(1, 3))

	_, _, err = st.CausallyAttachFaces(triFacet, tetFacet)
	require.ErrorIs(t, err, simplex.ErrDimensionMismatch)
}

func TestChainOfSixFourSimplices(t *testing.T) {
	st := spacetime.New(nil)

	tops := make([]*simplex.Face, 6)
	for i := range tops {
		top, err := st.CreateSimplex(core.NewOrientation(1, 4))
		require.NoError(t, err)
		tops[i] = top
	}

	sawMultiCoface := false
	for i := 0; i < len(tops)-1; i++ {
		leftFacet := facetWithOrientation(t, st, tops[i], core.NewOrientation(1, 3))
		rightFacet := facetWithOrientation(t, st, tops[i+1], core.NewOrientation(1, 3))
		updated, ok, err := st.CausallyAttachFaces(leftFacet, rightFacet)
		require.NoError(t, err)
		require.True(t, ok)
		if len(updated.CofaceIDs) >= 2 {
			sawMultiCoface = true
		}
	}
	require.True(t, sawMultiCoface, "at least one shared facet should end up with >= 2 cofaces")

	require.Len(t, st.GetConnectedComponents(), 1)

	validateReachableFaces(t, st, tops)
}

// validateReachableFaces calls Face.Validate on every top simplex and every
// facet reachable from it, the "fault floor" DESIGN.md describes Validate
// as providing, to confirm the chain of gluings left no face inconsistent.
func validateReachableFaces(t *testing.T, st *spacetime.Spacetime, tops []*simplex.Face) {
	t.Helper()
	seen := make(map[uint64]struct{})
	for _, top := range tops {
		ids := append([]uint64{top.ID}, top.FacetIDs...)
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			f, ok := st.Face(id)
			require.True(t, ok, "face %d should still resolve", id)
			require.NoError(t, f.Validate(st.VertexList(), st.EdgeList(), st))
		}
	}
}
