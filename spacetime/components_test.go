package spacetime_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/spacetime"
)

func TestGetConnectedComponents_DisjointSimplices(t *testing.T) {
	st := spacetime.New(nil)
	for i := 0; i < 3; i++ {
		_, err := st.CreateSimplex(core.NewOrientation(1, 2))
		require.NoError(t, err)
	}
	require.Len(t, st.GetConnectedComponents(), 3)
}

func TestGetConnectedComponents_IsolatedVertices(t *testing.T) {
	st := spacetime.New(nil)
	for i := 0; i < 4; i++ {
		_, err := st.CreateVertex()
		require.NoError(t, err)
	}
	groups := st.GetConnectedComponents()
	require.Len(t, groups, 4)
	for _, g := range groups {
		require.Len(t, g, 1)
	}
}
