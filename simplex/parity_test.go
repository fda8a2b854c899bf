package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/simplex"
)

func TestCheckParity_EvenAndOdd(t *testing.T) {
	vl, el, verts := buildTriangle(t)
	base, err := simplex.NewFace(1, verts, vl, el)
	require.NoError(t, err)

	// Swapping two vertices is a single transposition: odd.
	swapped, err := simplex.NewFace(2, []uint64{11, 10, 12}, vl, el)
	require.NoError(t, err)
	require.Equal(t, -1, base.CheckParity(swapped))
	require.Equal(t, -1, swapped.CheckParity(base))

	// A full rotation of three elements is two transpositions: even.
	rotated, err := simplex.NewFace(3, []uint64{11, 12, 10}, vl, el)
	require.NoError(t, err)
	require.Equal(t, 1, base.CheckParity(rotated))

	identical, err := simplex.NewFace(4, verts, vl, el)
	require.NoError(t, err)
	require.Equal(t, 1, base.CheckParity(identical))
}

func TestCheckParity_DifferentVertexSet(t *testing.T) {
	vl, el, verts := buildTriangle(t)
	base, err := simplex.NewFace(1, verts, vl, el)
	require.NoError(t, err)

	other, err := simplex.NewFace(2, []uint64{10, 11}, vl, el)
	require.NoError(t, err)

	require.Equal(t, 0, base.CheckParity(other))
}

func TestGetVerticesWithParityTo(t *testing.T) {
	vl := core.NewVertexList()
	el := core.NewEdgeList()

	for id, tm := range map[uint64]int{1: 0, 2: 0, 3: 1, 11: 0, 12: 0, 13: 1} {
		require.NoError(t, vl.Add(core.NewVertex(id, tm)))
	}
	require.NoError(t, el.Add(core.NewEdge(100, 1, 2)))
	require.NoError(t, el.Add(core.NewEdge(101, 1, 3)))
	require.NoError(t, el.Add(core.NewEdge(102, 2, 3)))
	require.NoError(t, el.Add(core.NewEdge(110, 11, 12)))
	require.NoError(t, el.Add(core.NewEdge(111, 11, 13)))
	require.NoError(t, el.Add(core.NewEdge(112, 12, 13)))

	left, err := simplex.NewFace(1, []uint64{1, 2, 3}, vl, el)
	require.NoError(t, err)
	right, err := simplex.NewFace(2, []uint64{11, 12, 13}, vl, el)
	require.NoError(t, err)

	pairing, err := left.GetVerticesWithParityTo(right)
	require.NoError(t, err)
	require.Equal(t, [][2]uint64{{1, 11}, {2, 12}, {3, 13}}, pairing)
}

func TestGetVerticesWithParityTo_RejectsMismatch(t *testing.T) {
	vl := core.NewVertexList()
	el := core.NewEdgeList()
	for id, tm := range map[uint64]int{1: 0, 2: 1, 11: 0, 12: 0} {
		require.NoError(t, vl.Add(core.NewVertex(id, tm)))
	}
	require.NoError(t, el.Add(core.NewEdge(100, 1, 2)))
	require.NoError(t, el.Add(core.NewEdge(110, 11, 12)))

	a, err := simplex.NewFace(1, []uint64{1, 2}, vl, el)
	require.NoError(t, err)
	b, err := simplex.NewFace(2, []uint64{11, 12}, vl, el)
	require.NoError(t, err)

	// a is (1,1) timelike, b is (2,0) purely spatial: orientations differ.
	_, err = a.GetVerticesWithParityTo(b)
	require.ErrorIs(t, err, simplex.ErrNoOrientationPreservingMatch)
}

func TestGetVerticesWithParityTo_RejectsSharedVertex(t *testing.T) {
	vl, el, verts := buildTriangle(t)
	left, err := simplex.NewFace(1, []uint64{verts[0], verts[2]}, vl, el)
	require.NoError(t, err)
	right, err := simplex.NewFace(2, []uint64{verts[1], verts[2]}, vl, el)
	require.NoError(t, err)

	_, err = left.GetVerticesWithParityTo(right)
	require.ErrorIs(t, err, simplex.ErrNoOrientationPreservingMatch)
}
