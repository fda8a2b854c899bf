package simplex_test

import (
	"fmt"

	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/simplex"
)

// ExampleFace_CheckParity builds the same triangle twice, with two of its
// vertices swapped in the second build, and reports the resulting parity.
func ExampleFace_CheckParity() {
	vl := core.NewVertexList()
	v10 := core.NewVertex(10, 0)
	v11 := core.NewVertex(11, 0)
	v12 := core.NewVertex(12, 1)
	_ = vl.Add(v10)
	_ = vl.Add(v11)
	_ = vl.Add(v12)

	el := core.NewEdgeList()
	_ = el.Add(core.NewEdge(100, 10, 11))
	_ = el.Add(core.NewEdge(101, 10, 12))
	_ = el.Add(core.NewEdge(102, 11, 12))

	a, _ := simplex.NewFace(1, []uint64{10, 11, 12}, vl, el)
	b, _ := simplex.NewFace(2, []uint64{11, 10, 12}, vl, el)

	fmt.Println("dim:", a.Dim(), "parity:", a.CheckParity(b))
	// Output: dim: 2 parity: -1
}
