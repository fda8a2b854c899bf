package embedding

import (
	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/metric"
)

// Topology is the read-only view of a triangulation, plus a coordinate
// write-back hook, that an embedder needs. spacetime.Spacetime satisfies
// it without either package importing the other.
type Topology interface {
	VertexList() *core.VertexList
	EdgeList() *core.EdgeList
	Metric() *metric.Metric
	SetCoordinates(vertexID uint64, coords []float64) error
}
