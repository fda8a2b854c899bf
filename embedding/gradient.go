package embedding

import (
	"errors"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/meshweave/cdt/metric"
)

const learningRate = 0.01

// Embed places every vertex of top into dim-dimensional coordinates by
// gradient descent on the sum, over every edge, of the squared deviation
// between the edge's target squared length (metric.ResolvedSquaredLength
// against whatever coordinates or cache already exist, or 1 if neither is
// available) and the squared length computed from the two endpoints'
// working coordinates with the active metric's signature diagonal (an
// all-+1 diagonal when that signature's dimension is not dim, and even
// when the metric is coordinate-free). Coordinate 0 of every vertex is
// pinned to its discrete time and never updated, so the result always
// respects the causal time slicing it was built from.
//
// Embed runs until the gradient's norm drops below epsilon or maxIters is
// reached, whichever comes first.
func Embed(top Topology, dim int, epsilon float64, maxIters int) error {
	vertices := top.VertexList().ToVector()
	if len(vertices) == 0 {
		return ErrEmptyComplex
	}
	edges := top.EdgeList().ToVector()
	m := top.Metric()
	sig := m.Signature().Diagonal()
	if len(sig) != dim {
		sig = make([]float64, dim)
		for k := range sig {
			sig[k] = 1
		}
	}

	// Snapshot each edge's target rest-length from whatever coordinates or
	// cache already exist, before this function starts overwriting
	// vertex coordinates with its own working values. metric.
	// ResolvedSquaredLength's precedence (coordinates over cache) applies
	// here to respect a prior embedding's result if one exists.
	targets := make(map[uint64]float64, len(edges))
	for _, e := range edges {
		length, err := metric.ResolvedSquaredLength(e, top.VertexList(), m)
		if err != nil && !errors.Is(err, metric.ErrNoCoordinatesForMetric) && !errors.Is(err, metric.ErrCoordinateFree) {
			return err
		}
		if err != nil {
			length = 1
		}
		targets[e.ID] = length
	}

	rnd := rand.New(rand.NewSource(1))
	coords := make(map[uint64]*mat.VecDense, len(vertices))
	for _, v := range vertices {
		vec := mat.NewVecDense(dim, nil)
		vec.SetVec(0, float64(v.Time))
		for k := 1; k < dim; k++ {
			vec.SetVec(k, rnd.Float64())
		}
		coords[v.ID] = vec
	}

	for iter := 0; iter < maxIters; iter++ {
		grad := make(map[uint64]*mat.VecDense, len(vertices))
		for id := range coords {
			grad[id] = mat.NewVecDense(dim, nil)
		}

		for _, e := range edges {
			a, aok := coords[e.Source]
			b, bok := coords[e.Target]
			if !aok || !bok {
				continue
			}
			target := targets[e.ID]

			var squared float64
			diff := make([]float64, dim)
			for k := 0; k < dim; k++ {
				diff[k] = a.AtVec(k) - b.AtVec(k)
				squared += sig[k] * diff[k] * diff[k]
			}
			residual := squared - target

			ga, gb := grad[e.Source], grad[e.Target]
			for k := 1; k < dim; k++ {
				contribution := 4 * sig[k] * diff[k] * residual
				ga.SetVec(k, ga.AtVec(k)+contribution)
				gb.SetVec(k, gb.AtVec(k)-contribution)
			}
		}

		var norm float64
		flat := make([]float64, 0, len(vertices)*dim)
		for _, g := range grad {
			for k := 0; k < dim; k++ {
				flat = append(flat, g.AtVec(k))
			}
		}
		norm = floats.Norm(flat, 2)
		if norm < epsilon {
			break
		}

		for id, c := range coords {
			g := grad[id]
			for k := 1; k < dim; k++ {
				c.SetVec(k, c.AtVec(k)-learningRate*g.AtVec(k))
			}
		}
	}

	for _, v := range vertices {
		c := coords[v.ID]
		out := make([]float64, dim)
		for k := 0; k < dim; k++ {
			out[k] = c.AtVec(k)
		}
		if err := top.SetCoordinates(v.ID, out); err != nil {
			return err
		}
	}
	return nil
}
