package metric

import "github.com/meshweave/cdt/core"

// ResolvedSquaredLength returns the authoritative squared length for e:
// if both of e's endpoints carry coordinates, it recomputes the length
// from them under m; otherwise it falls back to e's cached
// SquaredLength. It returns ErrNoCoordinatesForMetric if neither source
// is available.
func ResolvedSquaredLength(e *core.Edge, vl *core.VertexList, m *Metric) (float64, error) {
	src, srcErr := vl.Get(e.Source)
	tgt, tgtErr := vl.Get(e.Target)
	if srcErr == nil && tgtErr == nil {
		sc, tc := src.GetCoordinates(), tgt.GetCoordinates()
		if len(sc) > 0 && len(tc) > 0 {
			return m.SquaredLength(sc, tc)
		}
	}
	if e.HasLength {
		return e.SquaredLength, nil
	}
	return 0, ErrNoCoordinatesForMetric
}
