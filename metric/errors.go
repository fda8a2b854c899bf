package metric

import "errors"

var (
	// ErrCoordinateFree is returned by Metric.SquaredLength when the
	// metric was built coordinate-free: it tracks a signature for
	// bookkeeping but refuses to compute an actual length.
	ErrCoordinateFree = errors.New("metric: coordinate-free metric cannot compute a squared length")

	// ErrDimensionMismatch is returned when two coordinate slices, or a
	// coordinate slice and the signature's dimension, disagree in length.
	ErrDimensionMismatch = errors.New("metric: dimension mismatch")

	// ErrNoCoordinatesForMetric is returned by ResolvedSquaredLength when
	// an edge's endpoints carry no coordinates and the edge itself has no
	// cached squared length to fall back on.
	ErrNoCoordinatesForMetric = errors.New("metric: no coordinates or cached length available")
)
