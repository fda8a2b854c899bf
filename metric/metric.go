package metric

import "fmt"

// Metric pairs a Signature with a coordinate-free flag. A coordinate-free
// metric carries a signature for bookkeeping (e.g. recording what
// signature a spacetime was built under) but refuses to compute an
// actual squared length, since no embedding is expected to exist.
type Metric struct {
	coordinateFree bool
	signature      Signature
}

// Option configures a Metric at construction time.
type Option func(*Metric)

// WithCoordinateFree marks the metric as refusing SquaredLength calls.
func WithCoordinateFree(free bool) Option {
	return func(m *Metric) { m.coordinateFree = free }
}

// New builds a Metric from a Signature, defaulting to coordinate-backed.
func New(sig Signature, opts ...Option) *Metric {
	m := &Metric{signature: sig}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Signature returns the metric's signature.
func (m *Metric) Signature() Signature { return m.signature }

// CoordinateFree reports whether this metric refuses to compute lengths.
func (m *Metric) CoordinateFree() bool { return m.coordinateFree }

// SquaredLength computes sum(sig[k] * (a[k]-b[k])^2) over the signature's
// diagonal. It returns ErrCoordinateFree if the metric was built
// coordinate-free, and ErrDimensionMismatch if a, b, or the signature
// disagree in length.
func (m *Metric) SquaredLength(a, b []float64) (float64, error) {
	if m.coordinateFree {
		return 0, ErrCoordinateFree
	}
	diag := m.signature.diagonal
	if len(a) != len(diag) || len(b) != len(diag) {
		return 0, fmt.Errorf("metric: a has %d coords, b has %d, signature has %d: %w",
			len(a), len(b), len(diag), ErrDimensionMismatch)
	}

	var total float64
	for k := range diag {
		d := a[k] - b[k]
		total += diag[k] * d * d
	}
	return total, nil
}
