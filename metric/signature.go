package metric

// SignatureType selects the sign convention for a Signature's leading
// (time) component.
type SignatureType int

const (
	// Lorentzian gives the first diagonal entry -1 and every other entry
	// +1: a mostly-plus time-oriented signature.
	Lorentzian SignatureType = iota
	// Euclidean gives every diagonal entry +1.
	Euclidean
)

// Signature is a diagonal metric signature of fixed dimension.
type Signature struct {
	dim      int
	typ      SignatureType
	diagonal []float64
}

// NewSignature builds a Signature of the given dimension and type. dim
// must be at least 1.
func NewSignature(dim int, typ SignatureType) Signature {
	diag := make([]float64, dim)
	for k := range diag {
		diag[k] = 1
	}
	if typ == Lorentzian && dim > 0 {
		diag[0] = -1
	}
	return Signature{dim: dim, typ: typ, diagonal: diag}
}

// Dim reports the signature's dimension.
func (s Signature) Dim() int { return s.dim }

// Type reports the signature's type.
func (s Signature) Type() SignatureType { return s.typ }

// Diagonal returns the diagonal entries, e.g. [-1, 1, 1, 1] for a
// 4-dimensional Lorentzian signature.
func (s Signature) Diagonal() []float64 {
	return append([]float64(nil), s.diagonal...)
}
