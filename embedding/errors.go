package embedding

import "errors"

// ErrEmptyComplex is returned by Embed when the topology has no vertices
// to place.
var ErrEmptyComplex = errors.New("embedding: complex has no vertices to embed")
