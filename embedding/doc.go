// Package embedding places vertices of a causal triangulation into flat
// coordinate space by gradient descent: it treats every edge's resolved
// target squared length (see metric.ResolvedSquaredLength) as a spring
// rest-length and nudges vertex coordinates to minimize the sum of
// squared deviations, using gonum's dense vector/matrix types since the
// embedding dimension is chosen at call time rather than fixed at compile
// time.
package embedding
