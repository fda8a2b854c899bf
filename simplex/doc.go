// Package simplex defines the Face type — the simplex/facet record shared
// by top-dimensional simplices and their sub-simplices — together with
// parity comparison (checking when two faces are "the same up to vertex
// relabeling") and the local half of causal gluing's vertex substitution.
//
// A Face never holds a strong reference to another Face. Facets and
// cofaces are stored as ids; resolving them requires a Resolver, normally
// backed by the face arena that package spacetime owns. This mirrors the
// "arena + id" guidance for the vertex/edge/face/coface cycle: the owning
// arena holds the only strong references, and every traversal re-resolves
// ids instead of following a pointer that could have been invalidated by a
// merge.
package simplex
