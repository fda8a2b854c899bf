// Package spacetime assembles core vertices/edges and simplex faces into
// a causal dynamical triangulation: a growing complex of simplices glued
// together face-to-face under an orientation-preserving identification.
// It owns every id allocator, the face arena, the connected-component
// tracker, and the active metric, and is the only package that mutates
// more than one simplex.Face at a time.
package spacetime
