// Package metric computes squared lengths between vertex coordinates
// under a diagonal Lorentzian or Euclidean signature, or refuses to when
// configured coordinate-free.
package metric
