package simplex_test

import "github.com/meshweave/cdt/simplex"

// mapResolver is a minimal simplex.Resolver backed by a plain map, used so
// face/validate/attach tests don't need a full spacetime.Spacetime.
type mapResolver map[uint64]*simplex.Face

func (m mapResolver) Face(id uint64) (*simplex.Face, bool) {
	f, ok := m[id]
	return f, ok
}
