package spacetime

import (
	"github.com/meshweave/cdt/core"
	"github.com/meshweave/cdt/simplex"
)

// CausallyAttachFaces identifies left and right, two facets from distinct
// top simplices, as the same face: every vertex of left is merged into
// its paired vertex of right (right's side survives, matching the
// convention that the already-indexed side of the complex keeps its
// identity), their incident edges are redirected or merged, and the two
// Face records themselves are unified so the surviving facet accumulates
// both top simplices as cofaces.
//
// A precondition violation (mismatched dimension or orientation, or
// overlapping vertex sets) is reported as an error with no mutation. A
// violation discovered only once substitution is under way — a vertex
// merge that would collapse two edges into an incompatible duplicate, or
// force a self-loop — rolls the whole transaction back and reports
// (nil, false, nil), letting a driver retry with a different pairing
// instead of treating it as fatal.
func (st *Spacetime) CausallyAttachFaces(left, right *simplex.Face) (*simplex.Face, bool, error) {
	if left.ID == right.ID {
		return nil, false, simplex.ErrNoOrientationPreservingMatch
	}
	pairing, err := left.GetVerticesWithParityTo(right)
	if err != nil {
		return nil, false, err
	}
	return st.attachWithPairing(left, right, pairing)
}

// AttachAtVertices is the lower-level variant of CausallyAttachFaces: the
// caller supplies the vertex pairing directly instead of having it derived
// from orientation. survivorIsRight selects which side of the pairing
// keeps its vertex identities; CausallyAttachFaces always keeps right's.
// Both run the same staged substitution.
func (st *Spacetime) AttachAtVertices(left, right *simplex.Face, pairing [][2]uint64, survivorIsRight bool) (*simplex.Face, error) {
	if !survivorIsRight {
		flipped := make([][2]uint64, len(pairing))
		for k, p := range pairing {
			flipped[k] = [2]uint64{p[1], p[0]}
		}
		pairing = flipped
		left, right = right, left
	}

	if !isBijection(pairing, left, right) {
		return nil, ErrInconsistentPairing
	}

	updated, ok, err := st.attachWithPairing(left, right, pairing)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, simplex.ErrAttachWouldDuplicateEdge
	}
	return updated, nil
}

func isBijection(pairing [][2]uint64, left, right *simplex.Face) bool {
	if len(pairing) != len(left.Vertices) || len(pairing) != len(right.Vertices) {
		return false
	}
	seenLeft := make(map[uint64]struct{}, len(pairing))
	seenRight := make(map[uint64]struct{}, len(pairing))
	for _, p := range pairing {
		if _, ok := left.VertexIndex[p[0]]; !ok {
			return false
		}
		if _, ok := right.VertexIndex[p[1]]; !ok {
			return false
		}
		seenLeft[p[0]] = struct{}{}
		seenRight[p[1]] = struct{}{}
	}
	return len(seenLeft) == len(pairing) && len(seenRight) == len(pairing)
}

type redirectPlan struct {
	edgeID    uint64
	newSource uint64
	newTarget uint64
	mergeInto uint64
}

// attachWithPairing performs the actual staged substitution described by
// pairing: pairing[k] = {victim, survivor}.
func (st *Spacetime) attachWithPairing(left, right *simplex.Face, pairing [][2]uint64) (*simplex.Face, bool, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.muFaces.Lock()
	defer st.muFaces.Unlock()

	substitute := make(map[uint64]uint64, len(pairing))
	victims := make([]uint64, 0, len(pairing))
	for _, p := range pairing {
		victim, survivor := p[0], p[1]
		if victim == survivor {
			continue
		}
		substitute[victim] = survivor
		victims = append(victims, victim)
	}

	// Stage 1: plan every incident edge's redirect or merge without mutating.
	incident := make(map[uint64]struct{})
	for _, victim := range victims {
		v, err := st.vertices.Get(victim)
		if err != nil {
			return nil, false, err
		}
		for id := range v.InEdges() {
			incident[id] = struct{}{}
		}
		for id := range v.OutEdges() {
			incident[id] = struct{}{}
		}
	}

	// Stage 1b: pre-validate that Stage 4's LocalAttach calls will all
	// succeed, before Stage 2 commits anything. LocalAttach only ever
	// fails when the face already mentions both the victim and its
	// survivor (ErrAttachWouldDuplicateEdge); that is a pure read over
	// facesByVertex[victim], which Stage 2/3 never touch, so checking it
	// here and bailing out before any mutation keeps the transaction
	// all-or-nothing.
	for _, victim := range victims {
		survivor := substitute[victim]
		for id := range st.facesByVertex[victim] {
			f := st.faces[id]
			if f == nil {
				continue
			}
			if _, already := f.VertexIndex[survivor]; already {
				return nil, false, nil
			}
		}
	}

	plans := make([]redirectPlan, 0, len(incident))
	plannedFingerprints := make(map[core.Fingerprint]uint64)
	for id := range incident {
		e, err := st.edges.Get(id)
		if err != nil {
			return nil, false, err
		}
		src, tgt := e.Source, e.Target
		if mapped, ok := substitute[src]; ok {
			src = mapped
		}
		if mapped, ok := substitute[tgt]; ok {
			tgt = mapped
		}
		if src == tgt {
			return nil, false, nil
		}

		newFP := core.NewEdge(0, src, tgt).Fingerprint()
		plan := redirectPlan{edgeID: e.ID, newSource: src, newTarget: tgt}

		if existing, ok := st.edges.GetByFingerprint(newFP); ok && existing.ID != e.ID {
			if existing.HasLength && e.HasLength && existing.SquaredLength != e.SquaredLength {
				return nil, false, nil
			}
			plan.mergeInto = existing.ID
		} else if plannedTo, ok := plannedFingerprints[newFP]; ok && plannedTo != e.ID {
			// Two edges in this same batch are both being redirected onto
			// the same new fingerprint: merge the second into the first.
			plan.mergeInto = plannedTo
		} else {
			plannedFingerprints[newFP] = e.ID
		}
		plans = append(plans, plan)
	}

	// Stage 2: commit edge redirects and merges.
	for _, plan := range plans {
		e, _ := st.edges.Get(plan.edgeID)
		if plan.mergeInto != 0 {
			st.mergeEdgeLocked(e.ID, plan.mergeInto)
			continue
		}
		old := e.Fingerprint()
		e.Redirect(plan.newSource, plan.newTarget)
		_ = st.edges.Reindex(e, old)
	}

	// Stage 3: move vertex adjacency-set membership from victim to survivor.
	for _, victim := range victims {
		survivor := substitute[victim]
		_ = st.moveInEdgesFromVertexLocked(victim, survivor)
		_ = st.moveOutEdgesFromVertexLocked(victim, survivor)
	}

	// Stage 4: propagate the vertex substitution to every face that
	// mentions a victim (facets, cofaces, and left/right themselves).
	for _, victim := range victims {
		survivor := substitute[victim]
		faceIDs := make([]uint64, 0, len(st.facesByVertex[victim]))
		for id := range st.facesByVertex[victim] {
			faceIDs = append(faceIDs, id)
		}
		for _, id := range faceIDs {
			f := st.faces[id]
			if f == nil {
				continue
			}
			// Stage 1b already ruled out every case where this could fail;
			// the check is kept as a defensive invariant, not a rollback
			// path, since Stages 2-3 have already committed by this point.
			if err := f.LocalAttach(victim, survivor); err != nil {
				return nil, false, err
			}
			set, ok := st.facesByVertex[survivor]
			if !ok {
				set = make(map[uint64]struct{})
				st.facesByVertex[survivor] = set
			}
			set[id] = struct{}{}
		}
		delete(st.facesByVertex, victim)
	}

	// Stage 5: retire victim vertices now that nothing references them.
	for _, victim := range victims {
		st.vertices.Remove(victim)
		st.dsu.union(substitute[victim], victim)
	}

	// Stage 6: unify the left/right Face records. Right's id survives;
	// every top simplex that had left as a facet is repointed at right.
	right.CofaceIDs = append(right.CofaceIDs, left.CofaceIDs...)
	for _, parentID := range left.CofaceIDs {
		parent, ok := st.faces[parentID]
		if !ok {
			continue
		}
		for k, id := range parent.FacetIDs {
			if id == left.ID {
				parent.FacetIDs[k] = right.ID
			}
		}
	}
	st.retireFaceLocked(left.ID)
	// right.Vertices now equal left.Vertices after substitution; register
	// right under every one of them so later lookups find it from any side.
	for _, v := range right.Vertices {
		s, ok := st.facesByVertex[v]
		if !ok {
			s = make(map[uint64]struct{})
			st.facesByVertex[v] = s
		}
		s[right.ID] = struct{}{}
	}

	return right, true, nil
}

// mergeEdgeLocked discards edge oldID, having determined it now collides
// with survivorID's fingerprint, repointing every face that referenced it.
func (st *Spacetime) mergeEdgeLocked(oldID, survivorID uint64) {
	faceIDs := make([]uint64, 0, len(st.facesByEdge[oldID]))
	for id := range st.facesByEdge[oldID] {
		faceIDs = append(faceIDs, id)
	}
	for _, id := range faceIDs {
		if f := st.faces[id]; f != nil {
			f.RemapEdge(oldID, survivorID)
		}
		set, ok := st.facesByEdge[survivorID]
		if !ok {
			set = make(map[uint64]struct{})
			st.facesByEdge[survivorID] = set
		}
		set[id] = struct{}{}
	}
	delete(st.facesByEdge, oldID)

	if e, err := st.edges.Get(oldID); err == nil {
		if sv, err := st.vertices.Get(e.Source); err == nil {
			sv.RemoveOutEdge(oldID)
		}
		if tv, err := st.vertices.Get(e.Target); err == nil {
			tv.RemoveInEdge(oldID)
		}
	}
	st.edges.Remove(oldID)
}

// moveInEdgesFromVertexLocked reparents every remaining in-edge id listed
// under "from" onto "to".
func (st *Spacetime) moveInEdgesFromVertexLocked(from, to uint64) error {
	fv, err := st.vertices.Get(from)
	if err != nil {
		return err
	}
	tv, err := st.vertices.Get(to)
	if err != nil {
		return err
	}
	for id := range fv.InEdges() {
		tv.AddInEdge(id)
		fv.RemoveInEdge(id)
	}
	return nil
}

// moveOutEdgesFromVertexLocked reparents every remaining out-edge id
// listed under "from" onto "to".
func (st *Spacetime) moveOutEdgesFromVertexLocked(from, to uint64) error {
	fv, err := st.vertices.Get(from)
	if err != nil {
		return err
	}
	tv, err := st.vertices.Get(to)
	if err != nil {
		return err
	}
	for id := range fv.OutEdges() {
		tv.AddOutEdge(id)
		fv.RemoveOutEdge(id)
	}
	return nil
}
