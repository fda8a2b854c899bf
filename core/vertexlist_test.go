package core_test

import (
	"errors"
	"testing"

	"github.com/meshweave/cdt/core"
)

func TestVertexList_AddGetRemove(t *testing.T) {
	vl := core.NewVertexList()
	v1 := core.NewVertex(1, 0)
	v2 := core.NewVertex(2, 1)

	if err := vl.Add(v1); err != nil {
		t.Fatalf("Add(v1) returned %v", err)
	}
	if err := vl.Add(v2); err != nil {
		t.Fatalf("Add(v2) returned %v", err)
	}
	if vl.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", vl.Size())
	}

	// Re-adding the same object is a no-op.
	if err := vl.Add(v1); err != nil {
		t.Fatalf("Add(v1) again returned %v, want nil", err)
	}

	// A distinct object under an id already in use is rejected.
	dup := core.NewVertex(1, 0)
	if err := vl.Add(dup); !errors.Is(err, core.ErrIDInUse) {
		t.Fatalf("Add(dup) = %v, want ErrIDInUse", err)
	}

	ids := vl.ToVector()
	if len(ids) != 2 || ids[0].ID != 1 || ids[1].ID != 2 {
		t.Fatalf("ToVector() = %v, want insertion order [1,2]", ids)
	}

	vl.Remove(1)
	if vl.Has(1) {
		t.Fatalf("Has(1) true after Remove")
	}
	if _, err := vl.Get(1); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Get(1) after Remove = %v, want ErrVertexNotFound", err)
	}
	if vl.Size() != 1 {
		t.Fatalf("Size() after Remove = %d, want 1", vl.Size())
	}
}
