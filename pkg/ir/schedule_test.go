package ir

import (
	"testing"
)

// ===================================================================
// Traversal Tests
// ===================================================================

func Test_Traversal_01(t *testing.T) {
	schedule := buildSharedFill()
	//
	checkTraversal(t, schedule, []string{"i", "j", "k", "m"})
}

func Test_Traversal_02(t *testing.T) {
	// Traversal is a pure function of the tree; repeated runs agree.
	schedule := buildSharedFill()
	first := traversalVars(schedule)
	//
	for n := 0; n < 10; n++ {
		second := traversalVars(schedule)
		//
		if len(first) != len(second) {
			t.Fatalf("traversal length changed between runs")
		}
		//
		for i := range first {
			if first[i] != second[i] {
				t.Errorf("traversal order changed at position %d: %s vs %s", i, first[i], second[i])
			}
		}
	}
}

func Test_Traversal_03(t *testing.T) {
	// An empty schedule has no loops.
	schedule := NewSchedule(NewBlock("empty"))
	//
	if len(schedule.Loops()) != 0 {
		t.Errorf("expected no loops in empty scope")
	}
}

// ===================================================================
// Scope Tests
// ===================================================================

func Test_Scope_01(t *testing.T) {
	schedule := buildSharedFill()
	loops := schedule.Loops()
	// i, j, k live in the root scope; m lives in the inner scope.
	root := schedule.Root()
	//
	for _, sl := range loops[:3] {
		if schedule.ScopeOf(sl.Loop) != root {
			t.Errorf("loop %q not scoped to root", sl.Loop.Var)
		}
	}
	//
	if inner := schedule.ScopeOf(loops[3].Loop); inner == root || inner == nil {
		t.Errorf("loop %q not scoped to inner block", loops[3].Loop.Var)
	}
}

func Test_Scope_02(t *testing.T) {
	schedule := buildSharedFill()
	// A loop from a different schedule has no scope here.
	if schedule.ScopeOf(NewLoop("q", 0, 8)) != nil {
		t.Errorf("foreign loop should have no scope")
	}
}

// ===================================================================
// Binding Tests
// ===================================================================

func Test_Bind_01(t *testing.T) {
	schedule := buildSharedFill()
	loop := schedule.Loops()[0].Loop
	//
	if err := schedule.Bind(loop, ThreadX); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if dim, ok := loop.Binding(); !ok || dim != ThreadX {
		t.Errorf("expected binding to %s", ThreadX)
	}
}

func Test_Bind_02(t *testing.T) {
	// Duplicate claim within one scope is rejected, not overwritten.
	schedule := buildSharedFill()
	loops := schedule.Loops()
	//
	if err := schedule.Bind(loops[0].Loop, ThreadX); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := schedule.Bind(loops[1].Loop, ThreadX); err == nil {
		t.Errorf("expected duplicate claim to be rejected")
	}
	// Original claim untouched.
	if dim, ok := loops[0].Loop.Binding(); !ok || dim != ThreadX {
		t.Errorf("original claim was disturbed")
	}
	//
	if _, ok := loops[1].Loop.Binding(); ok {
		t.Errorf("rejected bind must not attach")
	}
}

func Test_Bind_03(t *testing.T) {
	// Re-binding an already-bound loop is rejected.
	schedule := buildSharedFill()
	loop := schedule.Loops()[0].Loop
	//
	if err := schedule.Bind(loop, ThreadX); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := schedule.Bind(loop, ThreadY); err == nil {
		t.Errorf("expected re-bind to be rejected")
	}
}

func Test_Bind_04(t *testing.T) {
	// A loop outside the schedule cannot be bound.
	schedule := buildSharedFill()
	//
	if err := schedule.Bind(NewLoop("q", 0, 8), ThreadX); err == nil {
		t.Errorf("expected bind of foreign loop to be rejected")
	}
}

func Test_Bind_05(t *testing.T) {
	// An inner block opens a fresh claim pool, so the same dimension may be
	// claimed on both sides of the block boundary.
	schedule := buildSharedFill()
	loops := schedule.Loops()
	//
	if err := schedule.Bind(loops[0].Loop, ThreadX); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := schedule.Bind(loops[3].Loop, ThreadX); err != nil {
		t.Errorf("inner scope should have its own claim pool: %v", err)
	}
}

func Test_Bind_06(t *testing.T) {
	schedule := buildSharedFill()
	loops := schedule.Loops()
	//
	if err := schedule.Bind(loops[0].Loop, ThreadDim(7)); err == nil {
		t.Errorf("expected invalid dimension to be rejected")
	}
}

func Test_Unbind_01(t *testing.T) {
	schedule := buildSharedFill()
	loop := schedule.Loops()[0].Loop
	//
	if schedule.Unbind(loop) {
		t.Errorf("unbound loop reported a binding")
	}
	//
	if err := schedule.Bind(loop, ThreadY); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if !schedule.Unbind(loop) {
		t.Errorf("bound loop reported no binding")
	}
	//
	if _, ok := loop.Binding(); ok {
		t.Errorf("binding survived unbind")
	}
}

func Test_ClaimedDims_01(t *testing.T) {
	schedule := buildSharedFill()
	loops := schedule.Loops()
	//
	if err := schedule.Bind(loops[0].Loop, ThreadX); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	if err := schedule.Bind(loops[1].Loop, ThreadY); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	claimed := schedule.ClaimedDims(schedule.Root())
	//
	if len(claimed) != 2 || claimed[ThreadX] != loops[0].Loop || claimed[ThreadY] != loops[1].Loop {
		t.Errorf("unexpected claim set: %v", claimed)
	}
}

// ===================================================================
// Consistency Tests
// ===================================================================

func Test_Consistent_01(t *testing.T) {
	schedule := buildSharedFill()
	//
	if errs := schedule.Consistent(); len(errs) != 0 {
		t.Errorf("fresh schedule reported inconsistent: %v", errs)
	}
}

func Test_Consistent_02(t *testing.T) {
	// Fabricate a duplicate claim behind the API's back.
	schedule := buildSharedFill()
	loops := schedule.Loops()
	//
	loops[0].Loop.binding, loops[0].Loop.bound = ThreadX, true
	loops[1].Loop.binding, loops[1].Loop.bound = ThreadX, true
	//
	if errs := schedule.Consistent(); len(errs) == 0 {
		t.Errorf("duplicate claim not detected")
	}
}

func Test_Consistent_03(t *testing.T) {
	schedule := buildSharedFill()
	loop := schedule.Loops()[0].Loop
	//
	loop.binding, loop.bound = ThreadDim(9), true
	//
	if errs := schedule.Consistent(); len(errs) == 0 {
		t.Errorf("invalid dimension not detected")
	}
}

func Test_Consistent_04(t *testing.T) {
	schedule := &Schedule{}
	//
	if errs := schedule.Consistent(); len(errs) == 0 {
		t.Errorf("rootless schedule not detected")
	}
}

func Test_Consistent_05(t *testing.T) {
	schedule := buildSharedFill()
	schedule.Root().Loops = append(schedule.Root().Loops, nil)
	//
	if errs := schedule.Consistent(); len(errs) == 0 {
		t.Errorf("nil loop not detected")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// buildSharedFill constructs the canonical test nest: a root scope holding
// loops i and j (with k nested under j), plus an inner scope (under k)
// holding loop m.
//
//	block "fill"
//	  for i in [0, 128)
//	  for j in [0, 64)
//	    for k in [0, 32)
//	      block "stage"
//	        for m in [0, 16)
func buildSharedFill() *Schedule {
	m := NewLoop("m", 0, 16)
	k := NewLoop("k", 0, 32)
	k.Blocks = append(k.Blocks, NewBlock("stage", m))
	//
	j := NewLoop("j", 0, 64)
	j.Body = append(j.Body, k)
	//
	i := NewLoop("i", 0, 128)
	//
	return NewSchedule(NewBlock("fill", i, j))
}

func traversalVars(schedule *Schedule) []string {
	var vars []string
	//
	for _, sl := range schedule.Loops() {
		vars = append(vars, sl.Loop.Var)
	}
	//
	return vars
}

func checkTraversal(t *testing.T, schedule *Schedule, expected []string) {
	t.Helper()
	//
	actual := traversalVars(schedule)
	//
	if len(actual) != len(expected) {
		t.Fatalf("expected %d loops, found %d (%v)", len(expected), len(actual), actual)
	}
	//
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("position %d: expected %q, found %q", i, expected[i], actual[i])
		}
	}
}
