package utils

import "testing"

// TestSetAxisMembership exercises Set the way reduceplan.NewPlan actually
// uses it: accumulating the normalized reduction axes of a rank-5 source
// one at a time and checking duplicate/retained-axis membership as it goes.
func TestSetAxisMembership(t *testing.T) {
	const rank = 5
	seen := MakeSet[int](3)
	if len(seen) != 0 {
		t.Errorf("len(seen) = %d, want 0", len(seen))
	}

	for _, axis := range []int{0, 3, 4} {
		if seen.Has(axis) {
			t.Errorf("seen.Has(%d) = true before insertion", axis)
		}
		seen.Insert(axis)
		if !seen.Has(axis) {
			t.Errorf("seen.Has(%d) = false after insertion", axis)
		}
	}
	if len(seen) != 3 {
		t.Errorf("len(seen) = %d, want 3", len(seen))
	}

	var retained []int
	for ax := 0; ax < rank; ax++ {
		if !seen.Has(ax) {
			retained = append(retained, ax)
		}
	}
	want := []int{1, 2}
	if len(retained) != len(want) {
		t.Fatalf("retained = %v, want %v", retained, want)
	}
	for i, ax := range retained {
		if ax != want[i] {
			t.Errorf("retained[%d] = %d, want %d", i, ax, want[i])
		}
	}
}

// TestSetInsertVariadic checks that Insert accepts several elements at once
// and that a repeated element is stored only once.
func TestSetInsertVariadic(t *testing.T) {
	s := MakeSet[int](0)
	s.Insert(2, 0, 2)
	if len(s) != 2 {
		t.Errorf("len(s) = %d, want 2 (duplicate insert should not grow the set)", len(s))
	}
	if !s.Has(0) || !s.Has(2) {
		t.Error("expected s to contain both 0 and 2")
	}
	if s.Has(1) {
		t.Error("s.Has(1) = true, want false")
	}
}
