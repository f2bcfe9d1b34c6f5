package utils

import "testing"

func TestAdjustAxisToRank(t *testing.T) {
	got, err := AdjustAxisToRank(2, 3)
	if err != nil || got != 2 {
		t.Errorf("AdjustAxisToRank(2, 3) = (%d, %v), want (2, nil)", got, err)
	}
	got, err = AdjustAxisToRank(-1, 3)
	if err != nil || got != 2 {
		t.Errorf("AdjustAxisToRank(-1, 3) = (%d, %v), want (2, nil)", got, err)
	}
	if _, err := AdjustAxisToRank(3, 3); err == nil {
		t.Error("expected error for AdjustAxisToRank(3, 3)")
	}
	if _, err := AdjustAxisToRank(-4, 3); err == nil {
		t.Error("expected error for AdjustAxisToRank(-4, 3)")
	}
}

func TestRowMajorStrides(t *testing.T) {
	strides := RowMajorStrides([]int{32, 50, 79})
	want := []int{50 * 79, 79, 1}
	for i, s := range strides {
		if s != want[i] {
			t.Errorf("strides[%d] = %d, want %d", i, s, want[i])
		}
	}
	if got := RowMajorStrides(nil); len(got) != 0 {
		t.Errorf("RowMajorStrides(nil) = %v, want empty", got)
	}
}

func TestProduct(t *testing.T) {
	if p := Product([]int{4, 3, 2}); p != 24 {
		t.Errorf("Product([4,3,2]) = %d, want 24", p)
	}
	if p := Product(nil); p != 1 {
		t.Errorf("Product(nil) = %d, want 1", p)
	}
}
