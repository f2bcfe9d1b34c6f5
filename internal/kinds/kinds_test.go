package kinds

import "testing"

func TestString(t *testing.T) {
	if got := MaxAndArgMax.String(); got != "MaxAndArgMax" {
		t.Errorf("MaxAndArgMax.String() = %q, want %q", got, "MaxAndArgMax")
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q, want %q", got, "Kind(99)")
	}
}

func TestKindString(t *testing.T) {
	k, err := KindString("ProdNZ")
	if err != nil || k != ProdNZ {
		t.Errorf("KindString(%q) = (%v, %v), want (%v, nil)", "ProdNZ", k, err, ProdNZ)
	}
	if _, err := KindString("Bogus"); err == nil {
		t.Error("expected error for KindString(\"Bogus\")")
	}
}

func TestPredicates(t *testing.T) {
	for _, k := range []Kind{ArgMax, ArgMin, MaxAndArgMax, MinAndArgMin} {
		if !k.TracksArg() {
			t.Errorf("%s.TracksArg() = false, want true", k)
		}
	}
	for _, k := range []Kind{Max, Min, Sum, Prod, ProdNZ, And, Or, Xor, Any, All} {
		if k.TracksArg() {
			t.Errorf("%s.TracksArg() = true, want false", k)
		}
	}
	if ArgMax.HasValueOutput() || ArgMin.HasValueOutput() {
		t.Error("ArgMax/ArgMin should not have a value output")
	}
	if !MaxAndArgMax.HasValueOutput() || !Sum.HasValueOutput() {
		t.Error("MaxAndArgMax/Sum should have a value output")
	}
	for _, k := range []Kind{And, Or, Xor, Any, All} {
		if !k.IsBitwise() {
			t.Errorf("%s.IsBitwise() = false, want true", k)
		}
	}
	if Sum.IsBitwise() {
		t.Error("Sum.IsBitwise() = true, want false")
	}
}
