package dtype

import "testing"

func TestByteWidth(t *testing.T) {
	cases := map[DType]int{Float32: 4, Uint32: 4, Size: 8, Float16: 2, Invalid: 0}
	for d, want := range cases {
		if got := d.ByteWidth(); got != want {
			t.Errorf("%s.ByteWidth() = %d, want %d", d, got, want)
		}
	}
}

func TestIsIntegerIsFloat(t *testing.T) {
	if !Uint32.IsInteger() || !Size.IsInteger() {
		t.Error("Uint32/Size should be integer dtypes")
	}
	if Float32.IsInteger() {
		t.Error("Float32 should not be an integer dtype")
	}
	if !Float32.IsFloat() || !Float16.IsFloat() {
		t.Error("Float32/Float16 should be float dtypes")
	}
	if Uint32.IsFloat() {
		t.Error("Uint32 should not be a float dtype")
	}
}

func TestFloat16RoundTrip(t *testing.T) {
	bits := Float32ToFloat16(1.5)
	if got := Float16ToFloat32(bits); got != 1.5 {
		t.Errorf("round trip of 1.5 through Float16 = %v, want 1.5", got)
	}
}

func TestString(t *testing.T) {
	if got := Float32.String(); got != "Float32" {
		t.Errorf("Float32.String() = %q, want %q", got, "Float32")
	}
}
