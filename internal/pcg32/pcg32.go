// Package pcg32 is a bit-for-bit reimplementation of the PCG-XSH-RR-64/32
// generator used by the original test harness to seed reduction inputs
// (original_source/tests/check_reduction.c). It exists purely so this
// module's own tests can reproduce the same input tensors the original
// project's kernel tests were checked against; it has no role in the
// reduction engine itself, so it carries no third-party dependency of its
// own -- the generator is a fixed, tiny arithmetic recurrence, not a
// general-purpose RNG, and math/rand/v2's PCG variant does not produce the
// same stream.
package pcg32

// multiplier and addend are the LCG constants PCG-XSH-RR-64/32 uses to
// advance its 64-bit state. Must match the original bit-for-bit.
const (
	multiplier uint64 = 6364136223846793005
	addend     uint64 = 1442695040888963407
)

// Rand is a PCG-XSH-RR-64/32 generator. The zero value has state 0, which
// is not the same stream as Seed(1); use New or Seed to pick a seed.
type Rand struct {
	state uint64
}

// New returns a generator seeded with seed.
func New(seed uint64) *Rand {
	r := &Rand{}
	r.Seed(seed)
	return r
}

// Seed resets the generator's state.
func (r *Rand) Seed(seed uint64) {
	r.state = seed
}

func ror32(x uint32, n uint32) uint32 {
	n &= 0x1F
	if n == 0 {
		return x
	}
	return x>>n | x<<(32-n)
}

// Uint32 advances the generator and returns its next 32-bit output.
func (r *Rand) Uint32() uint32 {
	r.state = r.state*multiplier + addend

	// An unbalanced Feistel round blinding the underlying LCG state: the
	// rightmost 59 bits are xorshifted by 18, and the leftmost 5 bits pick
	// a rotation of bits 58:27.
	return ror32(uint32((r.state^(r.state>>18))>>27), uint32(r.state>>59))
}

// Float64 draws two Uint32 outputs and combines them into a value in
// [0, 1), matching the original harness's pcgRand01.
func (r *Rand) Float64() float64 {
	u, l := uint64(r.Uint32()), uint64(r.Uint32())
	x := u<<32 | l
	return float64(x) / 18446744073709551616.0
}
