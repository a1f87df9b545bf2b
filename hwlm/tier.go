package hwlm

// Tier identifies which vector-width implementation a dispatched scanner
// was bound to. Three tiers are real and independently testable in this
// port (all plain Go; no hand-written assembly is used):
//
//   - TierScalar: byte-at-a-time, the universal correctness reference and
//     the fallback on any host without a faster tier bound.
//   - TierVector16: block-at-a-time using vector.Vec16.
//   - TierVector32: block-at-a-time using vector.Vec32.
type Tier uint8

const (
	TierScalar Tier = iota
	TierVector16
	TierVector32
)

// String returns the tier's conventional name.
func (t Tier) String() string {
	switch t {
	case TierScalar:
		return "scalar"
	case TierVector16:
		return "vector16"
	case TierVector32:
		return "vector32"
	default:
		return "tier(?)"
	}
}

// resolveTier applies the precedence spec.md §4.8 specifies:
//
//	x86:     AVX512-VBMI > AVX512 > AVX2 > SSE4.2+POPCNT > SSSE3 > error
//	AArch64: SVE2 > SVE > NEON > error
//
// collapsed onto the three tiers this port implements: the wide x86
// specialisations and SVE/SVE2 both land on TierVector32 (256-bit-class
// width), SSE4.2+POPCNT/SSSE3 and NEON both land on TierVector16
// (128-bit-class width), and "error" becomes TierScalar — a working
// fallback rather than the spec's HS_ARCH_ERROR function, since a pure-Go
// scalar loop is always correct and always available.
func resolveTier() Tier {
	switch {
	case CheckAVX512VBMI():
		return TierVector32
	case CheckAVX512():
		return TierVector32
	case CheckAVX2():
		return TierVector32
	case CheckSSE42() && CheckPOPCNT():
		return TierVector16
	case CheckSSSE3():
		return TierVector16
	case CheckSVE2():
		return TierVector32
	case CheckSVE():
		return TierVector32
	case CheckNEON():
		return TierVector16
	default:
		return TierScalar
	}
}
