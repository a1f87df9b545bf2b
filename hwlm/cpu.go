package hwlm

// DisableAVX512 and DisableAVX512VBMI are the two compile-time
// kill-switches spec.md §6 requires. Go has no user-toggleable
// compile-time constant short of build tags, so these are read-once
// package vars: set them in an init() before the first scan call and
// they take effect at dispatch-resolution time, which is the same "first
// use" timing the spec already implies.
var (
	DisableAVX512     bool
	DisableAVX512VBMI bool
)

// CheckAVX512VBMI reports whether the host supports AVX-512 VBMI and it
// has not been disabled by either kill-switch.
func CheckAVX512VBMI() bool {
	return hasAVX512VBMI && !DisableAVX512VBMI && !DisableAVX512
}

// CheckAVX512 reports whether the host supports AVX-512F and it has not
// been disabled.
func CheckAVX512() bool {
	return hasAVX512 && !DisableAVX512
}

// CheckAVX2 reports whether the host supports AVX2.
func CheckAVX2() bool { return hasAVX2 }

// CheckSSE42 reports whether the host supports SSE4.2.
func CheckSSE42() bool { return hasSSE42 }

// CheckPOPCNT reports whether the host supports the POPCNT instruction.
func CheckPOPCNT() bool { return hasPOPCNT }

// CheckSSSE3 reports whether the host supports SSSE3.
func CheckSSSE3() bool { return hasSSSE3 }

// CheckSVE2 reports whether the host supports SVE2.
func CheckSVE2() bool { return hasSVE2 }

// CheckSVE reports whether the host supports SVE.
func CheckSVE() bool { return hasSVE }

// CheckNEON reports whether the host supports NEON (ASIMD).
func CheckNEON() bool { return hasNEON }
