//go:build amd64

package hwlm

import "golang.org/x/sys/cpu"

// CPU feature flags, read once at package initialization. Dispatch
// resolution (tier.go) reads these once per dispatch cell (TruffleWideExec
// and RTruffleWideExec, which have none, read them on every call), the
// same pattern simd/memchr_amd64.go uses for hasAVX2.
var (
	hasAVX512VBMI = cpu.X86.HasAVX512VBMI
	hasAVX512     = cpu.X86.HasAVX512F
	hasAVX2       = cpu.X86.HasAVX2
	hasSSE42      = cpu.X86.HasSSE42
	hasPOPCNT     = cpu.X86.HasPOPCNT
	hasSSSE3      = cpu.X86.HasSSSE3

	// AArch64-only features, always false on amd64.
	hasSVE2 = false
	hasSVE  = false
	hasNEON = false
)
