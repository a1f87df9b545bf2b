//go:build arm64

package hwlm

import "golang.org/x/sys/cpu"

// CPU feature flags, read once at package initialization.
var (
	// x86-only features, always false on arm64.
	hasAVX512VBMI = false
	hasAVX512     = false
	hasAVX2       = false
	hasSSE42      = false
	hasPOPCNT     = false
	hasSSSE3      = false

	hasNEON = cpu.ARM64.HasASIMD
	hasSVE  = cpu.ARM64.HasSVE
	// golang.org/x/sys/cpu has no SVE2 detection field as of this
	// module's dependency version; SVE2 is treated as never present
	// until that lands, which only costs falling back one precedence
	// step to plain SVE (still TierVector32, see tier.go).
	hasSVE2 = false
)
