// Package vector is the fixed-width SIMD value abstraction the hwlm
// scanners are built on: Vec16 (16 bytes, SSE/NEON width), Vec32 (32 bytes,
// AVX2/SVE-256 width) and Vec64 (64 bytes, AVX-512/SVE-512 width).
//
// Every type is a plain, comparable, copyable value — a fixed-size byte
// array wrapped in a struct — with no heap allocation anywhere in this
// package. There is no hardware intrinsic or assembly underneath: each
// operation is defined by its semantic contract (see the doc comment on
// each method) and implemented directly in Go, the same way vectorscan's
// own "simde" portability layer emulates its SuperVector<S> abstraction in
// plain C for targets without a native vector unit. Real hardware
// specialization happens one layer up, in the hwlm package's dispatcher,
// which chooses which width to scan with — it never needs a different
// *semantic* implementation of AndNot or Pshufb per architecture, only a
// different block width.
package vector

// MaskWidth reports how many bits of a compare-mask correspond to one
// input byte: 1 on architectures with a native byte-wise compare-to-mask
// instruction (x86 pmovmskb, AVX-512 k-mask), or 2 on architectures that
// only expose a wider-lane movemask and must duplicate each bit (ARM
// NEON, emulated here by CompareMaskWide). See IterationMask.
type MaskWidth int

const (
	// MaskWidthNarrow is the 1-bit-per-byte compare-mask convention.
	MaskWidthNarrow MaskWidth = 1
	// MaskWidthWide is the 2-bit-per-byte compare-mask convention used to
	// model the ARM NEON movemask-widening quirk noted in spec §9.
	MaskWidthWide MaskWidth = 2
)

// IterationMask adjusts a compare-mask so that callers can iterate set
// bits uniformly with ctz/clz regardless of which width produced it: in
// wide mode every odd bit is a duplicate of the even bit below it and is
// cleared, so bit index / width always yields the original byte index.
func IterationMask(mask uint64, width MaskWidth) uint64 {
	if width == MaskWidthNarrow {
		return mask
	}
	return mask & 0x5555555555555555 // keep only even bits (0,2,4,...)
}
