package hwlm

import (
	"testing"

	"github.com/coregx/hwlm/charclass"
)

// BenchmarkShufti measures ShuftiExec across a range of haystack sizes with
// a single rare hit near the end, the common "scan a long line for one of a
// handful of bytes" shape.
func BenchmarkShufti(b *testing.B) {
	mask, ok := charclass.BuildShuftiMask(charclass.NewFromBytes('\n', '\r', '\t'))
	if !ok {
		b.Fatal("whitespace-control class should fit shufti")
	}

	sizes := []int{256, 1024, 4096, 65536}
	for _, size := range sizes {
		haystack := make([]byte, size)
		for i := range haystack {
			haystack[i] = 'x'
		}
		haystack[size-1] = '\n'

		b.Run(sizeLabel(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = ShuftiExec(mask, haystack)
			}
		})
	}
}

// BenchmarkShuftiNoMatch covers the worst case for a single-byte-class scan:
// the hit never comes and every block runs to completion.
func BenchmarkShuftiNoMatch(b *testing.B) {
	mask, _ := charclass.BuildShuftiMask(charclass.NewFromBytes('\n', '\r', '\t'))
	haystack := make([]byte, 65536)
	for i := range haystack {
		haystack[i] = 'x'
	}

	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ShuftiExec(mask, haystack)
	}
}

// BenchmarkShuftiDouble measures the two-byte-class cross-block variant,
// which carries a match across vector-block boundaries.
func BenchmarkShuftiDouble(b *testing.B) {
	a, _ := charclass.BuildShuftiMask(charclass.NewFromBytes('\r'))
	c, _ := charclass.BuildShuftiMask(charclass.NewFromBytes('\n'))
	mask := charclass.ShuftiDoubleMask{A: a, B: c}

	haystack := make([]byte, 65536)
	for i := range haystack {
		haystack[i] = 'x'
	}
	haystack[len(haystack)-2] = '\r'
	haystack[len(haystack)-1] = '\n'

	b.SetBytes(int64(len(haystack)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ShuftiDoubleExec(mask, haystack)
	}
}

func sizeLabel(size int) string {
	switch {
	case size < 1024:
		return "256B"
	case size < 4096:
		return "1KB"
	case size < 65536:
		return "4KB"
	default:
		return "64KB"
	}
}
