package hwlm

import (
	"github.com/coregx/hwlm/internal/bitutils"
	"github.com/coregx/hwlm/vector"
)

type vermExecFunc func(c byte, nocase bool, buf []byte) int
type vermDoubleExecFunc func(c1, c2 byte, nocase bool, buf []byte) int
type vermDoubleMaskedExecFunc func(c1, c2, m1, m2 byte, buf []byte) int

var vermExecCell = newDispatchCell(func() vermExecFunc { return pickVermTier(vermExecVector32, vermExecVector16, vermExecScalar) })
var rvermExecCell = newDispatchCell(func() vermExecFunc { return pickVermTier(rvermExecVector32, rvermExecVector16, rvermExecScalar) })
var nvermExecCell = newDispatchCell(func() vermExecFunc { return pickVermTier(nvermExecVector32, nvermExecVector16, nvermExecScalar) })
var rnvermExecCell = newDispatchCell(func() vermExecFunc { return pickVermTier(rnvermExecVector32, rnvermExecVector16, rnvermExecScalar) })
var vermDoubleExecCell = newDispatchCell(func() vermDoubleExecFunc {
	switch resolveTier() {
	case TierVector32:
		return vermDoubleExecVector32
	case TierVector16:
		return vermDoubleExecVector16
	default:
		return vermDoubleExecScalar
	}
})
var vermDoubleMaskedExecCell = newDispatchCell(func() vermDoubleMaskedExecFunc {
	switch resolveTier() {
	case TierVector32:
		return vermDoubleMaskedExecVector32
	case TierVector16:
		return vermDoubleMaskedExecVector16
	default:
		return vermDoubleMaskedExecScalar
	}
})

func pickVermTier(v32, v16, scalar vermExecFunc) vermExecFunc {
	switch resolveTier() {
	case TierVector32:
		return v32
	case TierVector16:
		return v16
	default:
		return scalar
	}
}

// VermExec returns the index of the first byte of buf equal to c
// (case-folded when nocase and c is alphabetic), or len(buf) if none.
func VermExec(c byte, nocase bool, buf []byte) int { return vermExecCell.get()(c, nocase, buf) }

// RVermExec returns the index of the last byte of buf equal to c, or -1.
func RVermExec(c byte, nocase bool, buf []byte) int { return rvermExecCell.get()(c, nocase, buf) }

// NVermExec returns the index of the first byte of buf NOT equal to c, or
// len(buf) if every byte equals c.
func NVermExec(c byte, nocase bool, buf []byte) int { return nvermExecCell.get()(c, nocase, buf) }

// RNVermExec returns the index of the last byte of buf NOT equal to c, or
// -1.
func RNVermExec(c byte, nocase bool, buf []byte) int { return rnvermExecCell.get()(c, nocase, buf) }

// VermDoubleExec matches the two-byte string c1,c2 (case-insensitively
// when nocase) and returns the index of c1. As a partial-match exception,
// if c1 is present at the very last byte of buf with no byte following,
// that position is returned so the caller can re-drive the scan with more
// bytes. Returns len(buf) if no match (partial or full) exists.
func VermDoubleExec(c1, c2 byte, nocase bool, buf []byte) int {
	return vermDoubleExecCell.get()(c1, c2, nocase, buf)
}

// VermDoubleMaskedExec is VermDoubleExec with each candidate byte ANDed
// against m1/m2 before the equality check, letting one pass compile
// alternations like [cC][dD].
func VermDoubleMaskedExec(c1, c2, m1, m2 byte, buf []byte) int {
	return vermDoubleMaskedExecCell.get()(c1, c2, m1, m2, buf)
}

func isAlphaByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func foldIfAlpha(b byte) byte {
	if isAlphaByte(b) {
		return b | 0x20
	}
	return b
}

func vermByteEqual(b, c byte, nocase bool) bool {
	if nocase {
		return foldIfAlpha(b) == foldIfAlpha(c)
	}
	return b == c
}

// --- scalar tier ---

func vermExecScalar(c byte, nocase bool, buf []byte) int {
	for i, b := range buf {
		if vermByteEqual(b, c, nocase) {
			return i
		}
	}
	return len(buf)
}

func rvermExecScalar(c byte, nocase bool, buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if vermByteEqual(buf[i], c, nocase) {
			return i
		}
	}
	return -1
}

func nvermExecScalar(c byte, nocase bool, buf []byte) int {
	for i, b := range buf {
		if !vermByteEqual(b, c, nocase) {
			return i
		}
	}
	return len(buf)
}

func rnvermExecScalar(c byte, nocase bool, buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if !vermByteEqual(buf[i], c, nocase) {
			return i
		}
	}
	return -1
}

func vermDoubleExecScalar(c1, c2 byte, nocase bool, buf []byte) int {
	n := len(buf)
	for i := 0; i < n; i++ {
		if !vermByteEqual(buf[i], c1, nocase) {
			continue
		}
		if i+1 < n {
			if vermByteEqual(buf[i+1], c2, nocase) {
				return i
			}
			continue
		}
		return i
	}
	return n
}

func vermDoubleMaskedExecScalar(c1, c2, m1, m2 byte, buf []byte) int {
	n := len(buf)
	for i := 0; i < n; i++ {
		if buf[i]&m1 != c1 {
			continue
		}
		if i+1 < n {
			if buf[i+1]&m2 == c2 {
				return i
			}
			continue
		}
		return i
	}
	return n
}

// --- vector16 tier ---

// vermSplatsVec16 returns the splat(s) to compare against for c under
// nocase, and whether a second (case-toggled) splat is needed.
func vermSplatsVec16(c byte, nocase bool) (primary, alt vector.Vec16, hasAlt bool) {
	if !nocase || !isAlphaByte(c) {
		return vector.SplatU8x16(c), vector.Vec16{}, false
	}
	folded := foldIfAlpha(c)
	return vector.SplatU8x16(folded &^ 0x20), vector.SplatU8x16(folded | 0x20), true
}

func vermMatchMaskVec16(v, primary, alt vector.Vec16, hasAlt bool) uint64 {
	eq := v.CmpEqual(primary)
	if hasAlt {
		eq = eq.Or(v.CmpEqual(alt))
	}
	return eq.CompareMaskNarrow()
}

func vermExecVector16(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec16(c, nocase)
	w := vector.Width16

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		if m := vermMatchMaskVec16(v, primary, alt, hasAlt); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad16(buf[start:])
		if m := vermMatchMaskVec16(v, primary, alt, hasAlt); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rvermExecVector16(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	primary, alt, hasAlt := vermSplatsVec16(c, nocase)
	w := vector.Width16

	if n < w {
		v := vector.LoadZeroPad16(buf)
		if m := vermMatchMaskVec16(v, primary, alt, hasAlt); m != 0 {
			if off := bitutils.LastSetBitBefore(m, n-1); off >= 0 {
				return off
			}
		}
		return -1
	}

	i := n
	for i >= w {
		start := i - w
		v := vector.LoadUnaligned16(buf[start:])
		if m := vermMatchMaskVec16(v, primary, alt, hasAlt); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned16(buf[:w])
		if m := vermMatchMaskVec16(v, primary, alt, hasAlt); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

func nvermExecVector16(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec16(c, nocase)
	w := vector.Width16

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		m := notMask(vermMatchMaskVec16(v, primary, alt, hasAlt), w)
		if m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	for ; i < n; i++ {
		if !vermByteEqual(buf[i], c, nocase) {
			return i
		}
	}
	return n
}

func rnvermExecVector16(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec16(c, nocase)
	w := vector.Width16

	i := n
	for i >= w {
		start := i - w
		v := vector.LoadUnaligned16(buf[start:])
		m := notMask(vermMatchMaskVec16(v, primary, alt, hasAlt), w)
		if m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	for j := i - 1; j >= 0; j-- {
		if !vermByteEqual(buf[j], c, nocase) {
			return j
		}
	}
	return -1
}

func vermDoubleBlockVec16(c1, c2 byte, nocase bool, buf []byte) int {
	n := len(buf)
	p1, a1, has1 := vermSplatsVec16(c1, nocase)
	p2, a2, has2 := vermSplatsVec16(c2, nocase)
	w := vector.Width16

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		m1 := vermMatchMaskVec16(v, p1, a1, has1)
		m2 := vermMatchMaskVec16(v, p2, a2, has2)
		if carry && m2&1 != 0 {
			return i - 1
		}
		if hit := m1 & (m2 >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (m1>>uint(w-1))&1 != 0
	}
	return vermDoubleTailScalar(c1, c2, nocase, buf, i, carry)
}

func vermDoubleTailScalar(c1, c2 byte, nocase bool, buf []byte, start int, carry bool) int {
	n := len(buf)
	if carry {
		if start >= n {
			return start - 1
		}
		if vermByteEqual(buf[start], c2, nocase) {
			return start - 1
		}
	}
	for j := start; j < n; j++ {
		if !vermByteEqual(buf[j], c1, nocase) {
			continue
		}
		if j+1 < n {
			if vermByteEqual(buf[j+1], c2, nocase) {
				return j
			}
			continue
		}
		return j
	}
	return n
}

func vermDoubleExecVector16(c1, c2 byte, nocase bool, buf []byte) int {
	return vermDoubleBlockVec16(c1, c2, nocase, buf)
}

func vermDoubleMaskedMatchMaskVec16(v vector.Vec16, c, m byte) uint64 {
	masked := v.And(vector.SplatU8x16(m))
	eq := masked.CmpEqual(vector.SplatU8x16(c))
	return eq.CompareMaskNarrow()
}

func vermDoubleMaskedExecVector16(c1, c2, m1, m2 byte, buf []byte) int {
	n := len(buf)
	w := vector.Width16

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		a := vermDoubleMaskedMatchMaskVec16(v, c1, m1)
		b := vermDoubleMaskedMatchMaskVec16(v, c2, m2)
		if carry && b&1 != 0 {
			return i - 1
		}
		if hit := a & (b >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (a>>uint(w-1))&1 != 0
	}
	return vermDoubleMaskedTailScalar(c1, c2, m1, m2, buf, i, carry)
}

func vermDoubleMaskedTailScalar(c1, c2, m1, m2 byte, buf []byte, start int, carry bool) int {
	n := len(buf)
	if carry {
		if start >= n {
			return start - 1
		}
		if buf[start]&m2 == c2 {
			return start - 1
		}
	}
	for j := start; j < n; j++ {
		if buf[j]&m1 != c1 {
			continue
		}
		if j+1 < n {
			if buf[j+1]&m2 == c2 {
				return j
			}
			continue
		}
		return j
	}
	return n
}

// --- vector32 tier ---

func vermSplatsVec32(c byte, nocase bool) (primary, alt vector.Vec32, hasAlt bool) {
	if !nocase || !isAlphaByte(c) {
		return vector.SplatU8x32(c), vector.Vec32{}, false
	}
	folded := foldIfAlpha(c)
	return vector.SplatU8x32(folded &^ 0x20), vector.SplatU8x32(folded | 0x20), true
}

func vermMatchMaskVec32(v, primary, alt vector.Vec32, hasAlt bool) uint64 {
	eq := v.CmpEqual(primary)
	if hasAlt {
		eq = eq.Or(v.CmpEqual(alt))
	}
	return eq.CompareMaskNarrow()
}

func vermExecVector32(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec32(c, nocase)
	w := vector.Width32

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		if m := vermMatchMaskVec32(v, primary, alt, hasAlt); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad32(buf[start:])
		if m := vermMatchMaskVec32(v, primary, alt, hasAlt); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rvermExecVector32(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	primary, alt, hasAlt := vermSplatsVec32(c, nocase)
	w := vector.Width32

	if n < w {
		v := vector.LoadZeroPad32(buf)
		if m := vermMatchMaskVec32(v, primary, alt, hasAlt); m != 0 {
			if off := bitutils.LastSetBitBefore(m, n-1); off >= 0 {
				return off
			}
		}
		return -1
	}

	i := n
	for i >= w {
		start := i - w
		v := vector.LoadUnaligned32(buf[start:])
		if m := vermMatchMaskVec32(v, primary, alt, hasAlt); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned32(buf[:w])
		if m := vermMatchMaskVec32(v, primary, alt, hasAlt); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

func nvermExecVector32(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec32(c, nocase)
	w := vector.Width32

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		m := notMask(vermMatchMaskVec32(v, primary, alt, hasAlt), w)
		if m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	for ; i < n; i++ {
		if !vermByteEqual(buf[i], c, nocase) {
			return i
		}
	}
	return n
}

func rnvermExecVector32(c byte, nocase bool, buf []byte) int {
	n := len(buf)
	primary, alt, hasAlt := vermSplatsVec32(c, nocase)
	w := vector.Width32

	i := n
	for i >= w {
		start := i - w
		v := vector.LoadUnaligned32(buf[start:])
		m := notMask(vermMatchMaskVec32(v, primary, alt, hasAlt), w)
		if m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	for j := i - 1; j >= 0; j-- {
		if !vermByteEqual(buf[j], c, nocase) {
			return j
		}
	}
	return -1
}

func vermDoubleExecVector32(c1, c2 byte, nocase bool, buf []byte) int {
	n := len(buf)
	p1, a1, has1 := vermSplatsVec32(c1, nocase)
	p2, a2, has2 := vermSplatsVec32(c2, nocase)
	w := vector.Width32

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		m1 := vermMatchMaskVec32(v, p1, a1, has1)
		m2 := vermMatchMaskVec32(v, p2, a2, has2)
		if carry && m2&1 != 0 {
			return i - 1
		}
		if hit := m1 & (m2 >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (m1>>uint(w-1))&1 != 0
	}
	return vermDoubleTailScalar(c1, c2, nocase, buf, i, carry)
}

func vermDoubleMaskedMatchMaskVec32(v vector.Vec32, c, m byte) uint64 {
	masked := v.And(vector.SplatU8x32(m))
	eq := masked.CmpEqual(vector.SplatU8x32(c))
	return eq.CompareMaskNarrow()
}

func vermDoubleMaskedExecVector32(c1, c2, m1, m2 byte, buf []byte) int {
	n := len(buf)
	w := vector.Width32

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		a := vermDoubleMaskedMatchMaskVec32(v, c1, m1)
		b := vermDoubleMaskedMatchMaskVec32(v, c2, m2)
		if carry && b&1 != 0 {
			return i - 1
		}
		if hit := a & (b >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (a>>uint(w-1))&1 != 0
	}
	return vermDoubleMaskedTailScalar(c1, c2, m1, m2, buf, i, carry)
}

// notMask clears every bit at or beyond bit w and flips the low w bits.
func notMask(m uint64, w int) uint64 {
	full := (uint64(1) << uint(w)) - 1
	return (^m) & full
}
