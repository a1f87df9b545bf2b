package hwlm

import (
	"github.com/coregx/hwlm/charclass"
	"github.com/coregx/hwlm/internal/bitutils"
	"github.com/coregx/hwlm/vector"
)

type shuftiExecFunc func(mask charclass.ShuftiMask, buf []byte) int
type rshuftiExecFunc func(mask charclass.ShuftiMask, buf []byte) int
type shuftiDoubleExecFunc func(mask charclass.ShuftiDoubleMask, buf []byte) int

var shuftiExecCell = newDispatchCell(func() shuftiExecFunc {
	switch resolveTier() {
	case TierVector32:
		return shuftiExecVector32
	case TierVector16:
		return shuftiExecVector16
	default:
		return shuftiExecScalar
	}
})

var rshuftiExecCell = newDispatchCell(func() rshuftiExecFunc {
	switch resolveTier() {
	case TierVector32:
		return rshuftiExecVector32
	case TierVector16:
		return rshuftiExecVector16
	default:
		return rshuftiExecScalar
	}
})

var shuftiDoubleExecCell = newDispatchCell(func() shuftiDoubleExecFunc {
	switch resolveTier() {
	case TierVector32:
		return shuftiDoubleExecVector32
	case TierVector16:
		return shuftiDoubleExecVector16
	default:
		return shuftiDoubleExecScalar
	}
})

// ShuftiExec returns the index of the first byte of buf that belongs to
// the character class encoded by mask, or len(buf) if none does.
func ShuftiExec(mask charclass.ShuftiMask, buf []byte) int {
	return shuftiExecCell.get()(mask, buf)
}

// RShuftiExec returns the index of the last byte of buf that belongs to
// the class encoded by mask, or -1 if none does.
func RShuftiExec(mask charclass.ShuftiMask, buf []byte) int {
	return rshuftiExecCell.get()(mask, buf)
}

// ShuftiDoubleExec returns the smallest index i such that buf[i] is in
// mask.A and buf[i+1] is in mask.B, or len(buf) if no such pair exists.
// As a partial-match exception, if the last byte of buf is in mask.A and
// no full pair exists, it returns len(buf)-1 so the caller can re-drive
// the scan with more bytes.
func ShuftiDoubleExec(mask charclass.ShuftiDoubleMask, buf []byte) int {
	return shuftiDoubleExecCell.get()(mask, buf)
}

// --- scalar tier: the correctness reference ---

func shuftiExecScalar(mask charclass.ShuftiMask, buf []byte) int {
	for i, b := range buf {
		if charclass.ContainsShufti(mask, b) {
			return i
		}
	}
	return len(buf)
}

func rshuftiExecScalar(mask charclass.ShuftiMask, buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if charclass.ContainsShufti(mask, buf[i]) {
			return i
		}
	}
	return -1
}

func shuftiDoubleExecScalar(mask charclass.ShuftiDoubleMask, buf []byte) int {
	n := len(buf)
	for i := 0; i < n; i++ {
		if !charclass.ContainsShufti(mask.A, buf[i]) {
			continue
		}
		if i+1 < n {
			if charclass.ContainsShufti(mask.B, buf[i+1]) {
				return i
			}
			continue
		}
		return i // partial match: class-A at the very last byte
	}
	return n
}

// --- vector16 tier ---

func shuftiClassifyVec16(v, lo, hi vector.Vec16) uint64 {
	lonib := v.And(vector.SplatU8x16(0x0F))
	hinib := v.ShiftRightEachByte(4)
	combined := lo.PshufbRaw(lonib).And(hi.PshufbRaw(hinib))
	return nonzeroMaskVec16(combined)
}

func shuftiExecVector16(mask charclass.ShuftiMask, buf []byte) int {
	n := len(buf)
	lo := vector.LoadUnaligned16(mask.Lo[:])
	hi := vector.LoadUnaligned16(mask.Hi[:])
	w := vector.Width16

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		if m := shuftiClassifyVec16(v, lo, hi); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad16(buf[start:])
		if m := shuftiClassifyVec16(v, lo, hi); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rshuftiExecVector16(mask charclass.ShuftiMask, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	lo := vector.LoadUnaligned16(mask.Lo[:])
	hi := vector.LoadUnaligned16(mask.Hi[:])
	w := vector.Width16

	if n < w {
		v := vector.LoadZeroPad16(buf)
		if m := shuftiClassifyVec16(v, lo, hi); m != 0 {
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
		if m := shuftiClassifyVec16(v, lo, hi); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned16(buf[:w])
		if m := shuftiClassifyVec16(v, lo, hi); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

func shuftiDoubleExecVector16(mask charclass.ShuftiDoubleMask, buf []byte) int {
	n := len(buf)
	loA := vector.LoadUnaligned16(mask.A.Lo[:])
	hiA := vector.LoadUnaligned16(mask.A.Hi[:])
	loB := vector.LoadUnaligned16(mask.B.Lo[:])
	hiB := vector.LoadUnaligned16(mask.B.Hi[:])
	w := vector.Width16

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		a := shuftiClassifyVec16(v, loA, hiA)
		b := shuftiClassifyVec16(v, loB, hiB)
		if carry && b&1 != 0 {
			return i - 1
		}
		if hit := a & (b >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (a>>uint(w-1))&1 != 0
	}
	return shuftiDoubleTailScalar(mask, buf, i, carry)
}

func shuftiDoubleTailScalar(mask charclass.ShuftiDoubleMask, buf []byte, start int, carry bool) int {
	n := len(buf)
	if carry {
		if start >= n {
			// the carried A-match was at buf[n-1]; no byte follows it at
			// all, which is the partial-match case spec.md §4.3 names.
			return start - 1
		}
		if charclass.ContainsShufti(mask.B, buf[start]) {
			return start - 1
		}
	}
	for j := start; j < n; j++ {
		if !charclass.ContainsShufti(mask.A, buf[j]) {
			continue
		}
		if j+1 < n {
			if charclass.ContainsShufti(mask.B, buf[j+1]) {
				return j
			}
			continue
		}
		return j
	}
	return n
}

// --- vector32 tier ---

func shuftiClassifyVec32(v, lo, hi vector.Vec32) uint64 {
	lonib := v.And(vector.SplatU8x32(0x0F))
	hinib := v.ShiftRightEachByte(4)
	combined := lo.PshufbRaw(lonib).And(hi.PshufbRaw(hinib))
	return nonzeroMaskVec32(combined)
}

func broadcastShuftiMask(m charclass.ShuftiMask) (lo, hi vector.Vec32) {
	loHalf := vector.LoadUnaligned16(m.Lo[:])
	hiHalf := vector.LoadUnaligned16(m.Hi[:])
	return vector.FromHalves32(loHalf, loHalf), vector.FromHalves32(hiHalf, hiHalf)
}

func shuftiExecVector32(mask charclass.ShuftiMask, buf []byte) int {
	n := len(buf)
	lo, hi := broadcastShuftiMask(mask)
	w := vector.Width32

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		if m := shuftiClassifyVec32(v, lo, hi); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad32(buf[start:])
		if m := shuftiClassifyVec32(v, lo, hi); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rshuftiExecVector32(mask charclass.ShuftiMask, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	lo, hi := broadcastShuftiMask(mask)
	w := vector.Width32

	if n < w {
		v := vector.LoadZeroPad32(buf)
		if m := shuftiClassifyVec32(v, lo, hi); m != 0 {
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
		if m := shuftiClassifyVec32(v, lo, hi); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned32(buf[:w])
		if m := shuftiClassifyVec32(v, lo, hi); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

func shuftiDoubleExecVector32(mask charclass.ShuftiDoubleMask, buf []byte) int {
	n := len(buf)
	loA, hiA := broadcastShuftiMask(mask.A)
	loB, hiB := broadcastShuftiMask(mask.B)
	w := vector.Width32

	var carry bool
	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		a := shuftiClassifyVec32(v, loA, hiA)
		b := shuftiClassifyVec32(v, loB, hiB)
		if carry && b&1 != 0 {
			return i - 1
		}
		if hit := a & (b >> 1); hit != 0 {
			return i + bitutils.Ctz64(hit)
		}
		carry = (a>>uint(w-1))&1 != 0
	}
	return shuftiDoubleTailScalar(mask, buf, i, carry)
}
