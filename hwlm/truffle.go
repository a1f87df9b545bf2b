package hwlm

import (
	"github.com/coregx/hwlm/charclass"
	"github.com/coregx/hwlm/internal/bitutils"
	"github.com/coregx/hwlm/vector"
)

type truffleExecFunc func(mask charclass.TruffleMask, buf []byte) int
type rtruffleExecFunc func(mask charclass.TruffleMask, buf []byte) int

var truffleExecCell = newDispatchCell(func() truffleExecFunc {
	switch resolveTier() {
	case TierVector32:
		return truffleExecVector32
	case TierVector16:
		return truffleExecVector16
	default:
		return truffleExecScalar
	}
})

var rtruffleExecCell = newDispatchCell(func() rtruffleExecFunc {
	switch resolveTier() {
	case TierVector32:
		return rtruffleExecVector32
	case TierVector16:
		return rtruffleExecVector16
	default:
		return rtruffleExecScalar
	}
})

// TruffleExec returns the index of the first byte of buf that belongs to
// the arbitrary character class encoded by mask, or len(buf) if none does.
func TruffleExec(mask charclass.TruffleMask, buf []byte) int {
	return truffleExecCell.get()(mask, buf)
}

// RTruffleExec returns the index of the last byte of buf that belongs to
// the class encoded by mask, or -1 if none does.
func RTruffleExec(mask charclass.TruffleMask, buf []byte) int {
	return rtruffleExecCell.get()(mask, buf)
}

// TruffleWideExec is the 32-byte single-table variant (spec.md §4.4's
// "wide-32"). Since its table is exactly Vec32-width, it has no
// vector16 tier: hosts resolved to TierVector16 use the scalar form. It
// has no dispatch cell: every call re-runs resolveTier.
func TruffleWideExec(mask charclass.TruffleWideMask, buf []byte) int {
	if resolveTier() == TierVector32 {
		return truffleWideExecVector32(mask, buf)
	}
	return truffleWideExecScalar(mask, buf)
}

// RTruffleWideExec is the reverse form of TruffleWideExec.
func RTruffleWideExec(mask charclass.TruffleWideMask, buf []byte) int {
	if resolveTier() == TierVector32 {
		return rtruffleWideExecVector32(mask, buf)
	}
	return rtruffleWideExecScalar(mask, buf)
}

// --- scalar tier ---

func truffleExecScalar(mask charclass.TruffleMask, buf []byte) int {
	for i, b := range buf {
		if charclass.ContainsTruffle(mask, b) {
			return i
		}
	}
	return len(buf)
}

func rtruffleExecScalar(mask charclass.TruffleMask, buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if charclass.ContainsTruffle(mask, buf[i]) {
			return i
		}
	}
	return -1
}

func truffleWideExecScalar(mask charclass.TruffleWideMask, buf []byte) int {
	for i, b := range buf {
		if charclass.ContainsTruffleWide(mask, b) {
			return i
		}
	}
	return len(buf)
}

func rtruffleWideExecScalar(mask charclass.TruffleWideMask, buf []byte) int {
	for i := len(buf) - 1; i >= 0; i-- {
		if charclass.ContainsTruffleWide(mask, buf[i]) {
			return i
		}
	}
	return -1
}

// --- vector16 tier ---

func truffleClassifyVec16(v vector.Vec16, tableLo, tableHi vector.Vec16) uint64 {
	idxLo := v.And(vector.SplatU8x16(0x8F))
	idxHi := v.Xor(vector.SplatU8x16(0x80)).And(vector.SplatU8x16(0x8F))
	lo := tableLo.PshufbMaskz(idxLo)
	hi := tableHi.PshufbMaskz(idxHi)
	bit := bitOfHighNibbleVec16().PshufbRaw(v.ShiftRightEachByte(4))
	hits := lo.Or(hi).And(bit)
	return nonzeroMaskVec16(hits)
}

func truffleExecVector16(mask charclass.TruffleMask, buf []byte) int {
	n := len(buf)
	tableLo := vector.LoadUnaligned16(mask.TableClear[:])
	tableHi := vector.LoadUnaligned16(mask.TableSet[:])
	w := vector.Width16

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned16(buf[i:])
		if m := truffleClassifyVec16(v, tableLo, tableHi); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad16(buf[start:])
		if m := truffleClassifyVec16(v, tableLo, tableHi); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rtruffleExecVector16(mask charclass.TruffleMask, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	tableLo := vector.LoadUnaligned16(mask.TableClear[:])
	tableHi := vector.LoadUnaligned16(mask.TableSet[:])
	w := vector.Width16

	if n < w {
		v := vector.LoadZeroPad16(buf)
		if m := truffleClassifyVec16(v, tableLo, tableHi); m != 0 {
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
		if m := truffleClassifyVec16(v, tableLo, tableHi); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned16(buf[:w])
		if m := truffleClassifyVec16(v, tableLo, tableHi); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

// --- vector32 tier ---

func truffleClassifyVec32(v vector.Vec32, tableLo, tableHi vector.Vec32) uint64 {
	idxLo := v.And(vector.SplatU8x32(0x8F))
	idxHi := v.Xor(vector.SplatU8x32(0x80)).And(vector.SplatU8x32(0x8F))
	lo := tableLo.PshufbMaskz(idxLo)
	hi := tableHi.PshufbMaskz(idxHi)
	bit := bitOfHighNibbleVec32().PshufbRaw(v.ShiftRightEachByte(4))
	hits := lo.Or(hi).And(bit)
	return nonzeroMaskVec32(hits)
}

func broadcastTruffleMask(m charclass.TruffleMask) (lo, hi vector.Vec32) {
	loHalf := vector.LoadUnaligned16(m.TableClear[:])
	hiHalf := vector.LoadUnaligned16(m.TableSet[:])
	return vector.FromHalves32(loHalf, loHalf), vector.FromHalves32(hiHalf, hiHalf)
}

func truffleExecVector32(mask charclass.TruffleMask, buf []byte) int {
	n := len(buf)
	tableLo, tableHi := broadcastTruffleMask(mask)
	w := vector.Width32

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		if m := truffleClassifyVec32(v, tableLo, tableHi); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad32(buf[start:])
		if m := truffleClassifyVec32(v, tableLo, tableHi); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rtruffleExecVector32(mask charclass.TruffleMask, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	tableLo, tableHi := broadcastTruffleMask(mask)
	w := vector.Width32

	if n < w {
		v := vector.LoadZeroPad32(buf)
		if m := truffleClassifyVec32(v, tableLo, tableHi); m != 0 {
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
		if m := truffleClassifyVec32(v, tableLo, tableHi); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned32(buf[:w])
		if m := truffleClassifyVec32(v, tableLo, tableHi); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}

// --- truffle-wide (32-byte single table), vector32 only ---

func truffleWideClassifyVec32(v vector.Vec32, table vector.Vec32) uint64 {
	idx := v.And(vector.SplatU8x32(0x1F))
	bucket := table.PermuteByte32(idx)
	bit := bitOfNibbleVec32().PshufbRaw(v.ShiftRightEachByte(5))
	return nonzeroMaskVec32(bucket.And(bit))
}

func truffleWideExecVector32(mask charclass.TruffleWideMask, buf []byte) int {
	n := len(buf)
	table := vector.LoadUnaligned32(mask.Table[:])
	w := vector.Width32

	i := 0
	for ; i+w <= n; i += w {
		v := vector.LoadUnaligned32(buf[i:])
		if m := truffleWideClassifyVec32(v, table); m != 0 {
			return i + bitutils.Ctz64(m)
		}
	}
	if i < n || n == 0 {
		start := lastWindowStart(n, w)
		v := vector.LoadZeroPad32(buf[start:])
		if m := truffleWideClassifyVec32(v, table); m != 0 {
			if pos := start + bitutils.Ctz64(m); pos < n {
				return pos
			}
		}
	}
	return n
}

func rtruffleWideExecVector32(mask charclass.TruffleWideMask, buf []byte) int {
	n := len(buf)
	if n == 0 {
		return -1
	}
	table := vector.LoadUnaligned32(mask.Table[:])
	w := vector.Width32

	if n < w {
		v := vector.LoadZeroPad32(buf)
		if m := truffleWideClassifyVec32(v, table); m != 0 {
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
		if m := truffleWideClassifyVec32(v, table); m != 0 {
			return start + bitutils.LastSetBitBefore(m, 63)
		}
		i = start
	}
	if i > 0 {
		v := vector.LoadUnaligned32(buf[:w])
		if m := truffleWideClassifyVec32(v, table); m != 0 {
			if off := bitutils.LastSetBitBefore(m, 63); off < i {
				return off
			}
		}
	}
	return -1
}
