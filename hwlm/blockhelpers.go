package hwlm

import "github.com/coregx/hwlm/vector"

// nonzeroMaskVec16 returns a 16-bit mask with bit i set iff v's byte i is
// nonzero. Shufti/Truffle's per-block predicate (spec.md §4.3/§4.4) tests
// "is this combined lane nonzero", not "does this lane have its high bit
// set" — so the comparison is routed through CmpEqual against the zero
// vector first, which turns "nonzero" into "high bit set" (every lane of
// the result is exactly 0x00 or 0xFF) before CompareMaskNarrow applies.
func nonzeroMaskVec16(v vector.Vec16) uint64 {
	isZero := v.CmpEqual(vector.Vec16{})
	return isZero.Not().CompareMaskNarrow()
}

// nonzeroMaskVec32 is nonzeroMaskVec16 for Vec32.
func nonzeroMaskVec32(v vector.Vec32) uint64 {
	isZero := v.CmpEqual(vector.Vec32{})
	return isZero.Not().CompareMaskNarrow()
}

// bitOfNibble is the "unique_bit_per_lane" lookup table the wide-32
// Truffle predicate (truffleWideClassifyVec32) applies via pshufb: entry k
// (0..7) is 1<<k, used to turn the 3-bit value c>>5 into a single set bit
// so the `Table[c&0x1F] & bit` membership test can be expressed as a table
// lookup instead of a variable per-lane shift (which no Vec<W> operation offers, by
// design — real hardware does not offer one either).
var bitOfNibble = [16]byte{1, 2, 4, 8, 16, 32, 64, 128, 0, 0, 0, 0, 0, 0, 0, 0}

func bitOfNibbleVec16() vector.Vec16 { return vector.LoadUnaligned16(bitOfNibble[:]) }

func bitOfNibbleVec32() vector.Vec32 {
	t := bitOfNibbleVec16()
	return vector.FromHalves32(t, t)
}

// bitOfHighNibble is the 16-entry form Truffle's standard (non-wide)
// predicate needs: it is indexed by the full high nibble (0..15), and the
// pattern repeats every 8 entries because TruffleMask already splits
// "which table contributes" (TableClear for nibble<8, TableSet for
// nibble>=8) on the high bit of the nibble, leaving only nibble%8 to
// distinguish within each table.
var bitOfHighNibble = [16]byte{1, 2, 4, 8, 16, 32, 64, 128, 1, 2, 4, 8, 16, 32, 64, 128}

func bitOfHighNibbleVec16() vector.Vec16 { return vector.LoadUnaligned16(bitOfHighNibble[:]) }

func bitOfHighNibbleVec32() vector.Vec32 {
	t := bitOfHighNibbleVec16()
	return vector.FromHalves32(t, t)
}
