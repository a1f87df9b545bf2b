package charclass

// ShuftiMask is the precompiled 8-bucket high-nibble decomposition of a
// CharClass, consumed by hwlm.ShuftiExec/RShuftiExec.
//
// A byte c is in the class iff (Lo[c&0xF] & Hi[c>>4]) != 0. Lo and Hi are
// built so that every one of the 16 possible high nibbles is assigned to
// one of 8 buckets: two high nibbles may share a bucket only if they agree
// on class membership for every low nibble, which is exactly the condition
// under which sharing a bucket bit is sound. See BuildShuftiMask.
type ShuftiMask struct {
	Lo [16]byte
	Hi [16]byte
}

// ShuftiDoubleMask pairs two ShuftiMasks for the two-byte predicate used by
// hwlm.ShuftiDoubleExec: byte i must be in class A and byte i+1 in class B.
type ShuftiDoubleMask struct {
	A ShuftiMask
	B ShuftiMask
}

// TruffleMask is the precompiled unique-bit-per-high-nibble encoding of an
// arbitrary (256-byte) CharClass, consumed by hwlm.TruffleExec/RTruffleExec.
//
// Membership test: let h = c>>4, low = c&0xF, bit = 1<<(h&7).
//
//	if h < 8 { TableClear[low] & bit != 0 } else { TableSet[low] & bit != 0 }
//
// This mirrors the x86 pshufb "maskz" semantics the real vector loop uses:
// TableClear is looked up through an index that is zeroed whenever c's high
// bit is set, and TableSet through an index zeroed whenever it is clear, so
// exactly one of the two tables ever contributes for a given c.
type TruffleMask struct {
	TableClear [16]byte
	TableSet   [16]byte
}

// TruffleWideMask is the 32-entry single-table variant used on targets with
// a native 32-wide table lookup (AVX-512-VBMI, SVE). A byte c is in the
// class iff Table[c&0x1F] & (1<<(c>>5)) != 0 — the low 5 bits select the
// table row directly and the high 3 bits select the bit within it, so no
// masking trick is required (5+3 = 8 bits covers the whole byte exactly).
type TruffleWideMask struct {
	Table [32]byte
}

// maxShuftiBuckets is the number of distinct high-nibble "rows" Shufti can
// represent; classes needing more must fall back to Truffle.
const maxShuftiBuckets = 8

// shuftiRows computes, for each of the 16 possible high nibbles, the
// 16-bit pattern of which low nibbles are set for that high nibble.
func shuftiRows(c CharClass) [16]uint16 {
	var rows [16]uint16
	for h := 0; h < 16; h++ {
		var row uint16
		for low := 0; low < 16; low++ {
			if c.Test(byte(h<<4 | low)) {
				row |= 1 << uint(low)
			}
		}
		rows[h] = row
	}
	return rows
}

// BuildShuftiMask builds a ShuftiMask for c. It fails (returns ok=false) if
// the class's high nibbles fall into more than 8 distinct nonzero row
// patterns, in which case the caller must fall back to Truffle.
func BuildShuftiMask(c CharClass) (mask ShuftiMask, ok bool) {
	rows := shuftiRows(c)

	var bucketOf [16]int8 // -1 = no bucket needed (row is all-zero)
	var bucketRow [maxShuftiBuckets]uint16
	nBuckets := 0

	for h := 0; h < 16; h++ {
		if rows[h] == 0 {
			bucketOf[h] = -1
			continue
		}
		assigned := int8(-1)
		for b := 0; b < nBuckets; b++ {
			if bucketRow[b] == rows[h] {
				assigned = int8(b)
				break
			}
		}
		if assigned == -1 {
			if nBuckets >= maxShuftiBuckets {
				return ShuftiMask{}, false
			}
			bucketRow[nBuckets] = rows[h]
			assigned = int8(nBuckets)
			nBuckets++
		}
		bucketOf[h] = assigned
	}

	for h := 0; h < 16; h++ {
		if bucketOf[h] < 0 {
			continue
		}
		mask.Hi[h] = 1 << uint(bucketOf[h])
	}
	for low := 0; low < 16; low++ {
		var loBits byte
		for b := 0; b < nBuckets; b++ {
			if bucketRow[b]&(1<<uint(low)) != 0 {
				loBits |= 1 << uint(b)
			}
		}
		mask.Lo[low] = loBits
	}

	return mask, true
}

// BuildShuftiDoubleMask builds the pair of ShuftiMasks for a two-byte
// alternation [A][B]. It fails if either component class needs more than
// 8 Shufti buckets.
func BuildShuftiDoubleMask(a, b CharClass) (mask ShuftiDoubleMask, ok bool) {
	am, ok := BuildShuftiMask(a)
	if !ok {
		return ShuftiDoubleMask{}, false
	}
	bm, ok := BuildShuftiMask(b)
	if !ok {
		return ShuftiDoubleMask{}, false
	}
	return ShuftiDoubleMask{A: am, B: bm}, true
}

// ContainsShufti reports whether b is a member of the class encoded by
// mask, per the Lo/Hi membership test. Used for round-trip testing and by
// the scalar reference scanner.
func ContainsShufti(mask ShuftiMask, b byte) bool {
	return mask.Lo[b&0xF]&mask.Hi[b>>4] != 0
}

// BuildTruffleMask builds a TruffleMask for c. Truffle is total: every
// 256-byte CharClass is representable, so this never fails.
func BuildTruffleMask(c CharClass) TruffleMask {
	var m TruffleMask
	for h := 0; h < 8; h++ {
		for low := 0; low < 16; low++ {
			if c.Test(byte(h<<4 | low)) {
				m.TableClear[low] |= 1 << uint(h)
			}
			if c.Test(byte((h+8)<<4 | low)) {
				m.TableSet[low] |= 1 << uint(h)
			}
		}
	}
	return m
}

// ContainsTruffle reports whether b is a member of the class encoded by
// mask.
func ContainsTruffle(mask TruffleMask, b byte) bool {
	h := b >> 4
	low := b & 0xF
	bit := byte(1) << (h & 7)
	if h < 8 {
		return mask.TableClear[low]&bit != 0
	}
	return mask.TableSet[low]&bit != 0
}

// BuildTruffleWideMask builds a TruffleWideMask for c. Like Truffle, this
// never fails.
func BuildTruffleWideMask(c CharClass) TruffleWideMask {
	var m TruffleWideMask
	for k := 0; k < 8; k++ {
		for low5 := 0; low5 < 32; low5++ {
			b := byte(k<<5 | low5)
			if c.Test(b) {
				m.Table[low5] |= 1 << uint(k)
			}
		}
	}
	return m
}

// ContainsTruffleWide reports whether b is a member of the class encoded
// by mask.
func ContainsTruffleWide(mask TruffleWideMask, b byte) bool {
	return mask.Table[b&0x1F]&(1<<(b>>5)) != 0
}

// ToCharClass reconstructs the CharClass a TruffleMask encodes. Used for
// the truffle -> char_class -> truffle round-trip property.
func (m TruffleMask) ToCharClass() CharClass {
	var c CharClass
	for b := 0; b < 256; b++ {
		if ContainsTruffle(m, byte(b)) {
			c.Set(byte(b))
		}
	}
	return c
}
