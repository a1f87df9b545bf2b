package vector

// Width32 is the byte width of Vec32.
const Width32 = 32

// Vec32 holds 32 bytes: the AVX2/SVE-256 width lane. It is composed of two
// Vec16 halves rather than a flat [32]byte, because AVX2's vpshufb (and
// several other "256-bit" x86 instructions) is itself defined lane-wise
// over two independent 16-byte halves, not as one contiguous 32-byte
// shuffle — modeling Vec32 this way keeps PshufbRaw/PshufbMaskz faithful
// to what the hardware this tier targets actually does.
type Vec32 struct {
	Lo, Hi Vec16
}

// Bytes returns the vector's 32 bytes in lane order (Lo then Hi).
func (v Vec32) Bytes() [32]byte {
	var out [32]byte
	lo, hi := v.Lo.Bytes(), v.Hi.Bytes()
	copy(out[:16], lo[:])
	copy(out[16:], hi[:])
	return out
}

// FromHalves32 builds a Vec32 from two Vec16 halves, per spec.md §3's
// "constructible from two halves" requirement.
func FromHalves32(lo, hi Vec16) Vec32 {
	return Vec32{Lo: lo, Hi: hi}
}

// LoadUnaligned32 loads the first 32 bytes of buf into a Vec32.
func LoadUnaligned32(buf []byte) Vec32 {
	return Vec32{Lo: LoadUnaligned16(buf[:16]), Hi: LoadUnaligned16(buf[16:32])}
}

// LoadAligned32 is semantically identical to LoadUnaligned32; see
// LoadAligned16.
func LoadAligned32(buf []byte) Vec32 {
	return LoadUnaligned32(buf)
}

// LoadZeroPad32 loads min(len(buf), 32) bytes from buf and zero-fills the
// remainder.
func LoadZeroPad32(buf []byte) Vec32 {
	n := len(buf)
	if n > 32 {
		n = 32
	}
	if n <= 16 {
		return Vec32{Lo: LoadZeroPad16(buf[:n]), Hi: Vec16{}}
	}
	return Vec32{Lo: LoadUnaligned16(buf[:16]), Hi: LoadZeroPad16(buf[16:n])}
}

// StoreUnaligned32 writes v's 32 bytes into dst.
func StoreUnaligned32(dst []byte, v Vec32) {
	StoreUnaligned16(dst[:16], v.Lo)
	StoreUnaligned16(dst[16:32], v.Hi)
}

// SplatU8x32 returns a Vec32 with every byte equal to b.
func SplatU8x32(b byte) Vec32 {
	s := SplatU8x16(b)
	return Vec32{Lo: s, Hi: s}
}

// SplatU64x32 returns a Vec32 built from x replicated across all four
// 8-byte lanes.
func SplatU64x32(x uint64) Vec32 {
	s := SplatU64x16(x)
	return Vec32{Lo: s, Hi: s}
}

// And returns the lane-wise bitwise AND of v and o.
func (v Vec32) And(o Vec32) Vec32 { return Vec32{v.Lo.And(o.Lo), v.Hi.And(o.Hi)} }

// Or returns the lane-wise bitwise OR of v and o.
func (v Vec32) Or(o Vec32) Vec32 { return Vec32{v.Lo.Or(o.Lo), v.Hi.Or(o.Hi)} }

// Xor returns the lane-wise bitwise XOR of v and o.
func (v Vec32) Xor(o Vec32) Vec32 { return Vec32{v.Lo.Xor(o.Lo), v.Hi.Xor(o.Hi)} }

// Not returns the bitwise complement of v.
func (v Vec32) Not() Vec32 { return Vec32{v.Lo.Not(), v.Hi.Not()} }

// AndNot returns v & ^o.
func (v Vec32) AndNot(o Vec32) Vec32 { return Vec32{v.Lo.AndNot(o.Lo), v.Hi.AndNot(o.Hi)} }

// CmpEqual returns a Vec32 with 0xFF in every byte-equal lane.
func (v Vec32) CmpEqual(o Vec32) Vec32 { return Vec32{v.Lo.CmpEqual(o.Lo), v.Hi.CmpEqual(o.Hi)} }

// CmpGtSigned returns a Vec32 with 0xFF where v's signed byte > o's.
func (v Vec32) CmpGtSigned(o Vec32) Vec32 {
	return Vec32{v.Lo.CmpGtSigned(o.Lo), v.Hi.CmpGtSigned(o.Hi)}
}

// PshufbRaw performs AVX2-style lane-wise table lookup: the low 16 bytes
// of idx index into v's low half, the high 16 bytes index into v's high
// half — it does NOT cross lanes, matching real vpshufb.
func (v Vec32) PshufbRaw(idx Vec32) Vec32 {
	return Vec32{v.Lo.PshufbRaw(idx.Lo), v.Hi.PshufbRaw(idx.Hi)}
}

// PshufbMaskz performs the lane-wise maskz table lookup, matching
// vpshufb's per-lane high-bit zeroing.
func (v Vec32) PshufbMaskz(idx Vec32) Vec32 {
	return Vec32{v.Lo.PshufbMaskz(idx.Lo), v.Hi.PshufbMaskz(idx.Hi)}
}

// PermuteByte32 performs a cross-lane 32-entry table lookup: result[i] =
// table[idx[i]&0x1F], where v's full 32 bytes are treated as one flat
// table rather than two independent 16-entry lanes. This models AVX-512
// VBMI's vpermb / SVE's tbl instruction — unlike PshufbRaw/PshufbMaskz,
// which deliberately do not cross the lane boundary, a handful of newer
// ISAs do offer a genuine whole-register permute, and TruffleWideMask's
// single 32-byte table needs exactly that.
func (v Vec32) PermuteByte32(idx Vec32) Vec32 {
	table := v.Bytes()
	ib := idx.Bytes()
	var out [32]byte
	for i := range out {
		out[i] = table[ib[i]&0x1F]
	}
	return FromHalves32(LoadUnaligned16(out[:16]), LoadUnaligned16(out[16:]))
}

// ShiftBytesLeft shifts each 16-byte lane left independently by n bytes
// (the AVX2 vpslldq lane convention — it does not shift bytes across the
// lane boundary).
func (v Vec32) ShiftBytesLeft(n uint8) Vec32 {
	return Vec32{v.Lo.ShiftBytesLeft(n), v.Hi.ShiftBytesLeft(n)}
}

// ShiftBytesRight shifts each 16-byte lane right independently by n
// bytes, matching AVX2 vpsrldq.
func (v Vec32) ShiftBytesRight(n uint8) Vec32 {
	return Vec32{v.Lo.ShiftBytesRight(n), v.Hi.ShiftBytesRight(n)}
}

// ShiftLeftLanes64 shifts each 64-bit lane left by count bits.
func (v Vec32) ShiftLeftLanes64(count uint8) Vec32 {
	return Vec32{v.Lo.ShiftLeftLanes64(count), v.Hi.ShiftLeftLanes64(count)}
}

// ShiftRightLanes64 shifts each 64-bit lane right by count bits.
func (v Vec32) ShiftRightLanes64(count uint8) Vec32 {
	return Vec32{v.Lo.ShiftRightLanes64(count), v.Hi.ShiftRightLanes64(count)}
}

// ShiftRightEachByte performs a per-byte logical right shift by n bits
// (0..7), lane-wise; see Vec16.ShiftRightEachByte.
func (v Vec32) ShiftRightEachByte(n uint8) Vec32 {
	return Vec32{v.Lo.ShiftRightEachByte(n), v.Hi.ShiftRightEachByte(n)}
}

// AlignR concatenates prev||v across the full 64-byte value and returns
// the 32-byte window starting at offset (0..32). Unlike ShiftBytes*, this
// operates across the lane boundary, since the "history stitching" use
// case needs a true 32-byte sliding window regardless of lane width.
func (v Vec32) AlignR(prev Vec32, offset uint8) Vec32 {
	var cat [64]byte
	pb, vb := prev.Bytes(), v.Bytes()
	copy(cat[:32], pb[:])
	copy(cat[32:], vb[:])
	off := int(offset)
	if off > 32 {
		off = 32
	}
	var out [32]byte
	copy(out[:], cat[off:off+32])
	return Vec32{Lo: LoadUnaligned16(out[:16]), Hi: LoadUnaligned16(out[16:])}
}

// CompareMaskNarrow returns a 32-bit compare-mask, one bit per byte, in
// byte order (bit 0 = Lo[0], ..., bit 31 = Hi[15]).
func (v Vec32) CompareMaskNarrow() uint64 {
	return v.Lo.CompareMaskNarrow() | (v.Hi.CompareMaskNarrow() << 16)
}

// CompareMaskWide returns a 64-bit compare-mask, two bits per byte.
func (v Vec32) CompareMaskWide() uint64 {
	return v.Lo.CompareMaskWide() | (v.Hi.CompareMaskWide() << 32)
}
