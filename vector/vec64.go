package vector

// Width64 is the byte width of Vec64.
const Width64 = 64

// Vec64 holds 64 bytes: the AVX-512/SVE-512 width lane. spec.md §3 notes
// the "constructible from two halves" requirement applies "only when
// W=64" — this module provides it as FromHalves64 (alongside the loads,
// SplatU8x64 and AlignR), building a Vec64 from two Vec32 halves exactly as AVX-512 operations are frequently described as
// a pair of 256-bit halves in the original C++ (see
// original_source/src/util/supervector/arch/x86/impl.cpp).
type Vec64 struct {
	Lo, Hi Vec32
}

// FromHalves64 builds a Vec64 from two Vec32 halves.
func FromHalves64(lo, hi Vec32) Vec64 {
	return Vec64{Lo: lo, Hi: hi}
}

// Bytes returns the vector's 64 bytes in lane order (Lo then Hi).
func (v Vec64) Bytes() [64]byte {
	var out [64]byte
	lo, hi := v.Lo.Bytes(), v.Hi.Bytes()
	copy(out[:32], lo[:])
	copy(out[32:], hi[:])
	return out
}

// LoadUnaligned64 loads the first 64 bytes of buf into a Vec64.
func LoadUnaligned64(buf []byte) Vec64 {
	return Vec64{Lo: LoadUnaligned32(buf[:32]), Hi: LoadUnaligned32(buf[32:64])}
}

// LoadZeroPad64 loads min(len(buf), 64) bytes from buf and zero-fills the
// remainder.
func LoadZeroPad64(buf []byte) Vec64 {
	n := len(buf)
	if n > 64 {
		n = 64
	}
	if n <= 32 {
		return Vec64{Lo: LoadZeroPad32(buf[:n]), Hi: Vec32{}}
	}
	return Vec64{Lo: LoadUnaligned32(buf[:32]), Hi: LoadZeroPad32(buf[32:n])}
}

// StoreUnaligned64 writes v's 64 bytes into dst.
func StoreUnaligned64(dst []byte, v Vec64) {
	StoreUnaligned32(dst[:32], v.Lo)
	StoreUnaligned32(dst[32:64], v.Hi)
}

// SplatU8x64 returns a Vec64 with every byte equal to b.
func SplatU8x64(b byte) Vec64 {
	s := SplatU8x32(b)
	return Vec64{Lo: s, Hi: s}
}

// And returns the lane-wise bitwise AND of v and o.
func (v Vec64) And(o Vec64) Vec64 { return Vec64{v.Lo.And(o.Lo), v.Hi.And(o.Hi)} }

// Or returns the lane-wise bitwise OR of v and o.
func (v Vec64) Or(o Vec64) Vec64 { return Vec64{v.Lo.Or(o.Lo), v.Hi.Or(o.Hi)} }

// Xor returns the lane-wise bitwise XOR of v and o.
func (v Vec64) Xor(o Vec64) Vec64 { return Vec64{v.Lo.Xor(o.Lo), v.Hi.Xor(o.Hi)} }

// Not returns the bitwise complement of v.
func (v Vec64) Not() Vec64 { return Vec64{v.Lo.Not(), v.Hi.Not()} }

// AndNot returns v & ^o.
func (v Vec64) AndNot(o Vec64) Vec64 { return Vec64{v.Lo.AndNot(o.Lo), v.Hi.AndNot(o.Hi)} }

// CmpEqual returns a Vec64 with 0xFF in every byte-equal lane.
func (v Vec64) CmpEqual(o Vec64) Vec64 { return Vec64{v.Lo.CmpEqual(o.Lo), v.Hi.CmpEqual(o.Hi)} }

// PshufbRaw performs AVX-512-style lane-wise (four 16-byte lanes) table
// lookup, delegating to the two Vec32 halves' own lane-wise behavior.
func (v Vec64) PshufbRaw(idx Vec64) Vec64 {
	return Vec64{v.Lo.PshufbRaw(idx.Lo), v.Hi.PshufbRaw(idx.Hi)}
}

// PshufbMaskz performs the lane-wise maskz table lookup.
func (v Vec64) PshufbMaskz(idx Vec64) Vec64 {
	return Vec64{v.Lo.PshufbMaskz(idx.Lo), v.Hi.PshufbMaskz(idx.Hi)}
}

// CompareMaskNarrow returns a 64-bit compare-mask, one bit per byte,
// AVX-512 style (this is the tier that has a genuinely native bytewise
// k-mask, so narrow is the only mode Vec64 exposes).
func (v Vec64) CompareMaskNarrow() uint64 {
	return v.Lo.CompareMaskNarrow() | (v.Hi.CompareMaskNarrow() << 32)
}

// AlignR concatenates prev||v across the full 128-byte value and returns
// the 64-byte window starting at offset (0..64).
func (v Vec64) AlignR(prev Vec64, offset uint8) Vec64 {
	var cat [128]byte
	pb, vb := prev.Bytes(), v.Bytes()
	copy(cat[:64], pb[:])
	copy(cat[64:], vb[:])
	off := int(offset)
	if off > 64 {
		off = 64
	}
	var out [64]byte
	copy(out[:], cat[off:off+64])
	return Vec64{Lo: LoadUnaligned32(out[:32]), Hi: LoadUnaligned32(out[32:])}
}
