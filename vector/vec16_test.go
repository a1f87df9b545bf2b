package vector

import "testing"

func TestVec16EqualityIsValueEquality(t *testing.T) {
	a := SplatU8x16('x')
	b := SplatU8x16('x')
	if a != b {
		t.Fatal("expected identically-constructed Vec16 values to be ==")
	}
	c := SplatU8x16('y')
	if a == c {
		t.Fatal("expected differently-constructed Vec16 values to differ")
	}
}

func TestLoadUnalignedAndStore(t *testing.T) {
	src := []byte("0123456789abcdef")
	v := LoadUnaligned16(src)
	dst := make([]byte, 16)
	StoreUnaligned16(dst, v)
	if string(dst) != string(src) {
		t.Fatalf("round trip mismatch: got %q want %q", dst, src)
	}
}

func TestLoadZeroPad16(t *testing.T) {
	v := LoadZeroPad16([]byte("abc"))
	b := v.Bytes()
	if b[0] != 'a' || b[1] != 'b' || b[2] != 'c' {
		t.Fatalf("expected prefix abc, got %v", b[:3])
	}
	for i := 3; i < 16; i++ {
		if b[i] != 0 {
			t.Fatalf("expected zero padding at %d, got %d", i, b[i])
		}
	}
}

func TestLoadZeroPadFullLength(t *testing.T) {
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i + 1)
	}
	v := LoadZeroPad16(src)
	if v.Bytes() != LoadUnaligned16(src).Bytes() {
		t.Fatal("zero-pad load of a full-width buffer should equal a plain load")
	}
}

func TestBitwiseOps(t *testing.T) {
	a := SplatU8x16(0b1100)
	b := SplatU8x16(0b1010)
	if got := a.And(b).Bytes()[0]; got != 0b1000 {
		t.Fatalf("And = %b, want %b", got, 0b1000)
	}
	if got := a.Or(b).Bytes()[0]; got != 0b1110 {
		t.Fatalf("Or = %b, want %b", got, 0b1110)
	}
	if got := a.Xor(b).Bytes()[0]; got != 0b0110 {
		t.Fatalf("Xor = %b, want %b", got, 0b0110)
	}
	if got := a.Not().Bytes()[0]; got != ^byte(0b1100) {
		t.Fatalf("Not = %b, want %b", got, ^byte(0b1100))
	}
	if got := a.AndNot(b).Bytes()[0]; got != 0b0100 {
		t.Fatalf("AndNot = %b, want %b", got, 0b0100)
	}
}

func TestCmpEqualAndSigned(t *testing.T) {
	a := LoadUnaligned16([]byte{1, 2, 3, 0xFF, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	b := LoadUnaligned16([]byte{1, 0, 3, 0x7F, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	eq := a.CmpEqual(b).Bytes()
	if eq[0] != 0xFF || eq[1] != 0x00 {
		t.Fatalf("CmpEqual mismatch: %v", eq[:2])
	}
	// -1 (0xFF) is not > 127 (0x7F) in signed comparison.
	gt := a.CmpGtSigned(b).Bytes()
	if gt[3] != 0x00 {
		t.Fatalf("expected signed 0xFF (-1) not > 0x7F (127), got lane=%x", gt[3])
	}
	lt := a.CmpLtSigned(b).Bytes()
	if lt[3] != 0xFF {
		t.Fatalf("expected signed -1 < 127, got lane=%x", lt[3])
	}
}

func TestPshufbRawAndMaskz(t *testing.T) {
	var table Vec16
	tb := [16]byte{}
	for i := range tb {
		tb[i] = byte(i * 2)
	}
	table = LoadUnaligned16(tb[:])

	idx := LoadUnaligned16([]byte{0, 1, 2, 3, 0x80, 0x85, 15, 0xFF, 0, 0, 0, 0, 0, 0, 0, 0})
	raw := table.PshufbRaw(idx).Bytes()
	// raw ignores the high bit entirely, only uses idx&0x0F
	if raw[4] != tb[0] || raw[5] != tb[5] {
		t.Fatalf("PshufbRaw mismatch: %v", raw[:8])
	}

	mz := table.PshufbMaskz(idx).Bytes()
	if mz[4] != 0 || mz[5] != 0 || mz[7] != 0 {
		t.Fatalf("PshufbMaskz should zero high-bit-set indices: %v", mz[:8])
	}
	if mz[0] != tb[0] || mz[6] != tb[15] {
		t.Fatalf("PshufbMaskz should pass through clear-high-bit indices: %v", mz[:8])
	}
}

func TestPshufbMaskzLen(t *testing.T) {
	table := SplatU8x16(0xAB)
	idx := SplatU8x16(0x00)
	v := table.PshufbMaskzLen(idx, 4)
	b := v.Bytes()
	for i := 0; i < 4; i++ {
		if b[i] != 0xAB {
			t.Fatalf("expected lane %d set, got 0", i)
		}
	}
	for i := 4; i < 16; i++ {
		if b[i] != 0 {
			t.Fatalf("expected lane %d zeroed beyond length, got %#x", i, b[i])
		}
	}
}

func TestShiftBytes(t *testing.T) {
	src := make([]byte, 16)
	for i := range src {
		src[i] = byte(i + 1)
	}
	v := LoadUnaligned16(src)

	left := v.ShiftBytesLeft(3).Bytes()
	for i := 0; i < 3; i++ {
		if left[i] != 0 {
			t.Fatalf("expected zero at low end after ShiftBytesLeft, got %v", left[:4])
		}
	}
	if left[3] != 1 || left[15] != 13 {
		t.Fatalf("ShiftBytesLeft mismatch: %v", left)
	}

	right := v.ShiftBytesRight(3).Bytes()
	if right[0] != 4 || right[12] != 16 {
		t.Fatalf("ShiftBytesRight mismatch: %v", right)
	}
	for i := 13; i < 16; i++ {
		if right[i] != 0 {
			t.Fatalf("expected zero at high end after ShiftBytesRight, got %v", right)
		}
	}
}

func TestShiftBytesBoundary(t *testing.T) {
	v := SplatU8x16(0xFF)
	if v.ShiftBytesLeft(16) != (Vec16{}) {
		t.Fatal("shifting by the full width should zero the vector")
	}
	if v.ShiftBytesRight(16) != (Vec16{}) {
		t.Fatal("shifting by the full width should zero the vector")
	}
}

func TestAlignR(t *testing.T) {
	prev := LoadUnaligned16([]byte("AAAAAAAAAAAAAAAA"))
	cur := LoadUnaligned16([]byte("BBBBBBBBBBBBBBBB"))

	if got := cur.AlignR(prev, 0); got != prev {
		t.Fatalf("AlignR offset 0 should return prev, got %v", got.Bytes())
	}
	if got := cur.AlignR(prev, 16); got != cur {
		t.Fatalf("AlignR offset 16 should return v, got %v", got.Bytes())
	}
	mid := cur.AlignR(prev, 8).Bytes()
	for i := 0; i < 8; i++ {
		if mid[i] != 'A' {
			t.Fatalf("AlignR offset 8 low half should be from prev: %v", mid)
		}
	}
	for i := 8; i < 16; i++ {
		if mid[i] != 'B' {
			t.Fatalf("AlignR offset 8 high half should be from v: %v", mid)
		}
	}
}

func TestCompareMaskNarrowAndWide(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x80
	data[2] = 0xFF
	data[15] = 0x81
	v := LoadUnaligned16(data)

	narrow := v.CompareMaskNarrow()
	want := uint64(1<<0 | 1<<2 | 1<<15)
	if narrow != want {
		t.Fatalf("CompareMaskNarrow = %b, want %b", narrow, want)
	}

	wide := v.CompareMaskWide()
	wantWide := uint64(0b11<<0 | 0b11<<4 | 0b11<<30)
	if wide != wantWide {
		t.Fatalf("CompareMaskWide = %b, want %b", wide, wantWide)
	}

	if got := IterationMask(wide, MaskWidthWide); got != (wantWide & 0x5555555555555555) {
		t.Fatalf("IterationMask(wide) = %b", got)
	}
	if got := IterationMask(narrow, MaskWidthNarrow); got != narrow {
		t.Fatal("IterationMask should be identity in narrow mode")
	}
}

func TestShiftRightEachByte(t *testing.T) {
	v := LoadUnaligned16([]byte{0xF1, 0xA2, 0x0F, 0xFF, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	hi := v.ShiftRightEachByte(4).Bytes()
	if hi[0] != 0x0F || hi[1] != 0x0A || hi[2] != 0x00 || hi[3] != 0x0F {
		t.Fatalf("ShiftRightEachByte(4) mismatch: %v", hi[:4])
	}
	lo := v.And(SplatU8x16(0x0F)).Bytes()
	if lo[0] != 0x01 || lo[1] != 0x02 {
		t.Fatalf("low nibble mismatch: %v", lo[:2])
	}
}

func TestShiftLanes64(t *testing.T) {
	src := make([]byte, 16)
	src[0] = 0x01
	v := LoadUnaligned16(src)
	shifted := v.ShiftLeftLanes64(8).Bytes()
	if shifted[0] != 0 || shifted[1] != 0x01 {
		t.Fatalf("ShiftLeftLanes64 mismatch: %v", shifted[:2])
	}
	back := v.ShiftLeftLanes64(8)
	restored := back.ShiftRightLanes64(8).Bytes()
	if restored[0] != 0x01 {
		t.Fatalf("shift left then right should restore original low byte, got %v", restored[:2])
	}
}
