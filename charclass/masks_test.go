package charclass

import "testing"

// TestShuftiRoundTrip is spec.md §8 property 1: for every CharClass C and
// byte b, contains_shufti(build_shufti(C), b) == C.Test(b) whenever
// build_shufti(C) succeeds.
func TestShuftiRoundTrip(t *testing.T) {
	classes := []CharClass{
		NewFromBytes('a'),
		NewFromRange('a', 'z'),
		NewFromRange('0', '9'),
		NewFromBytes(' ', '\t', '\n', '\r'),
		NewFromRange(0x80, 0xFF),
	}
	for ci, c := range classes {
		mask, ok := BuildShuftiMask(c)
		if !ok {
			t.Fatalf("class %d: expected shufti to succeed", ci)
		}
		for b := 0; b < 256; b++ {
			want := c.Test(byte(b))
			got := ContainsShufti(mask, byte(b))
			if got != want {
				t.Fatalf("class %d byte %d: ContainsShufti=%v want %v", ci, b, got, want)
			}
		}
	}
}

// TestShuftiFailsOverEightBuckets constructs a class whose 16 high nibbles
// produce 9 distinct nonzero row patterns, which must exceed Shufti's
// 8-bucket budget.
func TestShuftiFailsOverEightBuckets(t *testing.T) {
	var c CharClass
	for h := 0; h < 9; h++ {
		// Give each high nibble 0..8 a unique single-low-nibble pattern so
		// that no two rows can share a bucket.
		c.Set(byte(h<<4 | h))
	}
	if _, ok := BuildShuftiMask(c); ok {
		t.Fatal("expected BuildShuftiMask to fail for a 9-bucket class")
	}
}

func TestShuftiSharedBucketsSucceed(t *testing.T) {
	// All 16 high nibbles share the identical row pattern {0}: exactly one
	// bucket is needed regardless of how many high nibbles exist.
	var c CharClass
	for h := 0; h < 16; h++ {
		c.Set(byte(h << 4))
	}
	mask, ok := BuildShuftiMask(c)
	if !ok {
		t.Fatal("expected identical-row classes to fit in one bucket")
	}
	for b := 0; b < 256; b++ {
		want := b&0xF == 0
		if got := ContainsShufti(mask, byte(b)); got != want {
			t.Fatalf("byte %d: ContainsShufti=%v want %v", b, got, want)
		}
	}
}

func TestShuftiDouble(t *testing.T) {
	a := NewFromBytes('a')
	b := NewFromBytes('b')
	mask, ok := BuildShuftiDoubleMask(a, b)
	if !ok {
		t.Fatal("expected double mask to build")
	}
	if !ContainsShufti(mask.A, 'a') || ContainsShufti(mask.A, 'b') {
		t.Fatal("mask.A membership wrong")
	}
	if !ContainsShufti(mask.B, 'b') || ContainsShufti(mask.B, 'a') {
		t.Fatal("mask.B membership wrong")
	}
}

// TestTruffleRoundTrip is spec.md §8 property 2, checked over all 256 byte
// values for each of a handful of classes.
func TestTruffleRoundTrip(t *testing.T) {
	classes := []CharClass{
		NewFromBytes('a'),
		NewFromRange('a', 'z'),
		NewFromRange(0x80, 0xFF),
		NewFromRange(0, 255),
		func() CharClass { var c CharClass; return c }(),
	}
	for ci, c := range classes {
		mask := BuildTruffleMask(c)
		for b := 0; b < 256; b++ {
			want := c.Test(byte(b))
			got := ContainsTruffle(mask, byte(b))
			if got != want {
				t.Fatalf("class %d byte %d: ContainsTruffle=%v want %v", ci, b, got, want)
			}
		}
	}
}

// TestTruffleCharClassRoundTrip is spec.md §8's "truffle -> char_class ->
// truffle" idempotence property.
func TestTruffleCharClassRoundTrip(t *testing.T) {
	c := NewFromBytes('a', 'Z', 0x81, 0xFE, 0, 255)
	mask := BuildTruffleMask(c)
	recovered := mask.ToCharClass()
	if !c.Equal(recovered) {
		t.Fatalf("round trip mismatch: original=%v recovered=%v", c.Bytes(), recovered.Bytes())
	}
	mask2 := BuildTruffleMask(recovered)
	if mask != mask2 {
		t.Fatal("truffle -> char_class -> truffle did not reproduce the original mask")
	}
}

func TestTruffleWideRoundTrip(t *testing.T) {
	classes := []CharClass{
		NewFromBytes('a'),
		NewFromRange(0x80, 0xFF),
		NewFromRange(0, 255),
	}
	for ci, c := range classes {
		mask := BuildTruffleWideMask(c)
		for b := 0; b < 256; b++ {
			want := c.Test(byte(b))
			got := ContainsTruffleWide(mask, byte(b))
			if got != want {
				t.Fatalf("class %d byte %d: ContainsTruffleWide=%v want %v", ci, b, got, want)
			}
		}
	}
}
