package charclass

import "testing"

func TestSetTestClear(t *testing.T) {
	var c CharClass
	if c.Test('a') {
		t.Fatal("expected empty class to not contain 'a'")
	}
	c.Set('a')
	if !c.Test('a') {
		t.Fatal("expected class to contain 'a' after Set")
	}
	c.Clear('a')
	if c.Test('a') {
		t.Fatal("expected class to not contain 'a' after Clear")
	}
}

func TestSetRange(t *testing.T) {
	var c CharClass
	c.SetRange('a', 'z')
	for b := byte('a'); b <= 'z'; b++ {
		if !c.Test(b) {
			t.Fatalf("expected %q in range", b)
		}
	}
	if c.Test('A') || c.Test('0') {
		t.Fatal("range leaked outside bounds")
	}
	if c.Count() != 26 {
		t.Fatalf("Count() = %d, want 26", c.Count())
	}
}

func TestSetRangeInverted(t *testing.T) {
	var c CharClass
	c.SetRange('z', 'a') // lo > hi: no-op
	if c.Count() != 0 {
		t.Fatalf("expected no-op for inverted range, got count %d", c.Count())
	}
}

func TestSetAllClearAll(t *testing.T) {
	var c CharClass
	c.SetAll()
	if c.Count() != 256 {
		t.Fatalf("Count() after SetAll = %d, want 256", c.Count())
	}
	c.ClearAll()
	if c.Count() != 0 {
		t.Fatalf("Count() after ClearAll = %d, want 0", c.Count())
	}
}

func TestComplement(t *testing.T) {
	c := NewFromRange(0, 127)
	comp := c.Complement()
	for b := 0; b < 256; b++ {
		want := b >= 128
		if comp.Test(byte(b)) != want {
			t.Fatalf("complement byte %d = %v, want %v", b, comp.Test(byte(b)), want)
		}
	}
}

func TestUnionIntersection(t *testing.T) {
	a := NewFromRange('a', 'm')
	b := NewFromRange('g', 'z')
	u := a.Union(b)
	i := a.Intersection(b)
	for c := byte('a'); c <= 'z'; c++ {
		wantUnion := (c >= 'a' && c <= 'm') || (c >= 'g' && c <= 'z')
		wantInter := c >= 'g' && c <= 'm'
		if u.Test(c) != wantUnion {
			t.Errorf("union byte %q = %v, want %v", c, u.Test(c), wantUnion)
		}
		if i.Test(c) != wantInter {
			t.Errorf("intersection byte %q = %v, want %v", c, i.Test(c), wantInter)
		}
	}
}

func TestEqualAndIsEmpty(t *testing.T) {
	var a, b CharClass
	if !a.Equal(b) {
		t.Fatal("two empty classes should be equal")
	}
	if !a.IsEmpty() {
		t.Fatal("zero-value CharClass should be empty")
	}
	a.Set('x')
	if a.Equal(b) {
		t.Fatal("classes should differ after Set")
	}
}

// TestIterateReinsertIdentity checks the round-trip/idempotence property
// from spec.md §8: iterating a CharClass and re-inserting into a fresh one
// is the identity.
func TestIterateReinsertIdentity(t *testing.T) {
	src := NewFromBytes('a', 'Z', '5', 0, 255, 128, '\n')
	var dst CharClass
	src.Iterate(func(b byte) bool {
		dst.Set(b)
		return true
	})
	if !src.Equal(dst) {
		t.Fatalf("iterate/reinsert round trip failed: src=%v dst=%v", src.Bytes(), dst.Bytes())
	}
}

func TestIterateAscendingOrder(t *testing.T) {
	src := NewFromBytes(200, 3, 99, 0, 255, 64)
	var prev int = -1
	src.Iterate(func(b byte) bool {
		if int(b) <= prev {
			t.Fatalf("iterate not ascending: got %d after %d", b, prev)
		}
		prev = int(b)
		return true
	})
}

func TestIterateEarlyStop(t *testing.T) {
	src := NewFromRange(0, 255)
	count := 0
	src.Iterate(func(b byte) bool {
		count++
		return count < 5
	})
	if count != 5 {
		t.Fatalf("expected Iterate to stop after 5 calls, got %d", count)
	}
}

func TestBytesOrdering(t *testing.T) {
	c := NewFromBytes('z', 'a', 'm')
	got := c.Bytes()
	want := []byte{'a', 'm', 'z'}
	if len(got) != len(want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Bytes() = %v, want %v", got, want)
		}
	}
}
