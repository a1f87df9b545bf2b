package hwlm

import (
	"testing"

	"github.com/coregx/hwlm/charclass"
)

func TestCountingMiracleByte(t *testing.T) {
	cm := NewCountingMiracleByte('a', 3)
	buf := make([]byte, 32)
	for i := range buf {
		buf[i] = 'x'
	}
	buf[5] = 'a'
	buf[10] = 'a'
	buf[20] = 'a'
	buf[25] = 'a'

	ok, pos := cm.Scan(buf)
	if !ok {
		t.Fatal("expected target reached")
	}
	if pos != 10 {
		t.Fatalf("scanning backwards, the 3rd 'a' encountered is at index 10, got %d", pos)
	}
}

func TestCountingMiracleTargetNeverReached(t *testing.T) {
	cm := NewCountingMiracleByte('a', 5)
	buf := []byte("xxaxxaxxax")
	ok, _ := cm.Scan(buf)
	if ok {
		t.Fatal("only 3 'a's present, target 5 should not be reached")
	}
}

func TestCountingMiracleShufti(t *testing.T) {
	mask, ok := charclass.BuildShuftiMask(charclass.NewFromRange('0', '9'))
	if !ok {
		t.Fatal("digits class should fit shufti")
	}
	cm := NewCountingMiracleShufti(mask, 2)
	buf := []byte("ab1cd2ef3gh")
	matched, pos := cm.Scan(buf)
	if !matched {
		t.Fatal("expected target reached")
	}
	if pos != 5 {
		t.Fatalf("scanning backwards, 2nd digit encountered is '2' at index 5, got %d", pos)
	}
}
