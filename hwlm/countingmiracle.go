package hwlm

import "github.com/coregx/hwlm/charclass"

// CountingMiracle scans a bounded window backwards, counting bytes that
// belong to a target set, and stops the instant a caller-chosen target
// count is reached. It is the enclosing engine's "prove this subengine is
// dead" fast path: if the set occurs at least target times in the window
// ending at a candidate position, whatever subengine would have consumed
// that window cannot still be alive, and the engine can skip straight
// past it. Scan is deliberately simple scalar code — spec.md §4.7 allows
// the fallback, and a count that stops walking as soon as it's satisfied
// rarely walks the whole window anyway.
type CountingMiracle struct {
	useMask    bool
	byteTarget byte
	mask       charclass.ShuftiMask
	target     int
}

// NewCountingMiracleByte builds a CountingMiracle over the singleton set
// {b}.
func NewCountingMiracleByte(b byte, target int) CountingMiracle {
	return CountingMiracle{byteTarget: b, target: target}
}

// NewCountingMiracleShufti builds a CountingMiracle over the set mask
// encodes, for classes too broad to name as one byte.
func NewCountingMiracleShufti(mask charclass.ShuftiMask, target int) CountingMiracle {
	return CountingMiracle{useMask: true, mask: mask, target: target}
}

func (cm CountingMiracle) matches(b byte) bool {
	if cm.useMask {
		return charclass.ContainsShufti(cm.mask, b)
	}
	return b == cm.byteTarget
}

// Scan walks window backwards from its last byte, counting matches of
// cm's set, and returns (true, i) the moment the running count reaches
// cm.target, where i is the window index at which that happened. If the
// count never reaches the target over the whole window, it returns
// (false, 0). Callers are expected to keep window at or under 256 bytes,
// matching spec.md §4.7's bounded-window contract.
func (cm CountingMiracle) Scan(window []byte) (bool, int) {
	count := 0
	for i := len(window) - 1; i >= 0; i-- {
		if cm.matches(window[i]) {
			count++
			if count >= cm.target {
				return true, i
			}
		}
	}
	return false, 0
}
