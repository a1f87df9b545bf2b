package hwlm

// NoodTable is the precompiled form of a single literal, built once by
// NoodBuild and then read-only for the lifetime of every NoodExec /
// NoodExecStreaming call against it.
//
// Key0 (and Key1 for k >= 2) are the rarest byte(s) of the literal, chosen
// so the outer scan — a Vermicelli single- or double-byte search — skips
// as much non-matching text as possible before the more expensive context
// check ever runs. KeyOffset is Key0's index within the literal, so a hit
// at buf position p implies the literal itself would start at p-KeyOffset.
//
// Msk/Cmp encode the whole literal (MskLen == len(literal), since
// MaxLiteralLen caps literals at 8 and msk_len in the original is
// min(len,8)): (buf[i] & Msk[j]) == Cmp[j] for the literal's j'th byte
// folds case by clearing the 0x20 bit of alphabetic bytes on both sides.
type NoodTable struct {
	ID        uint32
	NoCase    bool
	Single    bool
	Key0      byte
	Key1      byte
	KeyOffset int
	MskLen    int
	Msk       [MaxLiteralLen]byte
	Cmp       [MaxLiteralLen]byte
}

// commonByteRank ranks ASCII bytes by how often they occur in ordinary
// text/code, highest first; bytes absent from the table (control bytes,
// punctuation, the top half of the range) default to zero, the rarest
// rank there is. NoodBuild uses it to pick the literal's rarest byte(s) as
// the outer scan's key, the same "scan for what's uncommon" idea the
// teacher's prefilter package applies when ranking literals for Teddy.
var commonByteRank = buildCommonByteRank()

func buildCommonByteRank() [256]uint8 {
	var r [256]uint8
	order := []byte(" etaoinshrdlcumwfgypbvkjxqzETAOINSHRDLCUMWFGYPBVKJXQZ0123456789")
	for i, b := range order {
		r[b] = uint8(len(order) - i)
	}
	return r
}

func chooseSingleKeyOffset(lit []byte) int {
	best := 0
	for i := 1; i < len(lit); i++ {
		if commonByteRank[lit[i]] < commonByteRank[lit[best]] {
			best = i
		}
	}
	return best
}

func pairRank(lit []byte, i int) uint8 {
	a, b := commonByteRank[lit[i]], commonByteRank[lit[i+1]]
	if a > b {
		return a
	}
	return b
}

func choosePairKeyOffset(lit []byte) int {
	best := 0
	for i := 1; i < len(lit)-1; i++ {
		if pairRank(lit, i) < pairRank(lit, best) {
			best = i
		}
	}
	return best
}

// NoodBuild compiles literal into a NoodTable. It returns *ErrLiteralTooLong
// if the literal is empty or longer than MaxLiteralLen bytes.
func NoodBuild(literal []byte, nocase bool, id uint32) (NoodTable, error) {
	k := len(literal)
	if k < 1 || k > MaxLiteralLen {
		return NoodTable{}, &ErrLiteralTooLong{Len: k, Max: MaxLiteralLen}
	}

	nt := NoodTable{ID: id, NoCase: nocase, Single: k == 1, MskLen: k}
	if nt.Single {
		nt.KeyOffset = 0
		nt.Key0 = literal[0]
	} else {
		nt.KeyOffset = choosePairKeyOffset(literal)
		nt.Key0 = literal[nt.KeyOffset]
		nt.Key1 = literal[nt.KeyOffset+1]
	}
	for i := 0; i < k; i++ {
		b := literal[i]
		if nocase && isAlphaByte(b) {
			nt.Msk[i] = 0xDF
			nt.Cmp[i] = b &^ 0x20
		} else {
			nt.Msk[i] = 0xFF
			nt.Cmp[i] = b
		}
	}
	return nt, nil
}

// NoodExec scans buf[start:] for nt's literal, calling cb with the index
// of each match's last byte, in ascending order. It returns
// HWLM_TERMINATED as soon as cb returns TERMINATE_MATCHING, otherwise
// HWLM_SUCCESS once the range is exhausted.
func NoodExec(nt NoodTable, buf []byte, start int, cb MatchCallback, scratch any) HwlmStatus {
	if len(buf)-start < nt.MskLen {
		return HWLM_SUCCESS
	}
	if nt.Single {
		return noodScanSingle(nt, buf, start, cb, scratch)
	}
	return noodScanDouble(nt, buf, start, cb, scratch)
}

func noodScanSingle(nt NoodTable, buf []byte, start int, cb MatchCallback, scratch any) HwlmStatus {
	pos := start
	for pos < len(buf) {
		rel := VermExec(nt.Key0, nt.NoCase, buf[pos:])
		if rel == len(buf)-pos {
			return HWLM_SUCCESS
		}
		p := pos + rel
		if status, stop := noodFinalise(nt, buf, p, cb, scratch); stop {
			return status
		}
		pos = p + 1
	}
	return HWLM_SUCCESS
}

func noodScanDouble(nt NoodTable, buf []byte, start int, cb MatchCallback, scratch any) HwlmStatus {
	pos := start
	for pos < len(buf) {
		rel := VermDoubleExec(nt.Key0, nt.Key1, nt.NoCase, buf[pos:])
		if rel == len(buf)-pos {
			return HWLM_SUCCESS
		}
		p := pos + rel
		if status, stop := noodFinalise(nt, buf, p, cb, scratch); stop {
			return status
		}
		pos = p + 1
	}
	return HWLM_SUCCESS
}

// noodFinalise re-checks the full literal (not just its key byte(s))
// around a key hit at buf[keyPos], and fires cb on success. The boundary
// check alone is enough to reject a key hit too close to either end of
// buf to hold the whole literal — including the case where the outer
// double-byte scan only partially confirmed a pair because the buffer
// ran out right after key0.
//
// The offset passed to cb is the index of the literal's last matched
// byte (inclusive), matching spec.md §4.6's seed scenario S5 rather than
// an exclusive one-past-the-end offset.
func noodFinalise(nt NoodTable, buf []byte, keyPos int, cb MatchCallback, scratch any) (status HwlmStatus, stop bool) {
	litStart := keyPos - nt.KeyOffset
	litEnd := litStart + nt.MskLen
	if litStart < 0 || litEnd > len(buf) {
		return HWLM_SUCCESS, false
	}
	for i := 0; i < nt.MskLen; i++ {
		if buf[litStart+i]&nt.Msk[i] != nt.Cmp[i] {
			return HWLM_SUCCESS, false
		}
	}
	if cb(uint64(litEnd-1), nt.ID, scratch) == TERMINATE_MATCHING {
		return HWLM_TERMINATED, true
	}
	return HWLM_SUCCESS, false
}

// NoodExecStreaming is NoodExec's streaming form: it first checks for a
// literal occurrence straddling the hbuf/buf boundary by synthesising up
// to MskLen-1 bytes of history tail and MskLen-1 bytes of current-buffer
// head into one byte-by-byte check, then continues in ordinary block mode
// over buf from offset 0. A straddling match's reported end offset is
// relative to buf, matching the non-streaming form's convention.
func NoodExecStreaming(nt NoodTable, hbuf []byte, hlen int, buf []byte, cb MatchCallback, scratch any) HwlmStatus {
	join := nt.MskLen - 1
	if join > 0 {
		histTail := join
		if histTail > hlen {
			histTail = hlen
		}
		curHead := join
		if curHead > len(buf) {
			curHead = len(buf)
		}
		joined := make([]byte, 0, histTail+curHead)
		joined = append(joined, hbuf[hlen-histTail:hlen]...)
		joined = append(joined, buf[:curHead]...)

		for i := 0; i+nt.MskLen <= len(joined); i++ {
			end := i + nt.MskLen
			if end <= histTail || i >= histTail {
				continue // wholly in history or wholly in current: block mode below covers it
			}
			if !noodMatchBytes(nt, joined[i:end]) {
				continue
			}
			if cb(uint64(end-1-histTail), nt.ID, scratch) == TERMINATE_MATCHING {
				return HWLM_TERMINATED
			}
		}
	}
	return NoodExec(nt, buf, 0, cb, scratch)
}

func noodMatchBytes(nt NoodTable, window []byte) bool {
	for i := 0; i < nt.MskLen; i++ {
		if window[i]&nt.Msk[i] != nt.Cmp[i] {
			return false
		}
	}
	return true
}
