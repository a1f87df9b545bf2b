// Package hwlm implements the literal and character-class acceleration
// scanners — Shufti, Truffle, Vermicelli and Noodle — that an enclosing
// regex engine's prefilter layer drives to find candidate match positions
// before running a full NFA/DFA. It also exposes the "counting miracle"
// bulk-count check used to prove a subengine dead over a bounded window.
//
// Every exported scanner resolves to a CPU-feature-specific implementation
// exactly once, on first call, and from then on every call goes through
// that resolved function with no further feature checks (see dispatch.go).
// TruffleWideExec and RTruffleWideExec are the exception: they have no
// dispatch cell and re-run the tier check on every call.
package hwlm

// HwlmStatus is the scanner outcome code returned by the callback-driven
// Noodle entry points (NoodExec, NoodExecStreaming). These values are a wire
// contract with the enclosing engine and must never be renumbered.
type HwlmStatus int

const (
	// HWLM_SUCCESS means the scan reached the end of its range normally.
	HWLM_SUCCESS HwlmStatus = iota
	// HWLM_TERMINATED means the callback returned TERMINATE_MATCHING and
	// the scan stopped early.
	HWLM_TERMINATED
	// HWLM_ERROR_UNKNOWN is part of the wire contract; nothing in this
	// package returns it, since dispatch falls back to the scalar tier
	// rather than to an error function (see resolveTier).
	HWLM_ERROR_UNKNOWN
	// HWLM_LITERAL_MAX_LEN is part of the wire contract; NoodBuild reports
	// a literal longer than MaxLiteralLen as *ErrLiteralTooLong, not as
	// this status.
	HWLM_LITERAL_MAX_LEN
)

// String returns the status's conventional name.
func (s HwlmStatus) String() string {
	switch s {
	case HWLM_SUCCESS:
		return "HWLM_SUCCESS"
	case HWLM_TERMINATED:
		return "HWLM_TERMINATED"
	case HWLM_ERROR_UNKNOWN:
		return "HWLM_ERROR_UNKNOWN"
	case HWLM_LITERAL_MAX_LEN:
		return "HWLM_LITERAL_MAX_LEN"
	default:
		return "HWLM_STATUS(?)"
	}
}

// CallbackResult is the value a MatchCallback returns to tell the scanner
// whether to keep going.
type CallbackResult int

const (
	// CONTINUE_MATCHING tells the scanner to keep scanning for further
	// matches.
	CONTINUE_MATCHING CallbackResult = iota
	// TERMINATE_MATCHING tells the scanner to stop immediately; the
	// scanner maps this into HWLM_TERMINATED.
	TERMINATE_MATCHING
)

// MatchCallback is the push-model match sink every Noodle caller
// supplies. scratch is an opaque caller context (the spec's
// `*mut Scratch`); this package never dereferences it, only threads it
// through. No view of the scanned buffer is passed to the callback.
type MatchCallback func(endOffset uint64, id uint32, scratch any) CallbackResult
