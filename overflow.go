// overflow.go — explicit overflow policy surface for xgx-errchain core.
//
// The behavior itself is selected at build time (overflow_evict.go /
// overflow_panic.go); this file gives it an inspectable enum so callers
// and tests can branch on the active policy without probing for panics.
package xgxerrchain

// OverflowPolicy enumerates the possible behaviors of chaining onto an
// already-full record.
type OverflowPolicy uint8

const (
	// OverflowEvict silently drops the oldest chained entry. The data
	// loss is intended: oldest-first eviction is the chain's only
	// backpressure mechanism. Default.
	OverflowEvict OverflowPolicy = iota

	// OverflowPanic treats overflow as fatal. Selected by building with
	// the chainoverflowpanic tag.
	OverflowPanic
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowEvict:
		return "evict"
	case OverflowPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// CurrentOverflowPolicy reports the overflow policy selected at build
// time. It only ever changes with a rebuild, never at run time.
func CurrentOverflowPolicy() OverflowPolicy {
	if panicOnOverflow {
		return OverflowPanic
	}
	return OverflowEvict
}
