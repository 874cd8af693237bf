// record.go — the bit-packed chain record for xgx-errchain core.
//
// Layout (one uint32):
//   - Bits 0..20 hold five 4-bit error codes.
//     b0..b4   current code (returned by Code())
//     b4..b8   chained code 0 (most recently chained)
//     b8..b12  chained code 1
//     b12..b16 chained code 2
//     b16..b20 chained code 3 (oldest)
//   - Bits 20..32 hold four 3-bit link-table indices, stored biased by +1
//     so that a zero field means "absent" (the chain ends here).
//     b20..b23 link index of chained code 0 (+1)
//     b23..b26 link index of chained code 1 (+1)
//     b26..b29 link index of chained code 2 (+1)
//     b29..b32 link index of chained code 3 (+1)
//
// Invariants:
//   - Presence of link-index fields is contiguous from the front; a set
//     field after a zero field is never produced by the safe operations.
//   - Chain length is derived by scanning, never stored.
//
// Every operation is a pure value transformation: methods take and return
// Record by value and never mutate shared state.
package xgxerrchain

// ChainCap is the maximum number of chained error codes a Record holds.
//
// It bounds how many chain operations can be applied before the record
// overflows and either the oldest entry is evicted (default) or the
// operation panics (under the chainoverflowpanic build tag).
const ChainCap = 4

const (
	codeMask    uint32 = 0xf
	allCodeMask uint32 = 0x000f_ffff

	linkWidth         = 3
	linkOffset        = 20
	linkMask   uint32 = 0x7
	// allLinkMask covers the four biased link-index fields.
	allLinkMask uint32 = 0xfff0_0000
)

// Record is the entire data of an error and its code chain, packed into a
// single 32-bit word. The zero Record is a chain of length zero whose
// current code is 0.
//
// Record knows nothing about categories: it stores raw codes and raw
// link-table indices. Error and DynError pair a Record with the category
// information needed to interpret it.
type Record struct {
	bits uint32
}

// ChainEntry is one chained (code, link-table index) pair, as returned
// when PushFront evicts the oldest entry of a full chain.
type ChainEntry struct {
	Code      Code
	LinkIndex uint8
}

// NewRecord returns a Record with chain length 0 whose current code is
// code. The code is masked to CodeBits bits.
func NewRecord(code Code) Record {
	return Record{bits: uint32(code) & codeMask}
}

// RecordFromBits reassembles a Record from a raw packed word, the inverse
// of Bits. No validation is performed: a word that violates the layout
// invariants (gapped link fields, indices pointing past a category's link
// table) yields a record whose iteration silently truncates. Keeping such
// words meaningful is the caller's obligation.
func RecordFromBits(bits uint32) Record {
	return Record{bits: bits}
}

// Bits returns the raw packed word.
func (r Record) Bits() uint32 { return r.bits }

// Code returns the current (most recent) error code.
func (r Record) Code() Code {
	return Code(r.bits & codeMask)
}

// WithCode replaces the current code with code and returns the updated
// record together with the code that was replaced. The chain is left
// untouched, so the new code must belong to the same category as the old
// one for the record to stay meaningful.
func (r Record) WithCode(code Code) (Record, Code) {
	old := r.Code()
	r.bits = r.bits&^codeMask | uint32(code)&codeMask
	return r, old
}

// FirstLinkIndex returns the link-table index of the first chained entry,
// or ok=false if the chain is empty.
func (r Record) FirstLinkIndex() (index uint8, ok bool) {
	raw := (r.bits >> linkOffset) & linkMask
	if raw == 0 {
		return 0, false
	}
	return uint8(raw - 1), true
}

// ChainLen returns the number of chained error codes: the count of
// contiguous present link-index fields scanning from the front.
func (r Record) ChainLen() int {
	mask := linkMask << linkOffset
	for i := 0; i < ChainCap; i++ {
		if r.bits&mask == 0 {
			return i
		}
		mask <<= linkWidth
	}
	return ChainCap
}

// ChainFull reports whether the chain is at capacity, i.e. whether the
// next PushFront will evict the oldest entry.
func (r Record) ChainFull() bool {
	return r.ChainLen() == ChainCap
}

// PushFront prepends the current code to the front of the chain and makes
// code the new current code, recording linkIndex (biased by +1) as the
// new first link-index field.
//
// code is masked to 4 bits and linkIndex+1 to 3 bits. If the chain was
// already full, the oldest entry falls off the back and is returned with
// evicted=true; overflow is a designed behavior here, not an error. The
// caller decides whether eviction is acceptable.
func (r Record) PushFront(code Code, linkIndex uint8) (next Record, old ChainEntry, evicted bool) {
	backRaw := (r.bits >> (linkOffset + (ChainCap-1)*linkWidth)) & linkMask
	if backRaw != 0 {
		evicted = true
		old = ChainEntry{
			Code:      Code((r.bits >> (ChainCap * CodeBits)) & codeMask),
			LinkIndex: uint8(backRaw - 1),
		}
	}

	links := (r.bits&allLinkMask)<<linkWidth |
		((uint32(linkIndex)+1)&linkMask)<<linkOffset
	codes := (r.bits<<CodeBits)&allCodeMask | uint32(code)&codeMask

	return Record{bits: links | codes}, old, evicted
}

// iterChain returns a cursor over the stored chain entries in storage
// order (chained slot 0 first), stopping at the first absent link field.
// Cursors are cheap; obtain a fresh one per walk.
func (r Record) iterChain() chainCursor {
	return chainCursor{
		codes: (r.bits & allCodeMask) >> CodeBits,
		links: (r.bits & allLinkMask) >> linkOffset,
	}
}

// chainCursor is the record-level half of the chain walk: it yields raw
// (code, following link index) pairs with no category interpretation.
type chainCursor struct {
	codes uint32
	links uint32
}

// next yields the next stored pair. nextLink is the link-table index of
// the entry after this one, or -1 when that entry is absent. ok=false
// once the cursor is exhausted; it stays false afterwards.
func (c *chainCursor) next() (code Code, nextLink int, ok bool) {
	if c.links == 0 {
		return 0, -1, false
	}
	code = Code(c.codes & codeMask)
	c.codes >>= CodeBits
	c.links >>= linkWidth

	return code, int(c.links&linkMask) - 1, true
}
