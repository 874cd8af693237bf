// doc.go — package documentation for xgx-errchain
//
// Package xgxerrchain provides a zero-allocation error representation
// with a bounded causal chain, for code that cannot afford heap-backed
// error values: an error is one 32-bit word holding its current code
// plus up to four chained cause codes, and chaining, querying and
// rendering all operate on that word directly. It is designed to be:
//   - Fixed-size: Error[C] is exactly 4 bytes; DynError adds one pointer
//   - Heap-free: no operation allocates (rendering writes to the
//     caller's sink)
//   - Policy-free (no logging/HTTP/JSON in core)
//
// # Model
//
// Codes are opaque 4-bit integers. A category is an enumeration type
// (uint8-based) that owns a set of codes and declares, via its
// Descriptor, a display name, per-code rendering, and an ordered link
// table of up to 6 categories it may chain onto:
//
//	type spiError uint8
//
//	const (
//		spiBusError spiError = iota
//		spiChipSelectTimeout
//	)
//
//	var spiDesc = xgxerrchain.NewDescriptor("SpiError",
//		xgxerrchain.RenderNames("BusError", "ChipSelectTimeout"))
//
//	func (spiError) Descriptor() *xgxerrchain.Descriptor { return spiDesc }
//
// A category that lists another in its link table may absorb that
// category's errors as causes. The chain records, per cause, only the
// 4-bit code and a 3-bit index into the absorbing category's link table;
// iteration re-derives each cause's category from those indices, so no
// per-node type information is stored.
//
// # Static vs. dynamic chaining
//
//	+-----------------------+----------------------+--------------------------+
//	| Operation             | Check                | Cost                     |
//	+-----------------------+----------------------+--------------------------+
//	| Chain / ChainNew      | compile time (Link   | O(1), no failure path    |
//	|                       | witness, init-time)  |                          |
//	| TryChain              | run time             | O(6) scan, refusable     |
//	| MustChain             | run time             | O(6) scan, panics        |
//	+-----------------------+----------------------+--------------------------+
//
// The typed path threads the category through the Error[C] type
// parameter and a Link[To, From] witness (obtained once with MustLink,
// next to the category definitions). The erased path (DynError) carries
// the category descriptor at run time and resolves links by scanning.
// Both paths produce bit-identical records.
//
// # Overflow
//
// The chain holds at most 4 causes. A fifth chain operation evicts the
// oldest entry by default; building with the chainoverflowpanic tag
// makes overflow panic instead. CurrentOverflowPolicy reports the active
// behavior.
//
// # Formatting
//
// Both error flavors implement error and fmt.Formatter:
//   - %v, %s → concise one-line "Name(code): variant" for the current code
//   - %+v    → full chain, one "- "-prefixed line per cause, newest first
//   - %q     → quoted concise form
//
// WriteChain is the io.Writer-level API for callers that must observe
// write failures; the first failed write aborts the walk.
//
// # Queries
//
// CausedBy, CodeOfCategory, Is and Convert answer membership questions
// by walking the chain and comparing category handles, O(chain length).
// Handles are opaque and comparable; they are never used for dispatch.
//
// # Concurrency
//
// Every value is plain data with value-copy semantics: an error behaves
// like an integer, may be copied freely across goroutines, and needs no
// locking. Descriptors are immutable after construction. No operation
// blocks, suspends, or touches global mutable state.
//
// # Caveats
//
// The raw reconstruction APIs (RecordFromBits, ErrorFromRecord,
// DynFromRawParts) bypass the safe constructors and perform no
// validation; records they produce may render truncated chains. See the
// respective doc comments for the exact caller obligations.
package xgxerrchain
