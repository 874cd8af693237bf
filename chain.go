// chain.go — static and dynamic chaining for xgx-errchain core.
//
// Two chaining mechanisms share one record operation (Record.PushFront):
//
//   - Static: Chain / ChainNew consume a Link[To, From] witness. The
//     witness can only be constructed for category pairs that are
//     actually linked (validated once, at package init, by MustLink or
//     LinkOf), and it bakes in the link-table index, so every chain site
//     is O(1) with no failure path. Mismatched category pairs are a
//     compile error because the witness's type parameters will not line
//     up.
//   - Dynamic: TryChain / MustChain resolve the erased error's category
//     against the new category's link table at run time, O(MaxLinks),
//     and can be refused (TryChain) or panic (MustChain).
//
// Both paths produce bit-identical records for the same inputs.
//
// Overflow: a push onto a full chain evicts the oldest entry by default;
// under the chainoverflowpanic build tag it panics instead (overflow.go).
package xgxerrchain

import "fmt"

// Link is a witness that category From occupies a fixed slot of To's
// link table, i.e. that an error of From may be chained into a code of
// To. Obtain witnesses with MustLink or LinkOf, once, typically as
// package-level variables next to the category definitions; a witness is
// then reusable at any number of chain sites.
//
// The zero Link is not a valid witness; Chain called with one would
// record link index 0 regardless of the actual table layout.
type Link[To, From Category] struct {
	index uint8
}

// Index returns the slot of From in To's link table.
func (l Link[To, From]) Index() int { return int(l.index) }

// LinkOf looks From up in To's link table and returns the witness, or
// ok=false when the categories are not linked.
func LinkOf[To, From Category]() (_ Link[To, From], ok bool) {
	idx, ok := descriptorOf[To]().linkIndexOf(descriptorOf[From]())
	if !ok {
		return Link[To, From]{}, false
	}
	return Link[To, From]{index: idx}, true
}

// MustLink is LinkOf for category pairs that are known to be linked; it
// panics when they are not. Intended for package-level witness variables,
// so a wrong pairing fails at init rather than at a chain site.
func MustLink[To, From Category]() Link[To, From] {
	l, ok := LinkOf[To, From]()
	if !ok {
		panic(fmt.Sprintf("xgxerrchain: category %q does not link category %q",
			descriptorOf[To]().Name(), descriptorOf[From]().Name()))
	}
	return l
}

// Chain prepends e's current code to the chain and makes code the new
// current one, producing an error typed with the new category. O(1),
// no failure path; on a full chain the oldest entry is evicted (or, under
// the chainoverflowpanic build tag, the push panics).
func Chain[To, From Category](e Error[From], via Link[To, From], code To) Error[To] {
	return Error[To]{rec: chainRecord(e.rec, Code(code), via.index)}
}

// ChainNew starts a fresh chain directly from a bare cause code:
// shorthand for Chain(New(cause), via, code).
func ChainNew[To, From Category](cause From, via Link[To, From], code To) Error[To] {
	return Chain(New(cause), via, code)
}

// TryChain chains the type-erased e into code, producing a typed error:
// it scans To's link table for e's category and, on a match, pushes with
// the found index. The now-redundant descriptor pointer is dropped, since
// To is statically known from here on.
//
// On unlinked categories it reports ok=false and performs no partial
// work; the caller still holds e unchanged (value semantics). Cost is
// O(MaxLinks), the load-bearing trade-off of erasing the type.
func TryChain[To Category](e DynError, code To) (_ Error[To], ok bool) {
	idx, ok := descriptorOf[To]().linkIndexOf(e.desc)
	if !ok {
		return Error[To]{}, false
	}
	return Error[To]{rec: chainRecord(e.rec, Code(code), idx)}, true
}

// MustChain is TryChain for category pairs the caller knows are linked;
// it panics, rendering the erased error, when they are not.
func MustChain[To Category](e DynError, code To) Error[To] {
	t, ok := TryChain(e, code)
	if !ok {
		panic(fmt.Sprintf("cannot chain unlinked error categories: %s", chainString(e)))
	}
	return t
}

// chainRecord applies one push under the configured overflow policy.
func chainRecord(rec Record, code Code, linkIndex uint8) Record {
	next, _, evicted := rec.PushFront(code, linkIndex)
	if panicOnOverflow && evicted {
		panic("xgxerrchain: error chain overflow")
	}
	return next
}
