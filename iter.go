// iter.go — chain iteration and membership queries for xgx-errchain core.
//
// The walk reconstructs, for each node from newest to oldest, the code
// and the category that produced it, without any per-node type
// information in the record: each category's descriptor is recovered
// from the previous node's link table via the dispatch step. The walk
// ends at whichever comes first, the stored chain length or the point
// where a link table runs out; the latter only happens for corrupted or
// raw-built records and truncates silently rather than failing, so
// iteration stays a total operation.
//
// Membership queries (CausedBy, CodeOfCategory) compare category handles
// along the walk, O(chain length); they never dispatch through handles.
package xgxerrchain

// Chained is implemented by both error flavors and grants access to the
// causal chain walk. WriteChain and the membership queries accept it so
// that Error[C] and DynError share one implementation.
type Chained interface {
	// Iter returns a fresh, single-use walk over the chain, newest first.
	Iter() *ChainIter
}

// ChainIter walks an error chain from the newest to the oldest node,
// yielding each node's code and category handle. A ChainIter is lazy,
// finite and single-use: once exhausted it stays exhausted, and fresh
// iterators are cheap to obtain from the error value.
type ChainIter struct {
	desc     *Descriptor // current node's category; nil when exhausted
	code     Code
	nextLink int // link index of the following node; -1 when absent
	rest     chainCursor
}

// newChainIter starts a walk at rec's current code, interpreted against
// desc. A nil desc yields an exhausted iterator.
func newChainIter(rec Record, desc *Descriptor) *ChainIter {
	return &ChainIter{
		desc:     desc,
		code:     rec.Code(),
		nextLink: firstLink(rec),
		rest:     rec.iterChain(),
	}
}

// firstLink adapts Record.FirstLinkIndex to the -1-for-absent convention
// used throughout the walk.
func firstLink(r Record) int {
	if i, ok := r.FirstLinkIndex(); ok {
		return int(i)
	}
	return -1
}

// Next returns the next (code, category handle) node, newest first.
// ok=false once the walk is exhausted; it stays false afterwards.
func (it *ChainIter) Next() (_ Code, _ Handle, ok bool) {
	if it.desc == nil {
		return 0, Handle{}, false
	}
	code, handle := it.code, Handle{desc: it.desc}

	// Resolve the following node's category through the current one's
	// link table; the link index is consumed whether or not it resolves.
	next, _ := it.desc.dispatch(0, it.nextLink, nil)
	it.nextLink = -1
	if c, nl, restOK := it.rest.next(); restOK && next != nil {
		it.desc, it.code, it.nextLink = next, c, nl
	} else {
		it.desc = nil
	}

	return code, handle, true
}

// CausedBy reports whether any node of err's chain, including the
// current one, is exactly code of category T. O(chain length).
func CausedBy[T Category](err Chained, code T) bool {
	want := HandleOf[T]()
	for it := err.Iter(); ; {
		c, h, ok := it.Next()
		if !ok {
			return false
		}
		if h == want && c == Code(code) {
			return true
		}
	}
}

// CodeOfCategory returns the newest code in err's chain that belongs to
// category T, or ok=false when no node does. O(chain length).
func CodeOfCategory[T Category](err Chained) (_ T, ok bool) {
	want := HandleOf[T]()
	for it := err.Iter(); ; {
		c, h, ok := it.Next()
		if !ok {
			var zero T
			return zero, false
		}
		if h == want {
			return T(c), true
		}
	}
}

// Is reports whether the current (most recent) code of e belongs to
// category C.
func Is[C Category](e DynError) bool {
	return e.desc == descriptorOf[C]()
}

// Convert turns an erased error back into a typed one when its current
// category is C, keeping the same record; otherwise ok=false and the
// caller's e is untouched.
func Convert[C Category](e DynError) (_ Error[C], ok bool) {
	if !Is[C](e) {
		return Error[C]{}, false
	}
	return Error[C]{rec: e.rec}, true
}
