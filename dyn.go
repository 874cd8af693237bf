// dyn.go — the type-erased error for xgx-errchain core.
//
// DynError is the untyped counterpart to Error[C]: the same packed
// Record, paired at runtime with the descriptor of its current category
// instead of a type parameter. That one extra pointer buys the ability
// to carry errors of categories unknown to the caller, at two costs:
//   - chaining becomes a runtime-checked operation (TryChain scans the
//     new category's link table, O(MaxLinks), and can be refused), where
//     the typed path is compile-checked and O(1);
//   - the value grows from 4 bytes to 4 bytes plus a pointer.
//
// Like Error[C], a DynError is plain data: comparable, copied by value,
// never mutated in place.
package xgxerrchain

// DynError is a type-erased error: a packed chain record plus the
// descriptor of its current category, resolved at run time.
//
// The zero DynError denotes no category; its chain walk is empty and it
// cannot be chained onto. Use NewDyn or Erase to construct meaningful
// values.
type DynError struct {
	rec  Record
	desc *Descriptor
}

// NewDyn returns a DynError with an empty chain from code.
func NewDyn[C Category](code C) DynError {
	return DynError{rec: NewRecord(Code(code)), desc: descriptorOf[C]()}
}

// Erase drops the compile-time category tag of e, keeping the same
// record. The inverse direction is Convert (checked) in iter.go.
func Erase[C Category](e Error[C]) DynError {
	return DynError{rec: e.rec, desc: descriptorOf[C]()}
}

// DynFromRawParts reassembles a DynError from a record and a category
// descriptor. No validation is performed: if the record was not produced
// against desc's category and link table, iteration and rendering of the
// result silently truncate (never crash), and chaining behavior is
// undefined. Keeping the parts consistent is the caller's obligation.
func DynFromRawParts(rec Record, desc *Descriptor) DynError {
	return DynError{rec: rec, desc: desc}
}

// RawParts splits this error into its record and category descriptor.
func (e DynError) RawParts() (Record, *Descriptor) {
	return e.rec, e.desc
}

// Code returns the current error code. Unlike Error[C].Code it cannot
// name the enumeration type; use CodeOfCategory or Convert to recover
// typed codes.
func (e DynError) Code() Code { return e.rec.Code() }

// Record returns the underlying packed chain record.
func (e DynError) Record() Record { return e.rec }

// ChainLen returns the number of chained error codes.
func (e DynError) ChainLen() int { return e.rec.ChainLen() }

// ChainCap returns the chain capacity. Always ChainCap.
func (e DynError) ChainCap() int { return ChainCap }

// Handle returns the handle of the current category, or the zero Handle
// for the zero DynError.
func (e DynError) Handle() Handle { return Handle{desc: e.desc} }

// Descriptor returns the descriptor of the current category, or nil for
// the zero DynError.
func (e DynError) Descriptor() *Descriptor { return e.desc }

// Iter returns a fresh walk over this error's chain, newest to oldest.
// The walk of the zero DynError is empty.
func (e DynError) Iter() *ChainIter {
	return newChainIter(e.rec, e.desc)
}

// Error returns the concise one-line message for the current code only:
// "Name(code): variant". The full chain renders via %+v or WriteChain.
func (e DynError) Error() string {
	return firstLine(e)
}
