// error.go — the typed error for xgx-errchain core.
//
// Error[C] pairs a Record with its current category at the type level.
// The tag costs nothing at runtime: an Error[C] occupies exactly the
// record's 4 bytes, and chaining against a statically linked category is
// O(1) with no failure path (see chain.go). The price is that a function
// forwarding causes of several different categories must chain them into
// one category of its own, or erase the type with Erase (see dyn.go).
//
// All values are plain data: comparable with ==, copied by value, safe to
// share across goroutines without synchronization. Every operation is a
// pure value transformation; nothing mutates a previously held error.
package xgxerrchain

// Error is a typed error: a packed chain record whose current code
// belongs to category C, known at compile time.
//
// The zero Error[C] is code 0 of C with an empty chain.
type Error[C Category] struct {
	rec Record
}

// New returns an Error[C] with an empty chain from code.
func New[C Category](code C) Error[C] {
	return Error[C]{rec: NewRecord(Code(code))}
}

// ErrorFromRecord wraps a raw Record as an Error[C]. No validation is
// performed: if the record's current code is not a variant of C, or its
// chain was not produced against C's link table, the behavior of every
// method on the result is undefined. Safe constructors (New, Chain,
// TryChain) never produce such records.
func ErrorFromRecord[C Category](rec Record) Error[C] {
	return Error[C]{rec: rec}
}

// Code returns the current error code as a value of C.
func (e Error[C]) Code() C {
	return C(e.rec.Code())
}

// WithCode replaces the current code with another code of the same
// category, leaving the chain untouched.
func (e Error[C]) WithCode(code C) Error[C] {
	rec, _ := e.rec.WithCode(Code(code))
	return Error[C]{rec: rec}
}

// Record returns the underlying packed chain record.
func (e Error[C]) Record() Record { return e.rec }

// ChainLen returns the number of chained error codes.
func (e Error[C]) ChainLen() int { return e.rec.ChainLen() }

// ChainCap returns the chain capacity. Always ChainCap.
func (e Error[C]) ChainCap() int { return ChainCap }

// Handle returns the handle of the current category C.
func (e Error[C]) Handle() Handle {
	return Handle{desc: descriptorOf[C]()}
}

// Iter returns a fresh walk over this error's chain, newest to oldest,
// starting at the current code. Iterators are single-use; obtaining a
// new one is cheap.
func (e Error[C]) Iter() *ChainIter {
	return newChainIter(e.rec, descriptorOf[C]())
}

// Error returns the concise one-line message for the current code only:
// "Name(code): variant". The full chain renders via %+v or WriteChain.
func (e Error[C]) Error() string {
	return firstLine(e)
}
