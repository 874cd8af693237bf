// category.go — category descriptors, handles and dispatch for xgx-errchain core.
//
// Scope:
//   - Descriptor: the runtime identity of one error category (name,
//     per-code renderer, fixed link table of up to MaxLinks categories).
//   - Category: the constraint satisfied by enumeration types that carry
//     a descriptor.
//   - Handle: opaque comparable identity, for membership queries only.
//   - The dispatch step that renders one node and resolves the next
//     linked descriptor during a chain walk.
//
// Identity model: a category is identified by the address of its
// Descriptor. Two handles are equal iff they wrap the same descriptor
// pointer, which holds exactly when they denote the same concrete
// category type (each category declares one package-level descriptor).
// Descriptors are immutable after construction, so sharing them across
// goroutines needs no synchronization.
package xgxerrchain

import (
	"fmt"
	"io"
)

// MaxLinks is the maximum number of entries in a category's link table.
const MaxLinks = 6

// RenderFunc writes the debug text of one code of a category: the
// variant-level part of a chain line, without the "Name(code): " frame.
// Implementations must not retain w.
type RenderFunc func(w io.Writer, code Code) error

// Descriptor describes one error category: its display name, how its
// codes render, and the ordered, fixed set of categories it may chain
// onto. Every category declares exactly one Descriptor, typically as a
// package-level variable; the descriptor's address is the category's
// runtime identity.
type Descriptor struct {
	name     string
	renderFn RenderFunc
	links    [MaxLinks]*Descriptor
	numLinks int
}

// NewDescriptor builds a category descriptor. links lists the categories
// this one may chain onto, in link-table order; pass Unused (or nil) to
// hold a slot open and Self for a category that chains onto itself. At
// most MaxLinks links are supported; more panic.
//
// The link table is fixed at construction and never changes. Two
// categories that link each other cannot reference each other's
// package-level descriptor variables directly (Go rejects the
// initialization cycle); construct such descriptors in an init function
// instead.
func NewDescriptor(name string, render RenderFunc, links ...*Descriptor) *Descriptor {
	if len(links) > MaxLinks {
		panic(fmt.Sprintf("xgxerrchain: category %q declares %d links, max is %d",
			name, len(links), MaxLinks))
	}
	d := &Descriptor{name: name, renderFn: render, numLinks: len(links)}
	for i := range d.links {
		switch {
		case i >= len(links) || links[i] == nil:
			d.links[i] = Unused
		case links[i] == Self:
			d.links[i] = d
		default:
			d.links[i] = links[i]
		}
	}
	return d
}

// Unused is the sentinel descriptor for empty link-table slots. It names
// no category, has no variants and links to nothing.
var Unused = &Descriptor{name: ""}

// Self marks a link-table slot that refers to the category being
// declared, for categories whose errors chain onto themselves.
// NewDescriptor replaces it with the descriptor under construction; it
// never appears in a finished link table.
var Self = &Descriptor{name: ""}

// Name returns the category's display name.
func (d *Descriptor) Name() string { return d.name }

// NumLinks returns the number of declared link-table entries.
func (d *Descriptor) NumLinks() int { return d.numLinks }

// Link returns the linked descriptor at index i, or ok=false when i is
// outside the declared table. The slot may hold Unused.
func (d *Descriptor) Link(i int) (_ *Descriptor, ok bool) {
	if i < 0 || i >= d.numLinks {
		return nil, false
	}
	return d.links[i], true
}

// linkIndexOf returns the slot index of target in d's link table.
func (d *Descriptor) linkIndexOf(target *Descriptor) (uint8, bool) {
	for i := 0; i < d.numLinks; i++ {
		if d.links[i] == target {
			return uint8(i), true
		}
	}
	return 0, false
}

// Render writes one full chain line body, "Name(code): variant", to w.
// A category without a renderer falls back to numeric variant text.
func (d *Descriptor) Render(w io.Writer, code Code) error {
	if _, err := fmt.Fprintf(w, "%s(%d): ", d.name, uint8(code)); err != nil {
		return err
	}
	if d.renderFn == nil {
		_, err := fmt.Fprintf(w, "code(%d)", uint8(code))
		return err
	}
	return d.renderFn(w, code)
}

// dispatch is the per-node protocol step of a chain walk: render code
// into w when a sink is present (propagating the write failure
// immediately), then resolve the linked descriptor at linkIndex.
// linkIndex < 0 means absent; an index outside the declared table means
// "no further link" rather than an error, so walks over corrupted or
// raw-built records truncate instead of failing.
func (d *Descriptor) dispatch(code Code, linkIndex int, w io.Writer) (*Descriptor, error) {
	if w != nil {
		if err := d.Render(w, code); err != nil {
			return nil, err
		}
	}
	if linkIndex < 0 {
		return nil, nil
	}
	next, ok := d.Link(linkIndex)
	if !ok {
		return nil, nil
	}
	return next, nil
}

// RenderNames builds a RenderFunc that renders codes positionally:
// names[0] is the text of code 0, and so on. Codes past the end render
// numerically. This stands in for generated per-variant rendering when
// categories are written by hand.
func RenderNames(names ...string) RenderFunc {
	names = append([]string(nil), names...)
	return func(w io.Writer, code Code) error {
		if int(code) < len(names) {
			_, err := io.WriteString(w, names[code])
			return err
		}
		_, err := fmt.Fprintf(w, "code(%d)", uint8(code))
		return err
	}
}

// Category constrains the enumeration types usable as error categories:
// a uint8-based type whose values are Codes, carrying a Descriptor.
//
// Descriptor must return the same (package-level) descriptor for every
// value of the type, including the zero value; the core calls it on a
// zero value to recover the descriptor from the type alone.
type Category interface {
	~uint8
	Descriptor() *Descriptor
}

// descriptorOf recovers the descriptor of category C from its type.
func descriptorOf[C Category]() *Descriptor {
	var zero C
	return zero.Descriptor()
}

// Handle is an opaque, comparable runtime identity for a category. Two
// handles compare equal iff they denote the same concrete category type.
// Handles answer membership queries (CausedBy, CodeOfCategory, Is) and
// are never used for dispatch.
//
// The zero Handle denotes no category.
type Handle struct {
	desc *Descriptor
}

// HandleOf returns the handle of category C.
func HandleOf[C Category]() Handle {
	return Handle{desc: descriptorOf[C]()}
}

// Name returns the display name of the category this handle denotes, or
// "" for the zero handle.
func (h Handle) Name() string {
	if h.desc == nil {
		return ""
	}
	return h.desc.name
}
