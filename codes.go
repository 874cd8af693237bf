// codes.go — error code type and range helpers for xgx-errchain core.
//
// Intent:
//   - Codes are opaque small integers: 4 bits wide, values 0–15.
//   - Core attaches no meaning to individual values; the owning category
//     supplies naming and rendering.
//   - Conversion between a category enumeration and Code is the plain
//     uint8 conversion in both directions. Converting a code that the
//     enumeration does not cover yields an undefined enumeration value;
//     that is the caller's obligation, not a core-checked invariant.
package xgxerrchain

// Code identifies one variant within one error category.
//
// A Code is an opaque unsigned integer restricted to CodeBits bits. It is
// copied by value everywhere and carries no payload. Record operations
// mask stored codes to this range.
type Code uint8

const (
	// CodeBits is the fixed bit width of one Code inside a Record.
	CodeBits = 4

	// MaxCode is the largest representable Code value.
	MaxCode Code = 1<<CodeBits - 1
)

// Valid reports whether c fits the 4-bit code range. Ergonomics-only;
// out-of-range codes are masked on storage, never rejected.
func (c Code) Valid() bool { return c <= MaxCode }
