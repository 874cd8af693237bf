// format.go — rendering and fmt.Formatter implementations for xgx-errchain core.
//
// Behavior:
//
//   %s, %v   → concise one-line text for the current code: "Name(code): variant".
//   %+v      → full chain, one line per node, newest first:
//                Name(code): variant
//                - CauseName(code): variant
//                - OlderCauseName(code): variant
//   %q       → quoted concise text.
//
// Rationale:
//   - Keep core free of logging/HTTP/JSON policy; only fmt and io.Writer
//     sinks. WriteChain is the sink-level API for callers that need to
//     observe write failures; fmt verbs swallow them as fmt requires.
//   - Both error flavors share one walk, so typed and erased errors of
//     the same record render identically.
package xgxerrchain

import (
	"fmt"
	"io"
	"strings"
)

// WriteChain renders err's full chain to w: the current error first,
// unprefixed, then one "- "-prefixed line per chained node, newest to
// oldest. The first write failure aborts the walk immediately and is
// returned.
func WriteChain(w io.Writer, err Chained) error {
	it := err.Iter()
	for first := true; ; first = false {
		code, h, ok := it.Next()
		if !ok {
			return nil
		}
		if !first {
			if _, werr := io.WriteString(w, "\n- "); werr != nil {
				return werr
			}
		}
		if werr := h.desc.Render(w, code); werr != nil {
			return werr
		}
	}
}

// chainString renders the full chain into a string.
func chainString(err Chained) string {
	var b strings.Builder
	_ = WriteChain(&b, err) // strings.Builder writes cannot fail
	return b.String()
}

// firstLine renders only the current error's line. Empty for the zero
// DynError, which has no category to name.
func firstLine(err Chained) string {
	code, h, ok := err.Iter().Next()
	if !ok {
		return ""
	}
	var b strings.Builder
	_ = h.desc.Render(&b, code)
	return b.String()
}

// formatChained implements the shared verb mapping.
func formatChained(s fmt.State, verb rune, err Chained) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_ = WriteChain(s, err)
			return
		}
		_, _ = io.WriteString(s, firstLine(err))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", firstLine(err))
	default: // 's' and anything unrecognized render concisely
		_, _ = io.WriteString(s, firstLine(err))
	}
}

func (e Error[C]) Format(s fmt.State, verb rune) { formatChained(s, verb, e) }

func (e DynError) Format(s fmt.State, verb rune) { formatChained(s, verb, e) }
