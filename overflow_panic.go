//go:build chainoverflowpanic

package xgxerrchain

// panicOnOverflow selects the chain overflow behavior at build time.
// Strict build: chaining onto a full record panics instead of evicting.
const panicOnOverflow = true
