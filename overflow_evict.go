//go:build !chainoverflowpanic

package xgxerrchain

// panicOnOverflow selects the chain overflow behavior at build time.
// Default build: overflow evicts the oldest chained entry.
const panicOnOverflow = false
