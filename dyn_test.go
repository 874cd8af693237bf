// dyn_test.go — type-erased errors: erasure, dynamic chaining, queries.
package xgxerrchain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDyn_MatchesErasedTyped(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Erase(New(spiBusError)), NewDyn(spiBusError))
	assert.Equal(t, Code(spiBusError), NewDyn(spiBusError).Code())
	assert.Equal(t, HandleOf[spiError](), NewDyn(spiBusError).Handle())
}

func TestTryChain_BitIdenticalToStaticPath(t *testing.T) {
	t.Parallel()

	static := Chain(New(spiBusError), gyroFromSpi, gyroInitFailed)

	dyn, ok := TryChain(NewDyn(spiBusError), gyroInitFailed)
	require.True(t, ok)
	assert.Equal(t, static, dyn, "both chaining paths must produce the same packed record")
	assert.Equal(t, static.Record().Bits(), dyn.Record().Bits())
}

func TestTryChain_AcrossInteriorUnusedSlot(t *testing.T) {
	t.Parallel()

	// acc is at slot 2 of the control table, behind an Unused hole.
	static := Chain(New(accReadFailed), controlFromAcc, controlReadoutFailed)

	dyn, ok := TryChain(NewDyn(accReadFailed), controlReadoutFailed)
	require.True(t, ok)
	assert.Equal(t, static, dyn)
}

func TestTryChain_UnlinkedRejected(t *testing.T) {
	t.Parallel()

	orig := NewDyn(gyroInitFailed)
	_, ok := TryChain(orig, fsCorrupt)

	require.False(t, ok)
	assert.Equal(t, NewDyn(gyroInitFailed), orig, "rejected input must be unchanged")
}

func TestTryChain_ZeroDynErrorRejected(t *testing.T) {
	t.Parallel()

	var zero DynError
	_, ok := TryChain(zero, gyroInitFailed)
	assert.False(t, ok)
}

func TestMustChain_LinkedSucceeds(t *testing.T) {
	t.Parallel()

	err := MustChain(NewDyn(spiChipSelectTimeout), gyroReadFailed)
	assert.Equal(t, gyroReadFailed, err.Code())
	assert.True(t, CausedBy(err, spiChipSelectTimeout))
}

func TestMustChain_UnlinkedPanicsWithRenderedError(t *testing.T) {
	t.Parallel()

	err := MustChain(NewDyn(spiBusError), gyroInitFailed)
	dyn := Erase(err)

	require.PanicsWithValue(t,
		"cannot chain unlinked error categories: GyroError(0): InitFailed\n- SpiError(0): BusError",
		func() { MustChain(dyn, fsFull) })
}

func TestIs_CurrentCategoryOnly(t *testing.T) {
	t.Parallel()

	dyn := Erase(Chain(New(spiBusError), gyroFromSpi, gyroInitFailed))

	assert.True(t, Is[gyroError](dyn))
	assert.False(t, Is[spiError](dyn), "Is looks at the current code, not the chain")
	assert.False(t, Is[gyroError](DynError{}))
}

func TestConvert_RoundTrip(t *testing.T) {
	t.Parallel()

	typed := Chain(New(spiBusError), gyroFromSpi, gyroSelfTestFailed)
	dyn := Erase(typed)

	back, ok := Convert[gyroError](dyn)
	require.True(t, ok)
	assert.Equal(t, typed, back)

	_, ok = Convert[spiError](dyn)
	assert.False(t, ok)
}

func TestDyn_QueriesWalkTheChain(t *testing.T) {
	t.Parallel()

	dyn := Erase(deepChain())

	assert.Equal(t, ChainCap, dyn.ChainLen())
	assert.Equal(t, ChainCap, dyn.ChainCap())
	assert.True(t, CausedBy(dyn, spiBusError))
	assert.True(t, CausedBy(dyn, taskAborted))
	assert.False(t, CausedBy(dyn, fsCorrupt))

	code, ok := CodeOfCategory[controlError](dyn)
	require.True(t, ok)
	assert.Equal(t, controlReadoutFailed, code)

	_, ok = CodeOfCategory[fsError](dyn)
	assert.False(t, ok)
}

func TestDyn_RawPartsRoundTrip(t *testing.T) {
	t.Parallel()

	dyn := Erase(Chain(New(spiBusError), gyroFromSpi, gyroInitFailed))
	rec, desc := dyn.RawParts()

	assert.Same(t, gyroDesc, desc)
	assert.Equal(t, dyn, DynFromRawParts(rec, desc))
}

func TestDyn_ZeroValue(t *testing.T) {
	t.Parallel()

	var zero DynError

	assert.Equal(t, Handle{}, zero.Handle())
	assert.Nil(t, zero.Descriptor())
	assert.Equal(t, "", zero.Error())

	_, _, ok := zero.Iter().Next()
	assert.False(t, ok)
}
