// categories_test.go — shared test categories for xgx-errchain.
//
// A sensor-driver-shaped category graph, linear enough to fill the chain
// to capacity and branched enough to exercise interior Unused slots:
//
//	spiError                          leaf, no links
//	accError     → spi
//	gyroError    → spi
//	controlError → gyro, Unused, acc  (interior hole: acc sits at index 2)
//	taskError    → control
//	sysError     → task
//	appError     → sys
//	retryError   → itself             (self-linked)
//	fsError                           leaf, linked from nothing
package xgxerrchain

import "fmt"

type spiError uint8

const (
	spiBusError spiError = iota
	spiChipSelectTimeout
)

var spiDesc = NewDescriptor("SpiError",
	RenderNames("BusError", "ChipSelectTimeout"))

func (spiError) Descriptor() *Descriptor { return spiDesc }

type accError uint8

const (
	accInitFailed accError = iota
	accReadFailed
)

var accDesc = NewDescriptor("AccError",
	RenderNames("InitFailed", "ReadFailed"), spiDesc)

func (accError) Descriptor() *Descriptor { return accDesc }

type gyroError uint8

const (
	gyroInitFailed gyroError = iota
	gyroReadFailed
	gyroSelfTestFailed
)

var gyroDesc = NewDescriptor("GyroError",
	RenderNames("InitFailed", "ReadFailed", "SelfTestFailed"), spiDesc)

func (gyroError) Descriptor() *Descriptor { return gyroDesc }

type controlError uint8

const (
	controlInitFailed controlError = iota
	controlReadoutFailed
)

var controlDesc = NewDescriptor("ControlTaskError",
	RenderNames("InitFailed", "ReadoutFailed"),
	gyroDesc, Unused, accDesc)

func (controlError) Descriptor() *Descriptor { return controlDesc }

type taskError uint8

const taskAborted taskError = iota

var taskDesc = NewDescriptor("TaskError", RenderNames("Aborted"), controlDesc)

func (taskError) Descriptor() *Descriptor { return taskDesc }

type sysError uint8

const sysDegraded sysError = iota

var sysDesc = NewDescriptor("SysError", RenderNames("Degraded"), taskDesc)

func (sysError) Descriptor() *Descriptor { return sysDesc }

type appError uint8

const appStartupFailed appError = iota

var appDesc = NewDescriptor("AppError", RenderNames("StartupFailed"), sysDesc)

func (appError) Descriptor() *Descriptor { return appDesc }

type retryError uint8

const (
	retryExhausted retryError = iota
	retryBackoff
)

var retryDesc = NewDescriptor("RetryError",
	RenderNames("Exhausted", "Backoff"), Self)

func (retryError) Descriptor() *Descriptor { return retryDesc }

type fsError uint8

const (
	fsCorrupt fsError = iota
	fsFull
)

var fsDesc = NewDescriptor("FsError", RenderNames("Corrupt", "Full"))

func (fsError) Descriptor() *Descriptor { return fsDesc }

// Link witnesses, resolved once the way library consumers would.
var (
	accFromSpi      = MustLink[accError, spiError]()
	gyroFromSpi     = MustLink[gyroError, spiError]()
	controlFromGyro = MustLink[controlError, gyroError]()
	controlFromAcc  = MustLink[controlError, accError]()
	taskFromControl = MustLink[taskError, controlError]()
	sysFromTask     = MustLink[sysError, taskError]()
	appFromSys      = MustLink[appError, sysError]()
	retryFromRetry  = MustLink[retryError, retryError]()
)

// Interface conformance guards.
var (
	_ error         = Error[spiError]{}
	_ error         = DynError{}
	_ fmt.Formatter = Error[spiError]{}
	_ fmt.Formatter = DynError{}
	_ Chained       = Error[spiError]{}
	_ Chained       = DynError{}
)

// deepChain builds the canonical full chain used by several tests:
// spi → gyro → control → task → sys (4 chain operations, 5 nodes).
func deepChain() Error[sysError] {
	e := ChainNew(spiBusError, gyroFromSpi, gyroReadFailed)
	e2 := Chain(e, controlFromGyro, controlReadoutFailed)
	e3 := Chain(e2, taskFromControl, taskAborted)
	return Chain(e3, sysFromTask, sysDegraded)
}
