package lora

import (
	"errors"
	"fmt"
)

// Error taxonomy of the PHY layer. Every driver failure is mapped to one of
// these and returned immediately, recovery is the responsibility of the
// orchestration layer above.
var (
	// ErrReset reports a failed hardware reset. The caller must retry the
	// full init sequence.
	ErrReset = errors.New("radio reset failed")

	// ErrIrqLine reports an interrupt line failure, fatal to the current
	// action.
	ErrIrqLine = errors.New("interrupt line failure")

	// ErrInvalidConfiguration reports a programming command rejected by the
	// chip.
	ErrInvalidConfiguration = errors.New("invalid radio configuration")

	// ErrTransmitTimeout is derived from the chip timeout interrupt bit and
	// is terminal regardless of the active mode.
	ErrTransmitTimeout = errors.New("transmit timeout")

	// ErrBus reports a failed chip mode command on the command transport.
	ErrBus = errors.New("bus transfer failed")
)

// OpError tags a driver failure with the call site that produced it, so a
// multi step sequence like InitLora can report which stage failed without
// this layer interpreting driver internal causes.
type OpError struct {
	Op  uint8
	Err error
}

func (obj *OpError) Error() string {
	return fmt.Sprintf("radio operation %d failed: %v", obj.Op, obj.Err)
}

func (obj *OpError) Unwrap() error {
	return obj.Err
}
