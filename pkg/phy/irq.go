package phy

import (
	"fmt"

	"github.com/TheClams/lr2021-loraphy/pkg/lora"
	"github.com/TheClams/lr2021-loraphy/pkg/lr2021"
)

// SetIrqParams programs the interrupt mask routed to this adapter's DIO
// line as a function of the target mode: the bundled LoRa TX/RX mask for
// standby and receive, TX done and timeout for transmit, CAD done and CAD
// detected for detection, nothing otherwise.
func (obj *Adapter) SetIrqParams(mode lora.RadioMode) error {
	var mask lr2021.Intr
	switch mode {
	case lora.ModeStandby, lora.ModeReceive:
		mask = lr2021.IrqMaskLoraTxRx
	case lora.ModeTransmit:
		mask = lr2021.IrqTxDone | lr2021.IrqTimeout
	case lora.ModeChannelActivityDetection:
		mask = lr2021.IrqCadDone | lr2021.IrqCadDetected
	}
	if err := obj.driver.SetDioIrq(obj.dioIrq, mask); err != nil {
		return opErr(16, err)
	}
	return nil
}

// AwaitIrq suspends until the interrupt line rises. A line failure is fatal
// to the current action, the caller must restart it from configuration.
func (obj *Adapter) AwaitIrq() error {
	if err := obj.irq.WaitRisingEdge(); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrIrqLine, err)
	}
	return nil
}

// GetIrqState reads the chip status and interrupt flags once and decodes
// them for the given mode. The timeout flag is mode independent and always
// terminal. During receive, header and CRC errors are folded into "no state
// yet", the chip keeps listening through its automatic restart and the
// layers above own any retry or timeout policy.
func (obj *Adapter) GetIrqState(mode lora.RadioMode, cadDetected *bool) (lora.IrqState, error) {
	_, intr, err := obj.driver.Status()
	if err != nil {
		return lora.IrqNone, opErr(15, err)
	}
	if intr.Timeout() {
		return lora.IrqNone, lora.ErrTransmitTimeout
	}
	switch mode {
	case lora.ModeTransmit:
		if intr.TxDone() {
			return lora.IrqDone, nil
		}
	case lora.ModeReceive:
		if intr.HeaderErr() || intr.CrcError() {
			return lora.IrqNone, nil
		}
		if intr.RxDone() {
			return lora.IrqDone, nil
		}
		if intr.PreambleDetected() || intr.HeaderValid() {
			return lora.IrqPreambleReceived, nil
		}
	case lora.ModeChannelActivityDetection:
		if intr.CadDone() {
			if cadDetected != nil {
				*cadDetected = intr.CadDetected()
			}
			return lora.IrqDone, nil
		}
	}
	return lora.IrqNone, nil
}

// ClearIrqStatus acknowledges all interrupt flags unconditionally.
func (obj *Adapter) ClearIrqStatus() error {
	if err := obj.driver.ClearIrqs(lr2021.IrqMaskAll); err != nil {
		return opErr(14, err)
	}
	return nil
}

// ProcessIrqEvent reads the interrupt state and then clears the flags when
// requested. The clear is attempted even when the state read failed, and a
// clear failure takes precedence over the read result, no interrupt flag is
// ever left armed for the next action.
func (obj *Adapter) ProcessIrqEvent(mode lora.RadioMode, cadDetected *bool, clearInterrupts bool) (lora.IrqState, error) {
	irqState, stateErr := obj.GetIrqState(mode, cadDetected)
	if clearInterrupts {
		if err := obj.ClearIrqStatus(); err != nil {
			return lora.IrqNone, err
		}
	}
	return irqState, stateErr
}
