// Package phy adapts the LR2021 transceiver to the generic lora.Radio
// contract. It translates the chip agnostic configuration and interrupt
// model into LR2021 command sequences and decodes the chip's asynchronous
// interrupt signals back into the generic completion states.
package phy

import (
	"errors"
	"fmt"

	"github.com/TheClams/lr2021-loraphy/pkg/hal"
	"github.com/TheClams/lr2021-loraphy/pkg/lora"
	"github.com/TheClams/lr2021-loraphy/pkg/lr2021"
)

// Adapter drives one LR2021 through its command driver and one interrupt
// line. It exclusively owns both handles for its whole lifetime and serves
// a single logical thread of control, the orchestration layer above must
// serialize all calls.
type Adapter struct {
	driver lr2021.Driver
	irq    hal.IrqLine
	dioIrq lr2021.DioNum
}

var _ lora.Radio = (*Adapter)(nil)

// NewAdapter takes ownership of an already configured command driver and
// interrupt line. dioIrq names the physical DIO output the interrupt line
// is wired to.
func NewAdapter(driver lr2021.Driver, irq hal.IrqLine, dioIrq lr2021.DioNum) *Adapter {
	return &Adapter{
		driver: driver,
		irq:    irq,
		dioIrq: dioIrq,
	}
}

func opErr(op uint8, err error) error {
	return &lora.OpError{Op: op, Err: err}
}

// Reset issues a hardware reset through the driver.
func (obj *Adapter) Reset() error {
	if err := obj.driver.Reset(); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrReset, err)
	}
	return nil
}

// InitLora runs front end calibration with no fixed frequency list, selects
// the LoRa packet engine and programs the sync word, in strict order. There
// is no rollback, after a mid sequence failure the chip is in an undefined
// mode and the caller must Reset again.
func (obj *Adapter) InitLora(syncWord uint8) error {
	if err := obj.driver.CalibrateFrontEnd(nil); err != nil {
		return opErr(0, err)
	}
	if err := obj.driver.SetPacketType(lr2021.PacketTypeLora); err != nil {
		return opErr(1, err)
	}
	if err := obj.driver.SetLoraSyncWord(syncWord); err != nil {
		return opErr(2, err)
	}
	return nil
}

// EnsureReady wakes the chip when the target mode is sleep, otherwise waits
// for the ready condition with no extra delay.
func (obj *Adapter) EnsureReady(mode lora.RadioMode) error {
	var err error
	if mode == lora.ModeSleep {
		err = obj.driver.WakeUp()
	} else {
		err = obj.driver.WaitReady(0)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", lora.ErrIrqLine, err)
	}
	return nil
}

// SetStandby moves the chip to standby on the crystal oscillator.
func (obj *Adapter) SetStandby() error {
	if err := obj.driver.SetChipMode(lr2021.ChipModeStandbyXosc); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrBus, err)
	}
	return nil
}

// SetSleep enters retention sleep when warmStart is set, otherwise full
// deep sleep, erasing volatile state.
func (obj *Adapter) SetSleep(warmStart bool) error {
	chipMode := lr2021.ChipModeDeepSleep
	if warmStart {
		chipMode = lr2021.ChipModeDeepRetention
	}
	if err := obj.driver.SetChipMode(chipMode); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrBus, err)
	}
	return nil
}

// SetTxRxBufferBaseAddress always succeeds, the LR2021 uses a single FIFO
// for both directions and any addressing is implicit in the FIFO commands.
func (obj *Adapter) SetTxRxBufferBaseAddress(_, _ int) error {
	return nil
}

// SetTxPowerAndRampTime clamps the requested power to the -9..22 range the
// chip supports before programming it. Transmit preparation uses a short
// 32 us ramp, every other context the default 128 us ramp.
func (obj *Adapter) SetTxPowerAndRampTime(outputPower int32, isTxPrep bool) error {
	ramp := lr2021.Ramp128u
	if isTxPrep {
		ramp = lr2021.Ramp32u
	}
	if outputPower < -9 {
		outputPower = -9
	} else if outputPower > 22 {
		outputPower = 22
	}
	if err := obj.driver.SetTxParams(int8(outputPower), ramp); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrInvalidConfiguration, err)
	}
	return nil
}

// CalibrateImage runs image calibration around the given frequency. The
// chip calibrates on 4.194 MHz steps, approximated by a 22 bit right shift.
func (obj *Adapter) CalibrateImage(frequencyHz uint32) error {
	freqStep := uint16(frequencyHz >> 22)
	if err := obj.driver.CalibrateFrontEnd([]uint16{freqStep}); err != nil {
		return opErr(3, err)
	}
	return nil
}

// SetChannel programs the carrier frequency.
func (obj *Adapter) SetChannel(frequencyHz uint32) error {
	if err := obj.driver.SetRfFrequency(frequencyHz); err != nil {
		return opErr(4, err)
	}
	return nil
}

// SetPayload writes the payload into the transmit FIFO.
func (obj *Adapter) SetPayload(payload []byte) error {
	if err := obj.driver.WriteTxFifo(payload); err != nil {
		return opErr(5, err)
	}
	return nil
}

// DoTx triggers transmission with no chip side timeout, completion is
// detected via interrupt.
func (obj *Adapter) DoTx() error {
	if err := obj.driver.SetTx(0); err != nil {
		return opErr(6, err)
	}
	return nil
}

// DoRx triggers a receive. Duty cycled receive runs with all auxiliary
// memory bank retention disabled since no patch RAM is loaded at the
// moment. Single and continuous receive always request the persistent
// listen behavior, restarting on a missed preamble.
func (obj *Adapter) DoRx(rxMode lora.RxMode) error {
	if rxMode.Kind == lora.RxKindDutyCycle {
		if err := obj.driver.SetRxDutyCycle(rxMode.RxTime, rxMode.SleepTime, false, 0); err != nil {
			return opErr(7, err)
		}
		return nil
	}
	if err := obj.driver.SetRx(rxMode.EffectiveTimeout(), true); err != nil {
		return opErr(7, err)
	}
	return nil
}

// GetRxPayload drains the received packet into buf and returns its length.
func (obj *Adapter) GetRxPayload(buf []byte) (uint8, error) {
	pktLen, err := obj.driver.RxPacketLength()
	if err != nil {
		return 0, opErr(8, err)
	}
	if int(pktLen) > len(buf) {
		return 0, opErr(9, errors.New("rx payload exceeds buffer"))
	}
	if err := obj.driver.ReadRxFifo(buf[:pktLen]); err != nil {
		return 0, opErr(9, err)
	}
	// LoRa packets are shorter than 256 bytes
	return uint8(pktLen), nil
}

// GetRxPacketStatus reads and decodes the last packet RSSI and SNR.
func (obj *Adapter) GetRxPacketStatus() (lora.PacketStatus, error) {
	status, err := obj.driver.LoraPacketStatus()
	if err != nil {
		return lora.PacketStatus{}, opErr(10, err)
	}
	return lora.PacketStatus{
		RSSI: decodeRssi(status.RssiPkt),
		SNR:  decodeSnr(status.SnrPkt),
	}, nil
}

// DoCad re-applies the modulation params, the detection parameters depend
// on the configured spreading factor and bandwidth, then triggers channel
// activity detection with a fixed 4 symbol scan and CAD only exit.
func (obj *Adapter) DoCad(modParams lora.ModulationParams) error {
	if err := obj.SetModulationParams(modParams); err != nil {
		return err
	}
	if err := obj.driver.SetLoraCadParams(4, false, 9, lr2021.ExitCadOnly, 0, nil); err != nil {
		return opErr(11, err)
	}
	if err := obj.driver.SetLoraCad(); err != nil {
		return opErr(12, err)
	}
	return nil
}

// SetTxContinuousWave transmits an unmodulated test tone, used for
// regulatory and antenna testing only.
func (obj *Adapter) SetTxContinuousWave() error {
	if err := obj.driver.SetTxTest(lr2021.TestModeTone); err != nil {
		return opErr(12, err)
	}
	return nil
}

// GetRssi reads and decodes the instantaneous RSSI.
func (obj *Adapter) GetRssi() (int16, error) {
	raw, err := obj.driver.InstantRssi()
	if err != nil {
		return 0, opErr(13, err)
	}
	return decodeRssi(raw), nil
}

// decodeRssi converts the raw half dB magnitude register value to dBm.
func decodeRssi(raw uint8) int16 {
	return -int16(raw >> 1)
}

// decodeSnr converts the raw quarter dB register value to dB, rounding to
// nearest via the +2 bias before the shift.
func decodeSnr(raw int8) int16 {
	return (int16(raw) + 2) >> 2
}
