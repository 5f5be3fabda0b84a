package lr2021

import "time"

// Driver is the LR2021 command interface consumed by the PHY adapter. It
// covers command encoding, register layout and the SPI transaction framing,
// all of which live below this module. Every method is a bounded request
// response exchange and returns an opaque driver level failure on error.
type Driver interface {
	// Reset pulses the hardware reset line and waits for the chip to come
	// back up.
	Reset() error

	// WakeUp brings the chip out of sleep.
	WakeUp() error

	// WaitReady waits for the busy line to indicate the chip accepts
	// commands, after an optional settling delay.
	WaitReady(delay time.Duration) error

	// SetChipMode moves the chip into the given low level operating state.
	SetChipMode(mode ChipMode) error

	// CalibrateFrontEnd runs front end calibration. Each entry of freqs is
	// an image calibration step index, an empty slice calibrates with no
	// fixed frequency list.
	CalibrateFrontEnd(freqs []uint16) error

	// SetPacketType selects the active packet processing engine.
	SetPacketType(pt PacketType) error

	// SetLoraSyncWord programs the LoRa network sync word.
	SetLoraSyncWord(syncWord uint8) error

	// SetLoraModulation programs the modulation registers.
	SetLoraModulation(params *LoraModulationParams) error

	// SetLoraPacket programs the packet shape registers.
	SetLoraPacket(params *LoraPacketParams) error

	// SetTxParams programs output power and PA ramp time.
	SetTxParams(power int8, ramp RampTime) error

	// SetRfFrequency programs the carrier frequency in Hz.
	SetRfFrequency(frequencyHz uint32) error

	// WriteTxFifo appends payload bytes to the transmit FIFO.
	WriteTxFifo(payload []byte) error

	// ReadRxFifo drains len(buf) bytes from the receive FIFO.
	ReadRxFifo(buf []byte) error

	// RxPacketLength returns the length of the last received packet.
	RxPacketLength() (uint16, error)

	// SetTx triggers a transmission with the given timeout, zero for none.
	SetTx(timeout uint32) error

	// SetRx triggers a receive with the given timeout. With persistent set
	// the chip automatically restarts listening after a missed preamble.
	SetRx(timeout uint32, persistent bool) error

	// SetRxDutyCycle triggers a duty cycled receive alternating rxTime
	// listen windows and sleepTime sleep windows. retention selects which
	// auxiliary memory banks keep their content across the sleep windows.
	SetRxDutyCycle(rxTime, sleepTime uint32, useLastRxConfig bool, retention uint8) error

	// SetLoraCadParams programs channel activity detection: number of
	// detection symbols, whether to stop on preamble only, detection peak,
	// exit behavior, exit timeout and an optional detection minimum (nil
	// for the chip default).
	SetLoraCadParams(symbolNum uint8, preambleOnly bool, detPeak uint8, exit ExitMode, timeout uint32, detMin *uint8) error

	// SetLoraCad triggers a channel activity detection scan.
	SetLoraCad() error

	// SetTxTest puts the transmitter into a test signal mode.
	SetTxTest(mode TestMode) error

	// InstantRssi reads the instantaneous RSSI register, in half dB
	// magnitude steps.
	InstantRssi() (uint8, error)

	// LoraPacketStatus reads the raw packet quality registers.
	LoraPacketStatus() (LoraPacketStatus, error)

	// Status reads the chip status byte and the pending interrupt flags in
	// a single exchange.
	Status() (Status, Intr, error)

	// SetDioIrq routes the masked interrupt sources to the given DIO line.
	SetDioIrq(dio DioNum, mask Intr) error

	// ClearIrqs acknowledges the masked interrupt flags.
	ClearIrqs(mask Intr) error
}
