package lora

// Radio is the chip agnostic capability contract consumed by a PHY
// orchestration layer. One concrete implementation exists per supported
// transceiver, new chips add an implementation, not new branches in the
// orchestration code.
//
// A Radio instance serves a single logical thread of control: the caller
// issues one outstanding action at a time and must not invoke two
// configuration or action operations concurrently. The only call that
// suspends for an unbounded time is AwaitIrq.
type Radio interface {
	// Reset issues a hardware reset through the driver.
	Reset() error

	// InitLora calibrates the front end, selects the LoRa packet engine and
	// programs the sync word, in that order. On a mid sequence failure the
	// chip is left in an undefined mode and the caller must Reset again.
	InitLora(syncWord uint8) error

	// EnsureReady wakes the chip when leaving sleep, otherwise waits for
	// the ready condition with no extra delay.
	EnsureReady(mode RadioMode) error

	// SetStandby places the chip in its standby state.
	SetStandby() error

	// SetSleep enters retention sleep when warmStart is true, full deep
	// sleep otherwise.
	SetSleep(warmStart bool) error

	// SetTxRxBufferBaseAddress is a no-op on FIFO based chips and always
	// succeeds.
	SetTxRxBufferBaseAddress(txBaseAddr, rxBaseAddr int) error

	// CreateModulationParams builds modulation params, deriving the low
	// data rate optimization flag. Pure, no chip access.
	CreateModulationParams(sf SpreadingFactor, bw Bandwidth, cr CodingRate, frequencyHz uint32) (ModulationParams, error)

	// CreatePacketParams builds packet params, enforcing the minimum
	// preamble length for SF5/SF6. Pure, no chip access.
	CreatePacketParams(preambleLength uint16, implicitHeader bool, payloadLength uint8, crcOn bool, iqInverted bool, modParams ModulationParams) (PacketParams, error)

	// SetModulationParams programs the modulation registers.
	SetModulationParams(modParams ModulationParams) error

	// SetPacketParams programs the packet shape registers.
	SetPacketParams(pktParams PacketParams) error

	// CalibrateImage runs image calibration around the given frequency.
	CalibrateImage(frequencyHz uint32) error

	// SetChannel programs the carrier frequency.
	SetChannel(frequencyHz uint32) error

	// SetTxPowerAndRampTime clamps the requested power to the supported
	// range and programs it, with a short ramp when preparing a transmit.
	SetTxPowerAndRampTime(outputPower int32, isTxPrep bool) error

	// SetPayload writes the payload into the transmit FIFO.
	SetPayload(payload []byte) error

	// DoTx triggers a transmission, completion is detected via interrupt.
	DoTx() error

	// DoRx triggers a receive according to rxMode.
	DoRx(rxMode RxMode) error

	// GetRxPayload drains the received packet into buf and returns its
	// length.
	GetRxPayload(buf []byte) (uint8, error)

	// GetRxPacketStatus reads and decodes the last packet RSSI and SNR.
	GetRxPacketStatus() (PacketStatus, error)

	// DoCad re-applies the modulation params and triggers channel activity
	// detection.
	DoCad(modParams ModulationParams) error

	// SetTxContinuousWave transmits an unmodulated test tone.
	SetTxContinuousWave() error

	// GetRssi reads and decodes the instantaneous RSSI.
	GetRssi() (int16, error)

	// SetIrqParams arms the interrupt mask for the target mode.
	SetIrqParams(mode RadioMode) error

	// AwaitIrq suspends until the interrupt line rises.
	AwaitIrq() error

	// GetIrqState reads status once and decodes it for the given mode. A
	// set timeout flag is always reported as ErrTransmitTimeout. When a CAD
	// completes and cadDetected is non nil, the detection flag is written
	// into it.
	GetIrqState(mode RadioMode, cadDetected *bool) (IrqState, error)

	// ClearIrqStatus acknowledges all interrupt flags unconditionally.
	ClearIrqStatus() error

	// ProcessIrqEvent combines GetIrqState and, when clearInterrupts is
	// set, ClearIrqStatus.
	ProcessIrqEvent(mode RadioMode, cadDetected *bool, clearInterrupts bool) (IrqState, error)
}
