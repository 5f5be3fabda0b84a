package lora

// SpreadingFactor is the LoRa spreading factor, SF5 up to SF12.
type SpreadingFactor uint8

const (
	SF5 SpreadingFactor = iota + 5
	SF6
	SF7
	SF8
	SF9
	SF10
	SF11
	SF12
)

// Bandwidth is the LoRa channel bandwidth, 7.8 kHz up to 500 kHz.
type Bandwidth uint8

const (
	BW7 Bandwidth = iota // 7.8 kHz
	BW10                 // 10.4 kHz
	BW15                 // 15.6 kHz
	BW20                 // 20.8 kHz
	BW31                 // 31.25 kHz
	BW41                 // 41.7 kHz
	BW62                 // 62.5 kHz
	BW125                // 125 kHz
	BW250                // 250 kHz
	BW500                // 500 kHz
)

// CodingRate is the LoRa forward error correction rate
type CodingRate uint8

const (
	CR4_5 CodingRate = iota
	CR4_6
	CR4_7
	CR4_8
)

// ModulationParams holds the channel modulation setup.
// Build it with Radio.CreateModulationParams so that the low data rate
// optimization flag is derived correctly, it is a physical layer
// requirement and must never be set by the caller directly.
type ModulationParams struct {
	SpreadingFactor     SpreadingFactor
	Bandwidth           Bandwidth
	CodingRate          CodingRate
	LowDataRateOptimize uint8
	FrequencyHz         uint32
}

// PacketParams holds the packet framing setup.
// Build it with Radio.CreatePacketParams so that the minimum preamble
// length for SF5/SF6 is enforced.
type PacketParams struct {
	PreambleLength uint16
	ImplicitHeader bool
	PayloadLength  uint8
	CRCOn          bool
	IQInverted     bool
}

// RadioMode is the radio operating state. It selects which interrupt mask
// is armed and which interrupt bits are meaningful when decoding a
// completion.
type RadioMode uint8

const (
	ModeSleep RadioMode = iota
	ModeStandby
	ModeTransmit
	ModeReceive
	ModeChannelActivityDetection
)

// RxKind selects how a receive action behaves.
type RxKind uint8

const (
	RxKindSingle RxKind = iota
	RxKindContinuous
	RxKindDutyCycle
)

// rxContinuousTimeout is the chip timeout sentinel for "listen forever".
const rxContinuousTimeout uint32 = 0xFFFFFFFF

// RxMode describes a receive action. Timeouts and windows are expressed in
// chip timeout units.
type RxMode struct {
	Kind      RxKind
	Timeout   uint32 // single shot listen timeout
	RxTime    uint32 // duty cycle listen window
	SleepTime uint32 // duty cycle sleep window
}

// RxSingle returns a single shot receive with an explicit timeout.
func RxSingle(timeout uint32) RxMode {
	return RxMode{Kind: RxKindSingle, Timeout: timeout}
}

// RxContinuous returns a receive that listens until a packet arrives.
func RxContinuous() RxMode {
	return RxMode{Kind: RxKindContinuous, Timeout: rxContinuousTimeout}
}

// RxDutyCycle returns a duty cycled receive alternating listen and sleep
// windows.
func RxDutyCycle(rxTime, sleepTime uint32) RxMode {
	return RxMode{Kind: RxKindDutyCycle, RxTime: rxTime, SleepTime: sleepTime}
}

// EffectiveTimeout returns the timeout value to program for a single or
// continuous receive.
func (obj RxMode) EffectiveTimeout() uint32 {
	if obj.Kind == RxKindContinuous {
		return rxContinuousTimeout
	}
	return obj.Timeout
}

// IrqState is the decoded outcome of an interrupt, if any.
type IrqState uint8

const (
	// IrqNone means no new state, the action is still pending.
	IrqNone IrqState = iota
	// IrqDone means the in flight action fully completed.
	IrqDone
	// IrqPreambleReceived means a preamble was detected or a header became
	// valid, a non terminal signal usable for early wake up.
	IrqPreambleReceived
)

// PacketStatus is the signal quality snapshot of the last received packet.
type PacketStatus struct {
	RSSI int16 // dBm
	SNR  int16 // dB
}
