package lr2021

// Chip side enumerations and command parameter records for the LR2021
// transceiver. Values here follow the chip command encoding, the generic
// radio model translates into them via fixed lookup tables.

// Sf is the chip spreading factor code.
type Sf uint8

const (
	Sf5 Sf = iota + 5
	Sf6
	Sf7
	Sf8
	Sf9
	Sf10
	Sf11
	Sf12
)

// LoraBw is the chip bandwidth code.
type LoraBw uint8

const (
	LoraBw7 LoraBw = iota
	LoraBw10
	LoraBw15
	LoraBw20
	LoraBw31
	LoraBw41
	LoraBw62
	LoraBw125
	LoraBw250
	LoraBw500
)

// LoraCr is the chip coding rate code, each code carries its Hamming and
// interleaving scheme.
type LoraCr uint8

const (
	LoraCr1Ham45Si LoraCr = iota + 1
	LoraCr2Ham23Si
	LoraCr3Ham47Si
	LoraCr4Ham12Si
)

// Ldro is the chip low data rate optimization switch.
type Ldro uint8

const (
	LdroOff Ldro = iota
	LdroOn
)

// ChipMode is a chip level operating state reachable through the mode
// command.
type ChipMode uint8

const (
	ChipModeDeepSleep ChipMode = iota
	ChipModeDeepRetention
	ChipModeStandbyRc
	ChipModeStandbyXosc
	ChipModeFs
)

// RampTime is the PA ramp up time code.
type RampTime uint8

const (
	Ramp8u RampTime = iota
	Ramp16u
	Ramp32u
	Ramp64u
	Ramp128u
	Ramp256u
)

// PacketType selects the active packet processing engine.
type PacketType uint8

const (
	PacketTypeNone PacketType = iota
	PacketTypeFsk
	PacketTypeLora
	PacketTypeRanging
)

// HeaderType is the LoRa packet framing mode.
type HeaderType uint8

const (
	HeaderExplicit HeaderType = iota
	HeaderImplicit
)

// ExitMode is the chip behavior after a channel activity detection scan.
type ExitMode uint8

const (
	ExitCadOnly ExitMode = iota
	ExitCadRx
	ExitCadTx
)

// TestMode selects a transmitter test signal.
type TestMode uint8

const (
	TestModeTone TestMode = iota
	TestModePreamble
	TestModePrbs9
)

// DioNum identifies a physical DIO output of the chip.
type DioNum uint8

const (
	Dio0 DioNum = iota
	Dio1
	Dio2
	Dio3
	Dio4
	Dio5
	Dio6
	Dio7
	Dio8
	Dio9
	Dio10
	Dio11
)

// LoraModulationParams is the chip modulation command payload.
type LoraModulationParams struct {
	Sf   Sf
	Bw   LoraBw
	Cr   LoraCr
	Ldro Ldro
}

// LoraPacketParams is the chip packet shape command payload.
type LoraPacketParams struct {
	PreambleLen uint16
	PayloadLen  uint8
	HeaderType  HeaderType
	CrcEn       bool
	InvertIq    bool
}

// LoraPacketStatus carries the raw packet quality registers. RssiPkt is in
// half dB magnitude steps, SnrPkt in signed quarter dB steps.
type LoraPacketStatus struct {
	RssiPkt uint8
	SnrPkt  int8
}

// Status is the raw chip status byte returned alongside the interrupt
// flags.
type Status uint8
