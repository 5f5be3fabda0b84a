package phy

import (
	"fmt"

	"github.com/TheClams/lr2021-loraphy/pkg/lora"
	"github.com/TheClams/lr2021-loraphy/pkg/lr2021"
)

// Fixed one to one lookup tables between the generic enumerations and the
// LR2021 command codes. Both sides are closed sets, values outside them are
// not reachable through the public types.

var sfCodeMap = map[lora.SpreadingFactor]lr2021.Sf{
	lora.SF5:  lr2021.Sf5,
	lora.SF6:  lr2021.Sf6,
	lora.SF7:  lr2021.Sf7,
	lora.SF8:  lr2021.Sf8,
	lora.SF9:  lr2021.Sf9,
	lora.SF10: lr2021.Sf10,
	lora.SF11: lr2021.Sf11,
	lora.SF12: lr2021.Sf12,
}

var bwCodeMap = map[lora.Bandwidth]lr2021.LoraBw{
	lora.BW7:   lr2021.LoraBw7,
	lora.BW10:  lr2021.LoraBw10,
	lora.BW15:  lr2021.LoraBw15,
	lora.BW20:  lr2021.LoraBw20,
	lora.BW31:  lr2021.LoraBw31,
	lora.BW41:  lr2021.LoraBw41,
	lora.BW62:  lr2021.LoraBw62,
	lora.BW125: lr2021.LoraBw125,
	lora.BW250: lr2021.LoraBw250,
	lora.BW500: lr2021.LoraBw500,
}

var crCodeMap = map[lora.CodingRate]lr2021.LoraCr{
	lora.CR4_5: lr2021.LoraCr1Ham45Si,
	lora.CR4_6: lr2021.LoraCr2Ham23Si,
	lora.CR4_7: lr2021.LoraCr3Ham47Si,
	lora.CR4_8: lr2021.LoraCr4Ham12Si,
}

// CreateModulationParams builds modulation params, deriving the low data
// rate optimization flag: mandatory at 125 kHz with SF11/SF12 and at
// 250 kHz with SF12, independent of caller intent. Pure, no chip access.
func (obj *Adapter) CreateModulationParams(sf lora.SpreadingFactor, bw lora.Bandwidth, cr lora.CodingRate, frequencyHz uint32) (lora.ModulationParams, error) {
	ldroEn := false
	switch bw {
	case lora.BW125:
		ldroEn = sf == lora.SF11 || sf == lora.SF12
	case lora.BW250:
		ldroEn = sf == lora.SF12
	}
	var ldro uint8
	if ldroEn {
		ldro = 1
	}
	return lora.ModulationParams{
		SpreadingFactor:     sf,
		Bandwidth:           bw,
		CodingRate:          cr,
		LowDataRateOptimize: ldro,
		FrequencyHz:         frequencyHz,
	}, nil
}

// CreatePacketParams builds packet params. For SF5 and SF6 the preamble is
// floored to 12 symbols, the chip detection window requires it. Pure, no
// chip access.
func (obj *Adapter) CreatePacketParams(preambleLength uint16, implicitHeader bool, payloadLength uint8, crcOn bool, iqInverted bool, modParams lora.ModulationParams) (lora.PacketParams, error) {
	if (modParams.SpreadingFactor == lora.SF5 || modParams.SpreadingFactor == lora.SF6) &&
		preambleLength < 12 {
		preambleLength = 12
	}
	return lora.PacketParams{
		PreambleLength: preambleLength,
		ImplicitHeader: implicitHeader,
		PayloadLength:  payloadLength,
		CRCOn:          crcOn,
		IQInverted:     iqInverted,
	}, nil
}

// SetModulationParams translates the generic modulation params to the chip
// codes and programs them.
func (obj *Adapter) SetModulationParams(modParams lora.ModulationParams) error {
	ldro := lr2021.LdroOff
	if modParams.LowDataRateOptimize != 0 {
		ldro = lr2021.LdroOn
	}
	modulation := lr2021.LoraModulationParams{
		Sf:   sfCodeMap[modParams.SpreadingFactor],
		Bw:   bwCodeMap[modParams.Bandwidth],
		Cr:   crCodeMap[modParams.CodingRate],
		Ldro: ldro,
	}
	if err := obj.driver.SetLoraModulation(&modulation); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrInvalidConfiguration, err)
	}
	return nil
}

// SetPacketParams translates the generic packet params to the chip packet
// shape and programs it.
func (obj *Adapter) SetPacketParams(pktParams lora.PacketParams) error {
	headerType := lr2021.HeaderExplicit
	if pktParams.ImplicitHeader {
		headerType = lr2021.HeaderImplicit
	}
	params := lr2021.LoraPacketParams{
		PreambleLen: pktParams.PreambleLength,
		PayloadLen:  pktParams.PayloadLength,
		HeaderType:  headerType,
		CrcEn:       pktParams.CRCOn,
		InvertIq:    pktParams.IQInverted,
	}
	if err := obj.driver.SetLoraPacket(&params); err != nil {
		return fmt.Errorf("%w: %v", lora.ErrInvalidConfiguration, err)
	}
	return nil
}
