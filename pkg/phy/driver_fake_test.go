package phy

import (
	"time"

	"github.com/TheClams/lr2021-loraphy/pkg/lr2021"
)

// fakeCall records one driver invocation with its arguments.
type fakeCall struct {
	name string
	args []any
}

// fakeDriver is a recording lr2021.Driver. Failures are injected per
// command name through failOn.
type fakeDriver struct {
	calls  []fakeCall
	failOn map[string]error

	pktLen    uint16
	rssi      uint8
	pktStatus lr2021.LoraPacketStatus
	status    lr2021.Status
	intr      lr2021.Intr
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{failOn: make(map[string]error)}
}

func (obj *fakeDriver) record(name string, args ...any) error {
	obj.calls = append(obj.calls, fakeCall{name: name, args: args})
	return obj.failOn[name]
}

// callNames returns the recorded command names in order.
func (obj *fakeDriver) callNames() []string {
	names := make([]string, 0, len(obj.calls))
	for _, c := range obj.calls {
		names = append(names, c.name)
	}
	return names
}

// lastCall returns the most recent invocation of the named command.
func (obj *fakeDriver) lastCall(name string) (fakeCall, bool) {
	for i := len(obj.calls) - 1; i >= 0; i-- {
		if obj.calls[i].name == name {
			return obj.calls[i], true
		}
	}
	return fakeCall{}, false
}

func (obj *fakeDriver) Reset() error  { return obj.record("Reset") }
func (obj *fakeDriver) WakeUp() error { return obj.record("WakeUp") }

func (obj *fakeDriver) WaitReady(delay time.Duration) error {
	return obj.record("WaitReady", delay)
}

func (obj *fakeDriver) SetChipMode(mode lr2021.ChipMode) error {
	return obj.record("SetChipMode", mode)
}

func (obj *fakeDriver) CalibrateFrontEnd(freqs []uint16) error {
	return obj.record("CalibrateFrontEnd", freqs)
}

func (obj *fakeDriver) SetPacketType(pt lr2021.PacketType) error {
	return obj.record("SetPacketType", pt)
}

func (obj *fakeDriver) SetLoraSyncWord(syncWord uint8) error {
	return obj.record("SetLoraSyncWord", syncWord)
}

func (obj *fakeDriver) SetLoraModulation(params *lr2021.LoraModulationParams) error {
	return obj.record("SetLoraModulation", *params)
}

func (obj *fakeDriver) SetLoraPacket(params *lr2021.LoraPacketParams) error {
	return obj.record("SetLoraPacket", *params)
}

func (obj *fakeDriver) SetTxParams(power int8, ramp lr2021.RampTime) error {
	return obj.record("SetTxParams", power, ramp)
}

func (obj *fakeDriver) SetRfFrequency(frequencyHz uint32) error {
	return obj.record("SetRfFrequency", frequencyHz)
}

func (obj *fakeDriver) WriteTxFifo(payload []byte) error {
	return obj.record("WriteTxFifo", append([]byte(nil), payload...))
}

func (obj *fakeDriver) ReadRxFifo(buf []byte) error {
	for i := range buf {
		buf[i] = byte(i)
	}
	return obj.record("ReadRxFifo", len(buf))
}

func (obj *fakeDriver) RxPacketLength() (uint16, error) {
	return obj.pktLen, obj.record("RxPacketLength")
}

func (obj *fakeDriver) SetTx(timeout uint32) error {
	return obj.record("SetTx", timeout)
}

func (obj *fakeDriver) SetRx(timeout uint32, persistent bool) error {
	return obj.record("SetRx", timeout, persistent)
}

func (obj *fakeDriver) SetRxDutyCycle(rxTime, sleepTime uint32, useLastRxConfig bool, retention uint8) error {
	return obj.record("SetRxDutyCycle", rxTime, sleepTime, useLastRxConfig, retention)
}

func (obj *fakeDriver) SetLoraCadParams(symbolNum uint8, preambleOnly bool, detPeak uint8, exit lr2021.ExitMode, timeout uint32, detMin *uint8) error {
	return obj.record("SetLoraCadParams", symbolNum, preambleOnly, detPeak, exit, timeout, detMin)
}

func (obj *fakeDriver) SetLoraCad() error { return obj.record("SetLoraCad") }

func (obj *fakeDriver) SetTxTest(mode lr2021.TestMode) error {
	return obj.record("SetTxTest", mode)
}

func (obj *fakeDriver) InstantRssi() (uint8, error) {
	return obj.rssi, obj.record("InstantRssi")
}

func (obj *fakeDriver) LoraPacketStatus() (lr2021.LoraPacketStatus, error) {
	return obj.pktStatus, obj.record("LoraPacketStatus")
}

func (obj *fakeDriver) Status() (lr2021.Status, lr2021.Intr, error) {
	return obj.status, obj.intr, obj.record("Status")
}

func (obj *fakeDriver) SetDioIrq(dio lr2021.DioNum, mask lr2021.Intr) error {
	return obj.record("SetDioIrq", dio, mask)
}

func (obj *fakeDriver) ClearIrqs(mask lr2021.Intr) error {
	return obj.record("ClearIrqs", mask)
}

// fakeIrqLine is a scripted hal.IrqLine.
type fakeIrqLine struct {
	waits int
	err   error
}

func (obj *fakeIrqLine) WaitRisingEdge() error {
	obj.waits++
	return obj.err
}

func (obj *fakeIrqLine) Close() error { return nil }
