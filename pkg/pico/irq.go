//go:build pico
// +build pico

package pico

import (
	"errors"
	"machine"
	"sync"
)

var errClosed = errors.New("interrupt line closed")

// IrqPin is a hal.IrqLine for RP2040 targets, built on the machine package
// pin interrupt support instead of the Linux GPIO character device.
type IrqPin struct {
	pin       machine.Pin
	muWaiters sync.Mutex
	waiters   []chan error
	closed    bool
}

// NewIrqPin configures pin as a rising edge interrupt input.
func NewIrqPin(pin machine.Pin) *IrqPin {
	obj := &IrqPin{pin: pin}
	pin.Configure(machine.PinConfig{Mode: machine.PinInput})
	pin.SetInterrupt(machine.PinRising, func(p machine.Pin) {
		obj.onRiseEvent()
	})
	return obj
}

func (obj *IrqPin) onRiseEvent() {
	obj.muWaiters.Lock()
	for _, ch := range obj.waiters {
		ch <- nil
		close(ch)
	}
	obj.waiters = obj.waiters[:0]
	obj.muWaiters.Unlock()
}

// WaitRisingEdge parks the caller until the next rising edge.
func (obj *IrqPin) WaitRisingEdge() error {
	ch := make(chan error, 1)
	obj.muWaiters.Lock()
	if obj.closed {
		obj.muWaiters.Unlock()
		return errClosed
	}
	obj.waiters = append(obj.waiters, ch)
	obj.muWaiters.Unlock()
	return <-ch
}

// Close detaches the interrupt handler and fails pending waits.
func (obj *IrqPin) Close() error {
	obj.pin.SetInterrupt(machine.PinRising, nil)
	obj.muWaiters.Lock()
	obj.closed = true
	for _, ch := range obj.waiters {
		ch <- errClosed
		close(ch)
	}
	obj.waiters = obj.waiters[:0]
	obj.muWaiters.Unlock()
	return nil
}
