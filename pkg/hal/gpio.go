package hal

import (
	"fmt"
	"sync"

	"github.com/mazen160/go-random"
	"github.com/warthog618/gpiod"
)

// EventLine is an IrqLine backed by a Linux GPIO character device. The
// kernel delivers rising edge events on a gpiod goroutine, waiters are
// parked on channels and released on the next edge.
type EventLine struct {
	chip       *gpiod.Chip
	line       *gpiod.Line
	muWaiters  sync.Mutex            // map protection mutex
	edgeWaiter map[string]chan error // holds channels that wait for a rising edge
	closed     chan struct{}
	closeOnce  sync.Once
}

// NewEventLine requests pin on the named GPIO chip as a rising edge event
// input and takes ownership of it until Close.
func NewEventLine(gpioChip string, pin int, consumer string) (*EventLine, error) {
	obj := &EventLine{
		edgeWaiter: make(map[string]chan error),
		closed:     make(chan struct{}),
	}
	c, err := gpiod.NewChip(gpioChip, gpiod.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("failed to create GPIO chip: %w", err)
	}
	obj.chip = c
	obj.line, err = c.RequestLine(pin, gpiod.WithEventHandler(obj.onRiseEvent), gpiod.WithRisingEdge)
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to request IRQ GPIO line: %w", err)
	}
	return obj, nil
}

// onRiseEvent runs on the gpiod event goroutine and releases every parked
// waiter.
func (obj *EventLine) onRiseEvent(evt gpiod.LineEvent) {
	obj.muWaiters.Lock()
	defer obj.muWaiters.Unlock()
	for id, ch := range obj.edgeWaiter {
		ch <- nil
		close(ch)
		delete(obj.edgeWaiter, id)
	}
}

// WaitRisingEdge parks the caller until the next rising edge. Edges that
// occurred before the call are not reported.
func (obj *EventLine) WaitRisingEdge() error {
	ch := make(chan error, 1)
	id, err := random.String(16)
	if err != nil {
		return fmt.Errorf("failed to generate waiter id: %w", err)
	}
	obj.muWaiters.Lock()
	obj.edgeWaiter[id] = ch
	obj.muWaiters.Unlock()
	select {
	case <-obj.closed:
		obj.muWaiters.Lock()
		delete(obj.edgeWaiter, id)
		obj.muWaiters.Unlock()
		return fmt.Errorf("interrupt line closed")
	case <-ch:
		return nil
	}
}

// Close releases the GPIO line and fails all pending waits.
func (obj *EventLine) Close() (err error) {
	obj.closeOnce.Do(func() {
		close(obj.closed)
		if lineErr := obj.line.Close(); lineErr != nil {
			err = fmt.Errorf("failed to close IRQ line: %w", lineErr)
			return
		}
		if chipErr := obj.chip.Close(); chipErr != nil {
			err = fmt.Errorf("failed to close GPIO chip: %w", chipErr)
		}
	})
	return err
}
