package hal

// IrqLine is an input signal line supporting an edge triggered wait. The
// PHY adapter owns exactly one for its whole lifetime and suspends on it
// between triggering an action and decoding its completion.
type IrqLine interface {
	// WaitRisingEdge blocks until the next rising edge on the line. There
	// is no timeout at this level, timeout semantics come from the chip
	// side timeout register generating its own interrupt.
	WaitRisingEdge() error

	// Close releases the line. Pending and future waits fail.
	Close() error
}
