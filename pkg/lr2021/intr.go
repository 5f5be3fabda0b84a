package lr2021

// Intr is the chip interrupt flag word, used both as a status snapshot and
// as a DIO routing mask.
type Intr uint32

const (
	IrqTxDone Intr = 1 << iota
	IrqRxDone
	IrqPreambleDetected
	IrqHeaderValid
	IrqHeaderErr
	IrqCrcError
	IrqCadDone
	IrqCadDetected
	IrqTimeout
)

// IrqMaskLoraTxRx is the bundled mask armed for standby and receive: every
// LoRa transmit and receive related event on a single line.
const IrqMaskLoraTxRx = IrqTxDone | IrqRxDone | IrqPreambleDetected |
	IrqHeaderValid | IrqHeaderErr | IrqCrcError | IrqTimeout

// IrqMaskAll clears or routes every interrupt source.
const IrqMaskAll Intr = 0xFFFFFFFF

func (obj Intr) TxDone() bool { return obj&IrqTxDone != 0 }
func (obj Intr) RxDone() bool { return obj&IrqRxDone != 0 }
func (obj Intr) PreambleDetected() bool { return obj&IrqPreambleDetected != 0 }
func (obj Intr) HeaderValid() bool { return obj&IrqHeaderValid != 0 }
func (obj Intr) HeaderErr() bool { return obj&IrqHeaderErr != 0 }
func (obj Intr) CrcError() bool { return obj&IrqCrcError != 0 }
func (obj Intr) CadDone() bool { return obj&IrqCadDone != 0 }
func (obj Intr) CadDetected() bool { return obj&IrqCadDetected != 0 }
func (obj Intr) Timeout() bool { return obj&IrqTimeout != 0 }
