package protocol

// MaxResponseLength is the size of the raw response buffer read from the
// chip: the longest documented ASCII reply plus the response code byte and
// the NUL terminator.
const MaxResponseLength = 16

// ResponseCode is the first byte of every chip reply.
type ResponseCode byte

// Response codes defined by the EZO datasheet. UnknownError (0x00) is
// documented as reserved but never emitted by real hardware; every byte
// value outside the defined set also classifies as UnknownError.
const (
	// UnknownError is the catch-all for undefined response bytes
	UnknownError ResponseCode = 0x00

	// Success indicates the command executed and the payload is valid
	Success ResponseCode = 0x01

	// DeviceError indicates the chip rejected or failed the command
	DeviceError ResponseCode = 0x02

	// Pending indicates the chip is still processing the command
	Pending ResponseCode = 0xFE

	// NoDataExpected indicates the command produces no reply data
	NoDataExpected ResponseCode = 0xFF
)

// String returns a human-readable name for the response code.
func (c ResponseCode) String() string {
	switch c {
	case Success:
		return "success"
	case DeviceError:
		return "device error"
	case Pending:
		return "pending"
	case NoDataExpected:
		return "no data expected"
	default:
		return "unknown error"
	}
}

// CommandResponse identifies what kind of payload a successful reply
// carries. It documents caller intent and lets higher layers interpret the
// decoded string; all successful payloads are parsed identically as ASCII.
type CommandResponse int

// Reply shapes produced by the EZO chip command set.
const (
	Ack CommandResponse = iota + 1
	CalibrationState
	DataloggerInterval
	DeviceInformation
	ExportInfo
	Export
	LedState
	MemoryRecall
	MemoryRecallLastLocation
	ProtocolLockState
	Reading
	ScaleState
	Status
)

// Transport is the I2C access boundary: a handle to one chip address on an
// open bus. Both operations block; errors are opaque transport failures
// and are not classified by this package.
type Transport interface {
	// Write sends the command bytes to the device
	Write(p []byte) error

	// Read fills p from the device in a single bus transaction
	Read(p []byte) error
}

// Response is the outcome of one executed command. Code is always set;
// Text is non-empty only for Success replies that carried a payload.
// Commands with no expected response yield a Success code and empty text.
type Response struct {
	Code ResponseCode
	Text string
}
