package ezo

import (
	"fmt"

	"github.com/moffa90/go-ezo/protocol"
)

// StateError indicates the chip answered with a protocol state other than
// Success where a payload was required. It is not a transport failure: the
// interaction completed, the chip just had no usable data.
type StateError struct {
	// Code is the chip's response code
	Code protocol.ResponseCode
}

func (e *StateError) Error() string {
	return fmt.Sprintf("device returned no data: %s (0x%02X)", e.Code, byte(e.Code))
}

// FormatError indicates a successful reply did not match the documented
// shape for the command.
type FormatError struct {
	// Text is the decoded reply that failed to parse
	Text string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unexpected reply format: %q", e.Text)
}
