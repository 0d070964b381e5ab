package protocol

import (
	"errors"
	"fmt"
)

// TransmitError indicates the command write failed twice in a row.
// Wraps the transport error from the final attempt.
type TransmitError struct {
	// Err is the underlying transport failure
	Err error
}

func (e *TransmitError) Error() string {
	return fmt.Sprintf("command could not be sent: %v", e.Err)
}

func (e *TransmitError) Unwrap() error {
	return e.Err
}

// ReceiveError indicates the response read failed twice in a row.
// Wraps the transport error from the final attempt.
type ReceiveError struct {
	// Err is the underlying transport failure
	Err error
}

func (e *ReceiveError) Error() string {
	return fmt.Sprintf("error reading from device: %v", e.Err)
}

func (e *ReceiveError) Unwrap() error {
	return e.Err
}

// DecodeError indicates the response payload was not valid UTF-8 after
// bit-flip correction. Carries the offending bytes.
type DecodeError struct {
	// Data is the masked payload that failed to decode
	Data []byte
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("response data is not parsable: % X", e.Data)
}

// IsTransmitError returns true if the error is (or wraps) a TransmitError.
func IsTransmitError(err error) bool {
	var te *TransmitError
	return errors.As(err, &te)
}

// IsReceiveError returns true if the error is (or wraps) a ReceiveError.
func IsReceiveError(err error) bool {
	var re *ReceiveError
	return errors.As(err, &re)
}

// IsDecodeError returns true if the error is (or wraps) a DecodeError.
func IsDecodeError(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
