package protocol

import "time"

// retryDelay is the chip settling time after a bus glitch, applied before
// the single write or read retry. Distinct from a command's processing
// delay, which is chip busy time rather than error recovery.
const retryDelay = 300 * time.Millisecond

// Execute performs one command interaction against the transport:
// write, optional processing delay, optional read, classify, decode.
//
// The write and the read are each retried exactly once after retryDelay; a
// second consecutive failure is fatal and surfaces as a TransmitError or
// ReceiveError. Commands with no expected response never touch the bus
// after the write and yield an empty Success response.
//
// Non-Success response codes are valid chip states, not errors: the
// returned Response carries the code and no text.
func Execute(cmd Command, transport Transport) (Response, error) {
	if err := transport.Write(cmd.Bytes()); err != nil {
		time.Sleep(retryDelay)
		if err := transport.Write(cmd.Bytes()); err != nil {
			return Response{}, &TransmitError{Err: err}
		}
	}

	if delay, ok := cmd.Delay(); ok {
		time.Sleep(delay)
	}

	if _, ok := cmd.Response(); !ok {
		return Response{Code: Success}, nil
	}

	var buf [MaxResponseLength]byte
	if err := transport.Read(buf[:]); err != nil {
		time.Sleep(retryDelay)
		if err := transport.Read(buf[:]); err != nil {
			return Response{}, &ReceiveError{Err: err}
		}
	}

	code := ResponseCodeOf(buf[0])
	if code != Success {
		return Response{Code: code}, nil
	}

	text, err := DecodeASCII(buf[1:])
	if err != nil {
		return Response{}, err
	}
	return Response{Code: Success, Text: text}, nil
}
