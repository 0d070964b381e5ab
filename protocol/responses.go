package protocol

import (
	"bytes"
	"unicode/utf8"
)

// ResponseCodeOf classifies the first byte of a chip reply. The defined
// codes are matched exactly; everything else, including the reserved 0x00,
// classifies as UnknownError.
func ResponseCodeOf(code byte) ResponseCode {
	switch ResponseCode(code) {
	case Success:
		return Success
	case DeviceError:
		return DeviceError
	case Pending:
		return Pending
	case NoDataExpected:
		return NoDataExpected
	default:
		return UnknownError
	}
}

// ParseDataASCII extracts the payload from the response buffer bytes after
// the code byte. The payload ends at the first NUL (the chip pads unused
// buffer space with zeros); anything after it is bus garbage and discarded.
// A buffer with no NUL yields the whole slice.
//
// Every payload byte has its high bit cleared to correct a hardware quirk
// where some chip revisions set the top bit on transmitted bytes. The mask
// is applied unconditionally and is idempotent.
func ParseDataASCII(buf []byte) []byte {
	payload := buf
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		payload = buf[:i]
	}

	data := make([]byte, len(payload))
	for i, b := range payload {
		data[i] = b &^ 0x80
	}
	return data
}

// DecodeASCII extracts and decodes the payload as UTF-8 text. The chip is
// contractually ASCII-only, so invalid UTF-8 after bit-flip correction
// indicates a corrupted read and is reported as a DecodeError.
func DecodeASCII(buf []byte) (string, error) {
	data := ParseDataASCII(buf)
	if !utf8.Valid(data) {
		return "", &DecodeError{Data: data}
	}
	return string(data), nil
}
