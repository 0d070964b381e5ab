// Package protocol implements the Atlas Scientific EZO chip command/response
// protocol over a blocking I2C transport.
//
// # Protocol Overview
//
// Every interaction with the chip follows the same shape:
//
//  1. Write an ASCII command string to the device.
//  2. Optionally wait out the chip's documented processing delay.
//  3. Optionally read back a fixed 16-byte response buffer.
//
// The first byte of every response is a response code; the remaining bytes
// are a NUL-terminated ASCII payload:
//
//	[CODE][ASCII DATA...][0x00][garbage...]
//
// Some chip revisions spuriously set the high bit of transmitted bytes, so
// every payload byte is masked with ^0x80 before decoding. This is a no-op
// for bytes that were never flipped since the payloads are plain ASCII.
//
// # Building Commands
//
// Use CommandOptions to describe one interaction, then Finish to obtain an
// immutable snapshot for execution:
//
//	var opts protocol.CommandOptions
//	cmd := opts.SetCommand("R").
//	    SetDelay(600 * time.Millisecond).
//	    SetResponse(protocol.Reading).
//	    Finish()
//
// Commands with no expected response (for example "Sleep") skip both the
// delay and the read entirely.
//
// # Executing Commands
//
// Execute runs the write/delay/read sequence against a Transport:
//
//	resp, err := protocol.Execute(cmd, transport)
//	if err != nil {
//	    // transmit, receive or decode failure
//	}
//	if resp.Code == protocol.Success {
//	    fmt.Println(resp.Text)
//	}
//
// A write or read that fails is retried exactly once after a fixed 300 ms
// settling period; a second failure surfaces as a TransmitError or
// ReceiveError. Non-Success response codes (Pending, DeviceError,
// NoDataExpected, UnknownError) are valid chip states, not errors: they are
// reported through Response.Code so callers can branch on them without
// error-style control flow.
package protocol
