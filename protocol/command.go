package protocol

import "time"

// CommandOptions accumulates the parameters of one chip interaction: the
// ASCII command to transmit, the chip's processing delay, and the expected
// reply shape. Setters may be called in any order; only the command itself
// is required. The zero value is ready to use.
type CommandOptions struct {
	command     string
	delay       time.Duration
	response    CommandResponse
	hasResponse bool
}

// SetCommand sets the ASCII string for the command to be sent.
func (o *CommandOptions) SetCommand(command string) *CommandOptions {
	o.command = command
	return o
}

// SetDelay sets the chip's documented processing delay between the write
// and the response becoming available. This is chip processing time, not a
// bus-error backoff.
func (o *CommandOptions) SetDelay(delay time.Duration) *CommandOptions {
	o.delay = delay
	return o
}

// SetResponse declares the reply shape the command produces. Commands
// without a declared response are fire-and-forget: Execute never reads the
// bus for them.
func (o *CommandOptions) SetResponse(response CommandResponse) *CommandOptions {
	o.response = response
	o.hasResponse = true
	return o
}

// Finish produces an immutable snapshot of the accumulated parameters,
// ready to execute. The builder can be reused afterwards without affecting
// the snapshot.
func (o *CommandOptions) Finish() Command {
	return Command{
		command:     o.command,
		delay:       o.delay,
		response:    o.response,
		hasResponse: o.hasResponse,
	}
}

// Command is an immutable description of one chip interaction, produced by
// CommandOptions.Finish. Two Commands built from the same final parameter
// values compare equal regardless of setter order.
type Command struct {
	command     string
	delay       time.Duration
	response    CommandResponse
	hasResponse bool
}

// Bytes returns the command bytes to transmit.
func (c Command) Bytes() []byte {
	return []byte(c.command)
}

// Delay returns the chip processing delay and whether one was set.
func (c Command) Delay() (time.Duration, bool) {
	return c.delay, c.delay > 0
}

// Response returns the expected reply shape and whether one was set.
func (c Command) Response() (CommandResponse, bool) {
	return c.response, c.hasResponse
}
