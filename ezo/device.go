package ezo

import (
	"strconv"
	"strings"

	"github.com/moffa90/go-ezo/protocol"
)

// Device drives one EZO RTD chip through a protocol.Transport.
//
// The chip cannot process overlapping commands, so Device performs one
// fully blocking interaction at a time and is not safe for concurrent use.
type Device struct {
	transport protocol.Transport
	config    Config
}

// New creates a Device over the given transport.
//
// Example:
//
//	transport, err := i2cdev.Open("", ezo.DefaultAddress)
//	dev := ezo.New(transport, ezo.WithLogger(myLogger))
func New(transport protocol.Transport, opts ...Option) *Device {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Device{
		transport: transport,
		config:    cfg,
	}
}

// Execute runs one catalog command and returns the raw protocol response.
// Non-Success response codes are reported through the response, not as
// errors.
func (d *Device) Execute(cmd Command) (protocol.Response, error) {
	params := cmd.Options()
	d.logDebug("sending command", "command", string(params.Bytes()))

	resp, err := protocol.Execute(params, d.transport)
	if err != nil {
		d.logError("command failed", "command", string(params.Bytes()), "error", err.Error())
		return protocol.Response{}, err
	}

	d.logDebug("command completed",
		"command", string(params.Bytes()),
		"code", resp.Code.String(),
		"text", resp.Text,
	)
	return resp, nil
}

// text runs a command and requires a Success payload. Any other chip state
// surfaces as a *StateError.
func (d *Device) text(cmd Command) (string, error) {
	resp, err := d.Execute(cmd)
	if err != nil {
		return "", err
	}
	if resp.Code != protocol.Success {
		return "", &StateError{Code: resp.Code}
	}
	return resp.Text, nil
}

// Reading takes a single temperature reading in the chip's current scale.
func (d *Device) Reading() (float64, error) {
	text, err := d.text(TakeReading())
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &FormatError{Text: text}
	}
	return value, nil
}

// Status reports the reason for the chip's last restart and the supply
// voltage. Reply shape: "?STATUS,P,5.038".
func (d *Device) Status() (DeviceStatus, error) {
	text, err := d.text(Status())
	if err != nil {
		return DeviceStatus{}, err
	}

	fields, err := replyFields(text, "?STATUS", 2)
	if err != nil {
		return DeviceStatus{}, err
	}
	if len(fields[0]) != 1 {
		return DeviceStatus{}, &FormatError{Text: text}
	}
	voltage, parseErr := strconv.ParseFloat(fields[1], 64)
	if parseErr != nil {
		return DeviceStatus{}, &FormatError{Text: text}
	}

	return DeviceStatus{
		Restart: RestartReason(fields[0][0]),
		Voltage: voltage,
	}, nil
}

// Info reports the chip model and firmware version. Reply shape:
// "?I,RTD,2.01".
func (d *Device) Info() (DeviceInfo, error) {
	text, err := d.text(DeviceInformation())
	if err != nil {
		return DeviceInfo{}, err
	}

	fields, err := replyFields(text, "?I", 2)
	if err != nil {
		return DeviceInfo{}, err
	}

	return DeviceInfo{Module: fields[0], Firmware: fields[1]}, nil
}

// CalibrationPoints reports how many calibration points are stored.
// Reply shape: "?CAL,1".
func (d *Device) CalibrationPoints() (int, error) {
	text, err := d.text(CalibrationState())
	if err != nil {
		return 0, err
	}

	fields, err := replyFields(text, "?CAL", 1)
	if err != nil {
		return 0, err
	}
	points, parseErr := strconv.Atoi(fields[0])
	if parseErr != nil {
		return 0, &FormatError{Text: text}
	}
	return points, nil
}

// Scale reports the temperature scale readings are taken in. Reply shape:
// "?S,c".
func (d *Device) Scale() (TemperatureScale, error) {
	text, err := d.text(ScaleState())
	if err != nil {
		return 0, err
	}

	fields, err := replyFields(text, "?S", 1)
	if err != nil {
		return 0, err
	}

	switch strings.ToLower(fields[0]) {
	case "c":
		return Celsius, nil
	case "k":
		return Kelvin, nil
	case "f":
		return Fahrenheit, nil
	default:
		return 0, &FormatError{Text: text}
	}
}

// Led reports whether the indicator LED is on. Reply shape: "?L,1".
func (d *Device) Led() (bool, error) {
	text, err := d.text(LedState())
	if err != nil {
		return false, err
	}

	fields, err := replyFields(text, "?L", 1)
	if err != nil {
		return false, err
	}
	return fields[0] == "1", nil
}

// ProtocolLocked reports whether the communication protocol is locked.
// Reply shape: "?Plock,1".
func (d *Device) ProtocolLocked() (bool, error) {
	text, err := d.text(ProtocolLockState())
	if err != nil {
		return false, err
	}

	fields, err := replyFields(text, "?PLOCK", 1)
	if err != nil {
		return false, err
	}
	return fields[0] == "1", nil
}

// Interval reports the datalogger interval in seconds, 0 when disabled.
// Reply shape: "?D,16".
func (d *Device) Interval() (int, error) {
	text, err := d.text(DataloggerInterval())
	if err != nil {
		return 0, err
	}

	fields, err := replyFields(text, "?D", 1)
	if err != nil {
		return 0, err
	}
	secs, parseErr := strconv.Atoi(fields[0])
	if parseErr != nil {
		return 0, &FormatError{Text: text}
	}
	return secs, nil
}

// Sleep puts the chip into low-power sleep. The chip sends no reply; any
// subsequent command wakes it.
func (d *Device) Sleep() error {
	_, err := d.Execute(Sleep())
	return err
}

// replyFields validates a "?PREFIX,a,b,..." reply and returns the n fields
// after the prefix. The prefix match is case-insensitive since firmware
// revisions differ in reply casing.
func replyFields(text, prefix string, n int) ([]string, error) {
	parts := strings.Split(text, ",")
	if len(parts) != n+1 || !strings.EqualFold(parts[0], prefix) {
		return nil, &FormatError{Text: text}
	}
	return parts[1:], nil
}

func (d *Device) logDebug(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Debug(msg, keysAndValues...)
	}
}

func (d *Device) logInfo(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Info(msg, keysAndValues...)
	}
}

func (d *Device) logError(msg string, keysAndValues ...interface{}) {
	if d.config.Logger != nil {
		d.config.Logger.Error(msg, keysAndValues...)
	}
}
