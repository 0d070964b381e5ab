package ezo

import (
	"fmt"
	"time"

	"github.com/moffa90/go-ezo/protocol"
)

// DefaultAddress is the factory I2C address of the EZO RTD chip.
const DefaultAddress = 0x66

// Processing delays documented by the EZO RTD datasheet.
const (
	// queryDelay is the processing time for most query/set commands
	queryDelay = 300 * time.Millisecond

	// readingDelay is the processing time for taking a temperature reading
	readingDelay = 600 * time.Millisecond

	// calibrationDelay is the processing time for a calibration point
	calibrationDelay = 600 * time.Millisecond
)

// BpsRate is an allowable baud rate when switching the chip to UART mode.
type BpsRate int

// Baud rates accepted by the Baud command.
const (
	Bps300    BpsRate = 300
	Bps1200   BpsRate = 1200
	Bps2400   BpsRate = 2400
	Bps9600   BpsRate = 9600
	Bps19200  BpsRate = 19200
	Bps38400  BpsRate = 38400
	Bps57600  BpsRate = 57600
	Bps115200 BpsRate = 115200
)

type commandKind int

const (
	cmdBaud commandKind = iota
	cmdCalibrateAt
	cmdCalibrationClear
	cmdCalibrationState
	cmdDataloggerPeriod
	cmdDataloggerDisable
	cmdDataloggerInterval
	cmdDeviceInformation
	cmdExport
	cmdExportInfo
	cmdFactory
	cmdFind
	cmdImport
	cmdLedOn
	cmdLedOff
	cmdLedState
	cmdMemoryClear
	cmdMemoryRecall
	cmdMemoryRecallLast
	cmdProtocolLockEnable
	cmdProtocolLockDisable
	cmdProtocolLockState
	cmdReading
	cmdScaleCelsius
	cmdScaleKelvin
	cmdScaleFahrenheit
	cmdScaleState
	cmdSetAddress
	cmdSleep
	cmdStatus
)

// Command is one member of the chip's fixed command set. The set is closed:
// values are created only through the constructor functions below, and
// Options maps every variant onto its protocol parameters in one place.
type Command struct {
	kind commandKind
	rate BpsRate
	temp float64
	secs uint32
	addr uint16
	line string
}

// Baud switches the chip to UART mode at the given rate. The chip reboots
// and stops answering on I2C, so no response is expected.
func Baud(rate BpsRate) Command { return Command{kind: cmdBaud, rate: rate} }

// CalibrateAt performs a single-point calibration at the given temperature
// in the chip's current scale.
func CalibrateAt(temp float64) Command { return Command{kind: cmdCalibrateAt, temp: temp} }

// CalibrationClear erases the stored calibration.
func CalibrationClear() Command { return Command{kind: cmdCalibrationClear} }

// CalibrationState queries whether a calibration is stored.
func CalibrationState() Command { return Command{kind: cmdCalibrationState} }

// DataloggerPeriod enables the datalogger with the given interval in
// seconds (10 to 320000).
func DataloggerPeriod(secs uint32) Command { return Command{kind: cmdDataloggerPeriod, secs: secs} }

// DataloggerDisable turns the datalogger off.
func DataloggerDisable() Command { return Command{kind: cmdDataloggerDisable} }

// DataloggerInterval queries the datalogger interval.
func DataloggerInterval() Command { return Command{kind: cmdDataloggerInterval} }

// DeviceInformation queries the chip model and firmware version.
func DeviceInformation() Command { return Command{kind: cmdDeviceInformation} }

// Export returns the next calibration export string. The chip answers
// "*DONE" once the whole calibration has been read out.
func Export() Command { return Command{kind: cmdExport} }

// ExportInfo queries how many export strings and bytes the calibration
// occupies.
func ExportInfo() Command { return Command{kind: cmdExportInfo} }

// Factory resets the chip to factory defaults. The chip reboots, so no
// response is expected.
func Factory() Command { return Command{kind: cmdFactory} }

// Find blinks the LED until another command is sent.
func Find() Command { return Command{kind: cmdFind} }

// Import loads one previously exported calibration string.
func Import(line string) Command { return Command{kind: cmdImport, line: line} }

// LedOn turns the indicator LED on.
func LedOn() Command { return Command{kind: cmdLedOn} }

// LedOff turns the indicator LED off.
func LedOff() Command { return Command{kind: cmdLedOff} }

// LedState queries the indicator LED state.
func LedState() Command { return Command{kind: cmdLedState} }

// MemoryClear erases the recall memory.
func MemoryClear() Command { return Command{kind: cmdMemoryClear} }

// MemoryRecall reads the next stored reading from memory.
func MemoryRecall() Command { return Command{kind: cmdMemoryRecall} }

// MemoryRecallLast queries the last used memory location.
func MemoryRecallLast() Command { return Command{kind: cmdMemoryRecallLast} }

// ProtocolLockEnable locks the chip to I2C mode.
func ProtocolLockEnable() Command { return Command{kind: cmdProtocolLockEnable} }

// ProtocolLockDisable unlocks the communication protocol.
func ProtocolLockDisable() Command { return Command{kind: cmdProtocolLockDisable} }

// ProtocolLockState queries the protocol lock state.
func ProtocolLockState() Command { return Command{kind: cmdProtocolLockState} }

// TakeReading takes a single temperature reading.
func TakeReading() Command { return Command{kind: cmdReading} }

// ScaleCelsius sets the temperature scale to Celsius.
func ScaleCelsius() Command { return Command{kind: cmdScaleCelsius} }

// ScaleKelvin sets the temperature scale to Kelvin.
func ScaleKelvin() Command { return Command{kind: cmdScaleKelvin} }

// ScaleFahrenheit sets the temperature scale to Fahrenheit.
func ScaleFahrenheit() Command { return Command{kind: cmdScaleFahrenheit} }

// ScaleState queries the current temperature scale.
func ScaleState() Command { return Command{kind: cmdScaleState} }

// SetAddress moves the chip to a new I2C address (1 to 127). The chip
// reboots at the new address, so no response is expected.
func SetAddress(addr uint16) Command { return Command{kind: cmdSetAddress, addr: addr} }

// Sleep puts the chip into low-power sleep. Any subsequent command wakes it.
func Sleep() Command { return Command{kind: cmdSleep} }

// Status queries the restart reason and supply voltage.
func Status() Command { return Command{kind: cmdStatus} }

// Options builds the protocol parameters for the command: the ASCII string
// to transmit, the documented processing delay, and the expected reply
// shape. Commands that reboot the chip (Baud, Factory, SetAddress) and
// Sleep expect no reply.
func (c Command) Options() protocol.Command {
	var opts protocol.CommandOptions

	switch c.kind {
	case cmdBaud:
		opts.SetCommand(fmt.Sprintf("Baud,%d", c.rate))
	case cmdCalibrateAt:
		opts.SetCommand(fmt.Sprintf("Cal,%.2f", c.temp)).
			SetDelay(calibrationDelay).
			SetResponse(protocol.Ack)
	case cmdCalibrationClear:
		opts.SetCommand("Cal,clear").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdCalibrationState:
		opts.SetCommand("Cal,?").SetDelay(queryDelay).SetResponse(protocol.CalibrationState)
	case cmdDataloggerPeriod:
		opts.SetCommand(fmt.Sprintf("D,%d", c.secs)).
			SetDelay(queryDelay).
			SetResponse(protocol.Ack)
	case cmdDataloggerDisable:
		opts.SetCommand("D,0").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdDataloggerInterval:
		opts.SetCommand("D,?").SetDelay(queryDelay).SetResponse(protocol.DataloggerInterval)
	case cmdDeviceInformation:
		opts.SetCommand("I").SetDelay(queryDelay).SetResponse(protocol.DeviceInformation)
	case cmdExport:
		opts.SetCommand("Export").SetDelay(queryDelay).SetResponse(protocol.Export)
	case cmdExportInfo:
		opts.SetCommand("Export,?").SetDelay(queryDelay).SetResponse(protocol.ExportInfo)
	case cmdFactory:
		opts.SetCommand("Factory")
	case cmdFind:
		opts.SetCommand("Find").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdImport:
		opts.SetCommand("Import," + c.line).SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdLedOn:
		opts.SetCommand("L,1").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdLedOff:
		opts.SetCommand("L,0").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdLedState:
		opts.SetCommand("L,?").SetDelay(queryDelay).SetResponse(protocol.LedState)
	case cmdMemoryClear:
		opts.SetCommand("M,clear").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdMemoryRecall:
		opts.SetCommand("M").SetDelay(queryDelay).SetResponse(protocol.MemoryRecall)
	case cmdMemoryRecallLast:
		opts.SetCommand("M,?").SetDelay(queryDelay).SetResponse(protocol.MemoryRecallLastLocation)
	case cmdProtocolLockEnable:
		opts.SetCommand("Plock,1").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdProtocolLockDisable:
		opts.SetCommand("Plock,0").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdProtocolLockState:
		opts.SetCommand("Plock,?").SetDelay(queryDelay).SetResponse(protocol.ProtocolLockState)
	case cmdReading:
		opts.SetCommand("R").SetDelay(readingDelay).SetResponse(protocol.Reading)
	case cmdScaleCelsius:
		opts.SetCommand("S,c").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdScaleKelvin:
		opts.SetCommand("S,k").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdScaleFahrenheit:
		opts.SetCommand("S,f").SetDelay(queryDelay).SetResponse(protocol.Ack)
	case cmdScaleState:
		opts.SetCommand("S,?").SetDelay(queryDelay).SetResponse(protocol.ScaleState)
	case cmdSetAddress:
		opts.SetCommand(fmt.Sprintf("I2C,%d", c.addr))
	case cmdSleep:
		opts.SetCommand("Sleep")
	case cmdStatus:
		opts.SetCommand("Status").SetDelay(queryDelay).SetResponse(protocol.Status)
	}

	return opts.Finish()
}
