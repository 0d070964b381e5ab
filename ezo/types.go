package ezo

// RestartReason is the restart code letter reported by the Status command.
type RestartReason byte

// Restart codes per the EZO RTD datasheet.
const (
	RestartPowerOff RestartReason = 'P'
	RestartSoftware RestartReason = 'S'
	RestartBrownOut RestartReason = 'B'
	RestartWatchdog RestartReason = 'W'
	RestartUnknown  RestartReason = 'U'
)

// String returns a human-readable name for the restart reason.
func (r RestartReason) String() string {
	switch r {
	case RestartPowerOff:
		return "powered off"
	case RestartSoftware:
		return "software reset"
	case RestartBrownOut:
		return "brown out"
	case RestartWatchdog:
		return "watchdog"
	case RestartUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// DeviceStatus is the parsed reply of the Status command.
type DeviceStatus struct {
	// Restart is the reason for the chip's last restart
	Restart RestartReason

	// Voltage is the supply voltage at the Vcc pin
	Voltage float64
}

// DeviceInfo is the parsed reply of the DeviceInformation command.
type DeviceInfo struct {
	// Module is the chip model name, "RTD" for the temperature chip
	Module string

	// Firmware is the chip firmware version
	Firmware string
}

// TemperatureScale is the unit the chip reports readings in.
type TemperatureScale int

// Scales supported by the chip.
const (
	Celsius TemperatureScale = iota + 1
	Kelvin
	Fahrenheit
)

// String returns the datasheet letter for the scale.
func (s TemperatureScale) String() string {
	switch s {
	case Celsius:
		return "c"
	case Kelvin:
		return "k"
	case Fahrenheit:
		return "f"
	default:
		return "?"
	}
}
