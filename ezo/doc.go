// Package ezo provides a high-level driver for the Atlas Scientific EZO RTD
// temperature chip over I2C.
//
// # Overview
//
// The package maps the chip's fixed command set onto protocol parameters
// (command string, processing delay, expected reply shape) and offers typed
// helpers that parse the decoded replies:
//   - Taking temperature readings
//   - Querying device status, information and calibration state
//   - Controlling the LED, temperature scale and protocol lock
//   - Datalogger configuration and memory recall
//   - Exporting and importing the calibration
//
// # Basic Usage
//
//	transport, err := i2cdev.Open("", ezo.DefaultAddress)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer transport.Close()
//
//	dev := ezo.New(transport)
//
//	celsius, err := dev.Reading()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.3f °C\n", celsius)
//
// Lower-level access is available through Execute, which runs any catalog
// command and returns the raw protocol response:
//
//	resp, err := dev.Execute(ezo.Status())
//
// # Chip States
//
// The chip reports Pending, DeviceError and NoDataExpected as ordinary
// response codes rather than transport failures. Typed helpers that need a
// payload turn those states into a *StateError so callers can still branch
// on the code:
//
//	celsius, err := dev.Reading()
//	var se *ezo.StateError
//	if errors.As(err, &se) && se.Code == protocol.Pending {
//	    // chip still busy, try again later
//	}
//
// # Logging
//
// An optional Logger can observe every command and response:
//
//	dev := ezo.New(transport, ezo.WithLogger(myLogger))
package ezo
