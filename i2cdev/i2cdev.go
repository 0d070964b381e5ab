// Package i2cdev provides a blocking I2C transport for the protocol engine,
// backed by periph.io bus drivers.
//
// The host must be initialized once before opening a bus:
//
//	if _, err := host.Init(); err != nil {
//	    log.Fatal(err)
//	}
//	transport, err := i2cdev.Open("/dev/i2c-1", ezo.DefaultAddress)
package i2cdev

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
)

// Device is one chip address on an open I2C bus. It implements
// protocol.Transport. The handle is not safe for concurrent use; the chip
// cannot process overlapping commands anyway.
type Device struct {
	bus i2c.BusCloser
	dev i2c.Dev
}

// Open opens the named bus ("" or "1" style names accepted by periph bus
// registry) and targets the chip at addr.
func Open(bus string, addr uint16) (*Device, error) {
	b, err := i2creg.Open(bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", bus, err)
	}

	return &Device{
		bus: b,
		dev: i2c.Dev{Bus: b, Addr: addr},
	}, nil
}

// Write sends the command bytes to the chip in one bus transaction.
func (d *Device) Write(p []byte) error {
	return d.dev.Tx(p, nil)
}

// Read fills p from the chip in one bus transaction.
func (d *Device) Read(p []byte) error {
	return d.dev.Tx(nil, p)
}

// Close releases the bus handle.
func (d *Device) Close() error {
	return d.bus.Close()
}
