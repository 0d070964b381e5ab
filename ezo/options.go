package ezo

// Config holds the device configuration.
type Config struct {
	// Logger observes commands and responses (optional)
	Logger Logger
}

func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Device.
type Option func(*Config)

// WithLogger sets a logger for device operations.
//
// Example:
//
//	dev := ezo.New(transport, ezo.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
