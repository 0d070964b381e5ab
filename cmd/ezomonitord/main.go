// ezomonitord polls an EZO RTD temperature chip over I2C and exposes the
// readings as logs and Prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/host/v3"

	"github.com/moffa90/go-ezo/ezo"
	"github.com/moffa90/go-ezo/i2cdev"
	"github.com/moffa90/go-ezo/protocol"
)

var (
	Version   = "1.0.0"
	BuildTime = "unknown"
)

func main() {
	configFile := flag.String("config", "", "path to yaml config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("ezomonitord v%s (build: %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	cfg := DefaultConfig()
	if *configFile != "" {
		loaded, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := setupLogger(cfg.Log)
	log.Infof("ezomonitord v%s starting", Version)

	if _, err := host.Init(); err != nil {
		log.Fatalf("init periph host: %v", err)
	}

	transport, err := i2cdev.Open(cfg.Sensor.Bus, cfg.Sensor.Address)
	if err != nil {
		log.Fatalf("open sensor: %v", err)
	}
	defer transport.Close()

	dev := ezo.New(transport, ezo.WithLogger(&logrusLogger{log: log}))

	info, err := dev.Info()
	if err != nil {
		log.Fatalf("identify chip: %v", err)
	}
	log.WithFields(logrus.Fields{
		"module":   info.Module,
		"firmware": info.Firmware,
		"address":  fmt.Sprintf("0x%02X", cfg.Sensor.Address),
	}).Info("chip identified")

	if cfg.Monitor.Enabled {
		startMetrics(cfg.Monitor, log)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sensor.Interval())
	defer ticker.Stop()

	log.Infof("polling every %s", cfg.Sensor.Interval())
	for {
		select {
		case <-ticker.C:
			poll(dev, log)
		case sig := <-stop:
			log.Infof("received %s, putting chip to sleep", sig)
			if err := dev.Sleep(); err != nil {
				log.Errorf("sleep command: %v", err)
			}
			return
		}
	}
}

func poll(dev *ezo.Device, log *logrus.Logger) {
	start := time.Now()
	celsius, err := dev.Reading()
	commandDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		readErrorsTotal.WithLabelValues(errorKind(err)).Inc()
		log.Errorf("reading failed: %v", err)
		return
	}

	readingsTotal.Inc()
	temperature.Set(celsius)
	log.WithField("celsius", celsius).Info("temperature")
}

// errorKind labels an error for the read-errors metric by the phase that
// failed.
func errorKind(err error) string {
	switch {
	case protocol.IsTransmitError(err):
		return "transmit"
	case protocol.IsReceiveError(err):
		return "receive"
	case protocol.IsDecodeError(err):
		return "decode"
	default:
		return "state"
	}
}

func setupLogger(cfg LogConfig) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

// logrusLogger adapts a logrus.Logger to the ezo.Logger interface.
type logrusLogger struct {
	log *logrus.Logger
}

func (l *logrusLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Debug(msg)
}

func (l *logrusLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Info(msg)
}

func (l *logrusLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.WithFields(fields(keysAndValues)).Error(msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		f[key] = keysAndValues[i+1]
	}
	return f
}
