package main

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	readingsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ezo_readings_total",
		Help: "Number of successful temperature readings",
	})

	readErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ezo_read_errors_total",
			Help: "Number of failed reading attempts",
		},
		[]string{"kind"},
	)

	temperature = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ezo_temperature_celsius",
		Help: "Last temperature reported by the chip",
	})

	commandDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ezo_command_duration_seconds",
		Help:    "Wall time of one full command interaction",
		Buckets: prometheus.DefBuckets,
	})
)

func startMetrics(cfg MonitorConfig, log *logrus.Logger) {
	prometheus.MustRegister(
		readingsTotal,
		readErrorsTotal,
		temperature,
		commandDuration,
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", cfg.MetricsPort)
	go func() {
		log.Infof("metrics listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Errorf("metrics server stopped: %v", err)
		}
	}()
}
