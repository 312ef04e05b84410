package collector

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metric label names
const (
	labelHost  = "host"
	labelPhase = "phase"
	labelState = "state"
	labelMode  = "mode"
	labelCode  = "code"
	labelModel = "model"
)

// MetricSet holds all Prometheus metric descriptors for the goecharger exporter.
type MetricSet struct {
	// Energy telemetry metrics
	voltage     *prometheus.Desc
	current     *prometheus.Desc
	power       *prometheus.Desc
	powerTotal  *prometheus.Desc
	powerFactor *prometheus.Desc

	// Charging configuration metrics
	chargingRate  *prometheus.Desc
	deviceMaximum *prometheus.Desc
	chargeLimit   *prometheus.Desc

	// Device state metrics
	temperature   *prometheus.Desc
	carState      *prometheus.Desc
	chargingMode  *prometheus.Desc
	phaseMode     *prometheus.Desc
	cableLockMode *prometheus.Desc
	errorState    *prometheus.Desc
	deviceInfo    *prometheus.Desc

	// Scrape metrics
	scrapeErrors   prometheus.Counter
	scrapeDuration prometheus.Histogram
}

// newMetricSet creates all metric descriptors.
func newMetricSet() *MetricSet {
	labels := []string{labelHost}
	labelsWithPhase := append(labels, labelPhase)

	return &MetricSet{
		// Energy telemetry metrics
		voltage: prometheus.NewDesc(
			"goecharger_voltage_volts",
			"Phase voltage (V)",
			labelsWithPhase, nil,
		),
		current: prometheus.NewDesc(
			"goecharger_current_amperes",
			"Phase current (A)",
			labelsWithPhase, nil,
		),
		power: prometheus.NewDesc(
			"goecharger_power_watts",
			"Phase power (W)",
			labelsWithPhase, nil,
		),
		powerTotal: prometheus.NewDesc(
			"goecharger_power_total_watts",
			"Total charging power (W)",
			labels, nil,
		),
		powerFactor: prometheus.NewDesc(
			"goecharger_power_factor",
			"Phase power factor",
			labelsWithPhase, nil,
		),

		// Charging configuration metrics
		chargingRate: prometheus.NewDesc(
			"goecharger_charging_rate_amperes",
			"Currently possible charging rate (A)",
			labels, nil,
		),
		deviceMaximum: prometheus.NewDesc(
			"goecharger_device_max_current_amperes",
			"Absolute maximum current of the device (A)",
			labels, nil,
		),
		chargeLimit: prometheus.NewDesc(
			"goecharger_charge_limit_watthours",
			"Charge limit (Wh), absent when disabled",
			labels, nil,
		),

		// Device state metrics
		temperature: prometheus.NewDesc(
			"goecharger_temperature_celsius",
			"Mean device temperature (°C)",
			labels, nil,
		),
		carState: prometheus.NewDesc(
			"goecharger_car_state",
			"Current car state (1 for current)",
			append(labels, labelState), nil,
		),
		chargingMode: prometheus.NewDesc(
			"goecharger_charging_mode",
			"Current charging mode (1 for current)",
			append(labels, labelMode), nil,
		),
		phaseMode: prometheus.NewDesc(
			"goecharger_phase_mode",
			"Current phase mode (1 for current)",
			append(labels, labelMode), nil,
		),
		cableLockMode: prometheus.NewDesc(
			"goecharger_cable_lock_mode",
			"Current cable lock mode (1 for current)",
			append(labels, labelMode), nil,
		),
		errorState: prometheus.NewDesc(
			"goecharger_error",
			"Active device error (1 when present)",
			append(labels, labelCode), nil,
		),
		deviceInfo: prometheus.NewDesc(
			"goecharger_device_info",
			"Device model information (always 1)",
			append(labels, labelModel), nil,
		),

		// Scrape metrics
		scrapeErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "goecharger_scrape_errors_total",
			Help: "Total number of scrape errors",
		}),
		scrapeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "goecharger_scrape_duration_seconds",
			Help:    "Time spent scraping the charger status API",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
	}
}
