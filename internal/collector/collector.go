// Package collector implements the Prometheus collector interface for go-e Charger devices.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	goecharger "github.com/bkogler/goecharger-api-lite"
)

// GoeChargerCollector implements prometheus.Collector for a single charger.
type GoeChargerCollector struct {
	client  *goecharger.Client
	host    string
	timeout time.Duration
	logger  *slog.Logger
	metrics *MetricSet
}

// NewGoeChargerCollector creates a new charger collector.
func NewGoeChargerCollector(client *goecharger.Client, host string, timeout time.Duration, logger *slog.Logger) *GoeChargerCollector {
	return &GoeChargerCollector{
		client:  client,
		host:    host,
		timeout: timeout,
		logger:  logger,
		metrics: newMetricSet(),
	}
}

// Describe implements prometheus.Collector.
func (c *GoeChargerCollector) Describe(ch chan<- *prometheus.Desc) {
	// Energy telemetry metrics
	ch <- c.metrics.voltage
	ch <- c.metrics.current
	ch <- c.metrics.power
	ch <- c.metrics.powerTotal
	ch <- c.metrics.powerFactor

	// Charging configuration metrics
	ch <- c.metrics.chargingRate
	ch <- c.metrics.deviceMaximum
	ch <- c.metrics.chargeLimit

	// Device state metrics
	ch <- c.metrics.temperature
	ch <- c.metrics.carState
	ch <- c.metrics.chargingMode
	ch <- c.metrics.phaseMode
	ch <- c.metrics.cableLockMode
	ch <- c.metrics.errorState
	ch <- c.metrics.deviceInfo

	// Scrape metrics
	c.metrics.scrapeErrors.Describe(ch)
	c.metrics.scrapeDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
// It performs an on-demand status request when Prometheus scrapes /metrics.
func (c *GoeChargerCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		c.metrics.scrapeDuration.Observe(time.Since(start).Seconds())
		c.metrics.scrapeDuration.Collect(ch)
		c.metrics.scrapeErrors.Collect(ch)
	}()

	c.logger.Debug("Starting scrape", "host", c.host)
	status, err := c.client.GetStatus(ctx, goecharger.StatusDefault...)
	if err != nil {
		c.metrics.scrapeErrors.Inc()
		c.logger.Error("Status request failed during scrape", "host", c.host, "error", err)
		return
	}

	labels := []string{c.host}

	c.emitGaugeFields(ch, labels, status)
	c.emitEnergyMetrics(ch, labels, status)
	c.emitStateMetrics(ch, labels, status)
}

// emitGaugeFields emits plain numeric status fields.
func (c *GoeChargerCollector) emitGaugeFields(ch chan<- prometheus.Metric, labels []string, status *goecharger.Status) {
	gauges := map[string]*prometheus.Desc{
		"ampere":                c.metrics.chargingRate,
		"ampere_device_maximum": c.metrics.deviceMaximum,
		"charge_limit":          c.metrics.chargeLimit,
		"temperature":           c.metrics.temperature,
	}

	for field, desc := range gauges {
		value, ok := status.Get(field)
		if !ok {
			continue
		}
		// charge_limit and temperature may carry an explicit no-value
		if f, ok := asFloat(value); ok {
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, f, labels...)
		}
	}
}

// emitEnergyMetrics emits the decomposed energy telemetry.
func (c *GoeChargerCollector) emitEnergyMetrics(ch chan<- prometheus.Metric, labels []string, status *goecharger.Status) {
	value, ok := status.Get("energy")
	if !ok {
		return
	}
	energy, ok := value.(*goecharger.Energy)
	if !ok {
		return
	}

	phase := func(desc *prometheus.Desc, name string, v float64) {
		ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, v, append(labels, name)...)
	}

	phase(c.metrics.voltage, "L1", energy.Voltage.L1)
	phase(c.metrics.voltage, "L2", energy.Voltage.L2)
	phase(c.metrics.voltage, "L3", energy.Voltage.L3)
	phase(c.metrics.voltage, "N", energy.Voltage.N)

	phase(c.metrics.current, "L1", energy.Current.L1)
	phase(c.metrics.current, "L2", energy.Current.L2)
	phase(c.metrics.current, "L3", energy.Current.L3)

	phase(c.metrics.power, "L1", energy.Power.L1)
	phase(c.metrics.power, "L2", energy.Power.L2)
	phase(c.metrics.power, "L3", energy.Power.L3)
	phase(c.metrics.power, "N", energy.Power.N)
	ch <- prometheus.MustNewConstMetric(c.metrics.powerTotal, prometheus.GaugeValue, energy.Power.Total, labels...)

	phase(c.metrics.powerFactor, "L1", energy.PowerFactor.L1)
	phase(c.metrics.powerFactor, "L2", energy.PowerFactor.L2)
	phase(c.metrics.powerFactor, "L3", energy.PowerFactor.L3)
}

// emitStateMetrics emits enum-typed fields as labeled gauges.
func (c *GoeChargerCollector) emitStateMetrics(ch chan<- prometheus.Metric, labels []string, status *goecharger.Status) {
	states := map[string]*prometheus.Desc{
		"car_state":       c.metrics.carState,
		"charging_mode":   c.metrics.chargingMode,
		"phase_mode":      c.metrics.phaseMode,
		"cable_lock_mode": c.metrics.cableLockMode,
		"device_model":    c.metrics.deviceInfo,
	}

	for field, desc := range states {
		value, ok := status.Get(field)
		if !ok {
			continue
		}
		if label, ok := value.(string); ok {
			ch <- prometheus.MustNewConstMetric(desc, prometheus.GaugeValue, 1, append(labels, label)...)
		}
	}

	// error is nil when the device reports no error condition
	if value, ok := status.Get("error"); ok {
		if code, ok := value.(string); ok {
			ch <- prometheus.MustNewConstMetric(c.metrics.errorState, prometheus.GaugeValue, 1, append(labels, code)...)
		}
	}
}

// asFloat coerces a translated status value to a float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
