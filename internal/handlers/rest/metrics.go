package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gabapcia/btcmonitor/internal/addrregistry"
	"github.com/gabapcia/btcmonitor/internal/txwatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "btcmonitor"

// gaugeTimeout bounds registry reads during a scrape.
const gaugeTimeout = 2 * time.Second

// metrics owns a private registry so several servers can coexist in one
// process (tests) without duplicate registration panics.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(registry addrregistry.Service, watcher txwatch.Service) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "API requests by handler, method and status code",
		}, []string{"handler", "method", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "API request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"handler", "method", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.duration,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "monitored_addresses",
			Help:      "Number of addresses in the registry",
		}, func() float64 {
			ctx, cancel := context.WithTimeout(context.Background(), gaugeTimeout)
			defer cancel()

			entries, err := registry.List(ctx)
			if err != nil {
				return -1
			}
			return float64(len(entries))
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "poll_interval_seconds",
			Help:      "Pause between poll cycles",
		}, func() float64 {
			return watcher.Interval().Seconds()
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "monitoring",
			Help:      "1 while the poll loop runs",
		}, func() float64 {
			if watcher.Running() {
				return 1
			}
			return 0
		}),
		newCycleCollector(watcher),
	)

	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) instrument(name string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"handler": name}

	return promhttp.InstrumentHandlerDuration(m.duration.MustCurryWith(labels),
		promhttp.InstrumentHandlerCounter(m.requests.MustCurryWith(labels), h))
}

// cycleCollector exports the last cycle report at scrape time.
type cycleCollector struct {
	watcher txwatch.Service

	checked   *prometheus.Desc
	newTxs    *prometheus.Desc
	failures  *prometheus.Desc
	finished  *prometheus.Desc
	durationS *prometheus.Desc
}

func newCycleCollector(watcher txwatch.Service) *cycleCollector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(metricsNamespace, "last_cycle", name), help, nil, nil)
	}

	return &cycleCollector{
		watcher:   watcher,
		checked:   desc("checked_addresses", "Addresses checked successfully in the last cycle"),
		newTxs:    desc("new_transactions", "Transactions reported in the last cycle"),
		failures:  desc("failures", "Addresses that failed in the last cycle"),
		finished:  desc("finished_timestamp_seconds", "Unix time the last cycle finished"),
		durationS: desc("duration_seconds", "Duration of the last cycle"),
	}
}

func (c *cycleCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.checked
	ch <- c.newTxs
	ch <- c.failures
	ch <- c.finished
	ch <- c.durationS
}

func (c *cycleCollector) Collect(ch chan<- prometheus.Metric) {
	report, ok := c.watcher.LastReport()
	if !ok {
		return
	}

	ch <- prometheus.MustNewConstMetric(c.checked, prometheus.GaugeValue, float64(report.Checked))
	ch <- prometheus.MustNewConstMetric(c.newTxs, prometheus.GaugeValue, float64(report.NewTransactions))
	ch <- prometheus.MustNewConstMetric(c.failures, prometheus.GaugeValue, float64(len(report.Failures)))
	ch <- prometheus.MustNewConstMetric(c.finished, prometheus.GaugeValue, float64(report.FinishedAt.Unix()))
	ch <- prometheus.MustNewConstMetric(c.durationS, prometheus.GaugeValue, report.Duration().Seconds())
}
