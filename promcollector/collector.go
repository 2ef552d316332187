// Package promcollector exports kdpoint operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	idx, _ := kdpoint.New[string](kdpoint.WithMetricsCollector(promcollector.New(reg, "kdpoint")))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package promcollector

import (
	"time"

	"github.com/hupe1980/kdpoint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	opLabel     = "op"
	statusLabel = "status"
)

// Collector implements kdpoint.MetricsCollector with Prometheus metrics.
type Collector struct {
	ops          *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	rangeResults prometheus.Histogram
	batchItems   *prometheus.CounterVec
	savedBytes   prometheus.Counter
	loadedPoints prometheus.Gauge
}

var _ kdpoint.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer, namespace string) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Collector{
		ops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "The total number of index operations.",
		}, []string{opLabel, statusLabel}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of index operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{opLabel}),
		rangeResults: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "range_results",
			Help:      "Number of points returned per range query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		batchItems: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_insert_items_total",
			Help:      "Entries applied by batch inserts, split into created and updated keys.",
		}, []string{"kind"}),
		savedBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshot_bytes_total",
			Help:      "Bytes written by snapshot saves.",
		}),
		loadedPoints: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "snapshot_loaded_points",
			Help:      "Number of points restored by the last snapshot load.",
		}),
	}
}

func (c *Collector) observe(op string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.ops.With(prometheus.Labels{opLabel: op, statusLabel: status}).Inc()
	c.latency.With(prometheus.Labels{opLabel: op}).Observe(duration.Seconds())
}

// RecordInsert implements kdpoint.MetricsCollector.
func (c *Collector) RecordInsert(duration time.Duration, err error) {
	c.observe("insert", duration, err)
}

// RecordBatchInsert implements kdpoint.MetricsCollector.
func (c *Collector) RecordBatchInsert(count, created int, duration time.Duration, err error) {
	c.observe("batch_insert", duration, err)
	if err != nil {
		return
	}
	c.batchItems.WithLabelValues("created").Add(float64(created))
	c.batchItems.WithLabelValues("updated").Add(float64(count - created))
}

// RecordLookup implements kdpoint.MetricsCollector.
func (c *Collector) RecordLookup(duration time.Duration, err error) {
	c.observe("lookup", duration, err)
}

// RecordRange implements kdpoint.MetricsCollector.
func (c *Collector) RecordRange(results int, duration time.Duration, err error) {
	c.observe("range", duration, err)
	if err == nil {
		c.rangeResults.Observe(float64(results))
	}
}

// RecordNearest implements kdpoint.MetricsCollector.
func (c *Collector) RecordNearest(duration time.Duration, err error) {
	c.observe("nearest", duration, err)
}

// RecordSave implements kdpoint.MetricsCollector.
func (c *Collector) RecordSave(bytes int64, duration time.Duration, err error) {
	c.observe("save", duration, err)
	if err == nil {
		c.savedBytes.Add(float64(bytes))
	}
}

// RecordLoad implements kdpoint.MetricsCollector.
func (c *Collector) RecordLoad(entries int, duration time.Duration, err error) {
	c.observe("load", duration, err)
	if err == nil {
		c.loadedPoints.Set(float64(entries))
	}
}
