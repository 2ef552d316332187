package kdpoint

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// promcollector provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordInsert is called after each insert operation.
	// duration is the total time taken, err is nil if successful.
	RecordInsert(duration time.Duration, err error)

	// RecordBatchInsert is called after each batch insert operation.
	// count is the number of entries applied, created the number of new keys.
	RecordBatchInsert(count, created int, duration time.Duration, err error)

	// RecordLookup is called after each Get or Contains.
	RecordLookup(duration time.Duration, err error)

	// RecordRange is called after each range query with the number of points found.
	RecordRange(results int, duration time.Duration, err error)

	// RecordNearest is called after each nearest-neighbour query.
	RecordNearest(duration time.Duration, err error)

	// RecordSave is called after each snapshot save with the encoded size.
	RecordSave(bytes int64, duration time.Duration, err error)

	// RecordLoad is called after each snapshot load with the number of entries restored.
	RecordLoad(entries int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(time.Duration, error)                {}
func (NoopMetricsCollector) RecordBatchInsert(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordLookup(time.Duration, error)                {}
func (NoopMetricsCollector) RecordRange(int, time.Duration, error)            {}
func (NoopMetricsCollector) RecordNearest(time.Duration, error)               {}
func (NoopMetricsCollector) RecordSave(int64, time.Duration, error)           {}
func (NoopMetricsCollector) RecordLoad(int, time.Duration, error)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	InsertCount       atomic.Int64
	InsertErrors      atomic.Int64
	InsertTotalNanos  atomic.Int64
	BatchInsertCount  atomic.Int64
	BatchInsertItems  atomic.Int64
	BatchInsertNew    atomic.Int64
	LookupCount       atomic.Int64
	LookupErrors      atomic.Int64
	RangeCount        atomic.Int64
	RangeErrors       atomic.Int64
	RangeResults      atomic.Int64
	RangeTotalNanos   atomic.Int64
	NearestCount      atomic.Int64
	NearestErrors     atomic.Int64
	NearestTotalNanos atomic.Int64
	SaveCount         atomic.Int64
	SaveErrors        atomic.Int64
	SaveBytes         atomic.Int64
	LoadCount         atomic.Int64
	LoadErrors        atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
	}
}

// RecordBatchInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchInsert(count, created int, _ time.Duration, err error) {
	b.BatchInsertCount.Add(1)
	if err != nil {
		return
	}
	b.BatchInsertItems.Add(int64(count))
	b.BatchInsertNew.Add(int64(created))
}

// RecordLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLookup(_ time.Duration, err error) {
	b.LookupCount.Add(1)
	if err != nil {
		b.LookupErrors.Add(1)
	}
}

// RecordRange implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRange(results int, duration time.Duration, err error) {
	b.RangeCount.Add(1)
	b.RangeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RangeErrors.Add(1)
		return
	}
	b.RangeResults.Add(int64(results))
}

// RecordNearest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordNearest(duration time.Duration, err error) {
	b.NearestCount.Add(1)
	b.NearestTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.NearestErrors.Add(1)
	}
}

// RecordSave implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSave(bytes int64, _ time.Duration, err error) {
	b.SaveCount.Add(1)
	if err != nil {
		b.SaveErrors.Add(1)
		return
	}
	b.SaveBytes.Add(bytes)
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(_ int, _ time.Duration, err error) {
	b.LoadCount.Add(1)
	if err != nil {
		b.LoadErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		InsertCount:      b.InsertCount.Load(),
		InsertErrors:     b.InsertErrors.Load(),
		InsertAvgNanos:   avg(b.InsertTotalNanos.Load(), b.InsertCount.Load()),
		BatchInsertCount: b.BatchInsertCount.Load(),
		BatchInsertItems: b.BatchInsertItems.Load(),
		BatchInsertNew:   b.BatchInsertNew.Load(),
		LookupCount:      b.LookupCount.Load(),
		LookupErrors:     b.LookupErrors.Load(),
		RangeCount:       b.RangeCount.Load(),
		RangeErrors:      b.RangeErrors.Load(),
		RangeResults:     b.RangeResults.Load(),
		RangeAvgNanos:    avg(b.RangeTotalNanos.Load(), b.RangeCount.Load()),
		NearestCount:     b.NearestCount.Load(),
		NearestErrors:    b.NearestErrors.Load(),
		NearestAvgNanos:  avg(b.NearestTotalNanos.Load(), b.NearestCount.Load()),
		SaveCount:        b.SaveCount.Load(),
		SaveErrors:       b.SaveErrors.Load(),
		SaveBytes:        b.SaveBytes.Load(),
		LoadCount:        b.LoadCount.Load(),
		LoadErrors:       b.LoadErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	InsertCount      int64
	InsertErrors     int64
	InsertAvgNanos   int64
	BatchInsertCount int64
	BatchInsertItems int64
	BatchInsertNew   int64
	LookupCount      int64
	LookupErrors     int64
	RangeCount       int64
	RangeErrors      int64
	RangeResults     int64
	RangeAvgNanos    int64
	NearestCount     int64
	NearestErrors    int64
	NearestAvgNanos  int64
	SaveCount        int64
	SaveErrors       int64
	SaveBytes        int64
	LoadCount        int64
	LoadErrors       int64
}
