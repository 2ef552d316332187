package kdpoint

import (
	"log/slog"

	"github.com/hupe1980/kdpoint/blobstore"
	"github.com/hupe1980/kdpoint/codec"
	"github.com/hupe1980/kdpoint/persistence"
	"github.com/hupe1980/kdpoint/resource"
)

type options struct {
	backend          Backend
	codec            codec.Codec
	compression      persistence.Compression
	store            blobstore.BlobStore
	retain           int
	controller       *resource.Controller
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures an Index.
type Option func(*options)

// WithBackend selects the point table behind the index.
// The default is BackendKDTree.
func WithBackend(b Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithCodec configures the codec used to encode values in snapshots.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression configures snapshot payload compression.
// The default is persistence.CompressionNone.
func WithCompression(c persistence.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithBlobStore configures where Save writes and Load reads snapshots.
//
// Example:
//
//	store := blobstore.NewLocalStore("./points")
//	idx, _ := kdpoint.New[string](kdpoint.WithBlobStore(store))
func WithBlobStore(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSnapshotRetention keeps only the newest n snapshots after each Save.
// n <= 0 keeps all snapshots.
func WithSnapshotRetention(n int) Option {
	return func(o *options) {
		o.retain = n
	}
}

// WithResourceConfig bounds batch workers, snapshot memory and snapshot I/O.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.controller = resource.NewController(cfg)
	}
}

// WithResourceController shares one controller between several indexes.
func WithResourceController(c *resource.Controller) Option {
	return func(o *options) {
		o.controller = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
//
// Example:
//
//	metrics := &kdpoint.BasicMetricsCollector{}
//	idx, _ := kdpoint.New[string](kdpoint.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ranges: %d, Avg latency: %dns\n", stats.RangeCount, stats.RangeAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kdpoint.NewJSONLogger(slog.LevelInfo)
//	idx, _ := kdpoint.New[string](kdpoint.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		backend:          BackendKDTree,
		codec:            codec.Default,
		compression:      persistence.CompressionNone,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.controller == nil {
		o.controller = resource.NewController(resource.Config{})
	}
	return o
}
