// Package metrics provides Prometheus instrumentation for the host.
// Collection is opt-in: until Init is called every recording helper is
// a no-op with zero overhead.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mu       sync.RWMutex
	registry *prometheus.Registry
	host     *hostMetrics
)

// hostMetrics holds the collectors for host lifecycle events.
type hostMetrics struct {
	sampleRate    prometheus.Gauge
	bufferSize    prometheus.Gauge
	patchLoads    *prometheus.CounterVec
	autosaves     prometheus.Counter
	autosaveTime  prometheus.Histogram
	modulesActive prometheus.Gauge
}

// Init creates the metrics registry and registers all host collectors.
// Safe to call once per process; later calls are ignored.
func Init() {
	mu.Lock()
	defer mu.Unlock()

	if registry != nil {
		return
	}

	reg := prometheus.NewRegistry()

	host = &hostMetrics{
		sampleRate: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "cardinal_engine_sample_rate_hz",
			Help: "Sample rate the engine was constructed with",
		}),
		bufferSize: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "cardinal_engine_buffer_size_frames",
			Help: "Audio buffer size in frames",
		}),
		patchLoads: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "cardinal_patch_loads_total",
				Help: "Total number of patch loads by source",
			},
			[]string{"source"}, // "template", "default", "file"
		),
		autosaves: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "cardinal_autosaves_total",
			Help: "Total number of autosave writes to the scratch directory",
		}),
		autosaveTime: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "cardinal_autosave_duration_milliseconds",
			Help:    "Duration of autosave writes in milliseconds",
			Buckets: []float64{0.5, 1, 5, 10, 50, 100, 500},
		}),
		modulesActive: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "cardinal_modules_active",
			Help: "Number of modules in the current patch",
		}),
	}

	registry = reg
}

// IsEnabled reports whether Init has been called.
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return registry != nil
}

// Registry returns the metrics registry, or nil when disabled.
func Registry() *prometheus.Registry {
	mu.RLock()
	defer mu.RUnlock()
	return registry
}

// SetEngineParams records the run parameters the engine was built with.
func SetEngineParams(sampleRate float64, bufferSize int) {
	mu.RLock()
	defer mu.RUnlock()
	if host == nil {
		return
	}
	host.sampleRate.Set(sampleRate)
	host.bufferSize.Set(float64(bufferSize))
}

// ObservePatchLoad records a patch load from the given source.
func ObservePatchLoad(source string) {
	mu.RLock()
	defer mu.RUnlock()
	if host == nil {
		return
	}
	host.patchLoads.WithLabelValues(source).Inc()
}

// ObserveAutosave records an autosave write and its duration in
// milliseconds.
func ObserveAutosave(durationMs float64) {
	mu.RLock()
	defer mu.RUnlock()
	if host == nil {
		return
	}
	host.autosaves.Inc()
	host.autosaveTime.Observe(durationMs)
}

// SetActiveModules records the module count of the current patch.
func SetActiveModules(n int) {
	mu.RLock()
	defer mu.RUnlock()
	if host == nil {
		return
	}
	host.modulesActive.Set(float64(n))
}
