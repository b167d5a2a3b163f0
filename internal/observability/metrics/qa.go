package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QAMetrics exposes cache and assessment behavior on a private registry.
type QAMetrics struct {
	registry *prometheus.Registry

	cacheHits         *prometheus.CounterVec
	cacheMisses       *prometheus.CounterVec
	cacheEvictions    prometheus.Counter
	cacheDiskFailures prometheus.Counter
	cacheUsageBytes   prometheus.Gauge
	cacheEntries      prometheus.Gauge
	assessmentsTotal  *prometheus.CounterVec
	assessmentOverall prometheus.Histogram
	sweepDuration     prometheus.Histogram
	sweepRemovedTotal *prometheus.CounterVec
}

func NewQAMetrics(service string) *QAMetrics {
	registry := prometheus.NewRegistry()

	cacheHits := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Total cache hits by category and tier.",
		},
		[]string{"service", "category", "tier"},
	)
	cacheMisses := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Total cache misses by category.",
		},
		[]string{"service", "category"},
	)
	cacheEvictions := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "evictions_total",
			Help:      "Total memory-tier evictions under the memory budget.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	cacheDiskFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "disk_write_failures_total",
			Help:      "Total failed disk-tier writes after retries.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	cacheUsageBytes := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "memory_usage_bytes",
			Help:      "Current memory-tier usage in bytes.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	cacheEntries := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "memory_entries",
			Help:      "Current number of memory-tier entries.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	assessmentsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "qa",
			Name:      "assessments_total",
			Help:      "Total quality assessments by status.",
		},
		[]string{"service", "status"},
	)
	assessmentOverall := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lqa",
			Subsystem: "qa",
			Name:      "assessment_overall_score",
			Help:      "Distribution of overall assessment scores.",
			Buckets:   []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	sweepDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "sweep_duration_seconds",
			Help:      "Duration of optimize sweeps.",
			Buckets:   prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	sweepRemovedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lqa",
			Subsystem: "cache",
			Name:      "sweep_removed_total",
			Help:      "Total entries removed by optimize sweeps, by tier.",
		},
		[]string{"service", "tier"},
	)

	registry.MustRegister(
		cacheHits,
		cacheMisses,
		cacheEvictions,
		cacheDiskFailures,
		cacheUsageBytes,
		cacheEntries,
		assessmentsTotal,
		assessmentOverall,
		sweepDuration,
		sweepRemovedTotal,
	)

	return &QAMetrics{
		registry:          registry,
		cacheHits:         cacheHits,
		cacheMisses:       cacheMisses,
		cacheEvictions:    cacheEvictions,
		cacheDiskFailures: cacheDiskFailures,
		cacheUsageBytes:   cacheUsageBytes,
		cacheEntries:      cacheEntries,
		assessmentsTotal:  assessmentsTotal,
		assessmentOverall: assessmentOverall,
		sweepDuration:     sweepDuration,
		sweepRemovedTotal: sweepRemovedTotal,
	}
}

func (m *QAMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *QAMetrics) CacheHit(service, category, tier string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(service, category, tier).Inc()
}

func (m *QAMetrics) CacheMiss(service, category string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(service, category).Inc()
}

func (m *QAMetrics) CacheEviction() {
	if m == nil {
		return
	}
	m.cacheEvictions.Inc()
}

func (m *QAMetrics) CacheDiskWriteFailure() {
	if m == nil {
		return
	}
	m.cacheDiskFailures.Inc()
}

func (m *QAMetrics) SetCacheUsage(bytes int64, entries int) {
	if m == nil {
		return
	}
	m.cacheUsageBytes.Set(float64(bytes))
	m.cacheEntries.Set(float64(entries))
}

func (m *QAMetrics) AssessmentScored(service string, overall float64, degraded bool) {
	if m == nil {
		return
	}
	status := "scored"
	if degraded {
		status = "degraded"
	}
	m.assessmentsTotal.WithLabelValues(service, status).Inc()
	m.assessmentOverall.Observe(overall)
}

func (m *QAMetrics) SweepCompleted(service string, duration time.Duration, memoryRemoved, diskRemoved int) {
	if m == nil {
		return
	}
	m.sweepDuration.Observe(duration.Seconds())
	m.sweepRemovedTotal.WithLabelValues(service, "memory").Add(float64(memoryRemoved))
	m.sweepRemovedTotal.WithLabelValues(service, "disk").Add(float64(diskRemoved))
}
