package ges

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats tracks iteration counts, wall-clock elapsed time, and pool-size
// extremes across a Solve call, mirroring the accounting the reference
// implementation keeps purely for progress reporting. Stats itself is not
// synchronized and is updated only from the Driver's single-goroutine loop;
// when metrics are enabled it pushes values into Prometheus counters and
// gauges, which the registry reads on its own.
type Stats struct {
	start      time.Time
	iterations int64

	poolMin int
	poolMax int

	metrics *metricsSet
}

// NewStats starts a fresh accounting window.
func NewStats() *Stats {
	return &Stats{start: monotonicNow(), poolMin: -1}
}

// Reset restarts the elapsed-time clock and iteration counter. Pool min/max
// are not cleared: they keep running across Reset calls for the life of the
// Stats.
func (s *Stats) Reset() {
	s.start = monotonicNow()
	s.iterations = 0
}

// AddIteration records one inner-loop iteration and the ejection pool size
// observed at that point.
func (s *Stats) AddIteration(poolSize int) {
	s.iterations++
	if s.poolMin < 0 || poolSize < s.poolMin {
		s.poolMin = poolSize
	}
	if poolSize > s.poolMax {
		s.poolMax = poolSize
	}
	if s.metrics != nil {
		s.metrics.iterations.Inc()
		s.metrics.poolSize.Set(float64(poolSize))
	}
}

// Iterations returns the total number of inner-loop iterations recorded
// since the last Reset.
func (s *Stats) Iterations() int64 {
	return s.iterations
}

// Elapsed returns wall-clock time since the last Reset.
func (s *Stats) Elapsed() time.Duration {
	return monotonicNow().Sub(s.start)
}

// PoolExtremes returns the smallest and largest ejection pool size observed
// since the Stats was created (Reset does not clear them).
func (s *Stats) PoolExtremes() (min, max int) {
	if s.poolMin < 0 {
		return 0, s.poolMax
	}
	return s.poolMin, s.poolMax
}

// monotonicNow is time.Now, held in a package-level variable so tests can
// substitute a fixed clock.
var monotonicNow = time.Now

// metricsSet is the optional Prometheus wiring for Stats; nil unless the
// caller attaches one via Driver.EnableMetrics.
type metricsSet struct {
	iterations prometheus.Counter
	routes     prometheus.Gauge
	poolSize   prometheus.Gauge
	elapsed    prometheus.Gauge
}

// newMetricsSet registers the GES gauges/counters against reg.
func newMetricsSet(reg prometheus.Registerer) (*metricsSet, error) {
	ms := &metricsSet{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ges",
			Name:      "iterations_total",
			Help:      "Number of insertion-search iterations performed.",
		}),
		routes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ges",
			Name:      "routes",
			Help:      "Current number of active routes in the solution.",
		}),
		poolSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ges",
			Name:      "ejection_pool_size",
			Help:      "Current number of unserved nodes awaiting reinsertion.",
		}),
		elapsed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ges",
			Name:      "elapsed_seconds",
			Help:      "Wall-clock time elapsed in the current Solve call.",
		}),
	}
	for _, c := range []prometheus.Collector{ms.iterations, ms.routes, ms.poolSize, ms.elapsed} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return ms, nil
}
