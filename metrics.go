package ges

import "github.com/prometheus/client_golang/prometheus"

// EnableMetrics attaches a Prometheus registry to d, so every subsequent
// Stats.AddIteration call also updates the ges_iterations_total counter and
// the ges_ejection_pool_size gauge, and Solve periodically refreshes
// ges_routes/ges_elapsed_seconds. A nil reg disables metrics again.
//
// This is opt-in: a Driver built without calling EnableMetrics never touches
// the prometheus package on its hot path.
func (d *Driver) EnableMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		d.Stats.metrics = nil
		return nil
	}
	ms, err := newMetricsSet(reg)
	if err != nil {
		return err
	}
	d.Stats.metrics = ms
	return nil
}

// refreshMetrics pushes point-in-time gauges that AddIteration does not
// already cover.
func (d *Driver) refreshMetrics() {
	if d.Stats.metrics == nil {
		return
	}
	d.Stats.metrics.routes.Set(float64(d.Sol.RouteCount()))
	d.Stats.metrics.elapsed.Set(d.Stats.Elapsed().Seconds())
}
