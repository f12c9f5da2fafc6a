package ges

import "k8s.io/klog/v2"

// These are the klog verbosity levels the Driver logs at, so a caller that
// has already configured klog's -v flag keeps full control: LogQuiet never
// logs through klog at all (the Driver still returns a final *Solution the
// caller can report on its own), LogVerbose logs route removals and periodic
// totals at V(2), and LogExtra adds route dumps at V(4), the same levels
// mihai-snyk-descheduler's multiobjective plugins use for routine versus
// detailed progress output.
const (
	verbosityRoute  = 2
	verbosityTotals = 2
	verbosityExtra  = 4
)

func (d *Driver) logRouteRemoved(first int, size int) {
	if d.Opts.Log < LogVerbose {
		return
	}
	klog.V(verbosityRoute).Infof("ges: removed route first=%d size=%d routes_left=%d pool=%d",
		first, size, d.Sol.RouteCount(), d.Pool.Len())
}

func (d *Driver) logPeriodic() {
	if d.Opts.Log < LogVerbose {
		return
	}
	klog.V(verbosityTotals).Infof("ges: iterations=%d routes=%d pool=%d elapsed=%s",
		d.Stats.Iterations(), d.Sol.RouteCount(), d.Pool.Len(), d.Stats.Elapsed())
}

func (d *Driver) logExtra(format string, args ...interface{}) {
	if d.Opts.Log < LogExtra {
		return
	}
	klog.V(verbosityExtra).Infof(format, args...)
}
