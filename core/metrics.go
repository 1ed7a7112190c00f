package core

import "github.com/prometheus/client_golang/prometheus"

var (
	fixpointIterations = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "alphactl_fixpoint_iterations_total",
		Help: "Total fixed-point driver iterations across all Lfp/Gfp calls.",
	})
	policySizeHist = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "alphactl_policy_size",
		Help:    "Size, in state-action pairs, of policies returned by Sat.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})
	scopeGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "alphactl_scope_mode",
		Help: "Current evaluator scope: 0 = min, 1 = max.",
	})
)

// Registry returns a fresh prometheus.Registry with the evaluator's
// collectors registered, for the CLI's metrics server to expose via
// promhttp.
func Registry() *prometheus.Registry {
	r := prometheus.NewRegistry()
	r.MustRegister(fixpointIterations, policySizeHist, scopeGauge)
	return r
}

func observeScope(s ScopeMode) {
	if s == ScopeMax {
		scopeGauge.Set(1)
	} else {
		scopeGauge.Set(0)
	}
}
