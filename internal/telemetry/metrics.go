package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/colorchecker/verifier-core/internal/result"
)

// Collector holds the three detect-pipeline metrics and the
// Registerer they were registered against. A nil *Collector is valid;
// Observe on it is a no-op, so an Orchestrator built without
// telemetry wiring still runs.
type Collector struct {
	detectDuration      prometheus.Histogram
	detectFailuresTotal *prometheus.CounterVec
	detectConfidence    prometheus.Histogram
}

// NewCollector registers the detect-pipeline metrics against reg and
// returns a Collector that records to them. A nil reg registers the
// metrics nowhere (promauto.With(nil) leaves them unregistered): the
// Collector still records, but nothing exports the values. Collectors
// built with a nil reg never collide with each other or with the
// global registry.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		detectDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "colorchecker_detect_duration_seconds",
				Help:    "Wall-clock duration of a single detect call.",
				Buckets: []float64{.005, .01, .025, .05, .075, .1, .25, .5, 1, 2.5},
			},
		),
		detectFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "colorchecker_detect_failures_total",
				Help: "Total detect calls by failure reason.",
			},
			[]string{"reason"},
		),
		detectConfidence: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "colorchecker_detect_confidence",
				Help:    "Distribution of the confidence score returned by detect.",
				Buckets: []float64{0, .1, .2, .3, .4, .5, .6, .7, .8, .9, 1.0},
			},
		),
	}
}

// Observe records one detect call's duration, confidence, and failure
// reason (including FailureNone, so pass-rate is derivable from the
// failure-reason counter alone). Safe to call on a nil Collector.
func (c *Collector) Observe(d time.Duration, out result.DetectionOutput) {
	if c == nil {
		return
	}
	c.detectDuration.Observe(d.Seconds())
	c.detectConfidence.Observe(float64(out.Confidence))
	c.detectFailuresTotal.WithLabelValues(string(out.Failure)).Inc()
}
