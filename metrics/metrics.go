package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric name.
const Namespace = "lensing"

// Newton point outcomes.
const (
	OutcomeKept      = "kept"
	OutcomeDiscarded = "discarded"
)

// Recorder owns the lensing collectors.
type Recorder struct {
	deflections    prometheus.Counter
	gridBuilds     prometheus.Counter
	gridClamps     prometheus.Counter
	gridSide       prometheus.Histogram
	criticalCurves *prometheus.CounterVec
	newtonPoints   *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg.
// Returns the registration error if any collector is already registered.
func NewRecorder(reg prometheus.Registerer) (rec *Recorder, err error) {
	defer func() {
		// promauto panics on duplicate registration.
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				rec, err = nil, e
				return
			}
			panic(r)
		}
	}()
	f := promauto.With(reg)

	return &Recorder{
		deflections: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "deflection_points_total",
			Help:      "Coordinates at which deflection angles were evaluated",
		}),
		gridBuilds: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaluation_grid_builds_total",
			Help:      "Evaluation grids built for critical-curve work",
		}),
		gridClamps: f.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "evaluation_grid_clamps_total",
			Help:      "Evaluation grids whose shape was clamped to the configured maximum",
		}),
		gridSide: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "evaluation_grid_side_pixels",
			Help:      "Longest side of each evaluation grid built",
			Buckets:   prometheus.ExponentialBuckets(16, 2, 8), // 16 to 2048
		}),
		criticalCurves: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "critical_curves_total",
			Help:      "Critical curves found by marching squares",
		}, []string{"kind"}),
		newtonPoints: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "newton_points_total",
			Help:      "Newton tracer seed points by outcome",
		}, []string{"outcome"}),
	}, nil
}

// DeflectionsEvaluated adds n evaluated coordinates.
func (r *Recorder) DeflectionsEvaluated(n int) {
	if r == nil {
		return
	}
	r.deflections.Add(float64(n))
}

// EvaluationGridBuilt records one evaluation grid of the given shape.
func (r *Recorder) EvaluationGridBuilt(rows, cols int, clamped bool) {
	if r == nil {
		return
	}
	r.gridBuilds.Inc()
	r.gridSide.Observe(float64(max(rows, cols)))
	if clamped {
		r.gridClamps.Inc()
	}
}

// CriticalCurvesFound adds n curves of kind ("tangential" or "radial").
func (r *Recorder) CriticalCurvesFound(kind string, n int) {
	if r == nil {
		return
	}
	r.criticalCurves.WithLabelValues(kind).Add(float64(n))
}

// NewtonPoints records how many traced points survived the residual filter.
func (r *Recorder) NewtonPoints(kept, discarded int) {
	if r == nil {
		return
	}
	r.newtonPoints.WithLabelValues(OutcomeKept).Add(float64(kept))
	r.newtonPoints.WithLabelValues(OutcomeDiscarded).Add(float64(discarded))
}
