package lensing

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lensing/config"
	"github.com/katalvlaran/lensing/field"
	"github.com/katalvlaran/lensing/grid"
	"github.com/katalvlaran/lensing/metrics"
)

// Defaults applied by NewOperator.
const (
	DefaultMaxEvaluationGridSize = 1000
	DefaultHessianBuffer         = 0.01
	DefaultEvaluationPixelScale  = 0.05
)

// Options is the resolved configuration of an Operator.
type Options struct {
	Backend               DifferentialBackend
	MaxEvaluationGridSize int
	HessianBuffer         float64
	Logger                logr.Logger
	Metrics               *metrics.Recorder
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the finite-difference backend, a 1000-pixel cap on
// evaluation grids, a 0.01" Hessian step, a discarding logger and no metrics.
func DefaultOptions() Options {
	return Options{
		Backend:               FiniteDifference{},
		MaxEvaluationGridSize: DefaultMaxEvaluationGridSize,
		HessianBuffer:         DefaultHessianBuffer,
		Logger:                logr.Discard(),
	}
}

// WithBackend selects the differential backend.
func WithBackend(b DifferentialBackend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithMaxEvaluationGridSize caps both sides of every evaluation grid.
func WithMaxEvaluationGridSize(n int) Option {
	return func(o *Options) { o.MaxEvaluationGridSize = n }
}

// WithHessianBuffer sets the finite-difference step of the Hessian.
func WithHessianBuffer(b float64) Option {
	return func(o *Options) { o.HessianBuffer = b }
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics sets the metrics recorder; nil disables metrics.
func WithMetrics(r *metrics.Recorder) Option {
	return func(o *Options) { o.Metrics = r }
}

// OptionsFromConfig translates the grid and derivative settings of cfg.
// Returns ErrUnknownBackend for an unrecognised backend name.
func OptionsFromConfig(cfg config.Config) ([]Option, error) {
	b, err := BackendByName(cfg.Derivatives.Backend)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithBackend(b),
		WithMaxEvaluationGridSize(cfg.Grid.MaxEvaluationGridSize),
		WithHessianBuffer(cfg.Derivatives.HessianBuffer),
	}, nil
}

// Operator derives lensing quantities from a Deflector. It holds no mutable
// state and is safe for concurrent use when its Deflector is.
type Operator struct {
	deflector Deflector
	opts      Options
}

// NewOperator binds d to the resolved options.
// Returns ErrNilDeflector, ErrInvalidGridSize or ErrInvalidBuffer.
func NewOperator(d Deflector, opts ...Option) (*Operator, error) {
	if d == nil {
		return nil, ErrNilDeflector
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Backend == nil {
		o.Backend = FiniteDifference{}
	}
	if o.MaxEvaluationGridSize < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidGridSize, o.MaxEvaluationGridSize)
	}
	if !(o.HessianBuffer > 0) || math.IsInf(o.HessianBuffer, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidBuffer, o.HessianBuffer)
	}

	return &Operator{deflector: &metered{d: d, rec: o.Metrics}, opts: o}, nil
}

// Options returns the resolved options.
func (o *Operator) Options() Options {
	return o.opts
}

// Backend returns the selected differential backend.
func (o *Operator) Backend() DifferentialBackend {
	return o.opts.Backend
}

// SupportsAutoDiff reports whether the Newton tracer is available: the
// backend is AutoDiff and the deflector is a HyperDualDeflector.
func (o *Operator) SupportsAutoDiff() bool {
	if _, ok := o.opts.Backend.(AutoDiff); !ok {
		return false
	}
	_, ok := asCapability[HyperDualDeflector](o.deflector)

	return ok
}

// Deflections evaluates the deflector on g.
func (o *Operator) Deflections(g grid.Coordinates) (field.VectorYX, error) {
	return o.deflector.Deflections(g)
}

// Jacobian computes the lensing Jacobian on g with the selected backend.
func (o *Operator) Jacobian(g grid.Coordinates) (*Jacobian, error) {
	return o.opts.Backend.Jacobian(o.deflector, g)
}

// Hessian computes the deflection Hessian on g with the selected backend.
func (o *Operator) Hessian(g grid.Coordinates) (*Hessian, error) {
	return o.opts.Backend.Hessian(o.deflector, g, o.opts.HessianBuffer)
}

// jacobian returns jac when supplied, after checking it lines up with g.
func (o *Operator) jacobian(g grid.Coordinates, jac *Jacobian) (*Jacobian, error) {
	if jac == nil {
		return o.Jacobian(g)
	}
	if jac.Len() != g.Len() {
		return nil, fmt.Errorf("%w: jacobian %d, grid %d", ErrLengthMismatch, jac.Len(), g.Len())
	}

	return jac, nil
}

func (o *Operator) hessian(g grid.Coordinates, h *Hessian) (*Hessian, error) {
	if h == nil {
		return o.Hessian(g)
	}
	if h.Len() != g.Len() {
		return nil, fmt.Errorf("%w: hessian %d, grid %d", ErrLengthMismatch, h.Len(), g.Len())
	}

	return h, nil
}

// metered counts grid deflection evaluations.
type metered struct {
	d   Deflector
	rec *metrics.Recorder
}

func (m *metered) Deflections(g grid.Coordinates) (field.VectorYX, error) {
	m.rec.DeflectionsEvaluated(g.Len())
	return m.d.Deflections(g)
}

func (m *metered) Unwrap() Deflector {
	return m.d
}
