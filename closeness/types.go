package closeness

import (
	"errors"

	"github.com/katalvlaran/closetree/prim_kruskal"
	"github.com/rs/zerolog"
)

// Sentinel errors returned by the closeness package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("closeness: graph is nil")

	// ErrUngrounded indicates the frontier ran dry before every vertex was
	// settled: the graph is not connected to the root.
	ErrUngrounded = errors.New("closeness: graph is not fully reachable from root")

	// ErrUnsettled indicates a label was read before its vertex was settled.
	ErrUnsettled = errors.New("closeness: vertex not settled")

	// ErrAlreadySettled indicates an attempt to settle a vertex twice.
	ErrAlreadySettled = errors.New("closeness: vertex already settled")

	// ErrLabelMismatch indicates labels and graph disagree on the vertex count.
	ErrLabelMismatch = errors.New("closeness: labels do not match graph")

	// ErrWeightOverflow indicates a closeness value or a closeness-tree total
	// exceeded math.MaxInt64.
	ErrWeightOverflow = errors.New("closeness: path cost overflows int64")
)

// SettleFunc observes each settled vertex: v, its predecessor and its closeness.
type SettleFunc func(v, from int, cost int64)

// Options configures Label, MinTree, MaxTree and Solve.
//
// Logger   – receives a trace event per settled vertex and debug events per phase.
// OnSettle – optional hook called after each vertex is settled by Label.
// Method   – spanning-tree method for the closeness trees (prim_kruskal.MethodPrim by default).
type Options struct {
	Logger   zerolog.Logger
	OnSettle SettleFunc
	Method   string
}

// Option represents a functional option.
type Option func(*Options)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnSettle installs a hook called after each vertex is settled.
func WithOnSettle(fn SettleFunc) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// WithMethod selects the spanning-tree method (prim_kruskal.MethodPrim or prim_kruskal.MethodKruskal).
// Both give the same totals; Prim is the reference expansion.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// DefaultOptions returns a silent configuration using Prim.
func DefaultOptions() Options {
	return Options{
		Logger: zerolog.Nop(),
		Method: prim_kruskal.MethodPrim,
	}
}

func newOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
