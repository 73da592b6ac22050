package search

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilGraph indicates that a nil Graph was passed to an entry point.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrNegativeCost indicates that Graph.Cost reported a negative edge cost.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")

	// ErrBadMaxSettled indicates a non-positive WithMaxSettled limit.
	ErrBadMaxSettled = errors.New("search: MaxSettled must be positive")

	// ErrCanceled wraps the context error when the search context is done.
	ErrCanceled = errors.New("search: canceled")
)

// Cost is the set of numeric types usable as edge costs and weights.
type Cost interface {
	constraints.Integer | constraints.Float
}

// StopFunc is consulted after every popped frontier entry has been recorded.
// Returning true ends the search and reports key as the terminal key.
type StopFunc[K comparable, C Cost] func(key K, cost C, pm *PrecedentMap[K, C]) bool

// Options configures a search run.
//
// Logger     – receives Debug records about the run (nil = logger in Context).
// MaxSettled – stop after this many keys were settled (0 = unlimited).
// CheckCost  – report negative edge costs as ErrNegativeCost.
// Context    – checked for cancellation between pops.
type Options struct {
	Logger     *slog.Logger
	MaxSettled int
	CheckCost  bool
	Context    context.Context
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the defaults every entry point starts from:
// no logger, no settle limit, cost checking on, context.Background.
func DefaultOptions() Options {
	return Options{
		CheckCost: true,
		Context:   context.Background(),
	}
}

// WithLogger routes Debug records of the run to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxSettled stops the search once n keys have been settled. The search
// then reports no terminal key and no error. n must be positive.
func WithMaxSettled(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxSettled.Error())
		}
		o.MaxSettled = n
	}
}

// WithCostCheck toggles the negative edge cost check. With the check off,
// non-negative costs are a precondition and violating it yields
// unspecified, possibly non-shortest results.
func WithCostCheck(enabled bool) Option {
	return func(o *Options) {
		o.CheckCost = enabled
	}
}

// WithContext makes the run observe ctx for cancellation and, unless
// WithLogger is also given, log through the logger stored in ctx.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			ctx = context.Background()
		}
		o.Context = ctx
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = LoggerFromContext(cfg.Context)
	}

	return cfg
}
