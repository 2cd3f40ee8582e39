package lunchr

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
	scorer  Scorer
}

// WithLogger sets a logger.
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	eng, err := lunchr.New(&cfg, lunchr.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets event hooks. Unset callbacks default to no-ops.
//
// Example:
//
//	hooks := &lunchr.Hooks{
//	    OnEvict: func(p lunchr.PersonID, t lunchr.TableID) {
//	        log.Printf("person %d lost their seat at table %d", p, t)
//	    },
//	}
//	eng, err := lunchr.New(&cfg, lunchr.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithScorer sets a custom fit policy, overriding Config.Scorer.
//
// The scorer is responsible for enforcing Config.TableCapacity: the engine
// only commits moves the scorer reports as feasible.
func WithScorer(scorer Scorer) Option {
	return func(o *engineOptions) {
		o.scorer = scorer
	}
}
