package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mrterry/lunchr/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// one that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	*NopMetrics

	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	decisions        *prometheus.CounterVec
	decisionDuration prometheus.Histogram
	moves            *prometheus.CounterVec
	evictions        *prometheus.CounterVec
	occupancy        *prometheus.GaugeVec
	rounds           prometheus.Counter
	roundEvaluated   prometheus.Histogram
	roundMoves       prometheus.Histogram
	roundDuration    prometheus.Histogram
	settles          *prometheus.CounterVec
	settleRounds     prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "lunchr" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "lunchr"
	}

	return &PrometheusCollector{NopMetrics: NewNop(), reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.decisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "decision",
			Name:      "total",
			Help:      "Total seating decisions by chosen action and improvement.",
		}, []string{"action", "improved"})

		p.decisionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "decision",
			Name:      "duration_seconds",
			Help:      "Time spent evaluating one seating decision.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10), // 1µs .. ~0.26s
		})

		p.moves = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "moves_total",
			Help:      "Committed moves by destination table.",
		}, []string{"table"})

		p.evictions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "evictions_total",
			Help:      "Occupants evicted by table.",
		}, []string{"table"})

		p.occupancy = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "membership",
			Name:      "occupancy",
			Help:      "Current number of persons seated at each table.",
		}, []string{"table"})

		p.rounds = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "round",
			Name:      "total",
			Help:      "Total rounds executed.",
		})

		p.roundEvaluated = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "round",
			Name:      "evaluated",
			Help:      "Decisions per round, including re-queued evictees.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		})

		p.roundMoves = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "round",
			Name:      "moves",
			Help:      "Committed moves per round.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
		})

		p.roundDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "round",
			Name:      "duration_seconds",
			Help:      "Round duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		})

		p.settles = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "settle",
			Name:      "total",
			Help:      "Settle runs by stop reason.",
		}, []string{"reason"})

		p.settleRounds = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "settle",
			Name:      "rounds",
			Help:      "Rounds needed per settle run.",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21, 34, 55, 100},
		})

		p.reg.MustRegister(p.decisions)
		p.reg.MustRegister(p.decisionDuration)
		p.reg.MustRegister(p.moves)
		p.reg.MustRegister(p.evictions)
		p.reg.MustRegister(p.occupancy)
		p.reg.MustRegister(p.rounds)
		p.reg.MustRegister(p.roundEvaluated)
		p.reg.MustRegister(p.roundMoves)
		p.reg.MustRegister(p.roundDuration)
		p.reg.MustRegister(p.settles)
		p.reg.MustRegister(p.settleRounds)
	})
}

// RecordDecision counts a decision and observes its latency.
func (p *PrometheusCollector) RecordDecision(kind string, improved bool, duration float64) {
	p.ensureRegistered()
	p.decisions.WithLabelValues(kind, strconv.FormatBool(improved)).Inc()
	p.decisionDuration.Observe(duration)
}

// RecordMove counts a committed move into table.
func (p *PrometheusCollector) RecordMove(table types.TableID) {
	p.ensureRegistered()
	p.moves.WithLabelValues(tableLabel(table)).Inc()
}

// RecordEviction counts an eviction from table.
func (p *PrometheusCollector) RecordEviction(table types.TableID) {
	p.ensureRegistered()
	p.evictions.WithLabelValues(tableLabel(table)).Inc()
}

// SetOccupancy sets the occupancy gauge of table.
func (p *PrometheusCollector) SetOccupancy(table types.TableID, count int) {
	p.ensureRegistered()
	p.occupancy.WithLabelValues(tableLabel(table)).Set(float64(count))
}

// RecordRound records a completed round.
func (p *PrometheusCollector) RecordRound(evaluated, moves int, duration float64) {
	p.ensureRegistered()
	p.rounds.Inc()
	p.roundEvaluated.Observe(float64(evaluated))
	p.roundMoves.Observe(float64(moves))
	p.roundDuration.Observe(duration)
}

// RecordSettle records the end of a settle run.
func (p *PrometheusCollector) RecordSettle(reason string, rounds int) {
	p.ensureRegistered()
	p.settles.WithLabelValues(reason).Inc()
	p.settleRounds.Observe(float64(rounds))
}

func tableLabel(table types.TableID) string {
	return strconv.FormatUint(uint64(table), 10)
}
