// Package observe provides OpenTelemetry metrics and tracing for champion-grid,
// plus a trace-aware slog logger.
//
// A Prometheus exporter bridge is installed by [InitProvider] so metrics can be
// scraped from /metrics. Tests should build their own [Metrics] with
// [NewMetrics] and a ManualReader-backed provider.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope for all champion-grid metrics
const meterName = "github.com/KirkDiggler/champion-grid"

// Metric names
const (
	MetricGenerationAttempts = "champion_grid.generation.attempts"
	MetricGenerationDuration = "champion_grid.generation.duration"
	MetricGenerationOutcomes = "champion_grid.generation.outcomes"
	MetricGamesCreated       = "champion_grid.games.created"
	MetricGuesses            = "champion_grid.guesses"
)

// Metrics holds the metric instruments. All fields are safe for concurrent use.
type Metrics struct {
	// GenerationAttempts records how many attempts each generation run needed
	GenerationAttempts metric.Int64Histogram

	// GenerationDuration records wall time per generation run
	GenerationDuration metric.Float64Histogram

	// GenerationOutcomes counts runs by attribute.String("outcome", ...)
	GenerationOutcomes metric.Int64Counter

	// GamesCreated counts games by attribute.String("kind", "standard"|"daily")
	GamesCreated metric.Int64Counter

	// Guesses counts guesses by attribute.String("verdict", "correct"|"incorrect")
	Guesses metric.Int64Counter
}

var attemptBuckets = []float64{1, 2, 5, 10, 25, 50, 75, 100}

var latencyBuckets = []float64{
	0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
}

// NewMetrics creates every instrument from the given provider
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.GenerationAttempts, err = m.Int64Histogram(MetricGenerationAttempts,
		metric.WithDescription("Attempts needed per grid generation run."),
		metric.WithExplicitBucketBoundaries(attemptBuckets...),
	); err != nil {
		return nil, err
	}
	if met.GenerationDuration, err = m.Float64Histogram(MetricGenerationDuration,
		metric.WithDescription("Latency of grid generation."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.GenerationOutcomes, err = m.Int64Counter(MetricGenerationOutcomes,
		metric.WithDescription("Grid generation runs by outcome."),
	); err != nil {
		return nil, err
	}
	if met.GamesCreated, err = m.Int64Counter(MetricGamesCreated,
		metric.WithDescription("Games created by kind."),
	); err != nil {
		return nil, err
	}
	if met.Guesses, err = m.Int64Counter(MetricGuesses,
		metric.WithDescription("Guesses submitted by verdict."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level instance built from the global
// meter provider. Call it after [InitProvider].
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordGeneration records one finished generation run
func (m *Metrics) RecordGeneration(ctx context.Context, outcome string, attempts int, seconds float64) {
	m.GenerationAttempts.Record(ctx, int64(attempts))
	m.GenerationDuration.Record(ctx, seconds)
	m.GenerationOutcomes.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)
}

// RecordGameCreated counts a new game
func (m *Metrics) RecordGameCreated(ctx context.Context, kind string) {
	m.GamesCreated.Add(ctx, 1,
		metric.WithAttributes(attribute.String("kind", kind)),
	)
}

// RecordGuess counts a guess by verdict
func (m *Metrics) RecordGuess(ctx context.Context, correct bool) {
	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	m.Guesses.Add(ctx, 1,
		metric.WithAttributes(attribute.String("verdict", verdict)),
	)
}
