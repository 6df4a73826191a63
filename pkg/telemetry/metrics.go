package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OutcomeOK is the outcome attribute of a successful generation.
const OutcomeOK = "ok"

var (
	metricsOnce          sync.Once
	metricsInitErr       error
	generationCounter    metric.Int64Counter
	strengthCounter      metric.Int64Counter
	entropyBitsHistogram metric.Float64Histogram
	lengthHistogram      metric.Int64Histogram
)

// GenerationMetrics captures the fields needed to record one generation call.
// It never carries the password itself.
type GenerationMetrics struct {
	Outcome      string
	Classes      int
	Length       int
	AlphabetSize int
	Bits         float64
	Strength     string
}

// RecordGeneration emits counters and histograms describing a generation call.
func RecordGeneration(ctx context.Context, m GenerationMetrics) {
	if err := ensureMetrics(); err != nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("outcome", m.Outcome),
		attribute.Int("classes", m.Classes),
	}
	generationCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
	lengthHistogram.Record(ctx, int64(m.Length), metric.WithAttributes(attribute.String("outcome", m.Outcome)))

	if m.Outcome != OutcomeOK {
		return
	}

	entropyBitsHistogram.Record(ctx, m.Bits, metric.WithAttributes(attribute.Int("classes", m.Classes)))
	strengthCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("strength", m.Strength)))
}

func ensureMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.GetMeterProvider().Meter("passgen")

		generationCounter, metricsInitErr = meter.Int64Counter(
			"passgen.generations_total",
			metric.WithDescription("Password generations partitioned by outcome"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		strengthCounter, metricsInitErr = meter.Int64Counter(
			"passgen.strength_total",
			metric.WithDescription("Generated passwords partitioned by strength label"),
			metric.WithUnit("{count}"),
		)
		if metricsInitErr != nil {
			return
		}

		entropyBitsHistogram, metricsInitErr = meter.Float64Histogram(
			"passgen.entropy_bits",
			metric.WithDescription("Estimated entropy of generated passwords"),
			metric.WithUnit("bit"),
		)
		if metricsInitErr != nil {
			return
		}

		lengthHistogram, metricsInitErr = meter.Int64Histogram(
			"passgen.password_length",
			metric.WithDescription("Requested password length, including rejected requests"),
			metric.WithUnit("{char}"),
		)
	})

	return metricsInitErr
}
