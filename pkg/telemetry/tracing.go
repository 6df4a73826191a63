package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/polisai/passgen"

// StartGeneration opens a span around one generation call.
func StartGeneration(ctx context.Context, length, classes int) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, "passgen.generate",
		trace.WithAttributes(
			attribute.Int("passgen.length", length),
			attribute.Int("passgen.classes", classes),
		),
	)
}

// EndGeneration records the outcome on span and ends it. Only sizes and
// labels are attached; the password never is.
func EndGeneration(span trace.Span, m GenerationMetrics, err error) {
	if span == nil {
		return
	}
	defer span.End()

	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.String("passgen.outcome", m.Outcome))
	if err != nil {
		span.SetStatus(codes.Error, m.Outcome)
		return
	}
	span.SetAttributes(
		attribute.Int("passgen.alphabet_size", m.AlphabetSize),
		attribute.Float64("passgen.entropy_bits", m.Bits),
		attribute.String("passgen.strength", m.Strength),
	)
}
