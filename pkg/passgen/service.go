// Package passgen is the entry point presentation layers use: it composes a
// password, estimates its strength and records telemetry in one call.
package passgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/polisai/passgen/pkg/composer"
	"github.com/polisai/passgen/pkg/domain"
	"github.com/polisai/passgen/pkg/strength"
	"github.com/polisai/passgen/pkg/telemetry"
)

// Result is a generated password together with its strength assessment.
type Result struct {
	Password     string                    `json:"password"`
	Length       int                       `json:"length"`
	AlphabetSize int                       `json:"alphabet_size"`
	Strength     domain.StrengthAssessment `json:"-"`
}

// Recorder receives the outcome of every generation call. The Prometheus
// batch metrics implement it.
type Recorder interface {
	RecordGenerated(assessment domain.StrengthAssessment)
	RecordError(code string)
}

// Service generates passwords. It is safe for concurrent use.
type Service struct {
	composer *composer.Composer
	logger   *slog.Logger
	recorder Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithComposer replaces the default composer.
func WithComposer(c *composer.Composer) Option {
	return func(s *Service) {
		if c != nil {
			s.composer = c
		}
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRecorder attaches an outcome recorder.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// NewService returns a Service using a crypto/rand backed composer.
func NewService(opts ...Option) *Service {
	s := &Service{
		composer: composer.New(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate composes one password for cfg and estimates its strength.
func (s *Service) Generate(ctx context.Context, cfg domain.GenerationConfig) (Result, error) {
	classes := len(cfg.SelectedClasses())
	ctx, span := telemetry.StartGeneration(ctx, cfg.Length, classes)

	m := telemetry.GenerationMetrics{Classes: classes, Length: cfg.Length}

	pw, err := s.composer.Compose(cfg)
	if err != nil {
		m.Outcome = domain.Code(err)
		telemetry.RecordGeneration(ctx, m)
		telemetry.EndGeneration(span, m, err)
		if s.recorder != nil {
			s.recorder.RecordError(m.Outcome)
		}
		s.logger.DebugContext(ctx, "Password generation rejected", "code", m.Outcome, "length", cfg.Length, "classes", classes)
		return Result{}, fmt.Errorf("generate password: %w", err)
	}

	assessment := strength.Estimate(pw.AlphabetSize, cfg.Length)

	m.Outcome = telemetry.OutcomeOK
	m.AlphabetSize = pw.AlphabetSize
	m.Bits = assessment.Bits
	m.Strength = assessment.Label.String()
	telemetry.RecordGeneration(ctx, m)
	telemetry.EndGeneration(span, m, nil)
	if s.recorder != nil {
		s.recorder.RecordGenerated(assessment)
	}

	s.logger.DebugContext(ctx, "Password generated",
		"length", cfg.Length,
		"classes", classes,
		"alphabet_size", pw.AlphabetSize,
		"bits", assessment.Bits,
		"strength", assessment.Label.String(),
	)

	return Result{
		Password:     pw.Password,
		Length:       pw.Len(),
		AlphabetSize: pw.AlphabetSize,
		Strength:     assessment,
	}, nil
}

// GenerateBatch returns count independent passwords for cfg. Counts below one
// are treated as one. It stops at the first error or when ctx is done.
func (s *Service) GenerateBatch(ctx context.Context, cfg domain.GenerationConfig, count int) ([]Result, error) {
	count = max(count, 1)

	results := make([]Result, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r, err := s.Generate(ctx, cfg)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}
