package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/anthropometry"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/schedule"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "alcaravan-api/service"

// MetricsService runs the anthropometric engine.
type MetricsService interface {
	// Calculate normalizes the request and computes metrics without persisting them.
	Calculate(ctx context.Context, req *domain.CalculateMetricsRequest) (*domain.MetricsResponse, error)
	// Evaluate runs the engine on already-normalized inputs.
	Evaluate(ctx context.Context, in anthropometry.Inputs) anthropometry.HealthMetrics
}

type metricsService struct {
	clock        schedule.Clock
	computations metric.Int64Counter
}

// NewMetricsService creates a new MetricsService. A nil clock uses time.Now.
func NewMetricsService(clock schedule.Clock) MetricsService {
	if clock == nil {
		clock = time.Now
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"anthropometry.computations",
		metric.WithDescription("Number of anthropometric metric computations"),
		metric.WithUnit("{computation}"),
	)
	if err != nil {
		counter = noop.Int64Counter{}
	}

	return &metricsService{clock: clock, computations: counter}
}

func (s *metricsService) Calculate(ctx context.Context, req *domain.CalculateMetricsRequest) (*domain.MetricsResponse, error) {
	gender, ok := anthropometry.ParseGender(req.Gender)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownGender, req.Gender)
	}

	age := req.Age
	if age == 0 && req.BirthDate != "" {
		age = anthropometry.AgeAt(req.BirthDate, s.clock())
	}

	m := s.Evaluate(ctx, anthropometry.Inputs{
		Weight: req.Weight,
		Height: req.Height,
		Waist:  req.Waist,
		Hip:    req.Hip,
		Neck:   req.Neck,
		Age:    age,
		Gender: gender,
	})

	return &domain.MetricsResponse{
		Gender:         gender,
		Age:            age,
		Metrics:        m,
		Classification: anthropometry.Classify(m, gender),
	}, nil
}

func (s *metricsService) Evaluate(ctx context.Context, in anthropometry.Inputs) anthropometry.HealthMetrics {
	tracer := otel.Tracer(instrumentationName)
	ctx, span := tracer.Start(ctx, "MetricsService.Evaluate",
		trace.WithAttributes(
			attribute.String("metrics.gender", string(in.Gender)),
			attribute.Int("metrics.age", in.Age),
		),
	)
	defer span.End()

	if inputJSON, err := json.Marshal(in); err == nil {
		span.SetAttributes(attribute.String("metrics.input", string(inputJSON)))
	}

	m := anthropometry.Calculate(in)

	if outputJSON, err := json.Marshal(m); err == nil {
		span.SetAttributes(attribute.String("metrics.output", string(outputJSON)))
	}
	s.computations.Add(ctx, 1, metric.WithAttributes(attribute.String("gender", string(in.Gender))))

	return m
}
