package llm

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/luisjosebv3773/Alcaravan-Health-sub000/internal/domain"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

// ResilienceConfig tunes the retry and circuit breaker policy around a summarizer.
type ResilienceConfig struct {
	Name string

	// MaxRetries is the number of retries after the first attempt.
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration

	// BreakerTimeout is how long the circuit stays open before a trial call.
	BreakerTimeout time.Duration
	// MinRequests and FailureRatio decide when the circuit trips.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultResilienceConfig returns the policy used by the API server.
func DefaultResilienceConfig() ResilienceConfig {
	return ResilienceConfig{
		Name:            "openai-summary",
		MaxRetries:      2,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
		BreakerTimeout:  60 * time.Second,
		MinRequests:     5,
		FailureRatio:    0.5,
	}
}

// ResilientSummarizer wraps a HealthSummarizer with retries and a circuit breaker.
// A nil inner summarizer always reports ErrSummarizerUnavailable.
type ResilientSummarizer struct {
	inner   HealthSummarizer
	breaker *gobreaker.CircuitBreaker[*domain.SummaryOutput]
	cfg     ResilienceConfig
}

// NewResilientSummarizer wraps inner with the given policy.
func NewResilientSummarizer(inner HealthSummarizer, cfg ResilienceConfig, log zerolog.Logger) *ResilientSummarizer {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	}

	return &ResilientSummarizer{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*domain.SummaryOutput](settings),
		cfg:     cfg,
	}
}

// Summarize calls the inner summarizer, retrying transient failures with
// exponential backoff. An open circuit fails fast with ErrSummarizerUnavailable.
func (r *ResilientSummarizer) Summarize(ctx context.Context, summaryCtx *domain.SummaryContext) (*domain.SummaryOutput, error) {
	if r == nil || r.inner == nil {
		return nil, ErrSummarizerUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.cfg.InitialInterval
	bo.MaxInterval = r.cfg.MaxInterval
	bo.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, r.cfg.MaxRetries), ctx)

	var output *domain.SummaryOutput
	operation := func() error {
		out, err := r.breaker.Execute(func() (*domain.SummaryOutput, error) {
			return r.inner.Summarize(ctx, summaryCtx)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrSummarizerUnavailable)
			}
			if errors.Is(err, ErrSummarizerUnavailable) || errors.Is(err, context.Canceled) {
				return backoff.Permanent(err)
			}
			return err
		}
		output = out
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return output, nil
}

// State reports the circuit breaker state.
func (r *ResilientSummarizer) State() gobreaker.State {
	return r.breaker.State()
}
