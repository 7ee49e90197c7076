package service

import (
	"context"
	"errors"

	"github.com/fadilmartias/ai-interviewer/internal/config"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

// The breakers never retry. They only stop calling a provider that has
// failed MaxFailures times in a row until OpenTimeout has passed.

type BreakerChatService struct {
	next ChatServiceInterface
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerChatService(name string, next ChatServiceInterface, cfg *config.BreakerConfig, logger *zap.Logger) ChatServiceInterface {
	if !cfg.Enabled {
		return next
	}
	return &BreakerChatService{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[string](breakerSettings(name, cfg, logger)),
	}
}

func (s *BreakerChatService) Complete(ctx context.Context, req ChatRequest) (string, error) {
	return s.cb.Execute(func() (string, error) {
		return s.next.Complete(ctx, req)
	})
}

type BreakerTranscriptionService struct {
	next TranscriptionServiceInterface
	cb   *gobreaker.CircuitBreaker[string]
}

func NewBreakerTranscriptionService(name string, next TranscriptionServiceInterface, cfg *config.BreakerConfig, logger *zap.Logger) TranscriptionServiceInterface {
	if !cfg.Enabled {
		return next
	}
	return &BreakerTranscriptionService{
		next: next,
		cb:   gobreaker.NewCircuitBreaker[string](breakerSettings(name, cfg, logger)),
	}
}

func (s *BreakerTranscriptionService) Transcribe(ctx context.Context, audioPath string) (string, error) {
	return s.cb.Execute(func() (string, error) {
		return s.next.Transcribe(ctx, audioPath)
	})
}

func breakerSettings(name string, cfg *config.BreakerConfig, logger *zap.Logger) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	}
}
