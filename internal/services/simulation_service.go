package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"rentorbuy/internal/cache"
	apperrors "rentorbuy/internal/errors"
	"rentorbuy/internal/logger"
	"rentorbuy/internal/simulation"
)

// simulationService runs the engine and caches serialized results.
type simulationService struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewSimulationService creates a new SimulationServicer. A nil cache disables caching.
func NewSimulationService(c cache.Cache, ttl time.Duration) SimulationServicer {
	return &simulationService{cache: c, ttl: ttl}
}

// Simulate runs a full rent-vs-buy projection.
// Invalid input returns ErrInvalidInput carrying the rejected fields.
func (s *simulationService) Simulate(ctx context.Context, input simulation.Input) (*simulation.Output, error) {
	var cached simulation.Output
	key, hit := s.lookup(ctx, "simulate", input, &cached)
	if hit {
		return &cached, nil
	}

	result, err := simulation.Simulate(input)
	if err != nil {
		return nil, toAppError(err)
	}

	s.store(ctx, key, result)
	return result, nil
}

// Schedule returns the monthly amortization of a mortgage.
func (s *simulationService) Schedule(ctx context.Context, loan simulation.LoanInput) (*simulation.Schedule, error) {
	var cached simulation.Schedule
	key, hit := s.lookup(ctx, "schedule", loan, &cached)
	if hit {
		return &cached, nil
	}

	result, err := simulation.BuildSchedule(loan)
	if err != nil {
		return nil, toAppError(err)
	}

	s.store(ctx, key, result)
	return &result, nil
}

// lookup decodes the cached value for v into dst. The returned key is empty
// when caching is unavailable for v.
func (s *simulationService) lookup(ctx context.Context, namespace string, v, dst any) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	key, err := cache.Key(namespace, v)
	if err != nil {
		// Non-finite inputs cannot be encoded; validation rejects them next.
		return "", false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return key, false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logger.FromContext(ctx).Warnw("discarding unreadable cache entry", "key", key, "error", err)
		return key, false
	}
	logger.FromContext(ctx).Debugw("cache hit", "key", key)
	return key, true
}

func (s *simulationService) store(ctx context.Context, key string, v any) {
	if s.cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(ctx).Warnw("failed to encode result for cache", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.FromContext(ctx).Warnw("failed to write cache entry", "key", key, "error", err)
	}
}

func toAppError(err error) error {
	var invalid *simulation.InvalidInputError
	if errors.As(err, &invalid) {
		return apperrors.WithDetails(apperrors.ErrInvalidInput, invalid.Error(), invalid.Fields, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
