package nlu

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/worker"
)

// Service fronts the configured provider with rate limiting and the mock
// fallback. Analyze never fails: any provider error degrades to the
// documented mock result, mirroring the service's published behavior.
type Service struct {
	provider Provider // nil when the integration is disabled
	limiter  *worker.Limiter
	verbose  bool

	availOnce sync.Once
	available bool
}

// NewService creates an NLU service from configuration. A disabled or
// misconfigured provider yields a service that always serves mock results.
func NewService(cfg model.NLUConfig, limits model.RateLimitingConfig, verbose bool) *Service {
	provider, err := NewProvider(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize NLU provider: %v\n", err)
		provider = nil
	}

	return &Service{
		provider: provider,
		limiter:  worker.NewLimiter(limits.RequestsPerSecond, limits.BurstSize),
		verbose:  verbose,
	}
}

// Enabled reports whether a real provider is configured.
func (s *Service) Enabled() bool {
	return s.provider != nil
}

// IsAvailable reports whether the configured provider is reachable. This
// satisfies the tone analyzer's sentiment-backend capability check. The
// provider is probed at most once per process; remote providers pay a
// network round trip for the check, so the result is cached for the
// service's lifetime.
func (s *Service) IsAvailable(ctx context.Context) bool {
	if s.provider == nil {
		return false
	}
	s.availOnce.Do(func() {
		s.available = s.provider.IsAvailable(ctx)
	})
	return s.available
}

// Analyze runs the provider analysis, throttled per provider, falling back
// to the mock result on any failure.
func (s *Service) Analyze(ctx context.Context, text string) *Result {
	if s.provider == nil {
		return MockResult()
	}

	if err := s.limiter.Wait(ctx, s.provider.Name()); err != nil {
		return MockResult()
	}

	result, err := s.provider.Analyze(ctx, text)
	if err != nil {
		if s.verbose {
			fmt.Fprintf(os.Stderr, "Warning: NLU analysis failed, using mock result: %v\n", err)
		}
		return MockResult()
	}

	return result
}
