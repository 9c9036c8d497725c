package health

import (
	"context"
	"sort"
	"sync"
	"time"
)

const defaultTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

// Service runs the registered dependency checks.
type Service struct {
	Timeout time.Duration

	mu     sync.RWMutex
	checks map[string]Check
}

// NewService constructs a new health service with no checks registered.
func NewService() *Service {
	return &Service{Timeout: defaultTimeout, checks: map[string]Check{}}
}

// Register adds or replaces the check stored under name.
func (s *Service) Register(name string, check Check) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checks[name] = check
}

// Status runs every check and returns "ok" or the error text per dependency.
// ok is false when any check failed.
func (s *Service) Status(ctx context.Context) (map[string]string, bool) {
	s.mu.RLock()
	names := make([]string, 0, len(s.checks))
	for name := range s.checks {
		names = append(names, name)
	}
	checks := make(map[string]Check, len(s.checks))
	for k, v := range s.checks {
		checks[k] = v
	}
	s.mu.RUnlock()
	sort.Strings(names)

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	out := make(map[string]string, len(names))
	healthy := true
	for _, name := range names {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		err := checks[name](checkCtx)
		cancel()
		if err != nil {
			out[name] = err.Error()
			healthy = false
			continue
		}
		out[name] = "ok"
	}
	return out, healthy
}
