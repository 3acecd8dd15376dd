package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/brandguard/brandguard/internal/domain"
)

// HealthChecker runs registered dependency probes and builds the health,
// readiness and liveness reports.
type HealthChecker struct {
	service string
	version string
	timeout time.Duration
	started time.Time
	logger  *slog.Logger

	mu       sync.RWMutex
	probes   map[string]domain.Probe
	observer domain.ProbeObserver
}

func NewHealthChecker(cfg domain.ServiceConfig, logger *slog.Logger) *HealthChecker {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = domain.DefaultProbeTimeout
	}
	return &HealthChecker{
		service: cfg.Name,
		version: cfg.Version,
		timeout: timeout,
		started: time.Now(),
		logger:  logger,
		probes:  make(map[string]domain.Probe),
	}
}

// Register adds or replaces the probe for name.
func (h *HealthChecker) Register(name string, probe domain.Probe) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.probes[name] = probe
}

// SetObserver receives every probe outcome, e.g. for metrics.
func (h *HealthChecker) SetObserver(o domain.ProbeObserver) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.observer = o
}

// CheckDependencies runs every probe concurrently. Each probe is raced
// against the checker timeout; a slow, failing or panicking probe only
// affects its own entry.
func (h *HealthChecker) CheckDependencies(ctx context.Context) map[string]domain.DependencyHealth {
	h.mu.RLock()
	probes := make(map[string]domain.Probe, len(h.probes))
	for name, p := range h.probes {
		probes[name] = p
	}
	observer := h.observer
	h.mu.RUnlock()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]domain.DependencyHealth, len(probes))
	)
	for name, probe := range probes {
		wg.Add(1)
		go func(name string, probe domain.Probe) {
			defer wg.Done()
			start := time.Now()
			dh := h.runProbe(ctx, name, probe)
			elapsed := time.Since(start)
			dh.LatencyMs = elapsed.Milliseconds()

			if observer != nil {
				observer.ObserveProbe(name, dh.Status, elapsed)
			}
			mu.Lock()
			results[name] = dh
			mu.Unlock()
		}(name, probe)
	}
	wg.Wait()
	return results
}

func (h *HealthChecker) runProbe(ctx context.Context, name string, probe domain.Probe) domain.DependencyHealth {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("probe panicked: %v", r)
			}
		}()
		done <- probe(ctx)
	}()

	var err error
	select {
	case err = <-done:
	case <-ctx.Done():
		err = fmt.Errorf("timeout after %s", h.timeout)
	}

	switch {
	case err == nil:
		return domain.DependencyHealth{Status: domain.HealthHealthy}
	case errors.Is(err, domain.ErrDegraded):
		return domain.DependencyHealth{Status: domain.HealthDegraded, Error: err.Error()}
	default:
		perr := &domain.DependencyProbeError{Dependency: name, Err: err}
		h.logger.Warn("dependency unhealthy", "error", perr)
		return domain.DependencyHealth{Status: domain.HealthUnhealthy, Error: err.Error()}
	}
}

// Health is the full report served at /health.
func (h *HealthChecker) Health(ctx context.Context) domain.HealthReport {
	deps := h.CheckDependencies(ctx)
	return domain.HealthReport{
		Status:       domain.AggregateHealth(deps),
		Service:      h.service,
		Version:      h.version,
		Timestamp:    time.Now().UTC(),
		Uptime:       int64(time.Since(h.started).Seconds()),
		Memory:       memoryStats(),
		Dependencies: deps,
	}
}

// Readiness is healthy only when every dependency is healthy.
func (h *HealthChecker) Readiness(ctx context.Context) domain.ReadinessReport {
	deps := h.CheckDependencies(ctx)
	ready := domain.AllHealthy(deps)
	status := domain.HealthUnhealthy
	if ready {
		status = domain.HealthHealthy
	}
	return domain.ReadinessReport{
		Status:       status,
		Service:      h.service,
		Timestamp:    time.Now().UTC(),
		Ready:        ready,
		Dependencies: deps,
	}
}

// Liveness never consults dependencies.
func (h *HealthChecker) Liveness() domain.LivenessReport {
	return domain.LivenessReport{
		Status:    domain.HealthHealthy,
		Service:   h.service,
		Timestamp: time.Now().UTC(),
	}
}

func (h *HealthChecker) Service() string { return h.service }

func memoryStats() domain.MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	const mb = 1024 * 1024
	return domain.MemoryStats{
		HeapUsedMB:  (m.HeapAlloc + mb/2) / mb,
		HeapTotalMB: (m.HeapSys + mb/2) / mb,
		StackMB:     (m.StackSys + mb/2) / mb,
		SysMB:       (m.Sys + mb/2) / mb,
	}
}
