package domain

import (
	"context"
	"time"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthDegraded  HealthStatus = "degraded"
	HealthUnhealthy HealthStatus = "unhealthy"
)

// Probe checks one dependency. nil means healthy; an error wrapping
// ErrDegraded means degraded; any other error means unhealthy.
type Probe func(ctx context.Context) error

// ProbeObserver is told about every finished probe.
type ProbeObserver interface {
	ObserveProbe(name string, status HealthStatus, elapsed time.Duration)
}

// DependencyHealth is the outcome of one probe.
type DependencyHealth struct {
	Status    HealthStatus `json:"status"`
	LatencyMs int64        `json:"latencyMs"`
	Error     string       `json:"error,omitempty"`
}

// AggregateHealth folds dependency results pessimistically: all healthy
// (or none registered) is healthy, any unhealthy is unhealthy, anything
// else is degraded.
func AggregateHealth(deps map[string]DependencyHealth) HealthStatus {
	allHealthy := true
	for _, d := range deps {
		switch d.Status {
		case HealthUnhealthy:
			return HealthUnhealthy
		case HealthHealthy:
		default:
			allHealthy = false
		}
	}
	if allHealthy {
		return HealthHealthy
	}
	return HealthDegraded
}

// AllHealthy reports whether every dependency is healthy.
func AllHealthy(deps map[string]DependencyHealth) bool {
	for _, d := range deps {
		if d.Status != HealthHealthy {
			return false
		}
	}
	return true
}

type MemoryStats struct {
	HeapUsedMB  uint64 `json:"heapUsed"`
	HeapTotalMB uint64 `json:"heapTotal"`
	StackMB     uint64 `json:"stack"`
	SysMB       uint64 `json:"sys"`
}

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status       HealthStatus                `json:"status"`
	Service      string                      `json:"service"`
	Version      string                      `json:"version"`
	Timestamp    time.Time                   `json:"timestamp"`
	Uptime       int64                       `json:"uptime"`
	Memory       MemoryStats                 `json:"memory"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
}

// ReadinessReport is the body of GET /health/ready.
type ReadinessReport struct {
	Status       HealthStatus                `json:"status"`
	Service      string                      `json:"service"`
	Timestamp    time.Time                   `json:"timestamp"`
	Ready        bool                        `json:"ready"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
}

// LivenessReport is the body of GET /health/live.
type LivenessReport struct {
	Status    HealthStatus `json:"status"`
	Service   string       `json:"service"`
	Timestamp time.Time    `json:"timestamp"`
}
