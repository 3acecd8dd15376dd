package domain_test

import (
	"testing"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAggregateHealth(t *testing.T) {
	h := domain.DependencyHealth{Status: domain.HealthHealthy}
	d := domain.DependencyHealth{Status: domain.HealthDegraded}
	u := domain.DependencyHealth{Status: domain.HealthUnhealthy}

	tests := []struct {
		name string
		deps map[string]domain.DependencyHealth
		want domain.HealthStatus
	}{
		{"none", nil, domain.HealthHealthy},
		{"all healthy", map[string]domain.DependencyHealth{"a": h, "b": h}, domain.HealthHealthy},
		{"one degraded", map[string]domain.DependencyHealth{"a": h, "b": d}, domain.HealthDegraded},
		{"unhealthy wins", map[string]domain.DependencyHealth{"a": d, "b": u}, domain.HealthUnhealthy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.AggregateHealth(tt.deps))
		})
	}
}

func TestAllHealthy(t *testing.T) {
	assert.True(t, domain.AllHealthy(nil))
	assert.False(t, domain.AllHealthy(map[string]domain.DependencyHealth{
		"a": {Status: domain.HealthDegraded},
	}))
}
