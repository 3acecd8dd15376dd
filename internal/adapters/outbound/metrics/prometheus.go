// Package metrics exports probe and validation counters in Prometheus format.
package metrics

import (
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brandguard/brandguard/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OtherCategory labels validations whose category matches no known trigger.
const OtherCategory = "other"

// Recorder owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Recorder struct {
	triggers    []string
	registry    *prometheus.Registry
	dependency  *prometheus.GaugeVec
	probeTime   *prometheus.HistogramVec
	validations *prometheus.CounterVec
}

// New creates a Recorder with its collectors registered. Validation counts
// are labelled by the triggers a category matches, never by the raw
// category, so client input cannot mint new series.
func New(triggers ...string) *Recorder {
	known := make([]string, 0, len(triggers))
	seen := make(map[string]bool, len(triggers))
	for _, t := range triggers {
		if t != "" && !seen[t] {
			seen[t] = true
			known = append(known, t)
		}
	}
	sort.Strings(known)

	r := &Recorder{
		triggers: known,
		registry: prometheus.NewRegistry(),
		dependency: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "brandguard_dependency_up",
			Help: "1 healthy, 0.5 degraded, 0 unhealthy, per dependency.",
		}, []string{"dependency"}),
		probeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "brandguard_dependency_probe_seconds",
			Help:    "Dependency probe latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"dependency"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "brandguard_validations_total",
			Help: "Assets evaluated, by matched rule triggers and outcome.",
		}, []string{"category", "valid"}),
	}
	r.registry.MustRegister(r.dependency, r.probeTime, r.validations)
	return r
}

// ObserveProbe implements domain.ProbeObserver.
func (r *Recorder) ObserveProbe(name string, status domain.HealthStatus, elapsed time.Duration) {
	r.dependency.WithLabelValues(name).Set(statusValue(status))
	r.probeTime.WithLabelValues(name).Observe(elapsed.Seconds())
}

// ObserveValidation implements domain.ValidationObserver.
func (r *Recorder) ObserveValidation(category string, result *domain.ValidationResult) {
	r.validations.WithLabelValues(r.categoryLabel(category), strconv.FormatBool(result.Valid)).Inc()
}

// categoryLabel joins the matched triggers with "+" in sorted order.
func (r *Recorder) categoryLabel(category string) string {
	var matched []string
	for _, t := range r.triggers {
		if strings.Contains(category, t) {
			matched = append(matched, t)
		}
	}
	if len(matched) == 0 {
		return OtherCategory
	}
	return strings.Join(matched, "+")
}

// Registry exposes the underlying registry for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Handler serves the registry at /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func statusValue(s domain.HealthStatus) float64 {
	switch s {
	case domain.HealthHealthy:
		return 1
	case domain.HealthDegraded:
		return 0.5
	default:
		return 0
	}
}
