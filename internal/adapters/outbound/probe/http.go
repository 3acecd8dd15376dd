// Package probe builds domain.Probe functions for external dependencies.
package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/brandguard/brandguard/internal/domain"
)

// HTTP returns a probe that GETs url. Any 2xx is healthy, 429 and 503 with a
// Retry-After header are degraded, everything else is unhealthy.
func HTTP(client *http.Client, url string) domain.Probe {
	if client == nil {
		client = http.DefaultClient
	}
	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("building request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

		switch {
		case resp.StatusCode >= 200 && resp.StatusCode < 300:
			return nil
		case (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusServiceUnavailable) &&
			resp.Header.Get("Retry-After") != "":
			return fmt.Errorf("%s returned %d: %w", url, resp.StatusCode, domain.ErrDegraded)
		default:
			return fmt.Errorf("%s returned %d", url, resp.StatusCode)
		}
	}
}

// Registrar is satisfied by application.HealthChecker.
type Registrar interface {
	Register(name string, probe domain.Probe)
}

// RegisterHTTP registers one HTTP probe per configured dependency, in name
// order, and returns the names registered.
func RegisterHTTP(r Registrar, client *http.Client, deps map[string]string) []string {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		r.Register(name, HTTP(client, deps[name]))
	}
	return names
}
