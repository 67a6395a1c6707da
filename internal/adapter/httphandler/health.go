package httphandler

import (
	"context"
	"net/http"
	"time"
)

const checkTimeout = 2 * time.Second

// A HealthCheck probes one backing component.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// GET v1/health (200 OK)
//
// Reports per-component status. The endpoint itself stays 200 when a
// component is down so probes can tell "degraded" from "dead".
func RegisterHealth(mux *http.ServeMux, checks []HealthCheck) {
	mux.HandleFunc("GET /v1/health", func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		components := make(map[string]string, len(checks))

		for _, c := range checks {
			components[c.Name] = checkStatus(r.Context(), c)
			if components[c.Name] != "ok" {
				status = "degraded"
			}
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"status":     status,
			"components": components,
		})
	})
}

func checkStatus(ctx context.Context, c HealthCheck) string {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	if err := c.Check(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}
