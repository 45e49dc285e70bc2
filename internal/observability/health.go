package observability

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// ReadyCheck is one named readiness condition, e.g. that the algorithm
// catalog is populated. Check returns nil when ready.
type ReadyCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// healthReport is the body of /healthz and /readyz.
type healthReport struct {
	Status  string            `json:"status"`
	Service string            `json:"service"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves liveness at /healthz. It always answers 200.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		writeHealth(rw, http.StatusOK, healthReport{Status: healthStatusOK, Service: defaultServiceName})
	})
}

// ReadyHandler serves readiness at /readyz. Every check runs and reports
// under its name; any failure yields 503 "unavailable".
func ReadyHandler(checks ...ReadyCheck) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, hr *http.Request) {
		report := healthReport{Status: healthStatusOK, Service: defaultServiceName}
		code := http.StatusOK

		if len(checks) > 0 {
			report.Checks = make(map[string]string, len(checks))
		}

		for _, rc := range checks {
			err := rc.Check(hr.Context())
			if err != nil {
				report.Checks[rc.Name] = err.Error()
				report.Status = healthStatusUnavailable
				code = http.StatusServiceUnavailable

				continue
			}

			report.Checks[rc.Name] = healthStatusOK
		}

		writeHealth(rw, code, report)
	})
}

func writeHealth(rw http.ResponseWriter, code int, report healthReport) {
	data, err := json.Marshal(report)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)

		return
	}

	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)

	_, _ = rw.Write(data)
}
