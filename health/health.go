package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"sync"
	"time"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

const checkTimeout = 2 * time.Second

// Check is the outcome of one component check.
type Check struct {
	Name       string `json:"name"`
	Status     Status `json:"status"`
	Message    string `json:"message,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type Response struct {
	Status        Status  `json:"status"`
	Timestamp     string  `json:"timestamp"`
	Version       string  `json:"version,omitempty"`
	UptimeSeconds int64   `json:"uptime_seconds"`
	Checks        []Check `json:"checks,omitempty"`
}

// CheckFunc probes one dependency.
type CheckFunc func(ctx context.Context) error

// Handler serves the aggregated health of the registered checks.
type Handler struct {
	mu        sync.RWMutex
	checks    map[string]CheckFunc
	version   string
	startTime time.Time
}

func NewHandler(version string) *Handler {
	return &Handler{
		checks:    make(map[string]CheckFunc),
		version:   version,
		startTime: time.Now(),
	}
}

// Register adds a named check, replacing one with the same name.
func (h *Handler) Register(name string, fn CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = fn
}

// Run executes all checks in name order.
func (h *Handler) Run(ctx context.Context) Response {
	h.mu.RLock()
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	checks := make(map[string]CheckFunc, len(h.checks))
	for k, v := range h.checks {
		checks[k] = v
	}
	h.mu.RUnlock()
	sort.Strings(names)

	resp := Response{
		Status:        StatusHealthy,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		Version:       h.version,
		UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
	}
	for _, name := range names {
		check := runCheck(ctx, name, checks[name])
		if check.Status == StatusUnhealthy {
			resp.Status = StatusUnhealthy
		}
		resp.Checks = append(resp.Checks, check)
	}
	return resp
}

func runCheck(ctx context.Context, name string, fn CheckFunc) Check {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := fn(ctx)
	check := Check{Name: name, Status: StatusHealthy, DurationMs: time.Since(start).Milliseconds()}
	if err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
	}
	return check
}

// ServeHTTP answers 200 when every check passes and 503 otherwise.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := h.Run(r.Context())

	code := http.StatusOK
	if resp.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

// LivenessHandler always answers ok.
func LivenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
