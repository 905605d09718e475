package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/normanking/mindlink/internal/llm"
)

// LLMMetricsResponse reports aggregate and per-provider LLM call metrics:
// counts, error rates, token totals, latency, and estimated spend.
type LLMMetricsResponse struct {
	Timestamp string                 `json:"timestamp"`
	Summary   map[string]interface{} `json:"summary"`
	Providers map[string]interface{} `json:"providers"`
}

// HandleLLMMetrics serves a snapshot of the metrics registry so operators
// can watch analysis call volume and cost without extra tooling.
// GET /api/metrics/llm
func HandleLLMMetrics(w http.ResponseWriter, r *http.Request) {
	response := LLMMetricsResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Summary:   llm.GetMetricsSummary(),
		Providers: llm.GetAllMetrics(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// HandleMetricsReset zeroes every provider's counters, typically after a
// deploy or when re-baselining cost estimates.
// POST /api/metrics/llm/reset
func HandleMetricsReset(w http.ResponseWriter, r *http.Request) {
	llm.ResetAllMetrics()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"message": "All LLM metrics have been reset",
	})
}

// RegisterMetricsRoutes mounts the metrics endpoints on the given mux.
func RegisterMetricsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/metrics/llm", HandleLLMMetrics)
	mux.HandleFunc("POST /api/metrics/llm/reset", HandleMetricsReset)
}
