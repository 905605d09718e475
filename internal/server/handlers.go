package server

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/normanking/mindlink/internal/eeg"
)

// maxBodySize bounds inbound request bodies (1MB); a minute of EEG history
// is a few kilobytes.
const maxBodySize = 1 * 1024 * 1024

// handleHome reports service health and the active AI provider.
// GET /
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HomeResponse{
		Status:     "ok",
		Service:    "MindLink EEG Analysis Server",
		Version:    s.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		AIProvider: s.engine.ProviderName(),
	})
}

// handleAnalyze runs the analysis pipeline over one minute of EEG history.
// POST /api/analyze
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var reading eeg.Reading
	if err := decodeBody(w, r, &reading); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	// Empty series are valid input; the rule-based path handles them.
	result := s.engine.Analyze(r.Context(), reading)

	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Success:        true,
		MentalState:    string(result.State),
		Analysis:       result.Analysis,
		Recommendation: result.Recommendation,
		StressLevel:    result.StressLevel,
	})
}

// handleQuestion answers a free-text user question.
// POST /api/question
func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuestionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "question cannot be empty")
		return
	}

	answer := s.engine.Answer(r.Context(), req.Question)

	writeJSON(w, http.StatusOK, QuestionResponse{
		Success: true,
		Answer:  answer,
	})
}

// decodeBody decodes the JSON request body into v with a size limit.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: message})
}
