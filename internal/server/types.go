// Package server provides the MindLink HTTP API consumed by the mobile
// client: health info, EEG analysis, assistant questions, and LLM metrics.
package server

// HomeResponse is returned by GET /.
type HomeResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Version    string `json:"version"`
	Timestamp  string `json:"timestamp"`
	AIProvider string `json:"ai_provider"`
}

// AnalyzeResponse is returned by POST /api/analyze on success.
type AnalyzeResponse struct {
	Success        bool   `json:"success"`
	MentalState    string `json:"mentalState"`
	Analysis       string `json:"analysis"`
	Recommendation string `json:"recommendation"`
	StressLevel    int    `json:"stressLevel"`
}

// QuestionRequest is the body of POST /api/question.
type QuestionRequest struct {
	Question string `json:"question"`
}

// QuestionResponse is returned by POST /api/question on success.
type QuestionResponse struct {
	Success bool   `json:"success"`
	Answer  string `json:"answer"`
}

// ErrorResponse is the error shape shared by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
