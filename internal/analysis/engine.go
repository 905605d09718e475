package analysis

import (
	"context"
	"strings"
	"time"

	"github.com/normanking/mindlink/internal/eeg"
	"github.com/normanking/mindlink/internal/llm"
	"github.com/normanking/mindlink/internal/logging"
)

// defaultCallTimeout bounds one LLM round trip so a slow provider cannot
// hold a client request indefinitely.
const defaultCallTimeout = 30 * time.Second

// Engine runs the analysis pipeline. When the provider is absent,
// unconfigured, or failing, every operation degrades to the network-free
// rule-based path; an engine never returns an error to its caller.
type Engine struct {
	provider llm.Provider
	timeout  time.Duration
}

// NewEngine creates an analysis engine. provider may be nil, which forces
// the rule-based path for every request.
func NewEngine(provider llm.Provider, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Engine{provider: provider, timeout: timeout}
}

// ProviderName reports which AI backend serves requests, or "offline" when
// analysis is rule-based only.
func (e *Engine) ProviderName() string {
	if !e.aiAvailable() {
		return "offline"
	}
	return e.provider.Name()
}

func (e *Engine) aiAvailable() bool {
	return e.provider != nil && e.provider.Available()
}

// Analyze produces a mental-state result for the reading. The AI path is
// used when a provider is configured; any provider failure falls back to
// the rule-based classifier.
func (e *Engine) Analyze(ctx context.Context, reading eeg.Reading) eeg.Result {
	log := logging.FromContext(ctx)
	attention, meditation, blink := eeg.SummarizeReading(reading)

	if !e.aiAvailable() {
		log.Debug().Msg("no AI provider configured, using rule-based analysis")
		return eeg.Classify(attention, meditation, blink)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Chat(callCtx, &llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "user", Content: BuildAnalysisPrompt(attention, meditation, blink)},
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("provider", e.provider.Name()).Msg("AI analysis failed, falling back to rule-based")
		return eeg.Classify(attention, meditation, blink)
	}

	return ParseResponse(resp.Content, attention, meditation)
}

// Answer responds to a free-text user question. Without a configured
// provider, or on any provider failure, a canned offline answer is returned
// and no outbound call is attempted.
func (e *Engine) Answer(ctx context.Context, question string) string {
	log := logging.FromContext(ctx)

	if !e.aiAvailable() {
		return offlineAnswer(question)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.provider.Chat(callCtx, &llm.ChatRequest{
		SystemPrompt: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: BuildQuestionPrompt(question)},
		},
	})
	if err != nil {
		log.Warn().Err(err).Str("provider", e.provider.Name()).Msg("AI answer failed, using offline answer")
		return offlineAnswer(question)
	}

	return strings.TrimSpace(resp.Content)
}

// offlineAnswer serves the question endpoint without network access,
// keyed on the topics the headset app users actually ask about.
func offlineAnswer(question string) string {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "how") && (strings.Contains(q, "work") || strings.Contains(q, "use")):
		return "This app reads your EEG brainwaves (attention, meditation, blink) and uses them to control devices. Focus or relax to trigger different actions!"
	case strings.Contains(q, "attention"):
		return "Attention measures your mental focus level. Higher values (60-100%) mean you're concentrating well. Try focusing on a single task to increase it."
	case strings.Contains(q, "meditation"):
		return "Meditation measures your relaxation level. Higher values (60-100%) mean you're calm. Try deep breathing or closing your eyes to increase it."
	case strings.Contains(q, "blink"):
		return "Blink strength measures eye muscle activity. Strong blinks can be used as a control signal. Try blinking deliberately to test it."
	case strings.Contains(q, "stress"):
		return "Stress is detected through erratic brainwave patterns. Reduce stress with: deep breathing, regular breaks, meditation, or light exercise."
	case isGreeting(q):
		return "Hello! I'm your EEG assistant. I can help you understand your brainwaves and how to use this app. What would you like to know?"
	default:
		return "I'm working in offline mode. I can help with basic questions about EEG, attention, meditation, blinks, and app usage. What would you like to know?"
	}
}

func isGreeting(q string) bool {
	if strings.Contains(q, "hello") || strings.Contains(q, "hey") {
		return true
	}
	for _, word := range strings.Fields(q) {
		if strings.Trim(word, "!.,?") == "hi" {
			return true
		}
	}
	return false
}
