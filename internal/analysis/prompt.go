// Package analysis orchestrates the EEG analysis pipeline: prompt
// construction, the LLM call, heuristic parsing of the reply, and the
// rule-based fallback when no provider is reachable.
package analysis

import (
	"fmt"
	"strings"

	"github.com/normanking/mindlink/internal/eeg"
)

// questionSystemPrompt sets the assistant persona for the question endpoint.
const questionSystemPrompt = "You are a helpful assistant for an EEG brain-computer interface app."

// BuildAnalysisPrompt renders summarized EEG signals into the analysis
// instruction sent to the LLM. The reply shape it asks for is what
// ParseResponse knows how to extract.
func BuildAnalysisPrompt(attention, meditation, blink eeg.Summary) string {
	var b strings.Builder

	b.WriteString("Analyze this EEG brainwave data collected over the last minute and provide insights:\n\n")

	fmt.Fprintf(&b, "Average Attention: %d%%\n", int(attention.Mean))
	fmt.Fprintf(&b, "Average Meditation: %d%%\n", int(meditation.Mean))
	fmt.Fprintf(&b, "Average Blink Rate: %d\n\n", int(blink.Mean))

	fmt.Fprintf(&b, "Attention Range: %d-%d%% (trend: %s)\n", int(attention.Min), int(attention.Max), attention.Trend)
	fmt.Fprintf(&b, "Meditation Range: %d-%d%% (trend: %s)\n\n", int(meditation.Min), int(meditation.Max), meditation.Trend)

	fmt.Fprintf(&b, "Number of data points: %d\n\n", attention.Count)

	b.WriteString(`Please provide:
1. Current mental state (choose ONE: Stressed, Relaxed, Happy, Sad, Focused, Tired, or Neutral)
2. Brief analysis (2-3 sentences explaining the brainwave patterns)
3. One actionable recommendation for the user
4. A stress level from 0 to 100

Keep the response concise, supportive, and helpful.`)

	return b.String()
}

// BuildQuestionPrompt renders a user question into the prompt for the
// question endpoint. The persona lives in questionSystemPrompt.
func BuildQuestionPrompt(question string) string {
	return fmt.Sprintf("User question: %s\n\nProvide a brief, friendly answer (2-3 sentences max).", strings.TrimSpace(question))
}
