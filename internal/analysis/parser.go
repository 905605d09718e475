package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/normanking/mindlink/internal/eeg"
)

// stateKeywords maps reply keywords to mental states, in match priority
// order. The first keyword found in the lowercased reply wins.
var stateKeywords = []struct {
	keywords []string
	state    eeg.MentalState
}{
	// Bare "stress" is deliberately not a keyword: replies routinely say
	// "stress level: 40" about a non-stressed state.
	{[]string{"stressed"}, eeg.StateStressed},
	{[]string{"relaxed", "calm"}, eeg.StateRelaxed},
	{[]string{"happy", "joyful"}, eeg.StateHappy},
	{[]string{"sad"}, eeg.StateSad},
	{[]string{"focused", "concentration"}, eeg.StateFocused},
	{[]string{"tired", "fatigue"}, eeg.StateTired},
}

// stressLevelPattern finds an integer shortly after a stress mention,
// e.g. "stress level: 65" or "your stress is around 40".
var stressLevelPattern = regexp.MustCompile(`(?i)stress[^.\n\d]{0,40}(\d{1,3})`)

var analysisMarkers = []string{"analysis:", "mental state:", "patterns:"}
var recommendationMarkers = []string{"recommendation:", "suggest", "try:"}

// ParseResponse extracts a structured result from the LLM's free-text reply.
// It is purely heuristic and total: missing pieces resolve to defaults, never
// errors. The signal summaries supply the stress estimate when the reply
// doesn't state one.
func ParseResponse(text string, attention, meditation eeg.Summary) eeg.Result {
	return eeg.Result{
		State:          parseState(text),
		Analysis:       parseAnalysis(text),
		Recommendation: parseRecommendation(text),
		StressLevel:    parseStressLevel(text, attention, meditation),
	}
}

func parseState(text string) eeg.MentalState {
	lower := strings.ToLower(text)
	for _, entry := range stateKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.state
			}
		}
	}
	return eeg.StateNeutral
}

func parseStressLevel(text string, attention, meditation eeg.Summary) int {
	if m := stressLevelPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return clamp(n, 0, 100)
		}
	}
	return estimateStress(attention, meditation)
}

// estimateStress derives a stress level from the signal summaries when the
// reply doesn't state one.
func estimateStress(attention, meditation eeg.Summary) int {
	switch {
	case attention.Mean > 70 && meditation.Mean < 40:
		return 75
	case attention.Mean < 40 && meditation.Mean > 70:
		return 25
	case attention.Mean > 60 && meditation.Mean > 60:
		return 30
	default:
		return 50
	}
}

func parseAnalysis(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return "No analysis available."
	}

	for i, line := range lines {
		if hasAnyMarker(line, analysisMarkers) {
			end := min(i+3, len(lines))
			return stripMarkers(strings.Join(lines[i:end], " "))
		}
	}

	// No marker: the opening lines are the analysis.
	end := min(3, len(lines))
	return stripMarkers(strings.Join(lines[:end], " "))
}

func parseRecommendation(text string) string {
	lines := nonEmptyLines(text)
	if len(lines) == 0 {
		return "Keep up the good work!"
	}

	for i, line := range lines {
		if hasAnyMarker(line, recommendationMarkers) {
			return stripMarkers(strings.Join(lines[i:], " "))
		}
	}

	return stripMarkers(lines[len(lines)-1])
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}

func hasAnyMarker(line string, markers []string) bool {
	lower := strings.ToLower(line)
	for _, m := range markers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// stripMarkers removes the section labels the LLM tends to echo back.
func stripMarkers(s string) string {
	for _, label := range []string{"Analysis:", "Mental state:", "Recommendation:", "Suggestion:", "Suggest:"} {
		s = strings.ReplaceAll(s, label, "")
	}
	return strings.TrimSpace(s)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
