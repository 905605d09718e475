package eeg

import "fmt"

// MentalState is one of the seven labels the analysis pipeline can produce.
type MentalState string

const (
	StateStressed MentalState = "Stressed"
	StateHappy    MentalState = "Happy"
	StateFocused  MentalState = "Focused"
	StateRelaxed  MentalState = "Relaxed"
	StateTired    MentalState = "Tired"
	StateSad      MentalState = "Sad"
	StateNeutral  MentalState = "Neutral"
)

// AllStates lists every valid mental state label.
var AllStates = []MentalState{
	StateStressed, StateHappy, StateFocused, StateRelaxed,
	StateTired, StateSad, StateNeutral,
}

// Valid reports whether s is one of the seven known labels.
func (s MentalState) Valid() bool {
	for _, known := range AllStates {
		if s == known {
			return true
		}
	}
	return false
}

// Result is the outcome of one analysis, whether AI-derived or rule-based.
type Result struct {
	State          MentalState `json:"mentalState"`
	Analysis       string      `json:"analysis"`
	Recommendation string      `json:"recommendation"`
	StressLevel    int         `json:"stressLevel"`
}

// Classification thresholds. Attention and meditation means are compared
// against these; ranges (max-min over the window) detect erratic signals.
const (
	highAttention  = 70.0
	lowMeditation  = 45.0
	lowAttention   = 40.0
	highMeditation = 70.0
	balancedLevel  = 60.0
	lowLevel       = 40.0
	erraticRange   = 40.0
	unsettledRange = 30.0
	fatigueBlinks  = 25.0
)

// Classify maps summarized EEG scalars to a mental state, a templated
// analysis and recommendation, and a stress estimate. It is pure and total:
// it never errors, touches the network, or depends on anything beyond its
// arguments, so it doubles as the fallback when no AI provider is reachable.
func Classify(attention, meditation, blink Summary) Result {
	state, stress := classifyState(attention, meditation, blink)
	return Result{
		State:          state,
		Analysis:       analysisFor(state, attention, meditation),
		Recommendation: recommendationFor(state),
		StressLevel:    stress,
	}
}

func classifyState(attention, meditation, blink Summary) (MentalState, int) {
	if attention.Count == 0 && meditation.Count == 0 {
		return StateNeutral, 50
	}

	switch {
	case attention.Range > erraticRange || meditation.Range > erraticRange:
		return StateStressed, 85
	case attention.Mean >= highAttention && meditation.Mean <= lowMeditation:
		return StateFocused, 70
	case attention.Mean <= lowAttention && meditation.Mean >= highMeditation:
		return StateRelaxed, 20
	case attention.Mean >= balancedLevel && meditation.Mean >= balancedLevel:
		return StateHappy, 25
	case attention.Mean <= lowLevel && meditation.Mean <= lowLevel:
		return StateTired, 55
	case attention.Range > unsettledRange || meditation.Range > unsettledRange:
		return StateStressed, 60
	case blink.Mean >= fatigueBlinks:
		// A burst of blink artifacts in an otherwise unremarkable window
		// reads as eye fatigue.
		return StateTired, 55
	default:
		return StateNeutral, 50
	}
}

func analysisFor(state MentalState, attention, meditation Summary) string {
	att := int(attention.Mean)
	med := int(meditation.Mean)

	switch state {
	case StateFocused:
		return fmt.Sprintf("Your attention levels are high (%d%%) while meditation is lower (%d%%). You're in a concentrated state, actively engaging with tasks.", att, med)
	case StateRelaxed:
		return fmt.Sprintf("Your meditation levels are high (%d%%) with lower attention (%d%%). You're in a calm, peaceful state - great for recovery.", med, att)
	case StateHappy:
		return fmt.Sprintf("Both attention (%d%%) and meditation (%d%%) are balanced and high. You're in an optimal mental state!", att, med)
	case StateTired:
		return fmt.Sprintf("Both attention (%d%%) and meditation (%d%%) are low. Your brain may be fatigued and needs rest.", att, med)
	case StateStressed:
		return fmt.Sprintf("Your brainwave patterns show high variability (attention range: %d-%d%%). This indicates mental stress or distraction.", int(attention.Min), int(attention.Max))
	default:
		return fmt.Sprintf("Your brainwave patterns are relatively stable. Attention at %d%% and meditation at %d%%.", att, med)
	}
}

func recommendationFor(state MentalState) string {
	switch state {
	case StateFocused:
		return "Take short breaks every 25 minutes to prevent burnout. Try the 20-20-20 rule: look at something 20 feet away for 20 seconds."
	case StateRelaxed:
		return "Great job relaxing! If you need to focus, try deep breathing exercises or light physical activity to increase alertness."
	case StateHappy:
		return "Excellent mental state! Maintain this balance with regular breaks, hydration, and mindful breathing."
	case StateTired:
		return "Consider taking a 15-20 minute power nap, getting fresh air, or doing light stretching to re-energize."
	case StateStressed:
		return "Try 5 minutes of deep breathing: inhale for 4 counts, hold for 4, exhale for 4. Reduce multitasking if possible."
	default:
		return "Stay consistent with your current routine. Take breaks when needed and stay hydrated."
	}
}
