package eeg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func summaries(attention, meditation, blink []int) (Summary, Summary, Summary) {
	return Summarize(attention), Summarize(meditation), Summarize(blink)
}

func TestClassifyFocused(t *testing.T) {
	// High attention, moderate meditation, low blink.
	att, med, blink := summaries(
		[]int{78, 80, 82, 80},
		[]int{38, 40, 42, 40},
		[]int{1, 0, 2, 1},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateFocused, result.State)
	assert.GreaterOrEqual(t, result.StressLevel, 60)
	assert.LessOrEqual(t, result.StressLevel, 80)
	assert.NotEmpty(t, result.Analysis)
	assert.NotEmpty(t, result.Recommendation)
}

func TestClassifyRelaxed(t *testing.T) {
	att, med, blink := summaries(
		[]int{30, 32, 28},
		[]int{80, 82, 78},
		[]int{0, 1, 0},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateRelaxed, result.State)
	assert.LessOrEqual(t, result.StressLevel, 30)
}

func TestClassifyHappy(t *testing.T) {
	att, med, blink := summaries(
		[]int{65, 68, 66},
		[]int{70, 68, 72},
		[]int{1, 1, 0},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateHappy, result.State)
	assert.LessOrEqual(t, result.StressLevel, 30)
}

func TestClassifyTired(t *testing.T) {
	att, med, blink := summaries(
		[]int{25, 30, 28},
		[]int{35, 30, 32},
		[]int{2, 1, 3},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateTired, result.State)
}

func TestClassifyStressedOnErraticSignal(t *testing.T) {
	// Wide attention swings dominate every other rule.
	att, med, blink := summaries(
		[]int{20, 90, 30, 85},
		[]int{50, 52, 48},
		[]int{1, 2, 1},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateStressed, result.State)
	assert.Equal(t, 85, result.StressLevel)
}

func TestClassifyTiredOnHighBlinkRate(t *testing.T) {
	att, med, blink := summaries(
		[]int{50, 52, 51},
		[]int{50, 48, 52},
		[]int{30, 35, 28},
	)

	result := Classify(att, med, blink)

	assert.Equal(t, StateTired, result.State)
}

func TestClassifyEmptyReading(t *testing.T) {
	att, med, blink := summaries(nil, nil, nil)

	result := Classify(att, med, blink)

	assert.Equal(t, StateNeutral, result.State)
	assert.Equal(t, 50, result.StressLevel)
	assert.NotEmpty(t, result.Analysis)
	assert.NotEmpty(t, result.Recommendation)
}

func TestClassifyIsDeterministic(t *testing.T) {
	att, med, blink := summaries(
		[]int{55, 60, 58},
		[]int{45, 50, 48},
		[]int{2, 3, 1},
	)

	first := Classify(att, med, blink)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify(att, med, blink))
	}
}

func TestClassifyAlwaysValid(t *testing.T) {
	// Sweep a grid of mean levels; every output must stay within the
	// label enumeration and the 0-100 stress range.
	for a := 0; a <= 100; a += 10 {
		for m := 0; m <= 100; m += 10 {
			att, med, blink := summaries([]int{a}, []int{m}, []int{0})
			result := Classify(att, med, blink)

			assert.True(t, result.State.Valid(), "state %q for a=%d m=%d", result.State, a, m)
			assert.GreaterOrEqual(t, result.StressLevel, 0)
			assert.LessOrEqual(t, result.StressLevel, 100)
		}
	}
}

func TestMentalStateValid(t *testing.T) {
	for _, s := range AllStates {
		assert.True(t, s.Valid())
	}
	assert.False(t, MentalState("Euphoric").Valid())
	assert.False(t, MentalState("").Valid())
}
