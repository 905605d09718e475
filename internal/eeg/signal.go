// Package eeg summarizes raw EEG metric series and classifies them into
// mental states. Attention and meditation are 0-100 scalars produced by the
// headset's signal processing; blink is a per-window artifact count.
package eeg

import "math"

// Trend describes the coarse direction of a series over the window.
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// trendThreshold is the minimum absolute start-to-end delta before a series
// is considered to be moving rather than stable.
const trendThreshold = 5.0

// Reading holds one minute of EEG metric history as reported by the client.
// Any of the series may be empty.
type Reading struct {
	Attention  []int `json:"attentionHistory"`
	Meditation []int `json:"meditationHistory"`
	Blink      []int `json:"blinkHistory"`
}

// Summary holds the descriptive scalars derived from a single series.
// A summary of an empty series is the zero value with Count == 0.
type Summary struct {
	Count  int
	Mean   float64
	Min    float64
	Max    float64
	Range  float64
	Delta  float64 // last sample minus first sample
	StdDev float64
	Trend  Trend
}

// Summarize reduces a series to its descriptive scalars. It never fails:
// an empty series produces a zero summary with a stable trend.
func Summarize(series []int) Summary {
	s := Summary{Count: len(series), Trend: TrendStable}
	if len(series) == 0 {
		return s
	}

	s.Min = float64(series[0])
	s.Max = float64(series[0])

	sum := 0.0
	for _, v := range series {
		f := float64(v)
		sum += f
		if f < s.Min {
			s.Min = f
		}
		if f > s.Max {
			s.Max = f
		}
	}
	s.Mean = sum / float64(len(series))
	s.Range = s.Max - s.Min
	s.Delta = float64(series[len(series)-1] - series[0])

	if len(series) > 1 {
		sumSquares := 0.0
		for _, v := range series {
			diff := float64(v) - s.Mean
			sumSquares += diff * diff
		}
		s.StdDev = math.Sqrt(sumSquares / float64(len(series)-1))
	}

	switch {
	case s.Delta > trendThreshold:
		s.Trend = TrendRising
	case s.Delta < -trendThreshold:
		s.Trend = TrendFalling
	}

	return s
}

// SummarizeReading summarizes all three series of a reading.
func SummarizeReading(r Reading) (attention, meditation, blink Summary) {
	return Summarize(r.Attention), Summarize(r.Meditation), Summarize(r.Blink)
}
