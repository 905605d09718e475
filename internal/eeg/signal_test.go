package eeg

import (
	"math"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	if s.Count != 0 {
		t.Errorf("expected count 0, got %d", s.Count)
	}
	if s.Mean != 0 || s.Min != 0 || s.Max != 0 || s.Delta != 0 {
		t.Errorf("expected zero scalars for empty series, got %+v", s)
	}
	if s.Trend != TrendStable {
		t.Errorf("expected stable trend for empty series, got %s", s.Trend)
	}
}

func TestSummarizeSingleSample(t *testing.T) {
	s := Summarize([]int{42})

	if s.Count != 1 {
		t.Errorf("expected count 1, got %d", s.Count)
	}
	if s.Mean != 42 || s.Min != 42 || s.Max != 42 {
		t.Errorf("expected mean/min/max 42, got %+v", s)
	}
	if s.Delta != 0 {
		t.Errorf("expected delta 0 for single sample, got %v", s.Delta)
	}
	if s.StdDev != 0 {
		t.Errorf("expected stddev 0 for single sample, got %v", s.StdDev)
	}
}

func TestSummarizeScalars(t *testing.T) {
	s := Summarize([]int{40, 50, 60, 70, 80})

	if s.Mean != 60 {
		t.Errorf("expected mean 60, got %v", s.Mean)
	}
	if s.Min != 40 || s.Max != 80 || s.Range != 40 {
		t.Errorf("unexpected min/max/range: %+v", s)
	}
	if s.Delta != 40 {
		t.Errorf("expected delta 40, got %v", s.Delta)
	}
	if s.Trend != TrendRising {
		t.Errorf("expected rising trend, got %s", s.Trend)
	}

	// Sample stddev of 40..80 step 10 is sqrt(250).
	if math.Abs(s.StdDev-math.Sqrt(250)) > 1e-9 {
		t.Errorf("expected stddev %v, got %v", math.Sqrt(250), s.StdDev)
	}
}

func TestSummarizeTrend(t *testing.T) {
	cases := []struct {
		name   string
		series []int
		want   Trend
	}{
		{"falling", []int{80, 70, 50}, TrendFalling},
		{"stable within threshold", []int{50, 60, 53}, TrendStable},
		{"flat", []int{50, 50, 50}, TrendStable},
		{"rising", []int{20, 40, 60}, TrendRising},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Summarize(tc.series).Trend; got != tc.want {
				t.Errorf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestSummarizeReading(t *testing.T) {
	att, med, blink := SummarizeReading(Reading{
		Attention:  []int{70, 80},
		Meditation: []int{30, 40},
	})

	if att.Mean != 75 || med.Mean != 35 {
		t.Errorf("unexpected means: attention %v, meditation %v", att.Mean, med.Mean)
	}
	if blink.Count != 0 {
		t.Errorf("expected empty blink summary, got %+v", blink)
	}
}
