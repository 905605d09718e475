package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/normanking/mindlink/internal/eeg"
	"github.com/normanking/mindlink/internal/llm"
)

// stubProvider is a canned Provider for engine tests.
type stubProvider struct {
	content   string
	err       error
	available bool
	calls     int
}

func (s *stubProvider) Chat(ctx context.Context, req *llm.ChatRequest) (*llm.ChatResponse, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &llm.ChatResponse{Content: s.content}, nil
}

func (s *stubProvider) Name() string    { return "stub" }
func (s *stubProvider) Available() bool { return s.available }

func focusedReading() eeg.Reading {
	return eeg.Reading{
		Attention:  []int{78, 80, 82},
		Meditation: []int{38, 40, 42},
		Blink:      []int{1, 2, 1},
	}
}

func TestAnalyzeWithoutProviderMatchesClassifier(t *testing.T) {
	engine := NewEngine(nil, 0)
	reading := focusedReading()

	got := engine.Analyze(context.Background(), reading)

	att, med, blink := eeg.SummarizeReading(reading)
	want := eeg.Classify(att, med, blink)
	assert.Equal(t, want, got, "fallback must equal the classifier exactly")
}

func TestAnalyzeUnavailableProviderMakesNoCall(t *testing.T) {
	provider := &stubProvider{available: false}
	engine := NewEngine(provider, 0)

	result := engine.Analyze(context.Background(), focusedReading())

	assert.Equal(t, 0, provider.calls, "unconfigured provider must not be called")
	assert.Equal(t, eeg.StateFocused, result.State)
}

func TestAnalyzeUsesAIReply(t *testing.T) {
	provider := &stubProvider{
		available: true,
		content:   "Mental state: Relaxed\nAnalysis: calm waves.\nRecommendation: enjoy it.\nStress level: 15",
	}
	engine := NewEngine(provider, 0)

	result := engine.Analyze(context.Background(), focusedReading())

	assert.Equal(t, 1, provider.calls)
	assert.Equal(t, eeg.StateRelaxed, result.State)
	assert.Equal(t, 15, result.StressLevel)
}

func TestAnalyzeFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{available: true, err: errors.New("connection refused")}
	engine := NewEngine(provider, 0)
	reading := focusedReading()

	got := engine.Analyze(context.Background(), reading)

	att, med, blink := eeg.SummarizeReading(reading)
	assert.Equal(t, eeg.Classify(att, med, blink), got)
}

func TestAnalyzeEmptyReading(t *testing.T) {
	engine := NewEngine(nil, 0)

	result := engine.Analyze(context.Background(), eeg.Reading{})

	assert.Equal(t, eeg.StateNeutral, result.State)
	assert.Equal(t, 50, result.StressLevel)
}

func TestAnswerOfflineKeywords(t *testing.T) {
	engine := NewEngine(nil, 0)
	ctx := context.Background()

	cases := []struct {
		question string
		fragment string
	}{
		{"What is attention?", "mental focus"},
		{"Tell me about meditation", "relaxation level"},
		{"Why does it track my blink?", "eye muscle activity"},
		{"How do I reduce stress?", "deep breathing"},
		{"How does this app work?", "reads your EEG brainwaves"},
		{"hi there", "Hello!"},
		{"what's the weather like", "offline mode"},
	}

	for _, tc := range cases {
		answer := engine.Answer(ctx, tc.question)
		assert.Contains(t, answer, tc.fragment, "question: %s", tc.question)
	}
}

func TestAnswerOfflineMakesNoCall(t *testing.T) {
	provider := &stubProvider{available: false}
	engine := NewEngine(provider, 0)

	answer := engine.Answer(context.Background(), "What is attention?")

	assert.Equal(t, 0, provider.calls)
	assert.NotEmpty(t, answer)
}

func TestAnswerUsesAIReply(t *testing.T) {
	provider := &stubProvider{available: true, content: "  Attention reflects focus.  "}
	engine := NewEngine(provider, 0)

	answer := engine.Answer(context.Background(), "What is attention?")

	assert.Equal(t, "Attention reflects focus.", answer)
}

func TestAnswerFallsBackOnProviderError(t *testing.T) {
	provider := &stubProvider{available: true, err: errors.New("timeout")}
	engine := NewEngine(provider, 0)

	answer := engine.Answer(context.Background(), "What is meditation?")

	assert.Contains(t, answer, "relaxation level")
}

func TestProviderName(t *testing.T) {
	assert.Equal(t, "offline", NewEngine(nil, 0).ProviderName())
	assert.Equal(t, "offline", NewEngine(&stubProvider{available: false}, 0).ProviderName())
	assert.Equal(t, "stub", NewEngine(&stubProvider{available: true}, 0).ProviderName())
}
