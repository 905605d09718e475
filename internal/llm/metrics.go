package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

// ProviderCostRates defines cost per million tokens for each provider.
// Input and output costs differ for both cloud providers.
type ProviderCostRates struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// CostRates maps provider names to their token costs (USD per million tokens).
var CostRates = map[string]ProviderCostRates{
	"anthropic": {3.00, 15.00}, // Claude 3.5 Sonnet
	"openai":    {2.50, 10.00}, // GPT-4o
}

// GetCostRate returns the cost rate for a provider.
func GetCostRate(provider string) ProviderCostRates {
	if rate, ok := CostRates[provider]; ok {
		return rate
	}
	// Unknown provider - assume moderate cloud pricing
	return ProviderCostRates{1.0, 2.0}
}

// MetricsProvider wraps an LLM provider with timing and metrics collection.
type MetricsProvider struct {
	provider Provider
	name     string

	// Atomic counters
	totalCalls        int64
	totalErrors       int64
	totalTokens       int64
	totalInputTokens  int64
	totalOutputTokens int64

	// Protected by mutex
	mu               sync.RWMutex
	totalLatency     time.Duration
	minLatency       time.Duration
	maxLatency       time.Duration
	estimatedCostUSD float64
}

// NewMetricsProvider wraps a provider with metrics collection.
func NewMetricsProvider(provider Provider) *MetricsProvider {
	return &MetricsProvider{
		provider:   provider,
		name:       provider.Name(),
		minLatency: time.Hour, // Will be replaced on first call
	}
}

// Chat implements Provider interface with metrics.
func (m *MetricsProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	start := time.Now()

	resp, err := m.provider.Chat(ctx, req)

	latency := time.Since(start)

	atomic.AddInt64(&m.totalCalls, 1)
	if err != nil {
		atomic.AddInt64(&m.totalErrors, 1)
	}

	m.mu.Lock()
	m.totalLatency += latency
	if latency < m.minLatency {
		m.minLatency = latency
	}
	if latency > m.maxLatency {
		m.maxLatency = latency
	}
	m.mu.Unlock()

	if resp != nil && resp.TokensUsed > 0 {
		atomic.AddInt64(&m.totalTokens, int64(resp.TokensUsed))
		atomic.AddInt64(&m.totalInputTokens, int64(resp.PromptTokens))
		atomic.AddInt64(&m.totalOutputTokens, int64(resp.CompletionTokens))

		rates := GetCostRate(m.name)
		callCost := float64(resp.PromptTokens)/1_000_000.0*rates.InputPerMillion +
			float64(resp.CompletionTokens)/1_000_000.0*rates.OutputPerMillion

		m.mu.Lock()
		m.estimatedCostUSD += callCost
		m.mu.Unlock()
	}

	if err != nil {
		log.Warn().
			Str("provider", m.name).
			Str("model", req.Model).
			Dur("latency", latency).
			Err(err).
			Msg("LLM call failed")
	} else {
		tokens := 0
		if resp != nil {
			tokens = resp.TokensUsed
		}
		log.Debug().
			Str("provider", m.name).
			Str("model", req.Model).
			Dur("latency", latency).
			Int("tokens", tokens).
			Msg("LLM call completed")
	}

	return resp, err
}

// Name implements Provider interface.
func (m *MetricsProvider) Name() string {
	return m.name
}

// Available implements Provider interface.
func (m *MetricsProvider) Available() bool {
	return m.provider.Available()
}

// GetMetrics returns current metrics.
func (m *MetricsProvider) GetMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	calls := atomic.LoadInt64(&m.totalCalls)
	errors := atomic.LoadInt64(&m.totalErrors)

	avgLatency := time.Duration(0)
	if calls > 0 {
		avgLatency = m.totalLatency / time.Duration(calls)
	}

	errorRate := float64(0)
	if calls > 0 {
		errorRate = float64(errors) / float64(calls)
	}

	minLatency := m.minLatency
	if calls == 0 {
		minLatency = 0
	}

	return map[string]interface{}{
		"provider":       m.name,
		"total_calls":    calls,
		"total_errors":   errors,
		"error_rate":     errorRate,
		"total_tokens":   atomic.LoadInt64(&m.totalTokens),
		"input_tokens":   atomic.LoadInt64(&m.totalInputTokens),
		"output_tokens":  atomic.LoadInt64(&m.totalOutputTokens),
		"estimated_cost": m.estimatedCostUSD,
		"avg_latency_ms": avgLatency.Milliseconds(),
		"min_latency_ms": minLatency.Milliseconds(),
		"max_latency_ms": m.maxLatency.Milliseconds(),
	}
}

// Reset clears all metrics.
func (m *MetricsProvider) Reset() {
	atomic.StoreInt64(&m.totalCalls, 0)
	atomic.StoreInt64(&m.totalErrors, 0)
	atomic.StoreInt64(&m.totalTokens, 0)
	atomic.StoreInt64(&m.totalInputTokens, 0)
	atomic.StoreInt64(&m.totalOutputTokens, 0)

	m.mu.Lock()
	m.totalLatency = 0
	m.minLatency = time.Hour
	m.maxLatency = 0
	m.estimatedCostUSD = 0
	m.mu.Unlock()
}

// Unwrap returns the underlying provider.
func (m *MetricsProvider) Unwrap() Provider {
	return m.provider
}
