package llm

import "sync"

// MetricsRegistry tracks all MetricsProvider instances for aggregated reporting.
type MetricsRegistry struct {
	mu        sync.RWMutex
	providers map[string]*MetricsProvider
}

// globalRegistry is the singleton metrics registry.
var globalRegistry = &MetricsRegistry{
	providers: make(map[string]*MetricsProvider),
}

// Register adds a MetricsProvider to the registry.
func (r *MetricsRegistry) Register(provider *MetricsProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// Get retrieves a specific provider's MetricsProvider.
func (r *MetricsRegistry) Get(name string) *MetricsProvider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.providers[name]
}

// GetAllMetrics returns per-provider metrics from all registered providers.
func (r *MetricsRegistry) GetAllMetrics() map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]interface{}, len(r.providers))
	for name, provider := range r.providers {
		result[name] = provider.GetMetrics()
	}
	return result
}

// GetSummary returns a high-level summary across all providers.
func (r *MetricsRegistry) GetSummary() map[string]interface{} {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var totalCalls, totalErrors, totalTokens int64

	for _, provider := range r.providers {
		metrics := provider.GetMetrics()

		if calls, ok := metrics["total_calls"].(int64); ok {
			totalCalls += calls
		}
		if errors, ok := metrics["total_errors"].(int64); ok {
			totalErrors += errors
		}
		if tokens, ok := metrics["total_tokens"].(int64); ok {
			totalTokens += tokens
		}
	}

	return map[string]interface{}{
		"total_calls":    totalCalls,
		"total_errors":   totalErrors,
		"total_tokens":   totalTokens,
		"provider_count": len(r.providers),
	}
}

// Reset clears all metrics across all providers.
func (r *MetricsRegistry) Reset() {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, provider := range r.providers {
		provider.Reset()
	}
}

// RegisterMetricsProvider adds a provider to the global registry.
func RegisterMetricsProvider(provider *MetricsProvider) {
	globalRegistry.Register(provider)
}

// GetAllMetrics returns per-provider metrics from the global registry.
func GetAllMetrics() map[string]interface{} {
	return globalRegistry.GetAllMetrics()
}

// GetMetricsSummary returns the aggregated summary from the global registry.
func GetMetricsSummary() map[string]interface{} {
	return globalRegistry.GetSummary()
}

// ResetAllMetrics clears metrics for every registered provider.
func ResetAllMetrics() {
	globalRegistry.Reset()
}
