package llm

import (
	"fmt"
	"os"
	"time"

	"github.com/normanking/mindlink/internal/config"
)

// NewProvider creates an LLM provider based on configuration. The returned
// provider is wrapped with metrics collection and registered globally.
// When no API key is configured the provider is still created; callers
// check Available() and fall back to the rule-based classifier.
func NewProvider(cfg *config.Config) (Provider, error) {
	providerName := cfg.LLM.DefaultProvider
	if providerName == "" {
		providerName = "anthropic"
	}

	providerCfg := cfg.LLM.Providers[providerName]

	// Get API key from config, falling back to environment variables
	apiKey := providerCfg.APIKey
	if apiKey == "" {
		apiKey = getAPIKeyFromEnv(providerName)
	}

	llmCfg := &ProviderConfig{
		Name:     providerName,
		Endpoint: providerCfg.Endpoint,
		APIKey:   apiKey,
		Model:    providerCfg.Model,
	}
	if providerCfg.TimeoutSec > 0 {
		llmCfg.Timeout = time.Duration(providerCfg.TimeoutSec) * time.Second
	}

	return NewProviderByName(providerName, llmCfg)
}

// getAPIKeyFromEnv retrieves the API key from standard environment variables.
func getAPIKeyFromEnv(providerName string) string {
	envVars := map[string]string{
		"anthropic": "ANTHROPIC_API_KEY",
		"openai":    "OPENAI_API_KEY",
	}
	if envVar, ok := envVars[providerName]; ok {
		return os.Getenv(envVar)
	}
	return ""
}

// NewProviderByName creates a specific provider by name.
// All providers are wrapped with MetricsProvider for call counting and latency tracking.
func NewProviderByName(name string, cfg *ProviderConfig) (Provider, error) {
	var provider Provider

	switch name {
	case "anthropic":
		provider = NewAnthropicProvider(cfg)
	case "openai":
		provider = NewOpenAIProvider(cfg)
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}

	metricsProvider := NewMetricsProvider(provider)
	RegisterMetricsProvider(metricsProvider)

	return metricsProvider, nil
}
