package services

import (
	"github.com/pkg/errors"
	"github.com/sashabaranov/go-openai"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	ollamaBaseURL     = "http://localhost:11434/v1"
)

// ErrNoCredentials means no API key is configured for the selected provider.
var ErrNoCredentials = errors.New("no LLM credentials configured")

// NewLLMClient builds an OpenAI-compatible client for the configured provider.
// Ollama needs no key; the hosted providers return ErrNoCredentials without one.
func NewLLMClient(s *Settings) (*openai.Client, error) {
	var config openai.ClientConfig

	switch s.LLMProvider {
	case ProviderOllama:
		config = openai.DefaultConfig("not-needed")
		config.BaseURL = ollamaBaseURL
	case ProviderOpenRouter:
		if s.LLMAPIKey == "" {
			return nil, errors.Wrap(ErrNoCredentials, "set OPENROUTER_API_KEY or LLM_API_KEY")
		}
		config = openai.DefaultConfig(s.LLMAPIKey)
		config.BaseURL = openRouterBaseURL
	case ProviderOpenAI:
		if s.LLMAPIKey == "" {
			return nil, errors.Wrap(ErrNoCredentials, "set OPENAI_API_KEY or LLM_API_KEY")
		}
		config = openai.DefaultConfig(s.LLMAPIKey)
	default:
		return nil, errors.Errorf("unsupported LLM provider %q", s.LLMProvider)
	}

	if s.LLMBaseURL != "" {
		config.BaseURL = s.LLMBaseURL
	}

	return openai.NewClientWithConfig(config), nil
}
