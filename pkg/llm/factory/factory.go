package factory

import (
	"fmt"

	"edge-journal-be/pkg/llm"
	"edge-journal-be/pkg/llm/lmstudio"
	"edge-journal-be/pkg/llm/ollama"
)

// NewLLMProvider builds the configured generation backend.
// Supported: "ollama" (default), "lmstudio".
func NewLLMProvider(provider, model, ollamaBaseURL, lmstudioBaseURL string) (llm.LLMProvider, error) {
	switch provider {
	case "ollama", "":
		return ollama.NewOllamaProvider(ollamaBaseURL, model), nil
	case "lmstudio":
		return lmstudio.NewLMStudioProvider(lmstudioBaseURL, model), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s", provider)
	}
}
