// Package llm wraps the pluggable text-generation backends behind one
// Generate call: a deterministic dummy, a local Ollama server, or an
// OpenAI-compatible API.
package llm

import (
	"context"
	"errors"
	"fmt"

	"docassist/internal/config"
)

// ErrModelUnavailable wraps load or network failures from a backend.
var ErrModelUnavailable = errors.New("model unavailable")

// Backend is a text-generation implementation selected by MODEL_TYPE.
type Backend interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// New builds the backend named by cfg.ModelType. An unknown type is a
// startup error, not something to fall back from silently.
func New(cfg *config.Config) (Backend, error) {
	switch cfg.ModelType {
	case config.ModelDummy:
		return NewDummy(), nil
	case config.ModelTransformers:
		return NewOllama(cfg.OllamaBaseURL, cfg.ModelName), nil
	case config.ModelLangChain:
		return NewOpenAI(cfg.OpenAIKey, cfg.OpenAIBaseURL, cfg.ModelName), nil
	default:
		return nil, fmt.Errorf("unknown model type %q", cfg.ModelType)
	}
}
