package cli

import (
	"fmt"
	"os"

	"studyrag/config"
	"studyrag/internal/adapter/embedding"
	"studyrag/internal/adapter/store"
	"studyrag/internal/port"
)

// newEmbedder builds the configured embedding provider.
func newEmbedder(cfg *config.Config) (port.Embedder, error) {
	e := cfg.Embedding
	switch e.Provider {
	case "gemini":
		return embedding.NewGeminiClient(e.APIKeyEnv, e.Model)
	case "openai":
		if e.BaseURL != "" {
			return embedding.NewCompatibleClient(e.APIKeyEnv, e.Model, e.BaseURL)
		}
		return embedding.NewOpenAIClient(e.APIKeyEnv, e.Model)
	case "ollama":
		return embedding.NewOllamaClient(e.Model, e.BaseURL), nil
	case "mock":
		return embedding.NewMockEmbedder(e.Dimension), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", e.Provider)
	}
}

// newStore builds the configured vector store backend. The returned closer
// is a no-op for the file backend.
func newStore(cfg *config.Config) (port.VectorStore, func() error, error) {
	switch cfg.Store.Backend {
	case "file", "":
		return store.NewFileStore(cfg.Store.Dir), func() error { return nil }, nil
	case "bolt":
		if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
			return nil, nil, err
		}
		s, err := store.NewBoltStore(config.BoltPath(cfg.Store.Dir))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
