package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the study retrieval engine.
type Config struct {
	Chunker   ChunkerConfig   `yaml:"chunker"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Store     StoreConfig     `yaml:"store"`
	Rebuild   RebuildConfig   `yaml:"rebuild"`
	LLM       LLMConfig       `yaml:"llm"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ChunkerConfig controls the character window splitter.
type ChunkerConfig struct {
	Window  int `yaml:"window"`
	Overlap int `yaml:"overlap"`
}

// EmbeddingConfig selects and configures the embedding provider.
type EmbeddingConfig struct {
	Provider  string `yaml:"provider"`    // "gemini", "openai", "ollama", "mock"
	Model     string `yaml:"model"`       // e.g. "text-embedding-004"
	APIKeyEnv string `yaml:"api_key_env"` // environment variable holding the API key
	BaseURL   string `yaml:"base_url"`    // override endpoint (ollama/custom)
	Dimension int    `yaml:"dimension"`
}

// StoreConfig selects the vector store backend.
type StoreConfig struct {
	Backend string `yaml:"backend"` // "file" (per-collection JSON) or "bolt"
	Dir     string `yaml:"dir"`
}

// RebuildConfig controls bulk rebuilds from a directory of extracted text.
type RebuildConfig struct {
	DocsDir  string   `yaml:"docs_dir"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LLMConfig configures the model behind the ask command.
type LLMConfig struct {
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	BaseURL   string `yaml:"base_url"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Chunker: ChunkerConfig{
			Window:  1000,
			Overlap: 200,
		},
		Embedding: EmbeddingConfig{
			Provider:  "gemini",
			Model:     "text-embedding-004",
			APIKeyEnv: "GEMINI_API_KEY",
			Dimension: 768,
		},
		Store: StoreConfig{
			Backend: "file",
			Dir:     "upload",
		},
		Rebuild: RebuildConfig{
			DocsDir:  filepath.Join("upload", "docs"),
			Includes: []string{"**/*.txt", "**/*.md"},
			Excludes: []string{"**/.*"},
		},
		LLM: LLMConfig{
			Model:     "gpt-4.1",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for studyrag.yaml).
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "studyrag.yaml"))
}

// BoltPath returns the bolt database location under the store directory.
func BoltPath(dir string) string {
	return filepath.Join(dir, "vectors.db")
}
