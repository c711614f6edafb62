package embedding

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"studyrag/internal/domain"
)

// Client is an embedder backed by any OpenAI-compatible /embeddings
// endpoint. Calls are synchronous; a failed or timed-out call wraps
// domain.ErrEmbeddingUnavailable and is never retried here — retry policy
// belongs to the caller.
type Client struct {
	apiKey    string
	model     string
	baseURL   string
	dimension int
	batchSize int
	client    *http.Client
}

type embeddingRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingResponse struct {
	Data  []embeddingData `json:"data"`
	Error *apiError       `json:"error,omitempty"`
}

type embeddingData struct {
	Embedding []float32 `json:"embedding"`
	Index     int       `json:"index"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func NewOpenAIClient(apiKeyEnv, model string) (*Client, error) {
	return NewCompatibleClient(apiKeyEnv, model, "https://api.openai.com/v1")
}

// NewGeminiClient talks to Gemini's OpenAI-compatible surface.
func NewGeminiClient(apiKeyEnv, model string) (*Client, error) {
	return NewCompatibleClient(apiKeyEnv, model, "https://generativelanguage.googleapis.com/v1beta/openai")
}

func NewOllamaClient(model, baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:11434/v1"
	}

	dimension := 768
	switch model {
	case "mxbai-embed-large":
		dimension = 1024
	case "all-minilm":
		dimension = 384
	}

	return &Client{
		apiKey:    "ollama",
		model:     model,
		baseURL:   baseURL,
		dimension: dimension,
		batchSize: 100,
		client:    &http.Client{Timeout: 120 * time.Second},
	}
}

func NewCompatibleClient(apiKeyEnv, model, baseURL string) (*Client, error) {
	apiKey := os.Getenv(apiKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("API key not found in environment variable: %s", apiKeyEnv)
	}

	dimension := 1536
	switch model {
	case "text-embedding-3-small", "text-embedding-ada-002":
		dimension = 1536
	case "text-embedding-3-large":
		dimension = 3072
	case "text-embedding-004", "gemini-embedding-001":
		dimension = 768
	}

	return &Client{
		apiKey:    apiKey,
		model:     model,
		baseURL:   baseURL,
		dimension: dimension,
		batchSize: 100,
		client:    &http.Client{Timeout: 60 * time.Second},
	}, nil
}

func (c *Client) Embed(texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	var all [][]float32
	for i := 0; i < len(texts); i += c.batchSize {
		end := i + c.batchSize
		if end > len(texts) {
			end = len(texts)
		}

		vectors, err := c.embedBatch(texts[i:end])
		if err != nil {
			return nil, err
		}
		all = append(all, vectors...)
	}

	return all, nil
}

func (c *Client) embedBatch(texts []string) ([][]float32, error) {
	reqBody := embeddingRequest{Input: texts, Model: c.model}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/embeddings", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrEmbeddingUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrEmbeddingUnavailable, resp.StatusCode, truncate(body, 200))
	}

	var embResp embeddingResponse
	if err := json.Unmarshal(body, &embResp); err != nil {
		return nil, fmt.Errorf("%w: parsing response (body: %s): %v", domain.ErrEmbeddingUnavailable, truncate(body, 200), err)
	}
	if embResp.Error != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEmbeddingUnavailable, embResp.Error.Message)
	}

	vectors := make([][]float32, len(texts))
	for _, data := range embResp.Data {
		if data.Index >= 0 && data.Index < len(vectors) {
			vectors[data.Index] = data.Embedding
		}
	}

	return vectors, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n])
	}
	return string(b)
}

func (c *Client) Dimension() int {
	return c.dimension
}

func (c *Client) ModelName() string {
	return c.model
}
