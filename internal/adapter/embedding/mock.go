package embedding

// MockEmbedder produces deterministic vectors derived from the input text.
// Useful for wiring the pipeline without a remote service.
type MockEmbedder struct {
	dimension int
}

func NewMockEmbedder(dimension int) *MockEmbedder {
	return &MockEmbedder{dimension: dimension}
}

func (e *MockEmbedder) Embed(texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = make([]float32, e.dimension)
		for j, r := range text {
			if j >= e.dimension {
				break
			}
			vectors[i][j] = float32(r) / 1000.0
		}
	}
	return vectors, nil
}

func (e *MockEmbedder) Dimension() int {
	return e.dimension
}

func (e *MockEmbedder) ModelName() string {
	return "mock"
}
