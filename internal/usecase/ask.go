package usecase

import (
	"fmt"
	"strings"

	"studyrag/internal/port"
)

// AskUseCase answers a question from the study material: retrieve the most
// relevant chunks, hand them with the question to the language model.
type AskUseCase struct {
	search *SearchUseCase
	llm    port.LLM
}

func NewAskUseCase(search *SearchUseCase, llm port.LLM) *AskUseCase {
	return &AskUseCase{search: search, llm: llm}
}

func (u *AskUseCase) Ask(collectionID, question string, topK int) (string, error) {
	results, err := u.search.Search(collectionID, question, topK)
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no material ingested for collection %s", collectionID)
	}

	var material strings.Builder
	for _, r := range results {
		if source := r.Record.Metadata["source"]; source != "" {
			fmt.Fprintf(&material, "--- %s ---\n", source)
		}
		material.WriteString(r.Record.Text)
		material.WriteString("\n\n")
	}

	prompt := fmt.Sprintf(
		"Answer the question using only the study material below. If the material does not contain the answer, say so.\n\nMaterial:\n%s\nQuestion: %s",
		material.String(), question)

	return u.llm.Generate(prompt)
}
