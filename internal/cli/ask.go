package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"studyrag/internal/adapter/llm"
	"studyrag/internal/usecase"
)

var (
	askCollection string
	askQuestion   string
	askTopK       int
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Answer a question from the ingested study material",
	Long: `Ask retrieves the chunks most relevant to the question and passes them
with the question to the configured language model.

Examples:
  studyrag ask -c cs101 -q "why is quicksort O(n log n) on average?"
  studyrag ask -c cs101 -q "define entropy" -k 5`,
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
	askCmd.Flags().StringVarP(&askCollection, "collection", "c", "", "collection identifier (required)")
	askCmd.Flags().StringVarP(&askQuestion, "query", "q", "", "question (required)")
	askCmd.Flags().IntVarP(&askTopK, "top-k", "k", 3, "number of chunks to use as context")
	askCmd.MarkFlagRequired("collection")
	askCmd.MarkFlagRequired("query")
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	model, err := llm.NewClient(cfg.LLM.APIKeyEnv, cfg.LLM.Model, cfg.LLM.BaseURL)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	st, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	searchUC := usecase.NewSearchUseCase(embedder, st)
	askUC := usecase.NewAskUseCase(searchUC, model)

	answer, err := askUC.Ask(askCollection, askQuestion, askTopK)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	fmt.Println(answer)
	return nil
}
