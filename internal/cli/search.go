package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"studyrag/internal/usecase"
)

var (
	searchCollection string
	searchQuery      string
	searchTopK       int
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the chunks most similar to a query",
	Long: `Search embeds the query and ranks every record in the collection by cosine
similarity.

Examples:
  studyrag search -c cs101 -q "dijkstra shortest path"
  studyrag search -c cs101 -q "entropy" -k 5 --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchCollection, "collection", "c", "", "collection identifier (required)")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 1, "number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("collection")
	searchCmd.MarkFlagRequired("query")
}

// searchResult is the CLI output shape.
type searchResult struct {
	Source string  `json:"source,omitempty"`
	Score  float64 `json:"score"`
	Text   string  `json:"text"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	st, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	searchUC := usecase.NewSearchUseCase(embedder, st)

	scored, err := searchUC.Search(searchCollection, searchQuery, searchTopK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	results := make([]searchResult, 0, len(scored))
	for _, s := range scored {
		results = append(results, searchResult{
			Source: s.Record.Metadata["source"],
			Score:  s.Score,
			Text:   s.Record.Text,
		})
	}

	if searchJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Printf("Found %d results for: %s\n\n", len(results), searchQuery)
	for i, r := range results {
		fmt.Printf("%d. [%.4f] %s\n%s\n\n", i+1, r.Score, r.Source, r.Text)
	}
	return nil
}
