package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"studyrag/internal/adapter/chunker"
	"studyrag/internal/usecase"
)

var ingestCollection string

var ingestCmd = &cobra.Command{
	Use:   "ingest [files...]",
	Short: "Add extracted-text documents to a collection",
	Long: `Ingest splits each file into overlapping chunks, embeds them, and appends
the records to the collection's vector store.

Examples:
  studyrag ingest -c cs101 lecture3.txt
  studyrag ingest -c cs101 notes/*.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
	ingestCmd.Flags().StringVarP(&ingestCollection, "collection", "c", "", "collection identifier (required)")
	ingestCmd.MarkFlagRequired("collection")
}

func runIngest(cmd *cobra.Command, args []string) error {
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

	split := chunker.NewWindowChunker(cfg.Chunker.Window, cfg.Chunker.Overlap)
	ingestUC := usecase.NewIngestUseCase(split, embedder, st)

	totalChunks := 0
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		result, err := ingestUC.Ingest(ingestCollection, filepath.Base(path), string(data))
		if err != nil {
			return fmt.Errorf("failed to ingest %s: %w", path, err)
		}

		fmt.Printf("%s: %d chunks\n", path, result.ChunksCreated)
		totalChunks += result.ChunksCreated
	}

	fmt.Printf("\nIngested %d files (%d chunks) into collection %s\n", len(args), totalChunks, ingestCollection)
	return nil
}
