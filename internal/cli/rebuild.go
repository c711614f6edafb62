package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"studyrag/internal/adapter/chunker"
	"studyrag/internal/adapter/fs"
	"studyrag/internal/usecase"
)

var (
	rebuildCollection string
	rebuildDocsDir    string
)

var rebuildCmd = &cobra.Command{
	Use:   "rebuild",
	Short: "Rebuild a collection from the extracted-text documents directory",
	Long: `Rebuild replaces a collection wholesale: every matching document under the
docs directory is chunked and embedded, then the collection is swapped in
one step. A failure anywhere leaves the previous collection untouched.

Examples:
  studyrag rebuild -c cs101
  studyrag rebuild -c cs101 --docs ./upload/docs`,
	RunE: runRebuild,
}

func init() {
	rootCmd.AddCommand(rebuildCmd)
	rebuildCmd.Flags().StringVarP(&rebuildCollection, "collection", "c", "", "collection identifier (required)")
	rebuildCmd.Flags().StringVar(&rebuildDocsDir, "docs", "", "documents directory (default from config)")
	rebuildCmd.MarkFlagRequired("collection")
}

func runRebuild(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	docsDir := cfg.Rebuild.DocsDir
	if rebuildDocsDir != "" {
		docsDir = rebuildDocsDir
	}

	loader := fs.NewLoader(cfg.Rebuild.Includes, cfg.Rebuild.Excludes)
	docs, err := loader.Load(docsDir, func(path string, err error) {
		fmt.Printf("skipping %s: %v\n", path, err)
	})
	if err != nil {
		return fmt.Errorf("failed to load documents from %s: %w", docsDir, err)
	}
	if len(docs) == 0 {
		return fmt.Errorf("no documents found under %s", docsDir)
	}

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

	var bar *progressbar.ProgressBar
	progress := func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("[cyan]Embedding[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(done)
	}

	result, err := ingestUC.Rebuild(rebuildCollection, docs, progress)
	if err != nil {
		return fmt.Errorf("rebuild failed: %w", err)
	}

	fmt.Printf("Rebuilt collection %s: %d documents, %d chunks (model %s)\n",
		rebuildCollection, result.Documents, result.ChunksCreated, embedder.ModelName())
	return nil
}
