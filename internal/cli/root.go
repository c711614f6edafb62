package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"studyrag/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "studyrag",
	Short: "Study assistant retrieval engine - ingest notes and search them semantically",
	Long: `studyrag builds a per-collection retrieval index over study material:
extracted text is split into overlapping chunks, embedded, persisted, and
searched by cosine similarity.

Example usage:
  studyrag ingest -c cs101 notes.txt          # Add a document to a collection
  studyrag rebuild -c cs101                   # Rebuild a collection from the docs dir
  studyrag search -c cs101 -q "binary trees"  # Find the most relevant chunks
  studyrag ask -c cs101 -q "what is a heap?"  # Answer from the material via an LLM`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./studyrag.yaml)")
}

func GetConfig() *config.Config {
	return cfg
}
