package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var statsCollection string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show record counts for a collection",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsCollection, "collection", "c", "", "collection identifier (required)")
	statsCmd.MarkFlagRequired("collection")
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, closeStore, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	records, err := st.Load(statsCollection)
	if err != nil {
		return fmt.Errorf("failed to load collection: %w", err)
	}

	fmt.Printf("Collection %s: %d records\n", statsCollection, len(records))
	if len(records) == 0 {
		return nil
	}

	bySource := make(map[string]int)
	for _, r := range records {
		bySource[r.Metadata["source"]]++
	}

	sources := make([]string, 0, len(bySource))
	for s := range bySource {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	for _, s := range sources {
		name := s
		if name == "" {
			name = "(unknown source)"
		}
		fmt.Printf("  %s: %d\n", name, bySource[s])
	}
	return nil
}
