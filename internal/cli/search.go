package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamedgewely/showroom-hub/internal/search"
)

// NewSearchCmd creates the 'search' command for catalog keyword search.
func NewSearchCmd() *cobra.Command {
	var category string
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the vehicle catalog",
		Long:  `Keyword search over vehicle names, categories and features (BM25 ranked).`,
		Example: `  showroom-hub search moonroof
  showroom-hub search "safety sense" --category SUV
  showroom-hub search hybrid --limit 3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(strings.Join(args, " "), category, limit)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Restrict to a category")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of results")

	return cmd
}

// runSearch indexes the catalog and runs a keyword query.
func runSearch(query, category string, limit int) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.close()

	indexer, err := search.NewIndexer()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}
	defer indexer.Close()

	if err := indexer.IndexCatalog(a.vehicles); err != nil {
		return fmt.Errorf("failed to index catalog: %w", err)
	}

	var results []search.Result
	if category != "" {
		results, err = indexer.SearchByCategory(query, category, limit)
	} else {
		results, err = indexer.Search(query, limit)
	}
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Printf("No vehicles match %q.\n", query)
		return nil
	}

	fmt.Printf("Results for %q (%d):\n\n", query, len(results))
	for _, r := range results {
		fmt.Printf("  %-24s %-15s %-10s score %.2f\n", r.Name, r.Category, formatPrice(r.Price), r.Score)
	}

	return nil
}
