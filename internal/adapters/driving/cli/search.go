package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

var searchJSON bool

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search recipes by name",
	Long: `Searches the recipe catalog by name.

An empty query is valid and lists the catalog's default selection.
Results include the recipe ID, which the show and favorites commands accept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var query string
	if len(args) > 0 {
		query = args[0]
	}

	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	results, err := recipeService.SearchByName(cmd.Context(), query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if limit := maxSearchResults(); limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if searchJSON {
		return outputRecipesJSON(cmd, results)
	}

	return outputRecipesTable(cmd, results)
}

func outputRecipesJSON(cmd *cobra.Command, results []domain.Recipe) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRecipesTable(cmd *cobra.Command, results []domain.Recipe) error {
	if len(results) == 0 {
		cmd.Println("No recipes found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		// Format: [N] Name (Category, Cuisine)
		line := results[i].Name
		if meta := recipeMeta(results[i]); meta != "" {
			line += " (" + meta + ")"
		}

		cmd.Printf("  [%d] %s\n", i+1, line)
		cmd.Printf("      ID: %s\n", results[i].ID)
		if len(results[i].Tags) > 0 {
			cmd.Printf("      Tags: %s\n", strings.Join(results[i].Tags, ", "))
		}
		cmd.Println()
	}

	return nil
}

// maxSearchResults reads search.max_results from config. Zero means
// no cap.
func maxSearchResults() int {
	if configStore == nil {
		return 0
	}
	return configStore.GetInt("search.max_results")
}

// recipeMeta joins category and cuisine, skipping empty parts.
func recipeMeta(r domain.Recipe) string {
	parts := make([]string, 0, 2)
	if r.Category != "" {
		parts = append(parts, r.Category)
	}
	if r.Cuisine != "" {
		parts = append(parts, r.Cuisine)
	}
	return strings.Join(parts, ", ")
}
