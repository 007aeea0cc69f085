package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var randomJSON bool

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Show a random recipe",
	RunE:  runRandom,
}

func init() {
	randomCmd.Flags().BoolVar(&randomJSON, "json", false, "output the recipe as JSON")
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	recipe, err := recipeService.Random(cmd.Context())
	if err != nil {
		return fmt.Errorf("random failed: %w", err)
	}

	if randomJSON {
		return outputRecipeJSON(cmd, recipe)
	}

	outputRecipeDetail(cmd, recipe)
	return nil
}
