package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [recipe-id]",
	Short: "Show a recipe's ingredients and steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the recipe as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	recipe, err := recipeService.Lookup(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recipe %q not found", args[0])
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	if showJSON {
		return outputRecipeJSON(cmd, recipe)
	}

	outputRecipeDetail(cmd, recipe)
	return nil
}

func outputRecipeJSON(cmd *cobra.Command, recipe *domain.Recipe) error {
	data, err := recipeJSON(recipe)
	if err != nil {
		return err
	}
	cmd.Println(string(data))
	return nil
}

// recipeJSON marshals a recipe together with its segmented steps.
func recipeJSON(recipe *domain.Recipe) ([]byte, error) {
	payload := struct {
		domain.Recipe
		Steps []string
	}{
		Recipe: *recipe,
		Steps:  recipeService.Steps(*recipe),
	}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recipe: %w", err)
	}
	return data, nil
}

func outputRecipeDetail(cmd *cobra.Command, recipe *domain.Recipe) {
	cmd.Println(recipe.Name)
	if meta := recipeMeta(*recipe); meta != "" {
		cmd.Println(meta)
	}
	cmd.Printf("ID: %s\n", recipe.ID)

	if len(recipe.Ingredients) > 0 {
		cmd.Println()
		cmd.Println("Ingredients:")
		for _, line := range recipe.Ingredients {
			cmd.Printf("  - %s\n", line)
		}
	}

	steps := recipeService.Steps(*recipe)
	if len(steps) > 0 {
		cmd.Println()
		cmd.Println("Steps:")
		for i, step := range steps {
			cmd.Printf("  %d. %s\n", i+1, step)
		}
	}

	if recipe.Source != "" {
		cmd.Println()
		cmd.Printf("Source: %s\n", recipe.Source)
	}
	if recipe.Image != "" {
		cmd.Printf("Image: %s\n", recipe.Image)
	}
}
