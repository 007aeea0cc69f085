package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ladle-labs/ladle-cli/internal/core/domain"
)

var favoritesJSON bool

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage pinned recipes",
	Long: `Pin recipes you want to keep at hand and list them later.

Favorites are stored locally; pinning records the recipe's identity,
not its full contents.`,
	RunE: runFavoritesList,
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pinned recipes",
	RunE:  runFavoritesList,
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add [recipe-id]",
	Short: "Pin a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesAdd,
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove [recipe-id]",
	Short: "Unpin a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runFavoritesRemove,
}

func init() {
	favoritesListCmd.Flags().BoolVar(&favoritesJSON, "json", false, "output favorites as JSON")
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	rootCmd.AddCommand(favoritesCmd)
}

func runFavoritesList(cmd *cobra.Command, _ []string) error {
	if favoritesService == nil {
		return errors.New("favorites not available")
	}

	favs, err := favoritesService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing favorites failed: %w", err)
	}

	if favoritesJSON {
		data, err := json.MarshalIndent(favs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal favorites: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(favs) == 0 {
		cmd.Println("No pinned recipes.")
		return nil
	}

	cmd.Println("Pinned recipes:")
	cmd.Println()
	for i := range favs {
		line := favs[i].Name
		meta := recipeMeta(domain.Recipe{Category: favs[i].Category, Cuisine: favs[i].Cuisine})
		if meta != "" {
			line += " (" + meta + ")"
		}
		cmd.Printf("  [%d] %s\n", i+1, line)
		cmd.Printf("      ID: %s  Pinned: %s\n", favs[i].RecipeID, favs[i].PinnedAt.Format("2006-01-02"))
		cmd.Println()
	}
	return nil
}

func runFavoritesAdd(cmd *cobra.Command, args []string) error {
	if favoritesService == nil {
		return errors.New("favorites not available")
	}
	if recipeService == nil {
		return errors.New("recipe service not configured")
	}

	// Pin the catalog's view of the recipe so the stored name matches.
	recipe, err := recipeService.Lookup(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recipe %q not found", args[0])
		}
		return fmt.Errorf("lookup failed: %w", err)
	}

	if err := favoritesService.Pin(cmd.Context(), *recipe); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			cmd.Printf("%s is already pinned.\n", recipe.Name)
			return nil
		}
		return fmt.Errorf("pin failed: %w", err)
	}

	cmd.Printf("Pinned %s.\n", recipe.Name)
	return nil
}

func runFavoritesRemove(cmd *cobra.Command, args []string) error {
	if favoritesService == nil {
		return errors.New("favorites not available")
	}

	if err := favoritesService.Unpin(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("recipe %q is not pinned", args[0])
		}
		return fmt.Errorf("unpin failed: %w", err)
	}

	cmd.Printf("Unpinned %s.\n", args[0])
	return nil
}
