package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
	"github.com/ladle-labs/ladle-cli/internal/logger"
)

// version is the build version, overridden at link time.
var version = "dev"

// Service implementations used by the commands. Wired by SetServices
// before Execute; commands guard against nil for partial wiring.
var (
	recipeService    driving.RecipeService
	favoritesService driving.FavoritesService
	configStore      driven.ConfigStore
	newSession       func(ctx context.Context) (driving.SearchSession, error)
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ladle",
	Short: "Search and browse recipes from your terminal",
	Long: `Ladle is a recipe search tool backed by the TheMealDB catalog.

Search by name, inspect ingredients and cooking steps, pin favorites
for offline reference, and launch an interactive terminal UI with
live search-as-you-type.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

// Services holds the driving-side implementations the commands run against.
type Services struct {
	Recipes   driving.RecipeService
	Favorites driving.FavoritesService
	Config    driven.ConfigStore

	// NewSession builds a live search session for the TUI. The session
	// stays open until the returned value is closed.
	NewSession func(ctx context.Context) (driving.SearchSession, error)
}

// SetServices installs the service implementations used by the commands.
func SetServices(s Services) {
	recipeService = s.Recipes
	favoritesService = s.Favorites
	configStore = s.Config
	newSession = s.NewSession
}

// SetVersion records the build version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
