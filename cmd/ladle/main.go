// Ladle is recipe search for the terminal.
//
// Usage:
//
//	ladle [command]
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	configfile "github.com/ladle-labs/ladle-cli/internal/adapters/driven/config/file"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driven/storage/memory"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driven/storage/sqlite"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driven/transport"
	"github.com/ladle-labs/ladle-cli/internal/adapters/driving/cli"
	"github.com/ladle-labs/ladle-cli/internal/connectors/mealdb"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driven"
	"github.com/ladle-labs/ladle-cli/internal/core/ports/driving"
	"github.com/ladle-labs/ladle-cli/internal/core/services"
	"github.com/ladle-labs/ladle-cli/internal/logger"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ladle: loading config: %v\n", err)
		return 1
	}

	// Keep the store fresh while a long-running TUI or MCP server is up.
	watcher, err := configfile.NewWatcher(cfg, nil)
	if err != nil {
		logger.Warn("config watcher unavailable: %v", err)
	} else {
		defer func() { _ = watcher.Close() }()
	}

	catalog := buildCatalog(cfg)
	recipes := services.NewRecipeService(catalog)

	favorites, closeStore := buildFavorites(cfg)
	if closeStore != nil {
		defer closeStore()
	}

	// Each session reads the debounce at open time so config edits
	// apply without a restart.
	newSession := func(ctx context.Context) (driving.SearchSession, error) {
		return services.NewSession(ctx, catalog, debounceFrom(cfg)), nil
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Recipes:    recipes,
		Favorites:  favorites,
		Config:     cfg,
		NewSession: newSession,
	})
	cli.SetTUIConfig(&cli.TUIConfig{
		NewSession:       newSession,
		RecipeService:    recipes,
		FavoritesService: favorites,
	})

	// Cobra prints the failure itself; the exit code is ours.
	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

// buildCatalog assembles the catalog gateway from config. An explicit
// catalog.base_url wins; otherwise a premium key selects the v2 tree.
func buildCatalog(cfg *configfile.ConfigStore) driven.RecipeCatalog {
	baseURL := cfg.GetString("catalog.base_url")
	if baseURL == "" {
		if key := cfg.GetString("catalog.api_key"); key != "" {
			baseURL = mealdb.PremiumBaseURL(key)
		}
	}

	client := &http.Client{Timeout: transport.DefaultTimeout}
	if secs := cfg.GetInt("catalog.timeout_seconds"); secs > 0 {
		client.Timeout = time.Duration(secs) * time.Second
	}

	return mealdb.NewClient(transport.NewWithClient(client), baseURL)
}

// buildFavorites opens the favorites store. When the database cannot be
// opened, search must still work, so pins fall back to memory and last
// only for the run. Returns a nil service when favorites are disabled.
func buildFavorites(cfg *configfile.ConfigStore) (driving.FavoritesService, func()) {
	if v, ok := cfg.Get("favorites.enabled"); ok {
		if enabled, isBool := v.(bool); isBool && !enabled {
			return nil, nil
		}
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ladle: favorites database unavailable, pins will not persist: %v\n", err)
		return services.NewFavoritesService(memory.NewFavoriteStore()), nil
	}

	return services.NewFavoritesService(store.FavoriteStore()), func() { _ = store.Close() }
}

// debounceFrom reads search.debounce_ms from config, falling back to
// the built-in default.
func debounceFrom(cfg *configfile.ConfigStore) time.Duration {
	if ms := cfg.GetInt("search.debounce_ms"); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return services.DefaultDebounce
}
