package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ladle-labs/ladle-cli/internal/connectors/mealdb"
	"github.com/ladle-labs/ladle-cli/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration values.

Values are stored in ` + "`~/.ladle/config.toml`" + ` and take effect on the
next run. Keys use dotted paths, e.g. search.debounce_ms.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a configuration value and persists it immediately.

Values parse as booleans or integers when they look like one,
otherwise they are stored as strings.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the catalog API key",
	Long: `Prompts for a TheMealDB API key without echoing it and stores it
under catalog.api_key. Premium keys unlock the v2 endpoints.`,
	RunE: runConfigSetKey,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	baseURL := configStore.GetString("catalog.base_url")
	if baseURL == "" {
		baseURL = mealdb.DefaultBaseURL
	}

	apiKey := "(not set)"
	if key := configStore.GetString("catalog.api_key"); key != "" {
		apiKey = maskAPIKey(key)
	}

	debounce := configStore.GetInt("search.debounce_ms")
	if debounce <= 0 {
		debounce = int(services.DefaultDebounce.Milliseconds())
	}

	favoritesEnabled := true
	if v, ok := configStore.Get("favorites.enabled"); ok {
		if b, isBool := v.(bool); isBool {
			favoritesEnabled = b
		}
	}

	cmd.Printf("Config file: %s\n", configStore.Path())
	cmd.Println()
	cmd.Printf("  catalog.base_url   = %s\n", baseURL)
	cmd.Printf("  catalog.api_key    = %s\n", apiKey)
	cmd.Printf("  search.debounce_ms = %d\n", debounce)
	cmd.Printf("  favorites.enabled  = %t\n", favoritesEnabled)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("key %q is not set", args[0])
	}

	cmd.Printf("%v\n", value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	if err := configStore.Set(key, parseConfigValue(raw)); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("Set %s.\n", key)
	return nil
}

func runConfigSetKey(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Print("Enter API key (input hidden): ")
	key := readPassword()
	cmd.Println()
	if key == "" {
		return errors.New("no key entered")
	}

	if err := configStore.Set("catalog.api_key", key); err != nil {
		return fmt.Errorf("storing key: %w", err)
	}

	cmd.Printf("Stored catalog.api_key = %s\n", maskAPIKey(key))
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}

// parseConfigValue keeps booleans and integers typed in the TOML file.
func parseConfigValue(raw string) any {
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	return raw
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read password without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
