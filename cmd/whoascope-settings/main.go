package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/whoascope/whoascope/internal/logging"
	"github.com/whoascope/whoascope/pkg/fonts"
	"github.com/whoascope/whoascope/pkg/settings"
)

var (
	catalog *fonts.Catalog
	manager *settings.Manager
	verbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "whoascope-settings",
	Short: "whoascope-settings inspects and edits WhoaScope user preferences",
	Long: `Inspect and edit the WhoaScope user preferences stored in the per-OS
configuration directory, and list the fonts bundled with the application.

Examples:
  # Show all preferences
  whoascope-settings list

  # Change the font scale to 125%
  whoascope-settings set font_scale 1.25

  # List the bundled fonts
  whoascope-settings fonts`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Init(cmd.ErrOrStderr(), verbose)

		catalog = fonts.Scan()
		manager = settings.NewManager(settings.DefaultSettings(catalog))
		if err := manager.Initialize(); err != nil {
			return fmt.Errorf("initializing settings: %w", err)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of a preference",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value := manager.Get(args[0])
		if value == nil {
			return fmt.Errorf("unknown setting %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a preference and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := args[0]
		value, err := parseValue(key, args[1])
		if err != nil {
			return err
		}
		if err := manager.Set(key, value); err != nil {
			return fmt.Errorf("saving %s: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, value)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, key := range manager.Keys() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %v\n", key, manager.Get(key))
		}
		return nil
	},
}

var fontsCmd = &cobra.Command{
	Use:   "fonts",
	Short: "List the bundled fonts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if catalog.Len() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No bundled fonts found")
			return nil
		}
		for _, name := range catalog.Names() {
			path, _ := catalog.Path(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, path)
		}
		return nil
	},
}

var dirCmd = &cobra.Command{
	Use:   "dir",
	Short: "Print the settings directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := manager.SettingsDirectory()
		if err != nil {
			return fmt.Errorf("resolving settings directory: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), dir)
		return nil
	},
}

// parseValue converts a CLI argument to the native type of the key.
// Unrecognized keys are stored as strings.
func parseValue(key, raw string) (any, error) {
	switch key {
	case settings.KeyFontScale:
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not a number", key, raw)
		}
		return scale, nil
	case settings.KeyLaunchMaximized:
		maximized, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not a boolean", key, raw)
		}
		return maximized, nil
	default:
		return raw, nil
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(fontsCmd)
	rootCmd.AddCommand(dirCmd)
}
