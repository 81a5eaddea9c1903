package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/charsym/cmd/charsym/commands"
	"github.com/teranos/charsym/config"
	"github.com/teranos/charsym/logger"
)

var rootCmd = &cobra.Command{
	Use:   "charsym",
	Short: "charsym - Symbolic character profiling",
	Long: `charsym - Map character attributes onto a universal symbology.

charsym loads a JSON-LD symbology document once, builds an in-memory
symbol table, and profiles character records against it: personality
traits, abilities, origin, role, zodiac sign, and name meaning each
resolve independently to symbol names.

Available commands:
  profile - Generate symbolic profiles for character JSON files
  symbols - Inspect the symbol table built from the symbology document
  config  - Manage charsym configuration
  version - Show version information

Examples:
  charsym profile astra.json            # Profile one character
  charsym profile --watch astra.json    # Re-profile on file changes
  charsym symbols zodiac                # List zodiac symbols
  charsym config show                   # Show effective configuration`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")

		// JSON log mode comes from config; a broken config must not
		// prevent logging from coming up.
		jsonLogs := false
		if cfg, err := config.Load(); err == nil {
			jsonLogs = cfg.Output.JSONLogs
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")

	rootCmd.AddCommand(commands.ProfileCmd)
	rootCmd.AddCommand(commands.SymbolsCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
