package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/charsym/config"
	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/symbology"
)

var (
	symbolsFormat    string
	symbolsSymbology string
)

// SymbolsCmd represents the symbols command
var SymbolsCmd = &cobra.Command{
	Use:   "symbols [CATEGORY]",
	Short: "Inspect the symbol table built from the symbology document",
	Long: `Inspect the symbol table built from the configured JSON-LD
symbology document.

Without arguments, lists every category with its symbol count. With a
category name, lists that category's symbols with glyphs and
descriptions.

Examples:
  charsym symbols           # List categories
  charsym symbols zodiac    # List zodiac signs
  charsym symbols geometry  # List geometric primitives`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSymbolsCommand,
}

func init() {
	SymbolsCmd.Flags().StringVarP(&symbolsFormat, "format", "f", "", "Output format (table/json)")
	SymbolsCmd.Flags().StringVarP(&symbolsSymbology, "symbology", "s", "", "Path to the JSON-LD symbology document")
}

func runSymbolsCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	symbologyPath := cfg.Symbology.Path
	if symbolsSymbology != "" {
		symbologyPath = symbolsSymbology
	}
	format := cfg.Output.Format
	if symbolsFormat != "" {
		format = symbolsFormat
	}

	var opts []symbology.Option
	if cfg.Symbology.BaseSymbols {
		opts = append(opts, symbology.WithBaseSymbols())
	}

	table, err := symbology.Load(symbologyPath, opts...)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		return displayCategory(table, args[0], format)
	}
	return displayCategories(table, format)
}

func displayCategories(table *symbology.Table, format string) error {
	if format == config.FormatJSON {
		counts := make(map[string]int, len(table.Categories()))
		for _, category := range table.Categories() {
			counts[category] = len(table.Symbols(category))
		}
		output, err := json.MarshalIndent(counts, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format categories as JSON")
		}
		fmt.Println(string(output))
		return nil
	}

	pterm.Printf("Symbol table: %d symbols in %d categories\n\n", table.Len(), len(table.Categories()))
	for _, category := range table.Categories() {
		pterm.Printf("  %-12s %s\n", category, pterm.Green(fmt.Sprintf("%d", len(table.Symbols(category)))))
	}
	return nil
}

func displayCategory(table *symbology.Table, category, format string) error {
	symbols := table.Symbols(category)
	if len(symbols) == 0 {
		return errors.Newf("no category %q in the symbol table", category)
	}

	if format == config.FormatJSON {
		output, err := json.MarshalIndent(symbols, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to format symbols as JSON")
		}
		fmt.Println(string(output))
		return nil
	}

	pterm.Printf("%s: %d symbols\n\n", category, len(symbols))
	for _, s := range symbols {
		glyph := s.Glyph
		if glyph == "" {
			glyph = " "
		}
		line := fmt.Sprintf("  %s  %-14s", glyph, s.Name)
		if s.Description != "" {
			line += "  " + pterm.Gray(s.Description)
		}
		if s.Element != "" {
			line += "  " + pterm.Gray(fmt.Sprintf("(%s, %s)", s.Element, s.Modality))
		}
		pterm.Println(line)
	}
	return nil
}
