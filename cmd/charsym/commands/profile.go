package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/charsym/config"
	"github.com/teranos/charsym/errors"
	"github.com/teranos/charsym/profile"
	"github.com/teranos/charsym/symbology"
	"github.com/teranos/charsym/watch"
)

var (
	profileFormat    string
	profileSymbology string
	profileRules     string
	profileWatch     bool
)

// ProfileCmd represents the profile command
var ProfileCmd = &cobra.Command{
	Use:   "profile FILE...",
	Short: "Generate symbolic profiles for character JSON files",
	Long: `Generate symbolic profiles for one or more character JSON files.

Each file holds a single character record. Recognized fields: Name,
Origin, Role, PersonalityTraits, Abilities, Goals,
AstrologicalData.ZodiacSign, NameData.NameMeaning. Missing or malformed
fields simply produce no matches.

Examples:
  charsym profile astra.json                    # Profile one character
  charsym profile party/*.json                  # Profile a whole party
  charsym profile -f json astra.json            # Machine-readable output
  charsym profile --rules house.yaml astra.json # Overlay custom rules
  charsym profile --watch astra.json            # Re-profile on edits`,
	Args: cobra.MinimumNArgs(1),
	RunE: runProfileCommand,
}

func init() {
	ProfileCmd.Flags().StringVarP(&profileFormat, "format", "f", "", "Output format (table/json)")
	ProfileCmd.Flags().StringVarP(&profileSymbology, "symbology", "s", "", "Path to the JSON-LD symbology document")
	ProfileCmd.Flags().StringVarP(&profileRules, "rules", "r", "", "YAML rules file overlaid on the compiled-in association tables")
	ProfileCmd.Flags().BoolVarP(&profileWatch, "watch", "w", false, "Watch character and symbology files, re-profiling on change")
}

func runProfileCommand(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load configuration")
	}

	symbologyPath := cfg.Symbology.Path
	if profileSymbology != "" {
		symbologyPath = profileSymbology
	}
	rulesPath := cfg.Rules.Path
	if profileRules != "" {
		rulesPath = profileRules
	}
	format := cfg.Output.Format
	if profileFormat != "" {
		format = profileFormat
	}
	if format != config.FormatTable && format != config.FormatJSON {
		return errors.Newf("unknown output format %q", format)
	}

	run := func() error {
		return profileFiles(symbologyPath, rulesPath, format, cfg.Symbology.BaseSymbols, args)
	}

	if err := run(); err != nil {
		return err
	}

	if !profileWatch {
		return nil
	}

	// Watch the character files and the symbology document itself, so
	// edits to either side re-run the whole pipeline.
	watched := append(append([]string{}, args...), symbologyPath)
	watcher, err := watch.New(watched...)
	if err != nil {
		return errors.Wrap(err, "failed to start watch mode")
	}
	defer watcher.Stop()

	watcher.OnChange(func() error {
		pterm.Println()
		return run()
	})
	watcher.Start()

	pterm.Info.Printf("Watching %d files for changes (Ctrl+C to stop)\n", len(watched))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	pterm.Info.Println("\nStopping watch mode")
	return nil
}

// profileFiles loads the symbology once, then profiles every file
// against the shared table.
func profileFiles(symbologyPath, rulesPath, format string, baseSymbols bool, files []string) error {
	var opts []symbology.Option
	if baseSymbols {
		opts = append(opts, symbology.WithBaseSymbols())
	}

	table, err := symbology.Load(symbologyPath, opts...)
	if err != nil {
		return err
	}

	rules := profile.DefaultRules()
	if rulesPath != "" {
		overlay, err := profile.LoadRules(rulesPath)
		if err != nil {
			return err
		}
		rules = rules.Merge(overlay)
	}

	profiler := profile.NewProfiler(table, rules)

	for _, file := range files {
		record, err := profile.ReadRecord(file)
		if err != nil {
			return err
		}

		result, err := profiler.Profile(record)
		if err != nil {
			return errors.Wrapf(err, "failed to profile %s", file)
		}

		if format == config.FormatJSON {
			if err := displayProfileJSON(result); err != nil {
				return err
			}
			continue
		}
		displayProfileTable(file, result)
	}

	return nil
}

func displayProfileJSON(result *profile.CharacterProfile) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format profile as JSON")
	}
	fmt.Println(string(output))
	return nil
}

func displayProfileTable(file string, result *profile.CharacterProfile) {
	name := result.Name
	if name == "" {
		name = file
	}
	pterm.DefaultSection.Printf("Character Profile: %s\n", name)

	pterm.Printf("Core:  %s\n", pterm.LightCyan(result.Core))
	pterm.Printf("Role:  %s\n", pterm.LightCyan(result.RoleSymbol))
	pterm.Printf("Name:  %s\n", pterm.LightCyan(result.NameSymbol))

	pterm.Printf("Astrology:  %s (%s, %s)\n",
		pterm.LightCyan(result.Astrology.Sign),
		result.Astrology.Element,
		result.Astrology.Modality)

	pterm.Println()
	for _, category := range []string{
		profile.CategoryPersonality,
		profile.CategoryAbilities,
		profile.CategoryOrigin,
		profile.CategoryRole,
		profile.CategoryZodiac,
		profile.CategoryNameMeaning,
	} {
		matches := result.Categories[category]
		if len(matches) == 0 {
			pterm.Printf("  %-14s %s\n", category, pterm.Gray("(no matches)"))
			continue
		}
		pterm.Printf("  %-14s %s\n", category, pterm.Green(strings.Join(matches, ", ")))
	}

	pterm.Println()
	pterm.Printf("%s\n", pterm.Gray(result.Representation))
}
