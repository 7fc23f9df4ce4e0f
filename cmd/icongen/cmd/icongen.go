package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/uzytkownik/patternfly-icongen/catalog"
	"github.com/uzytkownik/patternfly-icongen/config"
	"github.com/uzytkownik/patternfly-icongen/errors"
	"github.com/uzytkownik/patternfly-icongen/icongen"
	"github.com/uzytkownik/patternfly-icongen/icongen/rust"
	"github.com/uzytkownik/patternfly-icongen/logger"
)

var (
	catalogPath    string
	outputPath     string
	noFeatureGates bool
	watchCatalog   bool
	verbosity      int
	jsonLogs       bool
)

// RootCmd represents the icongen command
var RootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "Generate the PatternFly Icon enum from the icon catalog",
	Long: `Generate Rust source for the PatternFly Icon enum and its AsClasses
implementation from the upstream icon catalog.

The catalog is an ordered, possibly nested collection of icon records (JSON
or YAML). Records without an upstream name and records repeating an already
seen ReactName are skipped; an unrecognized style aborts the run. Two blocks
are written in order: the enum declaration, then the AsClasses impl.

Log output goes to stderr; stdout carries only generated source.

Examples:
  icongen                                    # Catalog from config, output to stdout
  icongen --catalog react-icons.json         # Explicit catalog
  icongen --catalog - < react-icons.json     # Catalog from stdin
  icongen --output src/icon/generated.rs     # Write to file
  icongen --watch --output src/icon/generated.rs  # Regenerate on catalog change`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.Initialize(verbosity, jsonLogs)
	},
	RunE: runGenerate,
}

func init() {
	RootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v, -vv)")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Structured JSON log output")
	RootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "", "Catalog file, JSON or YAML; \"-\" reads stdin (default from config)")
	RootCmd.PersistentFlags().BoolVar(&noFeatureGates, "no-feature-gates", false, "Compile every icon family unconditionally")

	RootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	RootCmd.Flags().BoolVarP(&watchCatalog, "watch", "w", false, "Keep running and regenerate when the catalog changes")

	RootCmd.AddCommand(CheckCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	input := resolveCatalogPath(cfg)
	output := outputPath
	if output == "" {
		output = cfg.Output.Path
	}

	if err := generateOnce(input, output, featureGates(cfg)); err != nil {
		return err
	}

	if !watchCatalog {
		return nil
	}

	if input == "-" {
		return errors.New("--watch requires a catalog file, not stdin")
	}
	if output == "" {
		return errors.New("--watch requires --output; stdout would interleave runs")
	}

	return watchLoop(input, output, featureGates(cfg))
}

// generateOnce runs the full pipeline: load, generate, write.
//
// Output is written only after the whole catalog processed cleanly, so a
// fatal mid-catalog error leaves the previous generated file untouched.
func generateOnce(input, output string, gates bool) error {
	result, err := generate(input, gates)
	if err != nil {
		return err
	}
	return writeResult(result, output)
}

// generate loads the catalog and runs the generator over it
func generate(input string, gates bool) (*icongen.Result, error) {
	entries, err := catalog.Load(input)
	if err != nil {
		return nil, err
	}

	emitter := rust.NewEmitterWithOptions(rust.Options{FeatureGates: gates})
	gen := icongen.New(emitter, logger.Logger)

	result, err := gen.Run(entries)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to generate from %s", input)
	}
	return result, nil
}

// writeResult writes both blocks, type definitions first, to the sink
func writeResult(result *icongen.Result, output string) error {
	rendered := result.Render()

	if output == "" {
		fmt.Print(rendered)
		return nil
	}

	if err := os.WriteFile(output, []byte(rendered), 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", output)
	}
	logger.Infow("Generated icon source",
		"path", output,
		"variants", result.Count)
	return nil
}

// watchLoop regenerates on catalog changes until interrupted
func watchLoop(input, output string, gates bool) error {
	watcher, err := catalog.NewWatcher(input)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	watcher.OnChange(func() error {
		return generateOnce(input, output, gates)
	})
	watcher.Start()

	logger.Infow("Watching catalog",
		"catalog", input,
		"output", output)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	logger.Info("Watch stopped")
	return nil
}

// resolveCatalogPath applies flag-over-config precedence for the input path
func resolveCatalogPath(cfg *config.Config) string {
	if catalogPath != "" {
		return catalogPath
	}
	return cfg.Catalog.Path
}

// featureGates applies flag-over-config precedence for gate emission
func featureGates(cfg *config.Config) bool {
	if noFeatureGates {
		return false
	}
	return cfg.Features.Enabled
}
