package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/uzytkownik/patternfly-icongen/config"
	"github.com/uzytkownik/patternfly-icongen/errors"
	"github.com/uzytkownik/patternfly-icongen/logger"
)

// CheckCmd checks whether a generated file is up to date with the catalog
var CheckCmd = &cobra.Command{
	Use:   "check <generated-file>",
	Short: "Check if generated icon source is up to date",
	Long: `Check if a previously generated file still matches the catalog.

Regenerates in memory and compares against the file on disk. Nothing is
written.

Exit codes:
  0 - Generated source is up to date
  1 - Generated source is out of date, or the check itself failed

Examples:
  icongen check src/icon/generated.rs
  icongen -c react-icons.json check src/icon/generated.rs`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	generatedPath := args[0]

	cfg, err := config.Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	existing, err := os.ReadFile(generatedPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read generated file %s", generatedPath)
	}

	result, err := generate(resolveCatalogPath(cfg), featureGates(cfg))
	if err != nil {
		return err
	}

	if result.Render() == string(existing) {
		fmt.Fprintln(os.Stderr, "✓ Generated icon source is up to date")
		return nil
	}

	logger.Warnw("Generated source differs from catalog",
		"path", generatedPath,
		"variants", result.Count)
	return errors.Wrapf(errors.ErrStale, "%s - rerun icongen to update", generatedPath)
}
