// Package cli holds the portfolio command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castrosoft/portfolio/config"
	"github.com/castrosoft/portfolio/i18n"
	"github.com/castrosoft/portfolio/models"
)

// NewRootCommand builds the portfolio command and its subcommands.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Bilingual portfolio site",
		Long:          `portfolio serves a single-page Spanish/English portfolio, or exports it as static files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("variant", "", "embedded content set (overrides VARIANT)")
	root.PersistentFlags().String("content-dir", "", "content directory (overrides CONTENT_DIR)")

	root.AddCommand(
		newServeCommand(),
		newExportCommand(),
		newCheckCommand(),
	)
	return root
}

// loadConfig applies persistent flags on top of the environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("variant"); v != "" {
		cfg.Variant = v
	}
	if dir, _ := cmd.Flags().GetString("content-dir"); dir != "" {
		cfg.ContentDir = dir
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadSite reads the content set and the translation catalog.
func loadSite(cfg *config.Config) (*models.Content, *i18n.Catalog, error) {
	fsys, err := cfg.ContentFS()
	if err != nil {
		return nil, nil, err
	}
	c, err := models.LoadContent(fsys)
	if err != nil {
		return nil, nil, fmt.Errorf("load content: %w", err)
	}
	catalog, err := i18n.Load()
	if err != nil {
		return nil, nil, err
	}
	return c, catalog, nil
}
