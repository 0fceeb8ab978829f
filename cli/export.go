package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castrosoft/portfolio/export"
	"github.com/castrosoft/portfolio/logging"
	"github.com/castrosoft/portfolio/theme"
)

func newExportCommand() *cobra.Command {
	var (
		out       string
		themeName string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			th, ok := theme.Parse(themeName)
			if !ok || th == theme.System {
				return fmt.Errorf("--theme must be light or dark, got %q", themeName)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			c, catalog, err := loadSite(cfg)
			if err != nil {
				return err
			}

			return export.Write(cmd.Context(), c, catalog, export.Options{
				Out:       out,
				Theme:     th,
				StaticDir: cfg.StaticDir,
				Logger:    logger,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&themeName, "theme", string(theme.Light), "initial theme: light or dark")
	return cmd
}
