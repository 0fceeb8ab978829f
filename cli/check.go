package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castrosoft/portfolio/i18n"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate content and translations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			c, _, err := loadSite(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "site: %s\n", c.Site.Name)
			fmt.Fprintf(out, "messages: %d per language\n", len(i18n.Keys()))
			for _, lang := range i18n.SupportedLanguages() {
				fmt.Fprintf(out, "%s: %d projects, résumé %s\n", lang, len(c.Projects[lang]), c.Site.ResumePath(lang))
			}
			return nil
		},
	}
}
