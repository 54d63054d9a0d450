package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/textx/core/i18n"
	"github.com/msto63/textx/pkg/core/version"
	"github.com/msto63/textx/utils/stringx"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version, build and locale information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			locale := a.opts.Locale
			switch a.opts.Comparison {
			case stringx.InvariantCulture, stringx.InvariantCultureIgnoreCase:
				locale = language.Und
			default:
				if locale == language.Und {
					locale = i18n.CurrentLocale()
				}
			}

			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "textx %s\n", info.Version)
			fmt.Fprintf(out, "  commit:     %s\n", info.Short())
			fmt.Fprintf(out, "  built:      %s\n", info.BuildDate)
			fmt.Fprintf(out, "  go:         %s\n", info.GoVersion)
			fmt.Fprintf(out, "  comparison: %s\n", a.opts.Comparison)
			fmt.Fprintf(out, "  locale:     %s (%s)\n", locale, i18n.DisplayName(locale))
			return nil
		},
	}
}
