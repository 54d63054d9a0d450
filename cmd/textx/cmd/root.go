package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textx/core/config"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/stringx"
)

// app holds the state shared by all subcommands of one root command
type app struct {
	cfgFile    string
	comparison string
	locale     string
	verbose    bool

	settings config.Settings
	opts     stringx.Options
	logger   *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "textx",
		Short: "textx - marker-based substring extraction",
		Long: `textx extracts, removes, replaces and trims substrings of a text
using start and end markers.

The text is read from --text or from stdin. Markers are matched with the
comparison selected by --comparison (default current-culture):

  current-culture, current-culture-ignore-case,
  invariant-culture, invariant-culture-ignore-case,
  ordinal, ordinal-ignore-case

Defaults are read from textx.toml, textx.yaml or .textx.toml in the working
directory and from TEXTX_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: discovered textx.toml / textx.yaml)")
	rootCmd.PersistentFlags().StringVarP(&a.comparison, "comparison", "c", "", "comparison mode")
	rootCmd.PersistentFlags().StringVar(&a.locale, "locale", "", "locale for culture comparison (default: $LC_ALL, $LANG)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(newExtractCmds(a)...)
	rootCmd.AddCommand(newRemoveCmd(a), newReplaceCmd(a), newKeepCmd(a), newTrimCmd(a), newIndexCmd(a))
	rootCmd.AddCommand(newVersionCmd(a))

	return rootCmd
}

// Execute runs the textx command line
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the configuration, applies the global flags and creates the
// logger.
func (a *app) setup(cmd *cobra.Command) error {
	if a.verbose {
		log.SetDefault(log.NewWithConfig(log.Config{
			Level:  log.LevelDebug,
			Format: log.FormatConsole,
			Output: cmd.ErrOrStderr(),
			Name:   "textx",
		}))
	}

	var (
		cfg *config.Config
		err error
	)
	if a.cfgFile != "" {
		cfg, err = config.Load(a.cfgFile)
	} else {
		cfg, err = config.DiscoverWithDefaults()
	}
	if err != nil {
		return a.fail(cmd, err)
	}

	settings := cfg.Settings()
	settings.Comparison = stringx.FirstNonBlank(a.comparison, settings.Comparison)
	settings.Locale = stringx.FirstNonBlank(a.locale, settings.Locale)
	if a.verbose {
		settings.LogLevel = log.LevelDebug.String()
	}

	logger, err := settings.Logger(cmd.ErrOrStderr())
	if err != nil {
		return a.fail(cmd, err)
	}
	a.logger = logger.WithField("command", cmd.Name())

	opts, err := settings.Options()
	if err != nil {
		return a.fail(cmd, err)
	}
	a.settings = settings
	a.opts = opts
	return nil
}

// fail logs err and returns it unchanged
func (a *app) fail(cmd *cobra.Command, err error) error {
	if a.logger == nil {
		a.logger = log.NewWithConfig(log.Config{
			Level:  log.LevelInfo,
			Format: log.FormatConsole,
			Output: cmd.ErrOrStderr(),
			Name:   "textx",
		})
	}
	a.logger.LogError(err)
	return err
}
