package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/utils/stringx"
)

// character classes accepted by remove --class and keep
var (
	removeClasses = map[string]func(string) string{
		"letters":    stringx.RemoveLetters,
		"numbers":    stringx.RemoveNumbers,
		"alnum":      stringx.RemoveLettersAndNumbers,
		"whitespace": stringx.RemoveWhitespace,
	}
	keepClasses = map[string]func(string) string{
		"letters": stringx.KeepLetters,
		"numbers": stringx.KeepNumbers,
		"alnum":   stringx.KeepLettersAndNumbers,
	}
)

func newRemoveCmd(a *app) *cobra.Command {
	var (
		text  textFlag
		class string
	)
	cmd := &cobra.Command{
		Use:   "remove [value...]",
		Short: "Remove every occurrence of the given values",
		Long: `Remove every occurrence of the given values, or with --class every
character of a class (letters, numbers, alnum, whitespace).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if class != "" {
				if len(args) > 0 {
					return a.fail(cmd, usageError(cmd, "--class cannot be combined with values"))
				}
				filter, err := lookupClass(cmd, removeClasses, class)
				if err != nil {
					return a.fail(cmd, err)
				}
				return a.run(cmd, &text, func(s string) (string, error) {
					return filter(s), nil
				})
			}
			return a.run(cmd, &text, func(s string) (string, error) {
				return stringx.RemoveAll(s, args, a.opts)
			})
		},
	}
	text.register(cmd)
	cmd.Flags().StringVar(&class, "class", "", "character class to remove: letters, numbers, alnum, whitespace")
	return cmd
}

func newReplaceCmd(a *app) *cobra.Command {
	var text textFlag
	cmd := &cobra.Command{
		Use:   "replace <old>... <new>",
		Short: "Replace every occurrence of the old values with new",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			oldValues, newValue := args[:len(args)-1], args[len(args)-1]
			return a.run(cmd, &text, func(s string) (string, error) {
				return stringx.ReplaceAll(s, oldValues, newValue, a.opts)
			})
		},
	}
	text.register(cmd)
	return cmd
}

func newKeepCmd(a *app) *cobra.Command {
	var text textFlag
	cmd := &cobra.Command{
		Use:       "keep <letters|numbers|alnum>",
		Short:     "Keep only the characters of a class",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"letters", "numbers", "alnum"},
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := lookupClass(cmd, keepClasses, args[0])
			if err != nil {
				return a.fail(cmd, err)
			}
			return a.run(cmd, &text, func(s string) (string, error) {
				return filter(s), nil
			})
		},
	}
	text.register(cmd)
	return cmd
}

func newTrimCmd(a *app) *cobra.Command {
	var (
		text       textFlag
		start, end bool
	)
	cmd := &cobra.Command{
		Use:   "trim [value]",
		Short: "Trim a value or whitespace from the ends of the text",
		Long: `Trim repeated occurrences of value from both ends of the text. Without a
value, Unicode whitespace is trimmed. --start and --end restrict trimming
to one side.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start && end {
				return a.fail(cmd, usageError(cmd, "--start and --end are mutually exclusive"))
			}
			return a.run(cmd, &text, func(s string) (string, error) {
				if len(args) == 0 {
					switch {
					case start:
						return stringx.TrimStartSpace(s), nil
					case end:
						return stringx.TrimEndSpace(s), nil
					}
					return stringx.TrimSpace(s), nil
				}
				switch {
				case start:
					return stringx.TrimStart(s, args[0], a.opts)
				case end:
					return stringx.TrimEnd(s, args[0], a.opts)
				}
				return stringx.Trim(s, args[0], a.opts)
			})
		},
	}
	text.register(cmd)
	cmd.Flags().BoolVar(&start, "start", false, "trim the start only")
	cmd.Flags().BoolVar(&end, "end", false, "trim the end only")
	return cmd
}

func newIndexCmd(a *app) *cobra.Command {
	var (
		text textFlag
		last bool
	)
	cmd := &cobra.Command{
		Use:   "index <value>",
		Short: "Print the byte offset of value, or -1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, &text, func(s string) (string, error) {
				find := stringx.IndexOf
				if last {
					find = stringx.LastIndexOf
				}
				i, err := find(s, args[0], a.opts)
				if err != nil {
					return "", err
				}
				return strconv.Itoa(i), nil
			})
		},
	}
	text.register(cmd)
	cmd.Flags().BoolVar(&last, "last", false, "find the last occurrence")
	return cmd
}

func lookupClass(cmd *cobra.Command, classes map[string]func(string) string, name string) (func(string) string, error) {
	if filter, ok := classes[name]; ok {
		return filter, nil
	}
	return nil, mdwerror.Newf("unknown character class %q", name).
		WithCode(mdwerror.CodeInvalidEnumValue).
		WithOperation("textx." + cmd.Name()).
		WithDetail("class", name)
}

func usageError(cmd *cobra.Command, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("textx." + cmd.Name())
}
