package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/stringx"
)

type singleMarkerFunc func(ex *stringx.Extractor, s, marker string) (string, error)
type lengthFunc func(ex *stringx.Extractor, s, marker string, length int) (string, error)
type dualMarkerFunc func(ex *stringx.Extractor, s, start, end string) (string, error)

func newExtractCmds(a *app) []*cobra.Command {
	return []*cobra.Command{
		newSingleMarkerCmd(a, "start <endString>", "Text before the first endString", (*stringx.Extractor).Start),
		newSingleMarkerCmd(a, "start-last <endString>", "Text before the last endString", (*stringx.Extractor).StartLast),
		newSingleMarkerCmd(a, "end <startString>", "Text after the first startString", (*stringx.Extractor).End),
		newSingleMarkerCmd(a, "end-last <startString>", "Text after the last startString", (*stringx.Extractor).EndLast),
		newLengthCmd(a, "length <startString> <length>", "Characters after the first startString", (*stringx.Extractor).Length),
		newLengthCmd(a, "length-last <startString> <length>", "Characters after the last startString", (*stringx.Extractor).LengthLast),
		newDualMarkerCmd(a, "between <startString> <endString>", "Text between startString and the first endString after it", (*stringx.Extractor).Between),
		newDualMarkerCmd(a, "between-last <startString> <endString>", "Text between startString and the last endString after it", (*stringx.Extractor).BetweenLast),
	}
}

func newSingleMarkerCmd(a *app, use, short string, fn singleMarkerFunc) *cobra.Command {
	var (
		text      textFlag
		inclusive bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

An empty marker ("") stands for a boundary of the text: start "" prints
nothing, start-last "" / end "" / end-last "" print the whole text.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.opts
			if cmd.Flags().Changed("inclusive") {
				opts.Inclusive = inclusive
			}
			return a.extract(cmd, &text, opts, func(ex *stringx.Extractor, s string) (string, error) {
				return fn(ex, s, args[0])
			})
		},
	}
	text.register(cmd)
	cmd.Flags().BoolVarP(&inclusive, "inclusive", "i", false, "keep the marker in the result")
	return cmd
}

func newLengthCmd(a *app, use, short string, fn lengthFunc) *cobra.Command {
	var (
		text      textFlag
		inclusive bool
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

The length counts characters. With --inclusive the count starts at the
marker itself.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return a.fail(cmd, mdwerror.Wrap(err, fmt.Sprintf("invalid length %q", args[1])).
					WithCode(mdwerror.CodeInvalidInput).
					WithOperation("textx." + cmd.Name()))
			}
			opts := a.opts
			if cmd.Flags().Changed("inclusive") {
				opts.Inclusive = inclusive
			}
			return a.extract(cmd, &text, opts, func(ex *stringx.Extractor, s string) (string, error) {
				return fn(ex, s, args[0], length)
			})
		},
	}
	text.register(cmd)
	cmd.Flags().BoolVarP(&inclusive, "inclusive", "i", false, "count from the start of the marker")
	return cmd
}

func newDualMarkerCmd(a *app, use, short string, fn dualMarkerFunc) *cobra.Command {
	var (
		text      textFlag
		inclusion string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long: short + `.

--inclusion selects which markers are kept: none (default), start, end or
all. The end marker is searched only after the start marker.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := a.opts
			if cmd.Flags().Changed("inclusion") {
				inc, err := stringx.ParseInclusion(inclusion)
				if err != nil {
					return a.fail(cmd, mdwerror.Wrap(err, "invalid --inclusion").
						WithCode(mdwerror.CodeInvalidEnumValue).
						WithOperation("textx."+cmd.Name()))
				}
				opts.Inclusion = inc
			}
			return a.extract(cmd, &text, opts, func(ex *stringx.Extractor, s string) (string, error) {
				return fn(ex, s, args[0], args[1])
			})
		},
	}
	text.register(cmd)
	cmd.Flags().StringVar(&inclusion, "inclusion", "", "markers to keep: none, start, end, all")
	return cmd
}

// extract reads the subject, runs fn with an extractor for opts and prints
// the result.
func (a *app) extract(cmd *cobra.Command, text *textFlag, opts stringx.Options, fn func(*stringx.Extractor, string) (string, error)) error {
	ex, err := stringx.NewExtractor(opts)
	if err != nil {
		return a.fail(cmd, err)
	}
	return a.run(cmd, text, func(s string) (string, error) {
		return fn(ex, s)
	})
}

// run reads the subject, applies fn and prints the result. With --lines fn
// is applied to every line and the first failing line aborts the command.
func (a *app) run(cmd *cobra.Command, text *textFlag, fn func(string) (string, error)) error {
	s, err := text.read(cmd)
	if err != nil {
		return a.fail(cmd, err)
	}

	inputs := []string{s}
	if text.lines {
		inputs = stringx.SplitLines(s)
	}

	timer := a.logger.StartTimer(cmd.Name())
	results := make([]string, 0, len(inputs))
	for i, input := range inputs {
		result, err := fn(input)
		if err != nil {
			if text.lines {
				a.logger.Debug("line failed", log.Int("line", i+1))
			}
			return a.fail(cmd, err)
		}
		results = append(results, result)
	}
	timer.Stop(log.Fields{
		"comparison": a.opts.Comparison.String(),
		"input":      stringx.RuneLen(s),
		"lines":      len(inputs),
	})

	out := cmd.OutOrStdout()
	for _, result := range results {
		if _, err := fmt.Fprintln(out, result); err != nil {
			a.logger.ErrorWithErr("failed to write result", err)
			return err
		}
	}
	return nil
}
