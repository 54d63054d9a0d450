package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textx/core/error"
)

// textFlag is the --text flag shared by every command that reads a subject
type textFlag struct {
	value string
	lines bool
}

func (f *textFlag) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.value, "text", "t", "", "text to process (default: read from stdin)")
	cmd.Flags().BoolVarP(&f.lines, "lines", "l", false, "process every input line separately")
}

// read returns --text when given, otherwise stdin without its final line
// break.
func (f *textFlag) read(cmd *cobra.Command) (string, error) {
	if cmd.Flags().Changed("text") {
		return f.value, nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read stdin").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("textx.read")
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
