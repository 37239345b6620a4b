package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	iso "github.com/reoring/iso20022"
)

// ConvertResult is reported when convert writes to a file.
type ConvertResult struct {
	Input     string `json:"input"`
	Output    string `json:"output"`
	MessageID string `json:"message_id,omitempty"`
	Format    string `json:"format"`
}

func (r ConvertResult) String() string {
	return fmt.Sprintf("%s -> %s (%s, %s)", r.Input, r.Output, r.MessageID, r.Format)
}

type convertFlags struct {
	to    string
	out   string
	rules bool
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var flags convertFlags
	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Convert a message between XML, JSON and YAML",
		Long: `Parse and validate a message, then write it in another format.

The input format follows the file extension or the content. The converted
message goes to stdout unless --out names a file. Invalid messages are not
converted.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), rootOpts, flags, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&flags.to, "to", "json", "output format (xml|json|yaml)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&flags.rules, "rules", false, "run business rules before converting")
	return cmd
}

func runConvert(ctx context.Context, opts *RootOptions, flags convertFlags, path string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	to, ok := iso.ParseFormat(flags.to)
	if !ok || to == iso.FormatAuto {
		return commandError(formatter, ErrCodeBadArgs, fmt.Errorf("invalid --to %q: must be xml, json or yaml", flags.to))
	}

	log := opts.log()
	l, err := readMessage(ctx, path, parseOpt(opts, flags.rules, func(is iso.Issue) {
		log.Warn().Str("file", path).Str("path", is.Path).Msg(is.Message)
	}))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return commandError(formatter, ErrCodeNotFound, err)
		}
		is, _ := iso.ToIssues(err).First()
		if formatter.json() {
			_ = formatter.encode(CLIResponse{Status: "error", Error: &CLIError{Code: ErrCodeInvalid, Message: is.String(), Path: path, Details: issueView(is)}})
		} else {
			fmt.Fprintf(formatter.Writer, "[Invalid] %s: %s\n", describePath(l), is)
		}
		return WrapExitError(ExitFailure, "convert "+path, err)
	}

	var buf bytes.Buffer
	if err := l.encode(&buf, to); err != nil {
		return commandError(formatter, ErrCodeGeneric, err)
	}
	if flags.out == "" {
		_, err := formatter.Writer.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(flags.out, buf.Bytes(), 0o644); err != nil {
		return commandError(formatter, ErrCodeWriteFailed, err)
	}
	log.Debug().Str("file", path).Str("out", flags.out).Msg("converted")
	return formatter.Success(ConvertResult{Input: path, Output: flags.out, MessageID: l.MessageID(), Format: to.String()})
}
