package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	iso "github.com/reoring/iso20022"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <message-id>",
		Short: "Print the JSON Schema of a message type",
		Long: `Print the JSON Schema (draft 2020-12) of the JSON form of a registered
message type, including the facets of every simple type.`,
		Example:       "  iso20022 describe pacs.008.001.08",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			mt, ok := iso.LookupType(strings.TrimSpace(args[0]))
			if !ok {
				return commandError(formatter, ErrCodeUnknownType, fmt.Errorf("message type %q is not registered", args[0]))
			}
			s, err := iso.DocumentSchema(mt)
			if err != nil {
				return commandError(formatter, ErrCodeGeneric, err)
			}
			if formatter.json() {
				return formatter.Success(s)
			}
			b, err := iso.CurrentJSONDriver().MarshalIndent(s, "", "  ")
			if err != nil {
				return commandError(formatter, ErrCodeGeneric, err)
			}
			_, err = fmt.Fprintln(formatter.Writer, string(b))
			return err
		},
	}
}
