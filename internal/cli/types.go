package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	iso "github.com/reoring/iso20022"
)

// TypeInfo describes a registered message type.
type TypeInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Root      string `json:"root"`
	Namespace string `json:"namespace"`
	Rules     bool   `json:"rules"`
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "types",
		Short:         "List the registered message types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			var infos []TypeInfo
			for _, mt := range iso.Types() {
				infos = append(infos, TypeInfo{ID: mt.ID, Name: mt.Name, Root: mt.Root, Namespace: mt.Namespace(), Rules: mt.Rules != nil})
			}
			if formatter.json() {
				return formatter.Success(infos)
			}
			return printTypes(formatter.Writer, infos)
		},
	}
}

func printTypes(w io.Writer, infos []TypeInfo) error {
	if _, err := fmt.Fprintf(w, "%-16s %-38s %-18s %s\n", "ID", "NAME", "ROOT", "RULES"); err != nil {
		return err
	}
	for _, ti := range infos {
		rules := "-"
		if ti.Rules {
			rules = "yes"
		}
		if _, err := fmt.Fprintf(w, "%-16s %-38s %-18s %s\n", ti.ID, ti.Name, ti.Root, rules); err != nil {
			return err
		}
	}
	return nil
}
