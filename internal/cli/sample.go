package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/fednow"
	"github.com/reoring/iso20022/sample"
)

// SampleResult lists the files written by sample --out.
type SampleResult struct {
	Files []string `json:"files"`
}

func (r SampleResult) String() string {
	return fmt.Sprintf("wrote %d file(s)", len(r.Files))
}

type sampleFlags struct {
	from         string
	count        int
	transactions int
	fednow       bool
	to           string
	out          string
}

// NewSampleCommand creates the sample command.
func NewSampleCommand(rootOpts *RootOptions) *cobra.Command {
	var flags sampleFlags
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Generate valid pacs.008 credit transfers",
		Long: `Generate pacs.008.001.08 customer credit transfers that pass validation
and the business rules. Parties and amounts come from the [sample] table of
the config file, or from a YAML/JSON file given with --from.

With --fednow each message is wrapped in a FedNowIncoming envelope.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(rootOpts, flags, cmd)
		},
	}
	cmd.Flags().StringVar(&flags.from, "from", "", "sample settings file (YAML or JSON)")
	cmd.Flags().IntVarP(&flags.count, "count", "n", 1, "number of messages")
	cmd.Flags().IntVar(&flags.transactions, "transactions", 0, "transactions per message (default from settings)")
	cmd.Flags().BoolVar(&flags.fednow, "fednow", false, "wrap in a FedNowIncoming envelope")
	cmd.Flags().StringVar(&flags.to, "to", "xml", "output format (xml|json|yaml)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "output directory (required for --count > 1)")
	return cmd
}

func runSample(opts *RootOptions, flags sampleFlags, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	to, ok := iso.ParseFormat(flags.to)
	if !ok || to == iso.FormatAuto {
		return commandError(formatter, ErrCodeBadArgs, fmt.Errorf("invalid --to %q: must be xml, json or yaml", flags.to))
	}
	if flags.count < 1 {
		return commandError(formatter, ErrCodeBadArgs, fmt.Errorf("invalid --count %d", flags.count))
	}
	if flags.count > 1 && flags.out == "" {
		return commandError(formatter, ErrCodeBadArgs, fmt.Errorf("--count %d needs --out", flags.count))
	}

	cfg := opts.Config.Sample
	if flags.from != "" {
		var err error
		if cfg, err = sample.LoadConfig(flags.from); err != nil {
			return commandError(formatter, ErrCodeBadArgs, err)
		}
	}
	if flags.transactions > 0 {
		cfg.Transactions = flags.transactions
	}
	gen, err := sample.New(cfg, opts.sampleOpts...)
	if err != nil {
		return commandError(formatter, ErrCodeBadArgs, err)
	}

	var result SampleResult
	for i := 1; i <= flags.count; i++ {
		var buf bytes.Buffer
		if err := writeSample(&buf, gen, flags.fednow, to); err != nil {
			return commandError(formatter, ErrCodeGeneric, err)
		}
		if flags.out == "" {
			_, err := formatter.Writer.Write(buf.Bytes())
			return err
		}
		if err := os.MkdirAll(flags.out, 0o755); err != nil {
			return commandError(formatter, ErrCodeWriteFailed, err)
		}
		name := filepath.Join(flags.out, fmt.Sprintf("sample-%03d.%s", i, to))
		if err := os.WriteFile(name, buf.Bytes(), 0o644); err != nil {
			return commandError(formatter, ErrCodeWriteFailed, err)
		}
		opts.log().Debug().Str("file", name).Msg("sample written")
		result.Files = append(result.Files, name)
	}
	return formatter.Success(result)
}

func writeSample(buf *bytes.Buffer, gen *sample.Generator, wrap bool, to iso.Format) error {
	if wrap {
		m, err := gen.FedNow()
		if err != nil {
			return err
		}
		return fednow.Encode(buf, m, to)
	}
	doc, err := gen.Document()
	if err != nil {
		return err
	}
	return iso.Encode(buf, doc, to)
}
