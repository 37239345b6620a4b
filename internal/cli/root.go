// Package cli implements the iso20022 command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/iso20022/i18n"
	"github.com/reoring/iso20022/internal/config"
	"github.com/reoring/iso20022/internal/logging"
	"github.com/reoring/iso20022/sample"
)

// RootOptions holds global flags and the settings loaded before any
// subcommand runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Lang       string

	// Config is loaded by the root command. Subcommands built on their own
	// (as in tests) see the zero value.
	Config config.Config
	Logger *zerolog.Logger

	sampleOpts []sample.Option
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

func (o *RootOptions) log() *zerolog.Logger {
	if o.Logger == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return o.Logger
}

// NewRootCommand creates the root command of the iso20022 CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "iso20022",
		Short: "Validate and convert ISO 20022 and FedNow messages",
		Long: `Validate and convert ISO 20022 messages (pacs, admi) and FedNow
envelopes between XML, JSON and YAML.

Settings are read from iso20022.toml (or --config) and ISO20022_*
environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "config", err)
			}
			if opts.Lang != "" {
				cfg.Language = opts.Lang
			}
			if opts.Verbose {
				cfg.LogLevel = "debug"
			}
			opts.Config = cfg
			i18n.SetLanguage(cfg.Language)
			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, "iso20022")
			opts.Logger = &logger
			logger.Debug().Str("config", opts.ConfigPath).Str("lang", cfg.Language).Msg("settings loaded")
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default "+config.DefaultPath+" when present)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "language of issue messages (en|ja)")

	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDescribeCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewSampleCommand(opts))
	cmd.AddCommand(NewRunsCommand(opts))

	return cmd
}
