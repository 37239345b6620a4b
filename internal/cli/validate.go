package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/internal/journal"
)

// FileResult is the outcome of validating one file.
type FileResult struct {
	Path      string     `json:"path"`
	MessageID string     `json:"message_id,omitempty"`
	Valid     bool       `json:"valid"`
	Issue     *IssueView `json:"issue,omitempty"`
	Warnings  int        `json:"warnings,omitempty"`
}

// ValidationResult holds the results of a validate run.
type ValidationResult struct {
	Files   []FileResult `json:"files"`
	Invalid int          `json:"invalid"`
	RunID   string       `json:"run_id,omitempty"`
}

type validateFlags struct {
	rules        bool
	journal      string
	participants string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var flags validateFlags
	cmd := &cobra.Command{
		Use:   "validate <path>...",
		Short: "Validate message files",
		Long: `Validate ISO 20022 documents and FedNow messages.

Directories are walked for .xml, .json, .yaml and .yml files. Each file is
reported as [Valid] or [Invalid] with the first issue found. With --rules
the business rules of the message type run after structural validation;
--participants adds the FedNow creditor reachability check.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), rootOpts, flags, args, cmd)
		},
	}
	cmd.Flags().BoolVar(&flags.rules, "rules", false, "run business rules after validation")
	cmd.Flags().StringVar(&flags.journal, "journal", "", "record results in this SQLite database")
	cmd.Flags().StringVar(&flags.participants, "participants", "", "FedNow participant file for --rules")
	return cmd
}

func runValidate(ctx context.Context, opts *RootOptions, flags validateFlags, paths []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := opts.log()

	files, err := collectFiles(paths)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return commandError(formatter, ErrCodeNotFound, err)
		}
		return commandError(formatter, ErrCodeScanError, err)
	}
	if len(files) == 0 {
		return commandError(formatter, ErrCodeNoFiles, fmt.Errorf("no message files found in %v", paths))
	}

	if flags.participants != "" {
		file, err := loadParticipants(flags.participants)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return commandError(formatter, ErrCodeNotFound, err)
			}
			return commandError(formatter, ErrCodeBadArgs, err)
		}
		ctx = iso.WithReferenceData(ctx, file)
		log.Debug().Str("participants", flags.participants).Int("profiles", len(file.PtcptPrfl)).Msg("participant file loaded")
	}

	dbPath := flags.journal
	if dbPath == "" {
		dbPath = opts.Config.Journal
	}
	var jr *journal.Journal
	if dbPath != "" {
		if jr, err = journal.Open(dbPath); err != nil {
			return commandError(formatter, ErrCodeJournal, err)
		}
		defer jr.Close()
	}

	var result ValidationResult
	if jr != nil {
		result.RunID = jr.RunID()
	}
	for _, path := range files {
		warnings := 0
		opt := parseOpt(opts, flags.rules, func(is iso.Issue) {
			warnings++
			log.Warn().Str("file", path).Str("path", is.Path).Msg(is.Message)
		})
		l, err := readMessage(ctx, path, opt)
		fr := FileResult{Path: path, MessageID: l.MessageID(), Valid: err == nil, Warnings: warnings}
		if err != nil {
			result.Invalid++
			is, _ := iso.ToIssues(err).First()
			fr.Issue = issueView(is)
			log.Debug().Str("file", path).Str("code", is.Code).Str("path", is.Path).Msg("invalid")
		} else {
			log.Debug().Str("file", path).Str("message", fr.MessageID).Msg("valid")
		}
		result.Files = append(result.Files, fr)

		if jr != nil {
			rec := journal.Result{Path: path, MessageID: fr.MessageID, MsgID: l.MsgID(), Valid: fr.Valid}
			if fr.Issue != nil {
				rec.IssueCode, rec.IssuePath, rec.IssueMsg = fr.Issue.Code, fr.Issue.Path, fr.Issue.Message
			}
			if err := jr.Record(ctx, rec); err != nil {
				return commandError(formatter, ErrCodeJournal, err)
			}
		}
		if !formatter.json() {
			printFileResult(formatter, l, fr)
		}
	}

	if formatter.json() {
		if err := formatter.Success(result); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(formatter.Writer, "%d file(s), %d invalid\n", len(files), result.Invalid)
	}
	if result.Invalid > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d file(s) invalid", result.Invalid, len(files)))
	}
	return nil
}

func printFileResult(f *OutputFormatter, l loaded, fr FileResult) {
	if fr.Valid {
		fmt.Fprintf(f.Writer, "[Valid] %s\n", describePath(l))
		return
	}
	is := iso.Issue{Code: fr.Issue.Code, Path: fr.Issue.Path, Message: fr.Issue.Message}
	fmt.Fprintf(f.Writer, "[Invalid] %s: %s\n", describePath(l), is)
	if f.Verbose && fr.Issue.Hint != "" {
		fmt.Fprintf(f.Writer, "  hint: %s\n", fr.Issue.Hint)
	}
}
