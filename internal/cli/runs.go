package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/reoring/iso20022/internal/journal"
)

// RunView is one journal run in JSON output.
type RunView struct {
	ID      string    `json:"id"`
	Files   int       `json:"files"`
	Invalid int       `json:"invalid"`
	Started time.Time `json:"started"`
}

// NewRunsCommand creates the runs command.
func NewRunsCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List validate runs recorded in a journal",
		Long: `List the validate runs recorded with --journal, most recent first.
With --run the per-file results of one run are printed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	var runID string
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		if dbPath == "" {
			dbPath = rootOpts.Config.Journal
		}
		if dbPath == "" {
			return commandError(formatter, ErrCodeBadArgs, fmt.Errorf("no journal: pass --journal or set journal in the config"))
		}
		jr, err := journal.Open(dbPath)
		if err != nil {
			return commandError(formatter, ErrCodeJournal, err)
		}
		defer jr.Close()

		if runID != "" {
			return printResults(ctx, formatter, jr, runID)
		}
		runs, err := jr.Runs(ctx)
		if err != nil {
			return commandError(formatter, ErrCodeJournal, err)
		}
		if formatter.json() {
			views := make([]RunView, 0, len(runs))
			for _, r := range runs {
				views = append(views, RunView(r))
			}
			return formatter.Success(views)
		}
		for _, r := range runs {
			fmt.Fprintf(formatter.Writer, "%s  %s  %d file(s), %d invalid\n", r.ID, r.Started.Format(time.RFC3339), r.Files, r.Invalid)
		}
		return nil
	}
	cmd.Flags().StringVar(&dbPath, "journal", "", "journal database (default from config)")
	cmd.Flags().StringVar(&runID, "run", "", "print the results of this run")
	return cmd
}

func printResults(ctx context.Context, f *OutputFormatter, jr *journal.Journal, runID string) error {
	results, err := jr.Results(ctx, runID)
	if err != nil {
		return commandError(f, ErrCodeJournal, err)
	}
	files := make([]FileResult, 0, len(results))
	for _, r := range results {
		fr := FileResult{Path: r.Path, MessageID: r.MessageID, Valid: r.Valid}
		if !r.Valid {
			fr.Issue = &IssueView{Code: r.IssueCode, Path: r.IssuePath, Message: r.IssueMsg}
		}
		files = append(files, fr)
	}
	if f.json() {
		return f.Success(files)
	}
	for _, fr := range files {
		if fr.Valid {
			fmt.Fprintf(f.Writer, "[Valid] %s\n", fr.Path)
			continue
		}
		fmt.Fprintf(f.Writer, "[Invalid] %s: %s at %s: %s\n", fr.Path, fr.Issue.Code, fr.Issue.Path, fr.Issue.Message)
	}
	return nil
}
