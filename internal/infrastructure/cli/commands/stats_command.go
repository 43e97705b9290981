package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/kneto/nlcmd/internal/app"
	"github.com/kneto/nlcmd/internal/domain"
)

const msgNoHistoryRecorded = "No command history yet."

// NewStatsCommand reports usage statistics folded from the history log.
func NewStatsCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show usage statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStats(cmd.OutOrStdout(), container)
		},
	}
}

func showStats(out io.Writer, container *app.Container) error {
	usage, records, err := container.StatsService.Usage()
	if err != nil {
		return err
	}
	if usage.Attempts == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}

	fmt.Fprintln(out, "Command statistics:")
	fmt.Fprintf(out, "  Attempts:    %s\n", humanize.Comma(int64(usage.Attempts)))
	fmt.Fprintf(out, "  Matched:     %s\n", humanize.Comma(int64(usage.Matches)))
	fmt.Fprintf(out, "  No match:    %s\n", humanize.Comma(int64(usage.NoMatches)))
	fmt.Fprintf(out, "  Executed:    %s\n", humanize.Comma(int64(usage.Executed)))
	fmt.Fprintf(out, "  Failed:      %s\n", humanize.Comma(int64(usage.Failed)))
	fmt.Fprintf(out, "  Dry runs:    %s\n", humanize.Comma(int64(usage.DryRun)))
	fmt.Fprintf(out, "  Cancelled:   %s\n", humanize.Comma(int64(usage.Skipped)))
	fmt.Fprintf(out, "  Safe:        %s\n", humanize.Comma(int64(usage.Safe)))
	fmt.Fprintf(out, "  Destructive: %s\n", humanize.Comma(int64(usage.Destructive)))

	if len(usage.PerCategory) > 0 {
		fmt.Fprintln(out, "By category:")
		for _, category := range domain.Categories() {
			if count := usage.PerCategory[category]; count > 0 {
				fmt.Fprintf(out, "  %-12s %d\n", category, count)
			}
		}
	}

	if len(usage.TopPatterns) > 0 {
		fmt.Fprintln(out, "Most used patterns:")
		for _, pattern := range usage.TopPatterns {
			fmt.Fprintf(out, "  %s (%d)\n", pattern.Description, pattern.Count)
		}
	}

	// records come back newest first
	if len(records) > 0 {
		fmt.Fprintf(out, "Last attempt: %s\n", humanize.Time(records[0].Timestamp))
	}
	return nil
}
