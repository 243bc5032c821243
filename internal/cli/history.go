package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenagusami-ms/exp/pkg/utils"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		clear bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently opened paths",
		Example: `  exp history
  exp history --limit 20
  exp history --clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit, clear)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "Number of history entries to show")
	cmd.Flags().BoolVar(&clear, "clear", false, "Clear the history")
	return cmd
}

func runHistory(limit int, clear bool) error {
	ctx := getContext()
	log := ctx.Logger

	if clear {
		if err := ctx.History.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		log.Success("History cleared")
		return nil
	}

	entries, err := ctx.History.Recent(limit)
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	if ctx.Config.Quiet {
		for _, entry := range entries {
			fmt.Printf("%s\t%s\n", entry.Path, entry.WindowsPath)
		}
		return nil
	}

	if len(entries) == 0 {
		log.Info("No opened paths recorded yet")
		return nil
	}

	fmt.Println()
	fmt.Println("Recently Opened Paths")
	fmt.Println()

	colWidths := []int{20, 36, 36}
	headers := []string{"Opened At", "Path", "Windows Path"}
	utils.PrintTableHeader(colWidths, headers)

	for _, entry := range entries {
		ts := entry.OpenedAt
		if len(ts) > 19 {
			ts = ts[:19]
		}
		utils.PrintTableRow(colWidths, ts, entry.Path, entry.WindowsPath)
	}
	utils.PrintTableFooter(colWidths)

	return nil
}
