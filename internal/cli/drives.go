package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tenagusami-ms/exp/internal/platform"
	"github.com/tenagusami-ms/exp/pkg/utils"
)

func newDrivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List Windows drives mounted into WSL",
		Long: `List the Windows drives currently mounted under the WSL mount root.

Each listed drive can be opened with exp, e.g. 'exp /mnt/c/Users'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrives()
		},
	}
}

func runDrives() error {
	ctx := getContext()
	cfg := ctx.Config

	ctx.Logger.Debug("Listing drvfs/9p mounts under %s", cfg.MountRoot)

	drives, err := platform.WindowsDrives(cfg.MountRoot)
	if err != nil {
		return fmt.Errorf("failed to list mounted drives: %w", err)
	}

	if cfg.Quiet {
		for _, d := range drives {
			fmt.Printf("%s: %s\n", strings.ToUpper(d.Letter), d.Mountpoint)
		}
		return nil
	}

	if len(drives) == 0 {
		ctx.Logger.Info("No Windows drives mounted under %s", cfg.MountRoot)
		return nil
	}

	fmt.Println()
	fmt.Println("Mounted Windows Drives")
	fmt.Println()

	colWidths := []int{6, 20, 8, 20}
	headers := []string{"Drive", "Mountpoint", "Type", "Source"}
	utils.PrintTableHeader(colWidths, headers)

	for _, d := range drives {
		source := d.Source
		if source == "" {
			source = "-"
		}
		utils.PrintTableRow(colWidths,
			utils.Green(strings.ToUpper(d.Letter)+":"), d.Mountpoint, d.FSType, source)
	}
	utils.PrintTableFooter(colWidths)

	return nil
}
