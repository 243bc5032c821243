// Package cli implements the command-line interface for exp.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tenagusami-ms/exp/internal/config"
	"github.com/tenagusami-ms/exp/internal/history"
	"github.com/tenagusami-ms/exp/internal/launcher"
	"github.com/tenagusami-ms/exp/internal/logging"
)

type AppContext struct {
	Config   *config.Config
	Logger   *logging.Logger
	History  *history.Store
	Launcher *launcher.Launcher
}

var (
	appCtx      *AppContext
	quiet       bool
	debug       bool
	uncFallback bool
)

func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exp [path]",
		Short: "Open a WSL2 path in Windows Explorer",
		Long: `exp opens a directory or file seen from WSL2 with Windows Explorer,
if it is in the Windows filesystem (under /mnt/<drive>).

If no path is specified, the current directory is opened.`,
		Example: `  exp
  exp /mnt/c/Users
  exp ../docs`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			var err error
			appCtx, err = initContext()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) == 1 {
				arg = args[0]
			}
			return runOpen(arg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Run in quiet mode")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Run in debug mode")
	rootCmd.Flags().BoolVar(&uncFallback, "unc-fallback", false,
		`Open paths outside /mnt/<drive> through the \\wsl$ share`)

	rootCmd.AddCommand(
		newVersionCmd(version, commit, date),
		newCompletionCmd(),
		newDrivesCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

func initContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.SetQuiet(quiet)
	cfg.SetDebug(debug)
	cfg.SetUNCFallback(uncFallback)

	logger := logging.New(cfg.Quiet, cfg.Debug)

	store, err := history.New(cfg.HistoryFile, cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize history: %w", err)
	}

	return &AppContext{
		Config:   cfg,
		Logger:   logger,
		History:  store,
		Launcher: launcher.New(cfg.ExplorerPath, logger),
	}, nil
}

func getContext() *AppContext { return appCtx }

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("exp version %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
