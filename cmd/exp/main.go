// Package main is the entry point for the exp CLI.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tenagusami-ms/exp/internal/cli"
	"github.com/tenagusami-ms/exp/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A user interrupt exits non-zero without a message.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-interrupt
		os.Exit(1)
	}()

	rootCmd := cli.NewRootCommand(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		// If it's a PathError with help text, print that too
		if pathErr, ok := err.(*types.PathError); ok && pathErr.Help != "" {
			fmt.Fprintf(os.Stderr, "\n%s\n", pathErr.Help)
		}

		os.Exit(1)
	}
}
