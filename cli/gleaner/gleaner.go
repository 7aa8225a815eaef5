package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/gleaner/internal/cli"
	gleanererrors "github.com/glorpus-work/gleaner/pkg/errors"
)

var (
	configPath string
	verbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(exitCode(err))
	}

	cancel()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gleaner",
		Short: "A dated-granule archive harvester",
		Long: `gleaner harvests dated data granules from remote archives:
- resolve a harvest date range from partial inputs
- fetch each granule into a date-partitioned local tree
- validate downloads and optionally mirror them to S3`,
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose

	// Add subcommands
	cmd.AddCommand(
		cli.NewHarvestCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}

// exitCode maps range and config errors to distinct exit codes so cron
// wrappers can tell an operator mistake from a transient failure.
func exitCode(err error) int {
	switch {
	case errors.Is(err, gleanererrors.ErrFutureStart):
		return 1
	case errors.Is(err, gleanererrors.ErrEndBeforeStart):
		return 2
	case errors.Is(err, gleanererrors.ErrInvalidDayCount):
		return 3
	case errors.Is(err, gleanererrors.ErrOverconstrained):
		return 4
	case errors.Is(err, gleanererrors.ErrConfigMissing):
		return 5
	default:
		return 1
	}
}
