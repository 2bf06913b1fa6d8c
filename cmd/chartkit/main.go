package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartkit/internal/cli"
	"github.com/matzehuels/chartkit/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode reports err on stderr and maps it to a process exit status.
func exitCode(err error) int {
	if stderrors.Is(err, context.Canceled) {
		return 130 // SIGINT
	}
	fmt.Fprintln(os.Stderr, err)
	switch errors.GetCode(err) {
	case errors.ErrCodeTimeout:
		return 124
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidTheme,
		errors.ErrCodeInvalidPath, errors.ErrCodeInvalidElementID, errors.ErrCodeFileNotFound:
		return 2
	default:
		return 1
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// the level must be set before the root hook registers the log hooks
	preRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if preRun != nil {
			return preRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}
