// Copyright 2015 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/fracindex/pkg/build"
	"github.com/cockroachdb/fracindex/pkg/cli/clierror"
	"github.com/cockroachdb/fracindex/pkg/cli/exit"
	"github.com/cockroachdb/fracindex/pkg/fracindex"
	"github.com/cockroachdb/fracindex/pkg/util/log"
	"github.com/cockroachdb/logtags"
	"github.com/spf13/cobra"
)

// Proxy to allow overrides in tests.
var stderr io.Writer = os.Stderr

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Long: `
Output build version information.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := build.GetInfo()
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		fmt.Fprintf(tw, "Build Tag:\t%s\n", info.Tag)
		fmt.Fprintf(tw, "Build Time:\t%s\n", info.Time)
		fmt.Fprintf(tw, "Revision:\t%s\n", info.Revision)
		fmt.Fprintf(tw, "Platform:\t%s\n", info.Platform)
		fmt.Fprintf(tw, "Go Version:\t%s\n", info.GoVersion)
		if info.Type != "" {
			fmt.Fprintf(tw, "Build Type:\t%s\n", info.Type)
		}
		return tw.Flush()
	},
}

var fracindexCmd = &cobra.Command{
	Use:   "fracindex [command] (flags)",
	Short: "generate and inspect fractional index keys",
	Long: `
Generate, inspect and convert fractional index keys: byte strings that
sort in list order and admit a new key between any two neighbors.
`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	cobra.EnableCommandSorting = false

	fracindexCmd.AddCommand(
		inspectCmd,
		beforeCmd,
		afterCmd,
		betweenCmd,
		convertCmd,
		sequenceCmd,
		rankCmd,
		growthCmd,
		versionCmd,
	)
	fracindexCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
	AddPersistentPreRunE(fracindexCmd, func(cmd *cobra.Command, _ []string) error {
		log.SetVerbosity(int32(cliCtx.verbosity))
		log.SetRedactable(cliCtx.logRedactable)
		log.SetNoColor(cliCtx.noColor)
		log.VEventf(cmdContext(cmd), 2, "%s", build.GetInfo().Short())
		return nil
	})
}

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

// Main is the entry point for the fracindex binary.
func Main() {
	exit.WithCode(doMain(context.Background(), os.Args[1:]))
}

func doMain(ctx context.Context, args []string) exit.Code {
	if err := Run(ctx, args); err != nil {
		reportError(stderr, err)
		if log.V(1) {
			_ = clierror.CheckAndMaybeLog(err, log.Logf)
		}
		return exitCodeFor(err)
	}
	return exit.Success()
}

// Run executes the command line given by args.
func Run(ctx context.Context, args []string) error {
	fracindexCmd.SetArgs(args)
	return fracindexCmd.ExecuteContext(ctx)
}

// exitCodeFor maps an error to the process exit code. Key decoding and
// generation failures that carry no explicit code exit with InvalidKey.
func exitCodeFor(err error) exit.Code {
	code := clierror.ExitCodeOf(err, exit.UnspecifiedError())
	if code != exit.UnspecifiedError() {
		return code
	}
	if errors.IsAny(err, fracindex.ErrFormat, fracindex.ErrBounds, fracindex.ErrOverflow) {
		return exit.InvalidKey()
	}
	return code
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "ERROR: %v\n", err)
	for _, h := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "HINT: %s\n", h)
	}
}

// cmdContext returns the context of cmd annotated with the command name.
func cmdContext(cmd *cobra.Command) context.Context {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return logtags.AddTag(ctx, "cmd", cmd.Name())
}

// flagError marks err as a command-line usage error.
func flagError(err error) error {
	return clierror.NewError(err, exit.CommandLineFlagError())
}

// checkArgs wraps a positional argument validator so that its failures exit
// with the command-line flag error code.
func checkArgs(validator cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validator(cmd, args); err != nil {
			return flagError(err)
		}
		return nil
	}
}
