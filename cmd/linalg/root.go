// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// shortestPrecision asks strconv for the shortest round-trip form.
const shortestPrecision = -1

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose   bool
	precision int
	pretty    bool
}

func bindGlobalFlags(fs *pflag.FlagSet, o *globalOptions) {
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	fs.IntVar(&o.precision, "precision", shortestPrecision, "significant digits in output (-1 = shortest exact form)")
	fs.BoolVar(&o.pretty, "pretty", false, "align matrix columns")
}

// Execute builds the command tree and runs it with args.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(os.Stdout)

	return root.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "linalg",
		Short:         "Dense matrix and vector calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.InfoLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Debug().Str("cmd", cmd.Name()).Int("precision", opts.precision).Bool("pretty", opts.pretty).Msg("linalg starting")
		},
	}
	bindGlobalFlags(root.PersistentFlags(), opts)

	root.AddCommand(
		invertCmd(opts),
		mulCmd(opts),
		mulTransposedCmd(opts),
		xtxCmd(opts),
		outerCmd(opts),
		scaleCmd(opts),
		normCmd(opts),
		distCmd(opts),
	)

	return root
}
