// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fmtdump tokenizes C-family source files and prints their chunk
// lists, optionally after swapping lines. It is a debugging aid for
// formatting passes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	swap    []int
	verbose bool
	jobs    int
	check   bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)

	cmd := &cobra.Command{
		Use:   "fmtdump [flags] pattern...",
		Short: "Dump the chunk lists of C-family source files",
		Long: `fmtdump tokenizes each file matching the given patterns and prints its
chunk list, one chunk per line.

Patterns may use ** to match any number of directories, e.g. "src/**/*.c".
With --swap a,b the logical lines that started on lines a and b are
swapped before dumping; several pairs may be given.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), logger, opts, args, cmd.OutOrStdout())
			if err != nil {
				logger.Error("fmtdump failed", zap.Error(err))
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.IntSliceVar(&opts.swap, "swap", nil, "swap the logical lines starting on lines `a,b` (repeatable)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every mutation")
	flags.IntVarP(&opts.jobs, "jobs", "j", 4, "number of files to process concurrently")
	flags.BoolVar(&opts.check, "check", false, "warn about chunks that are out of source order")
	return cmd
}
