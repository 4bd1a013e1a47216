// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Command jbm evaluates the kernel functions from the command line and
// compares them with the standard library.
//
// Usage:
//
//	jbm info
//	jbm eval exp 0.5 1 2
//	jbm eval --precision 32 erfc 3
//	jbm limiter superbee 1 2
//	jbm solve quadratic 1 0 -4 --lo -10 --hi 10
//	jbm solve cubic 1 -6 11 -6 --lo 0 --hi 4
//	jbm integrate sin 0 3.141592653589793
//
// The persistent --width flag forces a vector width in bytes and
// --verbose adds the dispatch target and lane counts to the output.
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-jbm/hwy"
)

type options struct {
	precision int
	width     int
	verbose   bool
}

var errBadFlag = errors.New("invalid flag value")

func newRootCmd() *cobra.Command {
	opts := &options{}
	var restore func()

	root := &cobra.Command{
		Use:           "jbm",
		Short:         "Evaluate vectorized elementary functions, solvers and limiters",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.precision != 32 && opts.precision != 64 {
				return fmt.Errorf("%w: --precision must be 32 or 64, got %d", errBadFlag, opts.precision)
			}
			if opts.width != 0 {
				if !lo.Contains(hwy.Widths, opts.width) {
					return fmt.Errorf("%w: --width must be one of %v, got %d", errBadFlag, hwy.Widths, opts.width)
				}
				restore = hwy.ForceWidth(opts.width)
			}
			if opts.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "dispatch %s, width %d bytes, float%d\n",
					hwy.CurrentName(), hwy.CurrentWidth(), opts.precision)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if restore != nil {
				restore()
				restore = nil
			}
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&opts.precision, "precision", 64, "floating-point precision in bits (32 or 64)")
	flags.IntVar(&opts.width, "width", 0, "force the vector width in bytes (0 keeps the detected width)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print dispatch and lane diagnostics")

	root.AddCommand(
		newInfoCmd(opts),
		newEvalCmd(opts),
		newLimiterCmd(opts),
		newSolveCmd(opts),
		newIntegrateCmd(opts),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFloats parses every argument as a float64.
func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = x
	}
	return out, nil
}

// format prints x with the shortest representation that round-trips at the
// selected precision.
func (o *options) format(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, o.precision)
}
