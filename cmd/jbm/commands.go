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
package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-jbm/hwy"
	"github.com/ajroetker/go-jbm/hwy/contrib/limiter"
	"github.com/ajroetker/go-jbm/hwy/contrib/solve"
)

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch target, vector width and CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "dispatch: %s\n", hwy.CurrentName())
			fmt.Fprintf(out, "width: %d bytes\n", hwy.CurrentWidth())
			fmt.Fprintf(out, "lanes: float32=%d float64=%d\n", hwy.MaxLanes[float32](), hwy.MaxLanes[float64]())
			if hwy.NoSimdEnv() {
				fmt.Fprintf(out, "%s is set\n", hwy.NoSimdEnvVar)
			}

			features := hwy.CPUFeatures()
			names := lo.Keys(features)
			slices.Sort(names)
			enabled := lo.Filter(names, func(name string, _ int) bool { return features[name] })
			fmt.Fprintf(out, "cpu features: %s\n", strings.Join(enabled, " "))
			if opts.verbose {
				disabled := lo.Without(names, enabled...)
				fmt.Fprintf(cmd.ErrOrStderr(), "missing features: %s\n", strings.Join(disabled, " "))
				for _, w := range hwy.Widths {
					f32, f64 := hwy.FixedTag[float32]{Bytes: w}, hwy.FixedTag[float64]{Bytes: w}
					fmt.Fprintf(cmd.ErrOrStderr(), "%7s: float32=%d float64=%d\n", f32.Name(), f32.MaxLanes(), f64.MaxLanes())
				}
			}
			return nil
		},
	}
}

func newEvalCmd(opts *options) *cobra.Command {
	return positional(&cobra.Command{
		Use:   "eval <function> <x>...",
		Short: "Evaluate a function and compare it with the standard library",
		Long: "Evaluate a function through the single-lane path and print the value, " +
			"the standard library value and their distance in ULPs.\n\n" +
			"Functions: " + strings.Join(functionNames(), ", "),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFunction(args[0])
			if err != nil {
				return err
			}
			xs, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, x := range xs {
				got := f.eval(x, opts.precision)
				ref := f.reference(x, opts.precision)
				fmt.Fprintf(out, "%s(%s) = %s\treference %s\t%g ulp\n",
					args[0], opts.format(x), opts.format(got), opts.format(ref), ulpDistance(got, ref, opts.precision))
			}
			return nil
		},
	})
}

func newLimiterCmd(opts *options) *cobra.Command {
	names := lo.Map(limiter.Types(), func(t limiter.Type, _ int) string { return t.String() })
	return positional(&cobra.Command{
		Use:   "limiter <name> <d1> <d2>",
		Short: "Evaluate a flux limiter",
		Long:  "Evaluate a flux limiter on two successive gradients.\n\nLimiters: " + strings.Join(names, ", "),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := limiter.ParseType(args[0])
			if err != nil {
				return err
			}
			d, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			var v float64
			if opts.precision == 32 {
				v = float64(limiter.Eval(t, float32(d[0]), float32(d[1])))
			} else {
				v = limiter.Eval(t, d[0], d[1])
			}
			if opts.verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "limiter %s (tag %d)\n", t.Title(), int(t))
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.format(v))
			return nil
		},
	})
}

func newSolveCmd(opts *options) *cobra.Command {
	var lower, upper float64
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a root of a quadratic or cubic equation inside [lo, hi]",
		Long: "Find a root of a quadratic or cubic equation inside [lo, hi].\n\n" +
			"The bracket flags must precede the coefficients, so negative " +
			"coefficients are not mistaken for flags.",
	}
	solveCmd.PersistentFlags().Float64Var(&lower, "lo", -1e300, "lower end of the bracket")
	solveCmd.PersistentFlags().Float64Var(&upper, "hi", 1e300, "upper end of the bracket")

	run := func(solve64 func(c []float64) float64, solve32 func(c []float32) float32) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := parseFloats(args)
			if err != nil {
				return err
			}
			var root float64
			if opts.precision == 32 {
				c32 := make([]float32, len(c))
				for i, x := range c {
					c32[i] = float32(x)
				}
				root = float64(solve32(c32))
			} else {
				root = solve64(c)
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.format(root))
			return nil
		}
	}

	solveCmd.AddCommand(
		positional(&cobra.Command{
			Use:   "quadratic <a> <b> <c>",
			Short: "Solve a·x² + b·x + c = 0",
			Args:  cobra.ExactArgs(3),
			RunE: run(
				func(c []float64) float64 { return solve.QuadraticScalar(c[0], c[1], c[2], lower, upper) },
				func(c []float32) float32 { return solve.QuadraticScalar(c[0], c[1], c[2], float32(lower), float32(upper)) },
			),
		}),
		positional(&cobra.Command{
			Use:   "cubic <a> <b> <c> <d>",
			Short: "Solve a·x³ + b·x² + c·x + d = 0",
			Args:  cobra.ExactArgs(4),
			RunE: run(
				func(c []float64) float64 { return solve.CubicScalar(c[0], c[1], c[2], c[3], lower, upper) },
				func(c []float32) float32 { return solve.CubicScalar(c[0], c[1], c[2], c[3], float32(lower), float32(upper)) },
			),
		}),
	)
	return solveCmd
}

// positional stops flag parsing at the first argument, so negative numbers
// among the arguments are not read as flags.
func positional(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newIntegrateCmd(opts *options) *cobra.Command {
	return positional(&cobra.Command{
		Use:   "integrate <function> <a> <b>",
		Short: "Integrate a function over [a, b] with the 7-point Gauss rule",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFunction(args[0])
			if err != nil {
				return err
			}
			bounds, err := parseFloats(args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), opts.format(f.integral(bounds[0], bounds[1], opts.precision)))
			return nil
		},
	})
}
