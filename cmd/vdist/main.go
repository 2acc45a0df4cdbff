// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vdist evaluates and samples the distribution catalog from the
// command line.
//
// Evaluation points and parameters are comma-separated vectors and
// recycle against each other, so
//
//	vdist density lomax -x 1,2,3 -p lambda=1 -p kappa=2
//	vdist sample gumbel -n 1000 -p mu=0 -p sigma=1 --summary
//
// print a density vector and a sample summary respectively. Missing
// values may be written as NA. The mixture distribution (mixnorm)
// takes its per-component parameters as single rows.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/aclements/go-vecdist/dist"
)

// ops is the uniform operation surface the subcommands drive. inv is
// nil for the mixture, which has no closed-form quantile.
type ops struct {
	pdf func(xs []float64, logProb bool) ([]float64, error)
	cdf func(xs []float64, lowerTail, logProb bool) ([]float64, error)
	inv func(ps []float64, lowerTail, logProb bool) ([]float64, error)
	rnd func(n int, src rand.Source) ([]float64, error)
}

type entry struct {
	params []string
	make   func(p map[string][]float64) ops
}

func catalog() map[string]entry {
	return map[string]entry{
		"lomax": {[]string{"lambda", "kappa"}, func(p map[string][]float64) ops {
			d := dist.LomaxDist{Lambda: p["lambda"], Kappa: p["kappa"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"dweibull": {[]string{"q", "beta"}, func(p map[string][]float64) ops {
			d := dist.DiscreteWeibullDist{Q: p["q"], Beta: p["beta"]}
			return vecOps(d.PMF, d.CDF, d.InvCDF, d.Rand)
		}},
		"power": {[]string{"alpha", "beta"}, func(p map[string][]float64) ops {
			d := dist.PowerDist{Alpha: p["alpha"], Beta: p["beta"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"dunif": {[]string{"min", "max"}, func(p map[string][]float64) ops {
			d := dist.DiscreteUniformDist{Min: p["min"], Max: p["max"]}
			return vecOps(d.PMF, d.CDF, d.InvCDF, d.Rand)
		}},
		"tnorm": {[]string{"mu", "sigma", "a", "b"}, func(p map[string][]float64) ops {
			d := dist.TruncNormalDist{Mu: p["mu"], Sigma: p["sigma"], A: p["a"], B: p["b"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"kumar": {[]string{"a", "b"}, func(p map[string][]float64) ops {
			d := dist.KumaraswamyDist{A: p["a"], B: p["b"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"gumbel": {[]string{"mu", "sigma"}, func(p map[string][]float64) ops {
			d := dist.GumbelDist{Mu: p["mu"], Sigma: p["sigma"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"gompertz": {[]string{"a", "b"}, func(p map[string][]float64) ops {
			d := dist.GompertzDist{A: p["a"], B: p["b"]}
			return vecOps(d.PDF, d.CDF, d.InvCDF, d.Rand)
		}},
		"mixnorm": {[]string{"mu", "sigma", "alpha"}, func(p map[string][]float64) ops {
			d := dist.NormalMixtureDist{
				Mu:    [][]float64{p["mu"]},
				Sigma: [][]float64{p["sigma"]},
				Alpha: [][]float64{p["alpha"]},
			}
			return ops{pdf: d.PDF, cdf: d.CDF, rnd: d.Rand}
		}},
	}
}

// vecOps adapts the error-free vector operations shared by every
// non-mixture distribution.
func vecOps(
	pdf func([]float64, bool) []float64,
	cdf func([]float64, bool, bool) []float64,
	inv func([]float64, bool, bool) []float64,
	rnd func(int, rand.Source) []float64,
) ops {
	return ops{
		pdf: func(xs []float64, logProb bool) ([]float64, error) { return pdf(xs, logProb), nil },
		cdf: func(xs []float64, lo, lg bool) ([]float64, error) { return cdf(xs, lo, lg), nil },
		inv: func(ps []float64, lo, lg bool) ([]float64, error) { return inv(ps, lo, lg), nil },
		rnd: func(n int, src rand.Source) ([]float64, error) { return rnd(n, src), nil },
	}
}

var (
	flagParams  []string
	flagX       string
	flagLog     bool
	flagUpper   bool
	flagN       int
	flagSeed    uint64
	flagSummary bool
)

func main() {
	root := &cobra.Command{
		Use:           "vdist",
		Short:         "evaluate and sample closed-form distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringArrayVarP(&flagParams, "param", "p", nil,
		"distribution parameter as name=v1,v2,... (repeatable)")

	eval := func(use, short string, f func(o ops, xs []float64) ([]float64, error)) *cobra.Command {
		cmd := &cobra.Command{
			Use:   use + " <dist>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				o, err := lookup(args[0])
				if err != nil {
					return err
				}
				xs, err := parseVector(flagX)
				if err != nil {
					return errors.Wrap(err, "bad -x")
				}
				out, err := f(o, xs)
				if err != nil {
					return err
				}
				printVector(out)
				return nil
			},
		}
		cmd.Flags().StringVarP(&flagX, "x", "x", "", "evaluation points v1,v2,...")
		cmd.Flags().BoolVar(&flagLog, "log", false, "log scale")
		cmd.MarkFlagRequired("x")
		return cmd
	}

	density := eval("density", "evaluate the density or mass function",
		func(o ops, xs []float64) ([]float64, error) { return o.pdf(xs, flagLog) })

	prob := eval("prob", "evaluate the cumulative distribution function",
		func(o ops, xs []float64) ([]float64, error) { return o.cdf(xs, !flagUpper, flagLog) })
	prob.Flags().BoolVar(&flagUpper, "upper", false, "upper-tail probabilities")

	quantile := eval("quantile", "evaluate the quantile function",
		func(o ops, xs []float64) ([]float64, error) {
			if o.inv == nil {
				return nil, errors.New("no closed-form quantile for this distribution")
			}
			return o.inv(xs, !flagUpper, flagLog)
		})
	quantile.Flags().BoolVar(&flagUpper, "upper", false, "upper-tail probabilities")

	sample := &cobra.Command{
		Use:   "sample <dist>",
		Short: "draw random variates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := lookup(args[0])
			if err != nil {
				return err
			}
			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(flagSeed, flagSeed)
			}
			xs, err := o.rnd(flagN, src)
			if err != nil {
				return err
			}
			if flagSummary {
				printSummary(xs)
				return nil
			}
			printVector(xs)
			return nil
		},
	}
	sample.Flags().IntVarP(&flagN, "n", "n", 1, "number of variates")
	sample.Flags().Uint64Var(&flagSeed, "seed", 0, "deterministic seed")
	sample.Flags().BoolVar(&flagSummary, "summary", false, "print summary statistics instead of variates")

	root.AddCommand(density, prob, quantile, sample)

	logger := buildLogger()
	defer logger.Sync()
	dist.SetLogger(logger)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vdist:", err)
		os.Exit(1)
	}
}

func buildLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := cfg.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "vdist:", err)
		os.Exit(1)
	}
	return logger
}

// lookup resolves a catalog name and binds the -p flags to the
// distribution's parameter vectors.
func lookup(name string) (ops, error) {
	e, found := catalog()[name]
	if !found {
		names := make([]string, 0, len(catalog()))
		for n := range catalog() {
			names = append(names, n)
		}
		sort.Strings(names)
		return ops{}, errors.Errorf("unknown distribution %q (have %s)", name, strings.Join(names, ", "))
	}
	given, err := parseParams(flagParams)
	if err != nil {
		return ops{}, err
	}
	for _, p := range e.params {
		if len(given[p]) == 0 {
			return ops{}, errors.Errorf("%s requires -p %s=...", name, p)
		}
	}
	for p := range given {
		valid := false
		for _, want := range e.params {
			valid = valid || p == want
		}
		if !valid {
			return ops{}, errors.Errorf("%s does not take parameter %q", name, p)
		}
	}
	return e.make(given), nil
}

func parseParams(specs []string) (map[string][]float64, error) {
	out := make(map[string][]float64)
	for _, s := range specs {
		name, vals, found := strings.Cut(s, "=")
		if !found {
			return nil, errors.Errorf("bad parameter %q, want name=v1,v2,...", s)
		}
		v, err := parseVector(vals)
		if err != nil {
			return nil, errors.Wrapf(err, "bad parameter %q", name)
		}
		out[name] = v
	}
	return out, nil
}

func parseVector(s string) ([]float64, error) {
	if s == "" {
		return nil, errors.New("empty vector")
	}
	fields := strings.Split(s, ",")
	out := make([]float64, len(fields))
	for i, f := range fields {
		f = strings.TrimSpace(f)
		if f == "NA" {
			out[i] = dist.NA
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, errors.Errorf("bad value %q", f)
		}
		out[i] = v
	}
	return out, nil
}

func printVector(xs []float64) {
	for _, x := range xs {
		if dist.IsNA(x) {
			fmt.Println("NA")
			continue
		}
		fmt.Println(strconv.FormatFloat(x, 'g', -1, 64))
	}
}

func printSummary(xs []float64) {
	if len(xs) == 0 {
		fmt.Println("N 0")
		return
	}
	fmt.Printf("N %d  mean %.6g  std dev %.6g  min %.6g  max %.6g\n",
		len(xs), stat.Mean(xs, nil), stat.StdDev(xs, nil),
		floats.Min(xs), floats.Max(xs))
}
