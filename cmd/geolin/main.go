// SPDX-License-Identifier: MIT

// Package main provides the geolin CLI: vector norms, geometric products,
// complex arithmetic and locale-aware re-formatting from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	geolinearmath "github.com/JochCool/GeoLinearMath"
	"github.com/JochCool/GeoLinearMath/config"
	"github.com/JochCool/GeoLinearMath/locale"
)

var version = "0.1.0"

// globalFlags are shared by every subcommand.
type globalFlags struct {
	locale  string
	profile string
	scalar  string
	checked bool
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "geolin",
		Short: "geolin - vectors and complex numbers over any scalar",
		Long: `geolin evaluates 2D/3D vector and complex-number expressions.

Values are written the way the selected locale writes them:
  (1.5, 2)      vector, invariant locale
  (1,5; 2)      vector, de-DE
  3 + 4i        complex number

Scalars: float64, int64, int32, decimal.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				geolinearmath.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.locale, "locale", getEnvStr("GEOLIN_LOCALE", ""), "Locale for input and output (BCP 47 or POSIX name; default from LC_ALL/LC_NUMERIC/LANG)")
	pf.StringVar(&g.profile, "profile", getEnvStr("GEOLIN_PROFILE", ""), "YAML layout profile")
	pf.StringVar(&g.scalar, "scalar", getEnvStr("GEOLIN_SCALAR", "float64"), "Scalar type: float64, int64, int32, decimal")
	pf.BoolVar(&g.checked, "checked", false, "Report overflow instead of wrapping")
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "geolin v%s\n", version)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "norm <vector>",
		Short: "Print squared, Euclidean and taxicab magnitude of a 2D or 3D vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine()
			if err != nil {
				return err
			}
			return e.norm(cmd.OutOrStdout(), args[0])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "product <a> <b>",
		Short: "Print the geometric product a·b of two 2D vectors as a complex number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine()
			if err != nil {
				return err
			}
			return e.product(cmd.OutOrStdout(), args[0], args[1])
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:       "complex <add|sub|mul|quo> <a> <b>",
		Short:     "Combine two complex numbers",
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"add", "sub", "mul", "quo"},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine()
			if err != nil {
				return err
			}
			return e.complexOp(cmd.OutOrStdout(), args[0], args[1], args[2])
		},
	})

	var from string
	reformatCmd := &cobra.Command{
		Use:   "reformat <value>",
		Short: "Re-write a vector or complex number from one locale into another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.engine()
			if err != nil {
				return err
			}
			src, err := locale.Parse(from)
			if err != nil {
				return err
			}
			return e.reformat(cmd.OutOrStdout(), args[0], src)
		},
	}
	reformatCmd.Flags().StringVar(&from, "from", "C", "Locale the input is written in")
	rootCmd.AddCommand(reformatCmd)

	return rootCmd
}

// provider builds the output/input provider from --profile and --locale.
// Without either the locale comes from the environment.
func (g *globalFlags) provider() (locale.Provider, error) {
	p := &config.Profile{Locale: config.SystemLocale}
	if g.profile != "" {
		loaded, err := config.LoadFromFile(g.profile)
		if err != nil {
			return nil, err
		}
		p = loaded
	}
	if g.locale != "" {
		p.Locale = g.locale
	}
	return p.Provider()
}

func (g *globalFlags) engine() (runner, error) {
	p, err := g.provider()
	if err != nil {
		return nil, err
	}
	return newRunner(g.scalar, p, g.checked)
}

func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
