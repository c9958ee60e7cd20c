package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xtding233/protocol-playground/internal/config"
	"github.com/xtding233/protocol-playground/internal/dice"
	"github.com/xtding233/protocol-playground/internal/logging"
	"github.com/xtding233/protocol-playground/internal/playground"
)

const (
	cfgConfigDir = "config-dir"
	cfgProfile   = "profile"
	cfgSeed      = "seed"
	cfgSides     = "sides"
	cfgRolls     = "rolls"
	cfgTrials    = "trials"
	cfgLogLevel  = "log-level"
)

// env is what every subcommand needs once flags and files are resolved.
type env struct {
	params config.Params
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "playground",
		Short:         "Roll a seeded die and walk through the interface examples",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e env) error {
				return playground.Run(cmd.OutOrStdout(), e.params)
			})
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String(cfgConfigDir, "config", "directory holding default.yaml and profiles/")
	pf.String(cfgProfile, "", "profile overlaid on default.yaml")
	pf.Float64(cfgSeed, 0, "generator seed, 0 <= seed < m")
	pf.Int(cfgSides, 0, "die sides (>= 1)")
	pf.Int(cfgRolls, 0, "rolls printed by the demo")
	pf.Int(cfgTrials, 0, "rolls used by stats")
	pf.String(cfgLogLevel, "", "debug, info, warn or error")

	rootCmd.AddCommand(newRollCmd(), newStatsCmd())
	return rootCmd
}

func newRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll [NdM ...]",
		Short: "Roll dice in NdM notation (default: one die with --sides)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd, func(e env) error {
				specs := []dice.Spec{{Sides: e.params.Sides, Count: 1}}
				if len(args) > 0 {
					specs = specs[:0]
					for _, a := range args {
						s, err := dice.ParseSpec(a)
						if err != nil {
							return err
						}
						specs = append(specs, s)
					}
				}
				gen, err := e.params.NewGenerator()
				if err != nil {
					return err
				}
				res, err := dice.RollSpecs(gen, specs)
				if err != nil {
					return err
				}
				out := &errWriter{w: cmd.OutOrStdout()}
				for i, r := range res.Rolls {
					fmt.Fprintf(out, "%s: %v = %d\n", specs[i], r.Results, r.Total)
				}
				fmt.Fprintf(out, "total: %d\n", res.Total)
				e.logger.Debug("rolled", zap.Stringers("specs", specs), zap.Int("total", res.Total))
				return out.err
			})
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Roll --trials times and print the face distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withEnv(cmd, func(e env) error {
				gen, err := e.params.NewGenerator()
				if err != nil {
					return err
				}
				d, err := dice.NewDie(e.params.Sides, gen)
				if err != nil {
					return err
				}
				st, err := dice.Simulate(d, e.params.Trials)
				if err != nil {
					return err
				}

				out := &errWriter{w: cmd.OutOrStdout()}
				table := tablewriter.NewWriter(out)
				table.SetHeader([]string{"Face", "Count", "Frequency"})
				for face, c := range st.Counts {
					table.Append([]string{
						strconv.Itoa(face + 1),
						strconv.Itoa(c),
						strconv.FormatFloat(st.Frequency(face+1), 'f', 4, 64),
					})
				}
				table.Render()
				fmt.Fprintf(out, "trials=%d mean=%.4f stddev=%.4f p50=%g p90=%g p99=%g\n",
					st.Trials, st.Mean, st.StdDev, st.P50, st.P90, st.P99)
				fmt.Fprintf(out, "chi2=%.4f p=%.4f\n", st.ChiSquare, st.PValue)
				return out.err
			})
		},
	}
}

// withEnv loads config files, applies changed flags, builds the logger and runs fn.
func withEnv(cmd *cobra.Command, fn func(env) error) error {
	flags := cmd.Flags()
	dir, _ := flags.GetString(cfgConfigDir)
	profile, _ := flags.GetString(cfgProfile)

	var o config.Overrides
	if flags.Changed(cfgSeed) {
		v, _ := flags.GetFloat64(cfgSeed)
		o.Seed = &v
	}
	if flags.Changed(cfgSides) {
		v, _ := flags.GetInt(cfgSides)
		o.Sides = &v
	}
	if flags.Changed(cfgRolls) {
		v, _ := flags.GetInt(cfgRolls)
		o.Rolls = &v
	}
	if flags.Changed(cfgTrials) {
		v, _ := flags.GetInt(cfgTrials)
		o.Trials = &v
	}
	if flags.Changed(cfgLogLevel) {
		v, _ := flags.GetString(cfgLogLevel)
		o.LogLevel = &v
	}

	// files may set the level, so start from the flag alone
	bootLevel := config.DefaultLogLevel
	if o.LogLevel != nil {
		bootLevel = *o.LogLevel
	}
	boot, err := logging.New(bootLevel)
	if err != nil {
		return reportErr(cmd, logging.Nop(), err)
	}
	raw, err := config.NewLoader(dir, boot).LoadMerged(profile)
	if err != nil {
		return reportErr(cmd, boot, err)
	}
	params, err := config.Resolve(raw, o)
	if err != nil {
		return reportErr(cmd, boot, err)
	}
	logger := boot
	if params.LogLevel != bootLevel {
		if logger, err = logging.New(params.LogLevel); err != nil {
			return reportErr(cmd, boot, err)
		}
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("config resolved",
		zap.String("command", cmd.Name()),
		zap.String("dir", dir),
		zap.String("profile", profile),
		zap.String("version", params.Version),
		zap.Float64("seed", params.Seed),
		zap.Int("sides", params.Sides),
	)
	if err := fn(env{params: params, logger: logger}); err != nil {
		return reportErr(cmd, logger, err)
	}
	return nil
}

// reportErr prints err once on the command's error stream. The log record
// stays at debug so a failing run does not print the same error twice.
func reportErr(cmd *cobra.Command, logger *zap.Logger, err error) error {
	logger.Debug("command failed", zap.String("command", cmd.Name()), zap.Error(err))
	fmt.Fprintln(cmd.ErrOrStderr(), "error:", err)
	return err
}

// errWriter keeps the first write error; later writes are dropped.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
