package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"typefuzz/internal/campaign"
	"typefuzz/internal/corpus"
	"typefuzz/internal/gen"
	"typefuzz/internal/observ"
	"typefuzz/internal/report"
	"typefuzz/internal/solver"
	"typefuzz/internal/term"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a fuzzing campaign against a solver backend",
	Long:  `Generate random boolean constraint sets, assert them against the selected solver backend and classify every verdict`,
	Args:  cobra.NoArgs,
	RunE:  runCampaign,
}

func init() {
	runCmd.Flags().Int("tests", 5, "number of test cases")
	runCmd.Flags().Int("constraints", 3, "constraints asserted per test case")
	runCmd.Flags().Int("max-depth", gen.DefaultMaxArithDepth, "arithmetic recursion cap")
	runCmd.Flags().Int("bool-depth", gen.DefaultMaxBoolDepth, "boolean recursion cap")
	runCmd.Flags().Int64("int-min", gen.DefaultIntMin, "integer literal lower bound")
	runCmd.Flags().Int64("int-max", gen.DefaultIntMax, "integer literal upper bound")
	runCmd.Flags().Int64("seed", 0, "random seed (0 = entropy-derived)")
	runCmd.Flags().String("solver", "eval", "solver backend (eval|stub|exec)")
	runCmd.Flags().String("solver-bin", "", "external solver binary for --solver=exec")
	runCmd.Flags().StringArray("solver-arg", nil, "extra argument for the external solver (repeatable)")
	runCmd.Flags().Int("jobs", 1, "parallel campaign shards (0 = GOMAXPROCS)")
	runCmd.Flags().Duration("timeout", 0, "wall-clock limit per satisfiability check (0 = none)")
	runCmd.Flags().String("out", "", "write campaign results to a msgpack file")
	runCmd.Flags().String("ui", "auto", "live progress UI (auto|on|off)")
}

func runCampaign(cmd *cobra.Command, args []string) error {
	cfg, solverCfg, err := resolveCampaignConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	applyColorMode(cmd)

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return fmt.Errorf("failed to get timeout flag: %w", err)
	}

	newSolver, err := solverFactory(solverCfg)
	if err != nil {
		return err
	}

	// Resolve the entropy sentinel here so the report and the corpus carry
	// the seed that actually drove the run.
	if cfg.Seed == 0 {
		cfg.Seed = gen.EntropySeed()
	}

	ctx := cmd.Context()
	backend := wrapTimeout(newSolver, timeout)

	timer := observ.NewTimer()
	var results []campaign.Result
	switch {
	case jobs != 1:
		results, err = campaign.RunShards(ctx, cfg, jobs, backend, nil)
	case shouldUseTUI(mode):
		results, err = runWithUI(ctx, fmt.Sprintf("fuzzing (seed %d)", cfg.Seed), cfg, backend())
	default:
		results, err = campaign.RunTimed(ctx, cfg, backend(), nil, timer)
	}
	if err != nil {
		return err
	}

	report.RenderResults(cmd.OutOrStdout(), results, report.Options{Quiet: quiet})
	report.RenderSummary(cmd.OutOrStdout(), report.Summarize(results))
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "seed: %d\n", cfg.Seed)
	}
	if timings {
		fmt.Fprint(cmd.OutOrStdout(), timer.Summary())
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("failed to get out flag: %w", err)
	}
	if outPath != "" {
		payload, err := corpus.FromResults(cfg, cfg.Seed, results)
		if err != nil {
			return fmt.Errorf("failed to build corpus payload: %w", err)
		}
		if err := corpus.Write(outPath, payload); err != nil {
			return fmt.Errorf("failed to write %s: %w", outPath, err)
		}
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "results written to %s\n", outPath)
		}
	}
	return nil
}

// resolveCampaignConfig layers flag values over typefuzz.toml defaults.
func resolveCampaignConfig(cmd *cobra.Command) (campaign.Config, solverConfig, error) {
	cfg := campaign.DefaultConfig()
	solverCfg := solverConfig{Kind: "eval"}

	manifest, ok, err := loadManifest(".")
	if err != nil {
		return cfg, solverCfg, err
	}
	if ok {
		mc := manifest.Config.Campaign
		if mc.Tests != 0 {
			cfg.Tests = mc.Tests
		}
		if mc.Constraints != 0 {
			cfg.ConstraintsPerTest = mc.Constraints
		}
		if mc.MaxDepth != 0 {
			cfg.MaxDepth = mc.MaxDepth
		}
		if mc.BoolDepth != 0 {
			cfg.MaxBoolDepth = mc.BoolDepth
		}
		if mc.IntMin != 0 || mc.IntMax != 0 {
			cfg.IntMin, cfg.IntMax = mc.IntMin, mc.IntMax
		}
		cfg.Seed = mc.Seed
		if manifest.Config.Solver.Kind != "" {
			solverCfg = manifest.Config.Solver
		}
	}

	flags := cmd.Flags()
	readInt := func(name string, dst *int) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
		return nil
	}
	readInt64 := func(name string, dst *int64) error {
		if !flags.Changed(name) {
			return nil
		}
		v, err := flags.GetInt64(name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
		return nil
	}
	for _, bind := range []error{
		readInt("tests", &cfg.Tests),
		readInt("constraints", &cfg.ConstraintsPerTest),
		readInt("max-depth", &cfg.MaxDepth),
		readInt("bool-depth", &cfg.MaxBoolDepth),
		readInt64("int-min", &cfg.IntMin),
		readInt64("int-max", &cfg.IntMax),
		readInt64("seed", &cfg.Seed),
	} {
		if bind != nil {
			return cfg, solverCfg, bind
		}
	}

	if flags.Changed("solver") {
		solverCfg.Kind, _ = flags.GetString("solver")
	}
	if flags.Changed("solver-bin") {
		solverCfg.Bin, _ = flags.GetString("solver-bin")
	}
	if flags.Changed("solver-arg") {
		solverCfg.Args, _ = flags.GetStringArray("solver-arg")
	}
	return cfg, solverCfg, nil
}

// solverFactory maps a solver selection to a backend constructor. A factory
// rather than an instance: sharded runs need one backend per worker.
func solverFactory(cfg solverConfig) (func() solver.Interface, error) {
	switch cfg.Kind {
	case "eval":
		return func() solver.Interface { return solver.NewEval() }, nil
	case "stub":
		return func() solver.Interface { return solver.NewStub() }, nil
	case "exec":
		if cfg.Bin == "" {
			return nil, fmt.Errorf("--solver=exec requires --solver-bin")
		}
		return func() solver.Interface { return solver.NewExtern(cfg.Bin, cfg.Args...) }, nil
	}
	return nil, fmt.Errorf("unknown solver backend %q (expected eval|stub|exec)", cfg.Kind)
}

// wrapTimeout decorates a backend factory with a per-check deadline.
func wrapTimeout(newSolver func() solver.Interface, timeout time.Duration) func() solver.Interface {
	if timeout <= 0 {
		return newSolver
	}
	return func() solver.Interface {
		return timeoutSolver{inner: newSolver(), timeout: timeout}
	}
}

type timeoutSolver struct {
	inner   solver.Interface
	timeout time.Duration
}

func (s timeoutSolver) Assert(t *term.Term) error { return s.inner.Assert(t) }

func (s timeoutSolver) CheckSat(ctx context.Context) solver.Outcome {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.inner.CheckSat(ctx)
}

func (s timeoutSolver) Reset() { s.inner.Reset() }

func applyColorMode(cmd *cobra.Command) {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	color.NoColor = !useColor
}
