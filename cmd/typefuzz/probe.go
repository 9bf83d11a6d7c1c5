package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"typefuzz/internal/probe"
	"typefuzz/internal/report"
	"typefuzz/internal/solver"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Run the curated solver stress catalogue",
	Long:  `Feed the fixed catalogue of edge-case constraint sets (overflow, deep nesting, volume, ill-typed terms) to the selected backend and report every verdict`,
	Args:  cobra.NoArgs,
	RunE:  runProbes,
}

func init() {
	probeCmd.Flags().String("solver", "eval", "solver backend (eval|stub|exec)")
	probeCmd.Flags().String("solver-bin", "", "external solver binary for --solver=exec")
	probeCmd.Flags().StringArray("solver-arg", nil, "extra argument for the external solver (repeatable)")
	probeCmd.Flags().String("category", "", "restrict to one category (overflow|nesting|volume|types)")
	probeCmd.Flags().Bool("bug-reports", false, "draft a markdown bug report per error finding")
}

func runProbes(cmd *cobra.Command, args []string) error {
	applyColorMode(cmd)

	solverCfg := solverConfig{Kind: "eval"}
	if v, _ := cmd.Flags().GetString("solver"); v != "" {
		solverCfg.Kind = v
	}
	solverCfg.Bin, _ = cmd.Flags().GetString("solver-bin")
	solverCfg.Args, _ = cmd.Flags().GetStringArray("solver-arg")

	newSolver, err := solverFactory(solverCfg)
	if err != nil {
		return err
	}

	probes := probe.Catalog()
	if cat, _ := cmd.Flags().GetString("category"); cat != "" {
		filtered := probes[:0]
		for _, p := range probes {
			if string(p.Category) == cat {
				filtered = append(filtered, p)
			}
		}
		if len(filtered) == 0 {
			return fmt.Errorf("no probes in category %q", cat)
		}
		probes = filtered
	}

	findings := probe.Run(cmd.Context(), newSolver(), probes)
	report.RenderFindings(cmd.OutOrStdout(), findings)

	if drafts, _ := cmd.Flags().GetBool("bug-reports"); drafts {
		for _, f := range findings {
			if f.Outcome.Status != solver.StatusError {
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout())
			report.WriteBugReport(cmd.OutOrStdout(), solverCfg.Kind, f)
		}
	}
	return nil
}
