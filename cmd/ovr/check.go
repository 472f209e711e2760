package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagTolerance float64

var checkCmd = &cobra.Command{
	Use:   "check <system>",
	Short: "Verify icon and label invariants",
	Long: `Run a layout and verify that no two icons overlap. Label collisions
that remain after relaxation are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Float64Var(&flagTolerance, "tolerance", 1e-6, "Allowed icon overlap in pixels")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := runPass(args[0])
	if err != nil {
		return err
	}

	var errs []string
	var warnings []string

	for _, pair := range s.pass.IconOverlaps(flagTolerance) {
		a, b := s.pass.Object(pair[0]), s.pass.Object(pair[1])
		errs = append(errs, fmt.Sprintf("icons overlap: %s and %s", a.Name, b.Name))
	}

	for i, o := range s.pass.Objects() {
		if !o.Offset.IsFinite() {
			errs = append(errs, fmt.Sprintf("label not placed: %s", o.Name))
			continue
		}
		if r := s.pass.Residual(i).Len(); r > 0 {
			warnings = append(warnings, fmt.Sprintf("label still colliding: %s (residual %.3f)", o.Name, r))
		}
	}

	if a := s.pass.LabelOverlapArea(); a > 0 {
		warnings = append(warnings, fmt.Sprintf("total label overlap: %.1f px²", a))
	}
	if !s.report.Converged {
		warnings = append(warnings, fmt.Sprintf("stopped after %d iterations without converging", s.report.Iterations))
	}

	for _, w := range warnings {
		fmt.Printf("WARNING: %s\n", w)
	}
	for _, e := range errs {
		fmt.Printf("ERROR: %s\n", e)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s: %d error(s)", args[0], len(errs))
	}
	fmt.Printf("%s: OK (%d objects, %d warning(s))\n", s.system.Name, s.pass.Len(), len(warnings))
	return nil
}
