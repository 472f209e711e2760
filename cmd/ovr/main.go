// ovr lays out system map overlays: icon radii and label positions for the
// planets and jump points of a star system.
//
// Usage:
//
//	ovr layout <system>   - Print the computed layout
//	ovr svg <system>      - Render the overlay as SVG
//	ovr png <system>      - Render the overlay as PNG
//	ovr check <system>    - Verify icon and label invariants
//	ovr info <system>     - Summarize a system file
//	ovr gen               - Write a synthetic system
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.ovr/config.yaml, ./configs/ovr.yaml)
//	--width, --height - Overlay size in pixels
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ha1tch/ovr-toolkit/internal/config"
	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
	"github.com/ha1tch/ovr-toolkit/pkg/render"
	"github.com/ha1tch/ovr-toolkit/pkg/sysmap"
)

var (
	// Global flags
	flagConfig  string
	flagVerbose bool
	flagWidth   float64
	flagHeight  float64

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "ovr",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ovr",
	Short: "System map overlay layout",
	Long: `ovr computes the overlay map layout of a star system: icon radii that
never overlap and label positions that avoid icons and other labels.

Examples:
  ovr layout examples/sirius.yaml
  ovr svg examples/sirius.yaml -o sirius.svg
  ovr png examples/sirius.yaml --anchors -o sirius.png
  ovr gen -n 20 --seed 7 -o crowded.yaml
  ovr check crowded.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Float64Var(&flagWidth, "width", 0, "Overlay width in pixels (0 = config)")
	rootCmd.PersistentFlags().Float64Var(&flagHeight, "height", 0, "Overlay height in pixels (0 = config)")

	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(svgCmd)
	rootCmd.AddCommand(pngCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(genCmd)
}

// loadConfig loads the config and applies command-line overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagWidth > 0 {
		cfg.View.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.View.Height = flagHeight
	}
	return cfg, nil
}

// session is a system file laid out with the active config.
type session struct {
	cfg    config.Config
	system *sysmap.System
	pass   *overlay.Pass
	view   overlay.Viewport
	report overlay.Report
}

// runPass loads a system and runs one layout pass over it.
func runPass(path string) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, err
	}

	sys, err := sysmap.Load(path)
	if err != nil {
		return nil, err
	}

	m, err := render.NewFontMeasurer(cfg.Font.Size)
	if err != nil {
		return nil, err
	}

	p, vp, err := sys.Pass(cfg.SysView(), m, params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.SetLogger(logger)

	rep := p.Optimize()
	logger.Debug("layout done", "system", sys.Name, "objects", p.Len(), "resolution", vp.Resolution)
	if !rep.Converged {
		logger.Info("layout did not converge", "system", sys.Name, "iterations", rep.Iterations)
	}

	return &session{cfg: cfg, system: sys, pass: p, view: vp, report: rep}, nil
}
