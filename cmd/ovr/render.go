package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
	"github.com/ha1tch/ovr-toolkit/pkg/render"
)

var (
	flagOutput  string
	flagTitle   string
	flagAnchors bool
	flagBoxes   bool
	flagMarkers []string
)

var svgCmd = &cobra.Command{
	Use:   "svg <system>",
	Short: "Render the overlay as SVG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0], ".svg")
	},
}

var pngCmd = &cobra.Command{
	Use:   "png <system>",
	Short: "Render the overlay as PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0], ".png")
	},
}

func init() {
	for _, c := range []*cobra.Command{svgCmd, pngCmd} {
		c.Flags().StringVarP(&flagOutput, "output", "o", "", "Output file (default: system name with new extension)")
		c.Flags().StringVarP(&flagTitle, "title", "t", "", "Title (default: system name)")
		c.Flags().BoolVar(&flagAnchors, "anchors", false, "Outline label anchors")
		c.Flags().BoolVar(&flagBoxes, "boxes", false, "Outline label boxes")
		c.Flags().StringArrayVarP(&flagMarkers, "marker", "m", nil, "Add a marker as x,y[,text] in world units")
	}
}

func runRender(input, ext string) error {
	s, err := runPass(input)
	if err != nil {
		return err
	}

	var markers overlay.MarkerSet
	for _, arg := range flagMarkers {
		if err := addMarker(&markers, arg); err != nil {
			return err
		}
	}

	opts := s.cfg.RenderOptions()
	opts.Title = flagTitle
	if opts.Title == "" {
		opts.Title = s.system.Name
	}
	opts.ShowAnchors = opts.ShowAnchors || flagAnchors
	opts.ShowBoxes = opts.ShowBoxes || flagBoxes

	output := flagOutput
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ext
	}

	var data []byte
	switch ext {
	case ".svg":
		data = []byte(render.SVG(s.pass, s.view, markers.All(), opts))
	case ".png":
		var buf bytes.Buffer
		if err := render.PNG(&buf, s.pass, s.view, markers.All(), opts); err != nil {
			return err
		}
		data = buf.Bytes()
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Printf("Written: %s\n", output)
	return nil
}

// addMarker parses "x,y[,text]".
func addMarker(m *overlay.MarkerSet, arg string) error {
	parts := strings.SplitN(arg, ",", 3)
	if len(parts) < 2 {
		return fmt.Errorf("marker %q: expected x,y[,text]", arg)
	}
	var x, y float64
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[0]), "%g", &x); err != nil {
		return fmt.Errorf("marker %q: bad x: %w", arg, err)
	}
	if _, err := fmt.Sscanf(strings.TrimSpace(parts[1]), "%g", &y); err != nil {
		return fmt.Errorf("marker %q: bad y: %w", arg, err)
	}
	text := ""
	if len(parts) == 3 {
		text = parts[2]
	}
	m.AddPoint(text, x, y)
	return nil
}
