package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ha1tch/ovr-toolkit/pkg/sysmap"
)

var infoCmd = &cobra.Command{
	Use:   "info <system>",
	Short: "Summarize a system file",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	sys, err := sysmap.Load(args[0])
	if err != nil {
		return err
	}

	visible := func(n int, ok func(int) bool) int {
		c := 0
		for i := 0; i < n; i++ {
			if ok(i) {
				c++
			}
		}
		return c
	}

	fmt.Printf("System:  %s\n", sys.Name)
	fmt.Printf("Planets: %d (%d visible)\n", len(sys.Planets),
		visible(len(sys.Planets), func(i int) bool { return sys.Planets[i].IsVisible() }))
	fmt.Printf("Jumps:   %d (%d visible)\n", len(sys.Jumps),
		visible(len(sys.Jumps), func(i int) bool { return sys.Jumps[i].IsVisible() }))

	for _, p := range sys.Planets {
		hidden := ""
		if !p.IsVisible() {
			hidden = " [hidden]"
		}
		fmt.Printf("  planet %-16s (%9.1f, %9.1f) r=%g%s\n", p.Name, p.X, p.Y, p.Radius, hidden)
	}
	for _, j := range sys.Jumps {
		hidden := ""
		if !j.IsVisible() {
			hidden = " [hidden]"
		}
		fmt.Printf("  jump   %-16s (%9.1f, %9.1f)%s\n", j.Target, j.X, j.Y, hidden)
	}
	return nil
}
