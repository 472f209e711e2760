package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/ovr-toolkit/internal/config"
	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
)

func TestFlashInverted(t *testing.T) {
	tests := []struct {
		elapsed int64
		want    bool
	}{
		{-1, false},
		{0, false},
		{124, false},
		{125, true},
		{249, true},
		{250, false},
		{375, true},
		{499, true},
		{500, false},
		{1000, false},
	}
	for _, tt := range tests {
		if got := flashInverted(tt.elapsed); got != tt.want {
			t.Errorf("flashInverted(%d) = %v, want %v", tt.elapsed, got, tt.want)
		}
	}
}

func TestCellMeasurer(t *testing.T) {
	m := cellMeasurer{cellWidth: 8, cellHeight: 16}
	tests := []struct {
		text string
		want float64
	}{
		{"", 0},
		{"Sol", 24},
		{"+ Home", 48},
		{"地球", 32}, // wide runes take two cells
	}
	for _, tt := range tests {
		if got := m.Width(tt.text); got != tt.want {
			t.Errorf("Width(%q) = %g, want %g", tt.text, got, tt.want)
		}
	}
	if m.Height() != 16 {
		t.Errorf("Height() = %g, want 16", m.Height())
	}
}

func TestCellIndex(t *testing.T) {
	tests := []struct {
		v, cell float64
		want    int
	}{
		{0, 8, 0},
		{7.9, 8, 0},
		{8, 8, 1},
		{-0.1, 8, -1},
		{33, 16, 2},
	}
	for _, tt := range tests {
		if got := cellIndex(tt.v, tt.cell); got != tt.want {
			t.Errorf("cellIndex(%g, %g) = %d, want %d", tt.v, tt.cell, got, tt.want)
		}
	}
}

func TestCellRoundTrip(t *testing.T) {
	v := &Viewer{cfg: config.Default()}
	v.cfg.Viewer.CellWidth = 8
	v.cfg.Viewer.CellHeight = 16
	v.view = overlay.Viewport{Width: 800, Height: 400, Resolution: 10}

	for _, c := range [][2]int{{0, 0}, {50, 12}, {99, 24}} {
		world := v.view.ToWorld(v.cellCentre(c[0], c[1]))
		col, row := v.toCell(v.view.ToScreen(world))
		if col != c[0] || row != c[1] {
			t.Errorf("cell %v round trip = (%d, %d)", c, col, row)
		}
	}
}

func TestZoom(t *testing.T) {
	if got := zoomIn(1, 2); got != 2 {
		t.Errorf("zoomIn(1, 2) = %g, want 2", got)
	}
	if got := zoomOut(1, 2); got != 0.5 {
		t.Errorf("zoomOut(1, 2) = %g, want 0.5", got)
	}
	if got := zoomIn(1, 0); got != 1.25 {
		t.Errorf("zoomIn with no step = %g, want 1.25", got)
	}
	if got := zoomIn(maxZoom, 2); got != maxZoom {
		t.Errorf("zoomIn past limit = %g, want %g", got, maxZoom)
	}
	if got := zoomOut(minZoom, 2); got != minZoom {
		t.Errorf("zoomOut past limit = %g, want %g", got, minZoom)
	}
}

func TestIconExtentFollowsConvention(t *testing.T) {
	tests := []struct {
		conv overlay.RadiusConvention
		want float64
	}{
		{overlay.RadiusTrue, 20},
		{overlay.RadiusAsDiameter, 10},
	}
	for _, tt := range tests {
		params := overlay.DefaultParams()
		params.Convention = tt.conv
		p, err := overlay.NewPass([]overlay.Object{{Name: "Sol", Radius: 20}}, 1, params)
		if err != nil {
			t.Fatalf("NewPass: %v", err)
		}
		v := &Viewer{pass: p}
		if got := v.iconExtent(p.Object(0)); got != tt.want {
			t.Errorf("%s: icon extent %g, want %g", tt.conv, got, tt.want)
		}
	}
}

func TestFlashPhases(t *testing.T) {
	want := []time.Duration{125 * time.Millisecond, 250 * time.Millisecond, 375 * time.Millisecond, 500 * time.Millisecond}
	got := flashPhases()
	if len(got) != len(want) {
		t.Fatalf("Expected %d phases, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Phase %d: got %v, want %v", i, got[i], want[i])
		}
		// Each phase boundary must flip the inverted state.
		ms := want[i].Milliseconds()
		if flashInverted(ms-1) == flashInverted(ms) {
			t.Errorf("No phase change at %dms", ms)
		}
	}
}

func TestShowMessageSchedulesFlash(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	v := &Viewer{screen: screen}

	v.showMessage("Marker 1 removed", MsgInfo)
	if len(v.flashTimers) != 0 {
		t.Errorf("Info messages should not flash, got %d timers", len(v.flashTimers))
	}

	v.showMessage("Reload failed", MsgError)
	if len(v.flashTimers) != 4 {
		t.Errorf("Expected 4 flash timers, got %d", len(v.flashTimers))
	}

	// A new message replaces the pending flash.
	v.showMessage("Reloaded", MsgSuccess)
	if len(v.flashTimers) != 4 {
		t.Errorf("Expected 4 flash timers after replacing, got %d", len(v.flashTimers))
	}

	v.stopFlash()
	if len(v.flashTimers) != 0 {
		t.Errorf("stopFlash left %d timers", len(v.flashTimers))
	}
}
