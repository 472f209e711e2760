// Command ovrview shows a system map overlay in the terminal.
//
// Each terminal cell stands for a block of virtual pixels, so the layout is
// computed exactly as for a bitmap overlay of the same virtual size.
//
// Keys:
//
//	q, Esc  quit
//	r       reload the system file
//	+, -    zoom in and out
//	0       reset zoom
//	a       toggle label anchors
//	c       clear markers
//
// Left click adds a marker, right click removes the nearest one.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/ha1tch/ovr-toolkit/internal/config"
	"github.com/ha1tch/ovr-toolkit/pkg/overlay"
	"github.com/ha1tch/ovr-toolkit/pkg/sysmap"
)

// MessageType controls status bar styling
type MessageType int

const (
	MsgInfo    MessageType = iota // Neutral information
	MsgError                      // Load and layout errors, flash
	MsgSuccess                    // Reloads, flash
)

// Viewer holds all viewer state
type Viewer struct {
	screen   tcell.Screen
	filename string
	cfg      config.Config
	params   overlay.Params
	logger   *log.Logger

	system  *sysmap.System
	pass    *overlay.Pass
	view    overlay.Viewport
	report  overlay.Report
	markers overlay.MarkerSet

	zoom        float64
	showAnchors bool
	selected    int              // object under the last click, -1 = none
	buttons     tcell.ButtonMask // buttons held at the last mouse event

	message           string
	messageType       MessageType
	messageFlashStart int64         // Unix milliseconds
	flashTimers       []*time.Timer // pending redraws for the flash phases
}

func main() {
	configPath := ""
	args := os.Args[1:]
	if len(args) >= 2 && args[0] == "--config" {
		configPath = args[1]
		args = args[2:]
	}
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [--config file] <system>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	params, err := cfg.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the terminal, so logs go to a file when requested.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "ovrview"})
	logger.SetLevel(log.WarnLevel)
	if path := os.Getenv("OVRVIEW_LOG"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true, Prefix: "ovrview"})
		logger.SetLevel(log.DebugLevel)
	}

	v := &Viewer{
		filename:    args[0],
		cfg:         cfg,
		params:      params,
		logger:      logger,
		zoom:        1,
		showAnchors: cfg.Render.ShowAnchors,
		selected:    -1,
	}
	if err := v.loadFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", v.filename, err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.Clear()

	v.screen = screen
	v.relayout()
	v.run()

	screen.Fini()
}

func (v *Viewer) run() {
	defer v.stopFlash()

	for {
		v.draw()
		v.screen.Show()

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.relayout()
		case *tcell.EventKey:
			if v.handleKey(ev) {
				return
			}
		case *tcell.EventMouse:
			v.handleMouse(ev)
		case *tcell.EventInterrupt:
			// Flash tick, just redraw
		}
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			if err := v.loadFile(); err != nil {
				v.showMessage("Reload failed: "+err.Error(), MsgError)
				return false
			}
			v.relayout()
			v.showMessage("Reloaded "+filepath.Base(v.filename), MsgSuccess)
		case '+', '=':
			v.zoom = zoomIn(v.zoom, v.cfg.Viewer.ZoomStep)
			v.relayout()
		case '-', '_':
			v.zoom = zoomOut(v.zoom, v.cfg.Viewer.ZoomStep)
			v.relayout()
		case '0':
			v.zoom = 1
			v.relayout()
		case 'a', 'A':
			v.showAnchors = !v.showAnchors
		case 'c', 'C':
			v.markers.Clear()
			v.showMessage("Markers cleared", MsgInfo)
		}
	}
	return false
}

func (v *Viewer) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	_, h := v.screen.Size()
	// Act on presses only, not on drags or releases
	pressed := ev.Buttons() &^ v.buttons
	v.buttons = ev.Buttons()
	if row >= h-1 {
		return
	}

	world := v.view.ToWorld(v.cellCentre(col, row))

	switch {
	case pressed&tcell.Button1 != 0:
		v.selected = -1
		if v.pass != nil {
			v.selected = v.view.Pick(v.pass.Objects(), world)
		}
		text := ""
		if v.selected >= 0 {
			text = v.pass.Object(v.selected).Name
		}
		id := v.markers.AddPoint(text, world.X, world.Y)
		v.showMessage(fmt.Sprintf("Marker %d at (%.0f, %.0f)", id, world.X, world.Y), MsgInfo)
	case pressed&tcell.Button2 != 0:
		if id, ok := v.markers.Nearest(world); ok {
			v.markers.Remove(id)
			v.showMessage(fmt.Sprintf("Marker %d removed", id), MsgInfo)
		}
	}
}

// cellCentre returns the virtual pixel at the centre of a cell.
func (v *Viewer) cellCentre(col, row int) overlay.Point {
	return overlay.Point{
		X: (float64(col) + 0.5) * v.cfg.Viewer.CellWidth,
		Y: (float64(row) + 0.5) * v.cfg.Viewer.CellHeight,
	}
}

// toCell returns the cell holding a virtual pixel.
func (v *Viewer) toCell(p overlay.Point) (int, int) {
	return cellIndex(p.X, v.cfg.Viewer.CellWidth), cellIndex(p.Y, v.cfg.Viewer.CellHeight)
}

func (v *Viewer) loadFile() error {
	sys, err := sysmap.Load(v.filename)
	if err != nil {
		return err
	}
	v.system = sys
	v.selected = -1
	return nil
}

// relayout runs a new pass for the current terminal size and zoom.
func (v *Viewer) relayout() {
	if v.system == nil || v.screen == nil {
		return
	}
	w, h := v.screen.Size()
	width := float64(w) * v.cfg.Viewer.CellWidth
	height := float64(max(h-1, 1)) * v.cfg.Viewer.CellHeight

	// Zooming in fits the system into a larger virtual overlay.
	sv := v.cfg.SysView()
	sv.Width = width * v.zoom
	sv.Height = height * v.zoom

	m := cellMeasurer{cellWidth: v.cfg.Viewer.CellWidth, cellHeight: v.cfg.Viewer.CellHeight}
	p, vp, err := v.system.Pass(sv, m, v.params)
	if err != nil {
		v.pass = nil
		v.showMessage("Layout failed: "+err.Error(), MsgError)
		return
	}
	p.SetLogger(v.logger)

	vp.Width, vp.Height = width, height
	v.pass = p
	v.view = vp
	v.report = p.Optimize()
	v.logger.Debug("relayout", "cols", w, "rows", h, "zoom", v.zoom,
		"resolution", vp.Resolution, "iterations", v.report.Iterations)
}

func (v *Viewer) showMessage(msg string, msgType MessageType) {
	v.message = msg
	v.messageType = msgType
	v.messageFlashStart = time.Now().UnixMilli()

	v.stopFlash()
	if v.screen == nil {
		return
	}
	// Timers only post events; all viewer state stays on the event loop.
	screen := v.screen
	redraw := func() { screen.PostEvent(tcell.NewEventInterrupt(nil)) }
	redraw()
	if msgType == MsgInfo {
		return
	}
	for _, d := range flashPhases() {
		v.flashTimers = append(v.flashTimers, time.AfterFunc(d, redraw))
	}
}

// stopFlash cancels pending flash redraws.
func (v *Viewer) stopFlash() {
	for _, t := range v.flashTimers {
		t.Stop()
	}
	v.flashTimers = nil
}

const (
	minZoom = 1.0 / 16
	maxZoom = 64.0
)

func zoomIn(z, step float64) float64 {
	if step <= 1 {
		step = 1.25
	}
	return min(z*step, maxZoom)
}

func zoomOut(z, step float64) float64 {
	if step <= 1 {
		step = 1.25
	}
	return max(z/step, minZoom)
}
