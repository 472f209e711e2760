package main

import (
	"math"

	"github.com/mattn/go-runewidth"
)

// cellMeasurer measures labels in virtual pixels. Wide runes take two cells.
type cellMeasurer struct {
	cellWidth  float64
	cellHeight float64
}

func (m cellMeasurer) Width(s string) float64 {
	return float64(runewidth.StringWidth(s)) * m.cellWidth
}

func (m cellMeasurer) Height() float64 {
	return m.cellHeight
}

// cellIndex returns the cell holding virtual coordinate v.
func cellIndex(v, cell float64) int {
	return int(math.Floor(v / cell))
}
