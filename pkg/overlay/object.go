package overlay

import "math"

// Kind identifies what an overlay object represents.
type Kind int

const (
	KindPlanet Kind = iota
	KindJump
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindPlanet:
		return "planet"
	case KindJump:
		return "jump"
	}
	return "other"
}

// Object is one point of interest on the overlay map.
type Object struct {
	Name string
	Kind Kind

	Pos       Point   // World position, fixed for the pass
	Radius    float64 // Icon radius in pixels, only ever shrunk
	Label     string
	TextWidth float64 // Rendered label width in pixels

	Offset Point // Label lower-left corner relative to the icon centre, pixels
	Anchor Point // Home offset the label is pulled back toward
	Slot   Slot  // Slot chosen by the initial placement
}

// unplaced marks a label that has not been positioned yet.
// Such labels never collide with anything.
var unplaced = Point{math.Inf(1), math.Inf(1)}
