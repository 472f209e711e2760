package overlay

import "math"

const (
	// EmptyResolution is used when nothing in the system can size the map.
	EmptyResolution = 50.0
	// fitMargin leaves room around the outermost object.
	fitMargin = 1.2
)

// FitResolution returns the world units per pixel that fit an extent of
// maxX by maxY (absolute world coordinates around the origin) into a
// width by height overlay.
func FitResolution(maxX, maxY, width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return EmptyResolution
	}
	res := 2 * fitMargin * math.Max(maxX/width, maxY/height)
	if !(res > 0) || math.IsInf(res, 0) {
		return EmptyResolution
	}
	return res
}

// Viewport maps between world coordinates and absolute overlay pixels.
// Pixel coordinates have their origin top-left with Y growing downward.
type Viewport struct {
	Width, Height float64
	Resolution    float64
}

// Centre returns the overlay centre in pixels.
func (v Viewport) Centre() Point {
	return Point{v.Width / 2, v.Height / 2}
}

// ToScreen converts a world position to overlay pixels.
func (v Viewport) ToScreen(world Point) Point {
	c := v.Centre()
	return Point{c.X + world.X/v.Resolution, c.Y - world.Y/v.Resolution}
}

// ToWorld converts overlay pixels to a world position.
func (v Viewport) ToWorld(screen Point) Point {
	c := v.Centre()
	return Point{(screen.X - c.X) * v.Resolution, (c.Y - screen.Y) * v.Resolution}
}

// FromLayout converts a layout rectangle (relative to the centre, Y up) to
// an absolute pixel rectangle whose X, Y is the top-left corner.
func (v Viewport) FromLayout(r Rect) Rect {
	c := v.Centre()
	return Rect{c.X + r.X, c.Y - r.Top(), r.W, r.H}
}

// ClickRadius returns the world distance within which a click selects an
// object of the given kind.
func (v Viewport) ClickRadius(k Kind) float64 {
	if k == KindPlanet {
		return 15 * v.Resolution
	}
	return 10 * v.Resolution
}

// Pick returns the index of the object closest to the world position within
// its click radius, or -1.
func (v Viewport) Pick(objs []Object, world Point) int {
	best := -1
	bestDist := math.Inf(1)
	for i, o := range objs {
		d := Dist(o.Pos, world)
		if d <= v.ClickRadius(o.Kind) && d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
