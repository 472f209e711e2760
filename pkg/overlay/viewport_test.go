package overlay

import (
	"math"
	"testing"
)

func TestFitResolution(t *testing.T) {
	tests := []struct {
		name             string
		maxX, maxY, w, h float64
		want             float64
	}{
		{"wide system", 1000, 500, 800, 600, 3},
		{"tall system", 100, 1200, 800, 600, 4.8},
		{"empty extent", 0, 0, 800, 600, EmptyResolution},
		{"no viewport", 100, 100, 0, 600, EmptyResolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitResolution(tt.maxX, tt.maxY, tt.w, tt.h)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected %.4f, got %.4f", tt.want, got)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, Resolution: 2.5}
	world := Point{-370, 125}

	s := v.ToScreen(world)
	back := v.ToWorld(s)

	if math.Abs(back.X-world.X) > 1e-9 || math.Abs(back.Y-world.Y) > 1e-9 {
		t.Errorf("Round trip changed %v to %v", world, back)
	}
	// Y grows downward on screen.
	if s.Y >= v.Centre().Y {
		t.Errorf("Positive world Y should be above the centre, got screen Y %.2f", s.Y)
	}
}

func TestViewportFromLayout(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, Resolution: 1}

	got := v.FromLayout(Rect{10, 5, 40, 12})

	want := Rect{410, 283, 40, 12}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestViewportPick(t *testing.T) {
	v := Viewport{Width: 800, Height: 600, Resolution: 1}
	objs := []Object{
		{Kind: KindJump, Pos: Point{0, 0}},
		{Kind: KindPlanet, Pos: Point{100, 0}},
	}

	tests := []struct {
		at   Point
		want int
	}{
		{Point{3, 4}, 0},
		{Point{112, 0}, 1}, // inside the planet radius of 15
		{Point{0, 12}, -1}, // outside the jump radius of 10
		{Point{50, 50}, -1},
	}

	for _, tt := range tests {
		if got := v.Pick(objs, tt.at); got != tt.want {
			t.Errorf("Pick(%v): expected %d, got %d", tt.at, tt.want, got)
		}
	}
}
