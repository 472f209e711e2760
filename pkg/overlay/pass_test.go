package overlay

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewPassRejectsBadResolution(t *testing.T) {
	for _, res := range []float64{0, -1, math.Inf(1), math.NaN()} {
		_, err := NewPass(nil, res, DefaultParams())
		if !errors.Is(err, ErrBadResolution) {
			t.Errorf("Resolution %g: expected ErrBadResolution, got %v", res, err)
		}
	}
}

func TestNewPassCopiesObjects(t *testing.T) {
	objs := []Object{{Name: "Alpha", Radius: 10}}
	p, err := NewPass(objs, 1, DefaultParams())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	objs[0].Radius = 99

	if p.Object(0).Radius != 10 {
		t.Errorf("Pass should own a copy, got radius %.1f", p.Object(0).Radius)
	}
}

func TestOptimizeEmpty(t *testing.T) {
	p, err := NewPass(nil, EmptyResolution, DefaultParams())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	rep := p.Optimize()

	if !rep.Converged || rep.Iterations != 0 {
		t.Errorf("Empty pass should be a converged no-op, got %+v", rep)
	}
}

func TestOptimizeSingleObject(t *testing.T) {
	params := DefaultParams()
	p, err := NewPass([]Object{{Name: "Solo", Radius: 10, TextWidth: 40}}, 1, params)
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	rep := p.Optimize()
	o := p.Object(0)

	if o.Slot != SlotRight {
		t.Errorf("Expected right slot, got %s", o.Slot)
	}
	// gap = radius + 1.5*pixbuf = 17.5, vertically centred on the icon
	want := Point{17.5, -params.LabelHeight / 2}
	if o.Offset != want || o.Anchor != want {
		t.Errorf("Expected offset and anchor %v, got %v / %v", want, o.Offset, o.Anchor)
	}
	if !rep.Converged || rep.Iterations != 1 {
		t.Errorf("Expected convergence on the first sweep, got %+v", rep)
	}
	if rep.Moves != 0 || rep.Corrections != 0 || rep.Reanchors != 0 {
		t.Errorf("Expected no adjustments, got %+v", rep)
	}
}

// twoNeighbours returns two icons close enough that their labels must go on
// opposite sides.
func twoNeighbours() []Object {
	return []Object{
		{Name: "West", Pos: Point{0, 0}, Radius: 10, TextWidth: 40},
		{Name: "East", Pos: Point{60, 0}, Radius: 10, TextWidth: 40},
	}
}

func TestOptimizeLabelsAlternateSides(t *testing.T) {
	p, err := NewPass(twoNeighbours(), 1, DefaultParams())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	rep := p.Optimize()

	if got := p.Object(0).Slot; got != SlotLeft {
		t.Errorf("West label expected on the left, got %s", got)
	}
	if got := p.Object(1).Slot; got != SlotRight {
		t.Errorf("East label expected on the right, got %s", got)
	}
	if !rep.Converged {
		t.Errorf("Expected convergence, got %+v", rep)
	}
	for i := 0; i < p.Len(); i++ {
		if r := p.Residual(i); r != (Point{}) {
			t.Errorf("Object %d should have no residual push, got %v", i, r)
		}
	}
}

func TestPlaceInitialPrefersCentre(t *testing.T) {
	tests := []struct {
		pos  Point
		want Slot
	}{
		{Point{500, 0}, SlotLeft},
		{Point{-500, 0}, SlotRight},
		{Point{0, 400}, SlotBelow},
		{Point{0, -400}, SlotAbove},
	}

	for _, tt := range tests {
		p, err := NewPass([]Object{{Name: "Lone", Pos: tt.pos, Radius: 10, TextWidth: 40}}, 1, DefaultParams())
		if err != nil {
			t.Fatalf("NewPass: %v", err)
		}
		p.Optimize()
		if got := p.Object(0).Slot; got != tt.want {
			t.Errorf("Object at %v: expected %s slot, got %s", tt.pos, tt.want, got)
		}
	}
}

func TestRelaxConvergedIsIdempotent(t *testing.T) {
	p, err := NewPass(twoNeighbours(), 1, DefaultParams())
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}
	if rep := p.Optimize(); !rep.Converged {
		t.Fatalf("Setup did not converge: %+v", rep)
	}
	before := p.Objects()

	rep := p.Relax()

	if !rep.Converged || rep.Iterations != 1 || rep.Moves != 0 || rep.Corrections != 0 {
		t.Errorf("Expected an immediate fixed point, got %+v", rep)
	}
	for i, o := range p.Objects() {
		if o.Offset != before[i].Offset || o.Anchor != before[i].Anchor {
			t.Errorf("Object %d moved: %v -> %v", i, before[i].Offset, o.Offset)
		}
	}
}

func TestOptimizeTerminates(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	objs := make([]Object, 40)
	for i := range objs {
		objs[i] = Object{
			Pos:       Point{rng.Float64()*1000 - 500, rng.Float64()*1000 - 500},
			Radius:    15 + rng.Float64()*25,
			TextWidth: 30 + rng.Float64()*60,
		}
	}
	params := DefaultParams()
	p, err := NewPass(objs, 5, params)
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	rep := p.Optimize()

	if rep.Iterations > params.MaxIters {
		t.Errorf("Ran %d iterations, cap is %d", rep.Iterations, params.MaxIters)
	}
	if overlaps := p.IconOverlaps(1e-9); len(overlaps) != 0 {
		t.Errorf("Icons overlap after the pass: %v", overlaps)
	}
	for i, o := range p.Objects() {
		if !o.Offset.IsFinite() || !o.Anchor.IsFinite() {
			t.Errorf("Object %d has a non-finite layout: offset %v anchor %v", i, o.Offset, o.Anchor)
		}
		if o.Radius > objs[i].Radius {
			t.Errorf("Object %d radius grew from %.3f to %.3f", i, objs[i].Radius, o.Radius)
		}
	}
}

func TestOptimizeZeroIterations(t *testing.T) {
	params := DefaultParams()
	params.MaxIters = 0
	p, err := NewPass(twoNeighbours(), 1, params)
	if err != nil {
		t.Fatalf("NewPass: %v", err)
	}

	rep := p.Optimize()

	if rep.Iterations != 0 || rep.Converged {
		t.Errorf("Expected no relaxation sweeps, got %+v", rep)
	}
	// Initial placement still happens.
	if p.Object(0).Slot != SlotLeft {
		t.Errorf("Expected initial placement to run, got slot %s", p.Object(0).Slot)
	}
}
