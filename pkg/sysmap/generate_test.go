package sysmap

import (
	"math"
	"reflect"
	"testing"
)

func TestGenerateDeterministic(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 1234

	a := Generate(cfg)
	b := Generate(cfg)

	if !reflect.DeepEqual(a, b) {
		t.Error("Same seed should generate the same system")
	}
}

func TestGenerateShape(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 99
	cfg.Planets = 8
	cfg.Jumps = 3

	s := Generate(cfg)

	if err := s.Validate(); err != nil {
		t.Fatalf("Generated system is invalid: %v", err)
	}
	if len(s.Jumps) != 3 {
		t.Errorf("Expected 3 jumps, got %d", len(s.Jumps))
	}
	if len(s.Planets) > 8 {
		t.Errorf("Expected at most 8 planets, got %d", len(s.Planets))
	}

	names := map[string]bool{s.Name: true}
	for _, p := range s.Planets {
		if names[p.Name] {
			t.Errorf("Duplicate name %q", p.Name)
		}
		names[p.Name] = true
		if math.Hypot(p.X, p.Y) > cfg.Extent+1 {
			t.Errorf("Planet %s outside the system extent", p.Name)
		}
	}
	for _, j := range s.Jumps {
		if names[j.Target] {
			t.Errorf("Duplicate name %q", j.Target)
		}
		names[j.Target] = true
	}
}
