package sysmap

import (
	"math"
	"math/rand"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig controls synthetic system generation.
type GenConfig struct {
	Seed       int64   // 0 picks a random seed
	Planets    int     // number of planets
	Jumps      int     // number of jump points
	Extent     float64 // system radius in world units
	Clustering float64 // noise frequency across the system; higher gives more, smaller clusters
}

// DefaultGenConfig returns a mid-sized system.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Planets:    12,
		Jumps:      4,
		Extent:     15000,
		Clustering: 3,
	}
}

var syllables = []string{
	"al", "be", "cor", "dra", "el", "fa", "gan", "hel", "ix", "ju",
	"ka", "lor", "mi", "nex", "or", "pa", "qua", "ros", "sa", "tor",
	"ul", "ve", "win", "xa", "yr", "zen",
}

// Generate builds a synthetic system. Planets are scattered with a density
// taken from simplex noise so they bunch into clusters, which is where label
// layout gets hard. The same non-zero seed always gives the same system.
func Generate(cfg GenConfig) *System {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	if cfg.Extent <= 0 {
		cfg.Extent = DefaultGenConfig().Extent
	}
	if cfg.Clustering <= 0 {
		cfg.Clustering = DefaultGenConfig().Clustering
	}

	rng := rand.New(rand.NewSource(seed))
	density := opensimplex.NewNormalized(seed)
	used := make(map[string]bool)

	s := &System{Name: uniqueName(rng, used, 2)}

	for attempts := 0; len(s.Planets) < cfg.Planets && attempts < cfg.Planets*500; attempts++ {
		x := (rng.Float64()*2 - 1) * cfg.Extent
		y := (rng.Float64()*2 - 1) * cfg.Extent
		if math.Hypot(x, y) > cfg.Extent {
			continue
		}
		d := density.Eval2(x/cfg.Extent*cfg.Clustering, y/cfg.Extent*cfg.Clustering)
		if rng.Float64() > d*d {
			continue
		}
		s.Planets = append(s.Planets, Planet{
			Name:   uniqueName(rng, used, 2+rng.Intn(2)),
			X:      math.Round(x),
			Y:      math.Round(y),
			Radius: math.Round(80 + rng.Float64()*320),
		})
	}

	for i := 0; i < cfg.Jumps; i++ {
		angle := 2*math.Pi*float64(i)/float64(cfg.Jumps) + (rng.Float64()-0.5)*0.5
		dist := cfg.Extent * (1 + rng.Float64()*0.1)
		s.Jumps = append(s.Jumps, Jump{
			Target:      uniqueName(rng, used, 2),
			X:           math.Round(math.Cos(angle) * dist),
			Y:           math.Round(math.Sin(angle) * dist),
			TargetKnown: Bool(rng.Float64() > 0.25),
		})
	}

	return s
}

// uniqueName builds a capitalized name from n syllables that has not been used yet.
func uniqueName(rng *rand.Rand, used map[string]bool, n int) string {
	for {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString(syllables[rng.Intn(len(syllables))])
		}
		name := strings.ToUpper(sb.String()[:1]) + sb.String()[1:]
		if !used[name] {
			used[name] = true
			return name
		}
		n++
	}
}
