package overlay

import "math"

// shrinkEpsilon keeps the shrink factor strictly below the exact resolving
// ratio so a resolved pair cannot land on the boundary again.
const shrinkEpsilon = 1.1920929e-7

// radiusConflict records a pair of icons that do not fit at their current radii.
type radiusConflict struct {
	i, j int
	dist float64 // pixel distance between the two centres
}

// ResolveRadii shrinks icon radii in place until no two icons overlap,
// with positions converted to pixels through res. Every object involved in
// a violated conflict is scaled by the same factor each round. It returns
// the number of shrink rounds.
func ResolveRadii(objs []Object, res float64, p Params) int {
	var conflicts []radiusConflict
	for i := range objs {
		for j := i + 1; j < len(objs); j++ {
			d := Dist(objs[i].Pos, objs[j].Pos) / res
			if p.Convention == RadiusAsDiameter {
				d *= 2
			}
			if d < objs[i].Radius+objs[j].Radius {
				conflicts = append(conflicts, radiusConflict{i, j, d})
			}
		}
	}

	rounds := 0
	mustShrink := make([]bool, len(objs))
	for len(conflicts) > 0 {
		for i := range mustShrink {
			mustShrink[i] = false
		}

		factor := math.Inf(1)
		if p.Shrink == ShrinkProgressive {
			factor = 0
		}
		kept := conflicts[:0]
		for _, c := range conflicts {
			sum := objs[c.i].Radius + objs[c.j].Radius
			if sum <= 0 {
				continue
			}
			r := c.dist / sum
			if r >= 1 {
				continue
			}
			kept = append(kept, c)
			if p.Shrink == ShrinkProgressive {
				factor = math.Max(factor, r-shrinkEpsilon)
			} else {
				factor = math.Min(factor, r-shrinkEpsilon)
			}
			mustShrink[c.i] = true
			mustShrink[c.j] = true
		}
		conflicts = kept
		if len(conflicts) == 0 {
			break
		}

		// Coincident icons resolve to zero.
		if factor < 0 {
			factor = 0
		}
		for i := range objs {
			if mustShrink[i] {
				objs[i].Radius *= factor
			}
		}
		rounds++
	}
	return rounds
}
