package overlay

import "math"

// Report summarizes a layout pass.
type Report struct {
	ShrinkRounds int  // radius resolution rounds
	Iterations   int  // relaxation sweeps performed
	Converged    bool // last sweep changed nothing
	Moves        int  // label moves caused by overlap
	Corrections  int  // drift pull-backs applied
	Reanchors    int  // anchors that switched sides
}

// Relax runs the relaxation loop on the current label offsets until a sweep
// changes nothing or MaxIters sweeps have run. Partial convergence is a
// normal outcome.
func (p *Pass) Relax() Report {
	var rep Report
	for iter := 0; iter < p.params.MaxIters; iter++ {
		changed := false
		for i := range p.objs {
			if p.relaxOne(i, &rep) {
				changed = true
			}
		}
		rep.Iterations = iter + 1
		if !changed {
			rep.Converged = true
			break
		}
	}
	return rep
}

// relaxOne performs one relaxation step on object i and reports whether
// anything changed. Objects earlier in the sweep have already moved.
func (p *Pass) relaxOne(i int, rep *Report) bool {
	o := &p.objs[i]
	prev := o.Offset
	next := prev
	changed := false

	push, _ := p.overlap(p.LabelRect(i), i, false)
	if push != (Point{}) {
		rate := p.params.UpdateRate
		next.X += push.X * rate
		// Vertical moves resolve most collisions with the least visual damage.
		next.Y += p.params.VerticalGain * push.Y * rate
		rep.Moves++
		changed = true
	}

	var corrected, flipped bool
	next.X, o.Anchor.X, corrected, flipped = p.pullBack(o.Anchor.X, prev.X, next.X, p.params.ThresholdX)
	if corrected {
		rep.Corrections++
		changed = true
	}
	if flipped {
		rep.Reanchors++
	}
	next.Y, o.Anchor.Y, corrected, flipped = p.pullBack(o.Anchor.Y, prev.Y, next.Y, p.params.ThresholdY)
	if corrected {
		rep.Corrections++
		changed = true
	}
	if flipped {
		rep.Reanchors++
	}

	o.Offset = next
	return changed
}

// pullBack applies the drift penalty on one axis. Drift is measured from
// the offset at the start of the step. Past the threshold the offset is
// pulled toward the anchor by a capped spring; the correction can carry it
// to the other side of the icon, in which case the anchor follows it there.
func (p *Pass) pullBack(anchor, prev, cur, threshold float64) (offset, newAnchor float64, corrected, flipped bool) {
	drift := anchor - prev
	if math.Abs(drift) <= threshold {
		return cur, anchor, false, false
	}

	drift -= sign(drift) * threshold
	cur += drift * math.Min(p.params.PositionWeight*math.Abs(drift), p.params.MaxCorrection)

	if anchor*cur <= 0 && anchor != 0 {
		anchor = -anchor
		flipped = true
	}
	return cur, anchor, true, flipped
}
