package overlay

// collide tests probe against target and, when they overlap, adds the
// weighted displacement that moves probe clear of target to push.
// Rectangles that only share an edge still count as colliding.
func collide(push *Point, weight float64, probe, target Rect) bool {
	if probe.Right() < target.X || probe.X > target.Right() {
		return false
	}
	if probe.Top() < target.Y || probe.Y > target.Top() {
		return false
	}

	// Probe starts left of target: push further left, else clear its right edge.
	if probe.X < target.X {
		push.X += weight * (target.X - probe.Right())
	} else {
		push.X += weight * (target.Right() - probe.X)
	}

	if probe.Y < target.Y {
		push.Y += weight * (target.Y - probe.Top())
	} else {
		push.Y += weight * (target.Top() - probe.Y)
	}

	return true
}

// overlap sums the push on probe from every icon and label in the pass.
// During the initial slot search the object's own icon is skipped and the
// wider initial buffer applies; during relaxation its own label is skipped.
func (p *Pass) overlap(probe Rect, self int, initial bool) (Point, bool) {
	buf := p.params.PixBuf
	if initial {
		buf = p.params.PixBufInitial
	}

	var push Point
	collided := false
	for i := range p.objs {
		if i != self || !initial {
			if collide(&push, p.params.ObjectWeight, probe, p.iconBox(i, buf)) {
				collided = true
			}
		}
		if i != self || initial {
			if collide(&push, p.params.TextWeight, probe, p.LabelRect(i).Expand(buf)) {
				collided = true
			}
		}
	}
	return push, collided
}

// iconBox returns the square around icon i grown by buf.
func (p *Pass) iconBox(i int, buf float64) Rect {
	c := p.Centre(i)
	he := p.params.HalfExtent(p.objs[i].Radius) + buf
	return Rect{c.X - he, c.Y - he, 2 * he, 2 * he}
}
