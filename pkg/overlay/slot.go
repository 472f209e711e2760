package overlay

import "math"

// Slot is one of the canonical label positions around an icon.
type Slot int

const (
	SlotRight Slot = iota
	SlotLeft
	SlotAbove
	SlotBelow
)

// slots lists the candidates in evaluation order. Ties keep the earliest.
var slots = [...]Slot{SlotRight, SlotLeft, SlotAbove, SlotBelow}

func (s Slot) String() string {
	switch s {
	case SlotRight:
		return "right"
	case SlotLeft:
		return "left"
	case SlotAbove:
		return "above"
	case SlotBelow:
		return "below"
	}
	return "unknown"
}

// offset returns the label corner offset for the slot, given the gap
// between icon centre and label and the label size.
func (s Slot) offset(gap, w, h float64) Point {
	switch s {
	case SlotRight:
		return Point{gap, -h / 2}
	case SlotLeft:
		return Point{-gap - w, -h / 2}
	case SlotAbove:
		return Point{-w / 2, gap}
	case SlotBelow:
		return Point{-w / 2, -gap - h}
	}
	return Point{}
}

// placeInitial picks the best starting slot for object i and sets both its
// offset and anchor to it. Objects not yet placed have unplaced labels.
func (p *Pass) placeInitial(i int) {
	o := &p.objs[i]
	c := p.Centre(i)
	w, h := o.TextWidth, p.params.LabelHeight
	gap := p.params.HalfExtent(o.Radius) + 1.5*p.params.PixBuf
	bias := p.params.CentreBias * p.params.CentreBias

	best := math.Inf(1)
	var bestSlot Slot
	var bestOff Point
	for k, s := range slots {
		off := s.offset(gap, w, h)
		corner := c.Add(off)
		push, _ := p.overlap(Rect{corner.X, corner.Y, w, h}, i, true)

		// Bias slightly toward the centre so labels stay on the overlay.
		score := push.Len2() - 1/(corner.Len2()+bias)
		if k == 0 || score < best {
			best = score
			bestSlot = s
			bestOff = off
		}
	}

	o.Slot = bestSlot
	o.Offset = bestOff
	o.Anchor = bestOff
}
