// Package overlay lays out icons and labels for the in-flight system map
// overlay. A Pass holds the visible objects of one map view; Optimize fits
// the icon radii so no two icons overlap and then moves labels until they
// stop colliding or the iteration budget runs out.
package overlay

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// ErrBadResolution is returned for a resolution that is not a positive finite number.
var ErrBadResolution = errors.New("resolution must be positive and finite")

// Pass is one layout computation over the objects visible in a map view.
// It owns a copy of the objects; callers read results back through Objects.
type Pass struct {
	objs   []Object
	res    float64
	params Params
	logger *log.Logger
}

// NewPass creates a pass over a copy of objs. res is the number of world
// units per screen pixel.
func NewPass(objs []Object, res float64, params Params) (*Pass, error) {
	if !(res > 0) || math.IsInf(res, 0) {
		return nil, fmt.Errorf("%w: %g", ErrBadResolution, res)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	cp := make([]Object, len(objs))
	copy(cp, objs)
	return &Pass{objs: cp, res: res, params: params}, nil
}

// SetLogger enables debug logging of the pass. A nil logger disables it.
func (p *Pass) SetLogger(l *log.Logger) {
	p.logger = l
}

// Optimize fits the icon radii, places every label on its best slot and
// relaxes the labels. It always completes; an unconverged layout is left in
// its best-effort state.
func (p *Pass) Optimize() Report {
	if len(p.objs) == 0 {
		return Report{Converged: true}
	}

	rounds := ResolveRadii(p.objs, p.res, p.params)
	p.debug("radii resolved", "objects", len(p.objs), "rounds", rounds)

	for i := range p.objs {
		p.objs[i].Offset = unplaced
		p.objs[i].Anchor = unplaced
	}
	for i := range p.objs {
		p.placeInitial(i)
	}

	rep := p.Relax()
	rep.ShrinkRounds = rounds
	p.debug("labels relaxed",
		"iterations", rep.Iterations,
		"converged", rep.Converged,
		"moves", rep.Moves,
		"reanchors", rep.Reanchors)
	return rep
}

func (p *Pass) debug(msg string, keyvals ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, keyvals...)
	}
}

// Len returns the number of objects in the pass.
func (p *Pass) Len() int { return len(p.objs) }

// Resolution returns the world units per screen pixel.
func (p *Pass) Resolution() float64 { return p.res }

// Params returns the pass parameters.
func (p *Pass) Params() Params { return p.params }

// Object returns object i.
func (p *Pass) Object(i int) Object { return p.objs[i] }

// Objects returns a copy of the objects with their current layout.
func (p *Pass) Objects() []Object {
	out := make([]Object, len(p.objs))
	copy(out, p.objs)
	return out
}

// Centre returns the screen position of object i relative to the overlay centre.
func (p *Pass) Centre(i int) Point {
	return p.objs[i].Pos.Scale(1 / p.res)
}

// LabelRect returns the label rectangle of object i relative to the overlay centre.
func (p *Pass) LabelRect(i int) Rect {
	o := &p.objs[i]
	c := p.Centre(i)
	return Rect{c.X + o.Offset.X, c.Y + o.Offset.Y, o.TextWidth, p.params.LabelHeight}
}

// IconRect returns the unbuffered icon box of object i.
func (p *Pass) IconRect(i int) Rect {
	return p.iconBox(i, 0)
}

// Residual returns the push the relaxation would apply to object i's label
// at its current position. A zero vector means the label is clear.
func (p *Pass) Residual(i int) Point {
	push, _ := p.overlap(p.LabelRect(i), i, false)
	return push
}

// IconOverlaps returns the pairs of icons whose discs overlap beyond tol pixels.
func (p *Pass) IconOverlaps(tol float64) [][2]int {
	var out [][2]int
	for i := range p.objs {
		for j := i + 1; j < len(p.objs); j++ {
			d := Dist(p.Centre(i), p.Centre(j))
			r := p.params.HalfExtent(p.objs[i].Radius) + p.params.HalfExtent(p.objs[j].Radius)
			if d+tol < r {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// LabelOverlapArea returns the total area, in square pixels, shared by
// pairs of labels and by labels and foreign icons. Buffers are not included.
func (p *Pass) LabelOverlapArea() float64 {
	total := 0.0
	for i := range p.objs {
		li := p.LabelRect(i)
		for j := range p.objs {
			if j == i {
				continue
			}
			total += li.Intersect(p.IconRect(j)).Area()
			if j > i {
				total += li.Intersect(p.LabelRect(j)).Area()
			}
		}
	}
	return total
}
