package canvas

import (
	"image"
	"image/color"
	"math"
)

// StrokeState is the pointer state machine: Idle until a BeginStroke, then
// Stroking until EndStroke. Keeping it explicit makes the transitions
// testable without a display and gives spurious move events a defined
// answer (ignored while Idle).
type StrokeState int

const (
	StateIdle StrokeState = iota
	StateStroking
)

// Segment is one piece of a freehand path to rasterize.
type Segment struct {
	From image.Point
	To   image.Point
}

// Stroker tracks the active path independent of any surface.
type Stroker struct {
	state StrokeState
	last  image.Point
}

func (k *Stroker) State() StrokeState { return k.state }
func (k *Stroker) Active() bool       { return k.state == StateStroking }

// Begin starts a stroke at p. The returned segment is the initial dot.
func (k *Stroker) Begin(p image.Point) Segment {
	k.state = StateStroking
	k.last = p
	return Segment{From: p, To: p}
}

// Extend continues the stroke to p. While Idle it reports false and no
// segment; a pointer entering the surface already "down" draws nothing.
func (k *Stroker) Extend(p image.Point) (Segment, bool) {
	if k.state != StateStroking {
		return Segment{}, false
	}
	seg := Segment{From: k.last, To: p}
	k.last = p
	return seg, true
}

// End finishes the stroke. Reports whether a stroke was actually active.
func (k *Stroker) End() bool {
	if k.state != StateStroking {
		return false
	}
	k.state = StateIdle
	return true
}

// eraserWidthFactor enlarges the eraser relative to the pen so erasing feels
// forgiving. The eraser paints the background color rather than clearing
// alpha, which keeps snapshots opaque.
const eraserWidthFactor = 2

// BeginStroke starts a freehand stroke at p using the current tool.
func (s *Surface) BeginStroke(p image.Point) {
	seg := s.stroker.Begin(p)
	s.rasterize(seg)
}

// ExtendStroke continues the active stroke to p. No-op while idle.
func (s *Surface) ExtendStroke(p image.Point) {
	if seg, ok := s.stroker.Extend(p); ok {
		s.rasterize(seg)
	}
}

// EndStroke finishes the stroke and applies any resize deferred during it.
func (s *Surface) EndStroke() {
	if !s.stroker.End() {
		return
	}
	if s.pending != nil {
		p := *s.pending
		s.pending = nil
		_ = s.Resize(p.X, p.Y)
	}
}

func (s *Surface) strokeBrush() (color.RGBA, int) {
	if s.tool.Erase {
		return s.bg, s.tool.Width * eraserWidthFactor
	}
	return s.tool.Color, s.tool.Width
}

// rasterize stamps filled discs along the segment at sub-pixel steps, which
// gives round caps and joins for free.
func (s *Surface) rasterize(seg Segment) {
	col, width := s.strokeBrush()
	radius := float64(width) / 2

	dx := float64(seg.To.X - seg.From.X)
	dy := float64(seg.To.Y - seg.From.Y)
	dist := math.Hypot(dx, dy)
	steps := int(dist) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := float64(seg.From.X) + dx*t
		y := float64(seg.From.Y) + dy*t
		s.stampDisc(x, y, radius, col)
	}
}

func (s *Surface) stampDisc(cx, cy, r float64, col color.RGBA) {
	bounds := s.buf.Bounds()
	minX := int(math.Floor(cx - r))
	maxX := int(math.Ceil(cx + r))
	minY := int(math.Floor(cy - r))
	maxY := int(math.Ceil(cy + r))
	rr := r * r
	for y := minY; y <= maxY; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			ddx := float64(x) - cx
			ddy := float64(y) - cy
			if ddx*ddx+ddy*ddy <= rr {
				s.buf.SetRGBA(x, y, col)
			}
		}
	}
}
