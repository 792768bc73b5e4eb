package state

// MinRadius is the smallest brush radius the pointer accepts.
const MinRadius float32 = 1.0

// Pointer holds the last known cursor position and the brush radius shared
// by both inks and the cursor indicator.
type Pointer struct {
	Pos    Point
	Radius float32
}

func NewPointer(pos Point, radius float32) *Pointer {
	p := &Pointer{Pos: pos}
	p.SetRadius(radius)
	return p
}

// MoveTo records a new position and returns the previous one.
func (p *Pointer) MoveTo(pos Point) Point {
	prev := p.Pos
	p.Pos = pos
	return prev
}

func (p *Pointer) SetRadius(r float32) {
	if r < MinRadius {
		r = MinRadius
	}
	p.Radius = r
}

// AdjustRadius adds multiplier*units to the radius, never going below
// MinRadius. Positive units grow the brush.
func (p *Pointer) AdjustRadius(units, multiplier float32) float32 {
	p.SetRadius(p.Radius + multiplier*units)
	return p.Radius
}

// Sample builds the stroke step from prev to the current position.
func (p *Pointer) Sample(prev Point, ink Ink) Sample {
	return Sample{From: prev, To: p.Pos, Radius: p.Radius, Ink: ink}
}
