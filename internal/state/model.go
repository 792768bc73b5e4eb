package state

import "math"

// Point is a position in canvas pixel space.
type Point struct{ X, Y float32 }

// Sub returns the vector from o to p.
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }

// Add returns p translated by o.
func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }

// Scale returns p with both components multiplied by s.
func (p Point) Scale(s float32) Point { return Point{X: p.X * s, Y: p.Y * s} }

// Len returns the euclidean length of p seen as a vector.
func (p Point) Len() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

type Ink int

const (
	InkNone Ink = iota
	InkPaint
	InkErase
)

func (i Ink) String() string {
	switch i {
	case InkPaint:
		return "paint"
	case InkErase:
		return "erase"
	}
	return "none"
}

// Button bits as reported by the pointer, matching fyne's desktop.MouseButton.
const (
	ButtonPrimary   = 1 << 0
	ButtonSecondary = 1 << 1
)

// InkForButtons picks the ink for a held-button bitmask. Primary wins when
// both buttons are down.
func InkForButtons(buttons int) Ink {
	switch {
	case buttons&ButtonPrimary != 0:
		return InkPaint
	case buttons&ButtonSecondary != 0:
		return InkErase
	}
	return InkNone
}

// Sample is one pointer step of a stroke. It is consumed immediately.
type Sample struct {
	From   Point
	To     Point
	Radius float32
	Ink    Ink
}
