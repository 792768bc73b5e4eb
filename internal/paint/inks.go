package paint

import (
	"image/color"

	"DrawPad/internal/state"
)

// Compositor binds a buffer to its two inks. The erase ink is the buffer's
// background, so erasing overpaints rather than clearing alpha.
type Compositor struct {
	buf   *Buffer
	paint color.Color
}

func NewCompositor(buf *Buffer, paint color.Color) *Compositor {
	return &Compositor{buf: buf, paint: paint}
}

func (c *Compositor) Buffer() *Buffer { return c.buf }

// Color returns the fill color for ink, or nil for InkNone.
func (c *Compositor) Color(ink state.Ink) color.Color {
	switch ink {
	case state.InkPaint:
		return c.paint
	case state.InkErase:
		return c.buf.Background()
	}
	return nil
}

// Press paints the dot that starts a stroke. It reports whether anything was drawn.
func (c *Compositor) Press(at state.Point, radius float32, ink state.Ink) bool {
	col := c.Color(ink)
	if col == nil {
		return false
	}
	Dot(c.buf, at, radius, col)
	return true
}

// Apply composites one drag sample. It reports whether anything was drawn.
func (c *Compositor) Apply(s state.Sample) bool {
	col := c.Color(s.Ink)
	if col == nil {
		return false
	}
	StrokeTo(c.buf, s.From, s.To, s.Radius, col)
	return true
}
