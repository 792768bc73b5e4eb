package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

// BoardOptions carries the widget settings that come from the config.
type BoardOptions struct {
	Cursor           color.Color
	ScrollMultiplier float32
	ScrollStep       float32
}

// BoardWidget shows the canvas buffer and turns pointer input into strokes.
// All of its state is touched only from toolkit callbacks.
type BoardWidget struct {
	widget.BaseWidget
	comp    *paint.Compositor
	pointer *state.Pointer
	opts    BoardOptions
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ desktop.Cursorable = (*BoardWidget)(nil)

func NewBoardWidget(comp *paint.Compositor, pointer *state.Pointer, opts BoardOptions) *BoardWidget {
	if opts.Cursor == nil {
		opts.Cursor = color.White
	}
	if opts.ScrollStep <= 0 {
		opts.ScrollStep = 1
	}
	b := &BoardWidget{comp: comp, pointer: pointer, opts: opts}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Buffer() *paint.Buffer { return b.comp.Buffer() }
func (b *BoardWidget) Pointer() *state.Pointer { return b.pointer }

// scale returns buffer pixels per widget unit on each axis.
func (b *BoardWidget) scale() (float32, float32) {
	size := b.Size()
	buf := b.comp.Buffer()
	if size.Width <= 0 || size.Height <= 0 {
		return 1, 1
	}
	return float32(buf.Width()) / size.Width, float32(buf.Height()) / size.Height
}

func (b *BoardWidget) toCanvas(pos fyne.Position) state.Point {
	sx, sy := b.scale()
	return state.Point{X: pos.X * sx, Y: pos.Y * sy}
}

func (b *BoardWidget) fromCanvas(p state.Point) fyne.Position {
	sx, sy := b.scale()
	return fyne.NewPos(p.X/sx, p.Y/sy)
}

// MouseDown paints a dot with the ink of the pressed button.
func (b *BoardWidget) MouseDown(ev *desktop.MouseEvent) {
	b.pointer.MoveTo(b.toCanvas(ev.Position))
	b.comp.Press(b.pointer.Pos, b.pointer.Radius, state.InkForButtons(int(ev.Button)))
	b.Refresh()
}

// MouseUp does nothing: drawing stops once motion events no longer report a
// held button.
func (b *BoardWidget) MouseUp(*desktop.MouseEvent) {}

// MouseMoved continues a stroke while a button is held and otherwise just
// moves the cursor indicator.
func (b *BoardWidget) MouseMoved(ev *desktop.MouseEvent) {
	prev := b.pointer.MoveTo(b.toCanvas(ev.Position))
	if ink := state.InkForButtons(int(ev.Button)); ink != state.InkNone {
		b.comp.Apply(b.pointer.Sample(prev, ink))
	}
	b.Refresh()
}

func (b *BoardWidget) MouseIn(ev *desktop.MouseEvent) {
	b.pointer.MoveTo(b.toCanvas(ev.Position))
	b.Refresh()
}

func (b *BoardWidget) MouseOut() {}

// Scrolled resizes the brush. Scrolling up grows it.
func (b *BoardWidget) Scrolled(ev *fyne.ScrollEvent) {
	b.pointer.AdjustRadius(ev.Scrolled.DY/b.opts.ScrollStep, b.opts.ScrollMultiplier)
	b.Refresh()
}

// Cursor hides the system pointer; the renderer draws the brush instead.
func (b *BoardWidget) Cursor() desktop.Cursor {
	return desktop.HiddenCursor
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.comp.Buffer().Image())
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScalePixels
	r := &boardWidgetRenderer{
		board:  b,
		image:  img,
		cursor: canvas.NewCircle(b.opts.Cursor),
	}
	r.placeCursor()
	return r
}

type boardWidgetRenderer struct {
	board  *BoardWidget
	image  *canvas.Image
	cursor *canvas.Circle
}

// placeCursor centers the indicator on the pointer with the brush radius.
func (r *boardWidgetRenderer) placeCursor() {
	sx, _ := r.board.scale()
	rad := r.board.pointer.Radius / sx
	center := r.board.fromCanvas(r.board.pointer.Pos)
	r.cursor.Move(fyne.NewPos(center.X-rad, center.Y-rad))
	r.cursor.Resize(fyne.NewSize(2*rad, 2*rad))
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image, r.cursor}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
	r.placeCursor()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	buf := r.board.comp.Buffer()
	return fyne.NewSize(float32(buf.Width()), float32(buf.Height()))
}

// Refresh re-uploads the buffer and moves the cursor indicator.
func (r *boardWidgetRenderer) Refresh() {
	r.placeCursor()
	r.image.Refresh()
	r.cursor.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
