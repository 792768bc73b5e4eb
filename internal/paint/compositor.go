package paint

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"DrawPad/internal/state"
)

// kappa places the cubic control points of a quarter circle.
const kappa = 0.5522847498307936

type opKind int

const (
	opMove opKind = iota
	opLine
	opCube
	opClose
)

type pathOp struct {
	kind opKind
	pts  [3]state.Point
}

// path is a closed outline in buffer coordinates with its bounding box.
// Constructors seed min and max with the first point.
type path struct {
	ops      []pathOp
	min, max state.Point
}

func (p *path) extend(pts ...state.Point) {
	for _, pt := range pts {
		p.min.X = min(p.min.X, pt.X)
		p.min.Y = min(p.min.Y, pt.Y)
		p.max.X = max(p.max.X, pt.X)
		p.max.Y = max(p.max.Y, pt.Y)
	}
}

func (p *path) moveTo(pt state.Point) {
	p.extend(pt)
	p.ops = append(p.ops, pathOp{kind: opMove, pts: [3]state.Point{pt}})
}

func (p *path) lineTo(pt state.Point) {
	p.extend(pt)
	p.ops = append(p.ops, pathOp{kind: opLine, pts: [3]state.Point{pt}})
}

func (p *path) cubeTo(c1, c2, pt state.Point) {
	p.extend(c1, c2, pt)
	p.ops = append(p.ops, pathOp{kind: opCube, pts: [3]state.Point{c1, c2, pt}})
}

func (p *path) close() {
	p.ops = append(p.ops, pathOp{kind: opClose})
}

// circlePath approximates a circle with four cubic arcs.
func circlePath(c state.Point, r float32) *path {
	k := r * kappa
	p := &path{min: c, max: c}
	p.moveTo(state.Point{X: c.X + r, Y: c.Y})
	p.cubeTo(state.Point{X: c.X + r, Y: c.Y + k}, state.Point{X: c.X + k, Y: c.Y + r}, state.Point{X: c.X, Y: c.Y + r})
	p.cubeTo(state.Point{X: c.X - k, Y: c.Y + r}, state.Point{X: c.X - r, Y: c.Y + k}, state.Point{X: c.X - r, Y: c.Y})
	p.cubeTo(state.Point{X: c.X - r, Y: c.Y - k}, state.Point{X: c.X - k, Y: c.Y - r}, state.Point{X: c.X, Y: c.Y - r})
	p.cubeTo(state.Point{X: c.X + k, Y: c.Y - r}, state.Point{X: c.X + r, Y: c.Y - k}, state.Point{X: c.X + r, Y: c.Y})
	p.close()
	return p
}

func polygonPath(pts ...state.Point) *path {
	p := &path{min: pts[0], max: pts[0]}
	p.moveTo(pts[0])
	for _, pt := range pts[1:] {
		p.lineTo(pt)
	}
	p.close()
	return p
}

// area returns the pixel rectangle the path can touch, clipped to bounds.
func (p *path) area(bounds image.Rectangle) image.Rectangle {
	r := image.Rect(
		int(math.Floor(float64(p.min.X)))-1,
		int(math.Floor(float64(p.min.Y)))-1,
		int(math.Ceil(float64(p.max.X)))+1,
		int(math.Ceil(float64(p.max.Y)))+1,
	)
	return r.Intersect(bounds)
}

// fill rasterizes p with anti-aliasing and composites c over dst. The
// rasterizer only covers the path's bounding box.
func fill(dst *image.RGBA, p *path, c color.Color) {
	r := p.area(dst.Bounds())
	if r.Empty() {
		return
	}
	z := vector.NewRasterizer(r.Dx(), r.Dy())
	ox, oy := float32(r.Min.X), float32(r.Min.Y)
	for _, op := range p.ops {
		switch op.kind {
		case opMove:
			z.MoveTo(op.pts[0].X-ox, op.pts[0].Y-oy)
		case opLine:
			z.LineTo(op.pts[0].X-ox, op.pts[0].Y-oy)
		case opCube:
			z.CubeTo(
				op.pts[0].X-ox, op.pts[0].Y-oy,
				op.pts[1].X-ox, op.pts[1].Y-oy,
				op.pts[2].X-ox, op.pts[2].Y-oy,
			)
		case opClose:
			z.ClosePath()
		}
	}
	z.Draw(dst, r, image.NewUniform(c), image.Point{})
}

func clampRadius(r float32) float32 {
	if r < state.MinRadius || math.IsNaN(float64(r)) {
		return state.MinRadius
	}
	return r
}

// Dot fills a circle of the given radius around center.
func Dot(buf *Buffer, center state.Point, radius float32, c color.Color) {
	p := circlePath(center, clampRadius(radius))
	buf.Composite(func(dst *image.RGBA) { fill(dst, p, c) })
}

// Segment fills the quadrilateral bridging two dots of the given radius:
// its long edges run parallel to from→to at distance radius. A zero-length
// segment draws nothing.
func Segment(buf *Buffer, from, to state.Point, radius float32, c color.Color) {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		return
	}
	u := d.Scale(1 / l)
	n := state.Point{X: -u.Y, Y: u.X}.Scale(clampRadius(radius))
	p := polygonPath(from.Add(n), to.Add(n), to.Sub(n), from.Sub(n))
	buf.Composite(func(dst *image.RGBA) { fill(dst, p, c) })
}

// StrokeTo is the per-sample update while a drag is active.
func StrokeTo(buf *Buffer, prev, next state.Point, radius float32, c color.Color) {
	Dot(buf, next, radius, c)
	Segment(buf, prev, next, radius, c)
}
