package knobs

import "github.com/gogpu/gg"

// Canvas adapts a *gg.Context to the Painter interface, so widgets can draw
// straight onto a gg drawing context.
//
// Rendering errors reported by gg are sticky: the first one is retained and
// later draw calls still execute. Check Err once per frame after painting.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas creates a Painter that draws onto the given gg context.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context {
	return c.dc
}

// Err returns the first rendering error encountered since the last call,
// and clears it.
func (c *Canvas) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) path(points []Vec2, closed bool) {
	for i, pt := range points {
		if i == 0 {
			c.dc.MoveTo(float64(pt.X), float64(pt.Y))
		} else {
			c.dc.LineTo(float64(pt.X), float64(pt.Y))
		}
	}
	if closed {
		c.dc.ClosePath()
	}
}

// FillPolygon fills a convex polygon and outlines it with stroke.
func (c *Canvas) FillPolygon(points []Vec2, fill gg.RGBA, stroke Stroke) {
	if len(points) < 3 {
		return
	}
	c.path(points, true)
	c.dc.SetRGBA(fill.R, fill.G, fill.B, fill.A)
	if stroke.IsEmpty() {
		c.setErr(c.dc.Fill())
		return
	}
	c.setErr(c.dc.FillPreserve())
	c.dc.SetRGBA(stroke.Color.R, stroke.Color.G, stroke.Color.B, stroke.Color.A)
	c.dc.SetLineWidth(float64(stroke.Width))
	c.setErr(c.dc.Stroke())
}

// Polyline strokes a line through the given points.
func (c *Canvas) Polyline(points []Vec2, closed bool, stroke Stroke) {
	if len(points) < 2 || stroke.IsEmpty() {
		return
	}
	c.path(points, closed)
	c.dc.SetRGBA(stroke.Color.R, stroke.Color.G, stroke.Color.B, stroke.Color.A)
	c.dc.SetLineWidth(float64(stroke.Width))
	c.setErr(c.dc.Stroke())
}

// LineSegment strokes a single segment from a to b.
func (c *Canvas) LineSegment(a, b Vec2, stroke Stroke) {
	if stroke.IsEmpty() {
		return
	}
	c.dc.MoveTo(float64(a.X), float64(a.Y))
	c.dc.LineTo(float64(b.X), float64(b.Y))
	c.dc.SetRGBA(stroke.Color.R, stroke.Color.G, stroke.Color.B, stroke.Color.A)
	c.dc.SetLineWidth(float64(stroke.Width))
	c.setErr(c.dc.Stroke())
}

// Text draws a string centered on pos using the context's current font
// face. The call is a no-op when no face is set; the height hint is left to
// the host, which controls font selection on the context.
func (c *Canvas) Text(pos Vec2, s string, height float32, col gg.RGBA) {
	if c.dc.Font() == nil {
		return
	}
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
	c.dc.DrawStringAnchored(s, float64(pos.X), float64(pos.Y), 0.5, 0.5)
}
