package knobs

import "github.com/gogpu/gg"

// Stroke describes an outline style: a line width in pixels and a color.
type Stroke struct {
	Width float32
	Color gg.RGBA
}

// NewStroke creates a Stroke with the given width and color.
func NewStroke(width float32, color gg.RGBA) Stroke {
	return Stroke{Width: width, Color: color}
}

// IsEmpty reports whether the stroke draws nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color.A <= 0
}

// Painter is the drawing sink widgets and the shape engine emit to.
// It accepts resolved geometry only: flat point lists, a fill color, and a
// stroke style. How a backend rasterizes or batches the primitives is its
// own business. Canvas adapts a *gg.Context; recording.Recorder captures
// the command stream for tests and deferred replay.
type Painter interface {
	// FillPolygon fills a simple polygon and outlines it with stroke.
	// The shape engine only emits convex polygons; markers may emit
	// concave ones (stars). Callers must not pass degenerate
	// (near-zero-area) polygons; the shape engine guards against
	// producing them.
	FillPolygon(points []Vec2, fill gg.RGBA, stroke Stroke)

	// Polyline strokes a line through the given points, closing it back
	// to the first point when closed is true.
	Polyline(points []Vec2, closed bool, stroke Stroke)

	// LineSegment strokes a single segment from a to b.
	LineSegment(a, b Vec2, stroke Stroke)

	// Text draws a string centered on pos. height is the desired glyph
	// height in pixels; backends without font support may ignore the call.
	Text(pos Vec2, s string, height float32, col gg.RGBA)
}
