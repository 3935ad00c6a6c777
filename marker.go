package knobs

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"
)

// MarkerShape paints a small symbol inside a square box of the given size
// centered on center. Markers decorate compass widgets but can be painted
// anywhere.
type MarkerShape interface {
	Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke)
}

// SquareMarker is a filled square.
type SquareMarker struct{}

// Paint draws the square.
func (SquareMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	h := size / 2
	p.FillPolygon([]Vec2{
		{center.X - h, center.Y - h},
		{center.X + h, center.Y - h},
		{center.X + h, center.Y + h},
		{center.X - h, center.Y + h},
	}, fill, stroke)
}

// CircleMarker is a filled circle.
type CircleMarker struct{}

// Paint draws the circle through the shape engine's fan tessellation.
func (CircleMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	PaintShape(p, CircleShape{}, center, size/2, fill, stroke, 0)
}

// DiamondMarker is a filled diamond (a square rotated 45 degrees).
type DiamondMarker struct{}

// Paint draws the diamond.
func (DiamondMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	h := size / 2
	p.FillPolygon([]Vec2{
		{center.X, center.Y - h},
		{center.X + h, center.Y},
		{center.X, center.Y + h},
		{center.X - h, center.Y},
	}, fill, stroke)
}

// ArrowDirection selects which way an ArrowMarker points.
type ArrowDirection uint8

const (
	ArrowRight ArrowDirection = iota
	ArrowUp
	ArrowLeft
	ArrowDown
)

// ArrowMarker is a filled equilateral triangle pointing in a cardinal
// direction.
type ArrowMarker struct {
	Direction ArrowDirection
}

// Paint draws the triangle. The triangle's height is scaled by sqrt(3)/2 so
// the sides stay equilateral inside the square marker box.
func (m ArrowMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	h := size / 2
	e := h * math32.Sqrt(3) / 2

	var points []Vec2
	switch m.Direction {
	case ArrowUp:
		points = []Vec2{
			{center.X, center.Y - e},
			{center.X + h, center.Y + e},
			{center.X - h, center.Y + e},
		}
	case ArrowLeft:
		points = []Vec2{
			{center.X - e, center.Y},
			{center.X + e, center.Y - h},
			{center.X + e, center.Y + h},
		}
	case ArrowDown:
		points = []Vec2{
			{center.X - h, center.Y - e},
			{center.X + h, center.Y - e},
			{center.X, center.Y + e},
		}
	default: // ArrowRight
		points = []Vec2{
			{center.X + e, center.Y},
			{center.X - e, center.Y + h},
			{center.X - e, center.Y - h},
		}
	}
	p.FillPolygon(points, fill, stroke)
}

// StarMarker is a filled star with the given number of rays. Construct it
// with NewStarMarker.
type StarMarker struct {
	rays  int
	ratio float32
}

// NewStarMarker creates a star marker. rays must be at least 2 and ratio,
// the inner-to-outer radius ratio of the rays, must be in [0, 1].
func NewStarMarker(rays int, ratio float32) (StarMarker, error) {
	if rays < 2 {
		return StarMarker{}, fmt.Errorf("%w: star marker must have at least 2 rays, got %d", ErrInvalidShape, rays)
	}
	if ratio < 0 || ratio > 1 {
		return StarMarker{}, fmt.Errorf("%w: star marker ray ratio must be in [0, 1], got %v", ErrInvalidShape, ratio)
	}
	return StarMarker{rays: rays, ratio: ratio}, nil
}

// Paint draws the star as a single polygon of interleaved outer and inner
// vertices, with the first ray pointing up.
func (m StarMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	outerRadius := size / 2
	innerRadius := outerRadius * m.ratio
	const starRotation = -Tau * 0.25

	points := make([]Vec2, 0, 2*m.rays)
	for i := 0; i < m.rays; i++ {
		outerAngle := starRotation + Tau*float32(i)/float32(m.rays)
		innerAngle := starRotation + Tau*(float32(i)+0.5)/float32(m.rays)
		points = append(points,
			center.Add(Angled(outerAngle).Mul(outerRadius)),
			center.Add(Angled(innerAngle).Mul(innerRadius)),
		)
	}
	p.FillPolygon(points, fill, stroke)
}

// EmojiMarker draws a single character, sized to the marker box. It needs a
// Painter with font support (see Canvas.Text).
type EmojiMarker struct {
	Char rune
}

// Paint draws the character centered in the marker box.
func (m EmojiMarker) Paint(p Painter, center Vec2, size float32, fill gg.RGBA, stroke Stroke) {
	p.Text(center, string(m.Char), size, fill)
}
