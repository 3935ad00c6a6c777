package knobs

import (
	"github.com/chewxy/math32"
	"github.com/gogpu/gg"
)

// CompassMarker is a decorated heading on a compass strip.
type CompassMarker struct {
	// Heading in radians, 0 pointing north, growing clockwise.
	Heading float32
	// Shape paints the marker symbol; nil markers draw only the label.
	Shape MarkerShape
	// Label is drawn under the marker symbol; empty draws none.
	Label string
	// Color fills the marker symbol and label.
	Color gg.RGBA
}

// CompassWidget is a linear compass strip: a window onto the heading
// circle, with cardinal ticks, degree labels and user markers scrolling
// through it as the heading changes.
type CompassWidget struct {
	// Width and Height of the strip in pixels.
	Width, Height float32
	// Spread is the angular span visible across the strip's width.
	Spread float32
	// Winding selects which way headings grow across the strip.
	// Clockwise draws larger headings to the right.
	Winding Winding
	// Markers decorate fixed headings.
	Markers []CompassMarker
	// Style provides frame and tick colors.
	Style KnobStyle
	// LabelHeight is the glyph height for cardinal and marker labels.
	LabelHeight float32
}

// cardinalNames label the eight principal winds, north first, clockwise.
var cardinalNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// NewCompassWidget creates a compass strip with a quarter-turn spread and
// the default style.
func NewCompassWidget(width, height float32) *CompassWidget {
	return &CompassWidget{
		Width:       width,
		Height:      height,
		Spread:      Tau / 4,
		Winding:     Clockwise,
		Style:       DefaultKnobStyle(),
		LabelHeight: height * 0.3,
	}
}

// headingToX maps a heading to a horizontal strip position, choosing the
// wrapped representative closest to the current heading so markers slide
// through the window instead of jumping at the seam.
func (c *CompassWidget) headingToX(center Vec2, heading, current float32) float32 {
	delta := WrapSigned.Wrap(heading - current)
	return center.X + delta/c.Spread*c.Width*c.Winding.Factor()
}

// visible reports whether a strip position is inside the widget.
func (c *CompassWidget) visible(center Vec2, x float32) bool {
	return x >= center.X-c.Width/2 && x <= center.X+c.Width/2
}

// Draw paints the strip centered on center for the given heading.
func (c *CompassWidget) Draw(p Painter, center Vec2, heading float32) {
	top := center.Y - c.Height/2
	bottom := center.Y + c.Height/2

	p.FillPolygon([]Vec2{
		{center.X - c.Width/2, top},
		{center.X + c.Width/2, top},
		{center.X + c.Width/2, bottom},
		{center.X - c.Width/2, bottom},
	}, c.Style.Fill, c.Style.Stroke)

	// Ticks every 1/16 turn; taller at the eight principal winds, with a
	// cardinal label above them.
	const tickStep = Tau / 16
	tick := NewStroke(1.0, c.Style.Stroke.Color)
	first := math32.Ceil((heading-c.Spread/2)/tickStep) * tickStep
	for a := first; a <= heading+c.Spread/2; a += tickStep {
		x := c.headingToX(center, a, heading)
		if !c.visible(center, x) {
			continue
		}
		wind := int(math32.Round(NormalizedAngleUnsignedExcl(a)/(Tau/8))) % 8
		major := almostEqual(NormalizedAngleUnsignedExcl(a), float32(wind)*Tau/8, 1e-3) ||
			almostEqual(NormalizedAngleUnsignedExcl(a), Tau, 1e-3)
		tickHeight := c.Height * 0.2
		if major {
			tickHeight = c.Height * 0.35
			p.Text(V(x, top+c.LabelHeight*0.7), cardinalNames[wind],
				c.LabelHeight, c.Style.Line.Color)
		}
		p.LineSegment(V(x, bottom-tickHeight), V(x, bottom), tick)
	}

	for _, marker := range c.Markers {
		x := c.headingToX(center, marker.Heading, heading)
		if !c.visible(center, x) {
			continue
		}
		size := c.Height * 0.3
		if marker.Shape != nil {
			marker.Shape.Paint(p, V(x, center.Y), size,
				marker.Color, NewStroke(1.0, marker.Color))
		}
		if marker.Label != "" {
			p.Text(V(x, center.Y+size), marker.Label, c.LabelHeight, marker.Color)
		}
	}

	// Heading needle down the middle.
	p.LineSegment(V(center.X, top), V(center.X, bottom), c.Style.Line)
}
