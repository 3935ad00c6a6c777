package knobs

import "github.com/chewxy/math32"

// AngleKnob is a circular angle picker: the value is itself an angle in
// radians, drawn as a line from the knob's center to its outline.
//
// The widget is paint-side only. Hosts draw it with Draw and implement
// interaction by feeding pointer positions through ValueFromPoint.
type AngleKnob struct {
	// Diameter of the knob in pixels.
	Diameter float32
	// Orientation is the screen direction of the zero angle.
	Orientation Orientation
	// Winding is the rotational sense of growing values.
	Winding Winding
	// WrapMode controls wrapping of values produced by ValueFromPoint.
	WrapMode WrapMode
	// Min and Max optionally clamp values produced by ValueFromPoint.
	Min, Max *float32
	// SnapAngle optionally snaps values to multiples of the given angle.
	SnapAngle *float32
	// Shape is the knob's outline; nil draws a circle.
	Shape WidgetShape
	// Style provides the colors and stroke widths.
	Style KnobStyle
	// ShowAxes draws tick marks at the cardinal angles.
	ShowAxes bool
	// AxisCount is the number of tick marks when ShowAxes is set.
	AxisCount int
}

// NewAngleKnob creates an angle knob with the default style, top
// orientation and four axis ticks.
func NewAngleKnob(diameter float32) *AngleKnob {
	return &AngleKnob{
		Diameter:    diameter,
		Orientation: OrientationTop,
		Winding:     Clockwise,
		WrapMode:    WrapUnsigned,
		Style:       DefaultKnobStyle(),
		ShowAxes:    true,
		AxisCount:   4,
	}
}

// Draw paints the knob centered on center with the given value in radians.
func (k *AngleKnob) Draw(p Painter, center Vec2, value float32) {
	radius := k.Diameter / 2
	rotation := k.Orientation.Angle()

	PaintShape(p, k.Shape, center, radius, k.Style.Fill, k.Style.Stroke, rotation)

	if k.ShowAxes && k.AxisCount > 0 {
		tick := NewStroke(1.0, k.Style.Stroke.Color)
		for i := 0; i < k.AxisCount; i++ {
			axisAngle := rotation + Tau*float32(i)/float32(k.AxisCount)
			edge := radius * evalShape(k.Shape, axisAngle-rotation)
			dir := Angled(axisAngle)
			p.LineSegment(
				center.Add(dir.Mul(edge*0.8)),
				center.Add(dir.Mul(edge)),
				tick,
			)
		}
	}

	valueAngle := rotation + value*k.Winding.Factor()
	edge := radius * evalShape(k.Shape, valueAngle-rotation)
	p.LineSegment(center, center.Add(Angled(valueAngle).Mul(edge)), k.Style.Line)
}

// ValueFromPoint maps a pointer position back to a knob value, honoring
// the knob's winding, orientation, snap angle, wrap mode and bounds. It is
// the inverse of the value-line angle painted by Draw.
func (k *AngleKnob) ValueFromPoint(center, pos Vec2) float32 {
	value := (pos.Sub(center).Angle() - k.Orientation.Angle()) * k.Winding.Factor()

	if k.SnapAngle != nil && *k.SnapAngle > 0 {
		value = math32.Round(value / *k.SnapAngle) * *k.SnapAngle
	}

	value = k.WrapMode.Wrap(value)

	if k.Min != nil && value < *k.Min {
		value = *k.Min
	}
	if k.Max != nil && value > *k.Max {
		value = *k.Max
	}
	return value
}
