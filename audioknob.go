package knobs

// AudioKnob is a mixing-desk style value knob: a shaped body surrounded by
// an arc gauge that fills from the range start to the current value.
type AudioKnob struct {
	// Diameter of the knob in pixels, including the gauge band.
	Diameter float32
	// Min and Max bound the value range. Values outside are clamped when
	// painting.
	Min, Max float32
	// Spread is the fraction of a full turn the gauge covers, centered on
	// the orientation.
	Spread float32
	// Thickness is the gauge band's thickness as a fraction of the knob
	// radius.
	Thickness float32
	// Orientation is the screen direction of the gauge's midpoint. The
	// default, OrientationTop, leaves the customary gap at the bottom.
	Orientation Orientation
	// Winding is the rotational sense of growing values.
	Winding Winding
	// Shape is the outline of the body and the gauge; nil draws circles.
	Shape WidgetShape
	// Style provides the colors and stroke widths.
	Style KnobStyle
}

// NewAudioKnob creates an audio knob over [min, max] with the default
// style, a three-quarter turn gauge and top orientation.
func NewAudioKnob(diameter, min, max float32) *AudioKnob {
	return &AudioKnob{
		Diameter:    diameter,
		Min:         min,
		Max:         max,
		Spread:      0.75,
		Thickness:   0.33,
		Orientation: OrientationTop,
		Winding:     Clockwise,
		Style:       DefaultKnobStyle(),
	}
}

// Position returns the value normalized to [0, 1] within the knob's range.
func (k *AudioKnob) Position(value float32) float32 {
	if k.Max == k.Min {
		return 0
	}
	t := (value - k.Min) / (k.Max - k.Min)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return t
}

// angles returns the gauge's start and end screen angles. With clockwise
// winding the gauge fills from start toward end; counterclockwise swaps
// the sweep direction.
func (k *AudioKnob) angles() (start, end float32) {
	rotation := k.Orientation.Angle()
	half := k.Spread * Tau / 2 * k.Winding.Factor()
	return rotation - half, rotation + half
}

// Draw paints the knob centered on center with the given value.
//
// At the bottom of the range the value arc has zero span and degrades to
// the tessellator's line-segment fallback, which reads as a zero marker.
func (k *AudioKnob) Draw(p Painter, center Vec2, value float32) {
	radius := k.Diameter / 2
	rotation := k.Orientation.Angle()
	inner := radius * (1 - k.Thickness)
	start, end := k.angles()

	// Track band for the full spread, then the value band on top.
	PaintArc(p, k.Shape, center, inner, radius, start, end,
		k.Style.Fill, k.Style.Stroke, rotation)

	valueEnd := start + (end-start)*k.Position(value)
	PaintArc(p, k.Shape, center, inner, radius, start, valueEnd,
		k.Style.ArcFill, k.Style.Line, rotation)

	PaintShape(p, k.Shape, center, inner*0.8, k.Style.Fill, k.Style.Stroke, rotation)

	valueAngle := start + (end-start)*k.Position(value)
	edge := inner * 0.8 * evalShape(k.Shape, valueAngle-rotation)
	p.LineSegment(
		center.Add(Angled(valueAngle).Mul(edge*0.5)),
		center.Add(Angled(valueAngle).Mul(edge)),
		k.Style.Line,
	)
}

// ValueFromPoint maps a pointer position back to a value in [Min, Max],
// clamped to the gauge's angular span.
func (k *AudioKnob) ValueFromPoint(center, pos Vec2) float32 {
	start, end := k.angles()
	span := end - start
	if span == 0 {
		return k.Min
	}

	// Measure the pointer angle from the gauge start in the winding
	// direction, wrapped so angles just before the start map to the ends
	// rather than the middle.
	offset := (pos.Sub(center).Angle() - start) * k.Winding.Factor()
	offset = NormalizedAngleUnsignedExcl(offset)

	t := offset / (span * k.Winding.Factor())
	if t > 1 {
		// Inside the gap: snap to the nearer end.
		gapMid := 1 + (Tau/(span*k.Winding.Factor())-1)/2
		if t < gapMid {
			t = 1
		} else {
			t = 0
		}
	}
	return k.Min + t*(k.Max-k.Min)
}
