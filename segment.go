package knobs

// DisplayKind selects the segment layout of a SegmentedDisplay.
type DisplayKind uint8

const (
	// SevenSegment is the classic numeric display.
	SevenSegment DisplayKind = iota
	// SixteenSegment adds split horizontals, center verticals and
	// diagonals, enough for the full uppercase alphabet.
	SixteenSegment
)

// String returns the name of the display kind.
func (k DisplayKind) String() string {
	if k == SixteenSegment {
		return "SixteenSegment"
	}
	return "SevenSegment"
}

// SegmentedDisplay paints text as a row of segmented LED/LCD digits.
// Characters without a glyph in the built-in font are drawn blank.
type SegmentedDisplay struct {
	// Kind selects seven- or sixteen-segment digits.
	Kind DisplayKind
	// DigitHeight in pixels; all other metrics derive from it.
	DigitHeight float32
	// Style provides the face and segment colors.
	Style DisplayStyle
	// Slant shears the digits horizontally: the top of a digit shifts
	// right by Slant times half the digit height.
	Slant float32
	// ShowInactiveSegments paints unlit segments in the inactive color,
	// giving the ghosting of a real LCD.
	ShowInactiveSegments bool
}

// NewSegmentedDisplay creates a display with the "default" style preset
// and inactive segments visible.
func NewSegmentedDisplay(kind DisplayKind, digitHeight float32) *SegmentedDisplay {
	style, _ := DisplayStylePreset("default")
	return &SegmentedDisplay{
		Kind:                 kind,
		DigitHeight:          digitHeight,
		Style:                style,
		ShowInactiveSegments: true,
	}
}

// Derived metrics. The ratios follow common LED datasheet proportions.
func (d *SegmentedDisplay) digitWidth() float32 { return d.DigitHeight * 0.5 }
func (d *SegmentedDisplay) spacing() float32    { return d.DigitHeight * 0.15 }
func (d *SegmentedDisplay) margin() float32     { return d.DigitHeight * 0.2 }
func (d *SegmentedDisplay) thickness() float32  { return d.DigitHeight * 0.1 }

// Width returns the painted width of the given text.
func (d *SegmentedDisplay) Width(text string) float32 {
	n := len([]rune(text))
	if n == 0 {
		return 2 * d.margin()
	}
	return 2*d.margin() + float32(n)*d.digitWidth() + float32(n-1)*d.spacing()
}

// Height returns the painted height of the display.
func (d *SegmentedDisplay) Height() float32 {
	return d.DigitHeight + 2*d.margin()
}

// font returns the segment geometry and glyph table for the display kind.
func (d *SegmentedDisplay) font() segmentFont {
	if d.Kind == SixteenSegment {
		return sixteenSegmentFont
	}
	return sevenSegmentFont
}

// shear applies the display's slant to a point in digit-cell coordinates.
func (d *SegmentedDisplay) shear(pt Vec2) Vec2 {
	pt.X += d.Slant * (d.DigitHeight/2 - pt.Y)
	return pt
}

// Draw paints the display with its top-left corner at topLeft.
func (d *SegmentedDisplay) Draw(p Painter, topLeft Vec2, text string) {
	runes := []rune(text)

	width := d.Width(text)
	height := d.Height()
	p.FillPolygon([]Vec2{
		topLeft,
		topLeft.Add(V(width, 0)),
		topLeft.Add(V(width, height)),
		topLeft.Add(V(0, height)),
	}, d.Style.Background, Stroke{})

	font := d.font()
	origin := topLeft.Add(V(d.margin(), d.margin()))
	for i, r := range runes {
		cell := origin.Add(V(float32(i)*(d.digitWidth()+d.spacing()), 0))
		mask := font.glyph(r)
		for bit, seg := range font.segments {
			lit := mask&(1<<bit) != 0
			if !lit && !d.ShowInactiveSegments {
				continue
			}
			col := d.Style.ActiveForeground
			if !lit {
				col = d.Style.InactiveForeground
			}
			if col.A <= 0 {
				continue
			}
			quad := d.segmentQuad(seg)
			for j := range quad {
				quad[j] = cell.Add(quad[j])
			}
			p.FillPolygon(quad[:], col, NewStroke(1.0, col))
		}
	}
}

// segmentQuad expands a segment's center line into a quad of the display's
// segment thickness, ends inset so neighboring segments do not overlap,
// sheared by the display slant. Coordinates are relative to the digit cell.
func (d *SegmentedDisplay) segmentQuad(seg segmentLine) [4]Vec2 {
	w := d.digitWidth()
	h := d.DigitHeight
	t := d.thickness()

	a := V(seg.x1*w, seg.y1*h)
	b := V(seg.x2*w, seg.y2*h)

	dir := b.Sub(a)
	length := dir.Length()
	if length > 0 {
		dir = dir.Mul(1 / length)
	}
	normal := V(-dir.Y, dir.X).Mul(t / 2)
	inset := dir.Mul(t * 0.6)

	return [4]Vec2{
		d.shear(a.Add(inset).Add(normal)),
		d.shear(b.Sub(inset).Add(normal)),
		d.shear(b.Sub(inset).Sub(normal)),
		d.shear(a.Add(inset).Sub(normal)),
	}
}
