package knobs

import "github.com/gogpu/gg"

// Resolution is the number of angular samples the tessellators take per
// full turn. Raising it trades CPU for smoother outlines; 32 keeps knob
// outlines visually round at typical widget sizes.
const Resolution = 32

// arcEpsilon is the angular span below which PaintArc collapses the band
// to a single line segment instead of tessellating.
const arcEpsilon = 0.001

// arcInnerFloor is the minimum inner radius PaintArc tessellates with.
// Near-coincident inner points at radius 0 would produce degenerate quads.
const arcInnerFloor = 0.1

// PaintShape paints the full closed outline of a shape: a triangle fan of
// Resolution fill triangles around center, then the outline polyline on
// top of the fill.
//
// rotation rotates the shape's angular origin; the radius at screen angle
// a is shape.Eval(a - rotation). A nil shape paints a circle.
func PaintShape(p Painter, shape WidgetShape, center Vec2, radius float32, fill gg.RGBA, stroke Stroke, rotation float32) {
	outline := make([]Vec2, Resolution)
	for i := range outline {
		angle := float32(i) / Resolution * Tau
		shapeRadius := evalShape(shape, angle-rotation)
		outline[i] = center.Add(Angled(angle).Mul(radius * shapeRadius))
	}

	// Fan triangles are filled one by one with a hairline self-colored
	// stroke so adjacent triangles overlap instead of leaving seams.
	for i, pt := range outline {
		next := outline[(i+1)%Resolution]
		p.FillPolygon([]Vec2{center, pt, next}, fill, NewStroke(1.0, fill))
	}

	p.Polyline(outline, true, stroke)
}

// PaintArc paints an annular band of the shape's outline between
// innerRadius and outerRadius over the angular span [startAngle, endAngle],
// as a strip of Resolution ruled quads plus a closed outline tracing the
// outer arc forward and the inner arc back.
//
// A band is not star-shaped about any single interior point, so it cannot
// be fan-filled like PaintShape; the quad strip keeps every fill primitive
// convex. Spans smaller than about a milliradian degrade to a single line
// segment from the inner to the outer radius, and the inner radius is
// floored at a small positive value, so that no near-zero-area polygon
// ever reaches the fill rasterizer.
func PaintArc(p Painter, shape WidgetShape, center Vec2, innerRadius, outerRadius, startAngle, endAngle float32, fill gg.RGBA, stroke Stroke, rotation float32) {
	if almostEqual(startAngle, endAngle, arcEpsilon) {
		shapeRadius := evalShape(shape, startAngle-rotation)
		dir := Angled(startAngle)
		p.LineSegment(
			center.Add(dir.Mul(innerRadius*shapeRadius)),
			center.Add(dir.Mul(outerRadius*shapeRadius)),
			stroke,
		)
		return
	}

	if innerRadius < arcInnerFloor {
		innerRadius = arcInnerFloor
	}

	arcPoints := func(radius float32) []Vec2 {
		points := make([]Vec2, Resolution+1)
		for i := range points {
			t := float32(i) / Resolution
			angle := startAngle + (endAngle-startAngle)*t
			shapeRadius := evalShape(shape, angle-rotation)
			points[i] = center.Add(Angled(angle).Mul(radius * shapeRadius))
		}
		return points
	}

	outer := arcPoints(outerRadius)
	inner := arcPoints(innerRadius)

	for i := 0; i < Resolution; i++ {
		p.FillPolygon(
			[]Vec2{outer[i], inner[i], inner[i+1], outer[i+1]},
			fill,
			NewStroke(1.0, fill),
		)
	}

	outline := make([]Vec2, 0, 2*(Resolution+1))
	outline = append(outline, outer...)
	for i := len(inner) - 1; i >= 0; i-- {
		outline = append(outline, inner[i])
	}
	p.Polyline(outline, true, stroke)
}

// almostEqual reports whether a and b differ by no more than epsilon.
func almostEqual(a, b, epsilon float32) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}
