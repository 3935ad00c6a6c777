package knobs

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidShape is returned by shape constructors when a parameter is out
// of range. Validation happens at construction time so that an invalid
// descriptor can never reach evaluation or painting.
var ErrInvalidShape = errors.New("knobs: invalid shape parameter")

// WidgetShape is a polar function defining the outline of a widget.
//
// Eval maps an angle to a radius multiplier applied to the widget's nominal
// radius; the outline point at angle theta is center + Angled(theta) *
// radius * Eval(theta). Implementations must be pure and return finite,
// non-negative values for every finite angle.
//
// Shapes form a small expression tree: leaf shapes (CircleShape,
// SquareShape, SquircleShape, PolygonShape, SuperPolygonShape, ShapeFunc)
// are closed-form polar functions, and composite shapes (Rotated, Mix)
// combine the evaluations of the children they own. Trees are immutable
// once built and safe to share between goroutines, except for a ShapeFunc
// whose closure is not.
type WidgetShape interface {
	Eval(theta float32) float32
}

// CircleShape is the unit circle: a constant radius multiplier of 1.
type CircleShape struct{}

// Eval returns 1 for every angle.
func (CircleShape) Eval(theta float32) float32 {
	return 1.0
}

// SquareShape is an axis-aligned square circumscribing the unit circle:
// flat sides facing the axis directions, corners on the diagonals.
type SquareShape struct{}

// Eval returns min(1/|cos theta|, 1/|sin theta|). The cos and sin terms
// never vanish at the same angle, so the result stays finite.
func (SquareShape) Eval(theta float32) float32 {
	return math32.Min(
		1.0/math32.Abs(math32.Cos(theta)),
		1.0/math32.Abs(math32.Sin(theta)),
	)
}

// SquircleShape interpolates between a diamond, a circle, and a square via
// a superellipse exponent. Construct it with NewSquircleShape.
type SquircleShape struct {
	factor float32
}

// NewSquircleShape creates a squircle with the given superellipse exponent.
// factor 2 is a circle, larger factors approach a square, factor 1 is a
// diamond. The factor must be positive.
func NewSquircleShape(factor float32) (SquircleShape, error) {
	if !(factor > 0) {
		return SquircleShape{}, fmt.Errorf("%w: squircle factor must be positive, got %v", ErrInvalidShape, factor)
	}
	return SquircleShape{factor: factor}, nil
}

// Factor returns the squircle's superellipse exponent.
func (s SquircleShape) Factor() float32 {
	return s.factor
}

// Eval returns (|cos theta|^k + |sin theta|^k)^(-1/k).
func (s SquircleShape) Eval(theta float32) float32 {
	a := math32.Pow(math32.Abs(math32.Cos(theta)), s.factor)
	b := math32.Pow(math32.Abs(math32.Sin(theta)), s.factor)
	return math32.Pow(a+b, -1.0/s.factor)
}

// PolygonShape is a regular polygon with a vertex at angle 0. Construct it
// with NewPolygonShape.
type PolygonShape struct {
	sides int
}

// NewPolygonShape creates a regular polygon shape with at least 3 sides.
func NewPolygonShape(sides int) (PolygonShape, error) {
	if sides < 3 {
		return PolygonShape{}, fmt.Errorf("%w: polygon must have at least 3 sides, got %d", ErrInvalidShape, sides)
	}
	return PolygonShape{sides: sides}, nil
}

// Sides returns the polygon's side count.
func (s PolygonShape) Sides() int {
	return s.sides
}

// Eval returns the polar radius of a regular n-gon inscribing the unit
// circle at its side midpoints: 1 / cos(asin(cos(n/2 * theta)) * 2/n).
func (s PolygonShape) Eval(theta float32) float32 {
	n := float32(s.sides)
	return 1.0 / math32.Cos(math32.Asin(math32.Cos(n/2.0*theta))*2.0/n)
}

// SuperPolygonShape generalizes PolygonShape with a superellipse exponent
// that rounds or sharpens the corners. Construct it with
// NewSuperPolygonShape.
type SuperPolygonShape struct {
	sides  int
	factor float32
}

// NewSuperPolygonShape creates a super-polygon with at least 3 sides and a
// factor in (0, 2].
func NewSuperPolygonShape(sides int, factor float32) (SuperPolygonShape, error) {
	if sides < 3 {
		return SuperPolygonShape{}, fmt.Errorf("%w: super-polygon must have at least 3 sides, got %d", ErrInvalidShape, sides)
	}
	if !(factor > 0) || factor > 2 {
		return SuperPolygonShape{}, fmt.Errorf("%w: super-polygon factor must be in (0, 2], got %v", ErrInvalidShape, factor)
	}
	return SuperPolygonShape{sides: sides, factor: factor}, nil
}

// Sides returns the super-polygon's side count.
func (s SuperPolygonShape) Sides() int {
	return s.sides
}

// Factor returns the super-polygon's superellipse exponent.
func (s SuperPolygonShape) Factor() float32 {
	return s.factor
}

// Eval returns (|cos(n*theta/4)|^k + |sin(n*theta/4)|^k)^(-1/k).
// See https://mathworld.wolfram.com/Superellipse.html.
func (s SuperPolygonShape) Eval(theta float32) float32 {
	n := float32(s.sides)
	a := math32.Pow(math32.Abs(math32.Cos(0.25*n*theta)), s.factor)
	b := math32.Pow(math32.Abs(math32.Sin(0.25*n*theta)), s.factor)
	return math32.Pow(a+b, -1.0/s.factor)
}

// RotatedShape rotates a child shape by a fixed angle offset.
type RotatedShape struct {
	child  WidgetShape
	offset float32
}

// Rotated returns shape rotated by offset radians.
func Rotated(shape WidgetShape, offset float32) RotatedShape {
	return RotatedShape{child: shape, offset: offset}
}

// Eval evaluates the child at theta - offset.
func (s RotatedShape) Eval(theta float32) float32 {
	return evalShape(s.child, theta-s.offset)
}

// MixShape blends the radius functions of two child shapes at matching
// angles.
type MixShape struct {
	a, b WidgetShape
	t    float32
}

// Mix returns the linear blend of two shapes: at t=0 exactly a, at t=1
// exactly b. t is not range-restricted; values outside [0, 1] extrapolate.
func Mix(a, b WidgetShape, t float32) MixShape {
	return MixShape{a: a, b: b, t: t}
}

// Eval returns a.Eval(theta)*(1-t) + b.Eval(theta)*t.
func (s MixShape) Eval(theta float32) float32 {
	return evalShape(s.a, theta)*(1.0-s.t) + evalShape(s.b, theta)*s.t
}

// ShapeFunc adapts an ordinary function to the WidgetShape interface, as a
// custom polar shape. The function is trusted verbatim: it must return
// finite non-negative values or the painted outline will be visually
// incorrect.
type ShapeFunc func(theta float32) float32

// Eval calls the function.
func (f ShapeFunc) Eval(theta float32) float32 {
	return f(theta)
}

// evalShape evaluates a possibly-nil shape, treating nil as CircleShape.
// Widgets leave their Shape field nil for a plain round outline.
func evalShape(s WidgetShape, theta float32) float32 {
	if s == nil {
		return 1.0
	}
	return s.Eval(theta)
}
