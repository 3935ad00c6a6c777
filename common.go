package knobs

// Orientation selects which screen direction a widget's zero angle points at.
// The zero value is OrientationRight, matching gg's angle convention.
type Orientation struct {
	angle float32
}

// Cardinal orientations. Bottom/Left/Top follow the screen-space rotation
// sense (Y grows downward), so Bottom is a quarter turn from Right.
var (
	OrientationRight  = Orientation{angle: Tau * 0.00}
	OrientationBottom = Orientation{angle: Tau * 0.25}
	OrientationLeft   = Orientation{angle: Tau * 0.50}
	OrientationTop    = Orientation{angle: Tau * 0.75}
)

// CustomOrientation returns an Orientation rotated by an arbitrary angle in
// radians.
func CustomOrientation(angle float32) Orientation {
	return Orientation{angle: angle}
}

// Angle returns the orientation's rotation in radians.
func (o Orientation) Angle() float32 {
	return o.angle
}

// Winding selects the rotational sense in which a widget's value grows.
type Winding uint8

const (
	Clockwise Winding = iota
	Counterclockwise
)

// Factor returns +1 for Clockwise and -1 for Counterclockwise. In screen
// space (Y down) a positive angle increment rotates clockwise.
func (w Winding) Factor() float32 {
	if w == Counterclockwise {
		return -1.0
	}
	return 1.0
}

// String returns the name of the winding.
func (w Winding) String() string {
	if w == Counterclockwise {
		return "Counterclockwise"
	}
	return "Clockwise"
}

// WrapMode controls how angular widget values behave at the ends of a full
// turn.
type WrapMode uint8

const (
	// WrapNone leaves values unwrapped.
	WrapNone WrapMode = iota
	// WrapSigned wraps values to [-Tau/2, Tau/2).
	WrapSigned
	// WrapUnsigned wraps values to [0, Tau).
	WrapUnsigned
)

// Wrap applies the wrap mode to an angular value.
func (m WrapMode) Wrap(angle float32) float32 {
	switch m {
	case WrapSigned:
		wrapped := NormalizedAngleUnsignedExcl(angle)
		if wrapped >= Tau/2 {
			wrapped -= Tau
		}
		return wrapped
	case WrapUnsigned:
		return NormalizedAngleUnsignedExcl(angle)
	default:
		return angle
	}
}
