package knobs

import "github.com/chewxy/math32"

// Tau is one full turn in radians.
const Tau = 2 * math32.Pi

// NormalizedAngleUnsignedExcl wraps an angle to the [0, Tau) range.
func NormalizedAngleUnsignedExcl(angle float32) float32 {
	return math32.Mod(math32.Mod(angle, Tau)+Tau, Tau)
}

// NormalizedAngleUnsignedIncl wraps an angle to the [0, Tau] range.
// Unlike NormalizedAngleUnsignedExcl it preserves an exact Tau endpoint
// instead of collapsing it to 0, which matters for widgets that render a
// closed arc spanning exactly one full turn.
func NormalizedAngleUnsignedIncl(angle float32) float32 {
	switch {
	case angle < 0:
		return math32.Mod(math32.Mod(angle, Tau)+Tau, Tau)
	case angle > Tau:
		return math32.Mod(angle, Tau)
	default:
		return angle
	}
}
