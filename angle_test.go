package knobs

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestNormalizedAngleUnsignedExclRange(t *testing.T) {
	inputs := []float32{
		0, 0.5, Tau / 2, Tau - 0.001, Tau, Tau + 0.5,
		-0.5, -Tau, -Tau - 0.5, 10 * Tau, -10*Tau - 1.25, 123.456,
	}
	for _, angle := range inputs {
		got := NormalizedAngleUnsignedExcl(angle)
		if got < 0 || got >= Tau {
			t.Errorf("NormalizedAngleUnsignedExcl(%v) = %v, want in [0, Tau)", angle, got)
		}
	}
}

func TestNormalizedAngleUnsignedExclPeriodicity(t *testing.T) {
	inputs := []float32{0, 0.25, 1.234, -2.5, 3.999, -5.1}
	for _, angle := range inputs {
		a := NormalizedAngleUnsignedExcl(angle)
		b := NormalizedAngleUnsignedExcl(angle + Tau)
		if math32.Abs(a-b) > 1e-5 {
			t.Errorf("NormalizedAngleUnsignedExcl(%v + Tau) = %v, want %v", angle, b, a)
		}
	}
}

func TestNormalizedAngleUnsignedIncl(t *testing.T) {
	if got := NormalizedAngleUnsignedIncl(Tau); got != Tau {
		t.Errorf("NormalizedAngleUnsignedIncl(Tau) = %v, want exactly Tau", got)
	}
	if got := NormalizedAngleUnsignedIncl(0); got != 0 {
		t.Errorf("NormalizedAngleUnsignedIncl(0) = %v, want 0", got)
	}
	if got := NormalizedAngleUnsignedIncl(Tau + 0.001); got > 0.002 {
		t.Errorf("NormalizedAngleUnsignedIncl(Tau+0.001) = %v, want near 0", got)
	}
	if got := NormalizedAngleUnsignedIncl(-0.5); math32.Abs(got-(Tau-0.5)) > 1e-5 {
		t.Errorf("NormalizedAngleUnsignedIncl(-0.5) = %v, want %v", got, Tau-0.5)
	}
	// Values already inside [0, Tau] pass through unchanged.
	if got := NormalizedAngleUnsignedIncl(1.5); got != 1.5 {
		t.Errorf("NormalizedAngleUnsignedIncl(1.5) = %v, want 1.5", got)
	}
}

func TestWrapModes(t *testing.T) {
	if got := WrapNone.Wrap(7.5); got != 7.5 {
		t.Errorf("WrapNone.Wrap(7.5) = %v, want 7.5", got)
	}
	if got := WrapUnsigned.Wrap(-0.5); math32.Abs(got-(Tau-0.5)) > 1e-5 {
		t.Errorf("WrapUnsigned.Wrap(-0.5) = %v, want %v", got, Tau-0.5)
	}
	if got := WrapSigned.Wrap(Tau - 0.5); math32.Abs(got-(-0.5)) > 1e-5 {
		t.Errorf("WrapSigned.Wrap(Tau-0.5) = %v, want -0.5", got)
	}
	if got := WrapSigned.Wrap(0.5); math32.Abs(got-0.5) > 1e-5 {
		t.Errorf("WrapSigned.Wrap(0.5) = %v, want 0.5", got)
	}
}
