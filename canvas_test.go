package knobs_test

import (
	"testing"

	"github.com/gogpu/gg"

	knobs "github.com/gogpu/gg-knobs"
)

func TestCanvasFillPolygon(t *testing.T) {
	dc := gg.NewContext(64, 64)
	dc.ClearWithColor(gg.White)
	canvas := knobs.NewCanvas(dc)

	canvas.FillPolygon([]knobs.Vec2{
		{8, 8}, {56, 8}, {56, 56}, {8, 56},
	}, gg.Red, knobs.NewStroke(1, gg.Red))

	if err := canvas.Err(); err != nil {
		t.Fatalf("Err = %v, want nil", err)
	}

	r, g, b, _ := dc.Image().At(32, 32).RGBA()
	if r < 0xc000 || g > 0x4000 || b > 0x4000 {
		t.Errorf("center pixel = (%#x, %#x, %#x), want red", r, g, b)
	}
	r, g, b, _ = dc.Image().At(2, 2).RGBA()
	if r < 0xc000 || g < 0xc000 || b < 0xc000 {
		t.Errorf("corner pixel = (%#x, %#x, %#x), want white", r, g, b)
	}
}

func TestCanvasKnobRenders(t *testing.T) {
	dc := gg.NewContext(128, 128)
	dc.ClearWithColor(gg.Black)
	canvas := knobs.NewCanvas(dc)

	k := knobs.NewAudioKnob(100, 0, 1)
	k.Draw(canvas, knobs.V(64, 64), 0.75)

	if err := canvas.Err(); err != nil {
		t.Fatalf("Err = %v, want nil", err)
	}

	// The knob body must have painted over the background somewhere.
	changed := false
	img := dc.Image()
	for y := 32; y < 96 && !changed; y += 4 {
		for x := 32; x < 96; x += 4 {
			r, g, b, _ := img.At(x, y).RGBA()
			if r|g|b != 0 {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("knob left the canvas untouched")
	}
}

func TestCanvasDegenerateSkips(t *testing.T) {
	dc := gg.NewContext(16, 16)
	canvas := knobs.NewCanvas(dc)

	// Too few points and empty strokes are silently ignored.
	canvas.FillPolygon([]knobs.Vec2{{1, 1}, {2, 2}}, gg.Red, knobs.Stroke{})
	canvas.Polyline([]knobs.Vec2{{1, 1}}, false, knobs.NewStroke(1, gg.Red))
	canvas.LineSegment(knobs.V(0, 0), knobs.V(8, 8), knobs.Stroke{})

	if err := canvas.Err(); err != nil {
		t.Fatalf("Err = %v, want nil", err)
	}
}
