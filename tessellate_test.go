package knobs_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	knobs "github.com/gogpu/gg-knobs"
	"github.com/gogpu/gg-knobs/recording"
)

var (
	testFill   = gg.Hex("#303030")
	testStroke = knobs.NewStroke(2, gg.Hex("#e0e0e0"))
)

func TestPaintShapePrimitives(t *testing.T) {
	shapes := map[string]knobs.WidgetShape{
		"nil":    nil,
		"circle": knobs.CircleShape{},
		"square": knobs.SquareShape{},
	}
	for name, shape := range shapes {
		rec := recording.NewRecorder()
		knobs.PaintShape(rec, shape, knobs.V(50, 50), 20, testFill, testStroke, 0)

		if got := rec.Count(recording.CmdFillPolygon); got != knobs.Resolution {
			t.Errorf("%s: fill polygons = %d, want %d", name, got, knobs.Resolution)
		}
		if got := rec.Count(recording.CmdPolyline); got != 1 {
			t.Errorf("%s: polylines = %d, want 1", name, got)
		}

		for _, cmd := range rec.Commands() {
			switch c := cmd.(type) {
			case recording.FillPolygonCmd:
				if len(c.Points) != 3 {
					t.Errorf("%s: fan triangle has %d points, want 3", name, len(c.Points))
				}
			case recording.PolylineCmd:
				if len(c.Points) != knobs.Resolution {
					t.Errorf("%s: outline has %d points, want %d", name, len(c.Points), knobs.Resolution)
				}
				if !c.Closed {
					t.Errorf("%s: outline not closed", name)
				}
			}
		}
	}
}

func TestPaintShapeCircleGeometry(t *testing.T) {
	center := knobs.V(50, 50)
	const radius = 20

	rec := recording.NewRecorder()
	knobs.PaintShape(rec, knobs.CircleShape{}, center, radius, testFill, testStroke, 0)

	for _, cmd := range rec.Commands() {
		outline, ok := cmd.(recording.PolylineCmd)
		if !ok {
			continue
		}
		for i, pt := range outline.Points {
			if got := pt.Sub(center).Length(); math32.Abs(got-radius) > 1e-3 {
				t.Errorf("outline[%d] at distance %v from center, want %v", i, got, radius)
			}
		}
	}
}

func TestPaintShapeRotation(t *testing.T) {
	square, err := knobs.NewPolygonShape(4)
	if err != nil {
		t.Fatalf("NewPolygonShape(4): %v", err)
	}
	center := knobs.V(0, 0)

	// Rotating the angular origin by an eighth turn moves the corner from
	// screen angle 0 to screen angle Tau/8.
	rec := recording.NewRecorder()
	knobs.PaintShape(rec, square, center, 10, testFill, testStroke, knobs.Tau/8)

	var outline recording.PolylineCmd
	for _, cmd := range rec.Commands() {
		if c, ok := cmd.(recording.PolylineCmd); ok {
			outline = c
		}
	}
	// Sample index Resolution/8 sits at screen angle Tau/8.
	corner := outline.Points[knobs.Resolution/8]
	if got := corner.Sub(center).Length(); math32.Abs(got-10*math32.Sqrt2) > 1e-2 {
		t.Errorf("rotated corner radius = %v, want %v", got, 10*math32.Sqrt2)
	}
	flat := outline.Points[0]
	if got := flat.Sub(center).Length(); math32.Abs(got-10) > 1e-2 {
		t.Errorf("rotated side radius = %v, want 10", got)
	}
}

func TestPaintArcDegenerateSpan(t *testing.T) {
	rec := recording.NewRecorder()
	knobs.PaintArc(rec, knobs.CircleShape{}, knobs.V(50, 50), 10, 20, 1.0, 1.0005, testFill, testStroke, 0)

	if got := rec.Count(recording.CmdLineSegment); got != 1 {
		t.Errorf("line segments = %d, want 1", got)
	}
	if got := rec.Count(recording.CmdFillPolygon); got != 0 {
		t.Errorf("fill polygons = %d, want 0", got)
	}
	if got := rec.Count(recording.CmdPolyline); got != 0 {
		t.Errorf("polylines = %d, want 0", got)
	}

	seg := rec.Commands()[0].(recording.LineSegmentCmd)
	center := knobs.V(50, 50)
	if got := seg.A.Sub(center).Length(); math32.Abs(got-10) > 1e-3 {
		t.Errorf("segment start radius = %v, want 10", got)
	}
	if got := seg.B.Sub(center).Length(); math32.Abs(got-20) > 1e-3 {
		t.Errorf("segment end radius = %v, want 20", got)
	}
}

func TestPaintArcQuarterTurn(t *testing.T) {
	rec := recording.NewRecorder()
	knobs.PaintArc(rec, knobs.CircleShape{}, knobs.V(0, 0), 10, 20, 0, knobs.Tau/4, testFill, testStroke, 0)

	if got := rec.Count(recording.CmdFillPolygon); got != knobs.Resolution {
		t.Errorf("band quads = %d, want %d", got, knobs.Resolution)
	}
	if got := rec.Count(recording.CmdPolyline); got != 1 {
		t.Errorf("polylines = %d, want 1", got)
	}

	for _, cmd := range rec.Commands() {
		switch c := cmd.(type) {
		case recording.FillPolygonCmd:
			if len(c.Points) != 4 {
				t.Errorf("band quad has %d points, want 4", len(c.Points))
			}
		case recording.PolylineCmd:
			if want := 2 * (knobs.Resolution + 1); len(c.Points) != want {
				t.Errorf("band outline has %d points, want %d", len(c.Points), want)
			}
			if !c.Closed {
				t.Error("band outline not closed")
			}
		}
	}
}

func TestPaintArcInnerRadiusFloor(t *testing.T) {
	center := knobs.V(0, 0)
	rec := recording.NewRecorder()
	knobs.PaintArc(rec, knobs.CircleShape{}, center, 0, 20, 0, knobs.Tau/4, testFill, testStroke, 0)

	// The inner arc is floored at a small positive radius so no quad
	// collapses to a zero-area polygon.
	for _, cmd := range rec.Commands() {
		quad, ok := cmd.(recording.FillPolygonCmd)
		if !ok {
			continue
		}
		inner1, inner2 := quad.Points[1], quad.Points[2]
		if got := inner1.Sub(center).Length(); got < 0.09 {
			t.Fatalf("inner quad corner at radius %v, want floored above 0", got)
		}
		if inner1.Sub(inner2).Length() == 0 {
			t.Fatal("degenerate quad: coincident inner corners")
		}
	}
}

func TestRecorderPlayback(t *testing.T) {
	first := recording.NewRecorder()
	knobs.PaintArc(first, knobs.SquareShape{}, knobs.V(5, 5), 2, 8, 0.3, 2.1, testFill, testStroke, 0.1)

	second := recording.NewRecorder()
	first.Playback(second)

	if diff := cmp.Diff(first.Commands(), second.Commands(),
		cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("playback mismatch (-first +second):\n%s", diff)
	}
}
