package recording

import (
	"testing"

	"github.com/gogpu/gg"

	knobs "github.com/gogpu/gg-knobs"
)

func TestRecorderCaptures(t *testing.T) {
	rec := NewRecorder()
	stroke := knobs.NewStroke(2, gg.White)

	rec.FillPolygon([]knobs.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, gg.Red, stroke)
	rec.Polyline([]knobs.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 0}}, false, stroke)
	rec.LineSegment(knobs.V(0, 0), knobs.V(3, 4), stroke)
	rec.Text(knobs.V(1, 2), "N", 12, gg.Blue)

	if rec.Len() != 4 {
		t.Fatalf("Len = %d, want 4", rec.Len())
	}
	for cmdType, want := range map[CommandType]int{
		CmdFillPolygon: 1,
		CmdPolyline:    1,
		CmdLineSegment: 1,
		CmdText:        1,
	} {
		if got := rec.Count(cmdType); got != want {
			t.Errorf("Count(%s) = %d, want %d", cmdType, got, want)
		}
	}
}

func TestRecorderCopiesPoints(t *testing.T) {
	rec := NewRecorder()
	points := []knobs.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	rec.FillPolygon(points, gg.Red, knobs.Stroke{})

	points[0] = knobs.V(99, 99)

	cmd := rec.Commands()[0].(FillPolygonCmd)
	if cmd.Points[0] != knobs.V(0, 0) {
		t.Errorf("recorded point = %v, want the value at record time", cmd.Points[0])
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder()
	rec.LineSegment(knobs.V(0, 0), knobs.V(1, 1), knobs.Stroke{})
	rec.Reset()
	if rec.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", rec.Len())
	}
}

func TestRecorderPlaybackOrder(t *testing.T) {
	first := NewRecorder()
	first.LineSegment(knobs.V(0, 0), knobs.V(1, 1), knobs.Stroke{})
	first.Text(knobs.V(1, 1), "a", 8, gg.White)

	second := NewRecorder()
	first.Playback(second)

	if second.Len() != first.Len() {
		t.Fatalf("replayed Len = %d, want %d", second.Len(), first.Len())
	}
	for i := range first.Commands() {
		if got, want := second.Commands()[i].Type(), first.Commands()[i].Type(); got != want {
			t.Errorf("command %d type = %s, want %s", i, got, want)
		}
	}
}

func TestCommandTypeString(t *testing.T) {
	cases := map[CommandType]string{
		CmdFillPolygon:  "FillPolygon",
		CmdPolyline:     "Polyline",
		CmdLineSegment:  "LineSegment",
		CmdText:         "Text",
		CommandType(99): "Unknown",
	}
	for cmdType, want := range cases {
		if got := cmdType.String(); got != want {
			t.Errorf("CommandType(%d).String() = %q, want %q", cmdType, got, want)
		}
	}
}
