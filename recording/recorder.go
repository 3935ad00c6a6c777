package recording

import (
	"github.com/gogpu/gg"

	knobs "github.com/gogpu/gg-knobs"
)

// Recorder is a knobs.Painter that appends every draw call to a command
// list instead of rasterizing it.
//
// Recorder is not safe for concurrent use; record a frame from one
// goroutine, then inspect or replay it freely.
type Recorder struct {
	commands []Command
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FillPolygon records a polygon fill. The point slice is copied, so the
// caller may reuse its buffer.
func (r *Recorder) FillPolygon(points []knobs.Vec2, fill gg.RGBA, stroke knobs.Stroke) {
	r.commands = append(r.commands, FillPolygonCmd{
		Points: append([]knobs.Vec2(nil), points...),
		Fill:   fill,
		Stroke: stroke,
	})
}

// Polyline records a polyline stroke. The point slice is copied.
func (r *Recorder) Polyline(points []knobs.Vec2, closed bool, stroke knobs.Stroke) {
	r.commands = append(r.commands, PolylineCmd{
		Points: append([]knobs.Vec2(nil), points...),
		Closed: closed,
		Stroke: stroke,
	})
}

// LineSegment records a segment stroke.
func (r *Recorder) LineSegment(a, b knobs.Vec2, stroke knobs.Stroke) {
	r.commands = append(r.commands, LineSegmentCmd{A: a, B: b, Stroke: stroke})
}

// Text records a text draw.
func (r *Recorder) Text(pos knobs.Vec2, s string, height float32, col gg.RGBA) {
	r.commands = append(r.commands, TextCmd{Pos: pos, Text: s, Height: height, Color: col})
}

// Commands returns the recorded commands in draw order. The returned slice
// is the Recorder's own; treat it as read-only.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Count returns how many commands of the given type were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, cmd := range r.commands {
		if cmd.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands, keeping the backing storage for
// the next frame.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recorded commands onto another Painter in draw
// order.
func (r *Recorder) Playback(p knobs.Painter) {
	for _, cmd := range r.commands {
		cmd.Replay(p)
	}
}
