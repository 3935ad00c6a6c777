// Package recording captures the draw commands a widget emits through the
// knobs.Painter interface.
//
// A Recorder stands in for a live canvas: tests inspect the recorded
// command stream instead of rasterized pixels, and applications can defer
// or duplicate painting by replaying a recording onto any other Painter.
// Commands are typed structs rather than a serialized format, for
// inspectability.
package recording

import (
	"github.com/gogpu/gg"

	knobs "github.com/gogpu/gg-knobs"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	// CmdFillPolygon is a filled (and outlined) polygon.
	CmdFillPolygon CommandType = iota
	// CmdPolyline is a stroked open or closed polyline.
	CmdPolyline
	// CmdLineSegment is a single stroked segment.
	CmdLineSegment
	// CmdText is an anchored text draw.
	CmdText
)

var commandTypeNames = [...]string{
	CmdFillPolygon: "FillPolygon",
	CmdPolyline:    "Polyline",
	CmdLineSegment: "LineSegment",
	CmdText:        "Text",
}

// String returns the name of the command type.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all recorded command types.
type Command interface {
	// Type returns the command's type tag.
	Type() CommandType
	// Replay re-issues the command on a Painter.
	Replay(p knobs.Painter)
}

// FillPolygonCmd records a Painter.FillPolygon call.
type FillPolygonCmd struct {
	Points []knobs.Vec2
	Fill   gg.RGBA
	Stroke knobs.Stroke
}

// Type returns CmdFillPolygon.
func (c FillPolygonCmd) Type() CommandType { return CmdFillPolygon }

// Replay re-issues the fill on a Painter.
func (c FillPolygonCmd) Replay(p knobs.Painter) {
	p.FillPolygon(c.Points, c.Fill, c.Stroke)
}

// PolylineCmd records a Painter.Polyline call.
type PolylineCmd struct {
	Points []knobs.Vec2
	Closed bool
	Stroke knobs.Stroke
}

// Type returns CmdPolyline.
func (c PolylineCmd) Type() CommandType { return CmdPolyline }

// Replay re-issues the polyline on a Painter.
func (c PolylineCmd) Replay(p knobs.Painter) {
	p.Polyline(c.Points, c.Closed, c.Stroke)
}

// LineSegmentCmd records a Painter.LineSegment call.
type LineSegmentCmd struct {
	A, B   knobs.Vec2
	Stroke knobs.Stroke
}

// Type returns CmdLineSegment.
func (c LineSegmentCmd) Type() CommandType { return CmdLineSegment }

// Replay re-issues the segment on a Painter.
func (c LineSegmentCmd) Replay(p knobs.Painter) {
	p.LineSegment(c.A, c.B, c.Stroke)
}

// TextCmd records a Painter.Text call.
type TextCmd struct {
	Pos    knobs.Vec2
	Text   string
	Height float32
	Color  gg.RGBA
}

// Type returns CmdText.
func (c TextCmd) Type() CommandType { return CmdText }

// Replay re-issues the text draw on a Painter.
func (c TextCmd) Replay(p knobs.Painter) {
	p.Text(c.Pos, c.Text, c.Height, c.Color)
}
