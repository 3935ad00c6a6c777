// Package knobs provides custom rotary widgets for gg-based immediate-mode UIs.
//
// # Overview
//
// knobs is a companion library for github.com/gogpu/gg. It implements the
// widget vocabulary of audio and instrumentation software (angle knobs,
// audio-style value knobs, compass strips, segmented LED/LCD displays)
// on top of a shared polar-shape engine that can tessellate non-rectangular
// widget outlines (circles, squares, squircles, polygons, and blends of
// these) into plain fill and stroke primitives.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/gg"
//		knobs "github.com/gogpu/gg-knobs"
//	)
//
//	dc := gg.NewContext(256, 256)
//	dc.ClearWithColor(gg.White)
//
//	kn := knobs.NewAudioKnob(200, 0, 1)
//	kn.Draw(knobs.NewCanvas(dc), knobs.V(128, 128), 0.65)
//
//	dc.SavePNG("knob.png")
//
// # Architecture
//
// The library is organized around three layers:
//   - Shape engine: WidgetShape polar evaluators plus the PaintShape and
//     PaintArc tessellators.
//   - Painter: an abstract sink for filled polygons, polylines, line
//     segments, and anchored text. Canvas adapts a *gg.Context; the
//     recording subpackage captures draw commands for tests and replay.
//   - Widgets: AngleKnob, AudioKnob, CompassWidget, SegmentedDisplay.
//     Widgets are paint-side only. They consume a value and emit draw
//     calls; pointer and keyboard handling stays with the host toolkit,
//     which can use the inverse mappings (for example
//     AngleKnob.ValueFromPoint) to implement interaction.
//
// # Coordinate System
//
// Matches gg: origin at top-left, X right, Y down, angles in radians with 0
// pointing right. All geometry is float32; colors are gg.RGBA.
package knobs
