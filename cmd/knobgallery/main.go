// Command knobgallery renders a gallery of the widgets in this library to
// a PNG file.
package main

import (
	"flag"
	"log"

	"github.com/gogpu/gg"

	knobs "github.com/gogpu/gg-knobs"
)

func main() {
	out := flag.String("o", "knobgallery.png", "output PNG path")
	theme := flag.String("theme", "", "optional TOML theme file")
	flag.Parse()

	const (
		width  = 900
		height = 620
	)

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.Hex("#181818"))
	canvas := knobs.NewCanvas(dc)

	knobStyle := knobs.DefaultKnobStyle()
	displayStyle, _ := knobs.DisplayStylePreset("nixie")
	if *theme != "" {
		t, err := knobs.LoadTheme(*theme)
		if err != nil {
			log.Fatalf("Failed to load theme: %v", err)
		}
		knobStyle = t.KnobStyle("gallery")
		if style, err := t.DisplayStyle("gallery"); err == nil {
			displayStyle = style
		}
	}

	drawAngleKnobs(canvas, knobStyle)
	drawAudioKnobs(canvas, knobStyle)
	drawCompass(canvas, knobStyle)
	drawDisplays(canvas, displayStyle)

	if err := canvas.Err(); err != nil {
		log.Fatalf("Render error: %v", err)
	}
	if err := dc.SavePNG(*out); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Created %s", *out)
}

// drawAngleKnobs paints one angle knob per outline shape family.
func drawAngleKnobs(p knobs.Painter, style knobs.KnobStyle) {
	squircle, err := knobs.NewSquircleShape(4)
	if err != nil {
		log.Fatalf("Bad squircle: %v", err)
	}
	hexagon, err := knobs.NewPolygonShape(6)
	if err != nil {
		log.Fatalf("Bad polygon: %v", err)
	}

	shapes := []knobs.WidgetShape{
		knobs.CircleShape{},
		knobs.SquareShape{},
		squircle,
		hexagon,
		knobs.Mix(knobs.CircleShape{}, hexagon, 0.5),
		knobs.Rotated(hexagon, knobs.Tau/12),
	}

	for i, shape := range shapes {
		kn := knobs.NewAngleKnob(110)
		kn.Shape = shape
		kn.Style = style
		center := knobs.V(90+float32(i)*145, 90)
		kn.Draw(p, center, knobs.Tau*float32(i)/float32(len(shapes)))
	}
}

// drawAudioKnobs paints a row of gauge knobs at increasing values.
func drawAudioKnobs(p knobs.Painter, style knobs.KnobStyle) {
	for i := 0; i < 6; i++ {
		kn := knobs.NewAudioKnob(110, 0, 1)
		kn.Style = style
		center := knobs.V(90+float32(i)*145, 250)
		kn.Draw(p, center, float32(i)/5)
	}
}

func drawCompass(p knobs.Painter, style knobs.KnobStyle) {
	star, err := knobs.NewStarMarker(5, 0.5)
	if err != nil {
		log.Fatalf("Bad star marker: %v", err)
	}

	compass := knobs.NewCompassWidget(700, 90)
	compass.Style = style
	compass.Markers = []knobs.CompassMarker{
		{Heading: 0.3, Shape: knobs.DiamondMarker{}, Label: "HOME", Color: gg.Hex("#80e0ff")},
		{Heading: 0.9, Shape: star, Label: "WPT1", Color: gg.Hex("#ffbf00")},
		{Heading: -0.4, Shape: knobs.ArrowMarker{Direction: knobs.ArrowDown}, Color: gg.Hex("#ff4040")},
	}
	compass.Draw(p, knobs.V(450, 390), 0.5)
}

func drawDisplays(p knobs.Painter, style knobs.DisplayStyle) {
	seven := knobs.NewSegmentedDisplay(knobs.SevenSegment, 60)
	seven.Style = style
	seven.Slant = 0.1
	seven.Draw(p, knobs.V(60, 480), "-12358")

	sixteen := knobs.NewSegmentedDisplay(knobs.SixteenSegment, 60)
	sixteen.Style = style
	sixteen.Draw(p, knobs.V(420, 480), "KNOBS")
}
