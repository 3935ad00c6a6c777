package knobs

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"
)

// KnobStyle bundles the colors and stroke widths shared by the knob
// widgets.
type KnobStyle struct {
	// Fill is the color of the knob body.
	Fill gg.RGBA
	// Stroke outlines the knob body.
	Stroke Stroke
	// Line draws value lines, ticks and arc outlines.
	Line Stroke
	// ArcFill fills the value arc of gauge-style knobs.
	ArcFill gg.RGBA
}

// DefaultKnobStyle returns a neutral dark style.
func DefaultKnobStyle() KnobStyle {
	return KnobStyle{
		Fill:    gg.Hex("#303030"),
		Stroke:  NewStroke(2.0, gg.Hex("#606060")),
		Line:    NewStroke(2.0, gg.Hex("#e0e0e0")),
		ArcFill: gg.Hex("#1e6091"),
	}
}

// DisplayStyle bundles the colors of a segmented display.
type DisplayStyle struct {
	// Background fills the display face.
	Background gg.RGBA
	// ActiveForeground fills lit segments.
	ActiveForeground gg.RGBA
	// InactiveForeground fills unlit segments; fully transparent hides
	// them.
	InactiveForeground gg.RGBA
}

// displayPresets holds the built-in display styles, keyed by preset name.
var displayPresets = map[string]DisplayStyle{
	"default": {
		Background:         gg.Hex("#000000"),
		ActiveForeground:   gg.Hex("#e0e0e0"),
		InactiveForeground: gg.Hex("#202020"),
	},
	"calculator": {
		Background:         gg.Hex("#c5cbb2"),
		ActiveForeground:   gg.Hex("#1b1b16"),
		InactiveForeground: gg.Hex("#b9bfa8"),
	},
	"nixie": {
		Background:         gg.Hex("#1a0a00"),
		ActiveForeground:   gg.Hex("#ff9a4d"),
		InactiveForeground: gg.Hex("#2b1608"),
	},
	"knight-rider": {
		Background:         gg.Hex("#100000"),
		ActiveForeground:   gg.Hex("#ff0000"),
		InactiveForeground: gg.Hex("#2a0000"),
	},
	"blue-negative": {
		Background:         gg.Hex("#001060"),
		ActiveForeground:   gg.Hex("#e0e0ff"),
		InactiveForeground: gg.Hex("#101c70"),
	},
	"amber": {
		Background:         gg.Hex("#1a1000"),
		ActiveForeground:   gg.Hex("#ffbf00"),
		InactiveForeground: gg.Hex("#332410"),
	},
	"light-blue": {
		Background:         gg.Hex("#001018"),
		ActiveForeground:   gg.Hex("#80e0ff"),
		InactiveForeground: gg.Hex("#0a2830"),
	},
	"delorean-red": {
		Background:         gg.Hex("#120707"),
		ActiveForeground:   gg.Hex("#ff4040"),
		InactiveForeground: gg.Hex("#401010"),
	},
	"delorean-green": {
		Background:         gg.Hex("#071207"),
		ActiveForeground:   gg.Hex("#40ff40"),
		InactiveForeground: gg.Hex("#104010"),
	},
	"delorean-amber": {
		Background:         gg.Hex("#120e07"),
		ActiveForeground:   gg.Hex("#ffb340"),
		InactiveForeground: gg.Hex("#403010"),
	},
}

// DisplayStylePreset returns the built-in display style with the given
// name.
func DisplayStylePreset(name string) (DisplayStyle, error) {
	style, ok := displayPresets[name]
	if !ok {
		return DisplayStyle{}, fmt.Errorf("knobs: unknown display style preset %q", name)
	}
	return style, nil
}

// DisplayStylePresets returns the names of the built-in display styles.
func DisplayStylePresets() []string {
	names := make([]string, 0, len(displayPresets))
	for name := range displayPresets {
		names = append(names, name)
	}
	return names
}

// Theme is a set of named widget styles loaded from a TOML file. Styles
// resolved through a Theme fall back to the built-in presets for names the
// file does not define.
//
// Theme file format:
//
//	[display.cockpit]
//	background = "#001018"
//	active     = "#80e0ff"
//	inactive   = "#0a2830"
//
//	[knob.cockpit]
//	fill         = "#303030"
//	stroke       = "#606060"
//	stroke_width = 2.0
//	line         = "#e0e0e0"
//	line_width   = 2.0
//	arc_fill     = "#1e6091"
//
// Colors use gg's hex syntax (RGB, RGBA, RRGGBB or RRGGBBAA, with or
// without a leading #).
type Theme struct {
	Display map[string]displayStyleConfig `toml:"display"`
	Knob    map[string]knobStyleConfig    `toml:"knob"`
}

type displayStyleConfig struct {
	Background string `toml:"background"`
	Active     string `toml:"active"`
	Inactive   string `toml:"inactive"`
}

type knobStyleConfig struct {
	Fill        string  `toml:"fill"`
	StrokeColor string  `toml:"stroke"`
	StrokeWidth float32 `toml:"stroke_width"`
	LineColor   string  `toml:"line"`
	LineWidth   float32 `toml:"line_width"`
	ArcFill     string  `toml:"arc_fill"`
}

// LoadTheme reads a theme from a TOML file.
func LoadTheme(path string) (*Theme, error) {
	var theme Theme
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return nil, fmt.Errorf("knobs: loading theme %s: %w", path, err)
	}
	Logger().Debug("theme loaded", "path", path,
		"displayStyles", len(theme.Display), "knobStyles", len(theme.Knob))
	return &theme, nil
}

// DisplayStyle resolves a display style by name, preferring the theme file
// over the built-in presets.
func (t *Theme) DisplayStyle(name string) (DisplayStyle, error) {
	if cfg, ok := t.Display[name]; ok {
		return DisplayStyle{
			Background:         gg.Hex(cfg.Background),
			ActiveForeground:   gg.Hex(cfg.Active),
			InactiveForeground: gg.Hex(cfg.Inactive),
		}, nil
	}
	return DisplayStylePreset(name)
}

// KnobStyle resolves a knob style by name. Unknown names fall back to
// DefaultKnobStyle.
func (t *Theme) KnobStyle(name string) KnobStyle {
	cfg, ok := t.Knob[name]
	if !ok {
		return DefaultKnobStyle()
	}
	style := DefaultKnobStyle()
	if cfg.Fill != "" {
		style.Fill = gg.Hex(cfg.Fill)
	}
	if cfg.StrokeColor != "" {
		style.Stroke.Color = gg.Hex(cfg.StrokeColor)
	}
	if cfg.StrokeWidth > 0 {
		style.Stroke.Width = cfg.StrokeWidth
	}
	if cfg.LineColor != "" {
		style.Line.Color = gg.Hex(cfg.LineColor)
	}
	if cfg.LineWidth > 0 {
		style.Line.Width = cfg.LineWidth
	}
	if cfg.ArcFill != "" {
		style.ArcFill = gg.Hex(cfg.ArcFill)
	}
	return style
}
