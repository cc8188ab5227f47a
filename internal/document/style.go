package document

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/curvemap/curvemap/internal/geometry"
)

// RGBA is a color with channels in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex returns the color as a "#rrggbb" string. Alpha is dropped.
func (c RGBA) Hex() string {
	return geometry.HexColor(c.R, c.G, c.B)
}

// UnmarshalText parses "r,g,b" or "r,g,b,a". A missing alpha defaults to 1.
func (c *RGBA) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), ",")
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("color %q: want 3 or 4 comma-separated channels", text)
	}
	channels := make([]float64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return fmt.Errorf("color %q: %w", text, err)
		}
		channels[i] = v
	}
	c.R, c.G, c.B, c.A = channels[0], channels[1], channels[2], 1
	if len(channels) == 4 {
		c.A = channels[3]
	}
	return nil
}

// Fill preset names selectable per object or globally. PresetCustom keeps
// whatever fill color is already set.
const (
	PresetAccessible = "ACCESSIBLE"
	PresetEntities   = "ENTITIES"
	PresetNextArea   = "NEXT_AREA"
	PresetLimits     = "LIMITS"
	PresetCustom     = "CUSTOM"
)

// FillPresets maps preset names to their fill colors.
var FillPresets = map[string]RGBA{
	PresetAccessible: {0.6, 0.6, 0.6, 1},
	PresetEntities:   {0.435, 0.435, 0.435, 1},
	PresetNextArea:   {1, 1, 1, 1},
	PresetLimits:     {0.25, 0.25, 0.25, 1},
}

// CurveStyle is the resolved per-object drawing style.
type CurveStyle struct {
	FillPreset  string  `json:"fillPreset"`
	UseFill     bool    `json:"useFill"`
	Fill        RGBA    `json:"fill"`
	UseStroke   bool    `json:"useStroke"`
	Stroke      RGBA    `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
}

// DefaultCurveStyle returns the style applied when an object carries no
// style properties at all.
func DefaultCurveStyle() CurveStyle {
	return CurveStyle{
		FillPreset:  PresetAccessible,
		UseFill:     true,
		Fill:        FillPresets[PresetAccessible],
		UseStroke:   false,
		Stroke:      RGBA{0.25, 0.25, 0.25, 1},
		StrokeWidth: 0.5,
	}
}

// ApplyFillPreset swaps the style's fill color for the preset's one and
// records the preset name. Unknown presets and PresetCustom leave the color
// untouched.
func ApplyFillPreset(style CurveStyle, preset string) CurveStyle {
	style.FillPreset = preset
	if color, ok := FillPresets[preset]; ok {
		style.Fill = color
	}
	return style
}

// DecodeStyle reads style attributes from an object's loosely-typed property
// bag, falling back to the defaults for anything absent or of an unusable
// type. Recognized keys: fill_preset, use_fill, fill_color, use_stroke,
// stroke_color, stroke_width. Colors are arrays of 3 or 4 numbers; booleans
// also accept 0/1 numbers.
func DecodeStyle(props map[string]any) CurveStyle {
	style := DefaultCurveStyle()
	if len(props) == 0 {
		return style
	}

	style.FillPreset = stringProp(props, "fill_preset", style.FillPreset)
	style.UseFill = boolProp(props, "use_fill", style.UseFill)
	style.Fill = colorProp(props, "fill_color", style.Fill)
	style.UseStroke = boolProp(props, "use_stroke", style.UseStroke)
	style.Stroke = colorProp(props, "stroke_color", style.Stroke)
	style.StrokeWidth = floatProp(props, "stroke_width", style.StrokeWidth)
	return style
}

func stringProp(props map[string]any, key, fallback string) string {
	if s, ok := props[key].(string); ok {
		return s
	}
	return fallback
}

func boolProp(props map[string]any, key string, fallback bool) bool {
	switch v := props[key].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case int:
		return v != 0
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f != 0
		}
		return fallback
	default:
		return fallback
	}
}

func floatProp(props map[string]any, key string, fallback float64) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return fallback
	default:
		return fallback
	}
}

func colorProp(props map[string]any, key string, fallback RGBA) RGBA {
	raw, ok := props[key]
	if !ok {
		return fallback
	}

	var channels []float64
	switch v := raw.(type) {
	case []float64:
		channels = v
	case []any:
		channels = make([]float64, 0, len(v))
		for _, c := range v {
			switch n := c.(type) {
			case float64:
				channels = append(channels, n)
			case int:
				channels = append(channels, float64(n))
			case json.Number:
				f, err := n.Float64()
				if err != nil {
					return fallback
				}
				channels = append(channels, f)
			default:
				return fallback
			}
		}
	default:
		return fallback
	}

	switch len(channels) {
	case 3:
		return RGBA{channels[0], channels[1], channels[2], 1}
	case 4:
		return RGBA{channels[0], channels[1], channels[2], channels[3]}
	default:
		return fallback
	}
}
