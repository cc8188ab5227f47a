package document

import (
	"encoding/json"
	"testing"
)

func TestDecodeStyleDefaults(t *testing.T) {
	want := DefaultCurveStyle()

	if got := DecodeStyle(nil); got != want {
		t.Errorf("DecodeStyle(nil) = %+v, want %+v", got, want)
	}
	if got := DecodeStyle(map[string]any{}); got != want {
		t.Errorf("DecodeStyle(empty) = %+v, want %+v", got, want)
	}
	if got := DecodeStyle(map[string]any{"unrelated": 1}); got != want {
		t.Errorf("DecodeStyle(unrelated) = %+v, want %+v", got, want)
	}
}

func TestDecodeStyleFull(t *testing.T) {
	props := map[string]any{
		"fill_preset":  PresetNextArea,
		"use_fill":     true,
		"fill_color":   []any{1.0, 1.0, 1.0, 1.0},
		"use_stroke":   true,
		"stroke_color": []any{0.1, 0.2, 0.3},
		"stroke_width": 2.5,
	}

	got := DecodeStyle(props)
	want := CurveStyle{
		FillPreset:  PresetNextArea,
		UseFill:     true,
		Fill:        RGBA{1, 1, 1, 1},
		UseStroke:   true,
		Stroke:      RGBA{0.1, 0.2, 0.3, 1},
		StrokeWidth: 2.5,
	}
	if got != want {
		t.Errorf("DecodeStyle = %+v, want %+v", got, want)
	}
}

// Property bags decoded from JSON or assembled by hosts carry numbers in
// several shapes; all of them must decode.
func TestDecodeStyleLooseTypes(t *testing.T) {
	got := DecodeStyle(map[string]any{
		"use_fill":     0.0,
		"use_stroke":   1,
		"stroke_width": 2,
		"fill_color":   []float64{0.5, 0.5, 0.5},
	})

	if got.UseFill {
		t.Error("numeric 0 decoded as true")
	}
	if !got.UseStroke {
		t.Error("numeric 1 decoded as false")
	}
	if got.StrokeWidth != 2 {
		t.Errorf("integer stroke_width = %g, want 2", got.StrokeWidth)
	}
	if got.Fill != (RGBA{0.5, 0.5, 0.5, 1}) {
		t.Errorf("fill = %+v", got.Fill)
	}

	// Decoders run with UseNumber and host-assembled bags carry json.Number.
	got = DecodeStyle(map[string]any{
		"use_fill":     json.Number("0"),
		"stroke_width": json.Number("2.5"),
		"fill_color":   []any{json.Number("1"), json.Number("0"), json.Number("0")},
	})

	if got.UseFill {
		t.Error("json.Number 0 decoded as true")
	}
	if got.StrokeWidth != 2.5 {
		t.Errorf("json.Number stroke_width = %g, want 2.5", got.StrokeWidth)
	}
	if got.Fill != (RGBA{1, 0, 0, 1}) {
		t.Errorf("json.Number fill = %+v", got.Fill)
	}
}

func TestDecodeStyleUnusableValues(t *testing.T) {
	want := DefaultCurveStyle()
	got := DecodeStyle(map[string]any{
		"use_fill":     "yes",
		"use_stroke":   json.Number("maybe"),
		"fill_color":   "red",
		"stroke_color": []any{"r", "g", "b"},
		"stroke_width": "wide",
		"fill_preset":  7,
	})

	if got != want {
		t.Errorf("unusable values altered the defaults: %+v", got)
	}
}

func TestApplyFillPreset(t *testing.T) {
	style := DefaultCurveStyle()

	got := ApplyFillPreset(style, PresetEntities)
	if got.FillPreset != PresetEntities || got.Fill != FillPresets[PresetEntities] {
		t.Errorf("ApplyFillPreset(ENTITIES) = %+v", got)
	}

	// CUSTOM records the name but keeps the current color.
	custom := ApplyFillPreset(got, PresetCustom)
	if custom.FillPreset != PresetCustom || custom.Fill != FillPresets[PresetEntities] {
		t.Errorf("ApplyFillPreset(CUSTOM) = %+v", custom)
	}
}

func TestRGBAUnmarshalText(t *testing.T) {
	cases := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{in: "0.6,0.6,0.6,1.0", want: RGBA{0.6, 0.6, 0.6, 1}},
		{in: "0.25, 0.25, 0.25", want: RGBA{0.25, 0.25, 0.25, 1}},
		{in: "1,0,0,0.5", want: RGBA{1, 0, 0, 0.5}},
		{in: "1,0", wantErr: true},
		{in: "r,g,b", wantErr: true},
	}

	for _, tc := range cases {
		var got RGBA
		err := got.UnmarshalText([]byte(tc.in))
		if tc.wantErr {
			if err == nil {
				t.Errorf("UnmarshalText(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("UnmarshalText(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("UnmarshalText(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestRGBAHex(t *testing.T) {
	cases := []struct {
		c    RGBA
		want string
	}{
		{RGBA{1, 0, 0, 1}, "#ff0000"},
		{RGBA{0.435, 0.435, 0.435, 1}, "#6f6f6f"},
		{RGBA{0.25, 0.25, 0.25, 0.5}, "#404040"},
	}

	for _, tc := range cases {
		if got := tc.c.Hex(); got != tc.want {
			t.Errorf("%+v.Hex() = %q, want %q", tc.c, got, tc.want)
		}
	}
}
