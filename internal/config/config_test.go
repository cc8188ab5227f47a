package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/minimap"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SVGScale != 20 {
		t.Errorf("SVGScale = %g, want 20", cfg.SVGScale)
	}
	if cfg.Precision != 2 {
		t.Errorf("Precision = %d, want 2", cfg.Precision)
	}
	if cfg.Resolution != 12 {
		t.Errorf("Resolution = %d, want 12", cfg.Resolution)
	}
	if cfg.CenterAtOrigin {
		t.Error("CenterAtOrigin should default to false")
	}
	if cfg.FillPreset != document.PresetAccessible {
		t.Errorf("FillPreset = %q, want %q", cfg.FillPreset, document.PresetAccessible)
	}
	if cfg.FillColor != (document.RGBA{R: 0.6, G: 0.6, B: 0.6, A: 1}) {
		t.Errorf("FillColor = %+v", cfg.FillColor)
	}
	if cfg.StrokeWidth != 0.5 {
		t.Errorf("StrokeWidth = %g, want 0.5", cfg.StrokeWidth)
	}
	if cfg.MarkerColor != "#FF0000" {
		t.Errorf("MarkerColor = %q", cfg.MarkerColor)
	}
	if cfg.MarkerSize != 5 {
		t.Errorf("MarkerSize = %g, want 5", cfg.MarkerSize)
	}
	if cfg.MapPreset != MapPresetDefault {
		t.Errorf("MapPreset = %q, want %q", cfg.MapPreset, MapPresetDefault)
	}
	if cfg.MinimapWidth != 300 || cfg.MinimapHeight != 300 {
		t.Errorf("minimap size = %gx%g, want 300x300", cfg.MinimapWidth, cfg.MinimapHeight)
	}
	if cfg.SimplifyTolerance != 0.1 {
		t.Errorf("SimplifyTolerance = %g, want 0.1", cfg.SimplifyTolerance)
	}
	if cfg.SelectionCacheTTL != time.Minute {
		t.Errorf("SelectionCacheTTL = %v, want 1m", cfg.SelectionCacheTTL)
	}
	if cfg.GeometryCacheTTL != 30*time.Minute {
		t.Errorf("GeometryCacheTTL = %v, want 30m", cfg.GeometryCacheTTL)
	}
	if cfg.CalculationCacheTTL != 10*time.Minute {
		t.Errorf("CalculationCacheTTL = %v, want 10m", cfg.CalculationCacheTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CURVEMAP_SVG_SCALE", "2.5")
	t.Setenv("CURVEMAP_PRECISION", "4")
	t.Setenv("CURVEMAP_FILL_COLOR", "1,0,0,0.5")
	t.Setenv("CURVEMAP_USE_STROKE", "true")
	t.Setenv("CURVEMAP_SELECTION_CACHE_TTL", "90s")
	t.Setenv("CURVEMAP_MAP_PRESET", "CUSTOM")
	t.Setenv("CURVEMAP_WORLD_MIN_X", "-100")
	t.Setenv("CURVEMAP_WORLD_MAX_X", "100")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.SVGScale != 2.5 {
		t.Errorf("SVGScale = %g, want 2.5", cfg.SVGScale)
	}
	if cfg.Precision != 4 {
		t.Errorf("Precision = %d, want 4", cfg.Precision)
	}
	if cfg.FillColor != (document.RGBA{R: 1, G: 0, B: 0, A: 0.5}) {
		t.Errorf("FillColor = %+v", cfg.FillColor)
	}
	if !cfg.UseStroke {
		t.Error("UseStroke not picked up from environment")
	}
	if cfg.SelectionCacheTTL != 90*time.Second {
		t.Errorf("SelectionCacheTTL = %v, want 90s", cfg.SelectionCacheTTL)
	}

	bounds := cfg.WorldBounds()
	want := minimap.WorldBounds{MinX: -100, MaxX: 100, MinY: -4000, MaxY: 4000}
	if bounds != want {
		t.Errorf("WorldBounds = %+v, want %+v", bounds, want)
	}
}

func TestLoadRejectsBadColor(t *testing.T) {
	t.Setenv("CURVEMAP_FILL_COLOR", "not-a-color")

	if _, err := Load(); err == nil {
		t.Fatal("Load accepted an unparseable color")
	}
}

func TestLoadClampsRanges(t *testing.T) {
	t.Setenv("CURVEMAP_PRECISION", "9")
	t.Setenv("CURVEMAP_SVG_SCALE", "0")
	t.Setenv("CURVEMAP_RESOLUTION", "0")
	t.Setenv("CURVEMAP_MARKER_SIZE", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Precision != 6 {
		t.Errorf("Precision = %d, want clamp to 6", cfg.Precision)
	}
	if cfg.SVGScale != 0.01 {
		t.Errorf("SVGScale = %g, want clamp to 0.01", cfg.SVGScale)
	}
	if cfg.Resolution != 1 {
		t.Errorf("Resolution = %d, want clamp to 1", cfg.Resolution)
	}
	if cfg.MarkerSize != 1 {
		t.Errorf("MarkerSize = %g, want clamp to 1", cfg.MarkerSize)
	}
}

// Custom world fields are inert under the DEFAULT preset.
func TestWorldBoundsIgnoresCustomUnderDefaultPreset(t *testing.T) {
	cfg := Config{
		MapPreset: MapPresetDefault,
		WorldMinX: -1, WorldMaxX: 1, WorldMinY: -1, WorldMaxY: 1,
	}

	if got := cfg.WorldBounds(); got != minimap.DefaultWorldBounds() {
		t.Errorf("WorldBounds = %+v, want defaults", got)
	}
}

func TestDefaultStyleMatchesDocumentDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := cfg.DefaultStyle(), document.DefaultCurveStyle(); got != want {
		t.Errorf("DefaultStyle = %+v, want %+v", got, want)
	}
}

func TestSlogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}

	for _, tc := range cases {
		cfg := Config{LogLevel: tc.in}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
