// Package config loads pipeline settings from the environment.
package config

import (
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/minimap"
)

// Map preset names accepted by MapPreset.
const (
	MapPresetDefault = "DEFAULT"
	MapPresetCustom  = "CUSTOM"
)

// Config carries every tunable of the export pipeline. Values come from
// CURVEMAP_* environment variables.
type Config struct {
	// SVG output
	SVGScale       float64 `envconfig:"SVG_SCALE" default:"20.0"`
	Precision      int     `envconfig:"PRECISION" default:"2"`
	Resolution     int     `envconfig:"RESOLUTION" default:"12"`
	CenterAtOrigin bool    `envconfig:"CENTER_AT_ORIGIN" default:"false"`
	CommaDecimal   bool    `envconfig:"COMMA_DECIMAL" default:"false"`

	// Draw style for objects without properties of their own
	FillPreset  string        `envconfig:"FILL_PRESET" default:"ACCESSIBLE"`
	UseFill     bool          `envconfig:"USE_FILL" default:"true"`
	FillColor   document.RGBA `envconfig:"FILL_COLOR" default:"0.6,0.6,0.6,1.0"`
	UseStroke   bool          `envconfig:"USE_STROKE" default:"false"`
	StrokeColor document.RGBA `envconfig:"STROKE_COLOR" default:"0.25,0.25,0.25,1.0"`
	StrokeWidth float64       `envconfig:"STROKE_WIDTH" default:"0.5"`

	// Marker overlay
	ShowMarkers bool    `envconfig:"SHOW_MARKERS" default:"false"`
	MarkerColor string  `envconfig:"MARKER_COLOR" default:"#FF0000"`
	MarkerSize  float64 `envconfig:"MARKER_SIZE" default:"5.0"`

	// World bounds and minimap output size. The custom world values apply
	// only when MapPreset is CUSTOM.
	MapPreset     string  `envconfig:"MAP_PRESET" default:"DEFAULT"`
	WorldMinX     float64 `envconfig:"WORLD_MIN_X" default:"-4000.0"`
	WorldMaxX     float64 `envconfig:"WORLD_MAX_X" default:"4000.0"`
	WorldMinY     float64 `envconfig:"WORLD_MIN_Y" default:"-4000.0"`
	WorldMaxY     float64 `envconfig:"WORLD_MAX_Y" default:"4000.0"`
	MinimapWidth  float64 `envconfig:"MINIMAP_WIDTH" default:"300.0"`
	MinimapHeight float64 `envconfig:"MINIMAP_HEIGHT" default:"300.0"`

	// Simplification
	SimplifyCurves    bool    `envconfig:"SIMPLIFY_CURVES" default:"false"`
	SimplifyTolerance float64 `envconfig:"SIMPLIFY_TOLERANCE" default:"0.1"`

	// Memoization stores
	SelectionCacheSize   int           `envconfig:"SELECTION_CACHE_SIZE" default:"50"`
	SelectionCacheTTL    time.Duration `envconfig:"SELECTION_CACHE_TTL" default:"60s"`
	GeometryCacheSize    int           `envconfig:"GEOMETRY_CACHE_SIZE" default:"100"`
	GeometryCacheTTL     time.Duration `envconfig:"GEOMETRY_CACHE_TTL" default:"30m"`
	CalculationCacheSize int           `envconfig:"CALCULATION_CACHE_SIZE" default:"200"`
	CalculationCacheTTL  time.Duration `envconfig:"CALCULATION_CACHE_TTL" default:"10m"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from CURVEMAP_* environment variables and clamps
// values to their supported ranges.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("curvemap", &cfg); err != nil {
		return nil, err
	}
	cfg.clamp()
	return &cfg, nil
}

func (c *Config) clamp() {
	if c.SVGScale < 0.01 {
		c.SVGScale = 0.01
	}
	if c.Precision < 0 {
		c.Precision = 0
	}
	if c.Precision > 6 {
		c.Precision = 6
	}
	if c.Resolution < 1 {
		c.Resolution = 1
	}
	if c.MarkerSize < 1 {
		c.MarkerSize = 1
	}
	if c.MinimapWidth < 1 {
		c.MinimapWidth = 1
	}
	if c.MinimapHeight < 1 {
		c.MinimapHeight = 1
	}
}

// WorldBounds resolves the configured world rectangle.
func (c *Config) WorldBounds() minimap.WorldBounds {
	if c.MapPreset == MapPresetCustom {
		return minimap.WorldBounds{
			MinX: c.WorldMinX,
			MaxX: c.WorldMaxX,
			MinY: c.WorldMinY,
			MaxY: c.WorldMaxY,
		}
	}
	return minimap.DefaultWorldBounds()
}

// MinimapSize resolves the configured minimap output size.
func (c *Config) MinimapSize() minimap.Size {
	return minimap.Size{Width: c.MinimapWidth, Height: c.MinimapHeight}
}

// DefaultStyle builds the draw style applied to objects that carry no style
// properties of their own.
func (c *Config) DefaultStyle() document.CurveStyle {
	return document.CurveStyle{
		FillPreset:  c.FillPreset,
		UseFill:     c.UseFill,
		Fill:        c.FillColor,
		UseStroke:   c.UseStroke,
		Stroke:      c.StrokeColor,
		StrokeWidth: c.StrokeWidth,
	}
}

// SlogLevel parses LogLevel, falling back to info on unknown values.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
