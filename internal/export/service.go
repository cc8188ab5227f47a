package export

import (
	"log/slog"

	"github.com/curvemap/curvemap/internal/cache"
	"github.com/curvemap/curvemap/internal/config"
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/engine"
	"github.com/curvemap/curvemap/internal/geometry"
	"github.com/curvemap/curvemap/internal/minimap"
	"github.com/curvemap/curvemap/internal/typeid"
)

// Result describes one export run. Valid is false when the scene held no
// drawable curves; the placeholder SVG is still written in that case.
type Result struct {
	ID         string `json:"id"`
	Valid      bool   `json:"valid"`
	Message    string `json:"message,omitempty"`
	CurveCount int    `json:"curveCount"`
	PointCount int    `json:"pointCount"`
	SVGPath    string `json:"svgPath"`
	DataPath   string `json:"dataPath"`
}

// Stats aggregates the usage counters of every memoization store.
type Stats struct {
	Pipeline    engine.Stats `json:"pipeline"`
	Calculation cache.Stats  `json:"calculation"`
}

// Service runs scenes through the full pipeline and writes the output
// files. All memoization stores live here and are shared across runs.
type Service struct {
	cfg        *config.Config
	pipeline   *engine.Pipeline
	calculator *minimap.Calculator
}

// NewService wires the pipeline and coordinate calculator from the loaded
// settings.
func NewService(cfg *config.Config) *Service {
	pipeline := engine.NewPipeline(engine.Options{
		SelectionCapacity: cfg.SelectionCacheSize,
		SelectionTTL:      cfg.SelectionCacheTTL,
		GeometryCapacity:  cfg.GeometryCacheSize,
		GeometryTTL:       cfg.GeometryCacheTTL,
	})
	results := cache.NewStore[string, []minimap.MarkerPoint](cfg.CalculationCacheSize, cfg.CalculationCacheTTL)

	return &Service{
		cfg:        cfg,
		pipeline:   pipeline,
		calculator: minimap.NewCalculator(cfg.WorldBounds(), cfg.MinimapSize(), results),
	}
}

// Render runs the scene through extraction, optional simplification and
// normalization and serializes the result, without touching the filesystem.
// A scene without drawable curves is not an error: the SVG comes back as
// the placeholder document and the result carries the message.
func (s *Service) Render(scene *document.Scene) (string, minimap.MarkerData, *Result) {
	result := &Result{ID: typeid.NewExportID()}

	sel := s.pipeline.Extract(scene)
	if sel.Valid && s.cfg.SimplifyCurves {
		sel = s.pipeline.Simplify(sel, s.cfg.SimplifyTolerance)
	}

	var curves []engine.CurveData
	if sel.Valid {
		curves = s.pipeline.Normalize(sel, s.cfg.CenterAtOrigin)
	} else {
		result.Message = sel.Message
		slog.Warn("nothing to render", "message", sel.Message)
	}
	result.Valid = sel.Valid
	result.CurveCount = len(curves)
	result.PointCount = sel.PointCount

	dims := engine.CalculateDimensions(sel)
	markerData := s.calculator.GenerateMarkerData(markerPositions(scene))

	svg := GenerateSVG(curves, dims, markerData.MinimapPoints, OptionsFromConfig(s.cfg))
	return svg, markerData, result
}

// Export renders the scene and writes the SVG and its companion marker-data
// file next to it.
func (s *Service) Export(scene *document.Scene, outPath string) (*Result, error) {
	svg, markerData, result := s.Render(scene)
	result.SVGPath = outPath

	if err := WriteSVG(outPath, svg); err != nil {
		return nil, err
	}
	dataPath, err := WriteMarkerData(outPath, markerData)
	if err != nil {
		return nil, err
	}
	result.DataPath = dataPath

	slog.Info("export complete", "id", result.ID, "curves", result.CurveCount, "svg", outPath, "data", dataPath)
	return result, nil
}

// Report computes the dimensions and positions of the scene's curves
// without writing anything.
func (s *Service) Report(scene *document.Scene) Report {
	sel := s.pipeline.Extract(scene)
	if !sel.Valid {
		return Report{Message: sel.Message}
	}

	dims := engine.CalculateDimensions(sel)
	exportCenter := s.calculator.EditorToExport(
		geometry.Vec3(0, sel.Center.X, sel.Center.Y),
		s.cfg.SVGScale, dims.SVGWidth, dims.SVGHeight,
	)

	return Report{
		Valid:        true,
		CurveCount:   len(sel.Curves),
		PointCount:   sel.PointCount,
		Width:        dims.Width,
		Height:       dims.Height,
		ScaledWidth:  dims.SVGWidth * s.cfg.SVGScale,
		ScaledHeight: dims.SVGHeight * s.cfg.SVGScale,
		PathLength:   pathLength(sel, s.cfg.Resolution),
		Center:       sel.Center,
		SVGPosition:  geometry.Vec2(sel.Center.X*s.cfg.SVGScale, sel.Center.Y*s.cfg.SVGScale),
		ExportCenter: exportCenter,
	}
}

// ApplyStyle writes the style onto every curve object's property bag and
// clears the selection store so the next extraction picks the change up.
// Returns the number of objects updated.
func (s *Service) ApplyStyle(scene *document.Scene, style document.CurveStyle) int {
	if scene == nil || len(scene.Objects) == 0 {
		return 0
	}

	for i := range scene.Objects {
		obj := &scene.Objects[i]
		if obj.Props == nil {
			obj.Props = make(map[string]any, 6)
		}
		obj.Props["fill_preset"] = style.FillPreset
		obj.Props["use_fill"] = style.UseFill
		obj.Props["fill_color"] = []float64{style.Fill.R, style.Fill.G, style.Fill.B, style.Fill.A}
		obj.Props["use_stroke"] = style.UseStroke
		obj.Props["stroke_color"] = []float64{style.Stroke.R, style.Stroke.G, style.Stroke.B, style.Stroke.A}
		obj.Props["stroke_width"] = style.StrokeWidth
	}

	s.pipeline.InvalidateStyle()
	slog.Debug("style applied", "objects", len(scene.Objects), "preset", style.FillPreset)
	return len(scene.Objects)
}

// Calculator exposes the service's coordinate calculator for hosts that
// need point conversions outside a full render.
func (s *Service) Calculator() *minimap.Calculator {
	return s.calculator
}

// CacheStats reports the counters of every store.
func (s *Service) CacheStats() Stats {
	return Stats{
		Pipeline:    s.pipeline.CacheStats(),
		Calculation: s.calculator.CacheStats(),
	}
}

// ClearCaches drops every memoized result.
func (s *Service) ClearCaches() {
	s.pipeline.InvalidateAll()
	s.calculator.ClearCache()
}

// markerPositions returns the scene's marker positions, nil-safe.
func markerPositions(scene *document.Scene) []geometry.Vector3 {
	if scene == nil {
		return nil
	}
	return scene.Markers
}
