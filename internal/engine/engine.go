// Package engine turns editor curve objects into normalized 2D path data
// ready for serialization, memoizing the expensive steps between calls.
package engine

import (
	"log/slog"
	"math"
	"time"

	"github.com/curvemap/curvemap/internal/cache"
	"github.com/curvemap/curvemap/internal/document"
)

// MinDimension floors computed widths and heights so degenerate selections
// still produce drawable output.
const MinDimension = 0.1

// Store sizing used when the host supplies nothing. Selections churn fast
// and stay small; derived geometry is expensive and stable once computed.
const (
	DefaultSelectionCapacity = 50
	DefaultSelectionTTL      = time.Minute
	DefaultGeometryCapacity  = 100
	DefaultGeometryTTL       = 30 * time.Minute
)

// Options size the pipeline's memoization stores.
type Options struct {
	SelectionCapacity int
	SelectionTTL      time.Duration
	GeometryCapacity  int
	GeometryTTL       time.Duration
}

// DefaultOptions returns the default store sizing.
func DefaultOptions() Options {
	return Options{
		SelectionCapacity: DefaultSelectionCapacity,
		SelectionTTL:      DefaultSelectionTTL,
		GeometryCapacity:  DefaultGeometryCapacity,
		GeometryTTL:       DefaultGeometryTTL,
	}
}

// Pipeline owns the extraction, normalization and simplification steps and
// the stores that memoize them.
type Pipeline struct {
	// Short-lived store for raw extraction results
	selections *cache.Store[string, Selection]

	// Long-lived store for normalized and simplified geometry
	geometry *cache.Store[string, []CurveData]
}

// NewPipeline creates a pipeline. Zero or negative option fields fall back
// to the defaults.
func NewPipeline(opts Options) *Pipeline {
	if opts.SelectionCapacity <= 0 {
		opts.SelectionCapacity = DefaultSelectionCapacity
	}
	if opts.SelectionTTL <= 0 {
		opts.SelectionTTL = DefaultSelectionTTL
	}
	if opts.GeometryCapacity <= 0 {
		opts.GeometryCapacity = DefaultGeometryCapacity
	}
	if opts.GeometryTTL <= 0 {
		opts.GeometryTTL = DefaultGeometryTTL
	}

	return &Pipeline{
		selections: cache.NewStore[string, Selection](opts.SelectionCapacity, opts.SelectionTTL),
		geometry:   cache.NewStore[string, []CurveData](opts.GeometryCapacity, opts.GeometryTTL),
	}
}

// --- Queries ---

// Extract returns the selection for the scene's curve objects, reusing a
// memoized result when the same objects and transforms were seen recently.
// An empty scene reports an invalid selection and is never cached.
func (p *Pipeline) Extract(scene *document.Scene) Selection {
	objects := sceneObjects(scene)
	if len(objects) == 0 {
		return extractSelection(objects)
	}

	key := selectionKey(objects)
	if sel, ok := p.selections.Get(key); ok {
		slog.Debug("selection served from cache", "objects", len(objects))
		return sel
	}

	sel := extractSelection(objects)
	p.selections.Set(key, sel)
	slog.Debug("selection extracted", "objects", len(objects), "points", sel.PointCount, "valid", sel.Valid)
	return sel
}

// Refresh extracts fresh data for the scene without reading or updating
// the memoization store.
func (p *Pipeline) Refresh(scene *document.Scene) Selection {
	return extractSelection(sceneObjects(scene))
}

// Normalize rebases the selection's curves so their top-left corner, or
// center when centerAtOrigin is set, sits at the origin.
func (p *Pipeline) Normalize(sel Selection, centerAtOrigin bool) []CurveData {
	key := normalizeKey(sel, centerAtOrigin)
	if curves, ok := p.geometry.Get(key); ok {
		return curves
	}

	curves := normalizeCurves(sel, centerAtOrigin)
	p.geometry.Set(key, curves)
	return curves
}

// Simplify thins the selection's straight-line runs at the given tolerance.
// Invalid selections come back unchanged and are not cached.
func (p *Pipeline) Simplify(sel Selection, tolerance float64) Selection {
	if !sel.Valid {
		return sel
	}

	key := simplifyKey(sel, tolerance)
	if curves, ok := p.geometry.Get(key); ok {
		out := sel
		out.Curves = curves
		return out
	}

	out := simplifyCurves(sel, tolerance)
	p.geometry.Set(key, out.Curves)
	slog.Debug("selection simplified", "tolerance", tolerance, "segments", out.SegmentCount())
	return out
}

// CalculateDimensions reports the selection's width and height floored at
// MinDimension, together with its center.
func CalculateDimensions(sel Selection) Dimensions {
	width := math.Max(MinDimension, sel.Bounds.Width())
	height := math.Max(MinDimension, sel.Bounds.Height())
	return Dimensions{
		Width:     width,
		Height:    height,
		SVGWidth:  width,
		SVGHeight: height,
		Center:    sel.Center,
	}
}

// CacheStats reports usage counters for both stores.
func (p *Pipeline) CacheStats() Stats {
	return Stats{
		Selection: p.selections.Stats(),
		Geometry:  p.geometry.Stats(),
	}
}

// Stats bundles the pipeline's per-store cache counters.
type Stats struct {
	Selection cache.Stats `json:"selection"`
	Geometry  cache.Stats `json:"geometry"`
}

// --- Commands ---

// InvalidateStyle drops memoized selections. Selection keys ignore style
// properties, so any style or preset edit must clear the store to avoid
// serving stale colors.
func (p *Pipeline) InvalidateStyle() {
	p.selections.Clear()
	slog.Debug("selection store cleared after style change")
}

// InvalidateAll clears every memoization store.
func (p *Pipeline) InvalidateAll() {
	p.selections.Clear()
	p.geometry.Clear()
}

func sceneObjects(scene *document.Scene) []document.CurveObject {
	if scene == nil {
		return nil
	}
	return scene.Objects
}
