//go:build js && wasm

package main

import (
	"encoding/json"
	"strings"
	"syscall/js"

	"github.com/curvemap/curvemap/internal/config"
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/export"
	"github.com/curvemap/curvemap/internal/geometry"
)

var (
	cfg   *config.Config
	svc   *export.Service
	scene *document.Scene
)

func main() {
	var err error
	// The browser has no environment, so this yields the defaults.
	cfg, err = config.Load()
	if err != nil {
		js.Global().Get("console").Call("error", "curvemap config: "+err.Error())
		return
	}
	svc = export.NewService(cfg)

	api := js.Global().Get("Object").New()

	// --- Commands (host → engine) ---
	api.Set("loadScene", js.FuncOf(loadScene))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))
	api.Set("setOverrides", js.FuncOf(setOverrides))
	api.Set("applyStyle", js.FuncOf(applyStyle))
	api.Set("clearCaches", js.FuncOf(clearCaches))

	// --- Queries (host ← engine) ---
	api.Set("generate", js.FuncOf(generate))
	api.Set("report", js.FuncOf(report))
	api.Set("cacheStats", js.FuncOf(cacheStats))
	api.Set("worldToMinimap", js.FuncOf(worldToMinimap))
	api.Set("minimapToWorld", js.FuncOf(minimapToWorld))

	// Register on global scope
	js.Global().Set("curvemapEngine", api)

	// Signal that WASM is ready
	js.Global().Set("curvemapWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

// --- Command Handlers ---

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing scene JSON")
	}

	loaded, err := document.Load(strings.NewReader(args[0].String()))
	if err != nil {
		return errResult(err.Error())
	}

	scene = loaded
	return js.ValueOf(map[string]interface{}{"ok": true, "objects": len(scene.Objects)})
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	scene = document.SampleScene()
	return js.ValueOf(map[string]interface{}{"ok": true, "objects": len(scene.Objects)})
}

// overrides is the subset of settings a browser host can change per session.
// Absent fields keep their current values.
type overrides struct {
	SVGScale          *float64 `json:"svgScale"`
	Precision         *int     `json:"precision"`
	CenterAtOrigin    *bool    `json:"centerAtOrigin"`
	CommaDecimal      *bool    `json:"commaDecimal"`
	ShowMarkers       *bool    `json:"showMarkers"`
	MarkerColor       *string  `json:"markerColor"`
	MarkerSize        *float64 `json:"markerSize"`
	SimplifyCurves    *bool    `json:"simplifyCurves"`
	SimplifyTolerance *float64 `json:"simplifyTolerance"`
	MapPreset         *string  `json:"mapPreset"`
	MinimapWidth      *float64 `json:"minimapWidth"`
	MinimapHeight     *float64 `json:"minimapHeight"`
}

func setOverrides(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errResult("missing overrides JSON")
	}

	var o overrides
	if err := json.Unmarshal([]byte(args[0].String()), &o); err != nil {
		return errResult(err.Error())
	}

	next := *cfg
	if o.SVGScale != nil {
		next.SVGScale = *o.SVGScale
	}
	if o.Precision != nil {
		next.Precision = *o.Precision
	}
	if o.CenterAtOrigin != nil {
		next.CenterAtOrigin = *o.CenterAtOrigin
	}
	if o.CommaDecimal != nil {
		next.CommaDecimal = *o.CommaDecimal
	}
	if o.ShowMarkers != nil {
		next.ShowMarkers = *o.ShowMarkers
	}
	if o.MarkerColor != nil {
		next.MarkerColor = *o.MarkerColor
	}
	if o.MarkerSize != nil {
		next.MarkerSize = *o.MarkerSize
	}
	if o.SimplifyCurves != nil {
		next.SimplifyCurves = *o.SimplifyCurves
	}
	if o.SimplifyTolerance != nil {
		next.SimplifyTolerance = *o.SimplifyTolerance
	}
	if o.MapPreset != nil {
		next.MapPreset = *o.MapPreset
	}
	if o.MinimapWidth != nil {
		next.MinimapWidth = *o.MinimapWidth
	}
	if o.MinimapHeight != nil {
		next.MinimapHeight = *o.MinimapHeight
	}

	// World bounds and output size are baked into the calculator, so the
	// service is rebuilt rather than patched.
	cfg = &next
	svc = export.NewService(cfg)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func applyStyle(this js.Value, args []js.Value) interface{} {
	if scene == nil {
		return errResult("no scene loaded")
	}
	if len(args) < 1 {
		return errResult("missing style JSON")
	}

	var style document.CurveStyle
	if err := json.Unmarshal([]byte(args[0].String()), &style); err != nil {
		return errResult(err.Error())
	}

	updated := svc.ApplyStyle(scene, style)
	return js.ValueOf(map[string]interface{}{"ok": true, "objects": updated})
}

func clearCaches(this js.Value, args []js.Value) interface{} {
	svc.ClearCaches()
	return nil
}

// --- Query Handlers ---

func generate(this js.Value, args []js.Value) interface{} {
	if scene == nil {
		return errResult("no scene loaded")
	}

	svg, markerData, result := svc.Render(scene)

	dataJSON, err := json.Marshal(markerData)
	if err != nil {
		return errResult(err.Error())
	}
	reportJSON, err := json.Marshal(svc.Report(scene))
	if err != nil {
		return errResult(err.Error())
	}

	out := map[string]interface{}{
		"svg":        svg,
		"markerData": string(dataJSON),
		"report":     string(reportJSON),
	}
	if !result.Valid {
		out["message"] = result.Message
	}
	return js.ValueOf(out)
}

func report(this js.Value, args []js.Value) interface{} {
	if scene == nil {
		return errResult("no scene loaded")
	}
	return js.ValueOf(export.FormatReport(svc.Report(scene), cfg.Precision, cfg.CommaDecimal))
}

func cacheStats(this js.Value, args []js.Value) interface{} {
	blob, err := json.Marshal(svc.CacheStats())
	if err != nil {
		return errResult(err.Error())
	}
	return js.ValueOf(string(blob))
}

func worldToMinimap(this js.Value, args []js.Value) interface{} {
	if len(args) < 3 {
		return errResult("want x, y, z")
	}

	p := svc.Calculator().WorldToMinimap(geometry.Vec3(args[0].Float(), args[1].Float(), args[2].Float()))
	return js.ValueOf(map[string]interface{}{"x": p.X, "y": p.Y})
}

func minimapToWorld(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errResult("want x, y")
	}

	w := svc.Calculator().MinimapToWorld(geometry.Vec2(args[0].Float(), args[1].Float()))
	return js.ValueOf(map[string]interface{}{"x": w.X, "y": w.Y, "z": w.Z})
}
