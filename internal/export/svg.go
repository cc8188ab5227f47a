// Package export serializes normalized curve data to SVG and writes the
// output files.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/curvemap/curvemap/internal/config"
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/engine"
	"github.com/curvemap/curvemap/internal/geometry"
	"github.com/curvemap/curvemap/internal/minimap"
)

// Options control how curves are rendered to SVG.
type Options struct {
	Scale        float64
	Precision    int
	CommaDecimal bool

	// Style for curves that carry no style of their own
	DefaultStyle document.CurveStyle

	ShowMarkers bool
	MarkerColor string
	MarkerSize  float64
}

// OptionsFromConfig builds render options from the loaded settings.
func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		Scale:        cfg.SVGScale,
		Precision:    cfg.Precision,
		CommaDecimal: cfg.CommaDecimal,
		DefaultStyle: cfg.DefaultStyle(),
		ShowMarkers:  cfg.ShowMarkers,
		MarkerColor:  cfg.MarkerColor,
		MarkerSize:   cfg.MarkerSize,
	}
}

// GenerateSVG renders normalized curves as a complete SVG document. An empty
// curve list produces a dashed placeholder frame instead of a blank image.
// Marker circles are drawn after the paths so they stay on top.
func GenerateSVG(curves []engine.CurveData, dims engine.Dimensions, markers []minimap.MarkerPoint, opts Options) string {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	width := math.Max(engine.MinDimension, dims.SVGWidth) * opts.Scale
	height := math.Max(engine.MinDimension, dims.SVGHeight) * opts.Scale

	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\" standalone=\"no\"?>\n")
	fmt.Fprintf(&b, "<svg width=\"%.2fpx\" height=\"%.2fpx\" viewBox=\"0 0 %.2f %.2f\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		width, height, width, height)
	fmt.Fprintf(&b, "  <g transform=\"scale(%g)\">\n", opts.Scale)

	if len(curves) == 0 {
		fmt.Fprintf(&b, "    <rect x=\"0\" y=\"0\" width=\"%.2f\" height=\"%.2f\" fill=\"none\" stroke=\"red\" stroke-width=\"0.5\" stroke-dasharray=\"2,2\" />\n",
			width/opts.Scale, height/opts.Scale)
		fmt.Fprintf(&b, "    <text x=\"%.2f\" y=\"%.2f\" text-anchor=\"middle\" fill=\"red\">No curve data</text>\n",
			width/(2*opts.Scale), height/(2*opts.Scale))
	} else {
		for _, curve := range curves {
			fill, stroke, strokeWidth := resolveStyle(curve.Style, opts.DefaultStyle)
			for _, spline := range curve.Splines {
				d := PathData(spline, opts.Precision, opts.CommaDecimal)
				if d == "" {
					continue
				}
				fmt.Fprintf(&b, "    <path d=\"%s\" fill=\"%s\" stroke=\"%s\" stroke-width=\"%g\" />\n",
					d, fill, stroke, strokeWidth)
			}
		}
	}

	if opts.ShowMarkers {
		for _, m := range markers {
			fmt.Fprintf(&b, "    <circle cx=\"%s\" cy=\"%s\" r=\"%g\" fill=\"%s\" />\n",
				geometry.FormatCoordinate(m.X*opts.Scale, opts.Precision, opts.CommaDecimal),
				geometry.FormatCoordinate(m.Y*opts.Scale, opts.Precision, opts.CommaDecimal),
				opts.MarkerSize, opts.MarkerColor)
		}
		b.WriteString("    <!-- Markers show reference points for positioning. Can be safely removed. -->\n")
	}

	b.WriteString("  </g>\n</svg>")
	return b.String()
}

// PathData builds the d attribute for one spline. Coordinates go through
// FormatCoordinate so precision and decimal separator follow the settings.
func PathData(segments []engine.PathSegment, precision int, comma bool) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch seg.Kind {
		case engine.MoveTo, engine.LineTo:
			parts = append(parts, seg.Kind.String()+" "+coordPair(seg.End, precision, comma))
		case engine.CubicTo:
			parts = append(parts, "C "+
				coordPair(seg.Ctrl1, precision, comma)+" "+
				coordPair(seg.Ctrl2, precision, comma)+" "+
				coordPair(seg.End, precision, comma))
		}
	}
	return strings.Join(parts, " ")
}

func coordPair(p geometry.Point, precision int, comma bool) string {
	return geometry.FormatCoordinate(p.X, precision, comma) + "," +
		geometry.FormatCoordinate(p.Y, precision, comma)
}

// resolveStyle flattens an optional per-curve style against the defaults.
// Disabled fill or stroke renders as "none"; a disabled stroke also zeroes
// the stroke width.
func resolveStyle(style *document.CurveStyle, fallback document.CurveStyle) (fill, stroke string, strokeWidth float64) {
	s := fallback
	if style != nil {
		s = *style
	}

	fill = "none"
	if s.UseFill {
		fill = s.Fill.Hex()
	}
	stroke = "none"
	if s.UseStroke {
		stroke = s.Stroke.Hex()
		strokeWidth = s.StrokeWidth
	}
	return fill, stroke, strokeWidth
}
