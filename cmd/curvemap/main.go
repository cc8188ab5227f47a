package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/curvemap/curvemap/internal/config"
	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/export"
)

func main() {
	var (
		inPath     = flag.String("in", "", "path to a curve scene JSON document")
		useSample  = flag.Bool("sample", false, "use the built-in sample scene instead of -in")
		outPath    = flag.String("out", "minimap.svg", "path of the SVG file to write")
		report     = flag.Bool("report", false, "print the dimensions and position report")
		cacheStats = flag.Bool("cache-stats", false, "print cache usage counters after the run")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	scene, err := loadScene(*inPath, *useSample)
	if err != nil {
		slog.Error("load scene", "error", err)
		os.Exit(1)
	}
	slog.Debug("scene loaded", "id", scene.ID, "objects", len(scene.Objects), "markers", len(scene.Markers))

	svc := export.NewService(cfg)

	if *report {
		r := svc.Report(scene)
		fmt.Println(export.FormatReport(r, cfg.Precision, cfg.CommaDecimal))
	}

	res, err := svc.Export(scene, *outPath)
	if err != nil {
		slog.Error("export", "error", err)
		os.Exit(1)
	}
	if !res.Valid {
		slog.Warn("scene had no drawable curves", "message", res.Message)
	}

	if *cacheStats {
		blob, err := json.MarshalIndent(svc.CacheStats(), "", "  ")
		if err != nil {
			slog.Error("encode cache stats", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(blob))
	}
}

func loadScene(path string, sample bool) (*document.Scene, error) {
	if sample {
		return document.SampleScene(), nil
	}
	if path == "" {
		return nil, errors.New("no input: pass -in <scene.json> or -sample")
	}
	return document.LoadFile(path)
}
