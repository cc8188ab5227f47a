package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/curvemap/curvemap/internal/minimap"
)

// MarkerDataFile is the name of the companion JSON file written next to the
// SVG document.
const MarkerDataFile = "minimap_data.json"

// WriteSVG writes the SVG document to path. Content lands in a uniquely
// named temp file in the target directory first and is renamed into place,
// so an interrupted run never leaves a truncated file behind. The rename is
// not guaranteed atomic across filesystems.
func WriteSVG(path, content string) error {
	return writeFile(path, []byte(content))
}

// WriteMarkerData writes the marker data as indented JSON next to the SVG
// and returns the path it wrote.
func WriteMarkerData(svgPath string, data minimap.MarkerData) (string, error) {
	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode marker data: %w", err)
	}

	path := filepath.Join(filepath.Dir(svgPath), MarkerDataFile)
	if err := writeFile(path, blob); err != nil {
		return "", err
	}
	return path, nil
}

func writeFile(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
