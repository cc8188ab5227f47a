// Package minimap converts positions between game-world space, minimap
// output space and editor space.
package minimap

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"math"
	"time"

	"github.com/curvemap/curvemap/internal/cache"
	"github.com/curvemap/curvemap/internal/geometry"
)

// Default sizing for the conversion-result store.
const (
	DefaultCalculationCapacity = 200
	DefaultCalculationTTL      = 10 * time.Minute
)

// WorldBounds is the world-space rectangle a minimap covers.
type WorldBounds struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// DefaultWorldBounds covers the full playable map.
func DefaultWorldBounds() WorldBounds {
	return WorldBounds{MinX: -4000, MaxX: 4000, MinY: -4000, MaxY: 4000}
}

// Width returns the world-space horizontal span.
func (b WorldBounds) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns the world-space vertical span.
func (b WorldBounds) Height() float64 {
	return b.MaxY - b.MinY
}

// Size is the output size of the minimap in export units.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DefaultSize returns the standard minimap output size.
func DefaultSize() Size {
	return Size{Width: 300, Height: 300}
}

// MarkerPoint pairs a minimap position with the world position it came from.
type MarkerPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	WorldX float64 `json:"world_x"`
	WorldY float64 `json:"world_y"`
	WorldZ float64 `json:"world_z"`
}

// MarkerData is the marker payload exported next to an SVG.
type MarkerData struct {
	MinimapPoints []MarkerPoint `json:"minimap_points"`
}

// Calculator converts between coordinate spaces for one bounds and output
// size configuration. The conversions themselves are pure; aggregate marker
// generation is memoized in the shared conversion store.
type Calculator struct {
	bounds WorldBounds
	size   Size

	// Inverse spans precomputed at construction. A zero-width or
	// zero-height world span stores an inverse of 0, which pins the
	// affected axis to a fixed coordinate instead of dividing by zero.
	invWidth  float64
	invHeight float64

	results *cache.Store[string, []MarkerPoint]
}

// NewCalculator derives conversion constants for the given configuration.
// The results store may be shared between calculators; passing nil creates
// a private store with default sizing.
func NewCalculator(bounds WorldBounds, size Size, results *cache.Store[string, []MarkerPoint]) *Calculator {
	if results == nil {
		results = cache.NewStore[string, []MarkerPoint](DefaultCalculationCapacity, DefaultCalculationTTL)
	}

	c := &Calculator{bounds: bounds, size: size, results: results}
	if w := bounds.Width(); w != 0 {
		c.invWidth = 1 / w
	}
	if h := bounds.Height(); h != 0 {
		c.invHeight = 1 / h
	}
	return c
}

// Bounds returns the world bounds the calculator was built with.
func (c *Calculator) Bounds() WorldBounds {
	return c.bounds
}

// OutputSize returns the minimap output size.
func (c *Calculator) OutputSize() Size {
	return c.size
}

// WorldToMinimap maps a world position onto the minimap. Minimap space has
// a top-left origin with Y growing downward, so the vertical axis flips.
// Positions outside the world bounds clamp to the minimap edges.
func (c *Calculator) WorldToMinimap(pos geometry.Vector3) geometry.Vector2 {
	normX := (pos.X - c.bounds.MinX) * c.invWidth
	normY := (pos.Y - c.bounds.MinY) * c.invHeight

	x := normX * c.size.Width
	y := (1 - normY) * c.size.Height

	return geometry.Vec2(
		math.Max(0, math.Min(x, c.size.Width)),
		math.Max(0, math.Min(y, c.size.Height)),
	)
}

// MinimapToWorld maps a minimap position back into world space. Height
// information never reaches the minimap, so Z comes back as 0.
func (c *Calculator) MinimapToWorld(pos geometry.Vector2) geometry.Vector3 {
	normX := pos.X / c.size.Width
	normY := 1 - pos.Y/c.size.Height

	return geometry.Vec3(
		c.bounds.MinX+normX*c.bounds.Width(),
		c.bounds.MinY+normY*c.bounds.Height(),
		0,
	)
}

// EditorToExport maps an editor-space position into export space: editor Y
// becomes export X, editor -Z becomes export Y, both scaled, and the result
// is recentered on the scaled SVG extents. The axis remapping is a fixed
// convention of the target engine.
func (c *Calculator) EditorToExport(pos geometry.Vector3, scale, svgWidth, svgHeight float64) geometry.Vector2 {
	x := pos.Y * scale
	y := -pos.Z * scale

	return geometry.Vec2(
		x-svgWidth*scale/2,
		y-svgHeight*scale/2,
	)
}

// GenerateMarkerData converts world positions into minimap marker points,
// reusing a memoized result for a previously seen position set.
func (c *Calculator) GenerateMarkerData(positions []geometry.Vector3) MarkerData {
	key := c.markerKey(positions)
	if points, ok := c.results.Get(key); ok {
		return MarkerData{MinimapPoints: points}
	}

	points := make([]MarkerPoint, 0, len(positions))
	for _, pos := range positions {
		m := c.WorldToMinimap(pos)
		points = append(points, MarkerPoint{
			X:      m.X,
			Y:      m.Y,
			WorldX: pos.X,
			WorldY: pos.Y,
			WorldZ: pos.Z,
		})
	}

	c.results.Set(key, points)
	return MarkerData{MinimapPoints: points}
}

// CacheStats reports usage counters for the conversion store.
func (c *Calculator) CacheStats() cache.Stats {
	return c.results.Stats()
}

// ClearCache empties the conversion store.
func (c *Calculator) ClearCache() {
	c.results.Clear()
}

// markerKey digests the position set together with the calculator
// configuration. The store may be shared, so bounds and size are part of
// the key.
func (c *Calculator) markerKey(positions []geometry.Vector3) string {
	h := fnv.New64a()
	for _, p := range positions {
		writeQuantized(h, p)
	}
	return fmt.Sprintf("markers:%g,%g,%g,%g:%gx%g:%016x",
		c.bounds.MinX, c.bounds.MaxX, c.bounds.MinY, c.bounds.MaxY,
		c.size.Width, c.size.Height, h.Sum64())
}

func writeQuantized(h hash.Hash64, v geometry.Vector3) {
	var b [8]byte
	for _, q := range v.Quantize() {
		binary.LittleEndian.PutUint64(b[:], uint64(q))
		h.Write(b[:])
	}
}
