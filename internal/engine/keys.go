package engine

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"io"
	"math"

	"github.com/curvemap/curvemap/internal/document"
	"github.com/curvemap/curvemap/internal/geometry"
)

// keyScale fixes the decimal precision of coordinates hashed into memo
// keys, so float noise below a thousandth cannot split otherwise identical
// entries.
const keyScale = 1e3

// selectionKey identifies a set of curve objects by name and world
// transform, the two inputs the extraction cache is allowed to trust.
// Styles and point edits are not part of the key; style changes must go
// through InvalidateStyle instead.
func selectionKey(objects []document.CurveObject) string {
	h := fnv.New64a()
	for _, obj := range objects {
		writeString(h, obj.Name)
		for _, v := range obj.World {
			writeFloat(h, v)
		}
	}
	return fmt.Sprintf("selection:%016x", h.Sum64())
}

// normalizeKey keys normalized geometry on the full selection content plus
// the centering mode.
func normalizeKey(sel Selection, centerAtOrigin bool) string {
	return fmt.Sprintf("normalize:%016x:%t", selectionDigest(sel), centerAtOrigin)
}

// simplifyKey keys simplified geometry on the full selection content plus
// the tolerance.
func simplifyKey(sel Selection, tolerance float64) string {
	return fmt.Sprintf("simplify:%016x:%.3f", selectionDigest(sel), tolerance)
}

// selectionDigest folds the complete selection, geometry and style alike,
// into a single value for keying derived results.
func selectionDigest(sel Selection) uint64 {
	h := fnv.New64a()
	writeBool(h, sel.Valid)
	writeString(h, sel.Message)
	writeFloat(h, sel.Bounds.Left)
	writeFloat(h, sel.Bounds.Top)
	writeFloat(h, sel.Bounds.Right)
	writeFloat(h, sel.Bounds.Bottom)
	writePoint(h, sel.Center)
	for _, curve := range sel.Curves {
		writeString(h, curve.Name)
		writeStyle(h, curve.Style)
		for _, spline := range curve.Splines {
			for _, seg := range spline {
				h.Write([]byte{byte(seg.Kind)})
				writePoint(h, seg.Ctrl1)
				writePoint(h, seg.Ctrl2)
				writePoint(h, seg.End)
			}
			h.Write([]byte{0xff})
		}
	}
	return h.Sum64()
}

func writeFloat(h hash.Hash64, v float64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(int64(math.Round(v*keyScale))))
	h.Write(b[:])
}

func writePoint(h hash.Hash64, p geometry.Point) {
	writeFloat(h, p.X)
	writeFloat(h, p.Y)
}

func writeString(h hash.Hash64, s string) {
	io.WriteString(h, s)
	h.Write([]byte{0})
}

func writeBool(h hash.Hash64, v bool) {
	if v {
		h.Write([]byte{1})
		return
	}
	h.Write([]byte{0})
}

func writeStyle(h hash.Hash64, style *document.CurveStyle) {
	if style == nil {
		h.Write([]byte{0})
		return
	}
	h.Write([]byte{1})
	writeString(h, style.FillPreset)
	writeBool(h, style.UseFill)
	writeColor(h, style.Fill)
	writeBool(h, style.UseStroke)
	writeColor(h, style.Stroke)
	writeFloat(h, style.StrokeWidth)
}

func writeColor(h hash.Hash64, c document.RGBA) {
	writeFloat(h, c.R)
	writeFloat(h, c.G)
	writeFloat(h, c.B)
	writeFloat(h, c.A)
}
