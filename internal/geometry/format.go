package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexColor encodes color channels in [0, 1] as a lowercase "#rrggbb" string.
// Channels are rounded to the nearest 8-bit value and clamped to [0, 255].
// Alpha is not part of the encoding.
func HexColor(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channelByte(r), channelByte(g), channelByte(b))
}

func channelByte(c float64) uint8 {
	v := int(math.Round(c * 255))
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// FormatCoordinate renders v with a fixed number of decimal places. When
// comma is set, the decimal period is replaced with a comma; the fixed format
// never produces thousands separators, so a single substitution is enough.
func FormatCoordinate(v float64, precision int, comma bool) string {
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if comma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}
