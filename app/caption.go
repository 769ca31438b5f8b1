package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mandelview/viewport"
)

// Caption renders the window title for state on a screen size pixels wide.
// Zoom is shown inverted (how far in), the centre in screen widths.
func Caption(s viewport.State, v viewport.Variant, size int) string {
	if size <= 0 {
		size = 1
	}
	zoomIn := math.Round(1/s.Zoom*1000) / 1000
	text := fmt.Sprintf("Zoom %s angle %s deg xy_center %.5f,%.5f size %.5f",
		floatRepr(zoomIn),
		floatRepr(s.Angle),
		s.Center.X/float64(size), s.Center.Y/float64(size), s.Zoom)
	if v == viewport.Rich {
		text = fmt.Sprintf("Brightness %.3f %s", 1/s.BrightnessDiv, text)
	}
	return text
}

// floatRepr prints v in its shortest round-tripping form, always with a
// fractional part or an exponent: 0 prints as "0.0", 1e-05 stays "1e-05".
func floatRepr(v float64) string {
	if a := math.Abs(v); a >= 1e16 || (a != 0 && a < 1e-4) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	text := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(text, ".NI") {
		text += ".0"
	}
	return text
}
