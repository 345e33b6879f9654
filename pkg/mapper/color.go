package mapper

import (
	"fmt"
	"math"
	"strconv"
)

// RGBAToHex converts normalized [0,1] color channels to a CSS color string.
// Fully opaque colors become a 6-digit "#rrggbb" hex value; translucent
// colors become "rgba(R,G,B,A)" with decimal channels and the raw alpha.
func RGBAToHex(r, g, b, a float64) string {
	ri := int(math.Round(r * 255))
	gi := int(math.Round(g * 255))
	bi := int(math.Round(b * 255))

	if a >= 1 {
		// %06x keeps the leading zeros for small channel values.
		return fmt.Sprintf("#%06x", ri<<16|gi<<8|bi)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", ri, gi, bi, strconv.FormatFloat(a, 'g', -1, 64))
}
