// Package csscolor formats a resolved csstoken.ColorValue back into CSS
// source text (hex or rgb/rgba). Grounded on stylesheet/color.py.
package csscolor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/emmetio/py-emmet/internal/csstoken"
)

// Format renders a color token as CSS text, preferring hex notation
// (optionally shortened to 3 digits) for fully-opaque colors and
// rgb()/rgba() otherwise.
func Format(token csstoken.ColorValue, shortHex bool) string {
	if token.R == 0 && token.G == 0 && token.B == 0 && token.A == 0 {
		return "transparent"
	}
	if token.A == 1 {
		return asHex(token, shortHex)
	}
	return asRGB(token)
}

func asHex(token csstoken.ColorValue, short bool) string {
	fn := toHex
	if short && isShortHex(token.R) && isShortHex(token.G) && isShortHex(token.B) {
		fn = toShortHex
	}
	return "#" + fn(token.R) + fn(token.G) + fn(token.B)
}

func asRGB(token csstoken.ColorValue) string {
	values := []string{strconv.Itoa(token.R), strconv.Itoa(token.G), strconv.Itoa(token.B)}
	prefix := "rgb"
	if token.A != 1 {
		prefix = "rgba"
		values = append(values, frac(token.A, 8))
	}
	return prefix + "(" + strings.Join(values, ", ") + ")"
}

var reTrailingZeros = regexp.MustCompile(`\.?0+$`)

func frac(num float64, digits int) string {
	s := strconv.FormatFloat(num, 'f', digits, 64)
	return reTrailingZeros.ReplaceAllString(s, "")
}

func isShortHex(num int) bool { return num%17 == 0 }

func toShortHex(num int) string { return fmt.Sprintf("%x", num>>4) }

func toHex(num int) string {
	s := fmt.Sprintf("%x", num)
	if len(s) < 2 {
		s = strings.Repeat("0", 2-len(s)) + s
	}
	return s
}
