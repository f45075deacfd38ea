// Package style converts raw Figma node attributes into normalized CSS-ready
// values: colors, gradients, shadows, stroke descriptors, text styles, and
// flex/grid layout descriptors. All conversions treat their input as partially
// populated and emit nothing for absent attributes.
package style

import (
	"math"
	"strconv"
	"strings"
)

// Round rounds a value to the nearest integer pixel.
func Round(v float64) float64 {
	return math.Round(v)
}

// RoundTo rounds a value to the given number of decimal digits.
func RoundTo(v float64, digits int) float64 {
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// FormatNumber renders a float without trailing zeros ("12", "12.5", "0.667").
// Values are rounded to at most two decimal digits first so that floating point
// noise never leaks into output.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(RoundTo(v, 2), 'f', -1, 64)
}

// FormatPx renders a pixel length ("12px"). Zero renders as "0".
func FormatPx(v float64) string {
	if RoundTo(v, 2) == 0 {
		return "0"
	}
	return FormatNumber(v) + "px"
}

// BoxShorthand formats four box edges as a CSS shorthand, using the shortest
// form the symmetry allows: one value when all edges match, two values for
// vertical/horizontal pairs, otherwise all four. Returns the empty string when
// every edge is zero so callers can omit the declaration entirely.
func BoxShorthand(top, right, bottom, left float64) string {
	if top == 0 && right == 0 && bottom == 0 && left == 0 {
		return ""
	}
	if top == bottom && right == left {
		if top == right {
			return FormatPx(top)
		}
		return FormatPx(top) + " " + FormatPx(right)
	}
	return strings.Join([]string{FormatPx(top), FormatPx(right), FormatPx(bottom), FormatPx(left)}, " ")
}

// lowerKeyword converts a Figma SCREAMING_SNAKE enum value to its CSS keyword
// form ("SPACE_BETWEEN" -> "space-between").
func lowerKeyword(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
