package style

import (
	"math"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

// TextStyle is the normalized typography descriptor for a text node.
// Line height is a sizeless ratio relative to the font size and letter spacing
// is expressed in em, so both survive font-size changes downstream.
type TextStyle struct {
	FontFamily     string  `json:"fontFamily,omitempty"`
	FontWeight     int     `json:"fontWeight,omitempty"`
	FontSize       float64 `json:"fontSize,omitempty"`
	FontStyle      string  `json:"fontStyle,omitempty"`
	LineHeight     string  `json:"lineHeight,omitempty"`
	LetterSpacing  string  `json:"letterSpacing,omitempty"`
	TextTransform  string  `json:"textTransform,omitempty"`
	TextDecoration string  `json:"textDecoration,omitempty"`
	TextAlign      string  `json:"textAlign,omitempty"`
}

// ConvertTypeStyle normalizes a raw text style. Returns nil for a nil input so
// non-text nodes fall through cleanly.
func ConvertTypeStyle(ts *figma.TypeStyle) *TextStyle {
	if ts == nil {
		return nil
	}

	out := &TextStyle{
		FontFamily: ts.FontFamily,
		FontSize:   RoundTo(ts.FontSize, 2),
	}

	if ts.FontWeight > 0 {
		out.FontWeight = NormalizeFontWeight(ts.FontWeight)
	}
	if ts.Italic {
		out.FontStyle = "italic"
	}
	if lh := lineHeightRatio(ts); lh > 0 {
		out.LineHeight = FormatNumber(lh)
	}
	if ts.LetterSpacing != 0 && ts.FontSize > 0 {
		out.LetterSpacing = FormatNumber(RoundTo(ts.LetterSpacing/ts.FontSize, 3)) + "em"
	}
	out.TextTransform = textTransform(ts.TextCase)
	out.TextDecoration = textDecoration(ts.TextDecoration)
	if ts.TextAlignHorizontal != "" && ts.TextAlignHorizontal != "LEFT" {
		out.TextAlign = lowerKeyword(ts.TextAlignHorizontal)
	}

	return out
}

// lineHeightRatio reconciles the two upstream line-height sources into one
// sizeless ratio. The absolute pixel form wins when both are present; the
// percent form is used otherwise.
func lineHeightRatio(ts *figma.TypeStyle) float64 {
	if ts.LineHeightPx > 0 && ts.FontSize > 0 {
		return RoundTo(ts.LineHeightPx/ts.FontSize, 3)
	}
	if ts.LineHeightPercent > 0 {
		return RoundTo(ts.LineHeightPercent/100, 3)
	}
	return 0
}

// NormalizeFontWeight snaps a numeric weight onto the standard hundred steps
// and bounds it to the [100, 900] range CSS accepts.
func NormalizeFontWeight(w float64) int {
	snapped := int(math.Round(w/100) * 100)
	if snapped < 100 {
		snapped = 100
	}
	if snapped > 900 {
		snapped = 900
	}
	return snapped
}

func textTransform(textCase string) string {
	switch textCase {
	case "UPPER":
		return "uppercase"
	case "LOWER":
		return "lowercase"
	case "TITLE":
		return "capitalize"
	default:
		return ""
	}
}

func textDecoration(dec string) string {
	switch dec {
	case "UNDERLINE":
		return "underline"
	case "STRIKETHROUGH":
		return "line-through"
	default:
		return ""
	}
}
