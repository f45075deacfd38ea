package style

import (
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

// Stroke is the normalized border descriptor for a node: the visible stroke
// paints, a uniform or per-edge weight shorthand, and CSS equivalents of the
// dash, cap, join, and alignment settings.
type Stroke struct {
	Colors      []Fill  `json:"colors,omitempty"`
	Weight      string  `json:"weight,omitempty"`
	DashPattern string  `json:"dashPattern,omitempty"`
	Cap         string  `json:"cap,omitempty"`
	Join        string  `json:"join,omitempty"`
	Align       string  `json:"align,omitempty"`
}

// HasStroke reports whether the node carries at least one visible stroke paint.
func HasStroke(n *figma.Node) bool {
	for i := range n.Strokes {
		if n.Strokes[i].IsVisible() {
			return true
		}
	}
	return false
}

// ConvertStrokes aggregates a node's visible stroke paints into a normalized
// descriptor. Returns nil when the node has no visible stroke.
func ConvertStrokes(n *figma.Node) *Stroke {
	colors := convertPaints(n.Strokes, len(n.Children) > 0)
	if len(colors) == 0 {
		return nil
	}

	s := &Stroke{
		Colors: colors,
		Weight: strokeWeight(n),
	}

	if len(n.StrokeDashes) > 0 {
		s.DashPattern = dashPattern(n.StrokeDashes)
	}
	if n.StrokeCap != "" && n.StrokeCap != "NONE" {
		s.Cap = strokeCap(n.StrokeCap)
	}
	if n.StrokeJoin != "" {
		s.Join = lowerKeyword(n.StrokeJoin)
	}
	if n.StrokeAlign != "" {
		s.Align = lowerKeyword(n.StrokeAlign)
	}

	return s
}

// strokeWeight formats a uniform weight or, when the edges differ, the
// four-edge shorthand.
func strokeWeight(n *figma.Node) string {
	if w := n.IndividualStrokeWeights; w != nil {
		if s := BoxShorthand(w.Top, w.Right, w.Bottom, w.Left); s != "" {
			return s
		}
		return ""
	}
	if n.StrokeWeight != nil && *n.StrokeWeight > 0 {
		return FormatPx(*n.StrokeWeight)
	}
	return ""
}

// dashPattern renders a Figma dash array as an SVG-style stroke-dasharray value.
func dashPattern(dashes []float64) string {
	out := ""
	for i, d := range dashes {
		if i > 0 {
			out += " "
		}
		out += FormatNumber(d)
	}
	return out
}

// strokeCap maps Figma cap enums onto CSS/SVG linecap keywords. Figma's arrow
// caps have no CSS equivalent and collapse to square.
func strokeCap(kind string) string {
	switch kind {
	case "ROUND":
		return "round"
	case "SQUARE", "LINE_ARROW", "TRIANGLE_ARROW":
		return "square"
	default:
		return "butt"
	}
}
