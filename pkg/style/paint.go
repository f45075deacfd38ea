package style

import (
	"fmt"
	"math"
	"strings"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

// Fill is the normalized form of one paint. Exactly one of the value groups is
// populated depending on Type: Color for solids, Gradient for the four gradient
// kinds, and the image fields for IMAGE paints.
type Fill struct {
	Type string `json:"type"`

	// Solid
	Color string `json:"color,omitempty"`

	// Gradient
	Gradient string `json:"gradient,omitempty"`

	// Image
	ImageRef             string `json:"imageRef,omitempty"`
	ScaleMode            string `json:"scaleMode,omitempty"`
	ObjectFit            string `json:"objectFit,omitempty"`
	BackgroundSize       string `json:"backgroundSize,omitempty"`
	BackgroundRepeat     string `json:"backgroundRepeat,omitempty"`
	IsBackground         bool   `json:"isBackground,omitempty"`
	NeedsImageDimensions bool   `json:"needsImageDimensions,omitempty"`
}

// FormatColor converts a Figma RGBA color plus a paint opacity into a CSS color
// string. Fully opaque colors collapse to a 6-digit hex form; anything else is
// an rgba() with integer channels and the combined alpha preserved to three
// decimal digits.
func FormatColor(c *figma.Color, opacity float64) string {
	if c == nil {
		return "#000000"
	}

	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))

	alpha := c.A * opacity
	if alpha >= 1 {
		return fmt.Sprintf("#%02X%02X%02X", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, FormatAlpha(alpha))
}

// FormatAlpha renders an alpha channel rounded to three decimal digits without
// trailing zeros.
func FormatAlpha(a float64) string {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return trimFloat(RoundTo(a, 3))
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}

// paintOpacity returns the paint's own opacity, defaulting to 1 when unset.
func paintOpacity(p *figma.Paint) float64 {
	if p.Opacity == nil {
		return 1
	}
	return *p.Opacity
}

// ConvertPaint normalizes a single raw paint. Invisible paints return nil.
// Unrecognized paint types degrade to an opaque black solid rather than
// failing, preserving best-effort extraction on partial documents.
func ConvertPaint(p *figma.Paint, hasChildren bool) *Fill {
	if p == nil || !p.IsVisible() {
		return nil
	}

	switch p.Type {
	case "SOLID":
		return &Fill{Type: "SOLID", Color: FormatColor(p.Color, paintOpacity(p))}

	case "GRADIENT_LINEAR", "GRADIENT_RADIAL", "GRADIENT_ANGULAR", "GRADIENT_DIAMOND":
		css := gradientCSS(p)
		if css == "" {
			return nil
		}
		return &Fill{Type: p.Type, Gradient: css}

	case "IMAGE":
		return convertImagePaint(p, hasChildren)

	default:
		return &Fill{Type: "SOLID", Color: "#000000"}
	}
}

// gradientCSS renders a gradient paint as a CSS gradient function with
// percentage-positioned color stops. Linear gradients carry an angle derived
// from the paint transform; the other kinds map to radial-gradient (Figma's
// angular and diamond gradients have no exact CSS equivalent, radial is the
// closest declarative form that keeps every stop).
func gradientCSS(p *figma.Paint) string {
	if len(p.GradientStops) == 0 {
		return ""
	}

	stops := make([]string, 0, len(p.GradientStops))
	for _, stop := range p.GradientStops {
		pos := RoundTo(stop.Position*100, 2)
		stops = append(stops, fmt.Sprintf("%s %s%%", FormatColor(&stop.Color, 1), FormatNumber(pos)))
	}
	stopList := strings.Join(stops, ", ")

	switch p.Type {
	case "GRADIENT_LINEAR":
		angle := gradientAngle(p)
		return fmt.Sprintf("linear-gradient(%sdeg, %s)", FormatNumber(angle), stopList)
	case "GRADIENT_RADIAL", "GRADIENT_DIAMOND":
		return fmt.Sprintf("radial-gradient(%s)", stopList)
	default: // GRADIENT_ANGULAR
		return fmt.Sprintf("conic-gradient(from %sdeg, %s)", FormatNumber(gradientAngle(p)), stopList)
	}
}

// gradientAngle derives the gradient direction in degrees, normalized into
// [0, 360). The 2x3 transform matrix is preferred; gradient handle positions
// serve as fallback when the transform is absent.
func gradientAngle(p *figma.Paint) float64 {
	var rad float64
	switch {
	case len(p.GradientTransform) >= 2 && len(p.GradientTransform[0]) >= 2:
		// Rotation component of the affine transform.
		rad = math.Atan2(p.GradientTransform[0][1], p.GradientTransform[0][0])
	case len(p.GradientHandlePositions) >= 2:
		start, end := p.GradientHandlePositions[0], p.GradientHandlePositions[1]
		rad = math.Atan2(end.Y-start.Y, end.X-start.X)
	default:
		return 0
	}

	deg := rad*180/math.Pi + 90 // CSS angles measure from the vertical axis
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return RoundTo(deg, 2)
}

// convertImagePaint maps an IMAGE paint's scale mode to CSS. A fill behaves as
// a background (background-size/background-repeat) when the node has children
// or the image tiles; otherwise it behaves as a foreground image (object-fit).
// Paints carrying a crop transform or tile scaling are flagged so downstream
// consumers know the source dimensions must be fetched.
func convertImagePaint(p *figma.Paint, hasChildren bool) *Fill {
	fill := &Fill{
		Type:      "IMAGE",
		ImageRef:  p.ImageRef,
		ScaleMode: p.ScaleMode,
	}

	isBackground := hasChildren || p.ScaleMode == "TILE"
	fill.IsBackground = isBackground

	switch p.ScaleMode {
	case "FILL":
		if isBackground {
			fill.BackgroundSize = "cover"
			fill.BackgroundRepeat = "no-repeat"
		} else {
			fill.ObjectFit = "cover"
		}
	case "FIT":
		if isBackground {
			fill.BackgroundSize = "contain"
			fill.BackgroundRepeat = "no-repeat"
		} else {
			fill.ObjectFit = "contain"
		}
	case "TILE":
		fill.BackgroundRepeat = "repeat"
		fill.NeedsImageDimensions = true
		if p.ScalingFactor != nil {
			fill.BackgroundSize = "auto"
		}
	case "STRETCH":
		// Figma STRETCH is a crop: the transform selects a region of the image.
		if isBackground {
			fill.BackgroundSize = "cover"
			fill.BackgroundRepeat = "no-repeat"
		} else {
			fill.ObjectFit = "fill"
		}
		fill.NeedsImageDimensions = true
	}

	if len(p.ImageTransform) > 0 {
		fill.NeedsImageDimensions = true
	}

	return fill
}

// ConvertFills normalizes a node's visible fills in paint order.
// Returns nil when no visible fill survives.
func ConvertFills(n *figma.Node) []Fill {
	return convertPaints(n.Fills, len(n.Children) > 0)
}

func convertPaints(paints []figma.Paint, hasChildren bool) []Fill {
	var fills []Fill
	for i := range paints {
		if f := ConvertPaint(&paints[i], hasChildren); f != nil {
			fills = append(fills, *f)
		}
	}
	return fills
}
