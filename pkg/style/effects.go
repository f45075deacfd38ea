package style

import (
	"fmt"
	"strings"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

// Effects is the normalized effect descriptor for a node. Shadow effects join
// into a single comma-separated box-shadow (or text-shadow for text nodes),
// layer blur maps to filter and background blur to backdrop-filter.
type Effects struct {
	BoxShadow      string `json:"boxShadow,omitempty"`
	TextShadow     string `json:"textShadow,omitempty"`
	Filter         string `json:"filter,omitempty"`
	BackdropFilter string `json:"backdropFilter,omitempty"`
	MixBlendMode   string `json:"mixBlendMode,omitempty"`
}

// blendModes maps Figma blend mode enums onto CSS mix-blend-mode keywords.
// PASS_THROUGH and NORMAL both render as normal and are omitted from output.
var blendModes = map[string]string{
	"MULTIPLY":    "multiply",
	"SCREEN":      "screen",
	"OVERLAY":     "overlay",
	"DARKEN":      "darken",
	"LIGHTEN":     "lighten",
	"COLOR_DODGE": "color-dodge",
	"COLOR_BURN":  "color-burn",
	"HARD_LIGHT":  "hard-light",
	"SOFT_LIGHT":  "soft-light",
	"DIFFERENCE":  "difference",
	"EXCLUSION":   "exclusion",
	"HUE":         "hue",
	"SATURATION":  "saturation",
	"COLOR":       "color",
	"LUMINOSITY":  "luminosity",
}

// BlendModeCSS maps a Figma blend mode enum to its CSS keyword, defaulting to
// "normal" for unrecognized modes.
func BlendModeCSS(mode string) string {
	if css, ok := blendModes[mode]; ok {
		return css
	}
	return "normal"
}

// ConvertEffects normalizes a node's visible effects. The isText flag routes
// shadow effects to text-shadow instead of box-shadow. Returns nil when no
// visible effect and no non-normal blend mode exists.
func ConvertEffects(n *figma.Node, isText bool) *Effects {
	var shadows []string
	var filters []string
	var backdrops []string

	for i := range n.Effects {
		e := &n.Effects[i]
		if !e.IsVisible() {
			continue
		}

		switch e.Type {
		case "DROP_SHADOW", "INNER_SHADOW":
			shadows = append(shadows, shadowCSS(e))
		case "LAYER_BLUR":
			filters = append(filters, fmt.Sprintf("blur(%s)", FormatPx(e.Radius)))
		case "BACKGROUND_BLUR":
			backdrops = append(backdrops, fmt.Sprintf("blur(%s)", FormatPx(e.Radius)))
		}
	}

	out := &Effects{
		Filter:         strings.Join(filters, " "),
		BackdropFilter: strings.Join(backdrops, " "),
	}

	joined := strings.Join(shadows, ", ")
	if isText {
		out.TextShadow = joined
	} else {
		out.BoxShadow = joined
	}

	if css := BlendModeCSS(n.BlendMode); n.BlendMode != "" && css != "normal" {
		out.MixBlendMode = css
	}

	if out.BoxShadow == "" && out.TextShadow == "" && out.Filter == "" &&
		out.BackdropFilter == "" && out.MixBlendMode == "" {
		return nil
	}
	return out
}

// shadowCSS renders a single shadow effect. Inner shadows gain the inset
// keyword; spread is included only when non-zero since text-shadow does not
// accept it anyway.
func shadowCSS(e *figma.Effect) string {
	var x, y float64
	if e.Offset != nil {
		x, y = e.Offset.X, e.Offset.Y
	}

	parts := []string{FormatPx(x), FormatPx(y), FormatPx(e.Radius)}
	if e.Spread != 0 {
		parts = append(parts, FormatPx(e.Spread))
	}
	parts = append(parts, FormatColor(e.Color, 1))

	css := strings.Join(parts, " ")
	if e.Type == "INNER_SHADOW" {
		css = "inset " + css
	}
	return css
}
