package simplify

import (
	"fmt"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/style"
)

// ExtractorFn extracts one style or content domain from a raw node into the
// simplified node, registering shareable values in the context's store and
// writing the returned StyleID instead of an inline value.
//
// Extractors must be idempotent and independent of each other: no extractor
// may read a field another extractor writes, so callers can compose any subset
// without changing per-extractor behavior.
type ExtractorFn func(raw *figma.Node, result *Node, ctx *Context)

// Store value type prefixes. The token generator classifies store entries by
// these prefixes, so extractors and tokens must agree on them.
const (
	PrefixLayout = "layout"
	PrefixText   = "style"
	PrefixFill   = "fill"
	PrefixStroke = "stroke"
	PrefixEffect = "effect"
)

// ExtractLayout records the node's normalized layout descriptor.
func ExtractLayout(raw *figma.Node, result *Node, ctx *Context) {
	layout := style.ConvertLayout(raw, ctx.Parent)
	if layout == nil {
		return
	}
	result.Layout = ctx.GlobalVars.FindOrCreate(layout, PrefixLayout)
}

// ExtractText records text content inline and the normalized text style as a
// store reference.
func ExtractText(raw *figma.Node, result *Node, ctx *Context) {
	if raw.Characters != "" {
		result.Text = raw.Characters
	}

	ts := style.ConvertTypeStyle(raw.Style)
	if ts == nil || *ts == (style.TextStyle{}) {
		return
	}
	result.TextStyle = ctx.GlobalVars.FindOrCreate(ts, PrefixText)
}

// ExtractVisuals records fills, strokes, and effects as store references and
// opacity plus border radius inline.
func ExtractVisuals(raw *figma.Node, result *Node, ctx *Context) {
	if fills := style.ConvertFills(raw); len(fills) > 0 {
		result.Fills = ctx.GlobalVars.FindOrCreate(fills, PrefixFill)
	}

	if strokes := style.ConvertStrokes(raw); strokes != nil {
		result.Strokes = ctx.GlobalVars.FindOrCreate(strokes, PrefixStroke)
	}

	if effects := style.ConvertEffects(raw, raw.Type == "TEXT"); effects != nil {
		result.Effects = ctx.GlobalVars.FindOrCreate(effects, PrefixEffect)
	}

	if raw.Opacity != nil && *raw.Opacity < 1 {
		result.Opacity = style.RoundTo(*raw.Opacity, 3)
	}
	result.BorderRadius = borderRadius(raw)
}

// ExtractComponent records component linkage for instance nodes.
func ExtractComponent(raw *figma.Node, result *Node, _ *Context) {
	if raw.ComponentID != "" {
		result.ComponentID = raw.ComponentID
	}
	if len(raw.ComponentProperties) == 0 {
		return
	}

	props := make(map[string]string, len(raw.ComponentProperties))
	for name, prop := range raw.ComponentProperties {
		props[name] = fmt.Sprintf("%v", prop.Value)
	}
	result.ComponentProperties = props
}

// borderRadius formats the node's corner rounding: one value for a uniform
// radius, the four-corner shorthand otherwise.
func borderRadius(raw *figma.Node) string {
	if raw.CornerRadius != nil && *raw.CornerRadius > 0 {
		return style.FormatPx(*raw.CornerRadius)
	}
	if r := raw.RectangleCornerRadii; len(r) == 4 {
		return style.BoxShorthand(r[0], r[1], r[2], r[3])
	}
	return ""
}

// AllExtractors is the full built-in set: layout, text, visuals, component.
func AllExtractors() []ExtractorFn {
	return []ExtractorFn{ExtractLayout, ExtractText, ExtractVisuals, ExtractComponent}
}

// LayoutAndTextExtractors extracts structure and typography only, skipping
// paints and effects.
func LayoutAndTextExtractors() []ExtractorFn {
	return []ExtractorFn{ExtractLayout, ExtractText}
}

// ContentExtractors extracts text content and component linkage only.
func ContentExtractors() []ExtractorFn {
	return []ExtractorFn{ExtractText, ExtractComponent}
}

// VisualExtractors extracts paints and effects only.
func VisualExtractors() []ExtractorFn {
	return []ExtractorFn{ExtractVisuals}
}
