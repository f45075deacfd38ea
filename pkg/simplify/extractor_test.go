package simplify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/style"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

func newCtx() *Context {
	return &Context{GlobalVars: vars.NewStore()}
}

func TestExtractTextContentAndStyle(t *testing.T) {
	raw := figma.Node{
		Type:       "TEXT",
		Characters: "Sign in",
		Style:      &figma.TypeStyle{FontFamily: "Inter", FontSize: 14, FontWeight: 500},
	}

	ctx := newCtx()
	var result Node
	ExtractText(&raw, &result, ctx)

	assert.Equal(t, "Sign in", result.Text)
	require.NotEmpty(t, result.TextStyle)
	assert.Equal(t, PrefixText, result.TextStyle.Prefix())

	v, ok := ctx.GlobalVars.Get(result.TextStyle)
	require.True(t, ok)
	ts, ok := v.(*style.TextStyle)
	require.True(t, ok)
	assert.Equal(t, "Inter", ts.FontFamily)
}

func TestExtractTextEmptyStyleSkipped(t *testing.T) {
	raw := figma.Node{Type: "TEXT", Characters: "plain", Style: &figma.TypeStyle{}}

	ctx := newCtx()
	var result Node
	ExtractText(&raw, &result, ctx)

	assert.Equal(t, "plain", result.Text)
	assert.Empty(t, result.TextStyle)
	assert.Equal(t, 0, ctx.GlobalVars.Len())
}

// Two nodes carrying structurally equal styles must converge to one StyleID.
func TestCrossNodeDeduplication(t *testing.T) {
	fills := []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 0.2, G: 0.4, B: 0.8, A: 1}}}
	a := figma.Node{ID: "a", Type: "RECTANGLE", Fills: fills}
	b := figma.Node{ID: "b", Type: "RECTANGLE", Fills: fills}

	ctx := newCtx()
	var resultA, resultB Node
	ExtractVisuals(&a, &resultA, ctx)
	ExtractVisuals(&b, &resultB, ctx)

	require.NotEmpty(t, resultA.Fills)
	assert.Equal(t, resultA.Fills, resultB.Fills)
	assert.Equal(t, 1, ctx.GlobalVars.Len())
	assert.Equal(t, PrefixFill, resultA.Fills.Prefix())
}

func TestExtractVisualsAllDomains(t *testing.T) {
	weight := 2.0
	opacity := 0.5
	radius := 8.0
	raw := figma.Node{
		Type:         "RECTANGLE",
		Opacity:      &opacity,
		CornerRadius: &radius,
		Fills:        []figma.Paint{{Type: "SOLID", Color: &figma.Color{R: 1, A: 1}}},
		StrokeWeight: &weight,
		Strokes:      []figma.Paint{{Type: "SOLID", Color: &figma.Color{A: 1}}},
		Effects: []figma.Effect{
			{Type: "DROP_SHADOW", Offset: &figma.Vector{Y: 2}, Radius: 4, Color: &figma.Color{A: 0.5}},
		},
	}

	ctx := newCtx()
	var result Node
	ExtractVisuals(&raw, &result, ctx)

	assert.Equal(t, PrefixFill, result.Fills.Prefix())
	assert.Equal(t, PrefixStroke, result.Strokes.Prefix())
	assert.Equal(t, PrefixEffect, result.Effects.Prefix())
	assert.Equal(t, 0.5, result.Opacity)
	assert.Equal(t, "8px", result.BorderRadius)
	assert.Equal(t, 3, ctx.GlobalVars.Len())
}

func TestExtractVisualsFullOpacityOmitted(t *testing.T) {
	opacity := 1.0
	raw := figma.Node{Type: "RECTANGLE", Opacity: &opacity}

	var result Node
	ExtractVisuals(&raw, &result, newCtx())
	assert.Zero(t, result.Opacity)
}

func TestBorderRadiusPerCorner(t *testing.T) {
	raw := figma.Node{
		Type:                 "RECTANGLE",
		RectangleCornerRadii: []float64{4, 8, 4, 8},
	}

	var result Node
	ExtractVisuals(&raw, &result, newCtx())
	assert.Equal(t, "4px 8px", result.BorderRadius)
}

func TestExtractLayoutRegistersDescriptor(t *testing.T) {
	raw := figma.Node{
		Type:       "FRAME",
		LayoutMode: "HORIZONTAL",
	}

	ctx := newCtx()
	var result Node
	ExtractLayout(&raw, &result, ctx)

	require.NotEmpty(t, result.Layout)
	assert.Equal(t, PrefixLayout, result.Layout.Prefix())

	v, ok := ctx.GlobalVars.Get(result.Layout)
	require.True(t, ok)
	layout, ok := v.(*style.Layout)
	require.True(t, ok)
	assert.Equal(t, "row", layout.Mode)
}

func TestExtractLayoutNothingRelevant(t *testing.T) {
	raw := figma.Node{Type: "TEXT"}

	ctx := newCtx()
	var result Node
	ExtractLayout(&raw, &result, ctx)

	assert.Empty(t, result.Layout)
	assert.Equal(t, 0, ctx.GlobalVars.Len())
}

func TestExtractComponent(t *testing.T) {
	raw := figma.Node{
		Type:        "INSTANCE",
		ComponentID: "14:99",
		ComponentProperties: map[string]figma.ComponentProperty{
			"Variant": {Type: "VARIANT", Value: "Primary"},
			"Active":  {Type: "BOOLEAN", Value: true},
		},
	}

	var result Node
	ExtractComponent(&raw, &result, nil)

	assert.Equal(t, "14:99", result.ComponentID)
	assert.Equal(t, "Primary", result.ComponentProperties["Variant"])
	assert.Equal(t, "true", result.ComponentProperties["Active"])
}

func TestExtractComponentNonInstance(t *testing.T) {
	raw := figma.Node{Type: "FRAME"}

	var result Node
	ExtractComponent(&raw, &result, nil)
	assert.Empty(t, result.ComponentID)
	assert.Nil(t, result.ComponentProperties)
}

func TestExtractorBundles(t *testing.T) {
	assert.Len(t, AllExtractors(), 4)
	assert.Len(t, LayoutAndTextExtractors(), 2)
	assert.Len(t, ContentExtractors(), 2)
	assert.Len(t, VisualExtractors(), 1)
}
