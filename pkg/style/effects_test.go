package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

func TestConvertEffectsNilWhenEmpty(t *testing.T) {
	assert.Nil(t, ConvertEffects(&figma.Node{}, false))
	assert.Nil(t, ConvertEffects(&figma.Node{BlendMode: "NORMAL"}, false))
	assert.Nil(t, ConvertEffects(&figma.Node{BlendMode: "PASS_THROUGH"}, false))
}

func TestConvertEffectsDropShadow(t *testing.T) {
	node := figma.Node{
		Effects: []figma.Effect{
			{
				Type:   "DROP_SHADOW",
				Offset: &figma.Vector{X: 0, Y: 4},
				Radius: 8,
				Color:  &figma.Color{R: 0, G: 0, B: 0, A: 0.25},
			},
		},
	}

	out := ConvertEffects(&node, false)
	require.NotNil(t, out)
	assert.Equal(t, "0 4px 8px rgba(0, 0, 0, 0.25)", out.BoxShadow)
	assert.Empty(t, out.TextShadow)
}

func TestConvertEffectsMultipleShadowsJoined(t *testing.T) {
	node := figma.Node{
		Effects: []figma.Effect{
			{Type: "DROP_SHADOW", Offset: &figma.Vector{Y: 1}, Radius: 2, Color: &figma.Color{A: 1}},
			{Type: "INNER_SHADOW", Offset: &figma.Vector{Y: 2}, Radius: 4, Spread: 1, Color: &figma.Color{A: 1}},
		},
	}

	out := ConvertEffects(&node, false)
	require.NotNil(t, out)
	assert.Equal(t, "0 1px 2px #000000, inset 0 2px 4px 1px #000000", out.BoxShadow)
}

func TestConvertEffectsTextRouting(t *testing.T) {
	node := figma.Node{
		Effects: []figma.Effect{
			{Type: "DROP_SHADOW", Offset: &figma.Vector{Y: 2}, Radius: 3, Color: &figma.Color{A: 1}},
		},
	}

	out := ConvertEffects(&node, true)
	require.NotNil(t, out)
	assert.Equal(t, "0 2px 3px #000000", out.TextShadow)
	assert.Empty(t, out.BoxShadow)
}

func TestConvertEffectsBlurs(t *testing.T) {
	node := figma.Node{
		Effects: []figma.Effect{
			{Type: "LAYER_BLUR", Radius: 4},
			{Type: "BACKGROUND_BLUR", Radius: 12},
		},
	}

	out := ConvertEffects(&node, false)
	require.NotNil(t, out)
	assert.Equal(t, "blur(4px)", out.Filter)
	assert.Equal(t, "blur(12px)", out.BackdropFilter)
}

func TestConvertEffectsSkipsInvisible(t *testing.T) {
	hidden := false
	node := figma.Node{
		Effects: []figma.Effect{
			{Type: "DROP_SHADOW", Visible: &hidden, Radius: 8, Color: &figma.Color{A: 1}},
		},
	}
	assert.Nil(t, ConvertEffects(&node, false))
}

func TestConvertEffectsBlendMode(t *testing.T) {
	node := figma.Node{BlendMode: "MULTIPLY"}
	out := ConvertEffects(&node, false)
	require.NotNil(t, out)
	assert.Equal(t, "multiply", out.MixBlendMode)
}

func TestBlendModeCSS(t *testing.T) {
	tests := []struct {
		mode string
		want string
	}{
		{"MULTIPLY", "multiply"},
		{"COLOR_DODGE", "color-dodge"},
		{"SOFT_LIGHT", "soft-light"},
		{"LUMINOSITY", "luminosity"},
		{"PASS_THROUGH", "normal"},
		{"NORMAL", "normal"},
		{"LINEAR_BURN", "normal"}, // unsupported mode degrades
		{"", "normal"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BlendModeCSS(tt.mode), "mode %q", tt.mode)
	}
}
