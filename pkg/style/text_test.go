package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

func TestConvertTypeStyleNil(t *testing.T) {
	assert.Nil(t, ConvertTypeStyle(nil))
}

func TestConvertTypeStyleBasic(t *testing.T) {
	ts := figma.TypeStyle{
		FontFamily:          "Inter",
		FontWeight:          600,
		FontSize:            16,
		LineHeightPx:        24,
		LetterSpacing:       0.32,
		TextCase:            "UPPER",
		TextDecoration:      "UNDERLINE",
		TextAlignHorizontal: "CENTER",
		Italic:              true,
	}

	out := ConvertTypeStyle(&ts)
	require.NotNil(t, out)
	assert.Equal(t, "Inter", out.FontFamily)
	assert.Equal(t, 600, out.FontWeight)
	assert.Equal(t, 16.0, out.FontSize)
	assert.Equal(t, "italic", out.FontStyle)
	assert.Equal(t, "1.5", out.LineHeight)
	assert.Equal(t, "0.02em", out.LetterSpacing)
	assert.Equal(t, "uppercase", out.TextTransform)
	assert.Equal(t, "underline", out.TextDecoration)
	assert.Equal(t, "center", out.TextAlign)
}

// Pixel line height wins over the percent form when both arrive.
func TestLineHeightPrecedence(t *testing.T) {
	ts := figma.TypeStyle{
		FontSize:          20,
		LineHeightPx:      30,
		LineHeightPercent: 200,
	}

	out := ConvertTypeStyle(&ts)
	require.NotNil(t, out)
	assert.Equal(t, "1.5", out.LineHeight)
}

func TestLineHeightPercentFallback(t *testing.T) {
	ts := figma.TypeStyle{
		FontSize:          20,
		LineHeightPercent: 120,
	}

	out := ConvertTypeStyle(&ts)
	require.NotNil(t, out)
	assert.Equal(t, "1.2", out.LineHeight)
}

func TestNormalizeFontWeight(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{400, 400},
		{449, 400},
		{450, 500},
		{651, 700},
		{50, 100},
		{0.5, 100},
		{1200, 900},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeFontWeight(tt.in), "weight %v", tt.in)
	}
}

func TestTextAlignLeftOmitted(t *testing.T) {
	out := ConvertTypeStyle(&figma.TypeStyle{FontSize: 12, TextAlignHorizontal: "LEFT"})
	require.NotNil(t, out)
	assert.Empty(t, out.TextAlign)
}

func TestTextCaseMapping(t *testing.T) {
	tests := []struct {
		textCase string
		want     string
	}{
		{"UPPER", "uppercase"},
		{"LOWER", "lowercase"},
		{"TITLE", "capitalize"},
		{"ORIGINAL", ""},
		{"", ""},
	}

	for _, tt := range tests {
		out := ConvertTypeStyle(&figma.TypeStyle{FontSize: 12, TextCase: tt.textCase})
		require.NotNil(t, out)
		assert.Equal(t, tt.want, out.TextTransform, "case %q", tt.textCase)
	}
}
