package tokens

import (
	"strings"
)

// Stylesheet renders the full token set as a single :root custom-property
// block, one declaration per token, grouped by category with a category
// comment. Tokens without a usable custom-property value are skipped.
func Stylesheet(set Set) string {
	var sb strings.Builder
	sb.WriteString(":root {\n")

	for _, category := range categoryOrder {
		list := set[category]

		var declarations []string
		for _, token := range list {
			if token.CSSVariable == "" {
				continue
			}
			value := tokenCSSValue(token)
			if value == "" {
				continue
			}
			declarations = append(declarations, "  "+token.CSSVariable+": "+value+";")
		}
		if len(declarations) == 0 {
			continue
		}

		sb.WriteString("  /* " + capitalize(string(category)) + " */\n")
		for _, d := range declarations {
			sb.WriteString(d + "\n")
		}
	}

	sb.WriteString("}")
	return sb.String()
}

// tokenCSSValue re-derives the declaration value from the token's processed
// value. Color tokens already carry a plain CSS string; typography tokens
// carry a font summary rendered as a font shorthand.
func tokenCSSValue(token DesignToken) string {
	switch v := token.Value.(type) {
	case string:
		return v
	case FontSummary:
		return fontShorthand(v)
	default:
		return cssValue(token.Value, token.Type)
	}
}
