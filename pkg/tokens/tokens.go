// Package tokens projects the global variable store into categorized,
// human-labeled design tokens and renders them as a stylesheet custom-property
// block. Tokens are a read-only projection: they are regenerated on demand and
// never mutated in place.
package tokens

import (
	"fmt"
	"strings"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/style"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

// Category classifies a design token.
type Category string

const (
	CategoryColor      Category = "color"
	CategoryTypography Category = "typography"
	CategorySpacing    Category = "spacing"
	CategoryEffect     Category = "effect"
	CategoryLayout     Category = "layout"
	CategoryComponent  Category = "component"
)

// categoryOrder fixes the emission order of categories in stylesheet output.
var categoryOrder = []Category{
	CategoryColor, CategoryTypography, CategorySpacing,
	CategoryEffect, CategoryLayout, CategoryComponent,
}

// DesignToken is one categorized, named projection of a store entry.
type DesignToken struct {
	ID          vars.StyleID `json:"id"`
	Name        string       `json:"name"`
	Value       any          `json:"value"`
	Type        Category     `json:"type"`
	CSSVariable string       `json:"cssVariable,omitempty"`
	Description string       `json:"description,omitempty"`
}

// Set groups tokens by category.
type Set map[Category][]DesignToken

// Count returns the total number of tokens across all categories.
func (s Set) Count() int {
	n := 0
	for _, list := range s {
		n += len(list)
	}
	return n
}

// Generate classifies every store entry and builds the token set. Entries that
// cannot be classified are dropped rather than mis-tagged.
func Generate(store *vars.Store) Set {
	set := make(Set)

	for _, id := range store.IDs() {
		value, _ := store.Get(id)
		category, ok := classify(id, value)
		if !ok {
			continue
		}
		set[category] = append(set[category], buildToken(id, value, category))
	}

	return set
}

// classify determines a token category primarily from the id's type prefix,
// falling back to structural inference on the value itself when the prefix is
// absent or unrecognized.
func classify(id vars.StyleID, value any) (Category, bool) {
	switch id.Prefix() {
	case simplify.PrefixFill, simplify.PrefixStroke:
		return CategoryColor, true
	case simplify.PrefixText:
		return CategoryTypography, true
	case simplify.PrefixLayout:
		return CategoryLayout, true
	case simplify.PrefixEffect:
		return CategoryEffect, true
	case "spacing":
		return CategorySpacing, true
	case "component":
		return CategoryComponent, true
	}
	return inferCategory(value)
}

// inferCategory inspects the value's shape: a text style implies typography,
// a layout descriptor implies layout, and so on.
func inferCategory(value any) (Category, bool) {
	switch v := value.(type) {
	case *style.TextStyle:
		return CategoryTypography, v != nil
	case style.TextStyle:
		return CategoryTypography, true
	case *style.Layout:
		return CategoryLayout, v != nil
	case style.Layout:
		return CategoryLayout, true
	case *style.Effects:
		return CategoryEffect, v != nil
	case style.Effects:
		return CategoryEffect, true
	case []style.Fill:
		return CategoryColor, len(v) > 0
	case *style.Stroke:
		return CategoryColor, v != nil
	case style.Fill:
		return CategoryColor, true
	case string, float64:
		return CategorySpacing, true
	default:
		return "", false
	}
}

func buildToken(id vars.StyleID, value any, category Category) DesignToken {
	token := DesignToken{
		ID:    id,
		Name:  tokenName(id, category),
		Value: processValue(value, category),
		Type:  category,
	}

	if css := cssValue(value, category); css != "" {
		token.CSSVariable = "--" + token.Name
	}
	token.Description = fmt.Sprintf("%s token derived from store entry %s", capitalize(string(category)), id)

	return token
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// tokenName derives a stable human-readable name from the category and the
// id's random suffix.
func tokenName(id vars.StyleID, category Category) string {
	suffix := string(id)
	if i := strings.LastIndex(suffix, "_"); i >= 0 {
		suffix = suffix[i+1:]
	}
	return string(category) + "-" + strings.ToLower(suffix)
}

// FontSummary is the shorthand-like object a typography token collapses to.
type FontSummary struct {
	FontFamily string  `json:"fontFamily,omitempty"`
	FontWeight int     `json:"fontWeight,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty"`
	LineHeight string  `json:"lineHeight,omitempty"`
}

// processValue produces the category-specific token value. Typography
// collapses to a font summary; color tokens reduce to their primary CSS color;
// other categories keep the normalized descriptor.
func processValue(value any, category Category) any {
	switch category {
	case CategoryTypography:
		if ts := asTextStyle(value); ts != nil {
			return FontSummary{
				FontFamily: ts.FontFamily,
				FontWeight: ts.FontWeight,
				FontSize:   ts.FontSize,
				LineHeight: ts.LineHeight,
			}
		}
	case CategoryColor:
		if css := colorCSS(value); css != "" {
			return css
		}
	}
	return value
}

func asTextStyle(value any) *style.TextStyle {
	switch v := value.(type) {
	case *style.TextStyle:
		return v
	case style.TextStyle:
		return &v
	}
	return nil
}

// colorCSS extracts the primary CSS color value from a fill list or stroke.
func colorCSS(value any) string {
	firstFill := func(fills []style.Fill) string {
		for _, f := range fills {
			if f.Color != "" {
				return f.Color
			}
			if f.Gradient != "" {
				return f.Gradient
			}
		}
		return ""
	}

	switch v := value.(type) {
	case []style.Fill:
		return firstFill(v)
	case style.Fill:
		return firstFill([]style.Fill{v})
	case *style.Stroke:
		if v != nil {
			return firstFill(v.Colors)
		}
	case style.Stroke:
		return firstFill(v.Colors)
	case string:
		return v
	}
	return ""
}

// cssValue renders the token's custom-property value, or the empty string for
// categories that have no sensible single-declaration form.
func cssValue(value any, category Category) string {
	switch category {
	case CategoryColor:
		return colorCSS(value)

	case CategoryTypography:
		ts := asTextStyle(value)
		if ts == nil {
			return ""
		}
		return fontShorthand(FontSummary{
			FontFamily: ts.FontFamily,
			FontWeight: ts.FontWeight,
			FontSize:   ts.FontSize,
			LineHeight: ts.LineHeight,
		})

	case CategoryEffect:
		switch v := value.(type) {
		case *style.Effects:
			if v == nil {
				return ""
			}
			return effectCSS(*v)
		case style.Effects:
			return effectCSS(v)
		}

	case CategorySpacing:
		switch v := value.(type) {
		case string:
			return v
		case float64:
			return style.FormatPx(v)
		}
	}
	return ""
}

// fontShorthand renders a typography token as a CSS font shorthand:
// weight size/line-height family.
func fontShorthand(fs FontSummary) string {
	if fs.FontFamily == "" {
		return ""
	}
	size := style.FormatPx(fs.FontSize)
	if fs.LineHeight != "" {
		size += "/" + fs.LineHeight
	}
	var parts []string
	if fs.FontWeight > 0 {
		parts = append(parts, fmt.Sprintf("%d", fs.FontWeight))
	}
	parts = append(parts, size, fs.FontFamily)
	return strings.Join(parts, " ")
}

func effectCSS(e style.Effects) string {
	switch {
	case e.BoxShadow != "":
		return e.BoxShadow
	case e.TextShadow != "":
		return e.TextShadow
	case e.Filter != "":
		return e.Filter
	case e.BackdropFilter != "":
		return e.BackdropFilter
	}
	return ""
}
