// Package formatter renders extraction results as a human-readable markdown
// design report: the token stylesheet, per-category token tables, and an
// indented outline of the simplified node tree.
package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/tokens"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

// ToMarkdown renders a complete design report for one extraction session.
func ToMarkdown(result *simplify.Result, tokenSet tokens.Set, fileName string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Design Specifications - %s\n\n", fileName))
	sb.WriteString("This document contains the design tokens and simplified node tree extracted from the design file.\n\n")

	writeStats(&sb, result.GlobalVars)
	writeTokens(&sb, tokenSet)
	writeTree(&sb, result.Nodes)

	return sb.String()
}

func writeStats(sb *strings.Builder, store *vars.Store) {
	stats := store.Statistics()

	sb.WriteString("## Global Variables\n\n")
	sb.WriteString(fmt.Sprintf("- **Distinct style values**: %d\n", stats.Count))
	sb.WriteString(fmt.Sprintf("- **Deduplicated references**: %d\n", stats.DuplicateHits))
	for _, prefix := range sortedKeys(stats.ByType) {
		sb.WriteString(fmt.Sprintf("- **%s**: %d\n", prefix, stats.ByType[prefix]))
	}
	sb.WriteString("\n")
}

func writeTokens(sb *strings.Builder, tokenSet tokens.Set) {
	sb.WriteString("## Design Tokens\n\n")
	sb.WriteString("```css\n")
	sb.WriteString(tokens.Stylesheet(tokenSet))
	sb.WriteString("\n```\n\n")

	if tokenSet.Count() == 0 {
		return
	}

	sb.WriteString("| Token | Category | Description |\n")
	sb.WriteString("|-------|----------|-------------|\n")
	for _, category := range []tokens.Category{
		tokens.CategoryColor, tokens.CategoryTypography, tokens.CategorySpacing,
		tokens.CategoryEffect, tokens.CategoryLayout, tokens.CategoryComponent,
	} {
		for _, token := range tokenSet[category] {
			sb.WriteString(fmt.Sprintf("| `%s` | %s | %s |\n", token.Name, token.Type, token.Description))
		}
	}
	sb.WriteString("\n")
}

func writeTree(sb *strings.Builder, nodes []simplify.Node) {
	if len(nodes) == 0 {
		return
	}

	sb.WriteString("## Node Tree\n\n")
	for i := range nodes {
		writeNode(sb, &nodes[i], 0)
	}
	sb.WriteString("\n")
}

func writeNode(sb *strings.Builder, node *simplify.Node, depth int) {
	indent := strings.Repeat("  ", depth)

	label := fmt.Sprintf("%s- **%s** (%s", indent, node.Name, node.Type)
	if node.Text != "" {
		label += fmt.Sprintf(", %q", truncate(node.Text, 40))
	}
	label += ")"
	sb.WriteString(label + "\n")

	for i := range node.Children {
		writeNode(sb, &node.Children[i], depth+1)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
