// Package simplify walks a raw Figma document tree exactly once and produces a
// compact simplified tree plus a deduplicated store of the style values the
// visited nodes use. Which style domains are extracted is controlled by the
// extractor list supplied by the caller.
package simplify

import (
	"fmt"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

// Node is the simplified representation of one raw node. Style-bearing fields
// hold StyleID references into the global variable store instead of inline
// values; scalar fields stay inline. A node with no surviving children omits
// the Children field entirely.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Text      string       `json:"text,omitempty"`
	TextStyle vars.StyleID `json:"textStyle,omitempty"`

	Fills   vars.StyleID `json:"fills,omitempty"`
	Strokes vars.StyleID `json:"strokes,omitempty"`
	Effects vars.StyleID `json:"effects,omitempty"`

	Opacity      float64 `json:"opacity,omitempty"`
	BorderRadius string  `json:"borderRadius,omitempty"`

	Layout vars.StyleID `json:"layout,omitempty"`

	ComponentID         string            `json:"componentId,omitempty"`
	ComponentProperties map[string]string `json:"componentProperties,omitempty"`

	Children []Node `json:"children,omitempty"`
}

// Result pairs the simplified trees from one traversal session with the store
// their style references point into.
type Result struct {
	Nodes      []Node      `json:"nodes"`
	GlobalVars *vars.Store `json:"globalVars"`
}

// Context is threaded through the recursive walk. The store is shared down the
// whole traversal; depth and parent are per-level.
type Context struct {
	GlobalVars *vars.Store
	Depth      int
	Parent     *figma.Node
}

// TraversalOptions bound and filter the walk.
type TraversalOptions struct {
	// MaxDepth limits how many levels below each root are descended.
	// Zero means unbounded.
	MaxDepth int
	// NodeFilter, when set, must return true for a node to be kept.
	// Filtered nodes are omitted together with their whole subtree.
	NodeFilter func(*figma.Node) bool
}

// Config is the full configuration surface of a traversal session.
type Config struct {
	// Extractors to apply to every visited node, in order. Defaults to
	// AllExtractors when empty.
	Extractors []ExtractorFn
	// GlobalVars is the store style values are registered into. A fresh
	// store is created when nil; pass an existing store to accumulate
	// deduplication across several traversals.
	GlobalVars *vars.Store
	// Traversal bounds and filtering.
	Traversal TraversalOptions
}

// InvalidRootError reports that the single node explicitly requested at the
// public entry point was itself rejected by the visibility or filter rules.
type InvalidRootError struct {
	NodeID string
	Name   string
}

func (e *InvalidRootError) Error() string {
	return fmt.Sprintf("root node %s (%q) is filtered out", e.NodeID, e.Name)
}
