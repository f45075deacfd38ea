package simplify

import (
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

// SimplifyNode processes a single explicitly requested root node. Unlike list
// items, a filtered-out root here is a reportable failure: the caller asked
// for exactly this node, so an *InvalidRootError is returned instead of nil.
func SimplifyNode(root *figma.Node, cfg Config) (*Node, *vars.Store, error) {
	cfg = withDefaults(cfg)
	ctx := &Context{GlobalVars: cfg.GlobalVars}

	node := walkNode(root, cfg.Extractors, ctx, cfg.Traversal)
	if node == nil {
		return nil, cfg.GlobalVars, &InvalidRootError{NodeID: root.ID, Name: root.Name}
	}
	return node, cfg.GlobalVars, nil
}

// SimplifyNodes processes a list of independent root nodes in one traversal
// session sharing one store. Filtered-out roots are silently omitted, never an
// error.
func SimplifyNodes(roots []figma.Node, cfg Config) *Result {
	cfg = withDefaults(cfg)

	result := &Result{GlobalVars: cfg.GlobalVars}
	for i := range roots {
		ctx := &Context{GlobalVars: cfg.GlobalVars}
		if node := walkNode(&roots[i], cfg.Extractors, ctx, cfg.Traversal); node != nil {
			result.Nodes = append(result.Nodes, *node)
		}
	}
	return result
}

func withDefaults(cfg Config) Config {
	if len(cfg.Extractors) == 0 {
		cfg.Extractors = AllExtractors()
	}
	if cfg.GlobalVars == nil {
		cfg.GlobalVars = vars.NewStore()
	}
	return cfg
}

// walkNode visits one node: filters it, applies every extractor exactly once
// in list order, then recurses into surviving children. Returning nil means
// "omit from the parent's children".
//
// The single application of the full extractor list per node is what makes the
// traversal a true single pass: visit count is independent of how many style
// domains are active.
func walkNode(raw *figma.Node, extractors []ExtractorFn, ctx *Context, opts TraversalOptions) *Node {
	if isFiltered(raw, opts) {
		return nil
	}

	node := &Node{
		ID:   raw.ID,
		Name: raw.Name,
		Type: canonicalType(raw.Type),
	}

	for _, extract := range extractors {
		extract(raw, node, ctx)
	}

	if opts.MaxDepth > 0 && ctx.Depth >= opts.MaxDepth {
		return node
	}

	for i := range raw.Children {
		childCtx := &Context{
			GlobalVars: ctx.GlobalVars,
			Depth:      ctx.Depth + 1,
			Parent:     raw,
		}
		if child := walkNode(&raw.Children[i], extractors, childCtx, opts); child != nil {
			node.Children = append(node.Children, *child)
		}
	}

	return node
}

func isFiltered(raw *figma.Node, opts TraversalOptions) bool {
	if !raw.IsVisible() {
		return true
	}
	return opts.NodeFilter != nil && !opts.NodeFilter(raw)
}

// canonicalType normalizes vendor type tags. Figma's VECTOR nodes reach
// downstream consumers as exported images, so they are tagged as such here.
func canonicalType(t string) string {
	if t == "VECTOR" {
		return "IMAGE-SVG"
	}
	return t
}
