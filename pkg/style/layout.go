package style

import (
	"sort"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
)

// Layout is the normalized layout descriptor for a node: the flex container
// translation of Figma auto-layout plus the node's own size, position relative
// to its parent, and an optional inferred grid arrangement.
type Layout struct {
	Mode           string      `json:"mode"` // row, column, none
	JustifyContent string      `json:"justifyContent,omitempty"`
	AlignItems     string      `json:"alignItems,omitempty"`
	AlignSelf      string      `json:"alignSelf,omitempty"`
	Wrap           bool        `json:"wrap,omitempty"`
	Gap            string      `json:"gap,omitempty"`
	Padding        string      `json:"padding,omitempty"`
	Sizing         *Sizing     `json:"sizing,omitempty"`
	Dimensions     *Dimensions `json:"dimensions,omitempty"`
	Position       *Position   `json:"position,omitempty"`
	OverflowScroll []string    `json:"overflowScroll,omitempty"`
	Grid           *Grid       `json:"grid,omitempty"`
}

// Sizing describes how the node sizes along each axis: fixed, hug, or fill.
type Sizing struct {
	Horizontal string `json:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty"`
}

// Dimensions holds pixel-rounded size and, when both axes are fixed, the
// aspect ratio.
type Dimensions struct {
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	AspectRatio float64 `json:"aspectRatio,omitempty"`
}

// Position is the node's offset relative to its parent's bounding box.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Grid describes a regular rectangular child arrangement detected on a
// non-auto-layout container.
type Grid struct {
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Gap     string `json:"gap,omitempty"`
}

// IsFrameLike reports whether the node kind can own layout children.
func IsFrameLike(n *figma.Node) bool {
	switch n.Type {
	case "FRAME", "GROUP", "COMPONENT", "COMPONENT_SET", "INSTANCE", "SECTION":
		return true
	default:
		return false
	}
}

// HasLayoutBox reports whether the node carries a bounding box.
func HasLayoutBox(n *figma.Node) bool {
	return n.AbsoluteBoundingBox != nil
}

// ConvertLayout normalizes a node's layout attributes relative to its parent.
// Returns nil when nothing layout-relevant is present (no auto-layout, no
// bounding box, no self-alignment).
func ConvertLayout(n, parent *figma.Node) *Layout {
	layout := &Layout{Mode: layoutMode(n)}

	if layout.Mode != "none" {
		convertAutoLayout(n, layout)
	} else if grid := detectGrid(n); grid != nil {
		layout.Grid = grid
	}

	if n.LayoutAlign == "STRETCH" {
		layout.AlignSelf = "stretch"
	}

	layout.Sizing = convertSizing(n)
	layout.Dimensions = convertDimensions(n)
	layout.Position = convertPosition(n, parent)

	switch n.OverflowDirection {
	case "HORIZONTAL_SCROLLING":
		layout.OverflowScroll = []string{"x"}
	case "VERTICAL_SCROLLING":
		layout.OverflowScroll = []string{"y"}
	case "HORIZONTAL_AND_VERTICAL_SCROLLING":
		layout.OverflowScroll = []string{"x", "y"}
	}

	if layout.Mode == "none" && layout.Grid == nil && layout.AlignSelf == "" &&
		layout.Sizing == nil && layout.Dimensions == nil && layout.Position == nil &&
		len(layout.OverflowScroll) == 0 {
		return nil
	}
	return layout
}

func layoutMode(n *figma.Node) string {
	switch n.LayoutMode {
	case "HORIZONTAL":
		return "row"
	case "VERTICAL":
		return "column"
	default:
		return "none"
	}
}

// convertAutoLayout fills in the flex container properties of an auto-layout
// node: axis alignment, wrap, gap, and padding.
func convertAutoLayout(n *figma.Node, layout *Layout) {
	layout.JustifyContent = alignKeyword(n.PrimaryAxisAlignItems)
	layout.AlignItems = alignKeyword(n.CounterAxisAlignItems)

	// A container whose children all fill the counter axis behaves as stretch
	// regardless of the declared alignment.
	if layout.AlignItems == "" && childrenFillCounterAxis(n) {
		layout.AlignItems = "stretch"
	}

	if n.LayoutWrap == "WRAP" {
		layout.Wrap = true
	}
	if n.ItemSpacing > 0 {
		layout.Gap = FormatPx(n.ItemSpacing)
	}
	layout.Padding = BoxShorthand(n.PaddingTop, n.PaddingRight, n.PaddingBottom, n.PaddingLeft)
}

// alignKeyword maps a Figma axis alignment enum onto its flex keyword.
// MIN is flexbox's default (start) and is omitted.
func alignKeyword(align string) string {
	switch align {
	case "MAX":
		return "end"
	case "CENTER":
		return "center"
	case "SPACE_BETWEEN":
		return "space-between"
	case "BASELINE":
		return "baseline"
	default: // MIN or absent
		return ""
	}
}

// childrenFillCounterAxis reports whether every visible child is set to fill
// the container's counter axis.
func childrenFillCounterAxis(n *figma.Node) bool {
	seen := false
	for i := range n.Children {
		child := &n.Children[i]
		if !child.IsVisible() {
			continue
		}
		seen = true

		fills := child.LayoutAlign == "STRETCH"
		if n.LayoutMode == "HORIZONTAL" {
			fills = fills || child.LayoutSizingVertical == "FILL"
		} else {
			fills = fills || child.LayoutSizingHorizontal == "FILL"
		}
		if !fills {
			return false
		}
	}
	return seen
}

// convertSizing maps layout sizing modes to fixed/hug/fill per axis.
func convertSizing(n *figma.Node) *Sizing {
	h := sizingKeyword(n.LayoutSizingHorizontal)
	v := sizingKeyword(n.LayoutSizingVertical)

	// Older documents express hug through the sizing mode fields instead.
	if h == "" && n.LayoutMode == "HORIZONTAL" && n.PrimaryAxisSizingMode == "AUTO" {
		h = "hug"
	}
	if v == "" && n.LayoutMode == "VERTICAL" && n.PrimaryAxisSizingMode == "AUTO" {
		v = "hug"
	}
	if h == "" && n.LayoutGrow != nil && *n.LayoutGrow > 0 {
		h = "fill"
	}

	if h == "" && v == "" {
		return nil
	}
	return &Sizing{Horizontal: h, Vertical: v}
}

func sizingKeyword(mode string) string {
	switch mode {
	case "FIXED":
		return "fixed"
	case "HUG":
		return "hug"
	case "FILL":
		return "fill"
	default:
		return ""
	}
}

// convertDimensions records pixel-rounded size; the aspect ratio is included
// only when both dimensions are fixed (neither axis hugs or fills).
func convertDimensions(n *figma.Node) *Dimensions {
	if !HasLayoutBox(n) {
		return nil
	}
	box := n.AbsoluteBoundingBox
	if box.Width == 0 && box.Height == 0 {
		return nil
	}

	d := &Dimensions{
		Width:  Round(box.Width),
		Height: Round(box.Height),
	}

	bothFixed := n.LayoutSizingHorizontal != "HUG" && n.LayoutSizingHorizontal != "FILL" &&
		n.LayoutSizingVertical != "HUG" && n.LayoutSizingVertical != "FILL"
	if bothFixed && d.Height > 0 {
		d.AspectRatio = RoundTo(d.Width/d.Height, 3)
	}

	return d
}

// convertPosition computes the node's offset inside its parent's box.
func convertPosition(n, parent *figma.Node) *Position {
	if parent == nil || !HasLayoutBox(n) || !HasLayoutBox(parent) {
		return nil
	}
	return &Position{
		X: Round(n.AbsoluteBoundingBox.X - parent.AbsoluteBoundingBox.X),
		Y: Round(n.AbsoluteBoundingBox.Y - parent.AbsoluteBoundingBox.Y),
	}
}

// detectGrid promotes a regular rectangular child arrangement to a grid
// descriptor. It requires at least four visible positioned children spread
// over at least two distinct columns and two distinct rows; track counts come
// from the sorted unique coordinates and the representative gap from the first
// horizontally adjacent pair.
func detectGrid(n *figma.Node) *Grid {
	type cell struct {
		x, y, w float64
	}

	var cells []cell
	for i := range n.Children {
		child := &n.Children[i]
		if !child.IsVisible() || child.AbsoluteBoundingBox == nil {
			continue
		}
		cells = append(cells, cell{
			x: Round(child.AbsoluteBoundingBox.X),
			y: Round(child.AbsoluteBoundingBox.Y),
			w: Round(child.AbsoluteBoundingBox.Width),
		})
	}
	if len(cells) < 4 {
		return nil
	}

	xsAll := make([]float64, len(cells))
	ysAll := make([]float64, len(cells))
	for i, c := range cells {
		xsAll[i], ysAll[i] = c.x, c.y
	}
	xs := uniqueSorted(xsAll)
	ys := uniqueSorted(ysAll)
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}

	grid := &Grid{Columns: len(xs), Rows: len(ys)}

	// Representative gap: distance between the first column's right edge and
	// the second column's left edge, taken from any cell in the first column.
	for _, c := range cells {
		if c.x == xs[0] {
			if gap := xs[1] - (c.x + c.w); gap > 0 {
				grid.Gap = FormatPx(gap)
			}
			break
		}
	}

	return grid
}

func uniqueSorted(values []float64) []float64 {
	seen := make(map[float64]bool, len(values))
	var out []float64
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Float64s(out)
	return out
}
