package figma

// FileResponse represents the complete response from the Figma file API endpoint.
// It contains the file metadata, document structure, published styles, components,
// and schema version information.
type FileResponse struct {
	Name          string               `json:"name"`
	LastModified  string               `json:"lastModified"`
	ThumbnailURL  string               `json:"thumbnailUrl"`
	Version       string               `json:"version"`
	Document      Node                 `json:"document"`
	Components    map[string]Component `json:"components,omitempty"`
	Styles        map[string]Style     `json:"styles,omitempty"`
	SchemaVersion int                  `json:"schemaVersion"`
}

// NodesResponse represents the response from the Figma nodes API endpoint when fetching specific nodes.
// It contains file metadata and a map of node IDs to their corresponding NodeData.
type NodesResponse struct {
	Name         string              `json:"name"`
	LastModified string              `json:"lastModified"`
	Version      string              `json:"version"`
	Nodes        map[string]NodeData `json:"nodes"`
}

// NodeData wraps a node with its document structure and optional component/style information.
// This is the structure returned for each requested node in a NodesResponse.
type NodeData struct {
	Document   Node                 `json:"document"`
	Components map[string]Component `json:"components,omitempty"`
	Styles     map[string]Style     `json:"styles,omitempty"`
}

// ImageFillsResponse represents the response from the Figma file images API endpoint.
// It maps imageRef values found on IMAGE paints to short-lived download URLs.
type ImageFillsResponse struct {
	Error bool `json:"error"`
	Meta  struct {
		Images map[string]string `json:"images"`
	} `json:"meta"`
}

// Component represents a Figma component definition with its metadata.
// Components are reusable design elements that can be instantiated throughout the file.
type Component struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ComponentProperty is a single property applied to a component instance,
// such as a variant selection or a text/boolean override.
type ComponentProperty struct {
	Type  string `json:"type"` // VARIANT, TEXT, BOOLEAN, INSTANCE_SWAP
	Value any    `json:"value"`
}

// Style represents a published Figma style with its basic properties.
// Styles can be colors (FILL), text styles (TEXT), effects (EFFECT), or layout grids (GRID).
type Style struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	StyleType   string `json:"style_type"`
}

// Node represents a single element in the Figma document tree hierarchy.
// The node kind is discriminated by Type (DOCUMENT, CANVAS, FRAME, GROUP, TEXT,
// VECTOR, RECTANGLE, COMPONENT, INSTANCE, ...); each kind populates a different
// subset of the optional attributes below. Every attribute except ID, Name and
// Type must be treated as optional by consumers.
type Node struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Visible  *bool  `json:"visible,omitempty"` // nil means visible
	Children []Node `json:"children,omitempty"`

	// Geometry
	AbsoluteBoundingBox *Rectangle `json:"absoluteBoundingBox,omitempty"`
	Opacity             *float64   `json:"opacity,omitempty"`
	BlendMode           string     `json:"blendMode,omitempty"`

	// Paints
	BackgroundColor *Color  `json:"backgroundColor,omitempty"`
	Fills           []Paint `json:"fills,omitempty"`
	Strokes         []Paint `json:"strokes,omitempty"`

	// Stroke geometry
	StrokeWeight            *float64       `json:"strokeWeight,omitempty"`
	IndividualStrokeWeights *StrokeWeights `json:"individualStrokeWeights,omitempty"`
	StrokeAlign             string         `json:"strokeAlign,omitempty"` // INSIDE, OUTSIDE, CENTER
	StrokeCap               string         `json:"strokeCap,omitempty"`
	StrokeJoin              string         `json:"strokeJoin,omitempty"`
	StrokeDashes            []float64      `json:"strokeDashes,omitempty"`

	// Corners
	CornerRadius         *float64  `json:"cornerRadius,omitempty"`
	RectangleCornerRadii []float64 `json:"rectangleCornerRadii,omitempty"`

	// Effects
	Effects []Effect `json:"effects,omitempty"`

	// Text
	Characters string     `json:"characters,omitempty"`
	Style      *TypeStyle `json:"style,omitempty"`

	// Auto-layout
	LayoutMode             string   `json:"layoutMode,omitempty"` // HORIZONTAL, VERTICAL, NONE
	PrimaryAxisAlignItems  string   `json:"primaryAxisAlignItems,omitempty"`
	CounterAxisAlignItems  string   `json:"counterAxisAlignItems,omitempty"`
	PrimaryAxisSizingMode  string   `json:"primaryAxisSizingMode,omitempty"`
	CounterAxisSizingMode  string   `json:"counterAxisSizingMode,omitempty"`
	LayoutAlign            string   `json:"layoutAlign,omitempty"`
	LayoutGrow             *float64 `json:"layoutGrow,omitempty"`
	LayoutSizingHorizontal string   `json:"layoutSizingHorizontal,omitempty"` // FIXED, HUG, FILL
	LayoutSizingVertical   string   `json:"layoutSizingVertical,omitempty"`
	LayoutWrap             string   `json:"layoutWrap,omitempty"`
	PaddingLeft            float64  `json:"paddingLeft,omitempty"`
	PaddingRight           float64  `json:"paddingRight,omitempty"`
	PaddingTop             float64  `json:"paddingTop,omitempty"`
	PaddingBottom          float64  `json:"paddingBottom,omitempty"`
	ItemSpacing            float64  `json:"itemSpacing,omitempty"`
	OverflowDirection      string   `json:"overflowDirection,omitempty"`

	// Components
	ComponentID         string                       `json:"componentId,omitempty"`
	ComponentProperties map[string]ComponentProperty `json:"componentProperties,omitempty"`

	// Export
	ExportSettings []ExportSetting `json:"exportSettings,omitempty"`
}

// IsVisible reports whether the node should be rendered. Figma omits the
// visible flag for visible nodes, so a nil pointer counts as visible.
func (n *Node) IsVisible() bool {
	return n.Visible == nil || *n.Visible
}

// ExportSetting describes a designer-defined export preset on a node.
type ExportSetting struct {
	Suffix string `json:"suffix"`
	Format string `json:"format"`
}

// StrokeWeights holds per-edge stroke weights for nodes whose borders differ by side.
type StrokeWeights struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Color represents an RGBA color with float values ranging from 0 to 1.
// The R, G, B, and A (alpha/opacity) values must be converted to 0-255 range for standard use.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Paint represents a fill or stroke applied to a Figma node. The paint kind is
// discriminated by Type: SOLID paints carry Color, GRADIENT_* paints carry
// GradientStops and either handle positions or a 2x3 transform, IMAGE paints
// carry an ImageRef plus scale mode.
type Paint struct {
	Type      string   `json:"type"`
	Visible   *bool    `json:"visible,omitempty"` // nil means visible
	Opacity   *float64 `json:"opacity,omitempty"` // nil means 1
	BlendMode string   `json:"blendMode,omitempty"`

	// SOLID
	Color *Color `json:"color,omitempty"`

	// GRADIENT_LINEAR, GRADIENT_RADIAL, GRADIENT_ANGULAR, GRADIENT_DIAMOND
	GradientHandlePositions []Vector    `json:"gradientHandlePositions,omitempty"`
	GradientStops           []ColorStop `json:"gradientStops,omitempty"`
	GradientTransform       [][]float64 `json:"gradientTransform,omitempty"` // 2x3 row-major

	// IMAGE
	ImageRef       string      `json:"imageRef,omitempty"`
	ScaleMode      string      `json:"scaleMode,omitempty"` // FILL, FIT, TILE, STRETCH
	ImageTransform [][]float64 `json:"imageTransform,omitempty"`
	ScalingFactor  *float64    `json:"scalingFactor,omitempty"`
}

// IsVisible reports whether the paint contributes to rendering.
func (p *Paint) IsVisible() bool {
	return p.Visible == nil || *p.Visible
}

// ColorStop is a single stop in a gradient, positioned in [0, 1] along the gradient axis.
type ColorStop struct {
	Position float64 `json:"position"`
	Color    Color   `json:"color"`
}

// Effect represents a visual effect applied to a Figma node such as drop shadows,
// inner shadows, or blur effects. It includes positioning (offset), blur radius,
// spread, color, and blend mode settings.
type Effect struct {
	Type      string  `json:"type"` // DROP_SHADOW, INNER_SHADOW, LAYER_BLUR, BACKGROUND_BLUR
	Visible   *bool   `json:"visible,omitempty"`
	Radius    float64 `json:"radius,omitempty"`
	Color     *Color  `json:"color,omitempty"`
	Offset    *Vector `json:"offset,omitempty"`
	Spread    float64 `json:"spread,omitempty"`
	BlendMode string  `json:"blendMode,omitempty"`
}

// IsVisible reports whether the effect contributes to rendering.
func (e *Effect) IsVisible() bool {
	return e.Visible == nil || *e.Visible
}

// Vector represents a 2D coordinate or offset with X and Y values.
// Used for positioning effects like shadows and for gradient handles.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TypeStyle represents comprehensive text styling properties from Figma.
// Line height arrives in two mutually exclusive upstream forms (absolute pixels
// and percent of font size); consumers prefer the pixel form when both are set.
type TypeStyle struct {
	FontFamily          string  `json:"fontFamily,omitempty"`
	FontPostScriptName  string  `json:"fontPostScriptName,omitempty"`
	FontWeight          float64 `json:"fontWeight,omitempty"`
	FontSize            float64 `json:"fontSize,omitempty"`
	Italic              bool    `json:"italic,omitempty"`
	LineHeightPx        float64 `json:"lineHeightPx,omitempty"`
	LineHeightPercent   float64 `json:"lineHeightPercent,omitempty"`
	LineHeightUnit      string  `json:"lineHeightUnit,omitempty"`
	LetterSpacing       float64 `json:"letterSpacing,omitempty"`
	TextCase            string  `json:"textCase,omitempty"`       // UPPER, LOWER, TITLE, SMALL_CAPS
	TextDecoration      string  `json:"textDecoration,omitempty"` // UNDERLINE, STRIKETHROUGH
	TextAlignHorizontal string  `json:"textAlignHorizontal,omitempty"`
	TextAlignVertical   string  `json:"textAlignVertical,omitempty"`
	ParagraphSpacing    float64 `json:"paragraphSpacing,omitempty"`
	TextAutoResize      string  `json:"textAutoResize,omitempty"`
}

// Rectangle represents a bounding box with position (X, Y) and dimensions (Width, Height).
// Used to define the absolute position and size of nodes in the Figma canvas.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}
