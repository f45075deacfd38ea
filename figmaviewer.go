package figmaviewer

import (
	"encoding/json"
	"fmt"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/formatter"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/imager"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/tokens"
)

// Options configures one extraction run.
type Options struct {
	// Remote source. FileURL plus AccessToken fetch the document from the
	// Figma API; NodeIDs (or node-id URL parameters) narrow extraction to
	// specific frames.
	AccessToken string
	FileURL     string
	NodeIDs     []string

	// Local source. When set, InputPath is parsed as an already-downloaded
	// file API response and no network access happens.
	InputPath string

	// Extraction controls.
	Extractors []simplify.ExtractorFn // nil = all built-in extractors
	MaxDepth   int                    // 0 = unbounded
	NodeFilter func(*figma.Node) bool

	// Image fill download (remote source only).
	DownloadImages bool
	ImageDir       string

	Logger Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Result contains the extraction output.
type Result struct {
	FileName string
	Simplify *simplify.Result // simplified trees + global variable store
	Tokens   tokens.Set
	CSS      string // token custom-property block
	Markdown string // formatted design report
	Assets   []imager.DownloadedAsset
}

// JSON serializes the simplified trees and the global variable store as one
// indented document.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(struct {
		Name       string          `json:"name"`
		Nodes      []simplify.Node `json:"nodes"`
		GlobalVars json.RawMessage `json:"globalVars"`
	}{
		Name:       r.FileName,
		Nodes:      r.Simplify.Nodes,
		GlobalVars: mustMarshalStore(r),
	}, "", "  ")
}

func mustMarshalStore(r *Result) json.RawMessage {
	data, err := json.Marshal(r.Simplify.GlobalVars)
	if err != nil {
		return json.RawMessage("{}")
	}
	return json.RawMessage(data)
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run executes the extraction pipeline: load or fetch the raw document,
// simplify it in a single traversal, generate design tokens, and optionally
// download referenced image fills.
func Run(opts Options) (*Result, error) {
	roots, fileName, client, fileKey, err := loadDocument(&opts)
	if err != nil {
		opts.logError("%v", err)
		return nil, err
	}

	opts.logInfo("Simplifying %d root node(s)...", len(roots))
	cfg := simplify.Config{
		Extractors: opts.Extractors,
		Traversal: simplify.TraversalOptions{
			MaxDepth:   opts.MaxDepth,
			NodeFilter: opts.NodeFilter,
		},
	}
	simplified := simplify.SimplifyNodes(roots, cfg)

	stats := simplified.GlobalVars.Statistics()
	opts.logInfo("Extracted %d node tree(s), %d distinct style value(s), %d deduplicated reference(s)",
		len(simplified.Nodes), stats.Count, stats.DuplicateHits)

	opts.logInfo("Generating design tokens...")
	tokenSet := tokens.Generate(simplified.GlobalVars)

	result := &Result{
		FileName: fileName,
		Simplify: simplified,
		Tokens:   tokenSet,
		CSS:      tokens.Stylesheet(tokenSet),
	}

	if opts.DownloadImages && client != nil {
		if err := downloadImages(&opts, client, fileKey, result); err != nil {
			opts.logError("%v", err)
			return nil, err
		}
	}

	result.Markdown = formatter.ToMarkdown(simplified, tokenSet, fileName)
	return result, nil
}

// loadDocument resolves the raw root nodes from either a local document or the
// Figma API. The returned client is nil in local mode.
func loadDocument(opts *Options) (roots []figma.Node, fileName string, client *figma.Client, fileKey string, err error) {
	if opts.InputPath != "" {
		opts.logInfo("Loading design document from %s...", opts.InputPath)
		fileResp, err := figma.LoadFile(opts.InputPath)
		if err != nil {
			return nil, "", nil, "", err
		}
		return []figma.Node{fileResp.Document}, fileResp.Name, nil, "", nil
	}

	fileKey, err = figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return nil, "", nil, "", fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) == 0 {
		urlNodeIDs, err := figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return nil, "", nil, "", fmt.Errorf("extract node IDs from URL: %w", err)
		}
		targetNodeIDs = urlNodeIDs
	}

	client = figma.NewClient(opts.AccessToken)

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return nil, "", nil, "", fmt.Errorf("fetch nodes: %w", err)
		}
		// Preserve request order; missing IDs are skipped.
		for _, id := range targetNodeIDs {
			if nodeData, ok := nodesResp.Nodes[id]; ok {
				roots = append(roots, nodeData.Document)
			} else {
				opts.logWarn("Node %s not found in file", id)
			}
		}
		return roots, nodesResp.Name, client, fileKey, nil
	}

	opts.logInfo("Fetching file from Figma...")
	fileResp, err := client.GetFile(fileKey)
	if err != nil {
		return nil, "", nil, "", fmt.Errorf("fetch file: %w", err)
	}
	return []figma.Node{fileResp.Document}, fileResp.Name, client, fileKey, nil
}

func downloadImages(opts *Options, client *figma.Client, fileKey string, result *Result) error {
	imageDir := opts.ImageDir
	if imageDir == "" {
		imageDir = "figma-assets"
	}

	refs := imager.CollectImageRefs(result.Simplify.Nodes, result.Simplify.GlobalVars)
	if len(refs) == 0 {
		opts.logInfo("No image fills to download")
		return nil
	}

	opts.logInfo("Downloading %d image fill(s) to %s...", len(refs), imageDir)
	dlResult, err := imager.DownloadImageFills(client, fileKey, refs, imageDir)
	if err != nil {
		return fmt.Errorf("download image fills: %w", err)
	}
	for _, dlErr := range dlResult.Errors {
		opts.logWarn("%v", dlErr)
	}
	result.Assets = dlResult.Assets
	return nil
}
