// Package figmaviewer turns a Figma design document into a compact simplified
// node tree, a deduplicated store of style values, and categorized design
// tokens ready for stylesheet consumption.
//
// The CLI lives in cmd/figma-metadata-viewer; this root package exposes the
// same pipeline as a Go API so that callers can embed extraction in their own
// tools without shelling out.
//
// # Import
//
// The module path contains hyphens but Go package names cannot, so the
// package is named figmaviewer:
//
//	import "github.com/darkxdd/figma-metadata-viewer-sub000" // package figmaviewer
//
// # Quick start
//
//	result, err := figmaviewer.Run(figmaviewer.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, _ := result.JSON()
//	os.WriteFile("design.json", data, 0644)
//	os.WriteFile("tokens.css", []byte(result.CSS), 0644)
//
// # Offline use
//
// Set [Options.InputPath] to an already-downloaded file API response to run
// the whole pipeline without network access.
//
// # Custom extraction
//
// The pipeline walks the raw tree exactly once and applies a composable list
// of extractors to every node. Pass a subset (for example
// [simplify.LayoutAndTextExtractors]) in [Options.Extractors] to restrict
// which style domains are extracted, or write your own
// [simplify.ExtractorFn].
//
// # Logging
//
// Pass a [Logger] implementation in [Options.Logger] to receive progress
// messages. A nil Logger silences all output.
package figmaviewer
