package figma

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadFile reads an already-downloaded Figma file API response from disk.
// This supports offline extraction from documents captured earlier with
// GetFile or by other tooling.
func LoadFile(path string) (*FileResponse, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read design document %q: %w", path, err)
	}
	return ParseFile(data)
}

// ParseFile decodes a Figma file API response from raw JSON. Documents that
// are a bare node tree (no top-level "document" wrapper) are accepted too and
// wrapped into a FileResponse with the node as document root.
func ParseFile(data []byte) (*FileResponse, error) {
	var fileResp FileResponse
	if err := json.Unmarshal(data, &fileResp); err != nil {
		return nil, fmt.Errorf("parse design document: %w", err)
	}

	if fileResp.Document.ID != "" || fileResp.Document.Type != "" {
		return &fileResp, nil
	}

	// Fallback: bare node tree.
	var node Node
	if err := json.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse design document: %w", err)
	}
	if node.ID == "" && node.Type == "" {
		return nil, fmt.Errorf("design document has no document root")
	}

	return &FileResponse{Name: node.Name, Document: node}, nil
}
