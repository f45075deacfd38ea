// Package imager downloads the image fills referenced by a simplified node
// tree. The core extraction pipeline only records imageRef metadata; resolving
// those references to URLs and fetching the bytes happens here, outside the
// synchronous core.
package imager

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/style"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

const maxParallelDownloads = 5

// ImageRef ties an image reference to the first node that uses it.
type ImageRef struct {
	Ref      string
	NodeID   string
	NodeName string
}

// DownloadedAsset records one fetched image.
type DownloadedAsset struct {
	Ref      string
	NodeID   string
	NodeName string
	FileName string
}

// DownloadResult holds downloaded assets plus non-fatal per-image failures.
type DownloadResult struct {
	Assets []DownloadedAsset
	Errors []error
}

// CollectImageRefs walks the simplified tree and gathers every distinct image
// reference recorded by the visuals extractor, resolved through the store.
func CollectImageRefs(nodes []simplify.Node, store *vars.Store) []ImageRef {
	seen := make(map[string]bool)
	var refs []ImageRef

	var walk func(n *simplify.Node)
	walk = func(n *simplify.Node) {
		if n.Fills != "" {
			if value, ok := store.Get(n.Fills); ok {
				if fills, ok := value.([]style.Fill); ok {
					for _, f := range fills {
						if f.ImageRef == "" || seen[f.ImageRef] {
							continue
						}
						seen[f.ImageRef] = true
						refs = append(refs, ImageRef{Ref: f.ImageRef, NodeID: n.ID, NodeName: n.Name})
					}
				}
			}
		}
		for i := range n.Children {
			walk(&n.Children[i])
		}
	}

	for i := range nodes {
		walk(&nodes[i])
	}
	return refs
}

// DownloadImageFills resolves the given references through the file images API
// and downloads them concurrently into outputDir. References the API returns
// no URL for are reported as per-image errors, not a failure of the whole
// operation.
func DownloadImageFills(client *figma.Client, fileKey string, refs []ImageRef, outputDir string) (*DownloadResult, error) {
	if len(refs) == 0 {
		return &DownloadResult{}, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output directory %q: %w", outputDir, err)
	}

	fillsResp, err := client.GetImageFills(fileKey)
	if err != nil {
		return nil, fmt.Errorf("fetch image fill URLs: %w", err)
	}

	result := &DownloadResult{}
	usedNames := make(map[string]int)

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelDownloads)
	var mu sync.Mutex

	for _, ref := range refs {
		url := fillsResp.Meta.Images[ref.Ref]
		if url == "" {
			result.Errors = append(result.Errors, fmt.Errorf("no download URL for image %s (node %s)", ref.Ref, ref.NodeID))
			continue
		}

		wg.Add(1)
		go func(ref ImageRef, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			mu.Lock()
			fileName := buildFileName(ref, usedNames)
			mu.Unlock()

			destPath := filepath.Join(outputDir, fileName)
			if err := downloadFile(url, destPath); err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Errorf("download %s: %w", ref.Ref, err))
				mu.Unlock()
				return
			}

			mu.Lock()
			result.Assets = append(result.Assets, DownloadedAsset{
				Ref:      ref.Ref,
				NodeID:   ref.NodeID,
				NodeName: ref.NodeName,
				FileName: fileName,
			})
			mu.Unlock()
		}(ref, url)
	}

	wg.Wait()
	return result, nil
}

// downloadFile performs an HTTP GET and saves the response body to destPath.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP GET failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("create file %q: %w", destPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return fmt.Errorf("write file %q: %w", destPath, err)
	}

	return nil
}

// buildFileName creates a sanitized, collision-free filename from the node
// name, falling back to the image reference when the name is empty. The
// caller must hold the name-tracking lock.
func buildFileName(ref ImageRef, usedNames map[string]int) string {
	name := toKebabCase(ref.NodeName)
	if name == "" {
		name = toKebabCase(ref.Ref)
	}
	if name == "" {
		name = "asset"
	}

	fileName := name + ".png"
	if count, exists := usedNames[fileName]; exists {
		usedNames[fileName] = count + 1
		fileName = fmt.Sprintf("%s-%d.png", name, count+1)
	}
	usedNames[fileName] = 1
	return fileName
}

// toKebabCase converts a string to kebab-case format (lowercase with hyphens).
func toKebabCase(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
