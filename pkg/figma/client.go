package figma

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const apiBase = "https://api.figma.com/v1"

// Client is a Figma REST API client with retry logic and transport settings
// tuned for very large design files.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Figma API client with the provided personal access token.
// The client is configured with connection pooling, HTTP/2 disabled (large file
// responses are more stable over HTTP/1.1), and a generous timeout.
func NewClient(accessToken string) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   false,
	}

	return &Client{
		accessToken: accessToken,
		baseURL:     apiBase,
		httpClient: &http.Client{
			Timeout:   10 * time.Minute,
			Transport: transport,
		},
	}
}

// SetBaseURL overrides the API base URL. Used by tests to point the client at
// a local server.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = strings.TrimSuffix(base, "/")
}

// get performs an authenticated GET with up to three attempts. Rate-limit (429)
// and server (5xx) responses are retried with linear backoff; other failures
// are returned to the caller immediately.
func (c *Client) get(path string) ([]byte, error) {
	const maxRetries = 3

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("X-Figma-Token", c.accessToken)
		req.Header.Set("Connection", "close")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("attempt %d: execute request: %w", attempt, err)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
			if attempt < maxRetries && (resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500) {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		if readErr != nil {
			lastErr = fmt.Errorf("attempt %d: read response body: %w", attempt, readErr)
			if attempt < maxRetries {
				time.Sleep(time.Duration(attempt) * 2 * time.Second)
				continue
			}
			return nil, lastErr
		}

		return body, nil
	}

	return nil, lastErr
}

// GetFile retrieves complete file data from the Figma API including document
// structure, styles, components, and metadata.
func (c *Client) GetFile(fileKey string) (*FileResponse, error) {
	body, err := c.get("/files/" + fileKey)
	if err != nil {
		return nil, err
	}

	var fileResp FileResponse
	if err := json.Unmarshal(body, &fileResp); err != nil {
		return nil, fmt.Errorf("parse file response: %w", err)
	}

	return &fileResp, nil
}

// GetFileNodes retrieves specific nodes from a Figma file by their IDs.
// This is more efficient than GetFile when only a few frames are needed.
func (c *Client) GetFileNodes(fileKey string, nodeIDs []string) (*NodesResponse, error) {
	if len(nodeIDs) == 0 {
		return nil, fmt.Errorf("no node IDs provided")
	}

	path := fmt.Sprintf("/files/%s/nodes?ids=%s", fileKey, url.QueryEscape(strings.Join(nodeIDs, ",")))
	body, err := c.get(path)
	if err != nil {
		return nil, err
	}

	var nodesResp NodesResponse
	if err := json.Unmarshal(body, &nodesResp); err != nil {
		return nil, fmt.Errorf("parse nodes response: %w", err)
	}

	return &nodesResp, nil
}

// GetImageFills retrieves download URLs for all images embedded as IMAGE paints
// in a Figma file, keyed by their imageRef value.
func (c *Client) GetImageFills(fileKey string) (*ImageFillsResponse, error) {
	body, err := c.get("/files/" + fileKey + "/images")
	if err != nil {
		return nil, err
	}

	var fillsResp ImageFillsResponse
	if err := json.Unmarshal(body, &fillsResp); err != nil {
		return nil, fmt.Errorf("parse image fills response: %w", err)
	}
	if fillsResp.Error {
		return nil, fmt.Errorf("image fills request rejected by API")
	}

	return &fillsResp, nil
}

// fileKeyRe matches figma.com file and design URLs. Anchored so that the entire
// URL must match the expected pattern.
var fileKeyRe = regexp.MustCompile(`^https?://(?:www\.)?figma\.com/(?:file|design)/([A-Za-z0-9]+)(?:/|$)`)

// ExtractFileKey extracts the unique file identifier from a Figma URL.
// Supports both /file/ and /design/ URL patterns
// (e.g. figma.com/design/ABC123/Design-Name).
func ExtractFileKey(figmaURL string) (string, error) {
	matches := fileKeyRe.FindStringSubmatch(figmaURL)
	if len(matches) < 2 {
		return "", fmt.Errorf("invalid Figma URL format: must be a figma.com URL with /file/ or /design/ path")
	}
	return matches[1], nil
}

// ExtractNodeIDs extracts node IDs from a Figma URL's node-id query parameters.
// The URL form uses a dash separator ("11933-305884") which the API expects as
// a colon ("11933:305884"). Returns an empty slice when the URL carries no
// node-id parameter.
func ExtractNodeIDs(figmaURL string) ([]string, error) {
	u, err := url.Parse(figmaURL)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}

	var ids []string
	for _, raw := range u.Query()["node-id"] {
		if raw == "" {
			continue
		}
		ids = append(ids, strings.ReplaceAll(raw, "-", ":"))
	}

	return ids, nil
}
