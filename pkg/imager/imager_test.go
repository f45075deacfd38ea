package imager

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/figma"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/simplify"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/style"
	"github.com/darkxdd/figma-metadata-viewer-sub000/pkg/vars"
)

func TestCollectImageRefs(t *testing.T) {
	store := vars.NewStore()

	imageFills := store.FindOrCreate([]style.Fill{
		{Type: "IMAGE", ImageRef: "ref-a"},
	}, "fill")
	solidFills := store.FindOrCreate([]style.Fill{
		{Type: "SOLID", Color: "#FF0000"},
	}, "fill")
	sharedFills := store.FindOrCreate([]style.Fill{
		{Type: "IMAGE", ImageRef: "ref-a"},
		{Type: "IMAGE", ImageRef: "ref-b"},
	}, "fill")

	nodes := []simplify.Node{
		{
			ID: "1:1", Name: "Hero", Fills: imageFills,
			Children: []simplify.Node{
				{ID: "1:2", Name: "Background", Fills: solidFills},
				{ID: "1:3", Name: "Banner", Fills: sharedFills},
			},
		},
	}

	refs := CollectImageRefs(nodes, store)
	if len(refs) != 2 {
		t.Fatalf("expected 2 distinct refs, got %d: %+v", len(refs), refs)
	}
	if refs[0].Ref != "ref-a" || refs[0].NodeID != "1:1" {
		t.Errorf("first ref should come from the first node using it, got %+v", refs[0])
	}
	if refs[1].Ref != "ref-b" || refs[1].NodeID != "1:3" {
		t.Errorf("unexpected second ref %+v", refs[1])
	}
}

func TestCollectImageRefsEmpty(t *testing.T) {
	store := vars.NewStore()
	nodes := []simplify.Node{{ID: "1:1", Name: "Plain"}}

	if refs := CollectImageRefs(nodes, store); len(refs) != 0 {
		t.Errorf("expected no refs, got %+v", refs)
	}
}

func TestDownloadImageFills(t *testing.T) {
	// Image host serving the actual bytes.
	imageHost := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pngbytes-"+filepath.Base(r.URL.Path))
	}))
	defer imageHost.Close()

	// Figma API answering the image fills lookup.
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/files/test-key/images" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := figma.ImageFillsResponse{}
		resp.Meta.Images = map[string]string{
			"ref-a": imageHost.URL + "/a",
			"ref-b": imageHost.URL + "/b",
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer api.Close()

	client := figma.NewClient("test-token")
	client.SetBaseURL(api.URL)

	dir := t.TempDir()
	refs := []ImageRef{
		{Ref: "ref-a", NodeID: "1:1", NodeName: "Hero Image"},
		{Ref: "ref-b", NodeID: "1:2", NodeName: "Hero Image"},
		{Ref: "ref-missing", NodeID: "1:3", NodeName: "Lost"},
	}

	result, err := DownloadImageFills(client, "test-key", refs, dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(result.Assets))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 per-image error for the missing ref, got %v", result.Errors)
	}

	// Name collision resolved with a numeric suffix.
	names := map[string]bool{}
	for _, a := range result.Assets {
		names[a.FileName] = true
		data, err := os.ReadFile(filepath.Join(dir, a.FileName))
		if err != nil {
			t.Fatalf("asset %s not written: %v", a.FileName, err)
		}
		if len(data) == 0 {
			t.Errorf("asset %s is empty", a.FileName)
		}
	}
	if len(names) != 2 {
		t.Errorf("file names must be distinct, got %v", names)
	}
	if !names["hero-image.png"] {
		t.Errorf("expected base name hero-image.png, got %v", names)
	}
}

func TestDownloadImageFillsNoRefs(t *testing.T) {
	result, err := DownloadImageFills(nil, "key", nil, t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Assets) != 0 || len(result.Errors) != 0 {
		t.Errorf("expected empty result, got %+v", result)
	}
}

func TestBuildFileName(t *testing.T) {
	used := map[string]int{}

	tests := []struct {
		ref  ImageRef
		want string
	}{
		{ImageRef{Ref: "r1", NodeName: "Hero Image"}, "hero-image.png"},
		{ImageRef{Ref: "r2", NodeName: "Hero Image"}, "hero-image-2.png"},
		{ImageRef{Ref: "abc123", NodeName: ""}, "abc123.png"},
		{ImageRef{Ref: "###", NodeName: "!!!"}, "asset.png"},
	}

	for _, tt := range tests {
		if got := buildFileName(tt.ref, used); got != tt.want {
			t.Errorf("buildFileName(%+v) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hero Image", "hero-image"},
		{"nav_bar", "nav-bar"},
		{"Button (Primary)", "button-primary"},
		{"Ünïcode", "ncode"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := toKebabCase(tt.in); got != tt.want {
			t.Errorf("toKebabCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
