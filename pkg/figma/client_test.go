package figma

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "valid /file/ URL",
			url:  "https://www.figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "valid /design/ URL",
			url:  "https://www.figma.com/design/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with node-id parameter",
			url:  "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Landing?node-id=11933-305884",
			want: "4gkABR5gEZnIvlCaXmA4KI",
		},
		{
			name: "URL without www subdomain",
			url:  "https://figma.com/file/ABC123XYZ/Design-Name",
			want: "ABC123XYZ",
		},
		{
			name: "URL with trailing slash",
			url:  "https://www.figma.com/file/ABC123XYZ/",
			want: "ABC123XYZ",
		},
		{
			name:    "missing file key",
			url:     "https://www.figma.com/file/",
			wantErr: true,
		},
		{
			name:    "wrong domain",
			url:     "https://www.example.com/file/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "wrong path",
			url:     "https://www.figma.com/dashboard/ABC123XYZ",
			wantErr: true,
		},
		{
			name:    "empty URL",
			url:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractNodeIDs(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want []string
	}{
		{
			name: "node-id with colon",
			url:  "https://www.figma.com/file/ABC123/Design?node-id=123:456",
			want: []string{"123:456"},
		},
		{
			name: "node-id with dash form",
			url:  "https://www.figma.com/design/ABC123/Design?node-id=11933-305884",
			want: []string{"11933:305884"},
		},
		{
			name: "multiple node-id parameters",
			url:  "https://www.figma.com/file/ABC123/Design?node-id=1-2&node-id=3-4",
			want: []string{"1:2", "3:4"},
		},
		{
			name: "no node-id parameter",
			url:  "https://www.figma.com/file/ABC123/Design",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractNodeIDs(tt.url)
			if err != nil {
				t.Fatalf("ExtractNodeIDs() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractNodeIDs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY123" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("X-Figma-Token"); got != "token-1" {
			t.Errorf("unexpected token header %q", got)
		}
		w.Write([]byte(`{
			"name": "Demo",
			"document": {
				"id": "0:0",
				"name": "Document",
				"type": "DOCUMENT",
				"children": [
					{"id": "1:1", "name": "Page 1", "type": "CANVAS"}
				]
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("token-1")
	client.SetBaseURL(srv.URL)

	resp, err := client.GetFile("KEY123")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if resp.Name != "Demo" {
		t.Errorf("Name = %q, want %q", resp.Name, "Demo")
	}
	if len(resp.Document.Children) != 1 || resp.Document.Children[0].Type != "CANVAS" {
		t.Errorf("unexpected document tree: %+v", resp.Document)
	}
}

func TestGetFileNodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY123/nodes" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if ids := r.URL.Query().Get("ids"); ids != "1:2,3:4" {
			t.Errorf("unexpected ids %q", ids)
		}
		w.Write([]byte(`{
			"name": "Demo",
			"nodes": {
				"1:2": {"document": {"id": "1:2", "name": "Hero", "type": "FRAME"}},
				"3:4": {"document": {"id": "3:4", "name": "Footer", "type": "FRAME"}}
			}
		}`))
	}))
	defer srv.Close()

	client := NewClient("token-1")
	client.SetBaseURL(srv.URL)

	resp, err := client.GetFileNodes("KEY123", []string{"1:2", "3:4"})
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	if len(resp.Nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(resp.Nodes))
	}
	if resp.Nodes["1:2"].Document.Name != "Hero" {
		t.Errorf("unexpected node document: %+v", resp.Nodes["1:2"].Document)
	}
}

func TestGetFileNodesEmpty(t *testing.T) {
	client := NewClient("token-1")
	if _, err := client.GetFileNodes("KEY123", nil); err == nil {
		t.Error("expected error for empty node ID list")
	}
}

func TestGetImageFills(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/KEY123/images" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"error": false, "meta": {"images": {"ref1": "https://cdn.example/ref1.png"}}}`))
	}))
	defer srv.Close()

	client := NewClient("token-1")
	client.SetBaseURL(srv.URL)

	resp, err := client.GetImageFills("KEY123")
	if err != nil {
		t.Fatalf("GetImageFills() error = %v", err)
	}
	if got := resp.Meta.Images["ref1"]; got != "https://cdn.example/ref1.png" {
		t.Errorf("unexpected image URL %q", got)
	}
}

func TestVisibleDefaults(t *testing.T) {
	var n Node
	if !n.IsVisible() {
		t.Error("node without visible flag should be visible")
	}

	hidden := false
	n.Visible = &hidden
	if n.IsVisible() {
		t.Error("node with visible=false should be hidden")
	}

	var p Paint
	if !p.IsVisible() {
		t.Error("paint without visible flag should be visible")
	}

	var e Effect
	if !e.IsVisible() {
		t.Error("effect without visible flag should be visible")
	}
}
