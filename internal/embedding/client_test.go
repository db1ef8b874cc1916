package embedding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, dim int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req embedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		switch r.URL.Path {
		case "/embed/text":
			if req.Text == "" {
				json.NewEncoder(w).Encode(embedResponse{Error: "empty text"})
				return
			}
		case "/embed/image":
			if req.Image == "" {
				json.NewEncoder(w).Encode(embedResponse{Error: "empty image"})
				return
			}
		default:
			http.NotFound(w, r)
			return
		}

		json.NewEncoder(w).Encode(embedResponse{Embedding: make([]float32, dim)})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClientEmbedText(t *testing.T) {
	server := newTestServer(t, 4)
	client := NewClient(server.URL, 4, 5*time.Second)

	vec, err := client.EmbedText(context.Background(), "black leather wallet")
	if err != nil {
		t.Fatalf("embedding text: %v", err)
	}
	if len(vec) != 4 {
		t.Errorf("expected 4 dimensions, got %d", len(vec))
	}
}

func TestClientEmbedImage(t *testing.T) {
	server := newTestServer(t, 4)
	client := NewClient(server.URL, 4, 5*time.Second)

	vec, err := client.EmbedImage(context.Background(), []byte{0xFF, 0xD8, 0xFF})
	if err != nil {
		t.Fatalf("embedding image: %v", err)
	}
	if len(vec) != 4 {
		t.Errorf("expected 4 dimensions, got %d", len(vec))
	}
}

func TestClientDimensionMismatch(t *testing.T) {
	server := newTestServer(t, 4)
	client := NewClient(server.URL, 512, 5*time.Second)

	_, err := client.EmbedText(context.Background(), "umbrella")
	if err == nil {
		t.Fatal("expected error for wrong dimensionality")
	}
	if !strings.Contains(err.Error(), "dimensions") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClientServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 4, 5*time.Second)
	if _, err := client.EmbedText(context.Background(), "umbrella"); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

// fakeEmbedder is a deterministic in-process Embedder for tests elsewhere in
// this package.
type fakeEmbedder struct {
	textVec  []float32
	imageVec []float32
	err      error
}

func (f *fakeEmbedder) EmbedText(context.Context, string) ([]float32, error) {
	return f.textVec, f.err
}

func (f *fakeEmbedder) EmbedImage(context.Context, []byte) ([]float32, error) {
	return f.imageVec, f.err
}

func (f *fakeEmbedder) Dimension() int { return len(f.textVec) }

func TestGenerateBundle(t *testing.T) {
	embedder := &fakeEmbedder{textVec: []float32{1, 0}, imageVec: []float32{0, 1}}

	bundle, err := GenerateBundle(context.Background(), embedder, "blue bottle", []byte{1})
	if err != nil {
		t.Fatalf("generating bundle: %v", err)
	}
	if len(bundle.DescriptionVector) != 2 || len(bundle.ImageVector) != 2 {
		t.Error("expected both vectors present")
	}
}

func TestGenerateBundleNoImage(t *testing.T) {
	embedder := &fakeEmbedder{textVec: []float32{1, 0}}

	bundle, err := GenerateBundle(context.Background(), embedder, "blue bottle", nil)
	if err != nil {
		t.Fatalf("generating bundle: %v", err)
	}
	if bundle.ImageVector != nil {
		t.Error("expected nil image vector when no image supplied")
	}
}

func TestGenerateBundleEmptyDescription(t *testing.T) {
	embedder := &fakeEmbedder{textVec: []float32{1, 0}}

	if _, err := GenerateBundle(context.Background(), embedder, "   ", nil); err != ErrEmptyDescription {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}
