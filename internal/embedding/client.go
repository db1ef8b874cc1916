package embedding

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to an external inference server exposing a CLIP-style model
// behind POST /embed/text and POST /embed/image endpoints.
type Client struct {
	baseURL string
	dim     int
	client  *http.Client
}

// NewClient creates an inference client. dim is the expected vector
// dimensionality; responses of any other size are rejected.
func NewClient(baseURL string, dim int, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		dim:     dim,
		client:  &http.Client{Timeout: timeout},
	}
}

// Dimension returns the configured vector dimensionality.
func (c *Client) Dimension() int {
	return c.dim
}

type embedRequest struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"` // base64-encoded bytes
}

type embedResponse struct {
	Embedding []float32 `json:"embedding"`
	Error     string    `json:"error,omitempty"`
}

// EmbedText requests a text embedding.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return c.embed(ctx, "/embed/text", embedRequest{Text: text})
}

// EmbedImage requests an image embedding for raw image bytes.
func (c *Client) EmbedImage(ctx context.Context, image []byte) ([]float32, error) {
	return c.embed(ctx, "/embed/image", embedRequest{Image: base64.StdEncoding.EncodeToString(image)})
}

func (c *Client) embed(ctx context.Context, path string, payload embedRequest) ([]float32, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building embed request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling embedding server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("embedding server returned %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding embed response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("embedding server error: %s", out.Error)
	}
	if len(out.Embedding) != c.dim {
		return nil, fmt.Errorf("embedding server returned %d dimensions, expected %d", len(out.Embedding), c.dim)
	}

	return out.Embedding, nil
}
