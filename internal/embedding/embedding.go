// Package embedding generates fixed-dimension vectors for item descriptions
// and photos in a shared multimodal space, so any two vectors are comparable
// by cosine similarity regardless of modality.
package embedding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyDescription is returned when a report has no usable description.
// Report creation must abort before the item is stored.
var ErrEmptyDescription = errors.New("description must not be empty")

// Embedder produces vectors for text and images. Implementations must be
// safe for concurrent use.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedImage(ctx context.Context, image []byte) ([]float32, error)
	Dimension() int
}

// Bundle holds the embeddings generated for one reported item.
type Bundle struct {
	DescriptionVector []float32
	ImageVector       []float32 // nil when no image was supplied
}

// GenerateBundle embeds the description and, if present, the image. The two
// inference calls run concurrently. Any failure aborts the whole bundle so a
// partially embedded item never reaches the store.
func GenerateBundle(ctx context.Context, e Embedder, description string, image []byte) (*Bundle, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrEmptyDescription
	}

	var bundle Bundle
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		v, err := e.EmbedText(ctx, description)
		if err != nil {
			return fmt.Errorf("embedding description: %w", err)
		}
		bundle.DescriptionVector = v
		return nil
	})

	if len(image) > 0 {
		g.Go(func() error {
			v, err := e.EmbedImage(ctx, image)
			if err != nil {
				return fmt.Errorf("embedding image: %w", err)
			}
			bundle.ImageVector = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}
