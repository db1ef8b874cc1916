// Package search ranks active items against a free-text query by combining
// semantic similarity (query embedding vs stored description vectors) with a
// plain substring signal for exact words the embedding may underweight.
package search

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/store"
)

// MinScore is the relevance floor below which items are not returned.
const MinScore = 0.3

// substringScore is the floor assigned when the query appears verbatim in
// the description or location.
const substringScore = 0.9

// Result pairs an item with its relevance score.
type Result struct {
	Item  model.Item `json:"item"`
	Score float64    `json:"score"`
}

// Search returns active items relevant to the query, best first, optionally
// filtered by status, capped at limit. Queries shorter than two characters
// return nothing.
func Search(ctx context.Context, db *sql.DB, embedder embedding.Embedder, query, status string, limit int) ([]Result, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, nil
	}

	queryVector, err := embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding search query: %w", err)
	}

	items, err := store.ListItems(ctx, db, status, false)
	if err != nil {
		return nil, fmt.Errorf("searching items: %w", err)
	}

	queryLower := strings.ToLower(query)
	var results []Result
	for _, item := range items {
		score, ok := embedding.Cosine(queryVector, item.DescriptionVector)
		if !ok || score < 0 {
			score = 0
		}

		if strings.Contains(strings.ToLower(item.Description), queryLower) ||
			strings.Contains(strings.ToLower(item.Location), queryLower) {
			if score < substringScore {
				score = substringScore
			}
		}

		if score >= MinScore {
			results = append(results, Result{Item: item, Score: score})
		}
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
