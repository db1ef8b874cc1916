package matching

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"github.com/siddarthan007/laf/internal/config"
	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/notify"
	"github.com/siddarthan007/laf/internal/store"
)

// Engine runs the matching workflow for newly reported items: it selects the
// opposite-status candidate pool, scores every pair, and records a pending
// match for each candidate that clears the confidence threshold.
type Engine struct {
	db       *sql.DB
	cfg      config.Config
	notifier notify.Notifier
}

// NewEngine creates a matching engine.
func NewEngine(db *sql.DB, cfg config.Config, notifier notify.Notifier) *Engine {
	return &Engine{db: db, cfg: cfg, notifier: notifier}
}

type scoredCandidate struct {
	item  model.Item
	score float64
}

// Run executes one matching pass for a newly created item. Running twice for
// the same item is safe: match creation is idempotent per pair. A returned
// error means the whole run failed (item load or pool scan) and may be
// retried; per-candidate failures are logged and skipped so one bad candidate
// never aborts the rest of the run.
func (e *Engine) Run(ctx context.Context, itemID string) error {
	item, err := store.GetItem(ctx, e.db, itemID)
	if err != nil {
		return fmt.Errorf("matching run for item %s: %w", itemID, err)
	}
	if item == nil {
		slog.Warn("matching skipped, item not found", "item", itemID)
		return nil
	}
	if !item.IsActive {
		slog.Info("matching skipped, item archived", "item", itemID)
		return nil
	}

	pool, err := store.ListActiveByStatus(ctx, e.db, model.OppositeStatus(item.Status), item.ID)
	if err != nil {
		return fmt.Errorf("matching run for item %s: %w", itemID, err)
	}

	qualified := e.scorePool(item, pool)
	created := 0
	for _, q := range qualified {
		if e.recordMatch(ctx, item, &q.item, q.score) {
			created++
		}
	}

	slog.Info("matching run complete",
		"item", item.ID, "status", item.Status,
		"candidates", len(pool), "qualified", len(qualified), "created", created)
	return nil
}

// scorePool scores every candidate and returns those at or above the
// threshold, best first, capped at MaxMatches. Candidates with no computable
// comparison are skipped, never scored as zero.
func (e *Engine) scorePool(item *model.Item, pool []model.Item) []scoredCandidate {
	var qualified []scoredCandidate
	for i := range pool {
		candidate := &pool[i]

		score, ok := Score(item, candidate)
		if !ok {
			slog.Warn("no computable similarity for pair",
				"item", item.ID, "candidate", candidate.ID)
			continue
		}

		// Location proximity is a last-resort tie-breaker: it only lifts
		// candidates that are already close to the threshold.
		if score >= 0.9*e.cfg.MatchThreshold {
			score = applyLocationBoost(score, item.Location, candidate.Location, e.cfg.LocationBoost)
		}

		if score >= e.cfg.MatchThreshold {
			qualified = append(qualified, scoredCandidate{item: *candidate, score: score})
		}
	}

	sort.Slice(qualified, func(i, j int) bool { return qualified[i].score > qualified[j].score })
	if len(qualified) > e.cfg.MaxMatches {
		qualified = qualified[:e.cfg.MaxMatches]
	}
	return qualified
}

// recordMatch persists one qualifying pair and notifies both reporters.
// Returns true only when this run created the match; a pair that already
// exists is a successful no-op.
func (e *Engine) recordMatch(ctx context.Context, item, candidate *model.Item, score float64) bool {
	lost, found := item, candidate
	if item.Status == model.ItemStatusFound {
		lost, found = candidate, item
	}

	match, fresh, err := store.CreateMatch(ctx, e.db, lost.ID, found.ID, lost.ReportedBy, found.ReportedBy, score)
	if err != nil {
		slog.Error("creating match failed",
			"lost_item", lost.ID, "found_item", found.ID, "error", err)
		return false
	}
	if !fresh {
		return false
	}

	loser, lerr := store.GetUser(ctx, e.db, lost.ReportedBy)
	finder, ferr := store.GetUser(ctx, e.db, found.ReportedBy)
	if lerr != nil || ferr != nil || loser == nil || finder == nil {
		slog.Warn("loading reporters for notification failed", "match", match.ID)
		return true
	}
	if err := e.notifier.MatchCreated(ctx, match, lost, found, loser, finder); err != nil {
		slog.Warn("match notification failed", "match", match.ID, "error", err)
	}

	return true
}
