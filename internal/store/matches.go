package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/siddarthan007/laf/internal/model"
)

const matchColumns = `id, lost_item_id, found_item_id, loser_id, finder_id,
	confidence_score, match_status, created_at`

// CreateMatch inserts a pending match for a (lost, found) pair. The unique
// index on the pair turns a duplicate insert into a no-op, so two racing
// orchestration runs leave exactly one surviving row. The second return is
// false when the pair already existed.
func CreateMatch(ctx context.Context, db *sql.DB, lostItemID, foundItemID, loserID, finderID string, score float64) (*model.Match, bool, error) {
	id := uuid.NewString()
	result, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO matches (id, lost_item_id, found_item_id, loser_id, finder_id, confidence_score)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, lostItemID, foundItemID, loserID, finderID, score,
	)
	if err != nil {
		return nil, false, fmt.Errorf("creating match: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, false, fmt.Errorf("creating match: %w", err)
	}

	// Read back by pair: on a lost race this returns the surviving row.
	match, err := GetMatchByPair(ctx, db, lostItemID, foundItemID)
	if err != nil {
		return nil, false, err
	}
	if match == nil {
		return nil, false, fmt.Errorf("creating match: row vanished after insert")
	}
	return match, affected > 0, nil
}

// GetMatch returns a match by ID.
func GetMatch(ctx context.Context, db *sql.DB, id string) (*model.Match, error) {
	return getMatchWhere(ctx, db, `id = ?`, id)
}

// GetMatchByPair returns the match for a (lost, found) item pair.
func GetMatchByPair(ctx context.Context, db *sql.DB, lostItemID, foundItemID string) (*model.Match, error) {
	return getMatchWhere(ctx, db, `lost_item_id = ? AND found_item_id = ?`, lostItemID, foundItemID)
}

func getMatchWhere(ctx context.Context, db *sql.DB, where string, args ...any) (*model.Match, error) {
	m := &model.Match{}
	err := db.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE `+where, args...,
	).Scan(&m.ID, &m.LostItemID, &m.FoundItemID, &m.LoserID, &m.FinderID,
		&m.ConfidenceScore, &m.Status, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting match: %w", err)
	}
	return m, nil
}

// ListMatchesForUser returns matches where the user is either party,
// optionally filtered by status, newest first.
func ListMatchesForUser(ctx context.Context, db *sql.DB, userID, status string) ([]model.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE (loser_id = ? OR finder_id = ?)`
	args := []any{userID, userID}

	if status != "" {
		query += ` AND match_status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var matches []model.Match
	for rows.Next() {
		var m model.Match
		if err := rows.Scan(&m.ID, &m.LostItemID, &m.FoundItemID, &m.LoserID, &m.FinderID,
			&m.ConfidenceScore, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
