package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Stats aggregates item and match counts for the admin dashboard.
type Stats struct {
	LostActive      int `json:"lost_active"`
	FoundActive     int `json:"found_active"`
	Archived        int `json:"archived"`
	MatchesPending  int `json:"matches_pending"`
	MatchesApproved int `json:"matches_approved"`
	MatchesRejected int `json:"matches_rejected"`
}

// GetStats computes current system counts.
func GetStats(ctx context.Context, db *sql.DB) (*Stats, error) {
	s := &Stats{}

	err := db.QueryRowContext(ctx,
		`SELECT
		    COUNT(*) FILTER (WHERE status = 'LOST' AND is_active = 1),
		    COUNT(*) FILTER (WHERE status = 'FOUND' AND is_active = 1),
		    COUNT(*) FILTER (WHERE is_active = 0)
		 FROM items`,
	).Scan(&s.LostActive, &s.FoundActive, &s.Archived)
	if err != nil {
		return nil, fmt.Errorf("counting items: %w", err)
	}

	err = db.QueryRowContext(ctx,
		`SELECT
		    COUNT(*) FILTER (WHERE match_status = 'PENDING'),
		    COUNT(*) FILTER (WHERE match_status = 'APPROVED'),
		    COUNT(*) FILTER (WHERE match_status = 'REJECTED')
		 FROM matches`,
	).Scan(&s.MatchesPending, &s.MatchesApproved, &s.MatchesRejected)
	if err != nil {
		return nil, fmt.Errorf("counting matches: %w", err)
	}

	return s, nil
}
