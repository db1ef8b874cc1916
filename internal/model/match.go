package model

import "time"

// Match pairs one lost item with one found item. A given (lost, found) pair
// exists at most once; only the lost item's reporter may resolve it.
type Match struct {
	ID              string    `json:"id"`
	LostItemID      string    `json:"lost_item_id"`
	FoundItemID     string    `json:"found_item_id"`
	LoserID         string    `json:"loser_id"`
	FinderID        string    `json:"finder_id"`
	ConfidenceScore float64   `json:"confidence_score"`
	Status          string    `json:"match_status"`
	CreatedAt       time.Time `json:"created_at"`
}

// Match statuses. APPROVED and REJECTED are terminal.
const (
	MatchStatusPending  = "PENDING"
	MatchStatusApproved = "APPROVED"
	MatchStatusRejected = "REJECTED"
)

// Resolved reports whether the match has reached a terminal state.
func (m *Match) Resolved() bool {
	return m.Status != MatchStatusPending
}
