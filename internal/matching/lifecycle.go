package matching

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/siddarthan007/laf/internal/model"
	"github.com/siddarthan007/laf/internal/notify"
)

// Lifecycle governs match state transitions. PENDING may move to APPROVED or
// REJECTED; both are terminal. Only the lost item's reporter may transition.
type Lifecycle struct {
	db       *sql.DB
	resolver *ContactResolver
	notifier notify.Notifier
}

// NewLifecycle creates a lifecycle manager.
func NewLifecycle(db *sql.DB, resolver *ContactResolver, notifier notify.Notifier) *Lifecycle {
	return &Lifecycle{db: db, resolver: resolver, notifier: notifier}
}

// ApprovalResult is the payload handed to the HTTP layer after an approval.
// ContactForLoser is the identity disclosed to the lost item's reporter
// (the found side), ContactForFinder the reverse.
type ApprovalResult struct {
	Match            *model.Match  `json:"match"`
	ContactForLoser  model.Contact `json:"contact_for_loser"`
	ContactForFinder model.Contact `json:"contact_for_finder"`
}

// Approve transitions a pending match to APPROVED, archives both items and
// resolves the disclosed contacts, all in a single transaction. Approval
// fails with a conflict if the match is already resolved or either item has
// been archived by a competing approval or manual resolve.
func (l *Lifecycle) Approve(ctx context.Context, matchID, callerID string) (*ApprovalResult, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("approving match: %w", err)
	}
	defer tx.Rollback()

	match, err := l.loadPending(ctx, tx, matchID, callerID)
	if err != nil {
		return nil, err
	}

	lostItem, lostReporter, err := loadItemParty(ctx, tx, match.LostItemID)
	if err != nil {
		return nil, fmt.Errorf("approving match: %w", err)
	}
	foundItem, foundReporter, err := loadItemParty(ctx, tx, match.FoundItemID)
	if err != nil {
		return nil, fmt.Errorf("approving match: %w", err)
	}
	if !lostItem.IsActive || !foundItem.IsActive {
		return nil, ErrItemArchived
	}

	// The guarded UPDATE is the linearization point: a competing approval
	// that committed first leaves zero affected rows here.
	result, err := tx.ExecContext(ctx,
		`UPDATE matches SET match_status = ? WHERE id = ? AND match_status = ?`,
		model.MatchStatusApproved, matchID, model.MatchStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("approving match: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrAlreadyResolved
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE items SET is_active = 0, has_match_found = 1 WHERE id IN (?, ?)`,
		match.LostItemID, match.FoundItemID,
	)
	if err != nil {
		return nil, fmt.Errorf("archiving matched items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("approving match: %w", err)
	}

	match.Status = model.MatchStatusApproved
	lostContact := l.resolver.Resolve(lostItem, lostReporter)
	foundContact := l.resolver.Resolve(foundItem, foundReporter)

	if err := l.notifier.MatchApproved(ctx, match, lostContact, foundContact); err != nil {
		slog.Warn("approval notification failed", "match", match.ID, "error", err)
	}

	slog.Info("match approved", "match", match.ID, "by", callerID)
	return &ApprovalResult{
		Match:            match,
		ContactForLoser:  foundContact,
		ContactForFinder: lostContact,
	}, nil
}

// Reject transitions a pending match to REJECTED. Both items stay active and
// keep matching against other candidates.
func (l *Lifecycle) Reject(ctx context.Context, matchID, callerID string) (*model.Match, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("rejecting match: %w", err)
	}
	defer tx.Rollback()

	match, err := l.loadPending(ctx, tx, matchID, callerID)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE matches SET match_status = ? WHERE id = ? AND match_status = ?`,
		model.MatchStatusRejected, matchID, model.MatchStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("rejecting match: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return nil, ErrAlreadyResolved
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("rejecting match: %w", err)
	}

	match.Status = model.MatchStatusRejected
	slog.Info("match rejected", "match", match.ID, "by", callerID)
	return match, nil
}

// loadPending fetches a match inside the transaction and checks
// authorization and state.
func (l *Lifecycle) loadPending(ctx context.Context, tx *sql.Tx, matchID, callerID string) (*model.Match, error) {
	m := &model.Match{}
	err := tx.QueryRowContext(ctx,
		`SELECT id, lost_item_id, found_item_id, loser_id, finder_id, confidence_score, match_status, created_at
		 FROM matches WHERE id = ?`, matchID,
	).Scan(&m.ID, &m.LostItemID, &m.FoundItemID, &m.LoserID, &m.FinderID,
		&m.ConfidenceScore, &m.Status, &m.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading match: %w", err)
	}

	if m.LoserID != callerID {
		return nil, ErrNotAllowed
	}
	if m.Resolved() {
		return nil, ErrAlreadyResolved
	}
	return m, nil
}

// loadItemParty fetches the fields of an item and its reporter needed for
// archiving checks and contact resolution.
func loadItemParty(ctx context.Context, tx *sql.Tx, itemID string) (*model.Item, *model.User, error) {
	item := &model.Item{}
	user := &model.User{}
	var hostel sql.NullString
	err := tx.QueryRowContext(ctx,
		`SELECT i.id, i.status, i.is_active, i.is_admin_report, i.reported_by,
		        u.id, u.name, u.email, u.roll_number, u.hostel, u.contact_number, u.role
		 FROM items i JOIN users u ON u.id = i.reported_by
		 WHERE i.id = ?`, itemID,
	).Scan(&item.ID, &item.Status, &item.IsActive, &item.IsAdminReport, &item.ReportedBy,
		&user.ID, &user.Name, &user.Email, &user.RollNumber, &hostel, &user.ContactNumber, &user.Role)
	if err != nil {
		return nil, nil, fmt.Errorf("loading item %s: %w", itemID, err)
	}
	user.Hostel = hostel.String
	return item, user, nil
}
