// Package notify delivers match events to the people involved. Delivery is
// best-effort: a failed notification is logged by the caller and never fails
// the matching or approval that triggered it.
package notify

import (
	"context"
	"log/slog"

	"github.com/siddarthan007/laf/internal/model"
)

// Notifier is the outbound notification interface.
type Notifier interface {
	// MatchCreated tells both reporters that a potential match is pending review.
	MatchCreated(ctx context.Context, match *model.Match, lostItem, foundItem *model.Item, loser, finder *model.User) error
	// MatchApproved shares the resolved contact details after the owner approves.
	MatchApproved(ctx context.Context, match *model.Match, loserContact, finderContact model.Contact) error
}

// LogNotifier writes notifications to the log. Used when SMTP is not
// configured, mirroring a development deployment.
type LogNotifier struct{}

func (LogNotifier) MatchCreated(_ context.Context, match *model.Match, lostItem, foundItem *model.Item, loser, finder *model.User) error {
	slog.Info("match created",
		"match", match.ID,
		"confidence", match.ConfidenceScore,
		"lost_item", lostItem.ID,
		"found_item", foundItem.ID,
		"loser", loser.Email,
		"finder", finder.Email,
	)
	return nil
}

func (LogNotifier) MatchApproved(_ context.Context, match *model.Match, loserContact, finderContact model.Contact) error {
	slog.Info("match approved",
		"match", match.ID,
		"loser_contact", loserContact.Email,
		"finder_contact", finderContact.Email,
	)
	return nil
}
