package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/siddarthan007/laf/internal/db"
	"github.com/siddarthan007/laf/internal/model"
)

func seedPair(t *testing.T, database *sql.DB) (lost, found *model.Item, loser, finder *model.User) {
	t.Helper()
	ctx := context.Background()

	loser, err := CreateUser(ctx, database, newUser("loser@test", "R-201"))
	if err != nil {
		t.Fatalf("creating loser: %v", err)
	}
	finder, err = CreateUser(ctx, database, newUser("finder@test", "R-202"))
	if err != nil {
		t.Fatalf("creating finder: %v", err)
	}

	lost, err = CreateItem(ctx, database, newItem(loser.ID, model.ItemStatusLost), nil)
	if err != nil {
		t.Fatalf("creating lost item: %v", err)
	}
	found, err = CreateItem(ctx, database, newItem(finder.ID, model.ItemStatusFound), nil)
	if err != nil {
		t.Fatalf("creating found item: %v", err)
	}
	return lost, found, loser, finder
}

func TestCreateMatch(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	lost, found, loser, finder := seedPair(t, database)

	match, fresh, err := CreateMatch(ctx, database, lost.ID, found.ID, loser.ID, finder.ID, 0.87)
	if err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}
	if !fresh {
		t.Error("expected fresh=true for first insert")
	}
	if match.Status != model.MatchStatusPending {
		t.Errorf("expected PENDING, got %s", match.Status)
	}
	if match.ConfidenceScore != 0.87 {
		t.Errorf("expected score 0.87, got %v", match.ConfidenceScore)
	}
}

func TestCreateMatchDuplicatePairIsNoOp(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	lost, found, loser, finder := seedPair(t, database)

	first, fresh, err := CreateMatch(ctx, database, lost.ID, found.ID, loser.ID, finder.ID, 0.87)
	if err != nil || !fresh {
		t.Fatalf("first insert: fresh=%v, err=%v", fresh, err)
	}

	second, fresh, err := CreateMatch(ctx, database, lost.ID, found.ID, loser.ID, finder.ID, 0.99)
	if err != nil {
		t.Fatalf("duplicate insert: %v", err)
	}
	if fresh {
		t.Error("expected fresh=false for duplicate pair")
	}
	if second.ID != first.ID {
		t.Error("duplicate insert must return the surviving row")
	}
	if second.ConfidenceScore != 0.87 {
		t.Errorf("duplicate insert must not overwrite the score, got %v", second.ConfidenceScore)
	}
}

func TestGetMatchMissing(t *testing.T) {
	database := db.NewTestDB(t)

	match, err := GetMatch(context.Background(), database, "no-such-id")
	if err != nil || match != nil {
		t.Errorf("expected nil, nil for missing match, got %+v, %v", match, err)
	}
}

func TestListMatchesForUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	lost, found, loser, finder := seedPair(t, database)

	CreateMatch(ctx, database, lost.ID, found.ID, loser.ID, finder.ID, 0.9)

	for _, userID := range []string{loser.ID, finder.ID} {
		matches, err := ListMatchesForUser(ctx, database, userID, "")
		if err != nil {
			t.Fatalf("ListMatchesForUser: %v", err)
		}
		if len(matches) != 1 {
			t.Errorf("expected 1 match for user %s, got %d", userID, len(matches))
		}
	}

	pending, _ := ListMatchesForUser(ctx, database, loser.ID, model.MatchStatusPending)
	if len(pending) != 1 {
		t.Errorf("expected 1 pending match, got %d", len(pending))
	}
	approved, _ := ListMatchesForUser(ctx, database, loser.ID, model.MatchStatusApproved)
	if len(approved) != 0 {
		t.Errorf("expected 0 approved matches, got %d", len(approved))
	}

	stranger, _ := CreateUser(ctx, database, newUser("stranger@test", "R-203"))
	none, _ := ListMatchesForUser(ctx, database, stranger.ID, "")
	if len(none) != 0 {
		t.Errorf("expected no matches for uninvolved user, got %d", len(none))
	}
}
