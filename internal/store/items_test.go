package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/siddarthan007/laf/internal/db"
	"github.com/siddarthan007/laf/internal/model"
)

func newReporter(t *testing.T, database *sql.DB) *model.User {
	t.Helper()
	user, err := CreateUser(context.Background(), database, newUser("reporter@test", "R-100"))
	if err != nil {
		t.Fatalf("creating reporter: %v", err)
	}
	return user
}

func newItem(reporterID, status string) *model.Item {
	return &model.Item{
		ReportedBy:        reporterID,
		Status:            status,
		Description:       "black wallet with a zipper",
		Location:          "library",
		DescriptionVector: []float32{0.1, 0.2, 0.3},
	}
}

func TestCreateAndGetItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	item, err := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusLost), nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if !item.IsActive {
		t.Error("new item must be active")
	}
	if item.HasMatchFound {
		t.Error("new item must not be flagged as matched")
	}

	got, err := GetItem(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItem: %v", err)
	}
	if len(got.DescriptionVector) != 3 {
		t.Errorf("expected vector to round-trip, got %v", got.DescriptionVector)
	}
}

func TestCreateItemRequiresDescriptionVector(t *testing.T) {
	database := db.NewTestDB(t)
	reporter := newReporter(t, database)

	item := newItem(reporter.ID, model.ItemStatusLost)
	item.DescriptionVector = nil
	if _, err := CreateItem(context.Background(), database, item, nil); err == nil {
		t.Error("expected error for missing description vector")
	}
}

func TestListActiveByStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	lost, _ := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusLost), nil)
	found1, _ := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusFound), nil)
	found2, _ := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusFound), nil)

	// The pool for a lost item is every active found item except itself.
	pool, err := ListActiveByStatus(ctx, database, model.ItemStatusFound, lost.ID)
	if err != nil {
		t.Fatalf("ListActiveByStatus: %v", err)
	}
	if len(pool) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(pool))
	}

	// Archiving removes an item from the pool.
	if err := ArchiveItem(ctx, database, found1.ID); err != nil {
		t.Fatalf("ArchiveItem: %v", err)
	}
	pool, _ = ListActiveByStatus(ctx, database, model.ItemStatusFound, lost.ID)
	if len(pool) != 1 || pool[0].ID != found2.ID {
		t.Errorf("expected only the active candidate, got %d", len(pool))
	}

	// An item never appears in its own pool.
	pool, _ = ListActiveByStatus(ctx, database, model.ItemStatusFound, found2.ID)
	if len(pool) != 0 {
		t.Errorf("expected self-exclusion, got %d candidates", len(pool))
	}
}

func TestListItemsExcludesArchived(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	item, _ := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusLost), nil)
	ArchiveItem(ctx, database, item.ID)

	visible, _ := ListItems(ctx, database, "", false)
	if len(visible) != 0 {
		t.Errorf("expected archived item hidden, got %d", len(visible))
	}

	all, _ := ListItems(ctx, database, "", true)
	if len(all) != 1 {
		t.Errorf("expected archived item with includeArchived, got %d", len(all))
	}
}

func TestGetItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	reporter := newReporter(t, database)

	withImage := newItem(reporter.ID, model.ItemStatusFound)
	withImage.ImageMime = "image/jpeg"
	withImage.ImageVector = []float32{0.5, 0.5, 0.5}
	item, _ := CreateItem(ctx, database, withImage, []byte{0xFF, 0xD8, 0xFF})

	data, mime, err := GetItemImage(ctx, database, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if len(data) != 3 || mime != "image/jpeg" {
		t.Errorf("unexpected image: %d bytes, mime %q", len(data), mime)
	}

	bare, _ := CreateItem(ctx, database, newItem(reporter.ID, model.ItemStatusLost), nil)
	data, _, err = GetItemImage(ctx, database, bare.ID)
	if err != nil {
		t.Fatalf("GetItemImage (no image): %v", err)
	}
	if data != nil {
		t.Error("expected nil data for item without image")
	}
}
