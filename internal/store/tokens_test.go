package store

import (
	"context"
	"testing"
	"time"

	"github.com/siddarthan007/laf/internal/db"
)

func TestRevokeAndCheckToken(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	revoked, err := IsTokenRevoked(ctx, database, "jti-logout")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if revoked {
		t.Error("fresh JTI must not be revoked")
	}

	if err := RevokeToken(ctx, database, "jti-logout", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err = IsTokenRevoked(ctx, database, "jti-logout")
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected JTI to be revoked after logout")
	}

	// Revocation is per-JTI, not per-user.
	revoked, _ = IsTokenRevoked(ctx, database, "jti-other-session")
	if revoked {
		t.Error("unrelated JTI must stay valid")
	}
}

func TestRevokeTokenIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := RevokeToken(ctx, database, "jti-twice", time.Now().Add(time.Hour)); err != nil {
			t.Fatalf("RevokeToken call %d: %v", i+1, err)
		}
	}
}

func TestRevokeTokenPurgesExpired(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// An already-expired revocation is cleaned up by the next revoke.
	if err := RevokeToken(ctx, database, "jti-expired", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if err := RevokeToken(ctx, database, "jti-live", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	var count int
	if err := database.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM revoked_tokens`).Scan(&count); err != nil {
		t.Fatalf("counting revocations: %v", err)
	}
	if count != 1 {
		t.Errorf("expected expired revocation purged, got %d rows", count)
	}
}
