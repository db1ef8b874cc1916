package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/siddarthan007/laf/internal/embedding"
	"github.com/siddarthan007/laf/internal/model"
)

const itemColumns = `id, reported_by, status, description, location, image_mime,
	description_vector, image_vector, is_active, is_admin_report, has_match_found, reported_at`

// CreateItem stores a fully embedded item report together with its processed
// image bytes. The caller is responsible for having generated the vectors; an
// item without a description vector is rejected here as a last line of defense.
func CreateItem(ctx context.Context, db *sql.DB, item *model.Item, image []byte) (*model.Item, error) {
	if len(item.DescriptionVector) == 0 {
		return nil, fmt.Errorf("creating item: missing description vector")
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO items (id, reported_by, status, description, location, image, image_mime,
		                    description_vector, image_vector, is_admin_report)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, item.ReportedBy, item.Status, item.Description, item.Location,
		image, nullable(item.ImageMime),
		embedding.EncodeVector(item.DescriptionVector), embedding.EncodeVector(item.ImageVector),
		item.IsAdminReport,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID, vectors included.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = ?`, id,
	)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListActiveByStatus returns the candidate pool: every active item with the
// given status, excluding excludeID. Vectors are included for scoring.
func ListActiveByStatus(ctx context.Context, db *sql.DB, status, excludeID string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE status = ? AND is_active = 1 AND id != ?
		 ORDER BY reported_at DESC`,
		status, excludeID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing candidate pool: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItems returns items, optionally filtered by status, newest first.
// Archived items are excluded unless includeArchived is set.
func ListItems(ctx context.Context, db *sql.DB, status string, includeArchived bool) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	var args []any

	if !includeArchived {
		query += ` AND is_active = 1`
	}
	if status != "" {
		query += ` AND status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY reported_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsByReporter returns all items reported by a user, newest first.
func ListItemsByReporter(ctx context.Context, db *sql.DB, userID string) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE reported_by = ? ORDER BY reported_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing items by reporter: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ArchiveItem marks an item inactive, removing it from all future candidate
// pools. Used for manual resolution; match approval archives within its own
// transaction instead.
func ArchiveItem(ctx context.Context, db *sql.DB, id string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET is_active = 0 WHERE id = ?`, id,
	)
	if err != nil {
		return fmt.Errorf("archiving item: %w", err)
	}
	return nil
}

// GetItemImage returns an item's stored image data and MIME type.
func GetItemImage(ctx context.Context, db *sql.DB, id string) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT image, image_mime FROM items WHERE id = ?`, id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item image: %w", err)
	}
	return image, mime.String, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var imageMime sql.NullString
	var descVec, imageVec []byte
	err := row.Scan(&item.ID, &item.ReportedBy, &item.Status, &item.Description, &item.Location,
		&imageMime, &descVec, &imageVec, &item.IsActive, &item.IsAdminReport, &item.HasMatchFound,
		&item.ReportedAt)
	if err != nil {
		return nil, err
	}
	item.ImageMime = imageMime.String

	if item.DescriptionVector, err = embedding.DecodeVector(descVec); err != nil {
		return nil, fmt.Errorf("item %s: %w", item.ID, err)
	}
	if item.ImageVector, err = embedding.DecodeVector(imageVec); err != nil {
		return nil, fmt.Errorf("item %s: %w", item.ID, err)
	}
	return item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
