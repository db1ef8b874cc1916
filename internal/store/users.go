package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/siddarthan007/laf/internal/model"
)

// CreateUser creates a new user.
func CreateUser(ctx context.Context, db *sql.DB, u *model.User) (*model.User, error) {
	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, roll_number, hostel, contact_number, role)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, u.Name, u.Email, u.PasswordHash, u.RollNumber, nullable(u.Hostel), u.ContactNumber, u.Role,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id string) (*model.User, error) {
	return getUserWhere(ctx, db, "id = ?", id)
}

// GetUserByEmail returns a user by email.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	return getUserWhere(ctx, db, "email = ?", email)
}

// GetUserByRollNumber returns a user by roll number.
func GetUserByRollNumber(ctx context.Context, db *sql.DB, rollNumber string) (*model.User, error) {
	return getUserWhere(ctx, db, "roll_number = ?", rollNumber)
}

func getUserWhere(ctx context.Context, db *sql.DB, where string, arg any) (*model.User, error) {
	u := &model.User{}
	var hostel sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, roll_number, hostel, contact_number, role, created_at
		 FROM users WHERE `+where, arg,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.RollNumber, &hostel, &u.ContactNumber, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	u.Hostel = hostel.String
	return u, nil
}

// UpdateUserPassword replaces a user's password hash.
func UpdateUserPassword(ctx context.Context, db *sql.DB, id, passwordHash string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ?`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}
	return nil
}

// nullable converts an empty string to a SQL NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
