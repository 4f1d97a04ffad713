package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"microfeed/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL        = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectUserByIDSQL    = `SELECT id, username, email, password_hash FROM users WHERE id = ?`
	selectUserByEmailSQL = `SELECT id, username, email, password_hash FROM users WHERE email = ?`
	updateUserSQL        = `UPDATE users SET username = ?, email = ? WHERE id = ?`
	deleteUserSQL        = `DELETE FROM users WHERE id = ?`
)

// isDuplicateEmail matches the sqlite unique-index violation on users.email.
func isDuplicateEmail(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: users.email")
}

// Create inserts a new user and returns its ID. Returns ErrDuplicateEmail if
// the email is already taken.
func (r *UserRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, username, email, passwordHash)
	if err != nil {
		if isDuplicateEmail(err) {
			return 0, ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id %d", id))
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRowContext(ctx, selectUserByEmailSQL, email), fmt.Sprintf("email %q", email))
}

func (r *UserRepository) scanUser(row *sql.Row, key string) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user by %s: %w", key, err)
	}
	return &u, nil
}

// Update overwrites username and email for the given user. Returns
// ErrDuplicateEmail if the new email belongs to another user.
func (r *UserRepository) Update(ctx context.Context, id int, username, email string) error {
	if _, err := r.db.ExecContext(ctx, updateUserSQL, username, email, id); err != nil {
		if isDuplicateEmail(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

// Delete removes the user row. Authored posts are removed by the
// ON DELETE CASCADE foreign key.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.ExecContext(ctx, deleteUserSQL, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}
