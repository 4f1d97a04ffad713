package repository

import (
	"context"
	"database/sql"
	"errors"

	"microfeed/internal/models"
	repodb "microfeed/internal/repository/db"
)

// ErrDuplicateEmail reports a write that violated the unique index on
// users.email.
var ErrDuplicateEmail = errors.New("email already registered")

type Users interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id int, username, email string) error
	Delete(ctx context.Context, id int) error
}

type Posts interface {
	Create(ctx context.Context, p models.Post) error
	ListAll(ctx context.Context) ([]models.Post, error)
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}

// InitDB opens the SQLite database and bootstraps the schema.
func InitDB(path string) (*sql.DB, error) {
	return repodb.InitDB(path)
}
