package repository

import (
	"context"
	"database/sql"
	"fmt"

	"microfeed/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL = `INSERT INTO posts (id, content, date_created, user_id) VALUES (?, ?, ?, ?)`

	// Newest first; rowid breaks ties in favour of the later insert.
	selectFeedSQL = `
		SELECT p.id, p.content, p.date_created, p.user_id, u.username
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.date_created DESC, p.rowid DESC
	`
)

// Create persists a new post.
func (r *PostRepository) Create(ctx context.Context, p models.Post) error {
	_, err := r.db.ExecContext(ctx, insertPostSQL, p.ID, p.Content, p.DateCreated.UTC(), p.UserID)
	if err != nil {
		return fmt.Errorf("insert post %q: %w", p.ID, err)
	}
	return nil
}

// ListAll returns every post joined with its author's username, newest first.
func (r *PostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, selectFeedSQL)
	if err != nil {
		return nil, fmt.Errorf("select feed: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []models.Post
	for rows.Next() {
		var p models.Post
		if err := rows.Scan(&p.ID, &p.Content, &p.DateCreated, &p.UserID, &p.Username); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		p.DateCreated = p.DateCreated.UTC()
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed rows: %w", err)
	}
	return posts, nil
}
