package service

import (
	"context"
	"time"

	"microfeed/internal/models"
	"microfeed/internal/repository"

	"github.com/google/uuid"
)

// FeedService handles listing and publishing posts.
type FeedService struct {
	posts repository.Posts
}

func NewFeedService(posts repository.Posts) *FeedService {
	return &FeedService{posts: posts}
}

var _ Feed = (*FeedService)(nil)

// List returns every post, newest first.
func (s *FeedService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListAll(ctx)
}

// Publish creates a post owned by userID. Content limits are enforced at the
// form boundary; the author must exist or the storage foreign key rejects the
// write.
func (s *FeedService) Publish(ctx context.Context, userID int, content string) (models.Post, error) {
	p := models.Post{
		ID:          uuid.NewString(),
		Content:     content,
		DateCreated: time.Now().UTC(),
		UserID:      userID,
	}
	if err := s.posts.Create(ctx, p); err != nil {
		return models.Post{}, err
	}
	return p, nil
}
