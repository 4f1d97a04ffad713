package service

import (
	"context"

	"microfeed/internal/models"
	"microfeed/internal/repository"
)

// Authorization covers account creation and the session lifecycle.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (int, error)
	Login(ctx context.Context, email, password string) (string, error)
	ParseSession(token string) (int, error)
}

// Profiles exposes read/update/delete on user accounts. Mutations require the
// acting user to own the target account.
type Profiles interface {
	Get(ctx context.Context, id int) (*models.User, error)
	Update(ctx context.Context, actorID, id int, username, email string) error
	Delete(ctx context.Context, actorID, id int) error
}

// Feed exposes the reverse-chronological post list and publishing.
type Feed interface {
	List(ctx context.Context) ([]models.Post, error)
	Publish(ctx context.Context, userID int, content string) (models.Post, error)
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Profiles
	Feed
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, sessions SessionConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, sessions),
		Profiles:      NewProfileService(repos.Users),
		Feed:          NewFeedService(repos.Posts),
	}
}
