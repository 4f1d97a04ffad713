package service

import (
	"context"
	"errors"

	"microfeed/internal/models"
	"microfeed/internal/repository"
)

// ProfileService handles viewing and mutating user accounts.
type ProfileService struct {
	users repository.Users
}

func NewProfileService(users repository.Users) *ProfileService {
	return &ProfileService{users: users}
}

var _ Profiles = (*ProfileService)(nil)

// Get fetches a user by id. Any authenticated user may view any profile.
func (s *ProfileService) Get(ctx context.Context, id int) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// Update overwrites username and email. Only the account owner may mutate it.
func (s *ProfileService) Update(ctx context.Context, actorID, id int, username, email string) error {
	if actorID != id {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.users.Update(ctx, id, username, email); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// Delete removes the account. Only the owner may delete it; authored posts go
// with it via the storage-level cascade.
func (s *ProfileService) Delete(ctx context.Context, actorID, id int) error {
	if actorID != id {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
