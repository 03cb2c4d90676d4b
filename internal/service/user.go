package service

import (
	"context"
	"fmt"

	"github.com/pkordes/route-planner/backend/internal/domain"
	"github.com/pkordes/route-planner/backend/internal/metrics"
	"github.com/pkordes/route-planner/backend/internal/repo"
)

// UserService implements admin account moderation: the full user listing and
// banning or unbanning non-admin accounts.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided repo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// List returns every account ordered by id. Never nil.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.List: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	for i := range users {
		if len(users[i].Preferences) == 0 {
			users[i].Preferences = []byte("[]")
		}
	}
	return users, nil
}

// SetBanned bans or unbans account id.
// Returns domain.ErrNotFound when id is missing or is an admin account.
func (s *UserService) SetBanned(ctx context.Context, id int64, banned bool) error {
	if err := s.users.SetBanned(ctx, id, banned); err != nil {
		return fmt.Errorf("service.UserService.SetBanned: %w", err)
	}
	metrics.RecordBanChange(banned)
	return nil
}
