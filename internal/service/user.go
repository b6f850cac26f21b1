// Package service contains the application services. Each service forwards
// calls to its port, adding structured log entries.
package service

import (
	"context"

	"go.uber.org/zap"

	"hexago/internal/domain"
	"hexago/internal/logger"
)

// UserService exposes user operations decoupled from a concrete repository.
type UserService struct {
	repo domain.UserRepository
}

// NewUserService returns a user service backed by repo.
func NewUserService(repo domain.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Save persists a new user.
func (s *UserService) Save(ctx context.Context, user domain.User) (domain.User, error) {
	logger.Log.Info("saving user", zap.String("name", user.Name))
	return s.repo.Save(ctx, user)
}

// FindAll lists every user.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	logger.Log.Info("listing users")
	return s.repo.FindAll(ctx)
}

// Get looks up a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	logger.Log.Debug("fetching user", zap.String("id", id))
	return s.repo.Get(ctx, id)
}

// Update applies a partial update to a user.
func (s *UserService) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	logger.Log.Info("updating user", zap.String("id", id))
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id string) (bool, error) {
	logger.Log.Warn("deleting user", zap.String("id", id))
	return s.repo.Delete(ctx, id)
}
