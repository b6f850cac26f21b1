package service

import (
	"context"

	"go.uber.org/zap"

	"hexago/internal/domain"
	"hexago/internal/logger"
)

// TodoService exposes read-only todo operations over the upstream gateway.
type TodoService struct {
	gateway domain.TodoGateway
}

// NewTodoService returns a todo service backed by gateway.
func NewTodoService(gateway domain.TodoGateway) *TodoService {
	return &TodoService{gateway: gateway}
}

// FindAll lists every todo from the upstream API.
func (s *TodoService) FindAll(ctx context.Context) ([]domain.ToDo, error) {
	logger.Log.Info("listing todos")
	return s.gateway.FindAll(ctx)
}

// Get looks up a single todo by id.
func (s *TodoService) Get(ctx context.Context, id int) (*domain.ToDo, error) {
	logger.Log.Debug("fetching todo", zap.Int("id", id))
	return s.gateway.Get(ctx, id)
}
