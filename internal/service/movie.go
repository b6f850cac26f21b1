package service

import (
	"context"

	"go.uber.org/zap"

	"hexago/internal/domain"
	"hexago/internal/logger"
)

// MovieService exposes read-only movie operations over the upstream gateway.
type MovieService struct {
	gateway domain.MovieGateway
}

// NewMovieService returns a movie service backed by gateway.
func NewMovieService(gateway domain.MovieGateway) *MovieService {
	return &MovieService{gateway: gateway}
}

// Search queries the upstream movie search endpoint.
func (s *MovieService) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	logger.Log.Info("searching movies", zap.String("query", query))
	return s.gateway.Search(ctx, query)
}

// Popular lists the upstream popular movies.
func (s *MovieService) Popular(ctx context.Context) ([]domain.Movie, error) {
	logger.Log.Info("listing popular movies")
	return s.gateway.Popular(ctx)
}

// Get looks up a single movie by id.
func (s *MovieService) Get(ctx context.Context, id int) (*domain.Movie, error) {
	logger.Log.Debug("fetching movie", zap.Int("id", id))
	return s.gateway.Get(ctx, id)
}
