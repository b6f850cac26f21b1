package domain

import "context"

// Movie is a read-only record sourced from the movie database API.
// PosterPath is a fully-qualified image URL when the upstream record carries
// a poster, and empty otherwise.
type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path,omitempty"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// MovieGateway abstracts the upstream movie API.
// Get returns a nil record when the upstream reports 404.
type MovieGateway interface {
	Search(ctx context.Context, query string) ([]Movie, error)
	Popular(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int) (*Movie, error)
}
