package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"hexago/internal/domain"
)

// posterBaseURL is the fixed image CDN prefix prepended to relative poster
// paths returned by the movie API.
const posterBaseURL = "https://image.tmdb.org/t/p/w600_and_h900_bestv2"

// movieRecord mirrors the upstream payload. PosterPath is a pointer so an
// absent poster can be told apart from an empty one.
type movieRecord struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	PosterPath  *string `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	Overview    string  `json:"overview"`
}

// toDomain maps the upstream record to a domain Movie, rewriting the poster
// path to a fully-qualified URL when present and leaving it unset otherwise.
func (m movieRecord) toDomain() domain.Movie {
	movie := domain.Movie{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: m.ReleaseDate,
		Overview:    m.Overview,
	}
	if m.PosterPath != nil && *m.PosterPath != "" {
		movie.PosterPath = posterBaseURL + *m.PosterPath
	}
	return movie
}

// movieListPayload is the envelope of the upstream list endpoints.
type movieListPayload struct {
	Results []movieRecord `json:"results"`
}

// movieClient fetches movie records from the movie database API.
type movieClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewMovieClient returns a MovieGateway backed by the API at baseURL,
// authenticating every call with apiKey.
func NewMovieClient(baseURL, apiKey string) domain.MovieGateway {
	return &movieClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  newHTTPClient(),
	}
}

// Search issues an upstream movie search for the given query.
func (c *movieClient) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	u := fmt.Sprintf("%s/search/movie?query=%s", c.baseURL, url.QueryEscape(query))
	return c.fetchList(ctx, u)
}

// Popular fetches the upstream popular-movies list.
func (c *movieClient) Popular(ctx context.Context) ([]domain.Movie, error) {
	return c.fetchList(ctx, c.baseURL+"/movie/popular")
}

// Get fetches a single movie. An upstream 404 surfaces as a nil record.
func (c *movieClient) Get(ctx context.Context, id int) (*domain.Movie, error) {
	u := fmt.Sprintf("%s/movie/%d", c.baseURL, id)
	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: res.StatusCode, URL: u}
	}

	var record movieRecord
	if err := json.NewDecoder(res.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("upstream: decode movie: %w", err)
	}
	movie := record.toDomain()
	return &movie, nil
}

func (c *movieClient) fetchList(ctx context.Context, u string) ([]domain.Movie, error) {
	res, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: res.StatusCode, URL: u}
	}

	var payload movieListPayload
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("upstream: decode movies: %w", err)
	}

	movies := make([]domain.Movie, 0, len(payload.Results))
	for _, record := range payload.Results {
		movies = append(movies, record.toDomain())
	}
	return movies, nil
}

func (c *movieClient) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: fetch %s: %w", u, err)
	}
	return res, nil
}

var _ domain.MovieGateway = (*movieClient)(nil)
