package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hexago/internal/domain"
)

// todoClient fetches todo records from the placeholder todo API.
type todoClient struct {
	baseURL string
	client  *http.Client
}

// NewTodoClient returns a TodoGateway backed by the API at baseURL.
func NewTodoClient(baseURL string) domain.TodoGateway {
	return &todoClient{
		baseURL: baseURL,
		client:  newHTTPClient(),
	}
}

// FindAll fetches the full todo list.
func (c *todoClient) FindAll(ctx context.Context) ([]domain.ToDo, error) {
	url := c.baseURL + "/todos"
	res, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: res.StatusCode, URL: url}
	}

	var todos []domain.ToDo
	if err := json.NewDecoder(res.Body).Decode(&todos); err != nil {
		return nil, fmt.Errorf("upstream: decode todos: %w", err)
	}
	return todos, nil
}

// Get fetches a single todo. An upstream 404 surfaces as a nil record.
func (c *todoClient) Get(ctx context.Context, id int) (*domain.ToDo, error) {
	url := fmt.Sprintf("%s/todos/%d", c.baseURL, id)
	res, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &domain.UpstreamError{Status: res.StatusCode, URL: url}
	}

	var todo domain.ToDo
	if err := json.NewDecoder(res.Body).Decode(&todo); err != nil {
		return nil, fmt.Errorf("upstream: decode todo: %w", err)
	}
	return &todo, nil
}

func (c *todoClient) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("upstream: build request: %w", err)
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream: fetch %s: %w", url, err)
	}
	return res, nil
}

var _ domain.TodoGateway = (*todoClient)(nil)
