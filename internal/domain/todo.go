package domain

import "context"

// ToDo is a read-only record sourced from the placeholder todo API.
type ToDo struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// TodoGateway abstracts the upstream todo API.
// Get returns a nil record when the upstream reports 404.
type TodoGateway interface {
	FindAll(ctx context.Context) ([]ToDo, error)
	Get(ctx context.Context, id int) (*ToDo, error)
}
