// Package graph exposes the GraphQL surface: a single todos query resolved
// through the todo service.
package graph

import (
	"context"
	"net/http"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"hexago/internal/domain"
	"hexago/internal/service"
)

const schemaString = `
	schema {
		query: Query
	}

	type Query {
		todos: [Todo!]!
	}

	type Todo {
		id: Int!
		userId: Int!
		title: String!
		completed: Boolean!
	}
`

// Resolver is the root query resolver.
type Resolver struct {
	todos *service.TodoService
}

// Todos resolves the todos query field.
func (r *Resolver) Todos(ctx context.Context) ([]*todoResolver, error) {
	todos, err := r.todos.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resolvers := make([]*todoResolver, 0, len(todos))
	for _, todo := range todos {
		resolvers = append(resolvers, &todoResolver{todo: todo})
	}
	return resolvers, nil
}

type todoResolver struct {
	todo domain.ToDo
}

func (r *todoResolver) ID() int32       { return int32(r.todo.ID) }
func (r *todoResolver) UserID() int32   { return int32(r.todo.UserID) }
func (r *todoResolver) Title() string   { return r.todo.Title }
func (r *todoResolver) Completed() bool { return r.todo.Completed }

// NewHandler parses the schema and returns an HTTP handler serving GraphQL
// requests at POST /graphql.
func NewHandler(todos *service.TodoService) http.Handler {
	schema := graphql.MustParseSchema(schemaString, &Resolver{todos: todos})
	return &relay.Handler{Schema: schema}
}
