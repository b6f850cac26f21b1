package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexago/internal/auth"
	"hexago/internal/config"
	"hexago/internal/domain"
	"hexago/internal/repository"
	"hexago/internal/service"
)

// fakeTodoGateway serves canned todos; err, when set, is returned as-is.
type fakeTodoGateway struct {
	todos []domain.ToDo
	err   error
}

func (f *fakeTodoGateway) FindAll(ctx context.Context) ([]domain.ToDo, error) {
	return f.todos, f.err
}

func (f *fakeTodoGateway) Get(ctx context.Context, id int) (*domain.ToDo, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, todo := range f.todos {
		if todo.ID == id {
			return &todo, nil
		}
	}
	return nil, nil
}

// fakeMovieGateway mirrors fakeTodoGateway for movies.
type fakeMovieGateway struct {
	movies []domain.Movie
	err    error
}

func (f *fakeMovieGateway) Search(ctx context.Context, query string) ([]domain.Movie, error) {
	return f.movies, f.err
}

func (f *fakeMovieGateway) Popular(ctx context.Context) ([]domain.Movie, error) {
	return f.movies, f.err
}

func (f *fakeMovieGateway) Get(ctx context.Context, id int) (*domain.Movie, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, movie := range f.movies {
		if movie.ID == id {
			return &movie, nil
		}
	}
	return nil, nil
}

// fakeAuthenticator resolves any code except "bad" to a fixed identity.
type fakeAuthenticator struct{}

func (fakeAuthenticator) AuthCodeURL(state string) string {
	return "https://provider.example/authorize?state=" + url.QueryEscape(state)
}

func (fakeAuthenticator) Identity(ctx context.Context, code string) (string, error) {
	if code == "bad" {
		return "", auth.ErrInvalidToken
	}
	return "alice@example.com", nil
}

var (
	testOnce   sync.Once
	testServer *Server
	testIssuer *auth.TokenIssuer
	todoFake   *fakeTodoGateway
	movieFake  *fakeMovieGateway
)

// sharedServer builds the server once per test binary; the prometheus
// middleware registers collectors globally and cannot be set up twice.
func sharedServer(t *testing.T) *Server {
	t.Helper()
	testOnce.Do(func() {
		db, err := sqlx.Connect("sqlite3", ":memory:")
		if err != nil {
			panic(err)
		}
		if _, err := db.Exec(`CREATE TABLE users (id TEXT PRIMARY KEY, name TEXT NOT NULL, email TEXT NOT NULL DEFAULT '')`); err != nil {
			panic(err)
		}

		todoFake = &fakeTodoGateway{todos: []domain.ToDo{
			{ID: 1, UserID: 2, Title: "buy milk", Completed: false},
			{ID: 2, UserID: 2, Title: "write tests", Completed: true},
		}}
		movieFake = &fakeMovieGateway{movies: []domain.Movie{
			{ID: 42, Title: "Blade Runner", PosterPath: "https://cdn.example/br.jpg"},
		}}
		testIssuer = auth.NewTokenIssuer([]byte("test-secret"))

		cfg := &config.Config{
			Host:             "127.0.0.1",
			Port:             "0",
			SessionSecret:    "session-secret",
			FrontRedirectURI: "https://front.example/landing",
			DevMode:          true,
		}

		testServer = New(cfg, Deps{
			Users:  service.NewUserService(repository.NewUserRepository(db)),
			Todos:  service.NewTodoService(todoFake),
			Movies: service.NewMovieService(movieFake),
			Auth:   fakeAuthenticator{},
			Issuer: testIssuer,
		})
	})
	return testServer
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token, err := testIssuer.Mint("alice@example.com", auth.AccessTokenTTL)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	sharedServer(t).Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealth(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUsers_MissingToken(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/users", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decodeBody(t, w)["detail"])
}

func TestUsers_InvalidToken(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/users", "tampered.token.value", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Invalid token", body["detail"])
	assert.NotEmpty(t, body["request_id"])
}

func TestUsers_CreateGetDeleteFlow(t *testing.T) {
	token := bearerToken(t)

	w := doRequest(t, http.MethodPost, "/users", token, `{"id":"client-supplied","name":"Alice","email":"a@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.NotEqual(t, "client-supplied", id, "client-supplied id is ignored on create")
	assert.Equal(t, "Alice", created["name"])

	w = doRequest(t, http.MethodGet, "/users/"+id, token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created, decodeBody(t, w))

	w = doRequest(t, http.MethodDelete, "/users/"+id, token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, http.MethodGet, "/users/"+id, token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, http.MethodDelete, "/users/"+id, token, "")
	assert.Equal(t, http.StatusNotFound, w.Code, "second delete reports not found, never an error")
}

func TestUsers_CreateValidation(t *testing.T) {
	token := bearerToken(t)

	w := doRequest(t, http.MethodPost, "/users", token, `{"email":"a@x.com"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	body := decodeBody(t, w)
	detail, ok := body["detail"].(map[string]any)
	require.True(t, ok, "validation detail is field-level")
	assert.Contains(t, detail, "Name")
}

func TestUsers_UpdatePartial(t *testing.T) {
	token := bearerToken(t)

	w := doRequest(t, http.MethodPost, "/users", token, `{"name":"Bob","email":"b@x.com"}`)
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doRequest(t, http.MethodPut, "/users/"+id, token, `{"id":"other-id","email":"bob@y.com"}`)
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, id, updated["id"], "id in the payload never changes the stored id")
	assert.Equal(t, "Bob", updated["name"], "unspecified fields stay unchanged")
	assert.Equal(t, "bob@y.com", updated["email"])
}

func TestUsers_UpdateAbsent(t *testing.T) {
	w := doRequest(t, http.MethodPut, "/users/no-such-id", bearerToken(t), `{"name":"X"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUsers_List(t *testing.T) {
	token := bearerToken(t)

	doRequest(t, http.MethodPost, "/users", token, `{"name":"Carol"}`)

	w := doRequest(t, http.MethodGet, "/users", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.NotEmpty(t, users)
}

func TestTodos_ListWithoutAuth(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/todos", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var todos []domain.ToDo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &todos))
	assert.Len(t, todos, 2)
}

func TestTodos_GetAbsent(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/todos/999", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMovies_RequireAuth(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/movies/popular", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(t, http.MethodGet, "/movies/popular", bearerToken(t), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMovies_UpstreamFailurePropagated(t *testing.T) {
	movieFake.err = &domain.UpstreamError{Status: http.StatusBadGateway, URL: "https://api.example/movie/popular"}
	defer func() { movieFake.err = nil }()

	w := doRequest(t, http.MethodGet, "/movies/popular", bearerToken(t), "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["request_id"])
}

func TestMovies_GetAbsent(t *testing.T) {
	w := doRequest(t, http.MethodGet, "/movies/404", bearerToken(t), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGraphQL_Todos(t *testing.T) {
	w := doRequest(t, http.MethodPost, "/graphql", "", `{"query":"{ todos { id userId title completed } }"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Data struct {
			Todos []struct {
				ID        int32  `json:"id"`
				UserID    int32  `json:"userId"`
				Title     string `json:"title"`
				Completed bool   `json:"completed"`
			} `json:"todos"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Data.Todos, 2)
	assert.Equal(t, "buy milk", payload.Data.Todos[0].Title)
}
