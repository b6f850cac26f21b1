package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hexago/internal/domain"
)

// All SQL is explicit and version-controlled; placeholders are rebound to
// the driver's bindvar style so the repository also runs against sqlite in
// tests.
const (
	sqlGetUser = `
		SELECT id, name, email
		FROM   users
		WHERE  id = ?
		LIMIT  1`

	sqlFindAllUsers = `
		SELECT id, name, email
		FROM   users
		ORDER  BY id`

	sqlInsertUser = `
		INSERT INTO users (id, name, email)
		VALUES (?, ?, ?)`

	sqlDeleteUser = `
		DELETE FROM users WHERE id = ?`
)

// userRepository is the relational implementation of domain.UserRepository.
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository returns a user repository backed by db.
func NewUserRepository(db *sqlx.DB) domain.UserRepository {
	return &userRepository{db: db}
}

// Get returns the user with the given id, or nil when no such record exists.
func (r *userRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	err := r.db.GetContext(ctx, &user, r.db.Rebind(sqlGetUser), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: get user: %w", err)
	}
	return &user, nil
}

// FindAll returns every persisted user ordered by id.
func (r *userRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	if err := r.db.SelectContext(ctx, &users, sqlFindAllUsers); err != nil {
		return nil, fmt.Errorf("repository: find all users: %w", err)
	}
	return users, nil
}

// Save persists the user, assigning a fresh unique id when absent, and
// returns the persisted record.
func (r *userRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := r.db.ExecContext(ctx, r.db.Rebind(sqlInsertUser), user.ID, user.Name, user.Email)
	if err != nil {
		return domain.User{}, fmt.Errorf("repository: save user: %w", err)
	}
	return user, nil
}

// Delete removes the user with the given id. It reports whether a record
// existed; absence is not an error.
func (r *userRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, r.db.Rebind(sqlDeleteUser), id)
	if err != nil {
		return false, fmt.Errorf("repository: delete user: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("repository: delete user: %w", err)
	}
	return n > 0, nil
}

// Update overwrites only the fields set in patch and returns the merged
// record, or nil when no record with the given id exists. The stored id
// never changes.
func (r *userRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	existing, err := r.Get(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	setClauses := make([]string, 0, 2)
	args := make([]any, 0, 3)
	if patch.Name != nil {
		setClauses = append(setClauses, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Email != nil {
		setClauses = append(setClauses, "email = ?")
		args = append(args, *patch.Email)
	}
	if len(setClauses) == 0 {
		return existing, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(setClauses, ", "))
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("repository: update user: %w", err)
	}

	return r.Get(ctx, id)
}

var _ domain.UserRepository = (*userRepository)(nil)
