package domain

import "context"

// User represents a user in the system.
type User struct {
	ID    string `db:"id" json:"id"`
	Name  string `db:"name" json:"name" validate:"required"`
	Email string `db:"email" json:"email,omitempty" validate:"omitempty,email"`
}

// UserPatch holds the fields of a partial user update. All fields are
// pointers so callers only set what needs changing; the id of a record is
// never part of a patch.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserRepository abstracts user persistence from the application layer.
// Read operations signal absence with a nil record, not an error.
type UserRepository interface {
	Get(ctx context.Context, id string) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	Save(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, patch UserPatch) (*User, error)
}
