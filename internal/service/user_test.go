package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexago/internal/domain"
)

// fakeUserRepository records calls and serves a single in-memory user.
type fakeUserRepository struct {
	users map[string]domain.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]domain.User{}}
}

func (f *fakeUserRepository) Get(ctx context.Context, id string) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (f *fakeUserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	all := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		all = append(all, user)
	}
	return all, nil
}

func (f *fakeUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	if user.ID == "" {
		user.ID = "generated-id"
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	delete(f.users, id)
	return ok, nil
}

func (f *fakeUserRepository) Update(ctx context.Context, id string, patch domain.UserPatch) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	f.users[id] = user
	return &user, nil
}

func TestUserService_ForwardsToRepository(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	saved, err := svc.Save(ctx, domain.User{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", saved.ID)

	fetched, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "Alice", fetched.Name)

	all, err := svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	existed, err := svc.Delete(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	absent, err := svc.Get(ctx, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestUserService_UpdateAbsentIsNil(t *testing.T) {
	svc := NewUserService(newFakeUserRepository())

	name := "X"
	updated, err := svc.Update(context.Background(), "missing", domain.UserPatch{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
