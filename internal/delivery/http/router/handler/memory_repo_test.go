package handler_test

import (
	"context"
	"sync"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"
)

// memoryUserRepository is an in-memory repository.UserRepository used to
// exercise the full HTTP stack without a database.
type memoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return domainerrors.ErrUsernameTaken.WrapMessage("username already exists")
	}

	stored := *user
	r.users[user.Username] = &stored

	return nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, exists := r.users[username]
	if !exists {
		return nil, repository.ErrUserNotFound
	}

	found := *stored

	return &found, nil
}

func (r *memoryUserRepository) FindByToken(_ context.Context, token string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.users {
		if stored.Token != nil && *stored.Token == token {
			found := *stored

			return &found, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepository) Update(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; !exists {
		return repository.ErrUserNotFound
	}

	stored := *user
	r.users[user.Username] = &stored

	return nil
}
