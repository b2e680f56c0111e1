package impl

import (
	"io"
	"log/slog"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service     *userService
	userRepo    *mockUserRepository
	hasher      *mockPasswordHasher
	tokenIssuer *mockTokenIssuer
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestUserService() userServiceFixtures {
	userRepo := new(mockUserRepository)
	hasher := new(mockPasswordHasher)
	tokenIssuer := new(mockTokenIssuer)

	service := NewUserService(UserServiceParams{
		UserRepo:    userRepo,
		Hasher:      hasher,
		TokenIssuer: tokenIssuer,
		Logger:      newDiscardLogger(),
	})

	return userServiceFixtures{
		service:     service.(*userService),
		userRepo:    userRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
	}
}
