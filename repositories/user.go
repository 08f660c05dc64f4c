//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"

	"slingshot/domain"
)

type IUserRepository interface {
	// Create persists a new account; fails with ErrUserAlreadyExists when the
	// email is taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// Upsert inserts or refreshes a profile by id (demo-user seeding path).
	Upsert(ctx context.Context, user domain.User) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}
