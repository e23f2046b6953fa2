package user

import (
	"context"

	"filmorate/internal/domain"
)

// UserRepository is the persistence contract for users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Create(ctx context.Context, u *domain.User) error
	Update(ctx context.Context, u *domain.User) error
}

// FriendshipRepository maintains the symmetric friendship edges.
type FriendshipRepository interface {
	Add(ctx context.Context, userID, friendID int64) error
	Remove(ctx context.Context, userID, friendID int64) error
	FriendsOf(ctx context.Context, userID int64) ([]domain.User, error)
	Common(ctx context.Context, userID, otherID int64) ([]domain.User, error)
}
