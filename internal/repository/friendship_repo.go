package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmorate/internal/domain"
)

// FriendshipRepository maintains the symmetric friendship relation.
// Every logical friendship is stored as two mirrored rows written and
// removed in the same transaction.
type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

// Add links two users in both directions. Adding an existing
// friendship is a no-op.
func (r *FriendshipRepository) Add(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		edges := []friendModel{
			{UserID: userID, FriendID: friendID},
			{UserID: friendID, FriendID: userID},
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&edges).Error
	})
}

// Remove deletes both directions of the edge. Removing a friendship
// that does not exist is a no-op.
func (r *FriendshipRepository) Remove(ctx context.Context, userID, friendID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.
			Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
				userID, friendID, friendID, userID).
			Delete(&friendModel{}).Error
	})
}

// FriendsOf resolves a user's friend ids to full records, ordered by
// id. The result is an empty slice, never nil.
func (r *FriendshipRepository) FriendsOf(ctx context.Context, userID int64) ([]domain.User, error) {
	var rows []userModel
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Joins("JOIN friends ON friends.friend_id = users.id").
		Where("friends.user_id = ?", userID).
		Order("users.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *toDomainUser(row)
	}
	return users, nil
}

// Common returns the users that both userID and otherID have as
// friends, ordered by id.
func (r *FriendshipRepository) Common(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	var rows []userModel
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Joins("JOIN friends f1 ON f1.friend_id = users.id AND f1.user_id = ?", userID).
		Joins("JOIN friends f2 ON f2.friend_id = users.id AND f2.user_id = ?", otherID).
		Order("users.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		users[i] = *toDomainUser(row)
	}
	return users, nil
}
