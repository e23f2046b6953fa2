package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"filmorate/internal/domain"
)

// LikeRepository maintains the user→film like relation.
type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Add registers a like as a single conditional insert, so the
// duplicate check and the write cannot race. Liking a film twice is
// domain.ConditionsNotMetError.
func (r *LikeRepository) Add(ctx context.Context, userID, filmID int64) error {
	row := likeModel{FilmID: filmID, UserID: userID}
	tx := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return &domain.ConditionsNotMetError{
			Detail: fmt.Sprintf("user %d already likes film %d", userID, filmID),
		}
	}
	return nil
}

// Remove deletes a like. Removing a like that was never registered is
// domain.ConditionsNotMetError, mirroring Add.
func (r *LikeRepository) Remove(ctx context.Context, userID, filmID int64) error {
	tx := r.db.WithContext(ctx).
		Where("film_id = ? AND user_id = ?", filmID, userID).
		Delete(&likeModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return &domain.ConditionsNotMetError{
			Detail: fmt.Sprintf("user %d has not liked film %d", userID, filmID),
		}
	}
	return nil
}

// UserIDs returns the ids of users who liked the film, ordered.
func (r *LikeRepository) UserIDs(ctx context.Context, filmID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&likeModel{}).
		Where("film_id = ?", filmID).
		Order("user_id").
		Pluck("user_id", &ids).Error
	return ids, err
}
