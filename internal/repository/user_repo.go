package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"filmorate/internal/domain"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindAll returns every user ordered by id, with friend ids attached.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make([]domain.User, len(rows))
	for i, row := range rows {
		friends, err := r.friendIDs(ctx, row.ID)
		if err != nil {
			return nil, err
		}
		u := toDomainUser(row)
		u.Friends = friends
		users[i] = *u
	}
	return users, nil
}

// FindByID returns one user or domain.NotFoundError.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var row userModel
	tx := r.db.WithContext(ctx).First(&row, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Kind: domain.KindUser, ID: id}
		}
		return nil, tx.Error
	}
	u := toDomainUser(row)
	friends, err := r.friendIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Friends = friends
	return u, nil
}

// EmailExists reports whether another user already owns the email.
// excludeID skips the user being updated; pass 0 on create.
func (r *UserRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("email = ? AND id <> ?", email, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create inserts a user, assigning max(id)+1 inside the transaction.
// The unique index on email backstops the service-level duplicate
// check; a violation surfaces as domain.ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &userModel{})
		if err != nil {
			return err
		}
		row := toUserModel(u)
		row.ID = id
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		u.ID = id
		return nil
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// Update replaces every mutable field of an existing user.
func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing userModel
		if err := tx.First(&existing, u.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Kind: domain.KindUser, ID: u.ID}
			}
			return err
		}
		row := toUserModel(u)
		return tx.Save(&row).Error
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

func (r *UserRepository) friendIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&friendModel{}).
		Where("user_id = ?", userID).
		Order("friend_id").
		Pluck("friend_id", &ids).Error
	return ids, err
}
