package repository

import "filmorate/internal/domain"

// Row models are kept separate from the domain structs so the schema
// can evolve without leaking gorm concerns upward.

type filmModel struct {
	ID          int64       `gorm:"column:id;primaryKey"`
	Name        string      `gorm:"column:name;not null"`
	Description string      `gorm:"column:description;size:200"`
	ReleaseDate domain.Date `gorm:"column:release_date"`
	Duration    int         `gorm:"column:duration"`
	RatingID    int64       `gorm:"column:rating_id;index"`
}

func (filmModel) TableName() string { return "films" }

// filmGenreModel links films to genres. Position preserves the order
// genres were supplied in, which the API reflects back on reads.
type filmGenreModel struct {
	FilmID   int64 `gorm:"column:film_id;primaryKey"`
	GenreID  int64 `gorm:"column:genre_id;primaryKey"`
	Position int   `gorm:"column:position"`
}

func (filmGenreModel) TableName() string { return "film_genres" }

type genreModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (genreModel) TableName() string { return "genres" }

type mpaModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name;not null"`
}

func (mpaModel) TableName() string { return "mpa_ratings" }

type userModel struct {
	ID       int64       `gorm:"column:id;primaryKey"`
	Email    string      `gorm:"column:email;not null;uniqueIndex:idx_users_email"`
	Login    string      `gorm:"column:login;not null"`
	Name     string      `gorm:"column:name;not null"`
	Birthday domain.Date `gorm:"column:birthday"`
}

func (userModel) TableName() string { return "users" }

// friendModel stores one direction of the friendship relation. Edges
// are always written and removed in mirrored pairs.
type friendModel struct {
	UserID   int64 `gorm:"column:user_id;primaryKey"`
	FriendID int64 `gorm:"column:friend_id;primaryKey"`
}

func (friendModel) TableName() string { return "friends" }

type likeModel struct {
	FilmID int64 `gorm:"column:film_id;primaryKey"`
	UserID int64 `gorm:"column:user_id;primaryKey"`
}

func (likeModel) TableName() string { return "liked_users" }

func toDomainUser(m userModel) *domain.User {
	return &domain.User{
		ID:       m.ID,
		Email:    m.Email,
		Login:    m.Login,
		Name:     m.Name,
		Birthday: m.Birthday,
	}
}

func toUserModel(u *domain.User) userModel {
	return userModel{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
	}
}
