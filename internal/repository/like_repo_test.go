package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/domain"
)

func TestLikeRepository_AddTwiceFails(t *testing.T) {
	db := newTestDB(t)
	films := NewFilmRepository(db)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	f := seedFilm(t, films, "Film A")
	u := seedUser(t, users, "a@mail.kz", "a")

	require.NoError(t, likes.Add(ctx, u.ID, f.ID))

	err := likes.Add(ctx, u.ID, f.ID)
	var cerr *domain.ConditionsNotMetError
	assert.ErrorAs(t, err, &cerr)
}

func TestLikeRepository_RemoveMissingFails(t *testing.T) {
	db := newTestDB(t)
	films := NewFilmRepository(db)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	f := seedFilm(t, films, "Film A")
	u := seedUser(t, users, "a@mail.kz", "a")

	err := likes.Remove(ctx, u.ID, f.ID)
	var cerr *domain.ConditionsNotMetError
	assert.ErrorAs(t, err, &cerr)
}

func TestLikeRepository_AddRemoveRoundTrip(t *testing.T) {
	db := newTestDB(t)
	films := NewFilmRepository(db)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	f := seedFilm(t, films, "Film A")
	u := seedUser(t, users, "a@mail.kz", "a")

	require.NoError(t, likes.Add(ctx, u.ID, f.ID))

	ids, err := likes.UserIDs(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u.ID}, ids)

	require.NoError(t, likes.Remove(ctx, u.ID, f.ID))

	ids, err = likes.UserIDs(ctx, f.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// The like can be registered again after removal.
	assert.NoError(t, likes.Add(ctx, u.ID, f.ID))
}

func TestLikeRepository_DifferentUsersCanLikeSameFilm(t *testing.T) {
	db := newTestDB(t)
	films := NewFilmRepository(db)
	users := NewUserRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()

	f := seedFilm(t, films, "Film A")
	u1 := seedUser(t, users, "a@mail.kz", "a")
	u2 := seedUser(t, users, "b@mail.kz", "b")

	require.NoError(t, likes.Add(ctx, u1.ID, f.ID))
	require.NoError(t, likes.Add(ctx, u2.ID, f.ID))

	ids, err := likes.UserIDs(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{u1.ID, u2.ID}, ids)
}
