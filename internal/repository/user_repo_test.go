package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmorate/internal/domain"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	first := seedUser(t, repo, "a@mail.kz", "a")
	second := seedUser(t, repo, "b@mail.kz", "b")

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestUserRepository_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	created := &domain.User{
		Email:    "asel@mail.kz",
		Login:    "asel",
		Name:     "Асель",
		Birthday: domain.NewDate(1995, time.March, 12),
	}
	require.NoError(t, repo.Create(ctx, created))

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "asel@mail.kz", found.Email)
	assert.Equal(t, "asel", found.Login)
	assert.Equal(t, "Асель", found.Name)
	assert.Equal(t, "1995-03-12", found.Birthday.String())
	assert.Empty(t, found.Friends)
}

func TestUserRepository_DuplicateEmailRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	seedUser(t, repo, "asel@mail.kz", "asel")

	err := repo.Create(ctx, &domain.User{
		Email:    "asel@mail.kz",
		Login:    "impostor",
		Name:     "impostor",
		Birthday: domain.NewDate(1990, time.May, 15),
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestUserRepository_EmailExists(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, repo, "asel@mail.kz", "asel")

	taken, err := repo.EmailExists(ctx, "asel@mail.kz", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailExists(ctx, "asel@mail.kz", u.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a user's own email does not count as taken")

	taken, err = repo.EmailExists(ctx, "free@mail.kz", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepository_UpdateReplacesFields(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := seedUser(t, repo, "asel@mail.kz", "asel")

	u.Email = "asel.new@mail.kz"
	u.Name = "Асель Н."
	require.NoError(t, repo.Update(ctx, u))

	found, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "asel.new@mail.kz", found.Email)
	assert.Equal(t, "Асель Н.", found.Name)
}

func TestUserRepository_UpdateUnknown(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Update(context.Background(), &domain.User{
		ID:       77,
		Email:    "ghost@mail.kz",
		Login:    "ghost",
		Name:     "ghost",
		Birthday: domain.NewDate(1990, time.May, 15),
	})

	var nerr *domain.NotFoundError
	assert.ErrorAs(t, err, &nerr)
}

func TestUserRepository_FindByIDIncludesFriends(t *testing.T) {
	db := newTestDB(t)
	users := NewUserRepository(db)
	friends := NewFriendshipRepository(db)
	ctx := context.Background()

	a := seedUser(t, users, "a@mail.kz", "a")
	b := seedUser(t, users, "b@mail.kz", "b")
	c := seedUser(t, users, "c@mail.kz", "c")
	require.NoError(t, friends.Add(ctx, a.ID, b.ID))
	require.NoError(t, friends.Add(ctx, a.ID, c.ID))

	found, err := users.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{b.ID, c.ID}, found.Friends)
}
