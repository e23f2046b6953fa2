package film

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmorate/internal/domain"
)

type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) FindAll(ctx context.Context) ([]domain.Film, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

func (m *MockFilmRepository) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Film), args.Error(1)
}

func (m *MockFilmRepository) Create(ctx context.Context, f *domain.Film) error {
	args := m.Called(ctx, f)
	if f != nil && args.Error(0) == nil {
		f.ID = 1
	}
	return args.Error(0)
}

func (m *MockFilmRepository) Update(ctx context.Context, f *domain.Film) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFilmRepository) MostLiked(ctx context.Context, count int) ([]domain.Film, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Film), args.Error(1)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Add(ctx context.Context, userID, filmID int64) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, userID, filmID int64) error {
	args := m.Called(ctx, userID, filmID)
	return args.Error(0)
}

type MockUserGate struct {
	mock.Mock
}

func (m *MockUserGate) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockReferenceRepository struct {
	mock.Mock
}

func (m *MockReferenceRepository) GenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Genre), args.Error(1)
}

func (m *MockReferenceRepository) MpaByID(ctx context.Context, id int64) (*domain.Mpa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Mpa), args.Error(1)
}

func newTestService() (*Service, *MockFilmRepository, *MockLikeRepository, *MockUserGate, *MockReferenceRepository) {
	films := new(MockFilmRepository)
	likes := new(MockLikeRepository)
	users := new(MockUserGate)
	refs := new(MockReferenceRepository)
	svc := NewService(films, likes, users, refs, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return svc, films, likes, users, refs
}

func TestCreate_ResolvesReferences(t *testing.T) {
	svc, films, _, _, refs := newTestService()
	ctx := context.Background()

	refs.On("MpaByID", ctx, int64(3)).Return(&domain.Mpa{ID: 3, Name: "PG-13"}, nil)
	refs.On("GenreByID", ctx, int64(1)).Return(&domain.Genre{ID: 1, Name: "Комедия"}, nil)
	refs.On("GenreByID", ctx, int64(2)).Return(&domain.Genre{ID: 2, Name: "Драма"}, nil)
	films.On("Create", ctx, mock.AnythingOfType("*domain.Film")).Return(nil)

	created, err := svc.Create(ctx, validFilm())
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "PG-13", created.Mpa.Name)
	require.Len(t, created.Genres, 2)
	assert.Equal(t, "Комедия", created.Genres[0].Name)
	assert.Equal(t, "Драма", created.Genres[1].Name)
	films.AssertExpectations(t)
}

func TestCreate_DuplicateGenresCollapseInOrder(t *testing.T) {
	svc, films, _, _, refs := newTestService()
	ctx := context.Background()

	draft := validFilm()
	draft.Genres = []domain.Genre{{ID: 2}, {ID: 1}, {ID: 2}}

	refs.On("MpaByID", ctx, int64(3)).Return(&domain.Mpa{ID: 3, Name: "PG-13"}, nil)
	refs.On("GenreByID", ctx, int64(2)).Return(&domain.Genre{ID: 2, Name: "Драма"}, nil).Once()
	refs.On("GenreByID", ctx, int64(1)).Return(&domain.Genre{ID: 1, Name: "Комедия"}, nil).Once()
	films.On("Create", ctx, mock.AnythingOfType("*domain.Film")).Return(nil)

	created, err := svc.Create(ctx, draft)
	require.NoError(t, err)

	require.Len(t, created.Genres, 2)
	assert.Equal(t, int64(2), created.Genres[0].ID, "first occurrence keeps its position")
	assert.Equal(t, int64(1), created.Genres[1].ID)
}

func TestCreate_ValidationFailureSkipsStore(t *testing.T) {
	svc, films, _, _, _ := newTestService()

	draft := validFilm()
	draft.Name = ""

	_, err := svc.Create(context.Background(), draft)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	films.AssertNotCalled(t, "Create")
}

func TestCreate_UnknownMpaIsReferenceFailure(t *testing.T) {
	svc, films, _, _, refs := newTestService()
	ctx := context.Background()

	draft := validFilm()
	draft.Mpa = domain.Mpa{ID: 99}

	refs.On("MpaByID", ctx, int64(99)).
		Return(nil, &domain.ReferenceNotFoundError{Kind: domain.KindMpa, ID: 99})

	_, err := svc.Create(ctx, draft)

	var rerr *domain.ReferenceNotFoundError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, int64(99), rerr.ID)
	films.AssertNotCalled(t, "Create")
}

func TestGet_NonPositiveID(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.Get(context.Background(), 0)

	var cerr *domain.ConditionsNotMetError
	assert.ErrorAs(t, err, &cerr)
}

func TestUpdate_MissingID(t *testing.T) {
	svc, _, _, _, _ := newTestService()

	_, err := svc.Update(context.Background(), validFilm())

	var cerr *domain.ConditionsNotMetError
	assert.ErrorAs(t, err, &cerr)
}

func TestAddLike_UnknownUser(t *testing.T) {
	svc, films, likes, users, _ := newTestService()
	ctx := context.Background()

	films.On("FindByID", ctx, int64(1)).Return(&domain.Film{ID: 1}, nil)
	users.On("FindByID", ctx, int64(7)).
		Return(nil, &domain.NotFoundError{Kind: domain.KindUser, ID: 7})

	_, err := svc.AddLike(ctx, 1, 7)

	var nerr *domain.NotFoundError
	require.ErrorAs(t, err, &nerr)
	assert.Equal(t, domain.KindUser, nerr.Kind)
	likes.AssertNotCalled(t, "Add")
}

func TestAddLike_DuplicatePropagates(t *testing.T) {
	svc, films, likes, users, _ := newTestService()
	ctx := context.Background()

	films.On("FindByID", ctx, int64(1)).Return(&domain.Film{ID: 1}, nil)
	users.On("FindByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil)
	likes.On("Add", ctx, int64(2), int64(1)).
		Return(&domain.ConditionsNotMetError{Detail: "user 2 already likes film 1"})

	_, err := svc.AddLike(ctx, 1, 2)

	var cerr *domain.ConditionsNotMetError
	assert.ErrorAs(t, err, &cerr)
}

func TestPopular_NonPositiveCountIsEmpty(t *testing.T) {
	svc, films, _, _, _ := newTestService()

	for _, count := range []int{0, -5} {
		result, err := svc.Popular(context.Background(), count)
		require.NoError(t, err)
		assert.Empty(t, result)
	}
	films.AssertNotCalled(t, "MostLiked")
}

func TestPopular_DelegatesToRepository(t *testing.T) {
	svc, films, _, _, _ := newTestService()
	ctx := context.Background()

	ranked := []domain.Film{
		{ID: 1, Name: "Film A", LikeCount: 5},
		{ID: 2, Name: "Film B", LikeCount: 5},
	}
	films.On("MostLiked", ctx, 2).Return(ranked, nil)

	result, err := svc.Popular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, ranked, result)
}

func TestRemoveLike_HappyPath(t *testing.T) {
	svc, films, likes, users, _ := newTestService()
	ctx := context.Background()

	liked := &domain.Film{ID: 1, LikedBy: []int64{2}, LikeCount: 1}
	films.On("FindByID", ctx, int64(1)).Return(liked, nil)
	users.On("FindByID", ctx, int64(2)).Return(&domain.User{ID: 2}, nil)
	likes.On("Remove", ctx, int64(2), int64(1)).Return(nil)

	_, err := svc.RemoveLike(ctx, 1, 2)
	require.NoError(t, err)
	likes.AssertExpectations(t)
}

func validFilmAt(name string, day int) domain.Film {
	f := validFilm()
	f.Name = name
	f.ReleaseDate = domain.NewDate(1990, time.January, day)
	return f
}

func TestList_PassesThrough(t *testing.T) {
	svc, films, _, _, _ := newTestService()
	ctx := context.Background()

	all := []domain.Film{validFilmAt("Film A", 1), validFilmAt("Film B", 2)}
	films.On("FindAll", ctx).Return(all, nil)

	result, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, result, 2)
}
