package user

import (
	"context"
	"log/slog"

	"filmorate/internal/domain"
)

type Service struct {
	users   UserRepository
	friends FriendshipRepository
	logger  *slog.Logger
}

func NewService(users UserRepository, friends FriendshipRepository, logger *slog.Logger) *Service {
	return &Service{users: users, friends: friends, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, &domain.ConditionsNotMetError{Detail: "user id must be a positive number"}
	}
	return s.users.FindByID(ctx, id)
}

// Create persists a new user. The duplicate-email check runs before
// field validation; the DB unique index backstops the race between
// the check and the insert.
func (s *Service) Create(ctx context.Context, draft domain.User) (*domain.User, error) {
	taken, err := s.users.EmailExists(ctx, draft.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}
	if err := validateUser(&draft); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, &draft); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user created",
		slog.Int64("id", draft.ID), slog.String("login", draft.Login))
	return &draft, nil
}

// Update replaces all mutable fields of an existing user. The
// duplicate check excludes the user itself so keeping one's own email
// is always allowed.
func (s *Service) Update(ctx context.Context, draft domain.User) (*domain.User, error) {
	if draft.ID <= 0 {
		return nil, &domain.ConditionsNotMetError{Detail: "user id must be specified"}
	}
	if _, err := s.users.FindByID(ctx, draft.ID); err != nil {
		return nil, err
	}
	taken, err := s.users.EmailExists(ctx, draft.Email, draft.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}
	if err := validateUser(&draft); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, &draft); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user updated", slog.Int64("id", draft.ID))
	return s.users.FindByID(ctx, draft.ID)
}

// AddFriend links two users symmetrically: after it returns, each is
// in the other's friend set. Re-adding an existing friendship is a
// no-op.
func (s *Service) AddFriend(ctx context.Context, userID, friendID int64) error {
	if userID == friendID {
		return &domain.ConditionsNotMetError{Detail: "cannot add yourself as a friend"}
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, friendID); err != nil {
		return err
	}
	if err := s.friends.Add(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "friendship added",
		slog.Int64("user_id", userID), slog.Int64("friend_id", friendID))
	return nil
}

// RemoveFriend removes both directions of the edge. Removing a
// friendship that does not exist is a no-op.
func (s *Service) RemoveFriend(ctx context.Context, userID, friendID int64) error {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.users.FindByID(ctx, friendID); err != nil {
		return err
	}
	if err := s.friends.Remove(ctx, userID, friendID); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "friendship removed",
		slog.Int64("user_id", userID), slog.Int64("friend_id", friendID))
	return nil
}

// Friends returns the user's friends as full records, never nil.
func (s *Service) Friends(ctx context.Context, userID int64) ([]domain.User, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.friends.FriendsOf(ctx, userID)
}

// CommonFriends returns the intersection of two users' friend sets.
// An empty intersection is an empty slice, not an error.
func (s *Service) CommonFriends(ctx context.Context, userID, otherID int64) ([]domain.User, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, otherID); err != nil {
		return nil, err
	}
	return s.friends.Common(ctx, userID, otherID)
}
