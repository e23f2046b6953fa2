package user

import (
	"filmorate/internal/domain"
)

type userRequest struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"`
	Birthday domain.Date `json:"birthday"`
}

func (r userRequest) toDomain() domain.User {
	return domain.User{
		ID:       r.ID,
		Email:    r.Email,
		Login:    r.Login,
		Name:     r.Name,
		Birthday: r.Birthday,
	}
}

type userResponse struct {
	ID       int64       `json:"id"`
	Email    string      `json:"email"`
	Login    string      `json:"login"`
	Name     string      `json:"name"`
	Birthday domain.Date `json:"birthday"`
	Friends  []int64     `json:"friends"`
}

func toUserResponse(u *domain.User) userResponse {
	friends := u.Friends
	if friends == nil {
		friends = []int64{}
	}
	return userResponse{
		ID:       u.ID,
		Email:    u.Email,
		Login:    u.Login,
		Name:     u.Name,
		Birthday: u.Birthday,
		Friends:  friends,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, len(users))
	for i := range users {
		out[i] = toUserResponse(&users[i])
	}
	return out
}
