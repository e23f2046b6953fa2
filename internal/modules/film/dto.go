package film

import (
	"filmorate/internal/domain"
)

type mpaPayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type genrePayload struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

// filmRequest is the create/update body. Only ids are taken from the
// nested mpa and genre objects; names come from the reference tables.
type filmRequest struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ReleaseDate domain.Date    `json:"releaseDate"`
	Duration    int            `json:"duration"`
	Mpa         *mpaPayload    `json:"mpa"`
	Genres      []genrePayload `json:"genres"`
}

func (r filmRequest) toDomain() domain.Film {
	f := domain.Film{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ReleaseDate: r.ReleaseDate,
		Duration:    r.Duration,
	}
	if r.Mpa != nil {
		f.Mpa = domain.Mpa{ID: r.Mpa.ID}
	}
	for _, g := range r.Genres {
		f.Genres = append(f.Genres, domain.Genre{ID: g.ID})
	}
	return f
}

// filmResponse is the boundary shape of a film. The like-id set never
// crosses the boundary; only the count does.
type filmResponse struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	ReleaseDate    domain.Date    `json:"releaseDate"`
	Duration       int            `json:"duration"`
	Mpa            mpaPayload     `json:"mpa"`
	Genres         []genrePayload `json:"genres"`
	LikedUserCount int64          `json:"likedUserCount"`
}

func toFilmResponse(f *domain.Film) filmResponse {
	genres := make([]genrePayload, len(f.Genres))
	for i, g := range f.Genres {
		genres[i] = genrePayload{ID: g.ID, Name: g.Name}
	}
	return filmResponse{
		ID:             f.ID,
		Name:           f.Name,
		Description:    f.Description,
		ReleaseDate:    f.ReleaseDate,
		Duration:       f.Duration,
		Mpa:            mpaPayload{ID: f.Mpa.ID, Name: f.Mpa.Name},
		Genres:         genres,
		LikedUserCount: f.LikeCount,
	}
}

func toFilmResponses(films []domain.Film) []filmResponse {
	out := make([]filmResponse, len(films))
	for i := range films {
		out[i] = toFilmResponse(&films[i])
	}
	return out
}
