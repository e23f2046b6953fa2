package reference

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/domain"
	"filmorate/internal/pkg/response"
)

// Repository reads the static genre and MPA lookup tables.
type Repository interface {
	Genres(ctx context.Context) ([]domain.Genre, error)
	GenreByID(ctx context.Context, id int64) (*domain.Genre, error)
	MpaRatings(ctx context.Context) ([]domain.Mpa, error)
	MpaByID(ctx context.Context, id int64) (*domain.Mpa, error)
}

// Handler serves the reference data endpoints. The data is read-only,
// so the handler talks to the repository directly.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.ListGenres)
	rg.GET("/genres/:id", h.GetGenre)
	rg.GET("/mpa", h.ListMpa)
	rg.GET("/mpa/:id", h.GetMpa)
}

func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.repo.Genres(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genres)
}

func (h *Handler) GetGenre(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	genre, err := h.repo.GenreByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, genre)
}

func (h *Handler) ListMpa(c *gin.Context) {
	ratings, err := h.repo.MpaRatings(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, ratings)
}

func (h *Handler) GetMpa(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	mpa, err := h.repo.MpaByID(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, mpa)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "id must be an integer")
		return 0, false
	}
	return id, true
}
