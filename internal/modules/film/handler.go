package film

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"filmorate/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	films := rg.Group("/films")
	{
		films.GET("", h.List)
		films.POST("", h.Create)
		films.PUT("", h.Update)
		films.GET("/popular", h.Popular)
		films.GET("/:id", h.Get)
		films.PUT("/:id/like/:userId", h.AddLike)
		films.DELETE("/:id/like/:userId", h.RemoveLike)
	}
}

func (h *Handler) List(c *gin.Context) {
	films, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponses(films))
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	f, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var req filmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	f, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toFilmResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	var req filmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	f, err := h.service.Update(c.Request.Context(), req.toDomain())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponse(f))
}

func (h *Handler) AddLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	f, err := h.service.AddLike(c.Request.Context(), filmID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponse(f))
}

func (h *Handler) RemoveLike(c *gin.Context) {
	filmID, ok := pathID(c, "id")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	f, err := h.service.RemoveLike(c.Request.Context(), filmID, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponse(f))
}

func (h *Handler) Popular(c *gin.Context) {
	countStr := c.DefaultQuery("count", strconv.Itoa(DefaultPopularCount))
	count, err := strconv.Atoi(countStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "count must be an integer")
		return
	}
	films, err := h.service.Popular(c.Request.Context(), count)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toFilmResponses(films))
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", name+" must be an integer")
		return 0, false
	}
	return id, true
}
