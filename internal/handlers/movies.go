package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/middleware"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
)

// MovieHandler handles list-membership HTTP requests.
type MovieHandler struct {
	listService service.ListService
}

// NewMovieHandler creates a new MovieHandler instance.
func NewMovieHandler(listService service.ListService) *MovieHandler {
	return &MovieHandler{listService: listService}
}

// UpsertMovieRequest represents the add-to-list request payload.
type UpsertMovieRequest struct {
	MovieID    int64   `json:"movieId" binding:"required"`
	Title      string  `json:"title" binding:"required"`
	PosterPath *string `json:"posterPath"`
	ListType   string  `json:"listType" binding:"required,oneof=favorite watchlist"`
}

// Upsert godoc
// @Summary Add a movie to a list
// @Description File a movie under favorites or watchlist. Re-adding an
// @Description already filed movie moves it to the new list type.
// @Tags movies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpsertMovieRequest true "Movie details"
// @Success 201 {object} models.ListEntry
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Router /movies [post]
func (h *MovieHandler) Upsert(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization token required")
		return
	}

	var req UpsertMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "movieId, title and a valid listType are required")
		return
	}

	entry, err := h.listService.UpsertEntry(c.Request.Context(), &models.ListEntry{
		UserID:     userID,
		MovieID:    req.MovieID,
		Title:      req.Title,
		PosterPath: req.PosterPath,
		ListType:   req.ListType,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Remove godoc
// @Summary Remove a movie from the user's lists
// @Tags movies
// @Security BearerAuth
// @Produce json
// @Param movieId path int true "External catalog movie id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /movies/{movieId} [delete]
func (h *MovieHandler) Remove(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization token required")
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movieId"), 10, 64)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "movieId must be an integer")
		return
	}

	if err := h.listService.RemoveEntry(c.Request.Context(), userID, movieID); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "movie removed"})
}
