package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/middleware"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/repository"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
)

// UserHandler handles user profile HTTP requests.
type UserHandler struct {
	userRepo    repository.UserRepository
	listService service.ListService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userRepo repository.UserRepository, listService service.ListService) *UserHandler {
	return &UserHandler{
		userRepo:    userRepo,
		listService: listService,
	}
}

// ProfileResponse represents the profile response payload.
type ProfileResponse struct {
	ID        int64              `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Favorites []models.ListEntry `json:"favorites"`
	Watchlist []models.ListEntry `json:"watchlist"`
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Description Return account details plus favorites and watchlist
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization token required")
		return
	}

	user, err := h.userRepo.FindByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondError(c, http.StatusNotFound, "user not found")
			return
		}
		RespondServiceError(c, err)
		return
	}

	lists, err := h.listService.GetLists(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Favorites: lists.Favorites,
		Watchlist: lists.Watchlist,
	})
}
