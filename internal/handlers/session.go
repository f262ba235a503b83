package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/navigator"
	"github.com/ailtonganem/Lara/internal/services"
	"github.com/ailtonganem/Lara/internal/store"
)

type SessionHandler struct {
	authService *services.AuthService
}

func NewSessionHandler(authService *services.AuthService) *SessionHandler {
	return &SessionHandler{authService: authService}
}

type ScreenResponse struct {
	Screen navigator.ScreenKind `json:"screen" example:"student_home"`
}

// GetScreen godoc
// @Summary      Resolve the caller's screen
// @Description  Returns which screen the client should show for the authenticated user
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} ScreenResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/session/screen [get]
func (h *SessionHandler) GetScreen(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		// A missing or unreadable profile resolves to the waiting screen.
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("session: profile lookup for %s: %v", userID, err)
		}
		profile = nil
	}

	c.JSON(http.StatusOK, ScreenResponse{Screen: navigator.Resolve(true, profile)})
}
