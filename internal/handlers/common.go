package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/services"
	"github.com/ailtonganem/Lara/internal/store"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Subject = models.Subject
type Module = models.Module
type Activity = models.Activity
type User = models.User

// writeError translates service errors into the response taxonomy:
// validation and identity rejections are the caller's to fix, a vanished
// record is 404, anything else is a persistence fault.
func writeError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
