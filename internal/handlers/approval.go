package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/services"
)

type ApprovalHandler struct {
	approvalService *services.ApprovalService
}

func NewApprovalHandler(approvalService *services.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// ListPending godoc
// @Summary      List users awaiting approval
// @Tags         approval
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} User
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/admin/users/pending [get]
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	users, err := h.approvalService.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Approve godoc
// @Summary      Approve a pending user
// @Tags         approval
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/users/{id}/approve [post]
func (h *ApprovalHandler) Approve(c *gin.Context) {
	if err := h.approvalService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "user approved"})
}
