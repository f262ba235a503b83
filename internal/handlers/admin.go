package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/services"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateSubject godoc
// @Summary      Create a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.SubjectInput true "Subject fields"
// @Success      201 {object} Subject
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admin/subjects [post]
func (h *AdminHandler) CreateSubject(c *gin.Context) {
	var in services.SubjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subject, err := h.adminService.CreateSubject(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject godoc
// @Summary      Update a subject (full field set)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        request body services.SubjectInput true "Subject fields"
// @Success      200 {object} Subject
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id} [put]
func (h *AdminHandler) UpdateSubject(c *gin.Context) {
	var in services.SubjectInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	subject, err := h.adminService.UpdateSubject(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, subject)
}

// DeleteSubject godoc
// @Summary      Delete a subject and everything beneath it
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id} [delete]
func (h *AdminHandler) DeleteSubject(c *gin.Context) {
	if err := h.adminService.DeleteSubject(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "subject deleted"})
}

// CreateModule godoc
// @Summary      Create a module under a subject
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        request body services.ModuleInput true "Module fields"
// @Success      201 {object} Module
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules [post]
func (h *AdminHandler) CreateModule(c *gin.Context) {
	var in services.ModuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	module, err := h.adminService.CreateModule(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

// UpdateModule godoc
// @Summary      Update a module (full field set)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        request body services.ModuleInput true "Module fields"
// @Success      200 {object} Module
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules/{module_id} [put]
func (h *AdminHandler) UpdateModule(c *gin.Context) {
	var in services.ModuleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	module, err := h.adminService.UpdateModule(c.Request.Context(), c.Param("id"), c.Param("module_id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

// DeleteModule godoc
// @Summary      Delete a module and its activities
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules/{module_id} [delete]
func (h *AdminHandler) DeleteModule(c *gin.Context) {
	if err := h.adminService.DeleteModule(c.Request.Context(), c.Param("id"), c.Param("module_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "module deleted"})
}

// CreateActivity godoc
// @Summary      Create an activity under a module
// @Description  Text activities carry content; quiz activities carry validated questions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        request body services.ActivityInput true "Activity fields"
// @Success      201 {object} Activity
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules/{module_id}/activities [post]
func (h *AdminHandler) CreateActivity(c *gin.Context) {
	var in services.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.adminService.CreateActivity(c.Request.Context(), c.Param("id"), c.Param("module_id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity godoc
// @Summary      Update an activity (full field set, questions rewritten)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        activity_id path string true "Activity ID"
// @Param        request body services.ActivityInput true "Activity fields"
// @Success      200 {object} Activity
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules/{module_id}/activities/{activity_id} [put]
func (h *AdminHandler) UpdateActivity(c *gin.Context) {
	var in services.ActivityInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.adminService.UpdateActivity(c.Request.Context(), c.Param("id"), c.Param("module_id"), c.Param("activity_id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

// DeleteActivity godoc
// @Summary      Delete an activity
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        activity_id path string true "Activity ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/admin/subjects/{id}/modules/{module_id}/activities/{activity_id} [delete]
func (h *AdminHandler) DeleteActivity(c *gin.Context) {
	if err := h.adminService.DeleteActivity(c.Request.Context(), c.Param("id"), c.Param("module_id"), c.Param("activity_id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "activity deleted"})
}
