package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ailtonganem/Lara/internal/services"
)

type ContentHandler struct {
	contentService *services.ContentService
	scoringService *services.ScoringService
}

func NewContentHandler(contentService *services.ContentService, scoringService *services.ScoringService) *ContentHandler {
	return &ContentHandler{contentService: contentService, scoringService: scoringService}
}

// ListSubjects godoc
// @Summary      List subjects
// @Description  All subjects ordered by display order; empty list on a read fault
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Subject
// @Router       /api/v1/subjects [get]
func (h *ContentHandler) ListSubjects(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.ListSubjects(c.Request.Context()))
}

// ListModules godoc
// @Summary      List modules of a subject
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Success      200 {array} Module
// @Router       /api/v1/subjects/{id}/modules [get]
func (h *ContentHandler) ListModules(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.ListModules(c.Request.Context(), c.Param("id")))
}

// ListActivities godoc
// @Summary      List activities of a module
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Success      200 {array} Activity
// @Router       /api/v1/subjects/{id}/modules/{module_id}/activities [get]
func (h *ContentHandler) ListActivities(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.ListActivities(c.Request.Context(), c.Param("id"), c.Param("module_id")))
}

// GetActivity godoc
// @Summary      Get one activity with its content or questions
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        activity_id path string true "Activity ID"
// @Success      200 {object} Activity
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/subjects/{id}/modules/{module_id}/activities/{activity_id} [get]
func (h *ContentHandler) GetActivity(c *gin.Context) {
	activity, err := h.contentService.GetActivity(c.Request.Context(), c.Param("id"), c.Param("module_id"), c.Param("activity_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, activity)
}

type SubmitQuizRequest struct {
	// Selections maps question position to the chosen option index.
	// Questions absent from the map count as unanswered.
	Selections map[int]int `json:"selections"`
}

// SubmitQuiz godoc
// @Summary      Submit quiz answers
// @Description  Grades the submission and credits correct answers to the student's score
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Subject ID"
// @Param        module_id path string true "Module ID"
// @Param        activity_id path string true "Activity ID"
// @Param        request body SubmitQuizRequest true "Selected option per question"
// @Success      200 {object} services.QuizResult
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/subjects/{id}/modules/{module_id}/activities/{activity_id}/submit [post]
func (h *ContentHandler) SubmitQuiz(c *gin.Context) {
	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	activity, err := h.contentService.GetActivity(c.Request.Context(), c.Param("id"), c.Param("module_id"), c.Param("activity_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	result, err := h.scoringService.Submit(c.Request.Context(), c.GetString("user_id"), activity, req.Selections)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
