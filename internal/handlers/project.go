package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumit03062/Task-Tracker/internal/models"
	"github.com/sumit03062/Task-Tracker/internal/services"
	"github.com/sumit03062/Task-Tracker/internal/utils"
)

type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// UpdateProjectRequest carries a partial update; absent fields leave
// the stored values unchanged.
type UpdateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ProjectResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	OwnerID     uint      `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

func (h *ProjectHandler) Create(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	project, err := h.projects.Create(userID, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "project": projectResponse(project)})
}

func (h *ProjectHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	projects, err := h.projects.List(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, projectResponse(&projects[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "projects": response})
}

func (h *ProjectHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	projectID, err := utils.ParseIDParam(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	project, err := h.projects.Update(userID, projectID, services.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "project": projectResponse(project)})
}

func (h *ProjectHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	projectID, err := utils.ParseIDParam(ctx, "project_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.projects.Delete(userID, projectID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project removed"})
}

func projectResponse(project *models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Title:       project.Title,
		Description: project.Description,
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
	}
}
