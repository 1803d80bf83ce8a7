package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumit03062/Task-Tracker/internal/models"
	"github.com/sumit03062/Task-Tracker/internal/services"
	"github.com/sumit03062/Task-Tracker/internal/utils"
)

type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	ProjectID   uint   `json:"project_id" binding:"required"`
}

// UpdateTaskRequest carries a partial update; absent fields leave the
// stored values unchanged. Status must be one of the four lifecycle
// states when present.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

type TaskResponse struct {
	ID          uint              `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	ProjectID   uint              `json:"project_id"`
	CreatedAt   time.Time         `json:"created_at"`
	CompletedAt *time.Time        `json:"completed_at"`
}

type TaskHandler struct {
	tasks *services.TaskService
}

func NewTaskHandler(tasks *services.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) Create(ctx *gin.Context) {
	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	task, err := h.tasks.Create(userID, req.ProjectID, req.Title, req.Description)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": true, "task": taskResponse(task)})
}

// List returns every task across all projects the user owns.
func (h *TaskHandler) List(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	tasks, err := h.tasks.List(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": taskResponses(tasks)})
}

func (h *TaskHandler) ListByProject(ctx *gin.Context) {
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

	tasks, err := h.tasks.ListByProject(userID, projectID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": taskResponses(tasks)})
}

func (h *TaskHandler) Update(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var req UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request"})
		return
	}

	patch := services.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}

	if req.Status != nil {
		status := models.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.tasks.Update(userID, taskID, patch)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "task": taskResponse(task)})
}

func (h *TaskHandler) Delete(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not authenticated"})
		return
	}

	taskID, err := utils.ParseIDParam(ctx, "task_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.tasks.Delete(userID, taskID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Task removed"})
}

func taskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		CompletedAt: task.CompletedAt,
	}
}

func taskResponses(tasks []models.Task) []TaskResponse {
	response := make([]TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, taskResponse(&tasks[i]))
	}

	return response
}
