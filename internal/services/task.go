package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/apperrors"
	"github.com/sumit03062/Task-Tracker/internal/models"
)

type TaskService struct {
	db *gorm.DB
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{db: db}
}

// TaskPatch is a partial update. Nil text fields, and fields that trim
// down to the empty string, leave the stored value unchanged. A nil
// Status leaves both the status and the completion stamp alone.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *models.TaskStatus
}

func (s *TaskService) Create(userID, projectID uint, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, apperrors.InvalidInput("title is required")
	}

	if description == "" {
		return nil, apperrors.InvalidInput("description is required")
	}

	var task *models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := projectForOwner(tx, userID, projectID); err != nil {
			return err
		}

		task = &models.Task{
			Title:       title,
			Description: description,
			Status:      models.StatusTodo,
			ProjectID:   projectID,
		}

		if err := tx.Create(task).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Update(userID, taskID uint, patch TaskPatch) (*models.Task, error) {
	var updated *models.Task

	err := s.db.Transaction(func(tx *gorm.DB) error {
		task, err := taskForOwner(tx, userID, taskID)

		if err != nil {
			return err
		}

		if title := trimmed(patch.Title); title != "" {
			task.Title = title
		}

		if description := trimmed(patch.Description); description != "" {
			task.Description = description
		}

		if patch.Status != nil && *patch.Status != task.Status {
			next := *patch.Status

			if !next.Valid() {
				return apperrors.InvalidInput("invalid task status")
			}

			// Entering COMPLETED stamps the task; leaving COMPLETED
			// clears the stamp. Every other transition keeps it as is.
			if next == models.StatusCompleted {
				now := time.Now()
				task.CompletedAt = &now
			} else if task.Status == models.StatusCompleted {
				task.CompletedAt = nil
			}

			task.Status = next
		}

		if err := tx.Save(task).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		updated = task
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) Delete(userID, taskID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		task, err := taskForOwner(tx, userID, taskID)

		if err != nil {
			return err
		}

		if err := tx.Delete(task).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		return nil
	})
}

// List returns every task across all projects the user owns.
func (s *TaskService) List(userID uint) ([]models.Task, error) {
	var tasks []models.Task

	err := s.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("projects.owner_id = ?", userID).
		Order("tasks.created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	return tasks, nil
}

func (s *TaskService) ListByProject(userID, projectID uint) ([]models.Task, error) {
	if _, err := projectForOwner(s.db, userID, projectID); err != nil {
		return nil, err
	}

	var tasks []models.Task

	err := s.db.
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error

	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	return tasks, nil
}
