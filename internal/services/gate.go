package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/apperrors"
	"github.com/sumit03062/Task-Tracker/internal/models"
)

// projectForOwner resolves a project and checks that userID owns it.
// A missing project reports not-found and a project owned by someone
// else reports forbidden; the two are never conflated.
func projectForOwner(tx *gorm.DB, userID, projectID uint) (*models.Project, error) {
	var project models.Project

	if err := tx.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("project")
		}
		return nil, apperrors.Unexpected(err)
	}

	if project.OwnerID != userID {
		return nil, apperrors.Forbidden("project does not belong to you")
	}

	return &project, nil
}

// taskForOwner resolves a task and gate-checks it through its parent
// project. A task whose parent project is gone reads as not-found, the
// same answer the project lookup gives.
func taskForOwner(tx *gorm.DB, userID, taskID uint) (*models.Task, error) {
	var task models.Task

	if err := tx.First(&task, taskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task")
		}
		return nil, apperrors.Unexpected(err)
	}

	if _, err := projectForOwner(tx, userID, task.ProjectID); err != nil {
		return nil, err
	}

	return &task, nil
}

// trimmed dereferences an optional patch field. Absent fields and
// fields that are empty after trimming both mean "leave unchanged".
func trimmed(field *string) string {
	if field == nil {
		return ""
	}
	return strings.TrimSpace(*field)
}
