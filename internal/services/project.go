package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/apperrors"
	"github.com/sumit03062/Task-Tracker/internal/models"
)

// MaxProjectsPerUser caps how many projects a single user may own.
const MaxProjectsPerUser = 4

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

// ProjectPatch is a partial update. Nil fields, and fields that trim
// down to the empty string, leave the stored value unchanged.
type ProjectPatch struct {
	Title       *string
	Description *string
}

func (s *ProjectService) Create(userID uint, title, description string) (*models.Project, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, apperrors.InvalidInput("title is required")
	}

	if description == "" {
		return nil, apperrors.InvalidInput("description is required")
	}

	var project *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Project{}).Where("owner_id = ?", userID).Count(&count).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		if count >= MaxProjectsPerUser {
			return apperrors.LimitExceeded("you can only have up to 4 projects")
		}

		project = &models.Project{
			Title:       title,
			Description: description,
			OwnerID:     userID,
		}

		if err := tx.Create(project).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return project, nil
}

func (s *ProjectService) Update(userID, projectID uint, patch ProjectPatch) (*models.Project, error) {
	var updated *models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		project, err := projectForOwner(tx, userID, projectID)

		if err != nil {
			return err
		}

		if title := trimmed(patch.Title); title != "" {
			project.Title = title
		}

		if description := trimmed(patch.Description); description != "" {
			project.Description = description
		}

		if err := tx.Save(project).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		updated = project
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the project and every task that references it, in one
// transaction so no parentless task is ever observable.
func (s *ProjectService) Delete(userID, projectID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		project, err := projectForOwner(tx, userID, projectID)

		if err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		if err := tx.Delete(project).Error; err != nil {
			return apperrors.Unexpected(err)
		}

		return nil
	})
}

func (s *ProjectService) List(userID uint) ([]models.Project, error) {
	var projects []models.Project

	err := s.db.
		Where("owner_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error

	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	return projects, nil
}
