package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/models"
)

// newTestDB opens a fresh in-memory database per test. The shared
// cache keeps the database alive across the connections in gorm's
// pool; the per-test name keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	return database
}

func createTestUser(t *testing.T, database *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		Country:      "NL",
		PasswordHash: "irrelevant",
	}
	require.NoError(t, database.Create(user).Error)

	return user
}

func createTestProject(t *testing.T, database *gorm.DB, ownerID uint, title string) *models.Project {
	t.Helper()

	project := &models.Project{
		Title:       title,
		Description: "a project",
		OwnerID:     ownerID,
	}
	require.NoError(t, database.Create(project).Error)

	return project
}

func createTestTask(t *testing.T, database *gorm.DB, projectID uint, title string) *models.Task {
	t.Helper()

	task := &models.Task{
		Title:       title,
		Description: "a task",
		Status:      models.StatusTodo,
		ProjectID:   projectID,
	}
	require.NoError(t, database.Create(task).Error)

	return task
}

func strPtr(s string) *string {
	return &s
}

func statusPtr(s models.TaskStatus) *models.TaskStatus {
	return &s
}

// backdate shifts a record's created_at so that listing order is
// deterministic even when rows are inserted within the same tick.
func backdate(t *testing.T, database *gorm.DB, model interface{}, id uint, ago time.Duration) {
	t.Helper()

	err := database.Model(model).
		Where("id = ?", id).
		Update("created_at", time.Now().Add(-ago)).Error
	require.NoError(t, err)
}
