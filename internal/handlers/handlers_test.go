package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sumit03062/Task-Tracker/internal/auth"
	"github.com/sumit03062/Task-Tracker/internal/handlers"
	"github.com/sumit03062/Task-Tracker/internal/models"
	"github.com/sumit03062/Task-Tracker/internal/router"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "handler-test-secret")
	require.NoError(t, auth.InitJWTSecret())

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(&models.User{}, &models.Project{}, &models.Task{}))

	return router.NewRouter(database)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return body
}

func registerUser(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test User",
		"email":    email,
		"password": "supersecret",
		"country":  "NL",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user handlers.UserResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["user"], &user))
	require.NotEmpty(t, user.Token)

	return user.Token
}

func createProject(t *testing.T, r *gin.Engine, token, title string) handlers.ProjectResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{
		"title":       title,
		"description": "a project",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var project handlers.ProjectResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["project"], &project))

	return project
}

func createTask(t *testing.T, r *gin.Engine, token string, projectID uint, title string) handlers.TaskResponse {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/api/tasks", token, gin.H{
		"title":       title,
		"description": "a task",
		"project_id":  projectID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var task handlers.TaskResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["task"], &task))

	return task
}

func TestRegisterLoginProfileFlow(t *testing.T) {
	r := newTestRouter(t)

	token := registerUser(t, r, "alice@example.com")

	// Duplicate registration is rejected.
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Imposter",
		"email":    "alice@example.com",
		"password": "otherpassword",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Login with the right credentials.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "supersecret",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Login with the wrong password.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "alice@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Profile requires a token.
	w = doJSON(t, r, http.MethodGet, "/api/auth/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/auth/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var user handlers.UserResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["user"], &user))
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "NL", user.Country)
}

func TestProjectEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "alice@example.com")

	project := createProject(t, r, token, "First")

	// The cap surfaces as a 400 on the fifth create.
	for _, title := range []string{"Second", "Third", "Fourth"} {
		createProject(t, r, token, title)
	}

	w := doJSON(t, r, http.MethodPost, "/api/projects", token, gin.H{
		"title":       "Fifth",
		"description": "one too many",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Partial update: empty title leaves the old one in place.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), token, gin.H{
		"title":       "",
		"description": "rewritten",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated handlers.ProjectResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["project"], &updated))
	assert.Equal(t, "First", updated.Title)
	assert.Equal(t, "rewritten", updated.Description)

	// Unknown project is a 404, someone else's is a 403.
	w = doJSON(t, r, http.MethodPut, "/api/projects/9999", token, gin.H{"title": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	otherToken := registerUser(t, r, "bob@example.com")
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/projects/%d", project.ID), otherToken, gin.H{"title": "hijack"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projects []handlers.ProjectResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["projects"], &projects))
	assert.Len(t, projects, 3)
}

func TestTaskEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := registerUser(t, r, "alice@example.com")
	project := createProject(t, r, token, "Project")

	task := createTask(t, r, token, project.ID, "Task")
	assert.Equal(t, models.StatusTodo, task.Status)
	assert.Nil(t, task.CompletedAt)

	// Completing stamps the task.
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), token, gin.H{
		"status": "COMPLETED",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var completed handlers.TaskResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["task"], &completed))
	assert.Equal(t, models.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	// Reopening clears the stamp.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), token, gin.H{
		"status": "IN_PROGRESS",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var reopened handlers.TaskResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["task"], &reopened))
	assert.Equal(t, models.StatusInProgress, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)

	// An unknown status is rejected.
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/tasks/%d", task.ID), token, gin.H{
		"status": "DONE",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Another user cannot touch the task, and it survives the attempt.
	otherToken := registerUser(t, r, "bob@example.com")

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/tasks/%d", task.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks/%d", project.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []handlers.TaskResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["tasks"], &tasks))
	require.Len(t, tasks, 1)

	// The project listing is gated too.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/tasks/%d", project.ID), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Deleting the project sweeps its tasks out of the flat listing.
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/projects/%d", project.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tasks", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decodeBody(t, w)["tasks"], &tasks))
	assert.Empty(t, tasks)
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
