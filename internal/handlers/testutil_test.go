package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/classtrack-dev/classtrack/db"
	"github.com/classtrack-dev/classtrack/internal/auth"
	"github.com/classtrack-dev/classtrack/internal/models"
	"github.com/classtrack-dev/classtrack/internal/router"
	"github.com/classtrack-dev/classtrack/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testPassword = "password123"

// setupServer gives each test a fresh in-memory database and router, so
// rate-limit counters and records never leak between cases.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	t.Setenv("JWT_SECRET", "classtrack-test-secret")
	require.NoError(t, auth.InitJWTSecret())

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db.DB = gdb
	require.NoError(t, db.MigrateDatabase())

	return router.NewRouter()
}

func performRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "body: %s", rec.Body.String())
	return body
}

// signupUser registers an account through the API and returns its token and
// sanitized user payload.
func signupUser(t *testing.T, r http.Handler, email, role, teacherID string) (string, map[string]interface{}) {
	t.Helper()

	body := gin.H{"email": email, "password": testPassword, "role": role}
	if teacherID != "" {
		body["teacherId"] = teacherID
	}

	rec := performRequest(t, r, http.MethodPost, "/api/auth/signup", "", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	resp := decodeBody(t, rec)
	token, ok := resp["token"].(string)
	require.True(t, ok, "signup response has no token")
	user, ok := resp["user"].(map[string]interface{})
	require.True(t, ok, "signup response has no user")
	return token, user
}

func createTaskViaAPI(t *testing.T, r http.Handler, token string, body gin.H) map[string]interface{} {
	t.Helper()

	rec := performRequest(t, r, http.MethodPost, "/api/tasks", token, body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	task, ok := decodeBody(t, rec)["task"].(map[string]interface{})
	require.True(t, ok, "create response has no task")
	return task
}

func listTaskTitles(t *testing.T, r http.Handler, token, query string) []string {
	t.Helper()

	rec := performRequest(t, r, http.MethodGet, "/api/tasks"+query, token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	tasks, ok := decodeBody(t, rec)["tasks"].([]interface{})
	require.True(t, ok, "list response has no tasks")

	titles := make([]string, 0, len(tasks))
	for _, raw := range tasks {
		task := raw.(map[string]interface{})
		titles = append(titles, task["title"].(string))
	}
	return titles
}

// seedTask writes straight to the store when a test needs full control over
// creation timestamps.
func seedTask(t *testing.T, userID, title string, createdAt time.Time) models.Task {
	t.Helper()

	task := models.Task{
		UserID:    userID,
		Title:     title,
		Progress:  types.ProgressNotStarted,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, db.DB.Create(&task).Error)
	return task
}
