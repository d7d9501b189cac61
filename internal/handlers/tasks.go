package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/classtrack-dev/classtrack/db"
	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/classtrack-dev/classtrack/internal/authz"
	"github.com/classtrack-dev/classtrack/internal/models"
	"github.com/classtrack-dev/classtrack/internal/types"
	"github.com/classtrack-dev/classtrack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateTaskRequest struct {
	UserID      string  `json:"userId"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"dueDate"`
	Progress    string  `json:"progress" binding:"omitempty,oneof=not-started in-progress completed"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"dueDate"`
	Progress    *string `json:"progress" binding:"omitempty,oneof=not-started in-progress completed"`
}

var taskFieldMessages = map[string]string{
	"Title":    "Title is required.",
	"Progress": "Progress must be one of: not-started, in-progress, completed.",
}

// Due dates arrive as bare ISO dates from the form; full timestamps are
// accepted too and truncated to the day.
func parseDueDate(value string) (*datatypes.Date, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if parsed, err := time.Parse(layout, value); err == nil {
			date := datatypes.Date(parsed)
			return &date, nil
		}
	}
	return nil, apperrors.Validation("Due date must be a valid date.")
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	if title == "" {
		return "", apperrors.Validation("Title is required.")
	}
	// Limits count characters, not bytes; multibyte titles stay valid.
	if utf8.RuneCountInString(title) > 200 {
		return "", apperrors.Validation("Title cannot exceed 200 characters.")
	}
	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)

	if utf8.RuneCountInString(description) > 1000 {
		return "", apperrors.Validation("Description cannot exceed 1000 characters.")
	}
	return description, nil
}

func ListTasks(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.RespondError(ctx, apperrors.Unauthorized("User not authenticated."))
		return
	}

	query := authz.ScopedTasks(db.DB, currentUser)
	query = authz.FilterProgress(query, ctx.Query("progress"))

	var tasks []models.Task

	if err := query.Preload("User").Find(&tasks).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(tasks),
		"tasks":   types.NewTaskResponses(tasks),
	})
}

func CreateTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.RespondError(ctx, apperrors.Unauthorized("User not authenticated."))
		return
	}

	var req CreateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondError(ctx, bindingError(err, taskFieldMessages))
		return
	}

	if !authz.CanCreateFor(req.UserID, currentUser) {
		utils.RespondError(ctx, apperrors.Forbidden("Forbidden: You can only create tasks for yourself."))
		return
	}

	title, err := validateTitle(req.Title)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	description, err := validateDescription(req.Description)
	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	task := models.Task{
		UserID:      currentUser.ID,
		Title:       title,
		Description: description,
		Progress:    types.ProgressNotStarted,
	}

	if req.DueDate != nil && *req.DueDate != "" {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		task.DueDate = dueDate
	}

	if req.Progress != "" {
		task.Progress = req.Progress
	}

	if err := db.DB.Create(&task).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	task.User = models.User{
		ID:    currentUser.ID,
		Email: currentUser.Email,
		Role:  currentUser.Role,
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Task created successfully.",
		"task":    types.NewTaskResponse(task),
	})
}

func UpdateTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.RespondError(ctx, apperrors.Unauthorized("User not authenticated."))
		return
	}

	var task models.Task
	taskID := ctx.Param("id")

	if err := db.DB.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(ctx, apperrors.NotFound("Task not found."))
		} else {
			utils.RespondError(ctx, err)
		}
		return
	}

	if !authz.CanModify(task, currentUser) {
		utils.RespondError(ctx, apperrors.Forbidden("Forbidden: You can only modify tasks that you created."))
		return
	}

	var req UpdateTaskRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondError(ctx, bindingError(err, taskFieldMessages))
		return
	}

	updates := make(map[string]interface{})

	if req.Title != nil {
		title, err := validateTitle(*req.Title)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		updates["title"] = title
	}

	if req.Description != nil {
		description, err := validateDescription(*req.Description)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		updates["description"] = description
	}

	if req.DueDate != nil {
		dueDate, err := parseDueDate(*req.DueDate)
		if err != nil {
			utils.RespondError(ctx, err)
			return
		}
		updates["due_date"] = dueDate
	}

	if req.Progress != nil {
		updates["progress"] = *req.Progress
	}

	if len(updates) > 0 {
		if err := db.DB.Model(&task).Updates(updates).Error; err != nil {
			utils.RespondError(ctx, err)
			return
		}
	}

	if err := db.DB.Preload("User").Where("id = ?", task.ID).First(&task).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task updated successfully.",
		"task":    types.NewTaskResponse(task),
	})
}

func DeleteTask(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.RespondError(ctx, apperrors.Unauthorized("User not authenticated."))
		return
	}

	var task models.Task
	taskID := ctx.Param("id")

	if err := db.DB.Where("id = ?", taskID).First(&task).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(ctx, apperrors.NotFound("Task not found."))
		} else {
			utils.RespondError(ctx, err)
		}
		return
	}

	if !authz.CanModify(task, currentUser) {
		utils.RespondError(ctx, apperrors.Forbidden("Forbidden: You can only modify tasks that you created."))
		return
	}

	if err := db.DB.Delete(&task).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Task deleted successfully.",
	})
}
