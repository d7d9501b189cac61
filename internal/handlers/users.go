package handlers

import (
	"net/http"

	"github.com/classtrack-dev/classtrack/db"
	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/classtrack-dev/classtrack/internal/models"
	"github.com/classtrack-dev/classtrack/internal/types"
	"github.com/classtrack-dev/classtrack/internal/utils"
	"github.com/gin-gonic/gin"
)

// ListTeachers is public: the signup page needs the teacher dropdown before
// any account exists.
func ListTeachers(ctx *gin.Context) {
	var teachers []models.User

	err := db.DB.Where("role = ?", types.RoleTeacher).
		Order("email ASC").
		Find(&teachers).Error

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	summaries := make([]types.TeacherSummary, 0, len(teachers))

	for _, teacher := range teachers {
		summaries = append(summaries, types.TeacherSummary{
			ID:    teacher.ID,
			Email: teacher.Email,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"teachers": summaries,
	})
}

func Me(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		utils.RespondError(ctx, apperrors.Unauthorized("User not authenticated."))
		return
	}

	var user models.User

	query := db.DB
	if currentUser.Role == types.RoleStudent {
		query = query.Preload("Teacher")
	}

	if err := query.Where("id = ?", currentUser.ID).First(&user).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    types.NewUserResponse(user),
	})
}
