package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/classtrack-dev/classtrack/db"
	"github.com/classtrack-dev/classtrack/internal/apperrors"
	"github.com/classtrack-dev/classtrack/internal/auth"
	"github.com/classtrack-dev/classtrack/internal/logger"
	"github.com/classtrack-dev/classtrack/internal/models"
	"github.com/classtrack-dev/classtrack/internal/types"
	"github.com/classtrack-dev/classtrack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SignupRequest struct {
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required,oneof=student teacher"`
	TeacherID *string `json:"teacherId" binding:"omitempty,uuid4"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

var signupFieldMessages = map[string]string{
	"Email":     "Please provide a valid email address.",
	"Password":  "Password must be at least 6 characters long.",
	"Role":      `Role must be either "student" or "teacher".`,
	"TeacherID": "Teacher ID must be a valid ID.",
}

var loginFieldMessages = map[string]string{
	"Email":    "Please provide a valid email address.",
	"Password": "Password is required.",
}

func Signup(ctx *gin.Context) {
	var req SignupRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondError(ctx, bindingError(err, signupFieldMessages))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var teacher *models.User

	if req.Role == types.RoleStudent {
		if req.TeacherID == nil {
			utils.RespondError(ctx, apperrors.Validation("Students must have a valid teacherId."))
			return
		}

		var t models.User

		if err := db.DB.Where("id = ?", *req.TeacherID).First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondError(ctx, apperrors.Validation("Teacher not found. Please provide a valid teacherId."))
			} else {
				utils.RespondError(ctx, err)
			}
			return
		}

		if t.Role != types.RoleTeacher {
			utils.RespondError(ctx, apperrors.Validation("The provided teacherId does not belong to a teacher."))
			return
		}

		teacher = &t
	}

	var existingUser models.User

	err := db.DB.Where("email = ?", req.Email).First(&existingUser).Error

	if err == nil {
		utils.RespondError(ctx, apperrors.DuplicateEmail("Email already registered. Please use a different email or login."))
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(ctx, err)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	newUser := models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Role:         req.Role,
	}

	// A teacherId sent alongside role=teacher is dropped, not stored.
	if req.Role == types.RoleStudent {
		newUser.TeacherID = req.TeacherID
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		utils.RespondError(ctx, err)
		return
	}

	token, err := auth.GenerateJWT(newUser.ID, newUser.Role)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	newUser.Teacher = teacher
	logger.Log.Info("user signed up", "id", newUser.ID, "role", newUser.Role)

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully.",
		"token":   token,
		"user":    types.NewUserResponse(newUser),
	})
}

func Login(ctx *gin.Context) {
	var req LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.RespondError(ctx, bindingError(err, loginFieldMessages))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	// Unknown email and wrong password produce the same response so callers
	// cannot probe which addresses are registered.
	invalidCredentials := apperrors.InvalidCredentials("Invalid email or password.")

	var user models.User

	if err := db.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(ctx, invalidCredentials)
		} else {
			utils.RespondError(ctx, err)
		}
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		utils.RespondError(ctx, invalidCredentials)
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Role)

	if err != nil {
		utils.RespondError(ctx, err)
		return
	}

	if user.Role == types.RoleStudent && user.TeacherID != nil {
		var teacher models.User

		if err := db.DB.Where("id = ?", *user.TeacherID).First(&teacher).Error; err == nil {
			user.Teacher = &teacher
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful.",
		"token":   token,
		"user":    types.NewUserResponse(user),
	})
}
