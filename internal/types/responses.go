package types

import (
	"time"

	"github.com/classtrack-dev/classtrack/internal/models"
)

type TeacherSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	TeacherID *string         `json:"teacherId,omitempty"`
	Teacher   *TeacherSummary `json:"teacher,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type TaskOwner struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TaskResponse struct {
	ID          string    `json:"id"`
	User        TaskOwner `json:"user"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     *string   `json:"dueDate"`
	Progress    string    `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewUserResponse strips the password hash and, when the teacher record is
// loaded, surfaces it as an id+email summary.
func NewUserResponse(user models.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		TeacherID: user.TeacherID,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.Teacher != nil {
		resp.Teacher = &TeacherSummary{
			ID:    user.Teacher.ID,
			Email: user.Teacher.Email,
		}
	}

	return resp
}

func NewTaskResponse(task models.Task) TaskResponse {
	var dueDate *string

	if task.DueDate != nil {
		formatted := time.Time(*task.DueDate).Format("2006-01-02")
		dueDate = &formatted
	}

	return TaskResponse{
		ID: task.ID,
		User: TaskOwner{
			ID:    task.User.ID,
			Email: task.User.Email,
			Role:  task.User.Role,
		},
		Title:       task.Title,
		Description: task.Description,
		DueDate:     dueDate,
		Progress:    task.Progress,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func NewTaskResponses(tasks []models.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))

	for _, task := range tasks {
		responses = append(responses, NewTaskResponse(task))
	}

	return responses
}
