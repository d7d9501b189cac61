// Package authz holds the visibility and mutation rules for tasks, kept out
// of the handlers so they can be exercised directly against a database.
package authz

import (
	"github.com/classtrack-dev/classtrack/internal/middleware"
	"github.com/classtrack-dev/classtrack/internal/models"
	"github.com/classtrack-dev/classtrack/internal/types"
	"gorm.io/gorm"
)

// ScopedTasks returns a query limited to the tasks the user may read,
// newest first. Students see their own tasks; teachers additionally see the
// tasks of students assigned to them.
func ScopedTasks(db *gorm.DB, user middleware.AuthenticatedUser) *gorm.DB {
	query := db.Model(&models.Task{})

	if user.Role == types.RoleTeacher {
		studentIDs := db.Model(&models.User{}).
			Select("id").
			Where("teacher_id = ? AND role = ?", user.ID, types.RoleStudent)

		query = query.Where("user_id = ? OR user_id IN (?)", user.ID, studentIDs)
	} else {
		query = query.Where("user_id = ?", user.ID)
	}

	return query.Order("created_at DESC")
}

// FilterProgress narrows the scope by an exact progress match. Unknown
// values leave the scope untouched rather than erroring.
func FilterProgress(query *gorm.DB, progress string) *gorm.DB {
	if types.ValidProgress(progress) {
		query = query.Where("progress = ?", progress)
	}
	return query
}

// CanModify reports whether the user may update or delete the task. Only the
// owner may, regardless of role: an assigned teacher has read visibility
// into a student's tasks but no write access.
func CanModify(task models.Task, user middleware.AuthenticatedUser) bool {
	return task.UserID == user.ID
}

// CanCreateFor reports whether the user may create a task owned by ownerID.
// An empty ownerID defaults to the caller and is always permitted.
func CanCreateFor(ownerID string, user middleware.AuthenticatedUser) bool {
	return ownerID == "" || ownerID == user.ID
}
