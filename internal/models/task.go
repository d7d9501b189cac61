package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Task struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	UserID      string `gorm:"type:uuid;not null;index:idx_tasks_user_created,priority:1"`
	Title       string `gorm:"not null"`
	Description string
	DueDate     *datatypes.Date
	Progress    string    `gorm:"not null;default:not-started"`
	CreatedAt   time.Time `gorm:"index:idx_tasks_user_created,priority:2,sort:desc"`
	UpdatedAt   time.Time

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
