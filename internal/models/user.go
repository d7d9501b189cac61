package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Email        string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Role         string  `gorm:"not null"`
	TeacherID    *string `gorm:"type:uuid;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Teacher  *User  `gorm:"foreignKey:TeacherID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Students []User `gorm:"foreignKey:TeacherID"`
	Tasks    []Task `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
