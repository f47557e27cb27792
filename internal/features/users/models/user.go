package users_models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	Username       string    `json:"username"  gorm:"column:username;uniqueIndex"`
	Email          string    `json:"email"     gorm:"column:email;uniqueIndex"`
	HashedPassword *string   `json:"-"         gorm:"column:hashed_password"`
	FullName       string    `json:"fullName"  gorm:"column:full_name"`
	Section        string    `json:"section"   gorm:"column:section"`
	Unit           string    `json:"unit"      gorm:"column:unit"`
	IsActive       bool      `json:"isActive"  gorm:"column:is_active"`
	CreatedAt      time.Time `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt      time.Time `json:"updatedAt" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) HasPassword() bool {
	return u.HashedPassword != nil && *u.HashedPassword != ""
}
