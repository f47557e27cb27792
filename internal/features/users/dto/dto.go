package users_dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email    string `json:"email"    form:"email"    binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=8"`
	FullName string `json:"fullName" form:"full_name"`
	Section  string `json:"section"  form:"section"`
	Unit     string `json:"unit"     form:"unit"`
}

type LoginRequestDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponseDTO struct {
	UserID   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
	Token    string    `json:"token"`
}

type UpdateProfileRequestDTO struct {
	FullName *string `json:"fullName"`
	Section  *string `json:"section"`
	Unit     *string `json:"unit"`
}

type UserProfileResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Section   string    `json:"section"`
	Unit      string    `json:"unit"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
