package projects_dto

import (
	"time"

	projects_enums "artconf/internal/features/projects/enums"

	"github.com/google/uuid"
)

type CreateProjectRequestDTO struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Description string `json:"description"`
}

type UpdateProjectRequestDTO struct {
	Name        *string `json:"name"        binding:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID                   `json:"id"          gorm:"column:id"`
	Name        string                      `json:"name"        gorm:"column:name"`
	Description string                      `json:"description" gorm:"column:description"`
	CreatedBy   uuid.UUID                   `json:"createdBy"   gorm:"column:created_by"`
	IsActive    bool                        `json:"isActive"    gorm:"column:is_active"`
	CreatedAt   time.Time                   `json:"createdAt"   gorm:"column:created_at"`
	UserRole    *projects_enums.ProjectRole `json:"userRole"    gorm:"column:user_role"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID                  `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID                  `json:"userId"    gorm:"column:user_id"`
	Username  string                     `json:"username"  gorm:"column:username"`
	Role      projects_enums.ProjectRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

type AddMemberRequestDTO struct {
	Username string                     `json:"username" binding:"required"`
	Role     projects_enums.ProjectRole `json:"role"     binding:"required"`
}

type UpdateMemberRoleRequestDTO struct {
	Role projects_enums.ProjectRole `json:"role" binding:"required"`
}
