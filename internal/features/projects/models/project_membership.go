package projects_models

import (
	"time"

	projects_enums "artconf/internal/features/projects/enums"

	"github.com/google/uuid"
)

type ProjectMembership struct {
	ID        uuid.UUID                  `json:"id"        gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID                  `json:"userId"    gorm:"type:uuid;column:user_id;uniqueIndex:uq_membership_user_project"`
	ProjectID uuid.UUID                  `json:"projectId" gorm:"type:uuid;column:project_id;uniqueIndex:uq_membership_user_project"`
	Role      projects_enums.ProjectRole `json:"role"      gorm:"column:role"`
	CreatedAt time.Time                  `json:"createdAt" gorm:"column:created_at"`
}

func (ProjectMembership) TableName() string {
	return "project_memberships"
}
