package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID  `json:"id"        gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `json:"userId"    gorm:"type:uuid;column:user_id;index"`
	ProjectID *uuid.UUID `json:"projectId" gorm:"type:uuid;column:project_id;index"`
	Message   string     `json:"message"   gorm:"column:message"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
