package settings_models

import (
	"time"

	"github.com/google/uuid"
)

// Setting is one key-value entry scoped to a user, a project and a
// category (typically a DCC tool name). The composite unique index is
// the authoritative guard against duplicate tuples.
type Setting struct {
	ID          uuid.UUID `json:"id"          gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `json:"userId"      gorm:"type:uuid;not null;uniqueIndex:uq_setting_tuple;index"`
	ProjectID   uuid.UUID `json:"projectId"   gorm:"type:uuid;not null;uniqueIndex:uq_setting_tuple;index"`
	Category    string    `json:"category"    gorm:"not null;uniqueIndex:uq_setting_tuple"`
	Key         string    `json:"key"         gorm:"not null;uniqueIndex:uq_setting_tuple"`
	Value       string    `json:"value"       gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Setting) TableName() string {
	return "settings"
}
