package users_models

import (
	"time"

	"github.com/google/uuid"
)

// SecretKey holds the HMAC material used to sign access tokens.
// A single row is generated on first use and reused afterwards.
type SecretKey struct {
	ID        uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	Key       string    `json:"-"         gorm:"column:key"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (SecretKey) TableName() string {
	return "secret_keys"
}
