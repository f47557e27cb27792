package users_repositories

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	users_models "artconf/internal/features/users/models"
	"artconf/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SecretKeyRepository struct{}

// GetSecretKey returns the token signing secret, generating and
// persisting one on first call.
func (r *SecretKeyRepository) GetSecretKey() (string, error) {
	var secretKey users_models.SecretKey

	err := storage.GetDb().Order("created_at ASC").First(&secretKey).Error
	if err == nil {
		return secretKey.Key, nil
	}

	if err != gorm.ErrRecordNotFound {
		return "", fmt.Errorf("failed to load secret key: %w", err)
	}

	material := make([]byte, 64)
	if _, err := rand.Read(material); err != nil {
		return "", fmt.Errorf("failed to generate secret key: %w", err)
	}

	secretKey = users_models.SecretKey{
		ID:        uuid.New(),
		Key:       hex.EncodeToString(material),
		CreatedAt: time.Now().UTC(),
	}

	if err := storage.GetDb().Create(&secretKey).Error; err != nil {
		return "", fmt.Errorf("failed to store secret key: %w", err)
	}

	return secretKey.Key, nil
}
