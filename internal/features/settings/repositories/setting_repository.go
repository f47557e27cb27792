package settings_repositories

import (
	"errors"
	"time"

	settings_models "artconf/internal/features/settings/models"
	"artconf/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingRepository struct{}

func (r *SettingRepository) CreateSetting(setting *settings_models.Setting) error {
	if setting.ID == uuid.Nil {
		setting.ID = uuid.New()
	}

	now := time.Now().UTC()
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}
	if setting.UpdatedAt.IsZero() {
		setting.UpdatedAt = now
	}

	return storage.GetDb().Create(setting).Error
}

// GetUserSettings returns the user's settings inside a project, ordered
// by category then key. Category filters when non-empty.
func (r *SettingRepository) GetUserSettings(
	userID uuid.UUID,
	projectID uuid.UUID,
	category string,
) ([]*settings_models.Setting, error) {
	query := storage.GetDb().
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("category ASC, key ASC")

	if category != "" {
		query = query.Where("category = ?", category)
	}

	var settings []*settings_models.Setting
	if err := query.Find(&settings).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// GetSettingByIDForUser returns the setting only when it belongs to the
// user, nil otherwise.
func (r *SettingRepository) GetSettingByIDForUser(
	settingID uuid.UUID,
	userID uuid.UUID,
) (*settings_models.Setting, error) {
	var setting settings_models.Setting

	err := storage.GetDb().
		Where("id = ? AND user_id = ?", settingID, userID).
		First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &setting, nil
}

// SettingExists reports whether the (user, project, category, key) tuple
// is already taken.
func (r *SettingRepository) SettingExists(
	userID uuid.UUID,
	projectID uuid.UUID,
	category string,
	key string,
) (bool, error) {
	var count int64

	err := storage.GetDb().Model(&settings_models.Setting{}).
		Where("user_id = ? AND project_id = ? AND category = ? AND key = ?",
			userID, projectID, category, key).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *SettingRepository) UpdateSettingFields(settingID uuid.UUID, fields map[string]any) error {
	fields["updated_at"] = time.Now().UTC()

	return storage.GetDb().Model(&settings_models.Setting{}).
		Where("id = ?", settingID).
		Updates(fields).Error
}

func (r *SettingRepository) DeleteSetting(settingID uuid.UUID) error {
	return storage.GetDb().
		Where("id = ?", settingID).
		Delete(&settings_models.Setting{}).Error
}
