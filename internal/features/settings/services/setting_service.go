package settings_services

import (
	"errors"
	"fmt"

	"artconf/internal/features/dcc"
	projects_services "artconf/internal/features/projects/services"
	settings_dto "artconf/internal/features/settings/dto"
	settings_models "artconf/internal/features/settings/models"
	settings_repositories "artconf/internal/features/settings/repositories"
	users_interfaces "artconf/internal/features/users/interfaces"
	users_models "artconf/internal/features/users/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SettingService struct {
	settingRepository *settings_repositories.SettingRepository
	projectService    *projects_services.ProjectService
	pluginRegistry    *dcc.Registry
	auditLogWriter    users_interfaces.AuditLogWriter
}

func (s *SettingService) SetAuditLogWriter(writer users_interfaces.AuditLogWriter) {
	s.auditLogWriter = writer
}

func (s *SettingService) CreateSetting(
	request *settings_dto.CreateSettingRequestDTO,
	user *users_models.User,
) (*settings_dto.SettingResponseDTO, error) {
	canAccess, _, err := s.projectService.CanUserAccessProject(request.ProjectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, ErrProjectAccessDenied
	}

	value := request.Value
	if plugin := s.pluginRegistry.GetPlugin(request.Category); plugin != nil {
		if !plugin.ValidateSetting(request.Key, value) {
			return nil, fmt.Errorf(
				"%w: invalid value for '%s' setting '%s'",
				ErrSettingRejected, request.Category, request.Key,
			)
		}

		value = plugin.TransformValue(request.Key, value)
	}

	exists, err := s.settingRepository.SettingExists(
		user.ID, request.ProjectID, request.Category, request.Key,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check setting existence: %w", err)
	}
	if exists {
		return nil, fmt.Errorf(
			"%w: category '%s', key '%s'",
			ErrSettingConflict, request.Category, request.Key,
		)
	}

	setting := &settings_models.Setting{
		UserID:      user.ID,
		ProjectID:   request.ProjectID,
		Category:    request.Category,
		Key:         request.Key,
		Value:       value,
		Description: request.Description,
	}

	if err := s.settingRepository.CreateSetting(setting); err != nil {
		// The unique index closes the race the pre-check cannot
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf(
				"%w: category '%s', key '%s'",
				ErrSettingConflict, request.Category, request.Key,
			)
		}
		return nil, fmt.Errorf("failed to create setting: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Setting created: %s/%s", setting.Category, setting.Key),
		&user.ID,
		&setting.ProjectID,
	)

	return settingToResponse(setting), nil
}

func (s *SettingService) GetUserSettings(
	projectID uuid.UUID,
	category string,
	user *users_models.User,
) (*settings_dto.ListSettingsResponseDTO, error) {
	canAccess, _, err := s.projectService.CanUserAccessProject(projectID, user)
	if err != nil {
		return nil, err
	}
	if !canAccess {
		return nil, projects_services.ErrProjectNotFound
	}

	settings, err := s.settingRepository.GetUserSettings(user.ID, projectID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settingsList := make([]settings_dto.SettingResponseDTO, len(settings))
	for i, setting := range settings {
		settingsList[i] = *settingToResponse(setting)
	}

	return &settings_dto.ListSettingsResponseDTO{
		Settings: settingsList,
	}, nil
}

func (s *SettingService) GetSetting(
	settingID uuid.UUID,
	user *users_models.User,
) (*settings_dto.SettingResponseDTO, error) {
	setting, err := s.settingRepository.GetSettingByIDForUser(settingID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	return settingToResponse(setting), nil
}

func (s *SettingService) UpdateSetting(
	settingID uuid.UUID,
	request *settings_dto.UpdateSettingRequestDTO,
	user *users_models.User,
) (*settings_dto.SettingResponseDTO, error) {
	setting, err := s.settingRepository.GetSettingByIDForUser(settingID, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}
	if setting == nil {
		return nil, ErrSettingNotFound
	}

	fields := map[string]any{}

	if request.Value != nil {
		value := *request.Value
		if plugin := s.pluginRegistry.GetPlugin(setting.Category); plugin != nil {
			if !plugin.ValidateSetting(setting.Key, value) {
				return nil, fmt.Errorf(
					"%w: invalid value for '%s' setting '%s'",
					ErrSettingRejected, setting.Category, setting.Key,
				)
			}

			value = plugin.TransformValue(setting.Key, value)
		}

		fields["value"] = value
		setting.Value = value
	}
	if request.Description != nil {
		fields["description"] = *request.Description
		setting.Description = *request.Description
	}

	if len(fields) == 0 {
		return settingToResponse(setting), nil
	}

	if err := s.settingRepository.UpdateSettingFields(settingID, fields); err != nil {
		return nil, fmt.Errorf("failed to update setting: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Setting updated: %s/%s", setting.Category, setting.Key),
		&user.ID,
		&setting.ProjectID,
	)

	return settingToResponse(setting), nil
}

func (s *SettingService) DeleteSetting(
	settingID uuid.UUID,
	user *users_models.User,
) error {
	setting, err := s.settingRepository.GetSettingByIDForUser(settingID, user.ID)
	if err != nil {
		return fmt.Errorf("failed to get setting: %w", err)
	}
	if setting == nil {
		return ErrSettingNotFound
	}

	if err := s.settingRepository.DeleteSetting(settingID); err != nil {
		return fmt.Errorf("failed to delete setting: %w", err)
	}

	s.auditLogWriter.WriteAuditLog(
		fmt.Sprintf("Setting deleted: %s/%s", setting.Category, setting.Key),
		&user.ID,
		&setting.ProjectID,
	)

	return nil
}

func settingToResponse(setting *settings_models.Setting) *settings_dto.SettingResponseDTO {
	return &settings_dto.SettingResponseDTO{
		ID:          setting.ID,
		UserID:      setting.UserID,
		ProjectID:   setting.ProjectID,
		Category:    setting.Category,
		Key:         setting.Key,
		Value:       setting.Value,
		Description: setting.Description,
		CreatedAt:   setting.CreatedAt,
		UpdatedAt:   setting.UpdatedAt,
	}
}
