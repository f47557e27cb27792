package settings_services

import (
	"artconf/internal/features/dcc"
	projects_services "artconf/internal/features/projects/services"
	settings_repositories "artconf/internal/features/settings/repositories"
)

var (
	settingRepository = &settings_repositories.SettingRepository{}

	settingService = &SettingService{
		settingRepository: settingRepository,
		projectService:    projects_services.GetProjectService(),
		pluginRegistry:    dcc.GetRegistry(),
	}
)

func GetSettingService() *SettingService {
	return settingService
}
