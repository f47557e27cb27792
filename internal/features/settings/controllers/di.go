package settings_controllers

import (
	settings_services "artconf/internal/features/settings/services"
)

var settingController = &SettingController{
	settingService: settings_services.GetSettingService(),
}

func GetSettingController() *SettingController {
	return settingController
}
