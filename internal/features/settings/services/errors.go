package settings_services

import "errors"

var (
	ErrSettingNotFound     = errors.New("setting not found or access denied")
	ErrProjectAccessDenied = errors.New("access denied to this project")
	ErrSettingConflict     = errors.New("setting already exists")
	ErrSettingRejected     = errors.New("setting value rejected")
)
