package dcc

type MayaPlugin struct {
	BasePlugin
}

func (MayaPlugin) Name() string        { return "maya" }
func (MayaPlugin) DisplayName() string { return "Autodesk Maya" }
func (MayaPlugin) Description() string { return "Configuration settings for Autodesk Maya" }

func (MayaPlugin) SettingsTemplate() []FieldTemplate {
	return []FieldTemplate{
		{
			Key:         "workspace_path",
			Label:       "Workspace Path",
			Type:        FieldTypePath,
			Description: "Default Maya workspace directory",
		},
		{
			Key:          "render_engine",
			Label:        "Render Engine",
			Type:         FieldTypeString,
			DefaultValue: "arnold",
			Description:  "Default render engine",
			Options:      []string{"arnold", "vray", "redshift", "renderman"},
		},
		{
			Key:          "ui_scale",
			Label:        "UI Scale",
			Type:         FieldTypeNumber,
			DefaultValue: "1.0",
			Description:  "UI scaling factor",
		},
		{
			Key:          "auto_save_enabled",
			Label:        "Auto Save",
			Type:         FieldTypeBoolean,
			DefaultValue: "true",
			Description:  "Enable automatic saving",
		},
		{
			Key:          "auto_save_interval",
			Label:        "Auto Save Interval (minutes)",
			Type:         FieldTypeNumber,
			DefaultValue: "10",
			Description:  "Auto save interval in minutes",
		},
	}
}
