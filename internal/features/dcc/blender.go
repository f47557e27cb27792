package dcc

type BlenderPlugin struct {
	BasePlugin
}

func (BlenderPlugin) Name() string        { return "blender" }
func (BlenderPlugin) DisplayName() string { return "Blender" }
func (BlenderPlugin) Description() string { return "Configuration settings for Blender" }

func (BlenderPlugin) SettingsTemplate() []FieldTemplate {
	return []FieldTemplate{
		{
			Key:         "project_path",
			Label:       "Project Path",
			Type:        FieldTypePath,
			Description: "Default Blender project directory",
		},
		{
			Key:          "render_engine",
			Label:        "Render Engine",
			Type:         FieldTypeString,
			DefaultValue: "cycles",
			Description:  "Default render engine",
			Options:      []string{"cycles", "eevee", "workbench"},
		},
		{
			Key:          "samples",
			Label:        "Render Samples",
			Type:         FieldTypeNumber,
			DefaultValue: "128",
			Description:  "Default render samples",
		},
		{
			Key:          "auto_save_enabled",
			Label:        "Auto Save",
			Type:         FieldTypeBoolean,
			DefaultValue: "true",
			Description:  "Enable automatic saving",
		},
		{
			Key:          "save_versions",
			Label:        "Save Versions",
			Type:         FieldTypeNumber,
			DefaultValue: "3",
			Description:  "Number of backup versions to keep",
		},
	}
}
