package dcc

type HoudiniPlugin struct {
	BasePlugin
}

func (HoudiniPlugin) Name() string        { return "houdini" }
func (HoudiniPlugin) DisplayName() string { return "SideFX Houdini" }
func (HoudiniPlugin) Description() string { return "Configuration settings for SideFX Houdini" }

func (HoudiniPlugin) SettingsTemplate() []FieldTemplate {
	return []FieldTemplate{
		{
			Key:         "project_path",
			Label:       "Project Path",
			Type:        FieldTypePath,
			Description: "Default Houdini project directory",
		},
		{
			Key:         "hip_directory",
			Label:       "HIP Directory",
			Type:        FieldTypePath,
			Description: "Houdini scene file directory",
		},
		{
			Key:          "render_engine",
			Label:        "Render Engine",
			Type:         FieldTypeString,
			DefaultValue: "mantra",
			Description:  "Default render engine",
			Options:      []string{"mantra", "karma", "redshift", "arnold"},
		},
		{
			Key:         "cache_directory",
			Label:       "Cache Directory",
			Type:        FieldTypePath,
			Description: "Default cache directory for simulations",
		},
		{
			Key:          "thread_count",
			Label:        "Thread Count",
			Type:         FieldTypeNumber,
			DefaultValue: "0",
			Description:  "Number of threads (0 = auto)",
		},
	}
}
