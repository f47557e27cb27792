package dcc

// FieldType tags how a template field's value should be decoded by clients.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypePath    FieldType = "path"
	FieldTypeJSON    FieldType = "json"
)

// FieldTemplate describes one configurable setting of a DCC tool.
// Values are carried as strings; Type tells clients how to decode them.
type FieldTemplate struct {
	Key          string    `json:"key"`
	Label        string    `json:"label"`
	Type         FieldType `json:"type"`
	DefaultValue string    `json:"defaultValue,omitempty"`
	Description  string    `json:"description,omitempty"`
	Required     bool      `json:"required"`
	Options      []string  `json:"options,omitempty"`
}

// Plugin is a static descriptor of one DCC tool's configurable fields.
// ValidateSetting and TransformValue let a plugin enforce tool-specific
// constraints or coerce values before persistence; embed BasePlugin to
// get the no-op defaults.
type Plugin interface {
	Name() string
	DisplayName() string
	Description() string
	SettingsTemplate() []FieldTemplate
	ValidateSetting(key string, value string) bool
	TransformValue(key string, value string) string
}

// BasePlugin supplies the default hook behavior: every value is valid
// and stored unchanged.
type BasePlugin struct{}

func (BasePlugin) ValidateSetting(key string, value string) bool {
	return true
}

func (BasePlugin) TransformValue(key string, value string) string {
	return value
}
