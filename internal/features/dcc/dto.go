package dcc

type PluginInfoDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type PluginTemplateResponseDTO struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Description string          `json:"description"`
	Settings    []FieldTemplate `json:"settings"`
}
