package dcc

// Registry maps DCC tool names to their plugins. It is populated once
// at startup and read-only afterwards, so access is not synchronized.
type Registry struct {
	plugins map[string]Plugin
	order   []string
}

func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin under its declared name. Re-registering a name
// overwrites the prior entry and keeps its original position.
func (r *Registry) Register(plugin Plugin) {
	name := plugin.Name()
	if _, exists := r.plugins[name]; !exists {
		r.order = append(r.order, name)
	}

	r.plugins[name] = plugin
}

// GetPlugin returns the plugin registered under name, or nil.
func (r *Registry) GetPlugin(name string) Plugin {
	return r.plugins[name]
}

// ListPlugins returns all plugins in registration order.
func (r *Registry) ListPlugins() []Plugin {
	plugins := make([]Plugin, 0, len(r.order))
	for _, name := range r.order {
		plugins = append(plugins, r.plugins[name])
	}

	return plugins
}

// GetAllTemplates maps every registered plugin name to its template,
// calling each plugin's accessor fresh.
func (r *Registry) GetAllTemplates() map[string][]FieldTemplate {
	templates := make(map[string][]FieldTemplate, len(r.plugins))
	for name, plugin := range r.plugins {
		templates[name] = plugin.SettingsTemplate()
	}

	return templates
}
