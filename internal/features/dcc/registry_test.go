package dcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPlugin struct {
	BasePlugin
	name string
}

func (p *stubPlugin) Name() string                    { return p.name }
func (p *stubPlugin) DisplayName() string             { return "Stub " + p.name }
func (p *stubPlugin) Description() string             { return "stub plugin" }
func (p *stubPlugin) SettingsTemplate() []FieldTemplate {
	return []FieldTemplate{
		{Key: "stub_key", Label: "Stub Key", Type: FieldTypeString},
	}
}

func Test_Register_NewPlugin_Listed(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubPlugin{name: "stub"})

	plugin := registry.GetPlugin("stub")
	assert.NotNil(t, plugin)
	assert.Equal(t, "stub", plugin.Name())
}

func Test_Register_SameNameTwice_LastWinsKeepsPosition(t *testing.T) {
	registry := NewRegistry()
	first := &stubPlugin{name: "maya"}
	second := &stubPlugin{name: "blender"}
	replacement := &stubPlugin{name: "maya"}

	registry.Register(first)
	registry.Register(second)
	registry.Register(replacement)

	plugins := registry.ListPlugins()
	assert.Len(t, plugins, 2)
	assert.Equal(t, "maya", plugins[0].Name())
	assert.Equal(t, "blender", plugins[1].Name())
	assert.Same(t, Plugin(replacement), registry.GetPlugin("maya"))
}

func Test_GetPlugin_UnknownName_ReturnsNil(t *testing.T) {
	registry := NewRegistry()

	assert.Nil(t, registry.GetPlugin("nuke"))
}

func Test_ListPlugins_ReturnsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"houdini", "maya", "blender"} {
		registry.Register(&stubPlugin{name: name})
	}

	plugins := registry.ListPlugins()
	assert.Len(t, plugins, 3)
	assert.Equal(t, "houdini", plugins[0].Name())
	assert.Equal(t, "maya", plugins[1].Name())
	assert.Equal(t, "blender", plugins[2].Name())
}

func Test_GetAllTemplates_MapsNameToTemplate(t *testing.T) {
	registry := NewRegistry()
	registry.Register(&stubPlugin{name: "stub"})

	templates := registry.GetAllTemplates()
	assert.Len(t, templates, 1)
	assert.Equal(t, "stub_key", templates["stub"][0].Key)
}

func Test_BasePlugin_Hooks_AreNoOps(t *testing.T) {
	plugin := &stubPlugin{name: "stub"}

	assert.True(t, plugin.ValidateSetting("any_key", "any value"))
	assert.Equal(t, "any value", plugin.TransformValue("any_key", "any value"))
}

func Test_DefaultRegistry_ContainsBuiltinPlugins(t *testing.T) {
	registry := GetRegistry()

	plugins := registry.ListPlugins()
	assert.Len(t, plugins, 3)
	assert.Equal(t, "maya", plugins[0].Name())
	assert.Equal(t, "blender", plugins[1].Name())
	assert.Equal(t, "houdini", plugins[2].Name())
}

func Test_MayaTemplate_DeclaresWorkspaceFields(t *testing.T) {
	plugin := GetRegistry().GetPlugin("maya")
	assert.NotNil(t, plugin)

	template := plugin.SettingsTemplate()

	keys := make([]string, len(template))
	for i, field := range template {
		keys[i] = field.Key
	}

	assert.Contains(t, keys, "workspace_path")
	assert.Contains(t, keys, "render_engine")
	assert.Contains(t, keys, "auto_save_interval")
}

func Test_RenderEngineFields_CarryOptions(t *testing.T) {
	for _, name := range []string{"maya", "blender", "houdini"} {
		template := GetRegistry().GetPlugin(name).SettingsTemplate()

		found := false
		for _, field := range template {
			if field.Key == "render_engine" {
				found = true
				assert.NotEmpty(t, field.Options, "plugin %s", name)
				assert.Contains(t, field.Options, field.DefaultValue, "plugin %s", name)
			}
		}

		assert.True(t, found, "plugin %s has no render_engine field", name)
	}
}
