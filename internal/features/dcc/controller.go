package dcc

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DCCController struct {
	registry *Registry
}

func (c *DCCController) RegisterRoutes(router *gin.RouterGroup) {
	dccRoutes := router.Group("/dcc")

	dccRoutes.GET("/plugins", c.ListPlugins)
	dccRoutes.GET("/templates", c.GetAllTemplates)
	dccRoutes.GET("/templates/:plugin_name", c.GetPluginTemplate)
}

// ListPlugins
// @Summary List available DCC tool plugins
// @Tags dcc
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dcc.PluginInfoDTO
// @Failure 401 {object} map[string]string
// @Router /dcc/plugins [get]
func (c *DCCController) ListPlugins(ctx *gin.Context) {
	plugins := c.registry.ListPlugins()

	response := make([]PluginInfoDTO, 0, len(plugins))
	for _, plugin := range plugins {
		response = append(response, PluginInfoDTO{
			Name:        plugin.Name(),
			DisplayName: plugin.DisplayName(),
			Description: plugin.Description(),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// GetAllTemplates
// @Summary Get setting templates from all DCC plugins
// @Tags dcc
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]dcc.FieldTemplate
// @Failure 401 {object} map[string]string
// @Router /dcc/templates [get]
func (c *DCCController) GetAllTemplates(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.registry.GetAllTemplates())
}

// GetPluginTemplate
// @Summary Get the setting template for one DCC plugin
// @Tags dcc
// @Produce json
// @Security BearerAuth
// @Param plugin_name path string true "Plugin name"
// @Success 200 {object} dcc.PluginTemplateResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /dcc/templates/{plugin_name} [get]
func (c *DCCController) GetPluginTemplate(ctx *gin.Context) {
	pluginName := ctx.Param("plugin_name")

	plugin := c.registry.GetPlugin(pluginName)
	if plugin == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Plugin '%s' not found", pluginName)})
		return
	}

	ctx.JSON(http.StatusOK, PluginTemplateResponseDTO{
		Name:        plugin.Name(),
		DisplayName: plugin.DisplayName(),
		Description: plugin.Description(),
		Settings:    plugin.SettingsTemplate(),
	})
}
