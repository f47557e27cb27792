package settings_controllers

import (
	"errors"
	"net/http"

	projects_services "artconf/internal/features/projects/services"
	settings_dto "artconf/internal/features/settings/dto"
	settings_services "artconf/internal/features/settings/services"
	users_middleware "artconf/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SettingController struct {
	settingService *settings_services.SettingService
}

func (c *SettingController) RegisterRoutes(router *gin.RouterGroup) {
	settingRoutes := router.Group("/settings")

	settingRoutes.POST("", c.CreateSetting)
	settingRoutes.GET("", c.GetSettings)
	settingRoutes.GET("/:id", c.GetSetting)
	settingRoutes.PUT("/:id", c.UpdateSetting)
	settingRoutes.DELETE("/:id", c.DeleteSetting)
}

// CreateSetting
// @Summary Create a setting
// @Description Store a key-value setting for the caller in a project; rejects duplicates of (project, category, key)
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body settings_dto.CreateSettingRequestDTO true "Setting data"
// @Success 201 {object} settings_dto.SettingResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /settings [post]
func (c *SettingController) CreateSetting(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request settings_dto.CreateSettingRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.settingService.CreateSetting(&request, user)
	if err != nil {
		c.writeSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetSettings
// @Summary List own settings in a project
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param project_id query string true "Project ID"
// @Param category query string false "Filter by category"
// @Success 200 {object} settings_dto.ListSettingsResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /settings [get]
func (c *SettingController) GetSettings(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projectID, err := uuid.Parse(ctx.Query("project_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	response, err := c.settingService.GetUserSettings(projectID, ctx.Query("category"), user)
	if err != nil {
		c.writeSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSetting
// @Summary Get a single setting
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Success 200 {object} settings_dto.SettingResponseDTO
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /settings/{id} [get]
func (c *SettingController) GetSetting(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	settingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid setting ID"})
		return
	}

	response, err := c.settingService.GetSetting(settingID, user)
	if err != nil {
		c.writeSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateSetting
// @Summary Update a setting
// @Description Partial update of value and description; only the owning user may update
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Param request body settings_dto.UpdateSettingRequestDTO true "Fields to update"
// @Success 200 {object} settings_dto.SettingResponseDTO
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /settings/{id} [put]
func (c *SettingController) UpdateSetting(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	settingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid setting ID"})
		return
	}

	var request settings_dto.UpdateSettingRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := c.settingService.UpdateSetting(settingID, &request, user)
	if err != nil {
		c.writeSettingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteSetting
// @Summary Delete a setting
// @Tags settings
// @Security BearerAuth
// @Param id path string true "Setting ID"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /settings/{id} [delete]
func (c *SettingController) DeleteSetting(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	settingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid setting ID"})
		return
	}

	if err := c.settingService.DeleteSetting(settingID, user); err != nil {
		c.writeSettingError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *SettingController) writeSettingError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, settings_services.ErrSettingNotFound),
		errors.Is(err, projects_services.ErrProjectNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, settings_services.ErrProjectAccessDenied):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, settings_services.ErrSettingConflict):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, settings_services.ErrSettingRejected):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process setting"})
	}
}
