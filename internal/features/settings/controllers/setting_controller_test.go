package settings_controllers

import (
	"net/http"
	"strings"
	"testing"

	"artconf/internal/features/dcc"
	projects_controllers "artconf/internal/features/projects/controllers"
	projects_enums "artconf/internal/features/projects/enums"
	projects_testing "artconf/internal/features/projects/testing"
	settings_dto "artconf/internal/features/settings/dto"
	users_testing "artconf/internal/features/users/testing"
	test_utils "artconf/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CreateSetting_AsMember_SettingCreated(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Settings Home", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID:   project.ID,
		Category:    "maya",
		Key:         "workspace_path",
		Value:       "/mnt/projects/settings-home/maya",
		Description: "Shared workspace",
	}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, owner.UserID, response.UserID)
	assert.Equal(t, project.ID, response.ProjectID)
	assert.Equal(t, "maya", response.Category)
	assert.Equal(t, "workspace_path", response.Key)
	assert.Equal(t, "/mnt/projects/settings-home/maya", response.Value)
}

func Test_CreateSetting_DuplicateTuple_ReturnsConflict(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Conflict Home", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "maya",
		Key:       "render_engine",
		Value:     "arnold",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+owner.Token, request, http.StatusCreated)

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+owner.Token,
		request,
		http.StatusConflict,
	)

	assert.Contains(t, string(resp.Body), "maya")
	assert.Contains(t, string(resp.Body), "render_engine")
}

func Test_CreateSetting_SameKeyDifferentUsers_BothCreated(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Shared Project", owner.Token, router)
	projects_testing.AddMemberToProject(project, member.Username, projects_enums.ProjectRoleMember, owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "blender",
		Key:       "samples",
		Value:     "256",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+owner.Token, request, http.StatusCreated)
	test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+member.Token, request, http.StatusCreated)
}

func Test_CreateSetting_AsNonMember_ReturnsForbidden(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Gated Project", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "maya",
		Key:       "ui_scale",
		Value:     "1.5",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+outsider.Token, request, http.StatusForbidden)
}

func Test_CreateSetting_CustomCategory_StoredAsIs(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Custom Category", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "pipeline",
		Key:       "ocio_config",
		Value:     "/mnt/shared/ocio/config.ocio",
	}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "pipeline", response.Category)
	assert.Equal(t, "/mnt/shared/ocio/config.ocio", response.Value)
}

func Test_CreateSetting_PluginRejectsValue_ReturnsBadRequest(t *testing.T) {
	router := createSettingTestRouter()
	dcc.GetRegistry().Register(katanaPlugin{})
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Licensed Renderers", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "katana",
		Key:       "render_engine",
		Value:     "redshift",
	}

	resp := test_utils.MakePostRequest(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)

	assert.Contains(t, string(resp.Body), "katana")
	assert.Contains(t, string(resp.Body), "render_engine")
}

func Test_CreateSetting_PluginTransformsValue_StoredTransformed(t *testing.T) {
	router := createSettingTestRouter()
	dcc.GetRegistry().Register(katanaPlugin{})
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Normalized Values", owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "katana",
		Key:       "render_engine",
		Value:     "Arnold",
	}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+owner.Token,
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, "arnold", response.Value)
}

func Test_UpdateSetting_PluginRejectsValue_ValueUnchanged(t *testing.T) {
	router := createSettingTestRouter()
	dcc.GetRegistry().Register(katanaPlugin{})
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Rejected Patch", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "katana", "render_engine", "arnold")

	newValue := "redshift"
	request := settings_dto.UpdateSettingRequestDTO{Value: &newValue}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		request,
		http.StatusBadRequest,
	)

	var current settings_dto.SettingResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
		&current,
	)
	assert.Equal(t, "arnold", current.Value)
}

func Test_UpdateSetting_PluginTransformsValue_StoredTransformed(t *testing.T) {
	router := createSettingTestRouter()
	dcc.GetRegistry().Register(katanaPlugin{})
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Transformed Patch", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "katana", "render_engine", "arnold")

	newValue := "3Delight"
	request := settings_dto.UpdateSettingRequestDTO{Value: &newValue}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "3delight", response.Value)
}

func Test_GetSettings_FiltersByCategory(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Filter Test", owner.Token, router)

	for _, item := range []struct{ category, key, value string }{
		{"maya", "workspace_path", "/mnt/maya"},
		{"maya", "render_engine", "vray"},
		{"blender", "samples", "64"},
	} {
		request := settings_dto.CreateSettingRequestDTO{
			ProjectID: project.ID,
			Category:  item.category,
			Key:       item.key,
			Value:     item.value,
		}
		test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+owner.Token, request, http.StatusCreated)
	}

	var all settings_dto.ListSettingsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings?project_id="+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
		&all,
	)
	assert.Len(t, all.Settings, 3)

	var mayaOnly settings_dto.ListSettingsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings?project_id="+project.ID.String()+"&category=maya",
		"Bearer "+owner.Token,
		http.StatusOK,
		&mayaOnly,
	)
	assert.Len(t, mayaOnly.Settings, 2)
	for _, setting := range mayaOnly.Settings {
		assert.Equal(t, "maya", setting.Category)
	}
}

func Test_GetSettings_ReturnsOnlyOwnRows(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Isolation Test", owner.Token, router)
	projects_testing.AddMemberToProject(project, member.Username, projects_enums.ProjectRoleMember, owner.Token, router)

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: project.ID,
		Category:  "houdini",
		Key:       "thread_count",
		Value:     "16",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/settings", "Bearer "+owner.Token, request, http.StatusCreated)

	var memberList settings_dto.ListSettingsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings?project_id="+project.ID.String(),
		"Bearer "+member.Token,
		http.StatusOK,
		&memberList,
	)

	assert.Empty(t, memberList.Settings)
}

func Test_GetSettings_AsNonMember_ReturnsNotFound(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	outsider := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Hidden Project", owner.Token, router)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/settings?project_id="+project.ID.String(),
		"Bearer "+outsider.Token,
		http.StatusNotFound,
	)
}

func Test_GetSettings_WithoutProjectID_ReturnsBadRequest(t *testing.T) {
	router := createSettingTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeGetRequest(t, router, "/api/v1/settings", "Bearer "+user.Token, http.StatusBadRequest)
}

func Test_GetSetting_OwnRow_Returned(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Read One Test", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "maya", "auto_save_interval", "5")

	var response settings_dto.SettingResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, setting.ID, response.ID)
	assert.Equal(t, "5", response.Value)
}

func Test_GetSetting_OtherUsersRow_ReturnsNotFound(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Ownership Test", owner.Token, router)
	projects_testing.AddMemberToProject(project, member.Username, projects_enums.ProjectRoleMember, owner.Token, router)

	setting := createTestSetting(t, router, owner.Token, project.ID, "maya", "workspace_path", "/mnt/owner")

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+member.Token,
		http.StatusNotFound,
	)
}

func Test_UpdateSetting_PartialPatch_OnlyGivenFieldsChange(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Patch Test", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "blender", "save_versions", "3")

	newValue := "5"
	request := settings_dto.UpdateSettingRequestDTO{Value: &newValue}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "5", response.Value)
	assert.Equal(t, setting.Description, response.Description)
}

func Test_UpdateSetting_OtherUsersRow_ReturnsNotFound(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()
	other := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Patch Ownership", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "maya", "render_engine", "arnold")

	newValue := "vray"
	request := settings_dto.UpdateSettingRequestDTO{Value: &newValue}

	test_utils.MakePutRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+other.Token,
		request,
		http.StatusNotFound,
	)
}

func Test_DeleteSetting_OwnRow_ReturnsNoContent(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Delete Test", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "houdini", "cache_directory", "/tmp/cache")

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		http.StatusNoContent,
	)

	test_utils.MakeGetRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		http.StatusNotFound,
	)
}

func Test_DeleteSetting_TupleReusableAfterDelete(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Reuse Test", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "maya", "ui_scale", "1.0")

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/settings/"+setting.ID.String(),
		"Bearer "+owner.Token,
		http.StatusNoContent,
	)

	createTestSetting(t, router, owner.Token, project.ID, "maya", "ui_scale", "2.0")
}

func Test_DeleteProject_SettingsSurviveSoftDelete(t *testing.T) {
	router := createSettingTestRouter()
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProject("Archived Project", owner.Token, router)
	setting := createTestSetting(t, router, owner.Token, project.ID, "maya", "workspace_path", "/mnt/archive")

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/projects/"+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusNoContent,
	)

	var list settings_dto.ListSettingsResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings?project_id="+project.ID.String(),
		"Bearer "+owner.Token,
		http.StatusOK,
		&list,
	)

	assert.Len(t, list.Settings, 1)
	assert.Equal(t, setting.ID, list.Settings[0].ID)
	assert.Equal(t, "/mnt/archive", list.Settings[0].Value)
}

func Test_DeleteSetting_UnknownID_ReturnsNotFound(t *testing.T) {
	router := createSettingTestRouter()
	user := users_testing.CreateTestUser()

	test_utils.MakeDeleteRequest(
		t,
		router,
		"/api/v1/settings/"+uuid.New().String(),
		"Bearer "+user.Token,
		http.StatusNotFound,
	)
}

// katanaPlugin restricts render_engine to licensed renderers and
// normalizes the value casing before it is stored.
type katanaPlugin struct{}

func (katanaPlugin) Name() string        { return "katana" }
func (katanaPlugin) DisplayName() string { return "Foundry Katana" }
func (katanaPlugin) Description() string { return "Look development and lighting" }

func (katanaPlugin) SettingsTemplate() []dcc.FieldTemplate {
	return []dcc.FieldTemplate{
		{
			Key:     "render_engine",
			Label:   "Render Engine",
			Type:    dcc.FieldTypeString,
			Options: []string{"arnold", "3delight"},
		},
	}
}

func (katanaPlugin) ValidateSetting(key string, value string) bool {
	if key != "render_engine" {
		return true
	}

	return strings.EqualFold(value, "arnold") || strings.EqualFold(value, "3delight")
}

func (katanaPlugin) TransformValue(key string, value string) string {
	if key == "render_engine" {
		return strings.ToLower(value)
	}

	return value
}

func createSettingTestRouter() *gin.Engine {
	return projects_testing.CreateTestRouter(
		GetSettingController(),
		projects_controllers.GetProjectController(),
		projects_controllers.GetMembershipController(),
	)
}

func createTestSetting(
	t *testing.T,
	router *gin.Engine,
	token string,
	projectID uuid.UUID,
	category string,
	key string,
	value string,
) *settings_dto.SettingResponseDTO {
	t.Helper()

	request := settings_dto.CreateSettingRequestDTO{
		ProjectID: projectID,
		Category:  category,
		Key:       key,
		Value:     value,
	}

	var response settings_dto.SettingResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/settings",
		"Bearer "+token,
		request,
		http.StatusCreated,
		&response,
	)

	return &response
}
