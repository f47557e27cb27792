package projects_testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	audit_logs "artconf/internal/features/audit_logs"
	projects_dto "artconf/internal/features/projects/dto"
	projects_enums "artconf/internal/features/projects/enums"
	projects_models "artconf/internal/features/projects/models"
	users_middleware "artconf/internal/features/users/middleware"
	users_services "artconf/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTestRouter builds a router with the auth middleware applied to
// every passed controller and the audit log writers attached.
func CreateTestRouter(controllers ...ControllerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")
	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))

	for _, controller := range controllers {
		if routerGroup, ok := protected.(*gin.RouterGroup); ok {
			controller.RegisterRoutes(routerGroup)
		}
	}

	audit_logs.SetupDependencies()

	return router
}

func MakeAPIRequest(
	router *gin.Engine,
	method string,
	url string,
	token string,
	body any,
) *httptest.ResponseRecorder {
	var bodyReader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		bodyReader = bytes.NewReader(encoded)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		panic(err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

// CreateTestProject creates a project through the API; the token's user
// becomes its owner.
func CreateTestProject(name string, token string, router *gin.Engine) *projects_models.Project {
	request := projects_dto.CreateProjectRequestDTO{Name: name}
	w := MakeAPIRequest(router, "POST", "/api/v1/projects", "Bearer "+token, request)

	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("Failed to create project. Status: %d, Body: %s", w.Code, w.Body.String()))
	}

	var response projects_dto.ProjectResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		panic(err)
	}

	return &projects_models.Project{
		ID:   response.ID,
		Name: response.Name,
	}
}

func AddMemberToProject(
	project *projects_models.Project,
	username string,
	role projects_enums.ProjectRole,
	ownerToken string,
	router *gin.Engine,
) {
	request := projects_dto.AddMemberRequestDTO{
		Username: username,
		Role:     role,
	}

	w := MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+ownerToken,
		request,
	)

	if w.Code != http.StatusCreated {
		panic("Failed to add member to project via API: " + w.Body.String())
	}
}

func ChangeMemberRole(
	project *projects_models.Project,
	memberUserID uuid.UUID,
	newRole projects_enums.ProjectRole,
	changerToken string,
	router *gin.Engine,
) {
	request := projects_dto.UpdateMemberRoleRequestDTO{
		Role: newRole,
	}

	w := MakeAPIRequest(
		router,
		"PUT",
		fmt.Sprintf("/api/v1/projects/%s/members/%s", project.ID.String(), memberUserID.String()),
		"Bearer "+changerToken,
		request,
	)

	if w.Code != http.StatusOK {
		panic("Failed to change member role via API: " + w.Body.String())
	}
}
