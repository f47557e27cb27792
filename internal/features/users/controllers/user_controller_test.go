package users_controllers

import (
	"net/http"
	"testing"

	audit_logs "artconf/internal/features/audit_logs"
	users_dto "artconf/internal/features/users/dto"
	users_middleware "artconf/internal/features/users/middleware"
	users_repositories "artconf/internal/features/users/repositories"
	users_services "artconf/internal/features/users/services"
	users_testing "artconf/internal/features/users/testing"
	test_utils "artconf/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Register_WithValidData_UserCreated(t *testing.T) {
	router := createUserTestRouter()
	username := "artist-" + uuid.New().String()[:8]

	request := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
		FullName: "Test Artist",
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/register",
		"",
		request,
		http.StatusCreated,
		&response,
	)

	assert.Equal(t, username, response.Username)
	assert.Equal(t, username+"@example.com", response.Email)
	assert.True(t, response.IsActive)
}

func Test_Register_WithInvalidJSON_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()

	resp := test_utils.MakeRequest(t, router, test_utils.RequestOptions{
		Method:         "POST",
		URL:            "/api/v1/auth/register",
		Body:           "invalid json",
		ExpectedStatus: http.StatusBadRequest,
	})

	assert.Contains(t, string(resp.Body), "Invalid request format")
}

func Test_Register_WithDuplicateUsername_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := "duplicate-" + uuid.New().String()[:8]

	request := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusCreated)

	request.Email = "other-" + uuid.New().String()[:8] + "@example.com"
	resp := test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already registered")
}

func Test_Register_WithDuplicateEmail_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	email := "duplicate-" + uuid.New().String()[:8] + "@example.com"

	request := users_dto.RegisterRequestDTO{
		Username: "artist-" + uuid.New().String()[:8],
		Email:    email,
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusCreated)

	request.Username = "artist-" + uuid.New().String()[:8]
	resp := test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "already registered")
}

func Test_Register_WithShortPassword_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := "artist-" + uuid.New().String()[:8]

	request := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "short",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", request, http.StatusBadRequest)
}

func Test_Login_WithValidCredentials_ReturnsToken(t *testing.T) {
	router := createUserTestRouter()
	username := "login-" + uuid.New().String()[:8]

	registerRequest := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", registerRequest, http.StatusCreated)

	loginRequest := users_dto.LoginRequestDTO{
		Username: username,
		Password: "testpassword123",
	}

	var response users_dto.LoginResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/login",
		"",
		loginRequest,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, username, response.Username)
	assert.NotEmpty(t, response.Token)
}

func Test_Login_WithWrongPassword_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()
	username := "login-" + uuid.New().String()[:8]

	registerRequest := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
	}
	test_utils.MakePostRequest(t, router, "/api/v1/auth/register", "", registerRequest, http.StatusCreated)

	loginRequest := users_dto.LoginRequestDTO{
		Username: username,
		Password: "wrongpassword",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/login", "", loginRequest, http.StatusUnauthorized)
}

func Test_Login_WithUnknownUsername_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	loginRequest := users_dto.LoginRequestDTO{
		Username: "missing-" + uuid.New().String()[:8],
		Password: "testpassword123",
	}

	test_utils.MakePostRequest(t, router, "/api/v1/auth/login", "", loginRequest, http.StatusUnauthorized)
}

func Test_Login_WithInactiveUser_ReturnsBadRequest(t *testing.T) {
	router := createUserTestRouter()
	username := "inactive-" + uuid.New().String()[:8]

	registerRequest := users_dto.RegisterRequestDTO{
		Username: username,
		Email:    username + "@example.com",
		Password: "testpassword123",
	}

	var profile users_dto.UserProfileResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/register",
		"",
		registerRequest,
		http.StatusCreated,
		&profile,
	)

	userRepository := &users_repositories.UserRepository{}
	err := userRepository.UpdateUserStatus(profile.ID, false)
	assert.NoError(t, err)

	loginRequest := users_dto.LoginRequestDTO{
		Username: username,
		Password: "testpassword123",
	}

	resp := test_utils.MakePostRequest(t, router, "/api/v1/auth/login", "", loginRequest, http.StatusBadRequest)
	assert.Contains(t, string(resp.Body), "deactivated")
}

func Test_GetCurrentUser_WithValidToken_ReturnsProfile(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	var response users_dto.UserProfileResponseDTO
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/me",
		"Bearer "+user.Token,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, user.UserID, response.ID)
	assert.Equal(t, user.Username, response.Username)
}

func Test_UpdateCurrentUser_PartialPatch_FieldsUpdated(t *testing.T) {
	router := createUserTestRouter()
	user := users_testing.CreateTestUser()

	newFullName := "Updated Artist"
	newSection := "Lighting"
	request := users_dto.UpdateProfileRequestDTO{
		FullName: &newFullName,
		Section:  &newSection,
	}

	var response users_dto.UserProfileResponseDTO
	test_utils.MakePutRequestAndUnmarshal(
		t,
		router,
		"/api/v1/auth/me",
		"Bearer "+user.Token,
		request,
		http.StatusOK,
		&response,
	)

	assert.Equal(t, "Updated Artist", response.FullName)
	assert.Equal(t, "Lighting", response.Section)
}

func Test_GetCurrentUser_WithoutToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/auth/me", "", http.StatusUnauthorized)
}

func Test_GetCurrentUser_WithMalformedToken_ReturnsUnauthorized(t *testing.T) {
	router := createUserTestRouter()

	test_utils.MakeGetRequest(t, router, "/api/v1/auth/me", "Bearer not-a-token", http.StatusUnauthorized)
}

func createUserTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	v1 := router.Group("/api/v1")

	GetUserController().RegisterRoutes(v1)

	protected := v1.Group("").Use(users_middleware.AuthMiddleware(users_services.GetUserService()))
	GetUserController().RegisterProtectedRoutes(protected.(*gin.RouterGroup))

	audit_logs.SetupDependencies()

	return router
}
