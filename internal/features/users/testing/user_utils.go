package users_testing

import (
	"fmt"
	"time"

	users_dto "artconf/internal/features/users/dto"
	users_models "artconf/internal/features/users/models"
	users_repositories "artconf/internal/features/users/repositories"
	users_services "artconf/internal/features/users/services"

	"github.com/google/uuid"
)

// CreateTestUser inserts an active user straight through the repository
// and returns a signed token for it. The password hash is a placeholder
// because tests authenticate with the token, not the password.
func CreateTestUser() *users_dto.LoginResponseDTO {
	userID := uuid.New()
	username := fmt.Sprintf("artist-%s", userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:             userID,
		Username:       username,
		Email:          fmt.Sprintf("%s@test.com", username),
		HashedPassword: &hashedPassword,
		FullName:       "Test Artist",
		IsActive:       true,
		CreatedAt:      time.Now().UTC(),
	}

	userRepository := &users_repositories.UserRepository{}
	if err := userRepository.CreateUser(user); err != nil {
		panic(err)
	}

	response, err := users_services.GetUserService().GenerateAccessToken(user)
	if err != nil {
		panic(err)
	}

	return response
}
