package users_testing

import (
	"fmt"
	"time"

	users_dto "github.com/ssqlone/ByteStash/internal/features/users/dto"
	users_models "github.com/ssqlone/ByteStash/internal/features/users/models"
	users_repositories "github.com/ssqlone/ByteStash/internal/features/users/repositories"
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"

	"github.com/google/uuid"
)

func CreateTestUser() *users_dto.LoginResponseDTO {
	userID := uuid.New()
	username := fmt.Sprintf("user-%s", userID.String()[:8])

	hashedPassword := "$2a$10$test"
	user := &users_models.User{
		ID:                   userID,
		Username:             username,
		HashedPassword:       &hashedPassword,
		PasswordCreationTime: time.Now().UTC(),
		CreatedAt:            time.Now().UTC(),
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
