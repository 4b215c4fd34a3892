package users_services

import (
	users_repositories "github.com/ssqlone/ByteStash/internal/features/users/repositories"
)

var userService = &UserService{
	&users_repositories.UserRepository{},
	&users_repositories.SecretKeyRepository{},
}

func GetUserService() *UserService {
	return userService
}
