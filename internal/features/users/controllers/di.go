package users_controllers

import (
	users_services "github.com/ssqlone/ByteStash/internal/features/users/services"
)

var userController = &UserController{
	users_services.GetUserService(),
}

func GetUserController() *UserController {
	return userController
}
