package users_controllers

import (
	users_services "artconf/internal/features/users/services"
)

// the login limiter is attached in main; tests run without it
var userController = &UserController{
	userService: users_services.GetUserService(),
}

func GetUserController() *UserController {
	return userController
}
