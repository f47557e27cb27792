package users_services

import "errors"

var (
	ErrUsernameOrEmailTaken = errors.New("username or email already registered")
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrInactiveUser         = errors.New("user account is deactivated")
	ErrInvalidToken         = errors.New("invalid token")
)
