package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrUserAlreadyExists       = errors.New("User already exists")
	ErrInvalidUserID           = errors.New("Invalid user ID")
	ErrUserInactive            = errors.New("Inactive user cannot create invitation tokens")
	ErrInsufficientPermissions = errors.New("Insufficient permissions")
	ErrInvalidRole             = errors.New("invalid role")
	ErrAccountDeactivated      = errors.New("account is deactivated")
)
