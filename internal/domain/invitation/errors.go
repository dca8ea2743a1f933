package invitation

import "errors"

var (
	ErrTokenNotFound        = errors.New("invitation token not found")
	ErrTokenInactive        = errors.New("invitation token is inactive")
	ErrTokenExpired         = errors.New("invitation token has expired")
	ErrMaxUsesExceeded      = errors.New("Invitation token has reached maximum uses")
	ErrTokenAlreadyInactive = errors.New("invitation token is already deactivated")
	ErrTokenGeneration      = errors.New("Failed to generate unique invitation token")
)
