package instructor

import "errors"

var (
	ErrInstructorNotFound      = errors.New("instructor not found")
	ErrInstructorAlreadyLinked = errors.New("instructor already linked to a user")
	ErrUserAlreadyLinked       = errors.New("user already linked to another instructor")
)
