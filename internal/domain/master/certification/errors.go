package certification

import "errors"

var (
	ErrCertificationNotFound   = errors.New("certification not found")
	ErrCertificationNameExists = errors.New("certification with this name already exists")
	ErrCertificationInUse      = errors.New("certification is still referenced by instructors or shift types")
)
