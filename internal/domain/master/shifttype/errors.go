package shifttype

import "errors"

var (
	ErrShiftTypeNotFound   = errors.New("shift type not found")
	ErrShiftTypeNameExists = errors.New("shift type with this name already exists")
	ErrShiftTypeInUse      = errors.New("shift type is still referenced by shifts")
)
