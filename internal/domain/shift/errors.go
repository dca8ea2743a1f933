package shift

import "errors"

var (
	ErrShiftNotFound        = errors.New("shift not found")
	ErrAlreadyAssigned      = errors.New("instructor is already assigned to this shift")
	ErrAssignmentNotFound   = errors.New("assignment not found")
	ErrShiftFullyStaffed    = errors.New("shift already has the required number of instructors")
	ErrInstructorInactive   = errors.New("inactive instructor cannot be assigned")
	ErrCertificationMissing = errors.New("instructor lacks the certification required by this shift type")
)
