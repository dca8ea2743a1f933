package response

import (
	"errors"
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/instructor"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/certification"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/department"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/shifttype"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/shift"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	// Invitation domain errors
	case errors.Is(err, invitation.ErrTokenNotFound):
		NotFound(w, "Invitation token not found")
	case errors.Is(err, invitation.ErrTokenAlreadyInactive):
		Conflict(w, "Invitation token is already inactive")
	case errors.Is(err, invitation.ErrTokenInactive):
		Conflict(w, "Invitation token is inactive")
	case errors.Is(err, invitation.ErrTokenExpired):
		Conflict(w, "Invitation token has expired")
	case errors.Is(err, invitation.ErrMaxUsesExceeded):
		Conflict(w, err.Error())
	case errors.Is(err, invitation.ErrTokenGeneration):
		InternalServerError(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrAccountDeactivated):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, user.ErrInvalidUserID):
		Unauthorized(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserAlreadyExists):
		Conflict(w, err.Error())

	// Auth domain errors
	case errors.Is(err, auth.ErrInvitationRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid session")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, err.Error())
	case errors.Is(err, certification.ErrCertificationNotFound):
		NotFound(w, "Certification not found")
	case errors.Is(err, certification.ErrCertificationNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, certification.ErrCertificationInUse):
		Conflict(w, err.Error())
	case errors.Is(err, shifttype.ErrShiftTypeNotFound):
		NotFound(w, "Shift type not found")
	case errors.Is(err, shifttype.ErrShiftTypeNameExists):
		Conflict(w, err.Error())
	case errors.Is(err, shifttype.ErrShiftTypeInUse):
		Conflict(w, err.Error())

	// Instructor domain errors
	case errors.Is(err, instructor.ErrInstructorNotFound):
		NotFound(w, "Instructor not found")
	case errors.Is(err, instructor.ErrInstructorAlreadyLinked):
		Conflict(w, err.Error())
	case errors.Is(err, instructor.ErrUserAlreadyLinked):
		Conflict(w, err.Error())

	// Shift domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, shift.ErrAlreadyAssigned):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrShiftFullyStaffed):
		Conflict(w, err.Error())
	case errors.Is(err, shift.ErrInstructorInactive):
		BadRequest(w, err.Error())
	case errors.Is(err, shift.ErrCertificationMissing):
		BadRequest(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
