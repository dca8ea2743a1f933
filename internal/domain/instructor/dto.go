package instructor

import (
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// InstructorResponse represents the response structure for an instructor.
type InstructorResponse struct {
	ID                 string   `json:"id"`
	UserID             *string  `json:"userId,omitempty"`
	DisplayName        string   `json:"displayName"`
	DepartmentID       string   `json:"departmentId"`
	DepartmentName     string   `json:"departmentName,omitempty"`
	CertificationIDs   []string `json:"certificationIds"`
	CertificationNames []string `json:"certificationNames,omitempty"`
	IsActive           bool     `json:"isActive"`
}

// CreateInstructorRequest represents the request structure for creating an instructor.
type CreateInstructorRequest struct {
	DisplayName      string   `json:"displayName"`
	DepartmentID     string   `json:"departmentId"`
	CertificationIDs []string `json:"certificationIds,omitempty"`
	UserID           *string  `json:"userId,omitempty"`
}

func (r *CreateInstructorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName is required",
		})
	}
	if len(r.DisplayName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId is required",
		})
	} else if !validator.IsValidUUID(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId must be a valid UUID",
		})
	}

	for _, certID := range r.CertificationIDs {
		if !validator.IsValidUUID(certID) {
			errs = append(errs, validator.ValidationError{
				Field:   "certificationIds",
				Message: "certificationIds must contain valid UUIDs",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateInstructorRequest represents the request structure for updating an instructor.
type UpdateInstructorRequest struct {
	ID               string    `json:"-"` // From Chi URL param
	DisplayName      *string   `json:"displayName,omitempty"`
	DepartmentID     *string   `json:"departmentId,omitempty"`
	CertificationIDs *[]string `json:"certificationIds,omitempty"`
	IsActive         *bool     `json:"isActive,omitempty"`
}

func (r *UpdateInstructorRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.DisplayName != nil && validator.IsEmpty(*r.DisplayName) {
		errs = append(errs, validator.ValidationError{
			Field:   "displayName",
			Message: "displayName must not be empty",
		})
	}
	if r.DepartmentID != nil && !validator.IsValidUUID(*r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "departmentId",
			Message: "departmentId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ListInstructorsRequest carries list filters.
type ListInstructorsRequest struct {
	DepartmentID    string
	IncludeInactive bool
}
