package shifttype

import (
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// ShiftType is a kind of shift, e.g. group lesson, private lesson, patrol.
type ShiftType struct {
	ID                      string
	Name                    string
	Color                   string
	RequiresCertificationID *string
}

// ShiftTypeResponse represents the response structure for a shift type.
type ShiftTypeResponse struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Color                   string  `json:"color"`
	RequiresCertificationID *string `json:"requiresCertificationId,omitempty"`
}

// CreateShiftTypeRequest represents the request structure for creating a shift type.
type CreateShiftTypeRequest struct {
	Name                    string  `json:"name"`
	Color                   string  `json:"color"`
	RequiresCertificationID *string `json:"requiresCertificationId,omitempty"`
}

func (r *CreateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color is required",
		})
	} else if !validator.IsValidHexColor(r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex color like #1a2b3c",
		})
	}

	if r.RequiresCertificationID != nil && !validator.IsValidUUID(*r.RequiresCertificationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "requiresCertificationId",
			Message: "requiresCertificationId must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateShiftTypeRequest represents the request structure for updating a shift type.
type UpdateShiftTypeRequest struct {
	ID                      string  `json:"-"` // From Chi URL param
	Name                    *string `json:"name,omitempty"`
	Color                   *string `json:"color,omitempty"`
	RequiresCertificationID *string `json:"requiresCertificationId,omitempty"`
}

func (r *UpdateShiftTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Color != nil && !validator.IsValidHexColor(*r.Color) {
		errs = append(errs, validator.ValidationError{
			Field:   "color",
			Message: "color must be a hex color like #1a2b3c",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
