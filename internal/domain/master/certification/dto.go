package certification

import (
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// Certification is an instructor qualification, e.g. SAJ 指導員 or JSBA level.
type Certification struct {
	ID           string
	Name         string
	Organization *string
	Level        *int
}

// CertificationResponse represents the response structure for a certification.
type CertificationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Organization *string `json:"organization,omitempty"`
	Level        *int    `json:"level,omitempty"`
}

// CreateCertificationRequest represents the request structure for creating a certification.
type CreateCertificationRequest struct {
	Name         string  `json:"name"`
	Organization *string `json:"organization,omitempty"`
	Level        *int    `json:"level,omitempty"`
}

func (r *CreateCertificationRequest) Validate() error {
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
	if r.Level != nil && (*r.Level < 1 || *r.Level > 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateCertificationRequest represents the request structure for updating a certification.
type UpdateCertificationRequest struct {
	ID           string  `json:"-"` // From Chi URL param
	Name         *string `json:"name,omitempty"`
	Organization *string `json:"organization,omitempty"`
	Level        *int    `json:"level,omitempty"`
}

func (r *UpdateCertificationRequest) Validate() error {
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
	if r.Level != nil && (*r.Level < 1 || *r.Level > 10) {
		errs = append(errs, validator.ValidationError{
			Field:   "level",
			Message: "level must be between 1 and 10",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
