package user

import (
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	PictureURL  *string `json:"pictureUrl,omitempty"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
}

// UpdateRoleRequest changes another user's role (admin only).
type UpdateRoleRequest struct {
	ID   string `json:"-"` // From Chi URL param
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of ADMIN, MANAGER, MEMBER",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SetActiveRequest activates or deactivates an account (admin only).
type SetActiveRequest struct {
	ID       string `json:"-"` // From Chi URL param
	IsActive *bool  `json:"isActive"`
}

func (r *SetActiveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.IsActive == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "isActive",
			Message: "isActive is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
