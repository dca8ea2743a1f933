package user

import "context"

// UserService covers the admin-only account operations.
type UserService interface {
	List(ctx context.Context, includeInactive bool) ([]UserResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (UserResponse, error)
	SetActive(ctx context.Context, req SetActiveRequest) (UserResponse, error)
}
