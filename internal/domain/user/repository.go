package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByLineUserID(ctx context.Context, lineUserID string) (User, error)
	ExistsByLineUserID(ctx context.Context, lineUserID string) (bool, error)
	Create(ctx context.Context, newUser User) (User, error)
	List(ctx context.Context, includeInactive bool) ([]User, error)
	UpdateRole(ctx context.Context, id string, role Role) error
	SetActive(ctx context.Context, id string, isActive bool) error
	UpdateProfile(ctx context.Context, id, displayName string, pictureURL *string) error
}
