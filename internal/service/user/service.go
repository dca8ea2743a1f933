package user

import (
	"context"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
)

type userServiceImpl struct {
	repo user.UserRepository
}

func NewUserService(repo user.UserRepository) user.UserService {
	return &userServiceImpl{repo: repo}
}

// List implements user.UserService.
func (s *userServiceImpl) List(ctx context.Context, includeInactive bool) ([]user.UserResponse, error) {
	users, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses, nil
}

// UpdateRole implements user.UserService.
func (s *userServiceImpl) UpdateRole(ctx context.Context, req user.UpdateRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.repo.UpdateRole(ctx, req.ID, user.Role(req.Role)); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

// SetActive implements user.UserService.
func (s *userServiceImpl) SetActive(ctx context.Context, req user.SetActiveRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if err := s.repo.SetActive(ctx, req.ID, *req.IsActive); err != nil {
		return user.UserResponse{}, err
	}

	updated, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return toUserResponse(updated), nil
}

func toUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		PictureURL:  u.PictureURL,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
