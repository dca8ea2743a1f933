package auth

import (
	"context"
	"errors"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type authServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	tokenService invitation.TokenService
	tokenRepo    invitation.TokenRepository
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	tokenService invitation.TokenService,
	tokenRepo invitation.TokenRepository,
) auth.AuthService {
	return &authServiceImpl{
		db:           db,
		userRepo:     userRepo,
		tokenService: tokenService,
		tokenRepo:    tokenRepo,
	}
}

// LoginWithLine implements auth.AuthService.
func (s *authServiceImpl) LoginWithLine(ctx context.Context, login auth.LineLogin) (auth.SessionResult, error) {
	existing, err := s.userRepo.GetByLineUserID(ctx, login.LineUserID)
	if err == nil {
		if !existing.IsActive {
			return auth.SessionResult{}, user.ErrAccountDeactivated
		}

		// Keep the stored profile in sync with LINE.
		if existing.DisplayName != login.DisplayName || !equalPtr(existing.PictureURL, login.PictureURL) {
			if err := s.userRepo.UpdateProfile(ctx, existing.ID, login.DisplayName, login.PictureURL); err != nil {
				return auth.SessionResult{}, err
			}
			existing.DisplayName = login.DisplayName
			existing.PictureURL = login.PictureURL
		}

		return auth.SessionResult{User: existing, IsNewUser: false}, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return auth.SessionResult{}, err
	}

	// Unknown LINE user: signup requires a valid invitation.
	if login.InviteToken == "" {
		return auth.SessionResult{}, auth.ErrInvitationRequired
	}
	if _, err := s.tokenService.Validate(ctx, login.InviteToken); err != nil {
		return auth.SessionResult{}, err
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Re-check inside the transaction so a race with another callback
		// for the same LINE account cannot create two users.
		exists, err := s.userRepo.ExistsByLineUserID(txCtx, login.LineUserID)
		if err != nil {
			return err
		}
		if exists {
			return user.ErrUserAlreadyExists
		}

		// Zero rows affected means the cap was hit between Validate and
		// here; the whole signup rolls back.
		if err := s.tokenRepo.IncrementUsage(txCtx, login.InviteToken); err != nil {
			return err
		}

		created, err = s.userRepo.Create(txCtx, user.User{
			LineUserID:  login.LineUserID,
			DisplayName: login.DisplayName,
			PictureURL:  login.PictureURL,
			Role:        user.RoleMember,
			IsActive:    true,
		})
		return err
	})
	if err != nil {
		return auth.SessionResult{}, err
	}

	return auth.SessionResult{User: created, IsNewUser: true}, nil
}

// Me implements auth.AuthService.
func (s *authServiceImpl) Me(ctx context.Context, userID string) (auth.MeResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}
	if !u.IsActive {
		return auth.MeResponse{}, user.ErrAccountDeactivated
	}

	return auth.MeResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		PictureURL:  u.PictureURL,
		Role:        string(u.Role),
		IsActive:    u.IsActive,
	}, nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
