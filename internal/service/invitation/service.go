package invitation

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type tokenServiceImpl struct {
	db          *database.DB
	tokenRepo   invitation.TokenRepository
	userRepo    user.UserRepository
	frontendURL string
}

func NewTokenService(
	db *database.DB,
	tokenRepo invitation.TokenRepository,
	userRepo user.UserRepository,
	frontendURL string,
) invitation.TokenService {
	return &tokenServiceImpl{
		db:          db,
		tokenRepo:   tokenRepo,
		userRepo:    userRepo,
		frontendURL: frontendURL,
	}
}

// Create implements invitation.TokenService.
func (s *tokenServiceImpl) Create(ctx context.Context, params invitation.CreateParams) (invitation.CreateResponse, error) {
	creator, err := s.userRepo.GetByID(ctx, params.CreatedBy)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return invitation.CreateResponse{}, user.ErrInvalidUserID
		}
		return invitation.CreateResponse{}, err
	}

	if !creator.IsActive {
		return invitation.CreateResponse{}, user.ErrUserInactive
	}
	if !creator.Role.AtLeast(user.RoleManager) {
		return invitation.CreateResponse{}, user.ErrInsufficientPermissions
	}

	expiresAt, err := resolveExpiry(params)
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	token, err := s.generateUniqueToken(ctx)
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	newToken := invitation.InvitationToken{
		Token:       token,
		Description: params.Description,
		ExpiresAt:   expiresAt,
		IsActive:    true,
		CreatedBy:   creator.ID,
	}

	var created invitation.InvitationToken
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		// Issuing a new invitation supersedes every other active one.
		if err := s.tokenRepo.DeactivateAllActive(txCtx); err != nil {
			return err
		}

		created, err = s.tokenRepo.Create(txCtx, newToken)
		return err
	})
	if err != nil {
		return invitation.CreateResponse{}, err
	}

	return invitation.CreateResponse{
		Token:         created.Token,
		InvitationURL: s.invitationURL(created.Token),
		ExpiresAt:     created.ExpiresAt.UTC().Format(time.RFC3339),
		MaxUses:       created.MaxUses,
		CreatedBy: invitation.CreatedByResponse{
			ID:          creator.ID,
			DisplayName: creator.DisplayName,
			Role:        string(creator.Role),
		},
	}, nil
}

// Validate implements invitation.TokenService.
func (s *tokenServiceImpl) Validate(ctx context.Context, token string) (invitation.InvitationToken, error) {
	// Malformed tokens are indistinguishable from unknown ones on purpose.
	if !invitation.HasTokenFormat(token) {
		return invitation.InvitationToken{}, invitation.ErrTokenNotFound
	}

	tok, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return invitation.InvitationToken{}, err
	}

	if !tok.IsActive {
		return invitation.InvitationToken{}, invitation.ErrTokenInactive
	}
	if tok.IsExpired() {
		return invitation.InvitationToken{}, invitation.ErrTokenExpired
	}
	if !tok.CanBeConsumed() {
		return invitation.InvitationToken{}, invitation.ErrMaxUsesExceeded
	}

	return tok, nil
}

// List implements invitation.TokenService.
func (s *tokenServiceImpl) List(ctx context.Context, req invitation.ListRequest) ([]invitation.ListItem, error) {
	requester, err := s.userRepo.GetByID(ctx, req.RequesterID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.ErrInvalidUserID
		}
		return nil, err
	}

	if !requester.CanManageInvitations() {
		return nil, user.ErrInsufficientPermissions
	}

	var tokens []invitation.TokenWithCreator
	if req.ShowAll && requester.IsAdmin() {
		tokens, err = s.tokenRepo.ListAll(ctx, req.IncludeInactive)
	} else {
		tokens, err = s.tokenRepo.ListByCreator(ctx, requester.ID, req.IncludeInactive)
	}
	if err != nil {
		return nil, err
	}

	items := make([]invitation.ListItem, 0, len(tokens))
	for _, tok := range tokens {
		items = append(items, invitation.ListItem{
			Token:         tok.Token,
			Description:   tok.Description,
			ExpiresAt:     tok.ExpiresAt.UTC().Format(time.RFC3339),
			IsActive:      tok.IsActive,
			IsExpired:     tok.IsExpired(),
			MaxUses:       tok.MaxUses,
			UsedCount:     tok.UsedCount,
			RemainingUses: tok.RemainingUses(),
			CreatedAt:     tok.CreatedAt.UTC().Format(time.RFC3339),
			CreatedBy:     tok.CreatedBy,
			CreatorName:   tok.CreatorName,
			CreatorRole:   string(tok.CreatorRole),
		})
	}

	return items, nil
}

// Deactivate implements invitation.TokenService.
func (s *tokenServiceImpl) Deactivate(ctx context.Context, token, requesterID string) (invitation.DeactivateResponse, error) {
	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return invitation.DeactivateResponse{}, user.ErrInvalidUserID
		}
		return invitation.DeactivateResponse{}, err
	}

	if !requester.CanManageInvitations() {
		return invitation.DeactivateResponse{}, user.ErrInsufficientPermissions
	}

	existing, err := s.tokenRepo.GetByToken(ctx, token)
	if err != nil {
		return invitation.DeactivateResponse{}, err
	}

	// Managers may only touch their own tokens.
	if !requester.IsAdmin() && existing.CreatedBy != requester.ID {
		return invitation.DeactivateResponse{}, user.ErrInsufficientPermissions
	}

	deactivated, err := s.tokenRepo.Deactivate(ctx, token)
	if err != nil {
		return invitation.DeactivateResponse{}, err
	}

	return invitation.DeactivateResponse{
		Message:       "Invitation token deactivated",
		Token:         deactivated.Token,
		DeactivatedAt: deactivated.UpdatedAt.UTC().Format(time.RFC3339),
		DeactivatedBy: requester.ID,
	}, nil
}

func (s *tokenServiceImpl) generateUniqueToken(ctx context.Context) (string, error) {
	for attempt := 0; attempt < invitation.MaxGenerateAttempts; attempt++ {
		token, err := invitation.NewToken()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}

		exists, err := s.tokenRepo.ExistsByToken(ctx, token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}

	return "", invitation.ErrTokenGeneration
}

func (s *tokenServiceImpl) invitationURL(token string) string {
	return s.frontendURL + "/login?invite=" + url.QueryEscape(token)
}

func resolveExpiry(params invitation.CreateParams) (time.Time, error) {
	now := time.Now()

	switch {
	case params.ExpiresAt != nil:
		return *params.ExpiresAt, nil
	case params.ExpiresInHours != nil:
		if *params.ExpiresInHours < 1 {
			return time.Time{}, errors.New("expiresInHours must be at least 1")
		}
		d := time.Duration(*params.ExpiresInHours) * time.Hour
		if d > invitation.MaxExpiryAhead {
			return time.Time{}, errors.New("expiresInHours exceeds the one month limit")
		}
		return now.Add(d), nil
	default:
		// 7 days unless the caller picked something.
		return now.Add(7 * 24 * time.Hour), nil
	}
}
