package invitation

import "context"

// TokenRepository defines the interface for invitation token data access.
type TokenRepository interface {
	// Create inserts a new token row.
	Create(ctx context.Context, tok InvitationToken) (InvitationToken, error)

	// GetByToken retrieves a token row by its token string.
	GetByToken(ctx context.Context, token string) (InvitationToken, error)

	// GetByTokenWithCreator retrieves a token with joined creator fields.
	GetByTokenWithCreator(ctx context.Context, token string) (TokenWithCreator, error)

	// ExistsByToken checks for a collision during generation.
	ExistsByToken(ctx context.Context, token string) (bool, error)

	// DeactivateAllActive flips is_active off for every currently active,
	// non-expired token system-wide (automatic supersession).
	DeactivateAllActive(ctx context.Context) error

	// Deactivate flips is_active off for a single token. Returns
	// ErrTokenNotFound for unknown tokens and ErrTokenAlreadyInactive when
	// the token was already deactivated.
	Deactivate(ctx context.Context, token string) (InvitationToken, error)

	// IncrementUsage bumps used_count with the usage cap folded into the
	// WHERE clause. Zero rows affected on a capped token means the cap is
	// reached: returns ErrMaxUsesExceeded so the enclosing transaction
	// rolls back.
	IncrementUsage(ctx context.Context, token string) error

	// ListByCreator returns tokens created by one user, newest first.
	ListByCreator(ctx context.Context, creatorID string, includeInactive bool) ([]TokenWithCreator, error)

	// ListAll returns every token in the system, newest first.
	ListAll(ctx context.Context, includeInactive bool) ([]TokenWithCreator, error)
}
