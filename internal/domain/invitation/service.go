package invitation

import "context"

// TokenService defines the interface for invitation token business logic.
type TokenService interface {
	// Create generates a token, deactivates every other active token and
	// inserts the new row in one transaction.
	Create(ctx context.Context, params CreateParams) (CreateResponse, error)

	// Validate classifies a token without mutating it: malformed or unknown
	// tokens surface ErrTokenNotFound, then ErrTokenInactive, then
	// ErrTokenExpired; a valid token is returned as-is.
	Validate(ctx context.Context, token string) (InvitationToken, error)

	// List returns the requester's tokens, or every token when an admin
	// asks for the system-wide view.
	List(ctx context.Context, req ListRequest) ([]ListItem, error)

	// Deactivate disables a token. Admins may deactivate any token,
	// managers only their own.
	Deactivate(ctx context.Context, token, requesterID string) (DeactivateResponse, error)
}
